package recommendation

import "github.com/remaimber-it/scorecard/internal/domain/record"

// Placeholders filled in by render:
//
//	{score} {avg} {diff}   one decimal; diff is absolute
//	{relation}             RelationToAverage
//	{subject} {section}    section name and code

var allSectionRules = map[record.Section]map[Level][]string{
	record.SectionMath: {
		LevelExcellent: {
			"Outstanding performance in Math! Your score ({score}%) is {diff}% {relation} ({avg}%). Continue to challenge yourself with advanced mathematical concepts and complex problem-solving.",
			"To maintain your excellence: Practice with competitive math problems, explore calculus or statistics if not already familiar, and consider mentoring peers who struggle with math.",
		},
		LevelGood: {
			"Good performance in Math. Your score ({score}%) is {diff}% {relation} ({avg}%). You have a solid foundation but can still improve in specific areas.",
			"To improve further: Focus on algebraic manipulations, quadratic equations, and geometry theorems. Try timed practice to improve speed and accuracy.",
		},
		LevelFair: {
			"Fair performance in Math. Your score ({score}%) is {diff}% {relation} ({avg}%). You need to strengthen your mathematical foundation.",
			"To build your skills: Review basic algebra, fractions, percentages, and geometric principles. Practice daily with gradual progression to more complex problems.",
		},
		LevelPoor: {
			"You need significant improvement in Math. Your score ({score}%) is {diff}% {relation} ({avg}%). Focus on establishing basic mathematical concepts.",
			"Essential steps for improvement: Start with arithmetic operations, fractions, and basic algebra. Use visual aids and practical examples to grasp concepts. Consider extra tutoring support.",
			"Recommended resources: Khan Academy's basic math courses, 'Math Made Easy' workbooks, or apps like Photomath to help understand step-by-step solutions.",
		},
	},
	record.SectionVerbal: {
		LevelExcellent: {
			"Outstanding verbal reasoning skills! Your score ({score}%) is {diff}% {relation} ({avg}%). You demonstrate exceptional language comprehension and vocabulary.",
			"To maintain your excellence: Read advanced literature and scholarly articles, practice writing persuasive essays, and expand your vocabulary with specialized or technical terms.",
		},
		LevelGood: {
			"Good verbal reasoning abilities. Your score ({score}%) is {diff}% {relation} ({avg}%). You have solid language skills but can enhance specific areas.",
			"To improve further: Focus on analogies, sentence completions, and critical reading. Practice identifying author's tone and purpose in diverse texts.",
		},
		LevelFair: {
			"Fair verbal performance. Your score ({score}%) is {diff}% {relation} ({avg}%). You need to strengthen your vocabulary and reading comprehension.",
			"To build your skills: Read diverse materials daily, maintain a vocabulary journal, and practice synonym/antonym exercises. Focus on understanding context clues in passages.",
		},
		LevelPoor: {
			"You need significant improvement in verbal reasoning. Your score ({score}%) is {diff}% {relation} ({avg}%). Focus on building fundamental language skills.",
			"Essential steps for improvement: Start with basic vocabulary building exercises, grammar rules, and simple reading comprehension activities. Use flashcards for new words.",
			"Recommended resources: Vocabulary apps like Memrise or Quizlet, graded readers appropriate for your level, and websites like Grammar.com for language basics.",
		},
	},
	record.SectionNonVerbal: {
		LevelExcellent: {
			"Exceptional non-verbal reasoning abilities! Your score ({score}%) is {diff}% {relation} ({avg}%). You excel at pattern recognition and spatial reasoning.",
			"To maintain your excellence: Challenge yourself with advanced puzzle types, 3D visualization exercises, and abstract reasoning problems found in high-level aptitude tests.",
		},
		LevelGood: {
			"Good non-verbal reasoning skills. Your score ({score}%) is {diff}% {relation} ({avg}%). You recognize patterns well but can improve in complex scenarios.",
			"To improve further: Practice with various pattern recognition exercises, spatial rotation tasks, and logical sequence problems with increasing difficulty.",
		},
		LevelFair: {
			"Fair non-verbal performance. Your score ({score}%) is {diff}% {relation} ({avg}%). You need to develop better pattern recognition abilities.",
			"To build your skills: Work regularly with visual puzzles, pattern completion exercises, and spatial reasoning tasks. Start with simpler patterns and progressively increase difficulty.",
		},
		LevelPoor: {
			"You need significant improvement in non-verbal reasoning. Your score ({score}%) is {diff}% {relation} ({avg}%). Focus on basic pattern recognition skills.",
			"Essential steps for improvement: Begin with simple pattern recognition exercises, shape matching, and basic sequence completion. Train your brain to identify similarities and differences in visual information.",
			"Recommended resources: Apps like Lumosity or Peak for pattern games, puzzle books with increasing difficulty levels, and tangram puzzles for spatial reasoning practice.",
		},
	},
	record.SectionComprehension: {
		LevelExcellent: {
			"Outstanding reading comprehension skills! Your score ({score}%) is {diff}% {relation} ({avg}%). You excel at understanding and analyzing complex texts.",
			"To maintain your excellence: Read scholarly articles and classic literature, practice critical analysis of complex arguments, and work on synthesizing information from multiple sources.",
		},
		LevelGood: {
			"Good reading comprehension abilities. Your score ({score}%) is {diff}% {relation} ({avg}%). You understand most texts well but can improve with complex material.",
			"To improve further: Practice with more challenging reading materials, focus on inference questions, and work on identifying unstated assumptions and author's perspective.",
		},
		LevelFair: {
			"Fair reading comprehension. Your score ({score}%) is {diff}% {relation} ({avg}%). You understand basic texts but struggle with deeper analysis.",
			"To build your skills: Read diverse materials regularly, practice summarizing what you've read, and work on identifying main ideas versus supporting details. Try answering 'why' and 'how' questions about texts.",
		},
		LevelPoor: {
			"You need significant improvement in reading comprehension. Your score ({score}%) is {diff}% {relation} ({avg}%). Focus on basic reading skills.",
			"Essential steps for improvement: Start with shorter passages at an appropriate reading level. Practice identifying the main idea, key details, and simple inferences. Read actively by asking yourself questions about the text.",
			"Recommended resources: Graded reading materials with comprehension questions, websites like ReadWorks.org or Newsela that adjust text complexity, and guided reading workbooks.",
		},
	},
}

var weaknessRules = map[record.Section]map[WeaknessTier]string{
	record.SectionMath: {
		TierSignificant: "{subject} (Section {section}): You need significant improvement in mathematical concepts. Your score ({score}%) is {diff}% below the class average ({avg}%). Focus on basic arithmetic, algebra, and geometry fundamentals.",
		TierDeveloping:  "{subject} (Section {section}): Work on improving your mathematical problem-solving skills. Your score ({score}%) is {diff}% below the class average ({avg}%). Practice with timed exercises focusing on algebra and number theory.",
		TierClose:       "{subject} (Section {section}): You're doing well in math but still {diff}% below the class average ({avg}%). Focus on advanced topics and complex problem-solving techniques.",
	},
	record.SectionVerbal: {
		TierSignificant: "{subject} (Section {section}): Significant improvement needed in verbal reasoning. Your score ({score}%) is {diff}% below the class average ({avg}%). Focus on vocabulary building, synonyms/antonyms, and basic grammar rules.",
		TierDeveloping:  "{subject} (Section {section}): Work on improving your verbal comprehension. Your score ({score}%) is {diff}% below the class average ({avg}%). Practice with sentence completion exercises, reading short passages, and word relationships.",
		TierClose:       "{subject} (Section {section}): You're doing reasonably well in verbal skills but {diff}% below the class average ({avg}%). Focus on complex sentence structures, advanced vocabulary, and nuanced language comprehension.",
	},
	record.SectionNonVerbal: {
		TierSignificant: "{subject} (Section {section}): Significant improvement needed in pattern recognition and spatial reasoning. Your score ({score}%) is {diff}% below the class average ({avg}%). Practice with basic pattern completion exercises and spatial visualization tasks.",
		TierDeveloping:  "{subject} (Section {section}): Work on improving your non-verbal reasoning. Your score ({score}%) is {diff}% below the class average ({avg}%). Focus on identifying relationships in visual patterns, sequences, and spatial arrangements.",
		TierClose:       "{subject} (Section {section}): You're doing reasonably well in non-verbal reasoning but {diff}% below the class average ({avg}%). Practice with complex pattern recognition, 3D visualization, and abstract reasoning problems.",
	},
	record.SectionComprehension: {
		TierSignificant: "{subject} (Section {section}): Significant improvement needed in reading comprehension. Your score ({score}%) is {diff}% below the class average ({avg}%). Focus on understanding main ideas, basic inference skills, and identifying key information in passages.",
		TierDeveloping:  "{subject} (Section {section}): Work on improving your reading comprehension. Your score ({score}%) is {diff}% below the class average ({avg}%). Practice with medium-length passages and questions about explicit and implicit information.",
		TierClose:       "{subject} (Section {section}): You're doing reasonably well in comprehension but {diff}% below the class average ({avg}%). Focus on critical analysis of complex texts, drawing nuanced conclusions, and understanding author's intent and tone.",
	},
}
