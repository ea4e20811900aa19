package main

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func run(t *testing.T, args ...string) (string, error) {
	t.Helper()
	var out, errOut bytes.Buffer
	cmd := newRootCmd()
	cmd.SetOut(&out)
	cmd.SetErr(&errOut)
	cmd.SetArgs(args)
	err := cmd.Execute()
	return out.String(), err
}

func TestSeedReportExportImport(t *testing.T) {
	dir := t.TempDir()
	db := filepath.Join(dir, "seeded.db")

	out, err := run(t, "seed", "--db", db, "--students", "5", "--questions", "4", "--seed", "3")
	require.NoError(t, err)
	assert.Equal(t, "seeded 5 students, 80 records\n", out)

	out, err = run(t, "students", "--db", db)
	require.NoError(t, err)
	assert.Equal(t, "1\n2\n3\n4\n5\n", out)

	out, err = run(t, "report", "2", "--db", db)
	require.NoError(t, err)
	for _, want := range []string{"Student 2", "Math", "Overall", "Strengths:", "Recommendations", "Comprehension (D)"} {
		assert.Contains(t, out, want)
	}

	out, err = run(t, "report", "2", "--db", db, "--weaknesses-only")
	require.NoError(t, err)
	assert.Contains(t, out, "(Section ")

	exported := filepath.Join(dir, "dataset.csv")
	_, err = run(t, "export", "--db", db, "--out", exported)
	require.NoError(t, err)
	data, err := os.ReadFile(exported)
	require.NoError(t, err)
	assert.Equal(t, 81, strings.Count(string(data), "\n"))

	copyDB := filepath.Join(dir, "copy.db")
	out, err = run(t, "import", "--db", copyDB, exported)
	require.NoError(t, err)
	assert.Contains(t, out, "80 records, 5 students (5 added, 0 replaced)")

	seededCohort, err := run(t, "cohort", "--db", db)
	require.NoError(t, err)
	copiedCohort, err := run(t, "cohort", "--db", copyDB)
	require.NoError(t, err)
	assert.Equal(t, seededCohort, copiedCohort)
	assert.Contains(t, copiedCohort, "Class of 5")

	out, err = run(t, "evaluate", "--db", db)
	require.NoError(t, err)
	assert.Contains(t, out, "95.0%")
	assert.Contains(t, out, "93.0%")
}

func TestImport_LaterFileWins(t *testing.T) {
	dir := t.TempDir()
	db := filepath.Join(dir, "scores.db")
	first := filepath.Join(dir, "first.csv")
	second := filepath.Join(dir, "second.json")
	require.NoError(t, os.WriteFile(first, []byte("student_id,section,is_correct\n7,A,true\n7,B,true\n"), 0o600))
	require.NoError(t, os.WriteFile(second, []byte(`[{"student_id": 7, "section": "C", "is_correct": false}]`), 0o600))

	out, err := run(t, "import", "--db", db, first, second)
	require.NoError(t, err)
	assert.Contains(t, out, "second.json: 1 records, 1 students (0 added, 1 replaced)")

	out, err = run(t, "export", "--db", db)
	require.NoError(t, err)
	assert.Equal(t, "student_id,section,is_correct\n7,C,false\n", out)
}

func TestErrors(t *testing.T) {
	db := filepath.Join(t.TempDir(), "empty.db")

	out, err := run(t, "students", "--db", db)
	require.NoError(t, err)
	assert.Equal(t, "No student data available.\n", out)

	_, err = run(t, "report", "1", "--db", db)
	assert.EqualError(t, err, "no student data")

	_, err = run(t, "import", "--db", db, filepath.Join(t.TempDir(), "missing.csv"))
	assert.Error(t, err)

	_, err = run(t, "seed", "--db", db, "--students", "0")
	assert.Error(t, err)
}
