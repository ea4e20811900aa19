package store

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	"github.com/remaimber-it/scorecard/internal/domain/record"
)

// SQLStore keeps the dataset in sqlite or postgres. Queries use $N
// placeholders, which both drivers accept.
type SQLStore struct {
	db     *sql.DB
	driver Driver
}

func (s *SQLStore) Close() error {
	return s.db.Close()
}

// Driver reports which database backs the store.
func (s *SQLStore) Driver() Driver {
	return s.driver
}

// ============================================================================
// Dataset writes
// ============================================================================

// ReplaceStudents deletes every existing row for each student present in
// records and inserts the new rows, all in one transaction.
func (s *SQLStore) ReplaceStudents(ctx context.Context, upload Upload, records []record.QuestionRecord) (ReplaceResult, error) {
	var result ReplaceResult

	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return result, fmt.Errorf("begin replace: %w", err)
	}
	defer tx.Rollback()

	for _, id := range record.StudentIDs(records) {
		res, err := tx.ExecContext(ctx, "DELETE FROM question_records WHERE student_id = $1", id)
		if err != nil {
			return result, fmt.Errorf("delete student %s: %w", id, err)
		}
		n, err := res.RowsAffected()
		if err != nil {
			return result, err
		}
		if n > 0 {
			result.Replaced = append(result.Replaced, id)
		} else {
			result.Added = append(result.Added, id)
		}
	}

	stmt, err := tx.PrepareContext(ctx,
		"INSERT INTO question_records (student_id, section, is_correct, upload_id) VALUES ($1, $2, $3, $4)")
	if err != nil {
		return result, fmt.Errorf("prepare insert: %w", err)
	}
	defer stmt.Close()

	for _, r := range records {
		if _, err := stmt.ExecContext(ctx, r.StudentID, string(r.Section), r.IsCorrect, upload.ID); err != nil {
			return result, fmt.Errorf("insert record for student %s: %w", r.StudentID, err)
		}
	}

	if upload.CreatedAt.IsZero() {
		upload.CreatedAt = time.Now()
	}
	_, err = tx.ExecContext(ctx,
		"INSERT INTO uploads (id, filename, students, records, created_at) VALUES ($1, $2, $3, $4, $5)",
		upload.ID, upload.Filename, upload.Students, upload.Records, upload.CreatedAt.Unix())
	if err != nil {
		return result, fmt.Errorf("record upload: %w", err)
	}

	if err := tx.Commit(); err != nil {
		return result, fmt.Errorf("commit replace: %w", err)
	}
	return result, nil
}

// ============================================================================
// Dataset reads
// ============================================================================

// Records returns the full dataset in insertion order.
func (s *SQLStore) Records(ctx context.Context) ([]record.QuestionRecord, error) {
	rows, err := s.db.QueryContext(ctx,
		"SELECT student_id, section, is_correct FROM question_records ORDER BY id")
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	return scanRecords(rows)
}

// StudentRecords returns one student's rows, or ErrNotFound.
func (s *SQLStore) StudentRecords(ctx context.Context, studentID string) ([]record.QuestionRecord, error) {
	rows, err := s.db.QueryContext(ctx,
		"SELECT student_id, section, is_correct FROM question_records WHERE student_id = $1 ORDER BY id", studentID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	records, err := scanRecords(rows)
	if err != nil {
		return nil, err
	}
	if len(records) == 0 {
		return nil, ErrNotFound
	}
	return records, nil
}

// ListStudents returns student ids in order of first appearance.
func (s *SQLStore) ListStudents(ctx context.Context) ([]string, error) {
	rows, err := s.db.QueryContext(ctx,
		"SELECT student_id, MIN(id) AS first_id FROM question_records GROUP BY student_id ORDER BY first_id")
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	ids := []string{}
	for rows.Next() {
		var (
			id    string
			first int64
		)
		if err := rows.Scan(&id, &first); err != nil {
			return nil, err
		}
		ids = append(ids, id)
	}
	return ids, rows.Err()
}

// ListUploads returns the upload history, newest first.
func (s *SQLStore) ListUploads(ctx context.Context) ([]Upload, error) {
	rows, err := s.db.QueryContext(ctx,
		"SELECT id, filename, students, records, created_at FROM uploads ORDER BY created_at DESC, id")
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	uploads := []Upload{}
	for rows.Next() {
		var (
			u       Upload
			created int64
		)
		if err := rows.Scan(&u.ID, &u.Filename, &u.Students, &u.Records, &created); err != nil {
			return nil, err
		}
		u.CreatedAt = time.Unix(created, 0).UTC()
		uploads = append(uploads, u)
	}
	return uploads, rows.Err()
}

func scanRecords(rows *sql.Rows) ([]record.QuestionRecord, error) {
	var records []record.QuestionRecord
	for rows.Next() {
		var (
			r       record.QuestionRecord
			section string
		)
		if err := rows.Scan(&r.StudentID, &section, &r.IsCorrect); err != nil {
			return nil, err
		}
		r.Section = record.Section(section)
		records = append(records, r)
	}
	return records, rows.Err()
}
