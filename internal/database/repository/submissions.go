package repository

import (
	"context"
	"database/sql"
)

// SubmissionRepo handles submissions and their answers.
type SubmissionRepo struct {
	db *sql.DB
}

func NewSubmissionRepo(db *sql.DB) *SubmissionRepo {
	return &SubmissionRepo{db: db}
}

// Create stores a submission and its answers atomically.
func (r *SubmissionRepo) Create(ctx context.Context, s Submission, answers []Answer) error {
	tx, err := r.db.BeginTx(ctx, nil)
	if err != nil {
		return err
	}
	defer func() { _ = tx.Rollback() }()

	_, err = tx.ExecContext(ctx, `
	INSERT INTO submissions(id, form_name, submitted_at, elapsed_seconds)
	VALUES (?, ?, ?, ?);
	`, s.ID, s.FormName, s.SubmittedAt, s.ElapsedSeconds)
	if err != nil {
		return err
	}

	for _, a := range answers {
		_, err = tx.ExecContext(ctx, `
		INSERT INTO submission_answers(submission_id, question_id, question_type, position, answer, other_answer)
		VALUES (?, ?, ?, ?, ?, ?);
		`, s.ID, a.QuestionID, a.QuestionType, a.Position, a.Answer, a.OtherAnswer)
		if err != nil {
			return err
		}
	}
	return tx.Commit()
}

// List returns submissions newest first.
func (r *SubmissionRepo) List(ctx context.Context) ([]Submission, error) {
	rows, err := r.db.QueryContext(ctx, `
	SELECT id, form_name, submitted_at, elapsed_seconds
	FROM submissions ORDER BY submitted_at DESC, id`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	var out []Submission
	for rows.Next() {
		var s Submission
		if err := rows.Scan(&s.ID, &s.FormName, &s.SubmittedAt, &s.ElapsedSeconds); err != nil {
			return nil, err
		}
		out = append(out, s)
	}
	return out, rows.Err()
}

// Answers returns a submission's answers in path order.
func (r *SubmissionRepo) Answers(ctx context.Context, submissionID string) ([]Answer, error) {
	rows, err := r.db.QueryContext(ctx, `
	SELECT submission_id, question_id, question_type, position, answer, other_answer
	FROM submission_answers WHERE submission_id = ? ORDER BY position`, submissionID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	var out []Answer
	for rows.Next() {
		var a Answer
		if err := rows.Scan(&a.SubmissionID, &a.QuestionID, &a.QuestionType, &a.Position, &a.Answer, &a.OtherAnswer); err != nil {
			return nil, err
		}
		out = append(out, a)
	}
	return out, rows.Err()
}
