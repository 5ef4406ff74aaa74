package repository

import "time"

// Submission represents one completed form run.
type Submission struct {
	ID             string
	FormName       string
	SubmittedAt    time.Time
	ElapsedSeconds int
}

// Answer represents one answered question within a submission. The
// answer value is stored JSON-encoded so list answers round-trip.
type Answer struct {
	SubmissionID string
	QuestionID   string
	QuestionType string
	Position     int
	Answer       string
	OtherAnswer  string
}
