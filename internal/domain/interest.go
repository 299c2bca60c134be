package domain

import (
	"context"
	"time"
)

// EmployerInterest records an employer's interest in a candidate. At most one
// record per (employer, candidate) pair; enforcement is the DB unique
// constraint, the flow only converts the conflict into an idempotent success.
type EmployerInterest struct {
	ID          int64     `json:"id"`
	EmployerID  int64     `json:"employer_id"`
	CandidateID int64     `json:"candidate_id"`
	CreatedAt   time.Time `json:"created_at"`
}

// CandidateInterest records a candidate's interest in a job opening. Same
// pair-uniqueness contract as EmployerInterest.
type CandidateInterest struct {
	ID          int64     `json:"id"`
	CandidateID int64     `json:"candidate_id"`
	JobID       int64     `json:"job_id"`
	CreatedAt   time.Time `json:"created_at"`
}

type InterestRepository interface {
	CreateEmployerInterest(ctx context.Context, employerID, candidateID int64) error
	CreateCandidateInterest(ctx context.Context, candidateID, jobID int64) error
	CountEmployerInterests(ctx context.Context, employerID, candidateID int64) (int, error)
	CountCandidateInterests(ctx context.Context, candidateID, jobID int64) (int, error)
}

type InterestUsecase interface {
	ExpressEmployerInterest(ctx context.Context, employerID, candidateID int64) error
	ExpressCandidateInterest(ctx context.Context, candidateID, jobID int64) error
}
