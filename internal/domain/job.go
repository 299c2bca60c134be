package domain

import (
	"context"
	"time"
)

// JobOpening belongs to exactly one employer and is cascade-deleted with it.
type JobOpening struct {
	ID           int64     `json:"id"`
	EmployerID   int64     `json:"employer_id"`
	Title        string    `json:"title" validate:"required,min=2,max=200,safe_text"`
	Description  string    `json:"description" validate:"required,safe_text"`
	Requirements string    `json:"requirements" validate:"safe_text"`
	SalaryRange  string    `json:"salary_range" validate:"max=100,safe_text"`
	Location     string    `json:"location" validate:"required,min=2,max=100,safe_text"`
	JobType      string    `json:"job_type" validate:"max=50,safe_text"`
	IsActive     bool      `json:"is_active"`
	CreatedAt    time.Time `json:"created_at"`
}

type JobRepository interface {
	Create(ctx context.Context, job *JobOpening) error
	GetByID(ctx context.Context, id int64) (*JobOpening, error)
	ListActive(ctx context.Context) ([]JobOpening, error)
	ListAll(ctx context.Context) ([]JobOpening, error)
	ListByEmployer(ctx context.Context, employerID int64) ([]JobOpening, error)
	Delete(ctx context.Context, id int64) error
}

type JobUsecase interface {
	CreateJob(ctx context.Context, employerID int64, job *JobOpening) error
	DeleteJob(ctx context.Context, employerID, jobID int64) error
	ListActiveJobs(ctx context.Context) ([]JobOpening, error)
	ListEmployerJobs(ctx context.Context, employerID int64) ([]JobOpening, error)
}
