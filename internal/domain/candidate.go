package domain

import (
	"context"
	"time"
)

// Plan tiers a candidate can register under.
const (
	PlanBasic        = "basic"
	PlanIntermediate = "intermediate"
	PlanPremium      = "premium"
)

// ValidPlan reports membership in the recognized plan set.
func ValidPlan(plan string) bool {
	switch plan {
	case PlanBasic, PlanIntermediate, PlanPremium:
		return true
	}
	return false
}

// Candidate is a finalized job-seeker profile. Password always holds a bcrypt
// hash, never plaintext at rest.
type Candidate struct {
	ID            int64     `json:"id"`
	Name          string    `json:"name"`
	Email         string    `json:"email"`
	Password      string    `json:"-"`
	Phone         string    `json:"phone"`
	Nationality   string    `json:"nationality"`
	Location      string    `json:"location"`
	Qualification string    `json:"qualification"`
	Experience    string    `json:"experience"`
	Role          string    `json:"role"`
	Skills        []string  `json:"skills"`
	ResumePath    string    `json:"resume_path"`
	PhotoPath     string    `json:"photo_path,omitempty"`
	Plan          string    `json:"plan"`
	IsPlaced      bool      `json:"is_placed"`
	CreatedAt     time.Time `json:"created_at"`
}

type CandidateRepository interface {
	Create(ctx context.Context, c *Candidate) error
	GetByID(ctx context.Context, id int64) (*Candidate, error)
	GetByEmail(ctx context.Context, email string) (*Candidate, error)
	EmailExists(ctx context.Context, email string) (bool, error)
	List(ctx context.Context) ([]Candidate, error)
	UpdateSkills(ctx context.Context, id int64, skills []string) error
	UpdatePassword(ctx context.Context, id int64, hashed string) error
	SetPlaced(ctx context.Context, id int64, placed bool) error
	Delete(ctx context.Context, id int64) error
}

type CandidateUsecase interface {
	GetDashboard(ctx context.Context, candidateID int64) (*CandidateDashboard, error)
	UpdateSkills(ctx context.Context, candidateID int64, skills string) error
}

// CandidateDashboard bundles the data the employee dashboard renders.
type CandidateDashboard struct {
	Candidate *Candidate   `json:"candidate"`
	OpenJobs  []JobOpening `json:"open_jobs"`
}
