package domain

import (
	"context"
	"time"
)

// Employer is a registered company account. Email is unique within the
// employer namespace; employer and candidate namespaces are disjoint.
type Employer struct {
	ID                 int64     `json:"id"`
	CompanyName        string    `json:"company_name"`
	Email              string    `json:"email"`
	Password           string    `json:"-"`
	Phone              string    `json:"phone"`
	CompanyDescription string    `json:"company_description,omitempty"`
	Location           string    `json:"location"`
	Industry           string    `json:"industry"`
	LogoPath           string    `json:"logo_path,omitempty"`
	CreatedAt          time.Time `json:"created_at"`
}

type EmployerRepository interface {
	Create(ctx context.Context, e *Employer) error
	GetByID(ctx context.Context, id int64) (*Employer, error)
	GetByEmail(ctx context.Context, email string) (*Employer, error)
	EmailExists(ctx context.Context, email string) (bool, error)
	List(ctx context.Context) ([]Employer, error)
	UpdatePassword(ctx context.Context, id int64, hashed string) error
	Delete(ctx context.Context, id int64) error
}

// EmployerRegisterInput carries the employer self-registration form.
type EmployerRegisterInput struct {
	CompanyName        string
	Email              string
	Password           string
	Phone              string
	CompanyDescription string
	Location           string
	Industry           string
	Logo               *FileUpload
}

type EmployerUsecase interface {
	Register(ctx context.Context, input EmployerRegisterInput) (*Employer, error)
	GetDashboard(ctx context.Context, employerID int64) (*EmployerDashboard, error)
}

// EmployerDashboard bundles the data the employer dashboard renders.
type EmployerDashboard struct {
	Employer   *Employer   `json:"employer"`
	Candidates []Candidate `json:"candidates"`
}
