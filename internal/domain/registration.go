package domain

import (
	"context"
	"io"
)

// FileUpload is a form upload keyed by its original filename.
type FileUpload struct {
	Filename string
	Content  io.Reader
}

// StagedRegistration is a candidate's submitted profile held in session-scoped
// storage pending the payment redirect. It carries the plaintext password and
// temp file paths; it exists only inside one session and is consumed exactly
// once by finalize or a discard path.
type StagedRegistration struct {
	Name          string `json:"name"`
	Email         string `json:"email"`
	Password      string `json:"password"`
	Phone         string `json:"phone"`
	Nationality   string `json:"nationality"`
	Location      string `json:"location"`
	Qualification string `json:"qualification"`
	Experience    string `json:"experience"`
	Role          string `json:"role"`
	Plan          string `json:"plan"`
	ResumeTmpPath string `json:"resume_tmp_path,omitempty"`
	PhotoTmpPath  string `json:"photo_tmp_path,omitempty"`
}

// TempSaveInput carries the temp-save form: full profile fields, plaintext
// password and optional uploads.
type TempSaveInput struct {
	Name          string
	Email         string
	Password      string
	Phone         string
	Nationality   string
	Location      string
	Qualification string
	Experience    string
	Role          string
	Plan          string
	Resume        *FileUpload
	Photo         *FileUpload
}

// DirectRegisterInput carries the single-step employee self-registration form.
type DirectRegisterInput struct {
	TempSaveInput
	ConfirmPassword string
}

type RegistrationUsecase interface {
	// TempSave validates and stages a registration into the session slot,
	// replacing any prior staged registration for that session.
	TempSave(ctx context.Context, sessionID string, input TempSaveInput) error

	// CreateCheckoutSession starts a payment for the given plan and returns
	// the processor's checkout-session id.
	CreateCheckoutSession(ctx context.Context, plan string) (string, error)

	// Finalize converts the session's staged registration into a persisted
	// candidate with a hashed password and permanently stored files. The
	// staged slot is cleared on every branch.
	Finalize(ctx context.Context, sessionID string) (*Candidate, error)

	// RegisterDirect validates and commits a registration in one step, with
	// no staging and no payment.
	RegisterDirect(ctx context.Context, input DirectRegisterInput) (*Candidate, error)
}

// PaymentProvider is the opaque checkout collaborator. The processor redirects
// the client to the success or cancel URL; finalization trusts that redirect.
type PaymentProvider interface {
	CreateCheckoutSession(ctx context.Context, plan string, amountMinor int64) (string, error)
	IsConfigured() bool
}
