package usecase

import (
	"context"
	"fmt"
	"net/http"
	"path/filepath"

	"jobboard-backend/internal/domain"
	"jobboard-backend/internal/session"
	"jobboard-backend/pkg/apperror"
	"jobboard-backend/pkg/hash"
	"jobboard-backend/pkg/storage"
	"jobboard-backend/pkg/validation"

	"github.com/google/uuid"
)

const (
	resumeDir = "resumes"
	photoDir  = "photos"
)

// Plan prices in AED; the processor expects minor units (fils).
var planPricesAED = map[string]int64{
	domain.PlanBasic:        49,
	domain.PlanIntermediate: 89,
	domain.PlanPremium:      149,
}

type registrationUsecase struct {
	candidates domain.CandidateRepository
	sessions   session.Store
	files      *storage.Store
	payments   domain.PaymentProvider
}

func NewRegistrationUsecase(
	candidates domain.CandidateRepository,
	sessions session.Store,
	files *storage.Store,
	payments domain.PaymentProvider,
) domain.RegistrationUsecase {
	return &registrationUsecase{
		candidates: candidates,
		sessions:   sessions,
		files:      files,
		payments:   payments,
	}
}

// validateProfile runs the full validator set over the shared profile fields.
// Validators run in a fixed order and the first failure wins.
func validateProfile(input *domain.TempSaveInput) error {
	checks := []error{
		validation.TextInput(input.Name, 2, 150),
		validation.SafeEmail(input.Email),
		validation.PhoneNumber(input.Phone),
		validation.TextInput(input.Nationality, 2, 100),
		validation.TextInput(input.Location, 2, 100),
		validation.TextInput(input.Qualification, 2, 100),
		validation.TextInput(input.Experience, 1, 20),
		validation.TextInput(input.Role, 2, 100),
	}
	for _, err := range checks {
		if err != nil {
			return apperror.BadRequest(err.Error())
		}
	}
	return nil
}

func validatePasswordShape(password string) error {
	if len(password) < 6 {
		return apperror.BadRequest("Password must be at least 6 characters long.")
	}
	if len(password) > 128 {
		return apperror.BadRequest("Password is too long (max 128 characters).")
	}
	return nil
}

func (u *registrationUsecase) TempSave(ctx context.Context, sessionID string, input domain.TempSaveInput) error {
	if err := validateProfile(&input); err != nil {
		return err
	}
	if err := validatePasswordShape(input.Password); err != nil {
		return err
	}
	if !domain.ValidPlan(input.Plan) {
		return apperror.BadRequest("Invalid plan selected.")
	}
	if input.Resume == nil {
		return apperror.BadRequest("Please upload your resume.")
	}

	// Early duplicate check. The unique constraint at finalize time is the
	// real enforcement; this just fails fast before taking payment.
	exists, err := u.candidates.EmailExists(ctx, input.Email)
	if err != nil {
		return apperror.Internal(err)
	}
	if exists {
		return apperror.Conflict("An account with this email already exists. Please login.")
	}

	staged := domain.StagedRegistration{
		Name:          input.Name,
		Email:         input.Email,
		Password:      input.Password,
		Phone:         input.Phone,
		Nationality:   input.Nationality,
		Location:      input.Location,
		Qualification: input.Qualification,
		Experience:    input.Experience,
		Role:          input.Role,
		Plan:          input.Plan,
	}

	staged.ResumeTmpPath, err = u.files.SaveTemp(input.Resume.Filename, input.Resume.Content)
	if err != nil {
		return apperror.Internal(err)
	}
	if input.Photo != nil {
		staged.PhotoTmpPath, err = u.files.SaveTemp(input.Photo.Filename, input.Photo.Content)
		if err != nil {
			return apperror.Internal(err)
		}
	}

	// Replaces any prior staged registration for this session, last write wins
	if err := u.sessions.Set(ctx, sessionID, domain.SessionKeyStagedData, staged); err != nil {
		return apperror.Internal(err)
	}
	return nil
}

func (u *registrationUsecase) CreateCheckoutSession(ctx context.Context, plan string) (string, error) {
	if !u.payments.IsConfigured() {
		return "", apperror.New(http.StatusServiceUnavailable, "Payment service temporarily unavailable.", nil)
	}

	amountAED, ok := planPricesAED[plan]
	if !ok {
		plan = domain.PlanBasic
		amountAED = planPricesAED[domain.PlanBasic]
	}

	sessionCheckoutID, err := u.payments.CreateCheckoutSession(ctx, plan, amountAED*100)
	if err != nil {
		return "", apperror.Internal(err)
	}
	return sessionCheckoutID, nil
}

// Finalize converts the staged registration into a permanent record. The
// staged slot is cleared exactly once whichever branch runs: success or
// duplicate-discard. There is no server-side proof of payment here; the flow
// trusts the processor's success redirect.
func (u *registrationUsecase) Finalize(ctx context.Context, sessionID string) (*domain.Candidate, error) {
	var staged domain.StagedRegistration
	found, err := u.sessions.Get(ctx, sessionID, domain.SessionKeyStagedData, &staged)
	if err != nil {
		return nil, apperror.Internal(err)
	}
	if !found {
		return nil, apperror.BadRequest("No registration data found in session.")
	}

	// Re-check: the email may have been taken between stage and finalize.
	exists, err := u.candidates.EmailExists(ctx, staged.Email)
	if err != nil {
		return nil, apperror.Internal(err)
	}
	if exists {
		u.discardStaged(ctx, sessionID, &staged)
		return nil, apperror.Conflict("An account with this email already exists. Please login or use a different email.")
	}

	if staged.Password == "" {
		return nil, apperror.BadRequest("Registration error: Missing password. Please try again.")
	}

	hashed, err := hash.Password(staged.Password)
	if err != nil {
		return nil, apperror.Internal(err)
	}

	candidate := &domain.Candidate{
		Name:          staged.Name,
		Email:         staged.Email,
		Password:      hashed,
		Phone:         staged.Phone,
		Nationality:   staged.Nationality,
		Location:      staged.Location,
		Qualification: staged.Qualification,
		Experience:    staged.Experience,
		Role:          staged.Role,
		Plan:          staged.Plan,
		Skills:        []string{},
	}
	if candidate.Plan == "" {
		candidate.Plan = domain.PlanBasic
	}

	// A temp file that disappeared between stage and finalize leaves the
	// attachment unset rather than pointing the record at a path that will
	// never exist.
	if staged.ResumeTmpPath != "" && u.files.Exists(staged.ResumeTmpPath) {
		candidate.ResumePath = permanentName(resumeDir, staged.ResumeTmpPath)
	}
	if staged.PhotoTmpPath != "" && u.files.Exists(staged.PhotoTmpPath) {
		candidate.PhotoPath = permanentName(photoDir, staged.PhotoTmpPath)
	}

	if err := u.candidates.Create(ctx, candidate); err != nil {
		return nil, err
	}

	// The record and the file moves are not one transaction: a crash here
	// leaves the persisted record without its attachment and an orphaned
	// temp file.
	if candidate.ResumePath != "" {
		if _, err := u.files.Promote(staged.ResumeTmpPath, resumeDir, filepath.Base(candidate.ResumePath)); err != nil {
			return nil, apperror.Internal(err)
		}
	}
	if candidate.PhotoPath != "" {
		if _, err := u.files.Promote(staged.PhotoTmpPath, photoDir, filepath.Base(candidate.PhotoPath)); err != nil {
			return nil, apperror.Internal(err)
		}
	}

	if err := u.sessions.Delete(ctx, sessionID, domain.SessionKeyStagedData); err != nil {
		return nil, apperror.Internal(err)
	}
	return candidate, nil
}

func (u *registrationUsecase) RegisterDirect(ctx context.Context, input domain.DirectRegisterInput) (*domain.Candidate, error) {
	if err := validateProfile(&input.TempSaveInput); err != nil {
		return nil, err
	}
	if err := validatePasswordShape(input.Password); err != nil {
		return nil, err
	}
	if input.Password != input.ConfirmPassword {
		return nil, apperror.BadRequest("Passwords do not match.")
	}
	if !domain.ValidPlan(input.Plan) {
		input.Plan = domain.PlanBasic
	}
	if input.Resume == nil {
		return nil, apperror.BadRequest("Please upload your resume.")
	}

	exists, err := u.candidates.EmailExists(ctx, input.Email)
	if err != nil {
		return nil, apperror.Internal(err)
	}
	if exists {
		return nil, apperror.Conflict("An account with this email already exists. Please login.")
	}

	hashed, err := hash.Password(input.Password)
	if err != nil {
		return nil, apperror.Internal(err)
	}

	candidate := &domain.Candidate{
		Name:          input.Name,
		Email:         input.Email,
		Password:      hashed,
		Phone:         input.Phone,
		Nationality:   input.Nationality,
		Location:      input.Location,
		Qualification: input.Qualification,
		Experience:    input.Experience,
		Role:          input.Role,
		Plan:          input.Plan,
		Skills:        []string{},
	}

	// No staging here: files attach directly before the single commit
	candidate.ResumePath, err = u.files.Save(resumeDir, uniqueName(input.Resume.Filename), input.Resume.Content)
	if err != nil {
		return nil, apperror.Internal(err)
	}
	if input.Photo != nil {
		candidate.PhotoPath, err = u.files.Save(photoDir, uniqueName(input.Photo.Filename), input.Photo.Content)
		if err != nil {
			return nil, apperror.Internal(err)
		}
	}

	if err := u.candidates.Create(ctx, candidate); err != nil {
		// Best-effort cleanup of the just-written files
		_ = u.files.Remove(candidate.ResumePath)
		_ = u.files.Remove(candidate.PhotoPath)
		return nil, err
	}
	return candidate, nil
}

// discardStaged deletes the staged temp files and clears the session slot.
// No orphaned temp files, no orphaned session state.
func (u *registrationUsecase) discardStaged(ctx context.Context, sessionID string, staged *domain.StagedRegistration) {
	_ = u.files.Remove(staged.ResumeTmpPath)
	_ = u.files.Remove(staged.PhotoTmpPath)
	_ = u.sessions.Delete(ctx, sessionID, domain.SessionKeyStagedData)
}

// permanentName derives the stable per-record destination path for a staged
// temp file, or "" when there is none.
func permanentName(subdir, tmpPath string) string {
	if tmpPath == "" {
		return ""
	}
	return filepath.Join(subdir, uniqueName(filepath.Base(tmpPath)))
}

func uniqueName(filename string) string {
	return fmt.Sprintf("%s_%s", uuid.NewString()[:8], filepath.Base(filename))
}
