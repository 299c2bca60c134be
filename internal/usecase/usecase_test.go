package usecase_test

import (
	"context"
	"net/http"
	"strings"
	"testing"
	"time"

	"jobboard-backend/internal/domain"
	"jobboard-backend/internal/session"
	"jobboard-backend/internal/usecase"
	"jobboard-backend/pkg/apperror"
	"jobboard-backend/pkg/hash"
	"jobboard-backend/pkg/storage"

	"github.com/golang-jwt/jwt/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

// Mock Repositories

type MockCandidateRepo struct {
	mock.Mock
}

func (m *MockCandidateRepo) Create(ctx context.Context, c *domain.Candidate) error {
	return m.Called(ctx, c).Error(0)
}
func (m *MockCandidateRepo) GetByID(ctx context.Context, id int64) (*domain.Candidate, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Candidate), args.Error(1)
}
func (m *MockCandidateRepo) GetByEmail(ctx context.Context, email string) (*domain.Candidate, error) {
	args := m.Called(ctx, email)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Candidate), args.Error(1)
}
func (m *MockCandidateRepo) EmailExists(ctx context.Context, email string) (bool, error) {
	args := m.Called(ctx, email)
	return args.Bool(0), args.Error(1)
}
func (m *MockCandidateRepo) List(ctx context.Context) ([]domain.Candidate, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.Candidate), args.Error(1)
}
func (m *MockCandidateRepo) UpdateSkills(ctx context.Context, id int64, skills []string) error {
	return m.Called(ctx, id, skills).Error(0)
}
func (m *MockCandidateRepo) UpdatePassword(ctx context.Context, id int64, hashed string) error {
	return m.Called(ctx, id, hashed).Error(0)
}
func (m *MockCandidateRepo) SetPlaced(ctx context.Context, id int64, placed bool) error {
	return m.Called(ctx, id, placed).Error(0)
}
func (m *MockCandidateRepo) Delete(ctx context.Context, id int64) error {
	return m.Called(ctx, id).Error(0)
}

type MockEmployerRepo struct {
	mock.Mock
}

func (m *MockEmployerRepo) Create(ctx context.Context, e *domain.Employer) error {
	return m.Called(ctx, e).Error(0)
}
func (m *MockEmployerRepo) GetByID(ctx context.Context, id int64) (*domain.Employer, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Employer), args.Error(1)
}
func (m *MockEmployerRepo) GetByEmail(ctx context.Context, email string) (*domain.Employer, error) {
	args := m.Called(ctx, email)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Employer), args.Error(1)
}
func (m *MockEmployerRepo) EmailExists(ctx context.Context, email string) (bool, error) {
	args := m.Called(ctx, email)
	return args.Bool(0), args.Error(1)
}
func (m *MockEmployerRepo) List(ctx context.Context) ([]domain.Employer, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.Employer), args.Error(1)
}
func (m *MockEmployerRepo) UpdatePassword(ctx context.Context, id int64, hashed string) error {
	return m.Called(ctx, id, hashed).Error(0)
}
func (m *MockEmployerRepo) Delete(ctx context.Context, id int64) error {
	return m.Called(ctx, id).Error(0)
}

type MockJobRepo struct {
	mock.Mock
}

func (m *MockJobRepo) Create(ctx context.Context, job *domain.JobOpening) error {
	return m.Called(ctx, job).Error(0)
}
func (m *MockJobRepo) GetByID(ctx context.Context, id int64) (*domain.JobOpening, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.JobOpening), args.Error(1)
}
func (m *MockJobRepo) ListActive(ctx context.Context) ([]domain.JobOpening, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.JobOpening), args.Error(1)
}
func (m *MockJobRepo) ListAll(ctx context.Context) ([]domain.JobOpening, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.JobOpening), args.Error(1)
}
func (m *MockJobRepo) ListByEmployer(ctx context.Context, employerID int64) ([]domain.JobOpening, error) {
	args := m.Called(ctx, employerID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.JobOpening), args.Error(1)
}
func (m *MockJobRepo) Delete(ctx context.Context, id int64) error {
	return m.Called(ctx, id).Error(0)
}

type MockInterestRepo struct {
	mock.Mock
}

func (m *MockInterestRepo) CreateEmployerInterest(ctx context.Context, employerID, candidateID int64) error {
	return m.Called(ctx, employerID, candidateID).Error(0)
}
func (m *MockInterestRepo) CreateCandidateInterest(ctx context.Context, candidateID, jobID int64) error {
	return m.Called(ctx, candidateID, jobID).Error(0)
}
func (m *MockInterestRepo) CountEmployerInterests(ctx context.Context, employerID, candidateID int64) (int, error) {
	args := m.Called(ctx, employerID, candidateID)
	return args.Int(0), args.Error(1)
}
func (m *MockInterestRepo) CountCandidateInterests(ctx context.Context, candidateID, jobID int64) (int, error) {
	args := m.Called(ctx, candidateID, jobID)
	return args.Int(0), args.Error(1)
}

type MockContactRepo struct {
	mock.Mock
}

func (m *MockContactRepo) Create(ctx context.Context, msg *domain.ContactMessage) error {
	return m.Called(ctx, msg).Error(0)
}
func (m *MockContactRepo) List(ctx context.Context) ([]domain.ContactMessage, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.ContactMessage), args.Error(1)
}
func (m *MockContactRepo) Delete(ctx context.Context, id int64) error {
	return m.Called(ctx, id).Error(0)
}

type MockPaymentProvider struct {
	mock.Mock
}

func (m *MockPaymentProvider) CreateCheckoutSession(ctx context.Context, plan string, amountMinor int64) (string, error) {
	args := m.Called(ctx, plan, amountMinor)
	return args.String(0), args.Error(1)
}
func (m *MockPaymentProvider) IsConfigured() bool {
	return m.Called().Bool(0)
}

func validTempSaveInput() domain.TempSaveInput {
	return domain.TempSaveInput{
		Name:          "Jane Smith",
		Email:         "jane@example.com",
		Password:      "secret1",
		Phone:         "+971 50 123 4567",
		Nationality:   "Indian",
		Location:      "Dubai",
		Qualification: "BSc Computer Science",
		Experience:    "5 years",
		Role:          "Backend Engineer",
		Plan:          domain.PlanIntermediate,
		Resume:        &domain.FileUpload{Filename: "cv.pdf", Content: strings.NewReader("resume body")},
	}
}

func TestRegistrationStagedFlow(t *testing.T) {
	ctx := context.Background()
	mockRepo := new(MockCandidateRepo)
	sessions := session.NewMemoryStore()
	files := storage.New(t.TempDir())
	payments := new(MockPaymentProvider)
	uc := usecase.NewRegistrationUsecase(mockRepo, sessions, files, payments)

	const sid = "sess-abc"

	mockRepo.On("EmailExists", ctx, "jane@example.com").Return(false, nil)
	mockRepo.On("Create", ctx, mock.AnythingOfType("*domain.Candidate")).Return(nil).Run(func(args mock.Arguments) {
		args.Get(1).(*domain.Candidate).ID = 42
	})

	err := uc.TempSave(ctx, sid, validTempSaveInput())
	require.NoError(t, err)

	t.Run("Staged data sits in the session with the temp file on disk", func(t *testing.T) {
		var staged domain.StagedRegistration
		found, err := sessions.Get(ctx, sid, domain.SessionKeyStagedData, &staged)
		require.NoError(t, err)
		require.True(t, found)
		assert.Equal(t, "jane@example.com", staged.Email)
		assert.Equal(t, "secret1", staged.Password)
		assert.True(t, files.Exists(staged.ResumeTmpPath))
	})

	candidate, err := uc.Finalize(ctx, sid)
	require.NoError(t, err)

	t.Run("Finalize persists a hashed password", func(t *testing.T) {
		assert.NotEqual(t, "secret1", candidate.Password)
		assert.True(t, hash.IsHashed(candidate.Password))
		assert.True(t, hash.Verify("secret1", candidate.Password))
	})

	t.Run("Finalize promotes the resume out of the staging area", func(t *testing.T) {
		assert.True(t, files.Exists(candidate.ResumePath))
		assert.False(t, strings.HasPrefix(candidate.ResumePath, storage.TempDir))
	})

	t.Run("Finalize clears the staged slot", func(t *testing.T) {
		var staged domain.StagedRegistration
		found, err := sessions.Get(ctx, sid, domain.SessionKeyStagedData, &staged)
		require.NoError(t, err)
		assert.False(t, found)
	})

	t.Run("Second finalize has nothing to consume", func(t *testing.T) {
		_, err := uc.Finalize(ctx, sid)
		require.Error(t, err)
		assert.Contains(t, err.Error(), "No registration data found")
	})
}

func TestFinalizeDuplicateEmailDiscards(t *testing.T) {
	ctx := context.Background()
	mockRepo := new(MockCandidateRepo)
	sessions := session.NewMemoryStore()
	files := storage.New(t.TempDir())
	uc := usecase.NewRegistrationUsecase(mockRepo, sessions, files, new(MockPaymentProvider))

	const sid = "sess-dup"

	// Free at stage time, taken by the time the redirect lands
	mockRepo.On("EmailExists", ctx, "jane@example.com").Return(false, nil).Once()
	mockRepo.On("EmailExists", ctx, "jane@example.com").Return(true, nil).Once()

	require.NoError(t, uc.TempSave(ctx, sid, validTempSaveInput()))

	var staged domain.StagedRegistration
	found, err := sessions.Get(ctx, sid, domain.SessionKeyStagedData, &staged)
	require.NoError(t, err)
	require.True(t, found)

	_, err = uc.Finalize(ctx, sid)
	require.Error(t, err)

	t.Run("No permanent record is created", func(t *testing.T) {
		var appErr *apperror.AppError
		require.ErrorAs(t, err, &appErr)
		assert.Equal(t, http.StatusConflict, appErr.Code)
		mockRepo.AssertNotCalled(t, "Create", mock.Anything, mock.Anything)
	})

	t.Run("Temp files are deleted and the slot is cleared", func(t *testing.T) {
		assert.False(t, files.Exists(staged.ResumeTmpPath))
		var after domain.StagedRegistration
		found, err := sessions.Get(ctx, sid, domain.SessionKeyStagedData, &after)
		require.NoError(t, err)
		assert.False(t, found)
	})
}

func TestFinalizeMissingTempFile(t *testing.T) {
	ctx := context.Background()
	mockRepo := new(MockCandidateRepo)
	sessions := session.NewMemoryStore()
	files := storage.New(t.TempDir())
	uc := usecase.NewRegistrationUsecase(mockRepo, sessions, files, new(MockPaymentProvider))

	const sid = "sess-gone"

	mockRepo.On("EmailExists", ctx, "jane@example.com").Return(false, nil)
	mockRepo.On("Create", ctx, mock.AnythingOfType("*domain.Candidate")).Return(nil)

	require.NoError(t, uc.TempSave(ctx, sid, validTempSaveInput()))

	var staged domain.StagedRegistration
	found, err := sessions.Get(ctx, sid, domain.SessionKeyStagedData, &staged)
	require.NoError(t, err)
	require.True(t, found)
	require.NoError(t, files.Remove(staged.ResumeTmpPath))

	candidate, err := uc.Finalize(ctx, sid)
	require.NoError(t, err)

	t.Run("Attachment stays unset instead of pointing at a file that never existed", func(t *testing.T) {
		assert.Empty(t, candidate.ResumePath)
	})

	t.Run("Slot is still cleared", func(t *testing.T) {
		var after domain.StagedRegistration
		found, err := sessions.Get(ctx, sid, domain.SessionKeyStagedData, &after)
		require.NoError(t, err)
		assert.False(t, found)
	})
}

func TestTempSaveValidation(t *testing.T) {
	ctx := context.Background()
	mockRepo := new(MockCandidateRepo)
	uc := usecase.NewRegistrationUsecase(mockRepo, session.NewMemoryStore(), storage.New(t.TempDir()), new(MockPaymentProvider))

	mockRepo.On("EmailExists", mock.Anything, mock.Anything).Return(false, nil)

	cases := []struct {
		name   string
		mutate func(*domain.TempSaveInput)
	}{
		{"Name too short", func(in *domain.TempSaveInput) { in.Name = "J" }},
		{"SQL payload in name", func(in *domain.TempSaveInput) { in.Name = "Jane'; DROP TABLE users" }},
		{"Malformed email", func(in *domain.TempSaveInput) { in.Email = "not-an-email" }},
		{"Phone too short", func(in *domain.TempSaveInput) { in.Phone = "12345" }},
		{"Password too short", func(in *domain.TempSaveInput) { in.Password = "abc" }},
		{"Unknown plan", func(in *domain.TempSaveInput) { in.Plan = "platinum" }},
		{"Missing resume", func(in *domain.TempSaveInput) { in.Resume = nil }},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			input := validTempSaveInput()
			tc.mutate(&input)
			err := uc.TempSave(ctx, "sid", input)
			require.Error(t, err)
			var appErr *apperror.AppError
			require.ErrorAs(t, err, &appErr)
			assert.Equal(t, http.StatusBadRequest, appErr.Code)
		})
	}

	t.Run("Duplicate email is a conflict, not a validation failure", func(t *testing.T) {
		dupRepo := new(MockCandidateRepo)
		dupRepo.On("EmailExists", ctx, "jane@example.com").Return(true, nil)
		dupUC := usecase.NewRegistrationUsecase(dupRepo, session.NewMemoryStore(), storage.New(t.TempDir()), new(MockPaymentProvider))

		err := dupUC.TempSave(ctx, "sid", validTempSaveInput())
		var appErr *apperror.AppError
		require.ErrorAs(t, err, &appErr)
		assert.Equal(t, http.StatusConflict, appErr.Code)
	})
}

func TestCheckoutSessionPricing(t *testing.T) {
	ctx := context.Background()

	cases := []struct {
		plan        string
		amountMinor int64
	}{
		{domain.PlanBasic, 4900},
		{domain.PlanIntermediate, 8900},
		{domain.PlanPremium, 14900},
		{"bogus", 4900}, // unknown plans fall back to basic
	}

	for _, tc := range cases {
		t.Run(tc.plan, func(t *testing.T) {
			payments := new(MockPaymentProvider)
			payments.On("IsConfigured").Return(true)
			payments.On("CreateCheckoutSession", ctx, mock.AnythingOfType("string"), tc.amountMinor).
				Return("cs_123", nil)

			uc := usecase.NewRegistrationUsecase(new(MockCandidateRepo), session.NewMemoryStore(), storage.New(t.TempDir()), payments)
			id, err := uc.CreateCheckoutSession(ctx, tc.plan)
			require.NoError(t, err)
			assert.Equal(t, "cs_123", id)
			payments.AssertExpectations(t)
		})
	}

	t.Run("Unconfigured processor refuses checkout", func(t *testing.T) {
		payments := new(MockPaymentProvider)
		payments.On("IsConfigured").Return(false)
		uc := usecase.NewRegistrationUsecase(new(MockCandidateRepo), session.NewMemoryStore(), storage.New(t.TempDir()), payments)
		_, err := uc.CreateCheckoutSession(ctx, domain.PlanBasic)
		require.Error(t, err)
		payments.AssertNotCalled(t, "CreateCheckoutSession", mock.Anything, mock.Anything, mock.Anything)
	})
}

func TestRegisterDirect(t *testing.T) {
	ctx := context.Background()

	t.Run("Mismatched password confirmation fails before any side effect", func(t *testing.T) {
		mockRepo := new(MockCandidateRepo)
		uc := usecase.NewRegistrationUsecase(mockRepo, session.NewMemoryStore(), storage.New(t.TempDir()), new(MockPaymentProvider))

		input := domain.DirectRegisterInput{TempSaveInput: validTempSaveInput(), ConfirmPassword: "different"}
		_, err := uc.RegisterDirect(ctx, input)
		require.Error(t, err)
		assert.Contains(t, err.Error(), "Passwords do not match")
		mockRepo.AssertNotCalled(t, "Create", mock.Anything, mock.Anything)
	})

	t.Run("Commits in one step with hashed password and stored resume", func(t *testing.T) {
		mockRepo := new(MockCandidateRepo)
		files := storage.New(t.TempDir())
		uc := usecase.NewRegistrationUsecase(mockRepo, session.NewMemoryStore(), files, new(MockPaymentProvider))

		mockRepo.On("EmailExists", ctx, "jane@example.com").Return(false, nil)
		mockRepo.On("Create", ctx, mock.AnythingOfType("*domain.Candidate")).Return(nil)

		input := domain.DirectRegisterInput{TempSaveInput: validTempSaveInput(), ConfirmPassword: "secret1"}
		candidate, err := uc.RegisterDirect(ctx, input)
		require.NoError(t, err)
		assert.True(t, hash.Verify("secret1", candidate.Password))
		assert.True(t, files.Exists(candidate.ResumePath))
		assert.False(t, strings.HasPrefix(candidate.ResumePath, storage.TempDir))
	})
}

func TestExpressInterestIdempotence(t *testing.T) {
	ctx := context.Background()
	candidate := &domain.Candidate{ID: 7, Name: "Jane"}

	t.Run("First expression records the pair", func(t *testing.T) {
		interests := new(MockInterestRepo)
		candidates := new(MockCandidateRepo)
		candidates.On("GetByID", ctx, int64(7)).Return(candidate, nil)
		interests.On("CountEmployerInterests", ctx, int64(3), int64(7)).Return(0, nil)
		interests.On("CreateEmployerInterest", ctx, int64(3), int64(7)).Return(nil)

		uc := usecase.NewInterestUsecase(interests, candidates, new(MockEmployerRepo), new(MockJobRepo))
		assert.NoError(t, uc.ExpressEmployerInterest(ctx, 3, 7))
	})

	t.Run("Repeat expression skips the insert", func(t *testing.T) {
		interests := new(MockInterestRepo)
		candidates := new(MockCandidateRepo)
		candidates.On("GetByID", ctx, int64(7)).Return(candidate, nil)
		interests.On("CountEmployerInterests", ctx, int64(3), int64(7)).Return(1, nil)

		uc := usecase.NewInterestUsecase(interests, candidates, new(MockEmployerRepo), new(MockJobRepo))
		assert.NoError(t, uc.ExpressEmployerInterest(ctx, 3, 7))
		interests.AssertNotCalled(t, "CreateEmployerInterest", mock.Anything, mock.Anything, mock.Anything)
	})

	t.Run("Concurrent duplicate insert is absorbed as success", func(t *testing.T) {
		interests := new(MockInterestRepo)
		candidates := new(MockCandidateRepo)
		candidates.On("GetByID", ctx, int64(7)).Return(candidate, nil)
		interests.On("CountEmployerInterests", ctx, int64(3), int64(7)).Return(0, nil)
		interests.On("CreateEmployerInterest", ctx, int64(3), int64(7)).
			Return(apperror.Conflict("Interest already recorded."))

		uc := usecase.NewInterestUsecase(interests, candidates, new(MockEmployerRepo), new(MockJobRepo))
		assert.NoError(t, uc.ExpressEmployerInterest(ctx, 3, 7))
	})

	t.Run("Unknown candidate is a 404, not a silent success", func(t *testing.T) {
		candidates := new(MockCandidateRepo)
		candidates.On("GetByID", ctx, int64(99)).Return(nil, nil)

		uc := usecase.NewInterestUsecase(new(MockInterestRepo), candidates, new(MockEmployerRepo), new(MockJobRepo))
		err := uc.ExpressEmployerInterest(ctx, 3, 99)
		var appErr *apperror.AppError
		require.ErrorAs(t, err, &appErr)
		assert.Equal(t, http.StatusNotFound, appErr.Code)
	})

	t.Run("Candidate repeat expression skips the insert", func(t *testing.T) {
		interests := new(MockInterestRepo)
		jobs := new(MockJobRepo)
		jobs.On("GetByID", ctx, int64(5)).Return(&domain.JobOpening{ID: 5, IsActive: true}, nil)
		interests.On("CountCandidateInterests", ctx, int64(7), int64(5)).Return(1, nil)

		uc := usecase.NewInterestUsecase(interests, new(MockCandidateRepo), new(MockEmployerRepo), jobs)
		assert.NoError(t, uc.ExpressCandidateInterest(ctx, 7, 5))
		interests.AssertNotCalled(t, "CreateCandidateInterest", mock.Anything, mock.Anything, mock.Anything)
	})

	t.Run("Candidate cannot express interest in an inactive job", func(t *testing.T) {
		jobs := new(MockJobRepo)
		jobs.On("GetByID", ctx, int64(5)).Return(&domain.JobOpening{ID: 5, IsActive: false}, nil)

		uc := usecase.NewInterestUsecase(new(MockInterestRepo), new(MockCandidateRepo), new(MockEmployerRepo), jobs)
		err := uc.ExpressCandidateInterest(ctx, 7, 5)
		var appErr *apperror.AppError
		require.ErrorAs(t, err, &appErr)
		assert.Equal(t, http.StatusNotFound, appErr.Code)
	})
}

func TestLoginFailureIsGeneric(t *testing.T) {
	ctx := context.Background()
	hashed, err := hash.Password("right-password")
	require.NoError(t, err)

	candidates := new(MockCandidateRepo)
	candidates.On("GetByEmail", ctx, "missing@example.com").Return(nil, nil)
	candidates.On("GetByEmail", ctx, "jane@example.com").
		Return(&domain.Candidate{ID: 7, Name: "Jane", Email: "jane@example.com", Password: hashed}, nil)

	sessions := session.NewMemoryStore()
	uc := usecase.NewAuthUsecase(candidates, new(MockEmployerRepo), sessions)

	_, errUnknown := uc.LoginCandidate(ctx, "sid", "missing@example.com", "whatever")
	_, errWrongPw := uc.LoginCandidate(ctx, "sid", "jane@example.com", "wrong-password")

	t.Run("Unknown email and wrong password are indistinguishable", func(t *testing.T) {
		require.Error(t, errUnknown)
		require.Error(t, errWrongPw)
		assert.Equal(t, errUnknown.Error(), errWrongPw.Error())
	})

	t.Run("Successful login writes the identity into the session", func(t *testing.T) {
		identity, err := uc.LoginCandidate(ctx, "sid", "jane@example.com", "right-password")
		require.NoError(t, err)
		assert.Equal(t, domain.RoleEmployee, identity.UserType)

		var userType string
		found, err := sessions.Get(ctx, "sid", domain.SessionKeyUserType, &userType)
		require.NoError(t, err)
		require.True(t, found)
		assert.Equal(t, domain.RoleEmployee, userType)
	})

	t.Run("Logout clears identity keys and is idempotent", func(t *testing.T) {
		require.NoError(t, uc.Logout(ctx, "sid"))
		require.NoError(t, uc.Logout(ctx, "sid"))

		var userType string
		found, err := sessions.Get(ctx, "sid", domain.SessionKeyUserType, &userType)
		require.NoError(t, err)
		assert.False(t, found)
	})
}

func TestUpdateSkills(t *testing.T) {
	ctx := context.Background()

	t.Run("Splits on commas, trims, drops blanks", func(t *testing.T) {
		mockRepo := new(MockCandidateRepo)
		mockRepo.On("UpdateSkills", ctx, int64(7), []string{"Go", "PostgreSQL", "Redis"}).Return(nil)

		uc := usecase.NewCandidateUsecase(mockRepo, new(MockJobRepo))
		require.NoError(t, uc.UpdateSkills(ctx, 7, " Go ,PostgreSQL, ,Redis,"))
		mockRepo.AssertExpectations(t)
	})

	t.Run("Empty input clears the list", func(t *testing.T) {
		mockRepo := new(MockCandidateRepo)
		mockRepo.On("UpdateSkills", ctx, int64(7), []string{}).Return(nil)

		uc := usecase.NewCandidateUsecase(mockRepo, new(MockJobRepo))
		require.NoError(t, uc.UpdateSkills(ctx, 7, ""))
	})

	t.Run("Injection payload is rejected", func(t *testing.T) {
		mockRepo := new(MockCandidateRepo)
		uc := usecase.NewCandidateUsecase(mockRepo, new(MockJobRepo))
		err := uc.UpdateSkills(ctx, 7, "Go'; DROP TABLE candidates--")
		require.Error(t, err)
		mockRepo.AssertNotCalled(t, "UpdateSkills", mock.Anything, mock.Anything, mock.Anything)
	})
}

func TestDeleteJobOwnership(t *testing.T) {
	ctx := context.Background()
	jobs := new(MockJobRepo)
	jobs.On("GetByID", ctx, int64(10)).Return(&domain.JobOpening{ID: 10, EmployerID: 3}, nil)

	uc := usecase.NewJobUsecase(jobs)

	t.Run("Foreign employer cannot delete", func(t *testing.T) {
		err := uc.DeleteJob(ctx, 99, 10)
		var appErr *apperror.AppError
		require.ErrorAs(t, err, &appErr)
		assert.Equal(t, http.StatusForbidden, appErr.Code)
		jobs.AssertNotCalled(t, "Delete", mock.Anything, mock.Anything)
	})

	t.Run("Owner can delete", func(t *testing.T) {
		jobs.On("Delete", ctx, int64(10)).Return(nil)
		assert.NoError(t, uc.DeleteJob(ctx, 3, 10))
	})
}

func TestTogglePlaced(t *testing.T) {
	ctx := context.Background()
	candidates := new(MockCandidateRepo)
	candidates.On("GetByID", ctx, int64(7)).Return(&domain.Candidate{ID: 7, IsPlaced: false}, nil)
	candidates.On("SetPlaced", ctx, int64(7), true).Return(nil)

	uc := usecase.NewAdminUsecase(usecase.AdminConfig{}, candidates, new(MockEmployerRepo), new(MockJobRepo), new(MockContactRepo))

	placed, err := uc.TogglePlaced(ctx, 7)
	require.NoError(t, err)
	assert.True(t, placed)
	candidates.AssertExpectations(t)
}

func TestAdminLogin(t *testing.T) {
	ctx := context.Background()
	hashed, err := hash.Password("admin-secret")
	require.NoError(t, err)

	cfg := usecase.AdminConfig{
		Email:        "admin@example.com",
		PasswordHash: hashed,
		JWTSecret:    "test-signing-key",
		TokenTTL:     time.Hour,
	}
	uc := usecase.NewAdminUsecase(cfg, new(MockCandidateRepo), new(MockEmployerRepo), new(MockJobRepo), new(MockContactRepo))

	t.Run("Wrong credentials are rejected generically", func(t *testing.T) {
		_, err1 := uc.Login(ctx, "nobody@example.com", "admin-secret")
		_, err2 := uc.Login(ctx, "admin@example.com", "wrong")
		require.Error(t, err1)
		require.Error(t, err2)
		assert.Equal(t, err1.Error(), err2.Error())
	})

	t.Run("Valid credentials yield a signed admin token", func(t *testing.T) {
		tokenStr, err := uc.Login(ctx, "admin@example.com", "admin-secret")
		require.NoError(t, err)

		token, err := jwt.Parse(tokenStr, func(t *jwt.Token) (interface{}, error) {
			return []byte(cfg.JWTSecret), nil
		})
		require.NoError(t, err)
		claims := token.Claims.(jwt.MapClaims)
		assert.Equal(t, domain.RoleAdmin, claims["role"])
	})
}

func TestEmployerRegisterDescriptionBounds(t *testing.T) {
	ctx := context.Background()

	validInput := func() domain.EmployerRegisterInput {
		return domain.EmployerRegisterInput{
			CompanyName: "Acme Corp",
			Email:       "hr@acme.com",
			Password:    "secret1",
			Phone:       "+971 4 123 4567",
			Location:    "Dubai",
			Industry:    "Logistics",
		}
	}

	newUC := func(employers *MockEmployerRepo) domain.EmployerUsecase {
		return usecase.NewEmployerUsecase(employers, new(MockCandidateRepo), storage.New(t.TempDir()))
	}

	t.Run("Short description is accepted", func(t *testing.T) {
		employers := new(MockEmployerRepo)
		employers.On("EmailExists", ctx, "hr@acme.com").Return(false, nil)
		employers.On("Create", ctx, mock.AnythingOfType("*domain.Employer")).Return(nil)

		input := validInput()
		input.CompanyDescription = "Great co"
		employer, err := newUC(employers).Register(ctx, input)
		require.NoError(t, err)
		assert.Equal(t, "Great co", employer.CompanyDescription)
	})

	t.Run("Absent description is accepted", func(t *testing.T) {
		employers := new(MockEmployerRepo)
		employers.On("EmailExists", ctx, "hr@acme.com").Return(false, nil)
		employers.On("Create", ctx, mock.AnythingOfType("*domain.Employer")).Return(nil)

		_, err := newUC(employers).Register(ctx, validInput())
		require.NoError(t, err)
	})

	t.Run("Overlong description fails validation", func(t *testing.T) {
		employers := new(MockEmployerRepo)
		input := validInput()
		input.CompanyDescription = strings.Repeat("a", 2001)
		_, err := newUC(employers).Register(ctx, input)
		require.Error(t, err)
		var appErr *apperror.AppError
		require.ErrorAs(t, err, &appErr)
		assert.Equal(t, http.StatusBadRequest, appErr.Code)
		employers.AssertNotCalled(t, "Create", mock.Anything, mock.Anything)
	})
}

func TestAdminAccountRemoval(t *testing.T) {
	ctx := context.Background()

	t.Run("Deleting a candidate delegates to the repository", func(t *testing.T) {
		candidates := new(MockCandidateRepo)
		candidates.On("GetByID", ctx, int64(7)).Return(&domain.Candidate{ID: 7}, nil)
		candidates.On("Delete", ctx, int64(7)).Return(nil)

		uc := usecase.NewAdminUsecase(usecase.AdminConfig{}, candidates, new(MockEmployerRepo), new(MockJobRepo), new(MockContactRepo))
		require.NoError(t, uc.DeleteCandidate(ctx, 7))
		candidates.AssertExpectations(t)
	})

	t.Run("Unknown candidate is a 404", func(t *testing.T) {
		candidates := new(MockCandidateRepo)
		candidates.On("GetByID", ctx, int64(99)).Return(nil, nil)

		uc := usecase.NewAdminUsecase(usecase.AdminConfig{}, candidates, new(MockEmployerRepo), new(MockJobRepo), new(MockContactRepo))
		err := uc.DeleteCandidate(ctx, 99)
		var appErr *apperror.AppError
		require.ErrorAs(t, err, &appErr)
		assert.Equal(t, http.StatusNotFound, appErr.Code)
		candidates.AssertNotCalled(t, "Delete", mock.Anything, mock.Anything)
	})

	t.Run("Deleting an employer delegates to the repository", func(t *testing.T) {
		employers := new(MockEmployerRepo)
		employers.On("GetByID", ctx, int64(3)).Return(&domain.Employer{ID: 3}, nil)
		employers.On("Delete", ctx, int64(3)).Return(nil)

		uc := usecase.NewAdminUsecase(usecase.AdminConfig{}, new(MockCandidateRepo), employers, new(MockJobRepo), new(MockContactRepo))
		require.NoError(t, uc.DeleteEmployer(ctx, 3))
		employers.AssertExpectations(t)
	})

	t.Run("Unknown employer is a 404", func(t *testing.T) {
		employers := new(MockEmployerRepo)
		employers.On("GetByID", ctx, int64(99)).Return(nil, nil)

		uc := usecase.NewAdminUsecase(usecase.AdminConfig{}, new(MockCandidateRepo), employers, new(MockJobRepo), new(MockContactRepo))
		err := uc.DeleteEmployer(ctx, 99)
		var appErr *apperror.AppError
		require.ErrorAs(t, err, &appErr)
		assert.Equal(t, http.StatusNotFound, appErr.Code)
		employers.AssertNotCalled(t, "Delete", mock.Anything, mock.Anything)
	})
}

func TestAdminContactInbox(t *testing.T) {
	ctx := context.Background()
	contacts := new(MockContactRepo)
	contacts.On("List", ctx).Return([]domain.ContactMessage{{ID: 1, Name: "Jane Smith"}}, nil)
	contacts.On("Delete", ctx, int64(1)).Return(nil)

	uc := usecase.NewAdminUsecase(usecase.AdminConfig{}, new(MockCandidateRepo), new(MockEmployerRepo), new(MockJobRepo), contacts)

	messages, err := uc.ListContacts(ctx)
	require.NoError(t, err)
	require.Len(t, messages, 1)
	assert.Equal(t, "Jane Smith", messages[0].Name)

	require.NoError(t, uc.DeleteContact(ctx, 1))
	contacts.AssertExpectations(t)
}

func TestSubmitContact(t *testing.T) {
	ctx := context.Background()

	t.Run("Valid message is persisted", func(t *testing.T) {
		contacts := new(MockContactRepo)
		contacts.On("Create", ctx, mock.AnythingOfType("*domain.ContactMessage")).Return(nil)

		uc := usecase.NewContactUsecase(contacts, nil)
		err := uc.SubmitContact(ctx, &domain.ContactMessage{
			Name:    "Jane Smith",
			Email:   "jane@example.com",
			Phone:   "+971501234567",
			Message: "I would like to know more about your premium plan.",
		})
		require.NoError(t, err)
		contacts.AssertExpectations(t)
	})

	t.Run("Short message fails validation", func(t *testing.T) {
		contacts := new(MockContactRepo)
		uc := usecase.NewContactUsecase(contacts, nil)
		err := uc.SubmitContact(ctx, &domain.ContactMessage{
			Name:    "Jane Smith",
			Email:   "jane@example.com",
			Phone:   "+971501234567",
			Message: "hi",
		})
		require.Error(t, err)
		contacts.AssertNotCalled(t, "Create", mock.Anything, mock.Anything)
	})

	t.Run("Injection in message is rejected", func(t *testing.T) {
		contacts := new(MockContactRepo)
		uc := usecase.NewContactUsecase(contacts, nil)
		err := uc.SubmitContact(ctx, &domain.ContactMessage{
			Name:    "Jane Smith",
			Email:   "jane@example.com",
			Phone:   "+971501234567",
			Message: "x'; SELECT pg_sleep(10);--",
		})
		require.Error(t, err)
	})
}
