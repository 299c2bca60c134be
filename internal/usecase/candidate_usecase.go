package usecase

import (
	"context"
	"strings"

	"jobboard-backend/internal/domain"
	"jobboard-backend/pkg/apperror"
	"jobboard-backend/pkg/validation"
)

type candidateUsecase struct {
	candidates domain.CandidateRepository
	jobs       domain.JobRepository
}

func NewCandidateUsecase(candidates domain.CandidateRepository, jobs domain.JobRepository) domain.CandidateUsecase {
	return &candidateUsecase{candidates: candidates, jobs: jobs}
}

func (u *candidateUsecase) GetDashboard(ctx context.Context, candidateID int64) (*domain.CandidateDashboard, error) {
	candidate, err := u.candidates.GetByID(ctx, candidateID)
	if err != nil {
		return nil, apperror.Internal(err)
	}
	if candidate == nil {
		return nil, apperror.NotFound("Candidate not found.")
	}

	jobs, err := u.jobs.ListActive(ctx)
	if err != nil {
		return nil, apperror.Internal(err)
	}

	return &domain.CandidateDashboard{Candidate: candidate, OpenJobs: jobs}, nil
}

// UpdateSkills replaces the skill list from a comma-separated string. Blank
// entries are dropped; an empty input clears the list.
func (u *candidateUsecase) UpdateSkills(ctx context.Context, candidateID int64, skills string) error {
	if err := validation.CheckInjection(skills); err != nil {
		return apperror.BadRequest(err.Error())
	}
	if len(skills) > 1000 {
		return apperror.BadRequest("Skills list is too long (max 1000 characters).")
	}

	parsed := []string{}
	for _, s := range strings.Split(skills, ",") {
		s = strings.TrimSpace(s)
		if s != "" {
			parsed = append(parsed, s)
		}
	}

	if err := u.candidates.UpdateSkills(ctx, candidateID, parsed); err != nil {
		return apperror.Internal(err)
	}
	return nil
}
