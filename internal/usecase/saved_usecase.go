package usecase

import (
	"context"
	"errors"

	"go-jobfinder-backend/internal/domain"
	"go-jobfinder-backend/pkg/apperror"
)

type savedPostingUsecase struct {
	savedRepo   domain.SavedPostingRepository
	postingRepo domain.PostingRepository
}

func NewSavedPostingUsecase(savedRepo domain.SavedPostingRepository, postingRepo domain.PostingRepository) domain.SavedPostingUsecase {
	return &savedPostingUsecase{
		savedRepo:   savedRepo,
		postingRepo: postingRepo,
	}
}

func (u *savedPostingUsecase) SaveJob(ctx context.Context, userID int64, jobID string, score float64) error {
	if jobID == "" {
		return apperror.BadRequest("Job ID is required")
	}
	if score < 0 || score > 1 {
		return apperror.BadRequest("Similarity score must be between 0 and 1")
	}

	if _, err := u.postingRepo.GetByJobID(ctx, jobID); err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return apperror.NotFound("Job not found in cache; search for it first")
		}
		return apperror.Internal(err)
	}

	if err := u.savedRepo.Save(ctx, &domain.SavedPosting{
		UserID:          userID,
		JobID:           jobID,
		SimilarityScore: score,
	}); err != nil {
		return apperror.Internal(err)
	}
	return nil
}

func (u *savedPostingUsecase) ListSavedJobs(ctx context.Context, userID int64) ([]domain.SavedPostingWithJob, error) {
	saved, err := u.savedRepo.ListByUser(ctx, userID)
	if err != nil {
		return nil, apperror.Internal(err)
	}
	for i := range saved {
		saved[i].FitPercentage = saved[i].SimilarityScore * 100
	}
	return saved, nil
}

func (u *savedPostingUsecase) UnsaveJob(ctx context.Context, userID int64, jobID string) error {
	if err := u.savedRepo.Delete(ctx, userID, jobID); err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return apperror.NotFound("Saved job not found")
		}
		return apperror.Internal(err)
	}
	return nil
}
