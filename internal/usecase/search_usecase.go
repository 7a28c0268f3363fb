package usecase

import (
	"context"
	"errors"
	"strings"

	"go-jobfinder-backend/internal/domain"
	"go-jobfinder-backend/internal/jobsource"
	"go-jobfinder-backend/pkg/apperror"
	"go-jobfinder-backend/pkg/logger"
)

const defaultCountry = "gb"

type searchUsecase struct {
	jobs        jobsource.Client
	postingRepo domain.PostingRepository
	profileRepo domain.ProfileRepository
	historyRepo domain.SearchHistoryRepository
}

func NewSearchUsecase(jobs jobsource.Client, postingRepo domain.PostingRepository, profileRepo domain.ProfileRepository, historyRepo domain.SearchHistoryRepository) domain.SearchUsecase {
	return &searchUsecase{
		jobs:        jobs,
		postingRepo: postingRepo,
		profileRepo: profileRepo,
		historyRepo: historyRepo,
	}
}

// SearchJobs runs the full pipeline: live fetch, cache upsert, history log,
// profile ranking. If the live API fails, cached postings matching the query
// are served instead and the result is flagged stale.
func (u *searchUsecase) SearchJobs(ctx context.Context, userID int64, query, country string, maxResults int) (*domain.SearchResult, error) {
	query = strings.TrimSpace(query)
	if query == "" {
		return nil, apperror.BadRequest("Search query is required")
	}
	if country == "" {
		country = defaultCountry
	}

	result := &domain.SearchResult{}

	postings, err := u.jobs.Search(ctx, query, country, maxResults)
	if err != nil {
		logger.Log.Warn("job API unavailable, falling back to cache", "error", err, "query", query)
		cached, cacheErr := u.postingRepo.FetchCached(ctx, domain.PostingFilter{
			TitleContains: query,
			Limit:         maxResults,
		})
		if cacheErr != nil {
			return nil, apperror.Internal(cacheErr)
		}
		postings = cached
		result.Stale = true
		result.Warning = "Live job feed is unavailable; showing previously cached results which may be outdated."
	} else if len(postings) > 0 {
		if err := u.postingRepo.UpsertBatch(ctx, postings); err != nil {
			// Caching failures must not break the search itself.
			logger.Log.Error("failed to cache postings", "error", err)
		}
	}

	if err := u.historyRepo.Add(ctx, &domain.SearchRecord{
		UserID:      userID,
		Query:       query,
		Location:    country,
		ResultCount: len(postings),
	}); err != nil {
		logger.Log.Error("failed to record search", "error", err)
	}

	result.Jobs = postings

	profile, err := u.profileRepo.GetByUserID(ctx, userID)
	if err != nil {
		if !errors.Is(err, domain.ErrNotFound) {
			return nil, apperror.Internal(err)
		}
		// No profile yet: return unranked results.
		return result, nil
	}
	result.Recommendations = rankPostings(profile, postings)
	return result, nil
}

func (u *searchUsecase) ListCachedJobs(ctx context.Context, filter domain.PostingFilter) ([]domain.Posting, error) {
	postings, err := u.postingRepo.FetchCached(ctx, filter)
	if err != nil {
		return nil, apperror.Internal(err)
	}
	return postings, nil
}

func (u *searchUsecase) SearchHistory(ctx context.Context, userID int64, limit int) ([]domain.SearchRecord, error) {
	records, err := u.historyRepo.ListByUser(ctx, userID, limit)
	if err != nil {
		return nil, apperror.Internal(err)
	}
	return records, nil
}
