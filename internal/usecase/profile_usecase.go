package usecase

import (
	"context"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"go-jobfinder-backend/internal/domain"
	"go-jobfinder-backend/internal/resume"
	"go-jobfinder-backend/pkg/apperror"
	"go-jobfinder-backend/pkg/logger"
	"go-jobfinder-backend/pkg/security"

	"github.com/go-playground/validator/v10"
	"github.com/google/uuid"
)

type profileUsecase struct {
	profileRepo domain.ProfileRepository
	parser      *resume.Parser
	validate    *validator.Validate
	uploadDir   string
	maxUpload   int64
}

func NewProfileUsecase(profileRepo domain.ProfileRepository, parser *resume.Parser, validate *validator.Validate, uploadDir string, maxUploadBytes int64) domain.ProfileUsecase {
	return &profileUsecase{
		profileRepo: profileRepo,
		parser:      parser,
		validate:    validate,
		uploadDir:   uploadDir,
		maxUpload:   maxUploadBytes,
	}
}

func (u *profileUsecase) GetProfile(ctx context.Context, userID int64) (*domain.Profile, error) {
	profile, err := u.profileRepo.GetByUserID(ctx, userID)
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return nil, apperror.NotFound("Profile not found. Upload a resume or fill in your details first.")
		}
		return nil, apperror.Internal(err)
	}
	return profile, nil
}

type profileInput struct {
	Education  string `validate:"max=2000"`
	Skills     string `validate:"max=2000"`
	Experience string `validate:"max=5000"`
	Location   string `validate:"max=255"`
}

func (u *profileUsecase) UpdateProfile(ctx context.Context, profile *domain.Profile) error {
	in := profileInput{
		Education:  profile.Education,
		Skills:     profile.Skills,
		Experience: profile.Experience,
		Location:   profile.Location,
	}
	if err := u.validate.Struct(in); err != nil {
		return apperror.BadRequest("Profile fields exceed allowed length")
	}
	profile.UpdatedAt = time.Now()
	if err := u.profileRepo.Upsert(ctx, profile); err != nil {
		return apperror.Internal(err)
	}
	return nil
}

// ImportResume validates and stores the uploaded file, extracts its text,
// parses skills/education/experience out of it and upserts the profile.
func (u *profileUsecase) removeStoredFile(path string) {
	if err := os.Remove(path); err != nil && !os.IsNotExist(err) {
		logger.Log.Warn("failed to remove stored resume", "path", path, "error", err)
	}
}

func (u *profileUsecase) ImportResume(ctx context.Context, userID int64, filename string, data []byte) (*domain.ResumeImportResult, error) {
	result := security.ValidateResumeFile(filename, data, u.maxUpload)
	if !result.Valid {
		return nil, apperror.BadRequest(result.Error)
	}

	storedName := fmt.Sprintf("%s_%s", uuid.NewString(), filepath.Base(filename))
	storedPath := filepath.Join(u.uploadDir, storedName)
	if err := os.MkdirAll(u.uploadDir, 0o755); err != nil {
		return nil, apperror.Internal(err)
	}
	if err := os.WriteFile(storedPath, data, 0o644); err != nil {
		return nil, apperror.Internal(err)
	}

	text, err := resume.ExtractText(filename, data)
	if err != nil {
		u.removeStoredFile(storedPath)
		return nil, apperror.BadRequest(fmt.Sprintf("Could not read resume: %v", err))
	}
	if strings.TrimSpace(text) == "" {
		u.removeStoredFile(storedPath)
		return nil, apperror.BadRequest("Could not extract any text from the resume. Try a different file.")
	}

	parsed := u.parser.Parse(ctx, text)
	logger.Log.Info("resume parsed",
		"user_id", userID,
		"mode", parsed.Mode,
		"skills", len(parsed.Skills))

	existing, err := u.profileRepo.GetByUserID(ctx, userID)
	if err != nil && !errors.Is(err, domain.ErrNotFound) {
		return nil, apperror.Internal(err)
	}

	profile := &domain.Profile{UserID: userID, ResumePath: &storedPath}
	if existing != nil {
		profile.Location = existing.Location
	}
	if len(parsed.Skills) > 0 {
		profile.Skills = strings.Join(parsed.Skills, ", ")
	} else if existing != nil {
		profile.Skills = existing.Skills
	}
	if parsed.Education != "" {
		profile.Education = parsed.Education
	} else if existing != nil {
		profile.Education = existing.Education
	}
	if parsed.Experience != "" {
		profile.Experience = parsed.Experience
	} else if existing != nil {
		profile.Experience = existing.Experience
	}

	profile.UpdatedAt = time.Now()
	if err := u.profileRepo.Upsert(ctx, profile); err != nil {
		u.removeStoredFile(storedPath)
		return nil, apperror.Internal(err)
	}

	// The new upload replaces any previous one on disk.
	if existing != nil && existing.ResumePath != nil && *existing.ResumePath != storedPath {
		u.removeStoredFile(*existing.ResumePath)
	}

	return &domain.ResumeImportResult{
		Profile:        profile,
		ExtractionMode: parsed.Mode,
		SkillCount:     len(parsed.Skills),
	}, nil
}
