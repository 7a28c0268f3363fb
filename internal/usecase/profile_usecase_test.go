package usecase_test

import (
	"context"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"go-jobfinder-backend/internal/domain"
	"go-jobfinder-backend/internal/resume"
	"go-jobfinder-backend/internal/usecase"

	"github.com/go-playground/validator/v10"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

const testMaxUpload = 5 << 20

func TestUpdateProfile(t *testing.T) {
	t.Run("Should stamp the update time before persisting", func(t *testing.T) {
		profiles := new(MockProfileRepo)
		var captured *domain.Profile
		profiles.On("Upsert", mock.Anything, mock.AnythingOfType("*domain.Profile")).
			Return(nil).
			Run(func(args mock.Arguments) {
				captured = args.Get(1).(*domain.Profile)
			})

		uc := usecase.NewProfileUsecase(profiles, resume.NewParser(nil), validator.New(), t.TempDir(), testMaxUpload)
		err := uc.UpdateProfile(context.Background(), &domain.Profile{UserID: 1, Skills: "Golang"})
		require.NoError(t, err)

		require.NotNil(t, captured)
		assert.False(t, captured.UpdatedAt.IsZero())
	})

	t.Run("Should reject fields over the allowed length", func(t *testing.T) {
		profiles := new(MockProfileRepo)
		uc := usecase.NewProfileUsecase(profiles, resume.NewParser(nil), validator.New(), t.TempDir(), testMaxUpload)

		err := uc.UpdateProfile(context.Background(), &domain.Profile{
			UserID:   1,
			Location: strings.Repeat("x", 300),
		})
		assert.Error(t, err)
		profiles.AssertNotCalled(t, "Upsert", mock.Anything, mock.Anything)
	})
}

func TestImportResume(t *testing.T) {
	resumeText := []byte("Skills: Golang, Docker\nEducation: BSc Computer Science\nExperience: 5 years backend")

	t.Run("Should store the file, parse it and stamp the update time", func(t *testing.T) {
		uploadDir := t.TempDir()

		profiles := new(MockProfileRepo)
		profiles.On("GetByUserID", mock.Anything, int64(1)).Return(nil, domain.ErrNotFound)
		var captured *domain.Profile
		profiles.On("Upsert", mock.Anything, mock.AnythingOfType("*domain.Profile")).
			Return(nil).
			Run(func(args mock.Arguments) {
				captured = args.Get(1).(*domain.Profile)
			})

		uc := usecase.NewProfileUsecase(profiles, resume.NewParser(nil), validator.New(), uploadDir, testMaxUpload)
		result, err := uc.ImportResume(context.Background(), 1, "cv.txt", resumeText)
		require.NoError(t, err)

		assert.Greater(t, result.SkillCount, 0)
		require.NotNil(t, captured)
		assert.False(t, captured.UpdatedAt.IsZero())
		require.NotNil(t, captured.ResumePath)
		_, statErr := os.Stat(*captured.ResumePath)
		assert.NoError(t, statErr)
	})

	t.Run("Should remove the stored file when no text can be extracted", func(t *testing.T) {
		uploadDir := t.TempDir()
		profiles := new(MockProfileRepo)

		uc := usecase.NewProfileUsecase(profiles, resume.NewParser(nil), validator.New(), uploadDir, testMaxUpload)
		_, err := uc.ImportResume(context.Background(), 1, "blank.txt", []byte("   \n\t  "))
		require.Error(t, err)

		entries, readErr := os.ReadDir(uploadDir)
		require.NoError(t, readErr)
		assert.Empty(t, entries, "a failed import must not leave files behind")
		profiles.AssertNotCalled(t, "Upsert", mock.Anything, mock.Anything)
	})

	t.Run("Should replace the previous upload on success", func(t *testing.T) {
		uploadDir := t.TempDir()
		oldPath := filepath.Join(uploadDir, "old_cv.txt")
		require.NoError(t, os.WriteFile(oldPath, []byte("outdated"), 0o644))

		profiles := new(MockProfileRepo)
		profiles.On("GetByUserID", mock.Anything, int64(1)).
			Return(&domain.Profile{UserID: 1, Skills: "Python", ResumePath: &oldPath}, nil)
		profiles.On("Upsert", mock.Anything, mock.Anything).Return(nil)

		uc := usecase.NewProfileUsecase(profiles, resume.NewParser(nil), validator.New(), uploadDir, testMaxUpload)
		_, err := uc.ImportResume(context.Background(), 1, "cv.txt", resumeText)
		require.NoError(t, err)

		_, statErr := os.Stat(oldPath)
		assert.True(t, os.IsNotExist(statErr), "the old upload should be gone")
	})
}
