package usecase_test

import (
	"context"
	"errors"
	"net/http"
	"os"
	"testing"

	"go-jobfinder-backend/internal/domain"
	"go-jobfinder-backend/internal/usecase"
	"go-jobfinder-backend/pkg/apperror"
	"go-jobfinder-backend/pkg/logger"

	"github.com/golang-jwt/jwt/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"
)

func TestMain(m *testing.M) {
	logger.Init()
	os.Exit(m.Run())
}

// Mock Repositories

type MockUserRepo struct {
	mock.Mock
}

func (m *MockUserRepo) Create(ctx context.Context, user *domain.User) error {
	return m.Called(ctx, user).Error(0)
}
func (m *MockUserRepo) GetByID(ctx context.Context, id int64) (*domain.User, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.User), args.Error(1)
}
func (m *MockUserRepo) GetByEmail(ctx context.Context, email string) (*domain.User, error) {
	args := m.Called(ctx, email)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.User), args.Error(1)
}
func (m *MockUserRepo) Delete(ctx context.Context, id int64) error {
	return m.Called(ctx, id).Error(0)
}

type MockProfileRepo struct {
	mock.Mock
}

func (m *MockProfileRepo) GetByUserID(ctx context.Context, userID int64) (*domain.Profile, error) {
	args := m.Called(ctx, userID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Profile), args.Error(1)
}
func (m *MockProfileRepo) Upsert(ctx context.Context, profile *domain.Profile) error {
	return m.Called(ctx, profile).Error(0)
}

type MockPostingRepo struct {
	mock.Mock
}

func (m *MockPostingRepo) UpsertBatch(ctx context.Context, postings []domain.Posting) error {
	return m.Called(ctx, postings).Error(0)
}
func (m *MockPostingRepo) GetByJobID(ctx context.Context, jobID string) (*domain.Posting, error) {
	args := m.Called(ctx, jobID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Posting), args.Error(1)
}
func (m *MockPostingRepo) FetchCached(ctx context.Context, filter domain.PostingFilter) ([]domain.Posting, error) {
	args := m.Called(ctx, filter)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.Posting), args.Error(1)
}

type MockSavedRepo struct {
	mock.Mock
}

func (m *MockSavedRepo) Save(ctx context.Context, saved *domain.SavedPosting) error {
	return m.Called(ctx, saved).Error(0)
}
func (m *MockSavedRepo) ListByUser(ctx context.Context, userID int64) ([]domain.SavedPostingWithJob, error) {
	args := m.Called(ctx, userID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.SavedPostingWithJob), args.Error(1)
}
func (m *MockSavedRepo) Delete(ctx context.Context, userID int64, jobID string) error {
	return m.Called(ctx, userID, jobID).Error(0)
}

type MockHistoryRepo struct {
	mock.Mock
}

func (m *MockHistoryRepo) Add(ctx context.Context, record *domain.SearchRecord) error {
	return m.Called(ctx, record).Error(0)
}
func (m *MockHistoryRepo) ListByUser(ctx context.Context, userID int64, limit int) ([]domain.SearchRecord, error) {
	args := m.Called(ctx, userID, limit)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.SearchRecord), args.Error(1)
}

const testJWTSecret = "test-secret"

func TestAuthRegister(t *testing.T) {
	t.Run("Should reject duplicate email", func(t *testing.T) {
		mockRepo := new(MockUserRepo)
		uc := usecase.NewAuthUsecase(mockRepo, testJWTSecret)

		mockRepo.On("GetByEmail", mock.Anything, "taken@example.com").
			Return(&domain.User{ID: 1, Email: "taken@example.com"}, nil)

		_, _, err := uc.Register(context.Background(), "Alice", "taken@example.com", "secret123")
		assert.Error(t, err)
		assert.Contains(t, err.Error(), "already registered")
	})

	t.Run("Should return a conflict when the unique index catches a race", func(t *testing.T) {
		mockRepo := new(MockUserRepo)
		uc := usecase.NewAuthUsecase(mockRepo, testJWTSecret)

		// The email lookup sees nothing, but a concurrent registration
		// wins the insert.
		mockRepo.On("GetByEmail", mock.Anything, "raced@example.com").
			Return(nil, domain.ErrNotFound)
		mockRepo.On("Create", mock.Anything, mock.Anything).
			Return(domain.ErrDuplicate)

		_, _, err := uc.Register(context.Background(), "Alice", "raced@example.com", "secret123")
		require.Error(t, err)

		var appErr *apperror.AppError
		require.True(t, errors.As(err, &appErr))
		assert.Equal(t, http.StatusConflict, appErr.Code)
		assert.Contains(t, appErr.Message, "already registered")
	})

	t.Run("Should reject short passwords", func(t *testing.T) {
		mockRepo := new(MockUserRepo)
		uc := usecase.NewAuthUsecase(mockRepo, testJWTSecret)

		_, _, err := uc.Register(context.Background(), "Alice", "a@example.com", "abc")
		assert.Error(t, err)
		assert.Contains(t, err.Error(), "at least 6 characters")
	})

	t.Run("Should hash the password and issue a signed token", func(t *testing.T) {
		mockRepo := new(MockUserRepo)
		uc := usecase.NewAuthUsecase(mockRepo, testJWTSecret)

		mockRepo.On("GetByEmail", mock.Anything, "new@example.com").
			Return(nil, domain.ErrNotFound)
		mockRepo.On("Create", mock.Anything, mock.AnythingOfType("*domain.User")).
			Return(nil).
			Run(func(args mock.Arguments) {
				u := args.Get(1).(*domain.User)
				u.ID = 42
				assert.NotEqual(t, "secret123", u.PasswordHash)
				assert.NoError(t, bcrypt.CompareHashAndPassword([]byte(u.PasswordHash), []byte("secret123")))
			})

		user, token, err := uc.Register(context.Background(), "Alice", "new@example.com", "secret123")
		require.NoError(t, err)
		assert.Equal(t, int64(42), user.ID)

		parsed, err := jwt.Parse(token, func(t *jwt.Token) (interface{}, error) {
			return []byte(testJWTSecret), nil
		})
		require.NoError(t, err)
		claims := parsed.Claims.(jwt.MapClaims)
		assert.Equal(t, "42", claims["sub"])
		assert.Equal(t, "new@example.com", claims["email"])
	})
}

func TestAuthLogin(t *testing.T) {
	hash, _ := bcrypt.GenerateFromPassword([]byte("secret123"), bcrypt.MinCost)
	stored := &domain.User{ID: 7, Email: "bob@example.com", PasswordHash: string(hash)}

	t.Run("Should succeed with the right password", func(t *testing.T) {
		mockRepo := new(MockUserRepo)
		uc := usecase.NewAuthUsecase(mockRepo, testJWTSecret)
		mockRepo.On("GetByEmail", mock.Anything, "bob@example.com").Return(stored, nil)

		user, token, err := uc.Login(context.Background(), "bob@example.com", "secret123")
		require.NoError(t, err)
		assert.Equal(t, int64(7), user.ID)
		assert.NotEmpty(t, token)
	})

	t.Run("Should reject the wrong password", func(t *testing.T) {
		mockRepo := new(MockUserRepo)
		uc := usecase.NewAuthUsecase(mockRepo, testJWTSecret)
		mockRepo.On("GetByEmail", mock.Anything, "bob@example.com").Return(stored, nil)

		_, _, err := uc.Login(context.Background(), "bob@example.com", "wrong")
		assert.Error(t, err)
		assert.Contains(t, err.Error(), "Invalid email or password")
	})

	t.Run("Should not reveal whether the email exists", func(t *testing.T) {
		mockRepo := new(MockUserRepo)
		uc := usecase.NewAuthUsecase(mockRepo, testJWTSecret)
		mockRepo.On("GetByEmail", mock.Anything, "ghost@example.com").Return(nil, domain.ErrNotFound)

		_, _, err := uc.Login(context.Background(), "ghost@example.com", "whatever")
		assert.Error(t, err)
		assert.Contains(t, err.Error(), "Invalid email or password")
	})
}

func TestSavedJobs(t *testing.T) {
	t.Run("Should refuse scores outside [0,1]", func(t *testing.T) {
		uc := usecase.NewSavedPostingUsecase(new(MockSavedRepo), new(MockPostingRepo))
		err := uc.SaveJob(context.Background(), 1, "job-1", 1.5)
		assert.Error(t, err)
		assert.Contains(t, err.Error(), "between 0 and 1")
	})

	t.Run("Should refuse jobs that are not cached", func(t *testing.T) {
		mockPostings := new(MockPostingRepo)
		mockPostings.On("GetByJobID", mock.Anything, "missing").Return(nil, domain.ErrNotFound)
		uc := usecase.NewSavedPostingUsecase(new(MockSavedRepo), mockPostings)

		err := uc.SaveJob(context.Background(), 1, "missing", 0.5)
		assert.Error(t, err)
		assert.Contains(t, err.Error(), "not found in cache")
	})

	t.Run("Should save a cached job with the user's score", func(t *testing.T) {
		mockPostings := new(MockPostingRepo)
		mockPostings.On("GetByJobID", mock.Anything, "job-1").
			Return(&domain.Posting{JobID: "job-1"}, nil)

		mockSaved := new(MockSavedRepo)
		mockSaved.On("Save", mock.Anything, mock.AnythingOfType("*domain.SavedPosting")).
			Return(nil).
			Run(func(args mock.Arguments) {
				s := args.Get(1).(*domain.SavedPosting)
				assert.Equal(t, int64(9), s.UserID)
				assert.Equal(t, "job-1", s.JobID)
				assert.InDelta(t, 0.72, s.SimilarityScore, 1e-9)
			})

		uc := usecase.NewSavedPostingUsecase(mockSaved, mockPostings)
		require.NoError(t, uc.SaveJob(context.Background(), 9, "job-1", 0.72))
		mockSaved.AssertExpectations(t)
	})

	t.Run("Should expose similarity as fit percentage", func(t *testing.T) {
		mockSaved := new(MockSavedRepo)
		mockSaved.On("ListByUser", mock.Anything, int64(9)).Return([]domain.SavedPostingWithJob{
			{SavedPosting: domain.SavedPosting{JobID: "job-1", SimilarityScore: 0.25}},
		}, nil)

		uc := usecase.NewSavedPostingUsecase(mockSaved, new(MockPostingRepo))
		saved, err := uc.ListSavedJobs(context.Background(), 9)
		require.NoError(t, err)
		require.Len(t, saved, 1)
		assert.InDelta(t, 25.0, saved[0].FitPercentage, 1e-9)
	})
}
