package usecase

import (
	"context"
	"errors"
	"strconv"
	"time"

	"go-jobfinder-backend/internal/domain"
	"go-jobfinder-backend/pkg/apperror"

	"github.com/golang-jwt/jwt/v5"
	"golang.org/x/crypto/bcrypt"
)

const tokenTTL = 24 * time.Hour

type authUsecase struct {
	userRepo  domain.UserRepository
	jwtSecret []byte
}

func NewAuthUsecase(userRepo domain.UserRepository, jwtSecret string) domain.AuthUsecase {
	return &authUsecase{
		userRepo:  userRepo,
		jwtSecret: []byte(jwtSecret),
	}
}

func (u *authUsecase) Register(ctx context.Context, name, email, password string) (*domain.User, string, error) {
	if name == "" || email == "" || password == "" {
		return nil, "", apperror.BadRequest("Name, email and password are required")
	}
	if len(password) < 6 {
		return nil, "", apperror.BadRequest("Password must be at least 6 characters long")
	}

	if _, err := u.userRepo.GetByEmail(ctx, email); err == nil {
		return nil, "", apperror.Conflict("Email already registered. Please login instead.")
	} else if !errors.Is(err, domain.ErrNotFound) {
		return nil, "", apperror.Internal(err)
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return nil, "", apperror.Internal(err)
	}

	user := &domain.User{
		Name:         name,
		Email:        email,
		PasswordHash: string(hash),
		CreatedAt:    time.Now(),
	}
	if err := u.userRepo.Create(ctx, user); err != nil {
		// Concurrent registrations can slip past the lookup above; the
		// unique index on email catches them.
		if errors.Is(err, domain.ErrDuplicate) {
			return nil, "", apperror.Conflict("Email already registered. Please login instead.")
		}
		return nil, "", apperror.Internal(err)
	}

	token, err := u.issueToken(user)
	if err != nil {
		return nil, "", apperror.Internal(err)
	}
	return user, token, nil
}

func (u *authUsecase) Login(ctx context.Context, email, password string) (*domain.User, string, error) {
	if email == "" || password == "" {
		return nil, "", apperror.BadRequest("Please enter both email and password")
	}

	user, err := u.userRepo.GetByEmail(ctx, email)
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return nil, "", apperror.Unauthorized("Invalid email or password")
		}
		return nil, "", apperror.Internal(err)
	}

	if bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(password)) != nil {
		return nil, "", apperror.Unauthorized("Invalid email or password")
	}

	token, err := u.issueToken(user)
	if err != nil {
		return nil, "", apperror.Internal(err)
	}
	return user, token, nil
}

func (u *authUsecase) GetCurrentUser(ctx context.Context, id int64) (*domain.User, error) {
	user, err := u.userRepo.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return nil, apperror.NotFound("User not found")
		}
		return nil, apperror.Internal(err)
	}
	return user, nil
}

// DeleteAccount removes the user and, via schema cascades, their profile,
// saved jobs and search history.
func (u *authUsecase) DeleteAccount(ctx context.Context, id int64) error {
	if err := u.userRepo.Delete(ctx, id); err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return apperror.NotFound("User not found")
		}
		return apperror.Internal(err)
	}
	return nil
}

func (u *authUsecase) issueToken(user *domain.User) (string, error) {
	claims := jwt.MapClaims{
		"sub":   strconv.FormatInt(user.ID, 10),
		"email": user.Email,
		"iat":   time.Now().Unix(),
		"exp":   time.Now().Add(tokenTTL).Unix(),
	}
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString(u.jwtSecret)
}
