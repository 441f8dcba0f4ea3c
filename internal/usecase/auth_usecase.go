package usecase

import (
	"context"
	"fmt"
	"sync"

	"socialnet/internal/entity"
	"socialnet/internal/repo"
	"socialnet/pkg/errs"
	"socialnet/pkg/jwt"
	"socialnet/pkg/logger"

	"golang.org/x/crypto/bcrypt"
)

type AuthUseCase interface {
	Authenticate(ctx context.Context, username, password string) (*entity.User, string, error)
}

type authUseCase struct {
	userRepo   repo.UserRepository
	jwtService *jwt.Service
	logger     *logger.Logger
}

func NewAuthUseCase(userRepo repo.UserRepository, jwtService *jwt.Service, logger *logger.Logger) AuthUseCase {
	return &authUseCase{
		userRepo:   userRepo,
		jwtService: jwtService,
		logger:     logger,
	}
}

var (
	dummyHashOnce sync.Once
	dummyHash     []byte
)

// compareDummy burns the same bcrypt work as a real comparison so that
// empty or unknown usernames take as long to reject as wrong passwords.
func compareDummy(password string) {
	dummyHashOnce.Do(func() {
		dummyHash, _ = bcrypt.GenerateFromPassword([]byte("not-a-real-password"), bcrypt.DefaultCost)
	})
	_ = bcrypt.CompareHashAndPassword(dummyHash, []byte(password))
}

var rejectWithoutUser = compareDummy

// Authenticate returns the user and a fresh token. Unknown username, wrong
// password and inactive account all fail with errs.ErrInvalidCredentials.
func (uc *authUseCase) Authenticate(ctx context.Context, username, password string) (*entity.User, string, error) {
	if username == "" || password == "" {
		rejectWithoutUser(password)
		return nil, "", errs.ErrInvalidCredentials
	}

	user, err := uc.userRepo.GetByUsername(ctx, username)
	if errs.Is(err, errs.ENOTFOUND) {
		rejectWithoutUser(password)
		return nil, "", errs.ErrInvalidCredentials
	} else if err != nil {
		return nil, "", fmt.Errorf("get user by username: %w", err)
	}

	if err := bcrypt.CompareHashAndPassword([]byte(user.Password), []byte(password)); err != nil {
		return nil, "", errs.ErrInvalidCredentials
	}

	if !user.Active {
		uc.logger.Info("Rejected login for inactive user %s", user.ID)
		return nil, "", errs.ErrInvalidCredentials
	}

	token, err := uc.jwtService.GenerateToken(user.ID)
	if err != nil {
		return nil, "", fmt.Errorf("generate token: %w", err)
	}

	user.Password = ""
	return user, token, nil
}
