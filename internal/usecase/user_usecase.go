package usecase

import (
	"context"
	"fmt"
	"io"
	"path"

	"socialnet/internal/entity"
	"socialnet/internal/repo"
	"socialnet/internal/validator"
	"socialnet/pkg/errs"
	"socialnet/pkg/logger"

	"github.com/google/uuid"
	"github.com/redis/go-redis/v9"
	"golang.org/x/crypto/bcrypt"
)

type UserUseCase interface {
	Create(ctx context.Context, user *entity.User) (*entity.User, error)
	GetByID(ctx context.Context, id string) (*entity.User, error)
	List(ctx context.Context) ([]*entity.User, error)
	Update(ctx context.Context, userID string, patch entity.UserPatch) (*entity.User, error)
	Delete(ctx context.Context, userID string) error
	UploadProfileImage(ctx context.Context, userID string, body io.Reader, filename, contentType string) (*entity.User, error)
}

type userUseCase struct {
	userRepo  repo.UserRepository
	validator *validator.UserValidator
	storage   ObjectStorage
	postCache *postCache
	logger    *logger.Logger
}

// NewUserUseCase builds the user usecase. storage may be nil, in which case
// profile image uploads fail with errs.EUNAVAILABLE. redisClient is the post
// cache shared with the post usecase and may be nil.
func NewUserUseCase(userRepo repo.UserRepository, storage ObjectStorage, redisClient *redis.Client, logger *logger.Logger) UserUseCase {
	return &userUseCase{
		userRepo:  userRepo,
		validator: validator.NewUserValidator(userRepo),
		storage:   storage,
		postCache: newPostCache(redisClient, logger),
		logger:    logger,
	}
}

func (uc *userUseCase) Create(ctx context.Context, user *entity.User) (*entity.User, error) {
	if err := uc.validator.ValidateCreate(ctx, user); err != nil {
		return nil, err
	}

	hashedPassword, err := bcrypt.GenerateFromPassword([]byte(user.Password), bcrypt.DefaultCost)
	if err != nil {
		return nil, fmt.Errorf("hash password: %w", err)
	}

	created := *user
	created.ID = ""
	created.ProfileImage = ""
	created.Password = string(hashedPassword)
	if err := uc.userRepo.Create(ctx, &created); err != nil {
		return nil, err
	}

	uc.logger.Info("User created: id=%s, username=%s", created.ID, created.Username)
	created.Password = ""
	return &created, nil
}

func (uc *userUseCase) GetByID(ctx context.Context, id string) (*entity.User, error) {
	user, err := uc.userRepo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	user.Password = ""
	return user, nil
}

func (uc *userUseCase) List(ctx context.Context) ([]*entity.User, error) {
	users, err := uc.userRepo.List(ctx)
	if err != nil {
		return nil, fmt.Errorf("list users: %w", err)
	}
	for _, u := range users {
		u.Password = ""
	}
	return users, nil
}

// Update applies the non-nil fields of patch to the caller's own record.
func (uc *userUseCase) Update(ctx context.Context, userID string, patch entity.UserPatch) (*entity.User, error) {
	if err := uc.validator.ValidateUpdate(ctx, userID, patch); err != nil {
		return nil, err
	}

	user, err := uc.userRepo.GetByID(ctx, userID)
	if err != nil {
		return nil, err
	}

	if patch.Name != nil {
		user.Name = *patch.Name
	}
	renamed := patch.Username != nil && *patch.Username != user.Username
	if patch.Username != nil {
		user.Username = *patch.Username
	}
	if patch.Active != nil {
		user.Active = *patch.Active
	}
	if patch.BirthDate != nil {
		user.BirthDate = patch.BirthDate
	}

	if err := uc.userRepo.Update(ctx, user); err != nil {
		return nil, err
	}
	if renamed {
		uc.postCache.invalidateAuthor(ctx, userID)
	}

	user.Password = ""
	return user, nil
}

func (uc *userUseCase) Delete(ctx context.Context, userID string) error {
	if userID == "" {
		return errs.Errorf(errs.EINVALID, "user id is required")
	}
	if err := uc.userRepo.Delete(ctx, userID); err != nil {
		return err
	}
	uc.postCache.invalidateAuthor(ctx, userID)
	uc.logger.Info("User deleted: id=%s", userID)
	return nil
}

func (uc *userUseCase) UploadProfileImage(ctx context.Context, userID string, body io.Reader, filename, contentType string) (*entity.User, error) {
	if uc.storage == nil {
		return nil, errs.Errorf(errs.EUNAVAILABLE, "object storage is not configured")
	}

	user, err := uc.userRepo.GetByID(ctx, userID)
	if err != nil {
		return nil, err
	}

	if contentType == "" {
		contentType = "image/jpeg"
	}
	fileKey := fmt.Sprintf("avatars/%s/%s%s", userID, uuid.New().String(), path.Ext(filename))

	url, err := uc.storage.UploadFile(fileKey, body, contentType)
	if err != nil {
		return nil, fmt.Errorf("upload profile image: %w", err)
	}

	user.ProfileImage = url
	if err := uc.userRepo.Update(ctx, user); err != nil {
		if delErr := uc.storage.DeleteFile(fileKey); delErr != nil {
			uc.logger.Warn("Failed to remove orphaned avatar %s: %v", fileKey, delErr)
		}
		return nil, err
	}

	user.Password = ""
	return user, nil
}
