package usecase

import (
	"context"
	"fmt"

	"socialnet/internal/entity"
	"socialnet/internal/repo"
	"socialnet/internal/validator"
	"socialnet/pkg/logger"
	"socialnet/pkg/queue"
)

type RelationUseCase interface {
	Follow(ctx context.Context, userID, targetID string) (*entity.Follow, error)
	Unfollow(ctx context.Context, userID, targetID string) error
	Followers(ctx context.Context, userID string) ([]*entity.Follow, error)
	Following(ctx context.Context, userID string) ([]*entity.Follow, error)
	Block(ctx context.Context, userID, targetID string) (*entity.Block, error)
	Unblock(ctx context.Context, userID, targetID string) error
	Blocked(ctx context.Context, userID string) ([]*entity.Block, error)
}

type relationUseCase struct {
	userRepo     repo.UserRepository
	relationRepo repo.RelationRepository
	validator    *validator.RelationValidator
	notifier     notifier
	logger       *logger.Logger
}

func NewRelationUseCase(
	userRepo repo.UserRepository,
	relationRepo repo.RelationRepository,
	publisher EventPublisher,
	logger *logger.Logger,
) RelationUseCase {
	return &relationUseCase{
		userRepo:     userRepo,
		relationRepo: relationRepo,
		validator:    validator.NewRelationValidator(userRepo, relationRepo),
		notifier:     notifier{publisher: publisher, logger: logger},
		logger:       logger,
	}
}

func (uc *relationUseCase) Follow(ctx context.Context, userID, targetID string) (*entity.Follow, error) {
	if err := uc.validator.ValidateFollow(ctx, userID, targetID); err != nil {
		return nil, err
	}

	follow := &entity.Follow{UserID: userID, FollowID: targetID}
	if err := uc.relationRepo.CreateFollow(ctx, follow); err != nil {
		return nil, err
	}

	uc.notifier.notify(queue.Event{
		Type:    queue.EventUserFollowed,
		UserID:  targetID,
		ActorID: userID,
	})
	return follow, nil
}

func (uc *relationUseCase) Unfollow(ctx context.Context, userID, targetID string) error {
	return uc.relationRepo.DeleteFollow(ctx, userID, targetID)
}

func (uc *relationUseCase) Followers(ctx context.Context, userID string) ([]*entity.Follow, error) {
	if _, err := uc.userRepo.GetByID(ctx, userID); err != nil {
		return nil, err
	}
	follows, err := uc.relationRepo.Followers(ctx, userID)
	if err != nil {
		return nil, fmt.Errorf("list followers: %w", err)
	}
	return follows, nil
}

func (uc *relationUseCase) Following(ctx context.Context, userID string) ([]*entity.Follow, error) {
	if _, err := uc.userRepo.GetByID(ctx, userID); err != nil {
		return nil, err
	}
	follows, err := uc.relationRepo.Following(ctx, userID)
	if err != nil {
		return nil, fmt.Errorf("list following: %w", err)
	}
	return follows, nil
}

// Block also removes any follow edge between the two users.
func (uc *relationUseCase) Block(ctx context.Context, userID, targetID string) (*entity.Block, error) {
	if err := uc.validator.ValidateBlock(ctx, userID, targetID); err != nil {
		return nil, err
	}

	block := &entity.Block{UserID: userID, BlockedID: targetID}
	if err := uc.relationRepo.CreateBlock(ctx, block); err != nil {
		return nil, err
	}

	uc.logger.Info("User %s blocked %s", userID, targetID)
	return block, nil
}

func (uc *relationUseCase) Unblock(ctx context.Context, userID, targetID string) error {
	return uc.relationRepo.DeleteBlock(ctx, userID, targetID)
}

func (uc *relationUseCase) Blocked(ctx context.Context, userID string) ([]*entity.Block, error) {
	blocks, err := uc.relationRepo.Blocked(ctx, userID)
	if err != nil {
		return nil, fmt.Errorf("list blocked users: %w", err)
	}
	return blocks, nil
}
