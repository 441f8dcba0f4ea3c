package validator

import (
	"context"

	"socialnet/internal/repo"
	"socialnet/pkg/errs"
)

type RelationValidator struct {
	users     repo.UserRepository
	relations repo.RelationRepository
}

func NewRelationValidator(users repo.UserRepository, relations repo.RelationRepository) *RelationValidator {
	return &RelationValidator{users: users, relations: relations}
}

type edge struct {
	from, to string
}

type edgeValFn func(ctx context.Context, e edge) error

func runEdgeValFns(ctx context.Context, e edge, fns ...edgeValFn) error {
	for _, fn := range fns {
		if err := fn(ctx, e); err != nil {
			return err
		}
	}
	return nil
}

// ValidateFollow checks that userID may start following targetID.
func (v *RelationValidator) ValidateFollow(ctx context.Context, userID, targetID string) error {
	return runEdgeValFns(ctx, edge{userID, targetID},
		requireActor,
		notSelf("follow"),
		v.targetExists,
		v.notBlockedEitherWay,
		v.notAlreadyFollowing)
}

// ValidateBlock checks that userID may block targetID.
func (v *RelationValidator) ValidateBlock(ctx context.Context, userID, targetID string) error {
	return runEdgeValFns(ctx, edge{userID, targetID},
		requireActor,
		notSelf("block"),
		v.targetExists,
		v.notAlreadyBlocked)
}

func requireActor(_ context.Context, e edge) error {
	if e.from == "" {
		return errs.Errorf(errs.EINVALID, "user id is required")
	}
	return nil
}

func notSelf(action string) edgeValFn {
	return func(_ context.Context, e edge) error {
		if e.from == e.to {
			return errs.Errorf(errs.EINVALID, "you cannot %s yourself", action)
		}
		return nil
	}
}

func (v *RelationValidator) targetExists(ctx context.Context, e edge) error {
	if _, err := v.users.GetByID(ctx, e.to); err != nil {
		return err
	}
	return nil
}

func (v *RelationValidator) notBlockedEitherWay(ctx context.Context, e edge) error {
	blocked, err := v.relations.IsBlocked(ctx, e.to, e.from)
	if err != nil {
		return err
	}
	if blocked {
		return errs.Errorf(errs.EFORBIDDEN, "this user has blocked you")
	}

	blocked, err = v.relations.IsBlocked(ctx, e.from, e.to)
	if err != nil {
		return err
	}
	if blocked {
		return errs.Errorf(errs.EFORBIDDEN, "you have blocked this user")
	}
	return nil
}

func (v *RelationValidator) notAlreadyFollowing(ctx context.Context, e edge) error {
	following, err := v.relations.IsFollowing(ctx, e.from, e.to)
	if err != nil {
		return err
	}
	if following {
		return errs.Errorf(errs.ECONFLICT, "you already follow this user")
	}
	return nil
}

func (v *RelationValidator) notAlreadyBlocked(ctx context.Context, e edge) error {
	blocked, err := v.relations.IsBlocked(ctx, e.from, e.to)
	if err != nil {
		return err
	}
	if blocked {
		return errs.Errorf(errs.ECONFLICT, "you already blocked this user")
	}
	return nil
}
