// Package validator holds the pre-condition checks run before a usecase
// writes anything. Each validator is a chain of small check funcs; the
// first failure is returned as a tagged *errs.Error.
package validator

import (
	"context"
	"strings"
	"unicode"

	"socialnet/internal/entity"
	"socialnet/internal/repo"
	"socialnet/pkg/errs"
)

type UserValidator struct {
	users repo.UserRepository
}

func NewUserValidator(users repo.UserRepository) *UserValidator {
	return &UserValidator{users: users}
}

type userValFn func(ctx context.Context, user *entity.User) error

func runUserValFns(ctx context.Context, user *entity.User, fns ...userValFn) error {
	for _, fn := range fns {
		if err := fn(ctx, user); err != nil {
			return err
		}
	}
	return nil
}

// ValidateCreate checks a new user before its password is hashed.
func (v *UserValidator) ValidateCreate(ctx context.Context, user *entity.User) error {
	return runUserValFns(ctx, user,
		requireName,
		requireUsername,
		requirePassword,
		usernameHasNoSpaces,
		v.usernameAvailable(""))
}

// ValidateUpdate checks the supplied fields of a patch issued by requesterID.
// Keeping one's own username is not a conflict.
func (v *UserValidator) ValidateUpdate(ctx context.Context, requesterID string, patch entity.UserPatch) error {
	if requesterID == "" {
		return errs.Errorf(errs.EINVALID, "user id is required")
	}

	var fns []userValFn
	candidate := &entity.User{ID: requesterID}
	if patch.Name != nil {
		candidate.Name = *patch.Name
		fns = append(fns, requireName)
	}
	if patch.Username != nil {
		candidate.Username = *patch.Username
		fns = append(fns, requireUsername, usernameHasNoSpaces, v.usernameAvailable(requesterID))
	}
	return runUserValFns(ctx, candidate, fns...)
}

func requireName(_ context.Context, user *entity.User) error {
	if strings.TrimSpace(user.Name) == "" {
		return errs.Errorf(errs.EINVALID, "name is required")
	}
	return nil
}

func requireUsername(_ context.Context, user *entity.User) error {
	if user.Username == "" {
		return errs.Errorf(errs.EINVALID, "username is required")
	}
	return nil
}

func requirePassword(_ context.Context, user *entity.User) error {
	if user.Password == "" {
		return errs.Errorf(errs.EINVALID, "password is required")
	}
	return nil
}

func usernameHasNoSpaces(_ context.Context, user *entity.User) error {
	if strings.IndexFunc(user.Username, unicode.IsSpace) >= 0 {
		return errs.Errorf(errs.EINVALID, "username cannot contain spaces")
	}
	return nil
}

// usernameAvailable fails when another user holds the username. A match on
// ownerID is the caller's own record.
func (v *UserValidator) usernameAvailable(ownerID string) userValFn {
	return func(ctx context.Context, user *entity.User) error {
		existing, err := v.users.GetByUsername(ctx, user.Username)
		if errs.Is(err, errs.ENOTFOUND) {
			return nil
		} else if err != nil {
			return err
		}
		if ownerID != "" && existing.ID == ownerID {
			return nil
		}
		return errs.Errorf(errs.ECONFLICT, "username is already in use")
	}
}
