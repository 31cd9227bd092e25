package services

import (
	"context"
	"errors"

	"github.com/sirupsen/logrus"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"golang.org/x/crypto/bcrypt"

	"chirpnest/apperror"
	"chirpnest/models"
	"chirpnest/storage"
	"chirpnest/store"
)

const (
	suggestedSampleSize = 10
	suggestedLimit      = 4
)

type UserService struct {
	users  store.UserStore
	images storage.ImageStore
	log    *logrus.Logger
}

func NewUserService(users store.UserStore, images storage.ImageStore, log *logrus.Logger) *UserService {
	return &UserService{users: users, images: images, log: log}
}

func (s *UserService) Profile(ctx context.Context, username string) (models.User, error) {
	user, err := s.users.GetByUsername(ctx, username)
	if errors.Is(err, store.ErrNotFound) {
		return models.User{}, apperror.NotFound("User not found")
	}
	if err != nil {
		return models.User{}, apperror.Internal(err)
	}
	return user, nil
}

// FollowToggle follows target if the actor is not yet following it, and
// unfollows otherwise. Both edges are updated together. Returns true when
// the call resulted in a follow.
func (s *UserService) FollowToggle(ctx context.Context, actor models.User, targetID primitive.ObjectID) (bool, error) {
	if actor.ID == targetID {
		return false, apperror.Validation("You cannot follow yourself")
	}

	if _, err := s.users.GetByID(ctx, targetID); err != nil {
		if errors.Is(err, store.ErrNotFound) {
			return false, apperror.NotFound("User not found")
		}
		return false, apperror.Internal(err)
	}

	if actor.IsFollowing(targetID) {
		if err := s.users.RemoveFollow(ctx, actor.ID, targetID); err != nil {
			return false, apperror.Internal(err)
		}
		return false, nil
	}
	if err := s.users.AddFollow(ctx, actor.ID, targetID); err != nil {
		return false, apperror.Internal(err)
	}
	return true, nil
}

// Suggested returns a small random sample of users the actor does not
// already follow.
func (s *UserService) Suggested(ctx context.Context, actor models.User) ([]models.User, error) {
	exclude := append([]primitive.ObjectID{actor.ID}, actor.Following...)
	users, err := s.users.SampleExcluding(ctx, exclude, suggestedSampleSize)
	if err != nil {
		return nil, apperror.Internal(err)
	}
	if len(users) > suggestedLimit {
		users = users[:suggestedLimit]
	}
	return users, nil
}

type UpdateProfileRequest struct {
	FullName        string `json:"fullName"`
	Username        string `json:"username"`
	Email           string `json:"email"`
	Bio             string `json:"bio"`
	Link            string `json:"link"`
	CurrentPassword string `json:"currentPassword"`
	NewPassword     string `json:"newPassword"`
	ProfileImg      string `json:"profileImg"`
	CoverImg        string `json:"coverImg"`
}

// UpdateProfile applies a partial update to the actor's own user document.
// A password change requires the current password; new images replace the
// previously hosted ones.
func (s *UserService) UpdateProfile(ctx context.Context, actor models.User, request UpdateProfileRequest) (models.User, error) {
	user, err := s.users.GetByID(ctx, actor.ID)
	if errors.Is(err, store.ErrNotFound) {
		return models.User{}, apperror.NotFound("User not found")
	}
	if err != nil {
		return models.User{}, apperror.Internal(err)
	}

	if (request.NewPassword == "") != (request.CurrentPassword == "") {
		return models.User{}, apperror.Validation("Please provide both current password and new password")
	}
	if request.NewPassword != "" {
		if err := bcrypt.CompareHashAndPassword([]byte(user.Password), []byte(request.CurrentPassword)); err != nil {
			return models.User{}, apperror.Auth("Current password is incorrect")
		}
		if len(request.NewPassword) < minPasswordLength {
			return models.User{}, apperror.Validation("Password should be at least 6 characters")
		}
		hashed, err := bcrypt.GenerateFromPassword([]byte(request.NewPassword), bcrypt.DefaultCost)
		if err != nil {
			return models.User{}, apperror.Internal(err)
		}
		user.Password = string(hashed)
	}

	if request.Username != "" && request.Username != user.Username {
		if other, err := s.users.GetByUsername(ctx, request.Username); err == nil && other.ID != user.ID {
			return models.User{}, apperror.Validation("Username is already taken")
		} else if err != nil && !errors.Is(err, store.ErrNotFound) {
			return models.User{}, apperror.Internal(err)
		}
		user.Username = request.Username
	}
	if request.Email != "" && request.Email != user.Email {
		if !emailRegex.MatchString(request.Email) {
			return models.User{}, apperror.Validation("Invalid email format")
		}
		if other, err := s.users.GetByEmail(ctx, request.Email); err == nil && other.ID != user.ID {
			return models.User{}, apperror.Validation("Email is already taken")
		} else if err != nil && !errors.Is(err, store.ErrNotFound) {
			return models.User{}, apperror.Internal(err)
		}
		user.Email = request.Email
	}

	if request.ProfileImg != "" {
		url, err := s.replaceImage(ctx, user.ProfileImg, request.ProfileImg)
		if err != nil {
			return models.User{}, err
		}
		user.ProfileImg = url
	}
	if request.CoverImg != "" {
		url, err := s.replaceImage(ctx, user.CoverImg, request.CoverImg)
		if err != nil {
			return models.User{}, err
		}
		user.CoverImg = url
	}

	if request.FullName != "" {
		user.FullName = request.FullName
	}
	if request.Bio != "" {
		user.Bio = request.Bio
	}
	if request.Link != "" {
		user.Link = request.Link
	}

	if err := s.users.Save(ctx, user); err != nil {
		return models.User{}, apperror.Internal(err)
	}
	return user, nil
}

// replaceImage uploads the new payload and removes the old hosted object.
// Removal is best-effort; a stale object on the host is acceptable.
func (s *UserService) replaceImage(ctx context.Context, oldURL, payload string) (string, error) {
	data, contentType, err := DecodeImagePayload(payload)
	if err != nil {
		return "", err
	}
	url, err := s.images.Upload(ctx, data, contentType)
	if err != nil {
		return "", apperror.Internal(err)
	}
	if oldURL != "" {
		if err := s.images.Remove(ctx, oldURL); err != nil {
			s.log.WithError(err).WithField("url", oldURL).Warn("could not remove replaced image")
		}
	}
	return url, nil
}
