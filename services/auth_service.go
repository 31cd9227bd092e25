package services

import (
	"context"
	"errors"
	"regexp"
	"time"

	"github.com/go-playground/validator/v10"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"golang.org/x/crypto/bcrypt"

	"chirpnest/apperror"
	"chirpnest/models"
	"chirpnest/store"
)

var emailRegex = regexp.MustCompile(`^[^\s@]+@[^\s@]+\.[^\s@]+$`)

const minPasswordLength = 6

type AuthService struct {
	users    store.UserStore
	validate *validator.Validate
}

func NewAuthService(users store.UserStore) *AuthService {
	return &AuthService{
		users:    users,
		validate: validator.New(),
	}
}

type SignupRequest struct {
	FullName string `json:"fullName"`
	Username string `json:"username"`
	Email    string `json:"email"`
	Password string `json:"password"`
}

func (s *AuthService) Signup(ctx context.Context, request SignupRequest) (models.User, error) {
	if !emailRegex.MatchString(request.Email) {
		return models.User{}, apperror.Validation("Invalid email format")
	}

	// check whether the username or email is already taken
	if _, err := s.users.GetByUsername(ctx, request.Username); err == nil {
		return models.User{}, apperror.Validation("Username is already taken")
	} else if !errors.Is(err, store.ErrNotFound) {
		return models.User{}, apperror.Internal(err)
	}
	if _, err := s.users.GetByEmail(ctx, request.Email); err == nil {
		return models.User{}, apperror.Validation("Email is already taken")
	} else if !errors.Is(err, store.ErrNotFound) {
		return models.User{}, apperror.Internal(err)
	}

	if len(request.Password) < minPasswordLength {
		return models.User{}, apperror.Validation("Password should be at least 6 characters")
	}

	hashedPassword, err := bcrypt.GenerateFromPassword([]byte(request.Password), bcrypt.DefaultCost)
	if err != nil {
		return models.User{}, apperror.Internal(err)
	}

	user := models.User{
		ID:         primitive.NewObjectID(),
		FullName:   request.FullName,
		Username:   request.Username,
		Email:      request.Email,
		Password:   string(hashedPassword),
		Followers:  []primitive.ObjectID{},
		Following:  []primitive.ObjectID{},
		LikedPosts: []primitive.ObjectID{},
		CreatedAt:  time.Now().UTC(),
	}

	if err := s.validate.Struct(user); err != nil {
		return models.User{}, apperror.Validation(err.Error())
	}

	if err := s.users.Insert(ctx, user); err != nil {
		return models.User{}, apperror.Internal(err)
	}
	return user, nil
}

func (s *AuthService) Login(ctx context.Context, username, password string) (models.User, error) {
	user, err := s.users.GetByUsername(ctx, username)
	if errors.Is(err, store.ErrNotFound) {
		return models.User{}, apperror.Auth("Invalid username or password")
	}
	if err != nil {
		return models.User{}, apperror.Internal(err)
	}

	if err := bcrypt.CompareHashAndPassword([]byte(user.Password), []byte(password)); err != nil {
		return models.User{}, apperror.Auth("Invalid username or password")
	}
	return user, nil
}
