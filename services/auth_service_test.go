package services

import (
	"context"
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"

	"chirpnest/apperror"
)

func validSignup() SignupRequest {
	return SignupRequest{
		FullName: "Ada Lovelace",
		Username: "ada",
		Email:    "ada@example.com",
		Password: "secret1",
	}
}

func TestSignupStoresHashAndStripsPassword(t *testing.T) {
	users := newFakeUserStore()
	auth := NewAuthService(users)

	user, err := auth.Signup(context.Background(), validSignup())
	require.NoError(t, err)

	// the stored password is a bcrypt hash, not the plaintext
	assert.NotEqual(t, "secret1", user.Password)
	require.NoError(t, bcrypt.CompareHashAndPassword([]byte(user.Password), []byte("secret1")))

	// the serialized projection carries no password field at all
	raw, err := json.Marshal(user.Public())
	require.NoError(t, err)
	var fields map[string]interface{}
	require.NoError(t, json.Unmarshal(raw, &fields))
	assert.NotContains(t, fields, "password")

	raw, err = json.Marshal(user)
	require.NoError(t, err)
	fields = map[string]interface{}{}
	require.NoError(t, json.Unmarshal(raw, &fields))
	assert.NotContains(t, fields, "password")
}

func TestSignupValidation(t *testing.T) {
	tests := []struct {
		name    string
		mutate  func(*SignupRequest)
		message string
	}{
		{"malformed email", func(r *SignupRequest) { r.Email = "not-an-email" }, "Invalid email format"},
		{"short password", func(r *SignupRequest) { r.Password = "five5" }, "Password should be at least 6 characters"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			auth := NewAuthService(newFakeUserStore())
			request := validSignup()
			tt.mutate(&request)

			_, err := auth.Signup(context.Background(), request)
			require.Error(t, err)
			assert.Equal(t, apperror.KindValidation, apperror.KindOf(err))
			assert.EqualError(t, err, tt.message)
		})
	}
}

func TestSignupUniqueness(t *testing.T) {
	users := newFakeUserStore()
	auth := NewAuthService(users)

	_, err := auth.Signup(context.Background(), validSignup())
	require.NoError(t, err)

	colliding := validSignup()
	colliding.Email = "other@example.com"
	_, err = auth.Signup(context.Background(), colliding)
	require.Error(t, err)
	assert.Equal(t, apperror.KindValidation, apperror.KindOf(err))

	colliding = validSignup()
	colliding.Username = "other"
	_, err = auth.Signup(context.Background(), colliding)
	require.Error(t, err)
	assert.Equal(t, apperror.KindValidation, apperror.KindOf(err))
}

func TestLogin(t *testing.T) {
	users := newFakeUserStore()
	auth := NewAuthService(users)

	_, err := auth.Signup(context.Background(), validSignup())
	require.NoError(t, err)

	user, err := auth.Login(context.Background(), "ada", "secret1")
	require.NoError(t, err)
	assert.Equal(t, "ada", user.Username)

	_, err = auth.Login(context.Background(), "ada", "wrong")
	require.Error(t, err)
	assert.Equal(t, apperror.KindAuth, apperror.KindOf(err))

	_, err = auth.Login(context.Background(), "nobody", "secret1")
	require.Error(t, err)
	assert.Equal(t, apperror.KindAuth, apperror.KindOf(err))
}
