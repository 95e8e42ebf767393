package services

import (
	"context"
	"testing"

	"github.com/blognest/backend/errs"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSignupAndLogin(t *testing.T) {
	stores := newTestStores()
	svc := NewUserService(stores.users)

	user, err := svc.Signup(context.Background(), SignupInput{
		FirstName:       "jonas",
		LastName:        "weber",
		Email:           "Jonas@Example.com",
		Password:        "hunter22!",
		PasswordConfirm: "hunter22!",
	})
	require.NoError(t, err)
	assert.NotEqual(t, uuid.Nil, user.ID)
	assert.NotEqual(t, "hunter22!", user.Password, "plaintext must not be stored")

	// Login is case-insensitive on the email.
	loggedIn, err := svc.Login(context.Background(), "jonas@example.com", "hunter22!")
	require.NoError(t, err)
	assert.Equal(t, user.ID, loggedIn.ID)
}

func TestSignupPasswordRules(t *testing.T) {
	stores := newTestStores()
	svc := NewUserService(stores.users)

	_, err := svc.Signup(context.Background(), SignupInput{
		FirstName: "jonas", LastName: "weber", Email: "a@b.com",
		Password: "short", PasswordConfirm: "short",
	})
	assert.True(t, errs.IsValidationError(err), "short password rejected")

	_, err = svc.Signup(context.Background(), SignupInput{
		FirstName: "jonas", LastName: "weber", Email: "a@b.com",
		Password: "hunter22!", PasswordConfirm: "different1",
	})
	assert.True(t, errs.IsValidationError(err), "mismatched confirmation rejected")
}

func TestSignupDuplicateEmail(t *testing.T) {
	stores := newTestStores()
	svc := NewUserService(stores.users)

	input := SignupInput{
		FirstName: "jonas", LastName: "weber", Email: "jonas@example.com",
		Password: "hunter22!", PasswordConfirm: "hunter22!",
	}
	_, err := svc.Signup(context.Background(), input)
	require.NoError(t, err)

	_, err = svc.Signup(context.Background(), input)
	assert.True(t, errs.IsConflict(err))
}

func TestLoginFailuresAreIndistinguishable(t *testing.T) {
	stores := newTestStores()
	svc := NewUserService(stores.users)

	_, err := svc.Signup(context.Background(), SignupInput{
		FirstName: "jonas", LastName: "weber", Email: "jonas@example.com",
		Password: "hunter22!", PasswordConfirm: "hunter22!",
	})
	require.NoError(t, err)

	_, unknownEmail := svc.Login(context.Background(), "nobody@example.com", "hunter22!")
	_, wrongPassword := svc.Login(context.Background(), "jonas@example.com", "wrong password")

	require.Error(t, unknownEmail)
	require.Error(t, wrongPassword)
	assert.True(t, errs.IsUnauthorized(unknownEmail))
	assert.True(t, errs.IsUnauthorized(wrongPassword))
	assert.Equal(t, unknownEmail.Error(), wrongPassword.Error())
}

func TestUserGetByIDMissing(t *testing.T) {
	stores := newTestStores()
	svc := NewUserService(stores.users)

	_, err := svc.GetByID(context.Background(), uuid.New())
	assert.True(t, errs.IsNotFound(err))
}
