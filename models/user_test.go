package models

import (
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func validUser() *User {
	return &User{
		FirstName: "jonas",
		LastName:  "weber",
		Email:     "Jonas.Weber@Example.COM",
		Password:  "some-bcrypt-hash",
	}
}

func TestUserBeforeSaveNormalizesFields(t *testing.T) {
	user := validUser()
	user.FirstName = "jOnAs"
	user.LastName = "WEBER"

	require.NoError(t, user.BeforeSave(nil))

	assert.Equal(t, "Jonas", user.FirstName)
	assert.Equal(t, "Weber", user.LastName)
	assert.Equal(t, "jonas.weber@example.com", user.Email)
	assert.Equal(t, "default.jpg", user.Photo)
}

func TestUserBeforeSaveKeepsExplicitPhoto(t *testing.T) {
	user := validUser()
	user.Photo = "custom.jpg"

	require.NoError(t, user.BeforeSave(nil))
	assert.Equal(t, "custom.jpg", user.Photo)
}

func TestUserBeforeCreateAssignsID(t *testing.T) {
	user := validUser()
	require.Equal(t, uuid.Nil, user.ID)

	require.NoError(t, user.BeforeCreate(nil))
	assert.NotEqual(t, uuid.Nil, user.ID)

	id := user.ID
	require.NoError(t, user.BeforeCreate(nil))
	assert.Equal(t, id, user.ID, "existing ID must be kept")
}

func TestUserValidate(t *testing.T) {
	tests := []struct {
		name    string
		mutate  func(u *User)
		wantErr bool
	}{
		{"valid", func(u *User) {}, false},
		{"first name too short", func(u *User) { u.FirstName = "jo" }, true},
		{"first name too long", func(u *User) { u.FirstName = "jonathans" }, true},
		{"last name missing", func(u *User) { u.LastName = "" }, true},
		{"email missing", func(u *User) { u.Email = "" }, true},
		{"email malformed", func(u *User) { u.Email = "not-an-email" }, true},
		{"password missing", func(u *User) { u.Password = "" }, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			user := validUser()
			tt.mutate(user)

			err := user.Validate()
			if tt.wantErr {
				assert.Error(t, err)
			} else {
				assert.NoError(t, err)
			}
		})
	}
}

func TestUserPublicOmitsCredentials(t *testing.T) {
	user := validUser()
	user.ID = uuid.New()
	user.Photo = "me.jpg"

	public := user.Public()
	assert.Equal(t, user.ID, public.ID)
	assert.Equal(t, user.FirstName, public.FirstName)
	assert.Equal(t, user.LastName, public.LastName)
	assert.Equal(t, "me.jpg", public.Photo)
}
