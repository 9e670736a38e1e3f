package services

import (
	"testing"
	"time"

	"guest-portal/models"

	"github.com/stretchr/testify/require"
	"gorm.io/datatypes"
)

func TestRegisterAndLogin(t *testing.T) {
	db := newTestDB(t)
	svc := NewUserService(db)

	user, err := svc.Register("Guest@Example.com", "John Doe", "password123")
	require.NoError(t, err)
	require.Equal(t, "guest@example.com", user.Email, "email is normalized")
	require.NotEqual(t, "password123", user.Password, "password is hashed")

	logged, token, err := svc.Login("guest@example.com", "password123")
	require.NoError(t, err)
	require.Equal(t, user.ID, logged.ID)
	require.NotEmpty(t, token)

	resolved, err := svc.ResolveToken(token)
	require.NoError(t, err)
	require.Equal(t, user.ID, resolved.ID)
}

func TestRegister_Validation(t *testing.T) {
	db := newTestDB(t)
	svc := NewUserService(db)

	_, err := svc.Register("", "John", "password123")
	require.ErrorIs(t, err, ErrValidation)

	_, err = svc.Register("a@b.com", "John", "short")
	require.ErrorIs(t, err, ErrValidation)

	_, err = svc.Register("a@b.com", "John", "password123")
	require.NoError(t, err)

	_, err = svc.Register("a@b.com", "Jane", "password456")
	require.ErrorIs(t, err, ErrEmailTaken)
}

func TestLogin_InvalidCredentials(t *testing.T) {
	db := newTestDB(t)
	svc := NewUserService(db)

	_, err := svc.Register("a@b.com", "John", "password123")
	require.NoError(t, err)

	_, _, err = svc.Login("a@b.com", "wrongpass")
	require.ErrorIs(t, err, ErrInvalidCredentials)

	_, _, err = svc.Login("nobody@b.com", "password123")
	require.ErrorIs(t, err, ErrInvalidCredentials)
}

func TestResolveToken_Expired(t *testing.T) {
	db := newTestDB(t)
	svc := NewUserService(db)

	user, err := svc.Register("a@b.com", "John", "password123")
	require.NoError(t, err)

	session := models.Session{
		UserID:    user.ID,
		Token:     "expiredtoken",
		ExpiresAt: time.Now().UTC().Add(-time.Hour),
	}
	require.NoError(t, db.Create(&session).Error)

	_, err = svc.ResolveToken("expiredtoken")
	require.ErrorIs(t, err, ErrInvalidToken)

	_, err = svc.ResolveToken("")
	require.ErrorIs(t, err, ErrInvalidToken)
}

func TestUpdateProfile(t *testing.T) {
	db := newTestDB(t)
	svc := NewUserService(db)

	user, err := svc.Register("a@b.com", "John", "password123")
	require.NoError(t, err)

	name := "John D."
	phone := "+971 50 123 4567"
	prefs := datatypes.JSON([]byte(`{"pillow":"firm"}`))

	updated, err := svc.UpdateProfile(user.ID, ProfileUpdate{
		Name:        &name,
		Phone:       &phone,
		Preferences: prefs,
	})
	require.NoError(t, err)
	require.Equal(t, "John D.", updated.Name)
	require.Equal(t, "+971 50 123 4567", updated.Phone)
	require.JSONEq(t, `{"pillow":"firm"}`, string(updated.Preferences))
	require.Equal(t, "a@b.com", updated.Email, "email is not editable here")

	_, err = svc.UpdateProfile(9999, ProfileUpdate{Name: &name})
	require.ErrorIs(t, err, ErrUserNotFound)
}
