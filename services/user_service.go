// services/user_service.go
package services

import (
	"errors"
	"fmt"
	"strings"
	"time"

	"guest-portal/models"
	"guest-portal/utils"

	"golang.org/x/crypto/bcrypt"
	"gorm.io/datatypes"
	"gorm.io/gorm"
)

const sessionTTL = 30 * 24 * time.Hour

// UserService handles guest accounts, credentials and bearer sessions.
type UserService struct {
	DB *gorm.DB
}

func NewUserService(db *gorm.DB) *UserService {
	return &UserService{DB: db}
}

// Register creates a guest account with a bcrypt-hashed password.
func (s *UserService) Register(email, name, password string) (*models.User, error) {
	email = strings.ToLower(strings.TrimSpace(email))
	name = strings.TrimSpace(name)
	if email == "" || name == "" || len(password) < 8 {
		return nil, ErrValidation
	}

	var existing models.User
	err := s.DB.Where("email = ?", email).First(&existing).Error
	if err == nil {
		return nil, ErrEmailTaken
	}
	if !errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, fmt.Errorf("db error checking email: %w", err)
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return nil, fmt.Errorf("failed to hash password: %w", err)
	}

	user := &models.User{
		Email:    email,
		Name:     name,
		Password: string(hash),
	}
	if err := s.DB.Create(user).Error; err != nil {
		return nil, fmt.Errorf("failed to create user: %w", err)
	}
	return user, nil
}

// Login verifies credentials and opens a session, returning its bearer token.
func (s *UserService) Login(email, password string) (*models.User, string, error) {
	email = strings.ToLower(strings.TrimSpace(email))
	if email == "" || password == "" {
		return nil, "", ErrInvalidCredentials
	}

	var user models.User
	if err := s.DB.Where("email = ?", email).First(&user).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, "", ErrInvalidCredentials
		}
		return nil, "", fmt.Errorf("db error loading user: %w", err)
	}

	if bcrypt.CompareHashAndPassword([]byte(user.Password), []byte(password)) != nil {
		return nil, "", ErrInvalidCredentials
	}

	token, err := utils.GenerateSecureToken(32)
	if err != nil {
		return nil, "", fmt.Errorf("failed to generate token: %w", err)
	}
	session := models.Session{
		UserID:    user.ID,
		Token:     token,
		ExpiresAt: time.Now().UTC().Add(sessionTTL),
	}
	if err := s.DB.Create(&session).Error; err != nil {
		return nil, "", fmt.Errorf("failed to create session: %w", err)
	}
	return &user, token, nil
}

// ResolveToken maps a bearer token to its user. Expired sessions do not
// resolve.
func (s *UserService) ResolveToken(token string) (*models.User, error) {
	token = strings.TrimSpace(token)
	if token == "" {
		return nil, ErrInvalidToken
	}

	var session models.Session
	if err := s.DB.
		Where("token = ? AND expires_at > ?", token, time.Now().UTC()).
		First(&session).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrInvalidToken
		}
		return nil, fmt.Errorf("db error loading session: %w", err)
	}

	var user models.User
	if err := s.DB.First(&user, session.UserID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrInvalidToken
		}
		return nil, fmt.Errorf("db error loading user: %w", err)
	}
	return &user, nil
}

func (s *UserService) GetByID(id uint) (*models.User, error) {
	var user models.User
	if err := s.DB.First(&user, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrUserNotFound
		}
		return nil, fmt.Errorf("db error loading user: %w", err)
	}
	return &user, nil
}

// ProfileUpdate carries the editable profile fields; nil pointers are left
// untouched.
type ProfileUpdate struct {
	Name        *string
	Phone       *string
	Address     *string
	Avatar      *string
	Language    *string
	Currency    *string
	Preferences datatypes.JSON
}

// UpdateProfile edits profile fields. Email, password and loyalty balance are
// not editable through this path.
func (s *UserService) UpdateProfile(id uint, in ProfileUpdate) (*models.User, error) {
	var user models.User
	if err := s.DB.First(&user, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrUserNotFound
		}
		return nil, fmt.Errorf("db error loading user: %w", err)
	}

	updates := map[string]interface{}{}
	if in.Name != nil {
		updates["name"] = strings.TrimSpace(*in.Name)
	}
	if in.Phone != nil {
		updates["phone"] = strings.TrimSpace(*in.Phone)
	}
	if in.Address != nil {
		updates["address"] = strings.TrimSpace(*in.Address)
	}
	if in.Avatar != nil {
		updates["avatar"] = strings.TrimSpace(*in.Avatar)
	}
	if in.Language != nil {
		updates["language"] = strings.TrimSpace(*in.Language)
	}
	if in.Currency != nil {
		updates["currency"] = strings.TrimSpace(*in.Currency)
	}
	if in.Preferences != nil {
		updates["preferences"] = in.Preferences
	}
	if len(updates) == 0 {
		return &user, nil
	}

	if err := s.DB.Model(&user).Updates(updates).Error; err != nil {
		return nil, fmt.Errorf("failed to update profile: %w", err)
	}
	if err := s.DB.First(&user, id).Error; err != nil {
		return nil, fmt.Errorf("failed to reload user: %w", err)
	}
	return &user, nil
}
