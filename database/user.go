package database

import (
	"errors"
	"fmt"

	"gorm.io/datatypes"
	"gorm.io/gorm"
)

var (
	ErrDuplicateEmail = errors.New("a user with this email already exists")
	ErrUnknownEmail   = errors.New("no user with this email exists")
	ErrUserNotFound   = errors.New("user not found")
	ErrSessionUnknown = errors.New("no user with this session token")
)

// CreateUser inserts a new user. The email must be unique; a clash is
// reported as ErrDuplicateEmail and no row is written.
func (s *Store) CreateUser(email string, passwordHash []byte, name, sessionToken string) (*User, error) {
	user := User{
		Email:        email,
		PasswordHash: datatypes.JSON(passwordHash),
		Name:         name,
		SessionToken: sessionToken,
	}

	err := s.db.Transaction(func(tx *gorm.DB) error {
		var count int64
		if err := tx.Model(&User{}).Where("email = ?", email).Count(&count).Error; err != nil {
			return fmt.Errorf("failed to check email uniqueness: %w", err)
		}
		if count > 0 {
			return ErrDuplicateEmail
		}
		return tx.Create(&user).Error
	})
	if err != nil {
		return nil, err
	}

	return &user, nil
}

func (s *Store) GetUserByEmail(email string) (*User, error) {
	var user User
	result := s.db.Where("email = ?", email).First(&user)
	if result.Error != nil {
		if errors.Is(result.Error, gorm.ErrRecordNotFound) {
			return nil, ErrUnknownEmail
		}
		return nil, result.Error
	}
	return &user, nil
}

func (s *Store) GetUserByID(id uint) (*User, error) {
	var user User
	result := s.db.First(&user, id)
	if result.Error != nil {
		if errors.Is(result.Error, gorm.ErrRecordNotFound) {
			return nil, ErrUserNotFound
		}
		return nil, result.Error
	}
	return &user, nil
}

func (s *Store) GetUserBySessionToken(token string) (*User, error) {
	// An empty token must never match a row; a struct-based Where would
	// drop the zero-value condition and return the first user.
	if token == "" {
		return nil, ErrSessionUnknown
	}

	var user User
	result := s.db.Where("session_token = ?", token).First(&user)
	if result.Error != nil {
		if errors.Is(result.Error, gorm.ErrRecordNotFound) {
			return nil, ErrSessionUnknown
		}
		return nil, result.Error
	}
	return &user, nil
}

// SaveSessionToken replaces the user's session token. Tokens are rotated
// rather than cleared so the unique index never sees duplicates.
func (s *Store) SaveSessionToken(user *User, token string) error {
	user.SessionToken = token
	return s.db.Save(user).Error
}
