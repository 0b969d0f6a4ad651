package service

import (
	"errors"
	"sync"

	"github.com/tinyapp/tinylinks/internal/models"
	"go.uber.org/zap"
	"golang.org/x/crypto/bcrypt"
)

var (
	ErrEmptyCredentials   = errors.New("email and password are required")
	ErrEmailTaken         = errors.New("account with this email already exists")
	ErrInvalidCredentials = errors.New("invalid email or password")
)

// Users is the in-memory account store. User IDs are short generated codes,
// the same shape as link codes.
type Users struct {
	mu      sync.RWMutex
	byID    map[string]*models.User
	byEmail map[string]string
	logger  *zap.Logger
}

func NewUsers(logger *zap.Logger) *Users {
	return &Users{
		byID:    make(map[string]*models.User),
		byEmail: make(map[string]string),
		logger:  logger,
	}
}

// Register creates an account with a bcrypt-hashed password and returns it.
func (u *Users) Register(email, password string) (models.User, error) {
	if email == "" || password == "" {
		return models.User{}, ErrEmptyCredentials
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return models.User{}, err
	}

	u.mu.Lock()
	defer u.mu.Unlock()

	if _, exists := u.byEmail[email]; exists {
		return models.User{}, ErrEmailTaken
	}

	var id string
	var attempts int
	for attempts = 0; attempts < maxGenerateAttempts; attempts++ {
		code, genErr := GenerateShortCode()
		if genErr != nil {
			return models.User{}, genErr
		}
		if _, exists := u.byID[code]; !exists {
			id = code
			break
		}
	}
	if attempts == maxGenerateAttempts {
		u.logger.Error("Failed to generate unique user ID after max attempts")
		return models.User{}, ErrCodeSpaceExhausted
	}

	user := &models.User{
		ID:           id,
		Email:        email,
		PasswordHash: string(hash),
	}
	u.byID[id] = user
	u.byEmail[email] = id

	u.logger.Info("User registered", zap.String("userID", id))

	return *user, nil
}

// Login checks the password against the stored bcrypt hash.
func (u *Users) Login(email, password string) (models.User, error) {
	if email == "" || password == "" {
		return models.User{}, ErrEmptyCredentials
	}

	u.mu.RLock()
	id, exists := u.byEmail[email]
	var user *models.User
	if exists {
		user = u.byID[id]
	}
	u.mu.RUnlock()

	if user == nil {
		return models.User{}, ErrInvalidCredentials
	}

	if err := bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(password)); err != nil {
		u.logger.Warn("Login with wrong password", zap.String("userID", user.ID))
		return models.User{}, ErrInvalidCredentials
	}

	return *user, nil
}

// Get looks an account up by ID.
func (u *Users) Get(id string) (models.User, bool) {
	u.mu.RLock()
	defer u.mu.RUnlock()

	user, exists := u.byID[id]
	if !exists {
		return models.User{}, false
	}
	return *user, true
}
