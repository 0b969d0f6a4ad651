package service

import (
	"errors"
	"sync"

	"github.com/tinyapp/tinylinks/internal/models"
	"go.uber.org/zap"
)

var (
	ErrEmptyURL           = errors.New("empty url")
	ErrNotFound           = errors.New("short code not found")
	ErrUnauthorized       = errors.New("requesting user does not own this link")
	ErrCodeSpaceExhausted = errors.New("failed to generate unique short code")
)

const maxGenerateAttempts = 10

// Registry is the in-memory store of short-code to link-record mappings.
// All access goes through its methods; callers only ever see snapshots.
type Registry struct {
	mu       sync.RWMutex
	links    map[string]*models.LinkRecord
	order    []string
	generate func() (string, error)
	logger   *zap.Logger
}

func NewRegistry(logger *zap.Logger) *Registry {
	return &Registry{
		links:    make(map[string]*models.LinkRecord),
		generate: GenerateShortCode,
		logger:   logger,
	}
}

// Create validates the target URL, mints a unique short code and inserts a
// fresh record. Generation retries on collision up to maxGenerateAttempts.
func (reg *Registry) Create(longURL, ownerID string) (models.LinkRecord, error) {
	if longURL == "" {
		reg.logger.Warn("Attempt to create link with empty URL",
			zap.String("ownerID", ownerID))
		return models.LinkRecord{}, ErrEmptyURL
	}

	reg.mu.Lock()
	defer reg.mu.Unlock()

	var shortCode string
	var attempts int

	for attempts = 0; attempts < maxGenerateAttempts; attempts++ {
		code, err := reg.generate()
		if err != nil {
			return models.LinkRecord{}, err
		}
		if _, exists := reg.links[code]; !exists {
			shortCode = code
			break
		}
	}

	if attempts == maxGenerateAttempts {
		reg.logger.Error("Failed to generate unique short code after max attempts")
		return models.LinkRecord{}, ErrCodeSpaceExhausted
	}

	record := &models.LinkRecord{
		ShortCode:    shortCode,
		LongURL:      longURL,
		OwnerID:      ownerID,
		VisitHistory: []models.Visit{},
	}

	reg.links[shortCode] = record
	reg.order = append(reg.order, shortCode)

	reg.logger.Info("Link created",
		zap.String("shortCode", shortCode),
		zap.String("ownerID", ownerID))

	return snapshot(record), nil
}

// Get returns a snapshot of the record for shortCode.
func (reg *Registry) Get(shortCode string) (models.LinkRecord, error) {
	reg.mu.RLock()
	defer reg.mu.RUnlock()

	record, exists := reg.links[shortCode]
	if !exists {
		return models.LinkRecord{}, ErrNotFound
	}

	return snapshot(record), nil
}

// ListByOwner returns snapshots of every record owned by ownerID, in
// insertion order. An owner with no links gets an empty slice.
func (reg *Registry) ListByOwner(ownerID string) []models.LinkRecord {
	reg.mu.RLock()
	defer reg.mu.RUnlock()

	result := []models.LinkRecord{}
	if ownerID == "" {
		return result
	}

	for _, code := range reg.order {
		record, exists := reg.links[code]
		if exists && record.OwnerID == ownerID {
			result = append(result, snapshot(record))
		}
	}

	return result
}

// Update replaces the target URL of an existing record. Only the owner may
// update; counters and history are left untouched.
func (reg *Registry) Update(shortCode, newLongURL, requestingUserID string) (models.LinkRecord, error) {
	if newLongURL == "" {
		return models.LinkRecord{}, ErrEmptyURL
	}

	reg.mu.Lock()
	defer reg.mu.Unlock()

	record, exists := reg.links[shortCode]
	if !exists {
		return models.LinkRecord{}, ErrNotFound
	}

	if record.OwnerID != requestingUserID {
		reg.logger.Warn("Unauthorized link update rejected",
			zap.String("shortCode", shortCode),
			zap.String("requestingUserID", requestingUserID))
		return models.LinkRecord{}, ErrUnauthorized
	}

	record.LongURL = newLongURL

	return snapshot(record), nil
}

// Delete removes a record entirely. Same ownership check as Update.
func (reg *Registry) Delete(shortCode, requestingUserID string) error {
	reg.mu.Lock()
	defer reg.mu.Unlock()

	record, exists := reg.links[shortCode]
	if !exists {
		return ErrNotFound
	}

	if record.OwnerID != requestingUserID {
		reg.logger.Warn("Unauthorized link delete rejected",
			zap.String("shortCode", shortCode),
			zap.String("requestingUserID", requestingUserID))
		return ErrUnauthorized
	}

	delete(reg.links, shortCode)
	for i, code := range reg.order {
		if code == shortCode {
			reg.order = append(reg.order[:i], reg.order[i+1:]...)
			break
		}
	}

	reg.logger.Info("Link deleted", zap.String("shortCode", shortCode))

	return nil
}

// snapshot deep-copies a record so callers cannot mutate registry state.
func snapshot(record *models.LinkRecord) models.LinkRecord {
	copied := *record
	copied.VisitHistory = make([]models.Visit, len(record.VisitHistory))
	copy(copied.VisitHistory, record.VisitHistory)
	return copied
}
