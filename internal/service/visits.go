package service

import (
	"time"

	"github.com/google/uuid"
	"github.com/tinyapp/tinylinks/internal/models"
	"go.uber.org/zap"
)

// visitTimestampLayout keeps history entries human-readable and
// UTC-qualified.
const visitTimestampLayout = time.RFC1123

// RecordVisit counts one traversal of shortCode for the given visitor
// session. Total visits grow on every call; unique visits only the first
// time a session sees the code. The updated session is returned for the
// caller to persist back into the cookie.
func (reg *Registry) RecordVisit(shortCode string, session models.VisitorSession) (models.LinkRecord, models.VisitorSession, error) {
	if session.VisitorID == "" {
		session.VisitorID = uuid.New().String()
	}
	if session.VisitedCodes == nil {
		session.VisitedCodes = make(map[string]bool)
	}

	reg.mu.Lock()
	defer reg.mu.Unlock()

	record, exists := reg.links[shortCode]
	if !exists {
		return models.LinkRecord{}, session, ErrNotFound
	}

	record.TotalVisits++

	if !session.VisitedCodes[shortCode] {
		record.UniqueVisits++
		session.VisitedCodes[shortCode] = true
	}

	visit := models.Visit{
		VisitorID: session.VisitorID,
		Timestamp: time.Now().UTC().Format(visitTimestampLayout),
	}
	record.VisitHistory = append([]models.Visit{visit}, record.VisitHistory...)

	reg.logger.Debug("Visit recorded",
		zap.String("shortCode", shortCode),
		zap.String("visitorID", session.VisitorID),
		zap.Int("totalVisits", record.TotalVisits),
		zap.Int("uniqueVisits", record.UniqueVisits))

	return snapshot(record), session, nil
}
