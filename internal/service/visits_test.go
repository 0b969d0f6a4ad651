package service

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/tinyapp/tinylinks/internal/models"
	"go.uber.org/zap"
)

func newSession() models.VisitorSession {
	return models.VisitorSession{}
}

func TestRecordVisitCountsAndSession(t *testing.T) {
	registry := NewRegistry(zap.NewNop())

	created, err := registry.Create("http://example.com", "u1")
	require.NoError(t, err)
	assert.Zero(t, created.TotalVisits)
	assert.Zero(t, created.UniqueVisits)
	assert.Empty(t, created.VisitHistory)

	// Two traversals from the same fresh session.
	record, session, err := registry.RecordVisit(created.ShortCode, newSession())
	require.NoError(t, err)
	assert.NotEmpty(t, session.VisitorID, "first visit must mint a visitor ID")
	assert.True(t, session.VisitedCodes[created.ShortCode])
	assert.Equal(t, 1, record.TotalVisits)
	assert.Equal(t, 1, record.UniqueVisits)

	firstVisitorID := session.VisitorID

	record, session, err = registry.RecordVisit(created.ShortCode, session)
	require.NoError(t, err)
	assert.Equal(t, firstVisitorID, session.VisitorID, "visitor ID is stable within a session")
	assert.Equal(t, 2, record.TotalVisits)
	assert.Equal(t, 1, record.UniqueVisits, "repeat visit from the same session is not unique")

	// A traversal from a second, distinct session.
	record, other, err := registry.RecordVisit(created.ShortCode, newSession())
	require.NoError(t, err)
	assert.NotEqual(t, firstVisitorID, other.VisitorID)
	assert.Equal(t, 3, record.TotalVisits)
	assert.Equal(t, 2, record.UniqueVisits)
}

func TestRecordVisitHistoryOrdering(t *testing.T) {
	registry := NewRegistry(zap.NewNop())

	created, err := registry.Create("http://example.com", "u1")
	require.NoError(t, err)

	_, first, err := registry.RecordVisit(created.ShortCode, newSession())
	require.NoError(t, err)
	record, second, err := registry.RecordVisit(created.ShortCode, newSession())
	require.NoError(t, err)

	require.Len(t, record.VisitHistory, 2)
	assert.Equal(t, second.VisitorID, record.VisitHistory[0].VisitorID,
		"newest visit is first")
	assert.Equal(t, first.VisitorID, record.VisitHistory[1].VisitorID)

	for _, visit := range record.VisitHistory {
		parsed, parseErr := time.Parse(time.RFC1123, visit.Timestamp)
		require.NoError(t, parseErr, "timestamps are human-readable RFC 1123")
		assert.Equal(t, "UTC", visit.Timestamp[len(visit.Timestamp)-3:])
		assert.WithinDuration(t, time.Now().UTC(), parsed, time.Minute)
	}
}

func TestRecordVisitUniquePerLink(t *testing.T) {
	registry := NewRegistry(zap.NewNop())

	first, err := registry.Create("http://example.com/a", "u1")
	require.NoError(t, err)
	second, err := registry.Create("http://example.com/b", "u1")
	require.NoError(t, err)

	_, session, err := registry.RecordVisit(first.ShortCode, newSession())
	require.NoError(t, err)

	// The same session is still unique for a link it has not seen.
	record, _, err := registry.RecordVisit(second.ShortCode, session)
	require.NoError(t, err)
	assert.Equal(t, 1, record.TotalVisits)
	assert.Equal(t, 1, record.UniqueVisits)
}

func TestRecordVisitNotFound(t *testing.T) {
	registry := NewRegistry(zap.NewNop())

	_, session, err := registry.RecordVisit("nosuch", newSession())
	assert.ErrorIs(t, err, ErrNotFound)
	assert.NotNil(t, session.VisitedCodes)
}

func TestRecordVisitDoesNotTouchOtherFields(t *testing.T) {
	registry := NewRegistry(zap.NewNop())

	created, err := registry.Create("http://example.com", "u1")
	require.NoError(t, err)

	record, _, err := registry.RecordVisit(created.ShortCode, newSession())
	require.NoError(t, err)
	assert.Equal(t, created.LongURL, record.LongURL)
	assert.Equal(t, created.OwnerID, record.OwnerID)
}
