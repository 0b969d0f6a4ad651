package middleware

import (
	"crypto/hmac"
	"crypto/sha256"
	"encoding/base64"
	"encoding/hex"
	"encoding/json"
	"net/http"
	"strings"
	"time"

	"github.com/tinyapp/tinylinks/internal/models"
	"go.uber.org/zap"
)

const (
	visitorCookieName    = "visitor_session"
	visitorCookieExpires = 365 * 24 * time.Hour
)

// VisitorSessions round-trips the per-browser visitor marker through a
// signed cookie: base64-encoded JSON plus an HMAC-SHA256 signature. The
// registry only ever sees the decoded session value.
type VisitorSessions struct {
	secretKey []byte
	logger    *zap.Logger
}

func NewVisitorSessions(secret string, logger *zap.Logger) *VisitorSessions {
	return &VisitorSessions{
		secretKey: []byte(secret),
		logger:    logger,
	}
}

// FromRequest decodes the visitor session cookie. A missing, malformed or
// tampered cookie yields a zero session; the visit tracker mints a fresh
// visitor ID in that case.
func (v *VisitorSessions) FromRequest(r *http.Request) models.VisitorSession {
	cookie, err := r.Cookie(visitorCookieName)
	if err != nil {
		return models.VisitorSession{}
	}

	parts := strings.Split(cookie.Value, ".")
	if len(parts) != 2 {
		return models.VisitorSession{}
	}

	payload := parts[0]
	signature := parts[1]

	if !hmac.Equal([]byte(signature), []byte(v.sign(payload))) {
		v.logger.Warn("Discarding visitor cookie with invalid signature")
		return models.VisitorSession{}
	}

	decoded, err := base64.RawURLEncoding.DecodeString(payload)
	if err != nil {
		return models.VisitorSession{}
	}

	var session models.VisitorSession
	if err := json.Unmarshal(decoded, &session); err != nil {
		return models.VisitorSession{}
	}

	return session
}

// Save writes the updated session back into the cookie.
func (v *VisitorSessions) Save(w http.ResponseWriter, session models.VisitorSession) {
	data, err := json.Marshal(session)
	if err != nil {
		v.logger.Error("Failed to marshal visitor session", zap.Error(err))
		return
	}

	payload := base64.RawURLEncoding.EncodeToString(data)

	cookie := &http.Cookie{
		Name:     visitorCookieName,
		Value:    payload + "." + v.sign(payload),
		Path:     "/",
		Expires:  time.Now().Add(visitorCookieExpires),
		HttpOnly: true,
		Secure:   false,
		SameSite: http.SameSiteLaxMode,
	}

	http.SetCookie(w, cookie)
}

func (v *VisitorSessions) sign(payload string) string {
	mac := hmac.New(sha256.New, v.secretKey)
	mac.Write([]byte(payload))
	return hex.EncodeToString(mac.Sum(nil))
}
