package models

// Visit is a single recorded traversal of a short link.
type Visit struct {
	VisitorID string `json:"visitor_id"`
	Timestamp string `json:"timestamp"`
}

// LinkRecord is one entry of the registry. VisitHistory is ordered newest
// first.
type LinkRecord struct {
	ShortCode    string  `json:"short_code"`
	LongURL      string  `json:"long_url"`
	OwnerID      string  `json:"owner_id,omitempty"`
	TotalVisits  int     `json:"total_visits"`
	UniqueVisits int     `json:"unique_visits"`
	VisitHistory []Visit `json:"visit_history"`
}

// VisitorSession is the per-browser-session marker used to deduplicate
// unique-visit counting. It lives in the visitor cookie, never in the
// registry.
type VisitorSession struct {
	VisitorID    string          `json:"visitor_id"`
	VisitedCodes map[string]bool `json:"visited_codes"`
}

type User struct {
	ID           string `json:"id"`
	Email        string `json:"email"`
	PasswordHash string `json:"-"`
}

type CreateLinkRequest struct {
	LongURL string `json:"long_url"`
}

type UpdateLinkRequest struct {
	LongURL string `json:"long_url"`
}

type LinkResponse struct {
	ShortCode    string `json:"short_code"`
	ShortURL     string `json:"short_url"`
	LongURL      string `json:"long_url"`
	TotalVisits  int    `json:"total_visits"`
	UniqueVisits int    `json:"unique_visits"`
}

type LinkDetailsResponse struct {
	ShortCode    string  `json:"short_code"`
	ShortURL     string  `json:"short_url"`
	LongURL      string  `json:"long_url"`
	TotalVisits  int     `json:"total_visits"`
	UniqueVisits int     `json:"unique_visits"`
	VisitHistory []Visit `json:"visit_history"`
}

type RegisterRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

type LoginRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

type UserResponse struct {
	ID    string `json:"id"`
	Email string `json:"email"`
}
