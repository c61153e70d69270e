package models

import (
	"time"

	"gorm.io/gorm"
)

// Session is one issued login token, identified by the JWT jti claim. Revoking
// the session invalidates the token before its natural expiry.
type Session struct {
	gorm.Model
	UserID    uint       `json:"user_id" gorm:"index;not null"`
	JTI       string     `json:"jti" gorm:"uniqueIndex;not null"`
	UserAgent string     `json:"user_agent" gorm:"default:''"`
	IPAddress string     `json:"ip_address" gorm:"default:''"`
	ExpiresAt time.Time  `json:"expires_at" gorm:"not null"`
	RevokedAt *time.Time `json:"revoked_at"`
}

func NewSession(userID uint, jti, userAgent, ipAddress string, expiresAt time.Time) *Session {
	return &Session{
		UserID:    userID,
		JTI:       jti,
		UserAgent: userAgent,
		IPAddress: ipAddress,
		ExpiresAt: expiresAt,
	}
}

func (s *Session) Revoke() {
	now := time.Now()
	s.RevokedAt = &now
}

func (s *Session) IsRevoked() bool {
	return s.RevokedAt != nil
}

func (s *Session) IsValid() bool {
	return !s.IsRevoked() && time.Now().Before(s.ExpiresAt)
}

// MatchesRequest compares the stored client fingerprint with the request's.
// Empty stored values match anything.
func (s *Session) MatchesRequest(userAgent, ipAddress string) bool {
	if s.UserAgent != "" && userAgent != "" && s.UserAgent != userAgent {
		return false
	}
	if s.IPAddress != "" && ipAddress != "" && s.IPAddress != ipAddress {
		return false
	}
	return true
}
