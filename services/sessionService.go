package services

import (
	"log"
	"time"

	"github.com/google/uuid"

	"lms/apperrors"
	"lms/models"
	"lms/repository"
)

// SessionService tracks issued login tokens by their jti claim.
type SessionService struct {
	sessions repository.SessionRepository
	tokenTTL time.Duration
}

func NewSessionService(sessions repository.SessionRepository, tokenTTL time.Duration) *SessionService {
	return &SessionService{sessions: sessions, tokenTTL: tokenTTL}
}

func (s *SessionService) CreateSession(userID uint, userAgent, ipAddress string) (*models.Session, error) {
	session := models.NewSession(userID, uuid.NewString(), userAgent, ipAddress, time.Now().Add(s.tokenTTL))
	if err := s.sessions.Create(session); err != nil {
		return nil, err
	}
	return session, nil
}

// ValidateSession reports whether the jti belongs to a live session matching
// the request's client fingerprint.
func (s *SessionService) ValidateSession(jti, userAgent, ipAddress string) (bool, error) {
	session, err := s.sessions.FindByJTI(jti)
	if err != nil {
		return false, err
	}
	if session == nil || !session.IsValid() {
		return false, nil
	}
	if !session.MatchesRequest(userAgent, ipAddress) {
		log.Printf("[SESSION] fingerprint mismatch detected for jti %s", jti)
		return false, nil
	}
	return true, nil
}

func (s *SessionService) RevokeSession(jti string) error {
	session, err := s.sessions.FindByJTI(jti)
	if err != nil {
		return err
	}
	if session == nil {
		return apperrors.NotFound("Session not found!")
	}

	session.Revoke()
	return s.sessions.Update(session)
}

func (s *SessionService) RevokeAllUserSessions(userID uint) (int, error) {
	sessions, err := s.sessions.FindByUserID(userID)
	if err != nil {
		return 0, err
	}

	revoked := 0
	for i := range sessions {
		if sessions[i].IsValid() {
			sessions[i].Revoke()
			if err := s.sessions.Update(&sessions[i]); err != nil {
				return revoked, err
			}
			revoked++
		}
	}
	return revoked, nil
}

func (s *SessionService) GetUserActiveSessions(userID uint) ([]models.Session, error) {
	sessions, err := s.sessions.FindByUserID(userID)
	if err != nil {
		return nil, err
	}

	active := make([]models.Session, 0, len(sessions))
	for _, session := range sessions {
		if session.IsValid() {
			active = append(active, session)
		}
	}
	return active, nil
}

func (s *SessionService) CleanupExpiredSessions() (int64, error) {
	return s.sessions.DeleteExpired(time.Now())
}
