package services

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"lms/apperrors"
	"lms/models"
)

type fakeSessionRepo struct {
	sessions map[string]*models.Session
	nextID   uint
}

func (r *fakeSessionRepo) FindByJTI(jti string) (*models.Session, error) {
	return r.sessions[jti], nil
}
func (r *fakeSessionRepo) FindByUserID(userID uint) ([]models.Session, error) {
	var out []models.Session
	for _, s := range r.sessions {
		if s.UserID == userID {
			out = append(out, *s)
		}
	}
	return out, nil
}
func (r *fakeSessionRepo) Create(s *models.Session) error {
	r.nextID++
	s.ID = r.nextID
	r.sessions[s.JTI] = s
	return nil
}
func (r *fakeSessionRepo) Update(s *models.Session) error {
	r.sessions[s.JTI] = s
	return nil
}
func (r *fakeSessionRepo) DeleteExpired(before time.Time) (int64, error) {
	var deleted int64
	for jti, s := range r.sessions {
		if s.ExpiresAt.Before(before) {
			delete(r.sessions, jti)
			deleted++
		}
	}
	return deleted, nil
}

func newSessionFixture() (*SessionService, *fakeSessionRepo) {
	repo := &fakeSessionRepo{sessions: map[string]*models.Session{}}
	return NewSessionService(repo, 24*time.Hour), repo
}

func TestCreateAndValidateSession(t *testing.T) {
	service, _ := newSessionFixture()

	session, err := service.CreateSession(1, "agent", "10.0.0.1")
	require.NoError(t, err)
	require.NotEmpty(t, session.JTI)

	valid, err := service.ValidateSession(session.JTI, "agent", "10.0.0.1")
	require.NoError(t, err)
	assert.True(t, valid)

	// Unknown jti is simply invalid, not an error
	valid, err = service.ValidateSession("missing", "agent", "10.0.0.1")
	require.NoError(t, err)
	assert.False(t, valid)
}

func TestValidateSessionFingerprintMismatch(t *testing.T) {
	service, _ := newSessionFixture()

	session, err := service.CreateSession(1, "agent", "10.0.0.1")
	require.NoError(t, err)

	valid, err := service.ValidateSession(session.JTI, "other-agent", "10.0.0.2")
	require.NoError(t, err)
	assert.False(t, valid)
}

func TestRevokeSession(t *testing.T) {
	service, _ := newSessionFixture()

	session, err := service.CreateSession(1, "agent", "10.0.0.1")
	require.NoError(t, err)

	require.NoError(t, service.RevokeSession(session.JTI))

	valid, err := service.ValidateSession(session.JTI, "agent", "10.0.0.1")
	require.NoError(t, err)
	assert.False(t, valid)

	err = service.RevokeSession("missing")
	assert.Equal(t, apperrors.KindNotFound, apperrors.KindOf(err))
}

func TestRevokeAllUserSessions(t *testing.T) {
	service, _ := newSessionFixture()

	s1, _ := service.CreateSession(1, "a", "1.1.1.1")
	s2, _ := service.CreateSession(1, "b", "2.2.2.2")
	other, _ := service.CreateSession(2, "c", "3.3.3.3")

	revoked, err := service.RevokeAllUserSessions(1)
	require.NoError(t, err)
	assert.Equal(t, 2, revoked)

	for _, jti := range []string{s1.JTI, s2.JTI} {
		valid, _ := service.ValidateSession(jti, "", "")
		assert.False(t, valid)
	}

	valid, _ := service.ValidateSession(other.JTI, "c", "3.3.3.3")
	assert.True(t, valid)
}

func TestCleanupExpiredSessions(t *testing.T) {
	service, repo := newSessionFixture()

	expired := models.NewSession(1, "expired-jti", "a", "1.1.1.1", time.Now().Add(-time.Hour))
	require.NoError(t, repo.Create(expired))
	_, err := service.CreateSession(1, "a", "1.1.1.1")
	require.NoError(t, err)

	deleted, err := service.CleanupExpiredSessions()
	require.NoError(t, err)
	assert.Equal(t, int64(1), deleted)
}
