package services

import (
	"time"

	"golang.org/x/crypto/bcrypt"

	"lms/apperrors"
	"lms/config"
	"lms/middleware"
	"lms/models"
	"lms/repository"
)

type RegisterCommand struct {
	Email     string
	FirstName string
	LastName  string
	Phone     string
	Password  string
	Role      string
}

// AuthService handles registration, login and logout.
type AuthService struct {
	users    repository.UserRepository
	sessions *SessionService
	events   EventDispatcher
	email    EmailSender
	cfg      *config.Config
}

func NewAuthService(users repository.UserRepository, sessions *SessionService, events EventDispatcher, email EmailSender, cfg *config.Config) *AuthService {
	return &AuthService{users: users, sessions: sessions, events: events, email: email, cfg: cfg}
}

// Register creates a new account. Self-registration is limited to student and
// instructor roles.
func (s *AuthService) Register(cmd RegisterCommand) (*models.User, error) {
	role := cmd.Role
	if role == "" {
		role = models.RoleStudent
	}
	if role == models.RoleAdmin {
		return nil, apperrors.Validation("Invalid role!")
	}

	existing, err := s.users.FindByEmail(cmd.Email)
	if err != nil {
		return nil, err
	}
	if existing != nil {
		return nil, apperrors.Conflict("Email is already registered!")
	}

	hashedPassword, err := bcrypt.GenerateFromPassword([]byte(cmd.Password), s.cfg.SaltRound)
	if err != nil {
		return nil, apperrors.Unexpected("Failed to process your request!", err)
	}

	user, err := models.NewUser(cmd.Email, cmd.FirstName, cmd.LastName, cmd.Phone, role, string(hashedPassword))
	if err != nil {
		return nil, err
	}

	if err := s.users.Create(user); err != nil {
		return nil, err
	}

	user.RecordRegistered()
	for _, event := range user.PullEvents() {
		s.events.Dispatch(event)
	}

	s.email.SendWelcomeEmail(user.Email, user.FullName())

	return user, nil
}

// Login verifies the credentials, opens a session and issues a JWT carrying
// the session's jti.
func (s *AuthService) Login(email, password, userAgent, ipAddress string) (string, *models.User, error) {
	user, err := s.users.FindByEmail(email)
	if err != nil {
		return "", nil, err
	}
	if user == nil {
		return "", nil, apperrors.Unauthorized("Invalid email or password!")
	}

	if err := bcrypt.CompareHashAndPassword([]byte(user.Password), []byte(password)); err != nil {
		return "", nil, apperrors.Unauthorized("Invalid email or password!")
	}

	if !user.IsActive {
		return "", nil, apperrors.Unauthorized("Account is deactivated!")
	}

	session, err := s.sessions.CreateSession(user.ID, userAgent, ipAddress)
	if err != nil {
		return "", nil, err
	}

	token, err := middleware.GenerateJWT(
		s.cfg.JWTKey,
		time.Duration(s.cfg.TokenExpiryHours)*time.Hour,
		user.ID,
		user.FullName(),
		user.Role,
		user.Email,
		session.JTI,
	)
	if err != nil {
		return "", nil, apperrors.Unexpected("Failed to issue token!", err)
	}

	return token, user, nil
}

// Logout revokes the session behind the presented token.
func (s *AuthService) Logout(jti string) error {
	return s.sessions.RevokeSession(jti)
}
