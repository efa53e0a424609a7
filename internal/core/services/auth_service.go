package services

import (
	"context"
	"crypto/rsa"
	"time"

	"github.com/golang-jwt/jwt/v5"

	"github.com/Kumaraswamy-D/Kalpataru-Boys-Hostel-Management/internal/core/domain"
	"github.com/Kumaraswamy-D/Kalpataru-Boys-Hostel-Management/internal/core/ports"
)

// sessionTTL bounds both the signed token and the session record in the
// session store.
const sessionTTL = 24 * time.Hour

// Bootstrap manager account. It is synthetic: never persisted to the user
// collection, always available.
const (
	bootstrapManagerID       = "admin-1"
	bootstrapManagerName     = "Manager Smith"
	bootstrapManagerEmail    = "admin@hostel.com"
	bootstrapManagerPassword = "admin"
)

type AuthService struct {
	repo       ports.HostelRepository
	sessions   ports.SessionStore
	privateKey *rsa.PrivateKey
}

var _ ports.AuthService = (*AuthService)(nil)

func NewAuthService(repo ports.HostelRepository, sessions ports.SessionStore, privateKey *rsa.PrivateKey) *AuthService {
	return &AuthService{
		repo:       repo,
		sessions:   sessions,
		privateKey: privateKey,
	}
}

// Login resolves credentials to a user record, signs a session token, and
// stores the full record in the session slot. Matching is first-by-storage-
// order on (email, role); passwords compare as stored.
func (s *AuthService) Login(ctx context.Context, email, password string, role domain.Role) (string, *domain.User, error) {
	user, ok := s.resolveUser(ctx, email, password, role)
	if !ok {
		return "", nil, domain.ErrInvalidCredentials
	}

	token, err := s.signToken(user)
	if err != nil {
		return "", nil, err
	}

	if err := s.sessions.SaveSession(ctx, user, sessionTTL); err != nil {
		return "", nil, err
	}
	return token, &user, nil
}

func (s *AuthService) resolveUser(ctx context.Context, email, password string, role domain.Role) (domain.User, bool) {
	if role == domain.RoleManager && email == bootstrapManagerEmail && password == bootstrapManagerPassword {
		return domain.User{
			ID:    bootstrapManagerID,
			Name:  bootstrapManagerName,
			Email: bootstrapManagerEmail,
			Role:  domain.RoleManager,
		}, true
	}

	users, err := s.repo.Users(ctx)
	if err != nil {
		return domain.User{}, false
	}
	user, ok := domain.FindUser(users, email, role)
	if !ok || user.Password != password {
		return domain.User{}, false
	}
	return user, true
}

func (s *AuthService) signToken(user domain.User) (string, error) {
	claims := jwt.MapClaims{
		"sub":  user.ID,
		"role": string(user.Role),
		"iat":  time.Now().Unix(),
		"exp":  time.Now().Add(sessionTTL).Unix(),
	}
	token := jwt.NewWithClaims(jwt.SigningMethodRS256, claims)
	return token.SignedString(s.privateKey)
}

// CurrentUser restores the authenticated user's record from the session slot.
func (s *AuthService) CurrentUser(ctx context.Context, userID string) (*domain.User, error) {
	return s.sessions.Session(ctx, userID)
}

func (s *AuthService) Logout(ctx context.Context, userID string) error {
	return s.sessions.ClearSession(ctx, userID)
}
