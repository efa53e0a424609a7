package ports

import (
	"context"
	"time"

	"github.com/Kumaraswamy-D/Kalpataru-Boys-Hostel-Management/internal/core/domain"
)

// SessionStore holds the authenticated user's full record for the lifetime of
// a session: written on login, refreshed when the record changes (a booking
// stamps the room cache), and cleared on logout. Lookups of a missing session
// return domain.ErrSessionNotFound.
type SessionStore interface {
	SaveSession(ctx context.Context, user domain.User, ttl time.Duration) error
	Session(ctx context.Context, userID string) (*domain.User, error)
	ClearSession(ctx context.Context, userID string) error
}
