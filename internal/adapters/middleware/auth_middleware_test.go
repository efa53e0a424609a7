package middleware

import (
	"crypto/rand"
	"crypto/rsa"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/golang-jwt/jwt/v5"
)

func signTestToken(t *testing.T, key *rsa.PrivateKey, sub, role string, exp time.Time) string {
	t.Helper()
	claims := jwt.MapClaims{
		"sub":  sub,
		"role": role,
		"iat":  time.Now().Unix(),
		"exp":  exp.Unix(),
	}
	token, err := jwt.NewWithClaims(jwt.SigningMethodRS256, claims).SignedString(key)
	if err != nil {
		t.Fatalf("failed to sign test token: %v", err)
	}
	return token
}

func TestRequireRole(t *testing.T) {
	key, err := rsa.GenerateKey(rand.Reader, 2048)
	if err != nil {
		t.Fatalf("failed to generate test key: %v", err)
	}
	otherKey, err := rsa.GenerateKey(rand.Reader, 2048)
	if err != nil {
		t.Fatalf("failed to generate second test key: %v", err)
	}

	m := NewAuthMiddleware(&key.PublicKey)

	tests := []struct {
		name       string
		authHeader string
		roles      []string
		wantStatus int
		wantUserID string
	}{
		{
			name:       "valid_student_token",
			authHeader: "Bearer " + signTestToken(t, key, "student-1", "STUDENT", time.Now().Add(time.Hour)),
			roles:      []string{"STUDENT"},
			wantStatus: http.StatusOK,
			wantUserID: "student-1",
		},
		{
			name:       "role_in_allowed_set",
			authHeader: "Bearer " + signTestToken(t, key, "manager-1", "MANAGER", time.Now().Add(time.Hour)),
			roles:      []string{"STUDENT", "MANAGER"},
			wantStatus: http.StatusOK,
			wantUserID: "manager-1",
		},
		{
			name:       "role_outside_allowed_set",
			authHeader: "Bearer " + signTestToken(t, key, "student-1", "STUDENT", time.Now().Add(time.Hour)),
			roles:      []string{"MANAGER"},
			wantStatus: http.StatusForbidden,
		},
		{
			name:       "expired_token",
			authHeader: "Bearer " + signTestToken(t, key, "student-1", "STUDENT", time.Now().Add(-time.Hour)),
			roles:      []string{"STUDENT"},
			wantStatus: http.StatusUnauthorized,
		},
		{
			name:       "token_signed_with_wrong_key",
			authHeader: "Bearer " + signTestToken(t, otherKey, "student-1", "STUDENT", time.Now().Add(time.Hour)),
			roles:      []string{"STUDENT"},
			wantStatus: http.StatusUnauthorized,
		},
		{
			name:       "missing_header",
			authHeader: "",
			roles:      []string{"STUDENT"},
			wantStatus: http.StatusUnauthorized,
		},
		{
			name:       "malformed_header",
			authHeader: "not-a-bearer-token",
			roles:      []string{"STUDENT"},
			wantStatus: http.StatusUnauthorized,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var gotUserID string
			next := func(w http.ResponseWriter, r *http.Request) {
				gotUserID, _ = r.Context().Value(UserIDKey).(string)
				w.WriteHeader(http.StatusOK)
			}

			req := httptest.NewRequest(http.MethodGet, "/rooms", nil)
			if tt.authHeader != "" {
				req.Header.Set("Authorization", tt.authHeader)
			}
			rec := httptest.NewRecorder()

			m.RequireRole(tt.roles, next)(rec, req)

			if rec.Code != tt.wantStatus {
				t.Errorf("status = %d, want %d", rec.Code, tt.wantStatus)
			}
			if tt.wantStatus == http.StatusOK && gotUserID != tt.wantUserID {
				t.Errorf("context user id = %q, want %q", gotUserID, tt.wantUserID)
			}
		})
	}
}
