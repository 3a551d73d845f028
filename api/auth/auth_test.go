package auth

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/google/uuid"
)

func TestJWTRoundTrip(t *testing.T) {
	t.Setenv("JWT_SECRET", "test-secret")

	userID := uuid.New()
	token, err := GenerateJWT(userID)
	if err != nil {
		t.Fatalf("GenerateJWT: %v", err)
	}

	got, err := ValidateJWT(token)
	if err != nil {
		t.Fatalf("ValidateJWT: %v", err)
	}
	if got != userID {
		t.Errorf("user id = %s, want %s", got, userID)
	}
}

func TestValidateJWTRejectsTampering(t *testing.T) {
	t.Setenv("JWT_SECRET", "test-secret")
	token, err := GenerateJWT(uuid.New())
	if err != nil {
		t.Fatalf("GenerateJWT: %v", err)
	}

	t.Setenv("JWT_SECRET", "different-secret")
	if _, err := ValidateJWT(token); err == nil {
		t.Fatal("token signed with another secret accepted")
	}
}

func TestAuthMiddleware(t *testing.T) {
	t.Setenv("JWT_SECRET", "test-secret")
	userID := uuid.New()
	token, _ := GenerateJWT(userID)

	next := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if got := UserIDFromContext(r.Context()); got != userID {
			t.Errorf("context user id = %s, want %s", got, userID)
		}
		w.WriteHeader(http.StatusOK)
	})
	handler := AuthMiddleware(next)

	req := httptest.NewRequest(http.MethodGet, "/posts/me", nil)
	req.Header.Set("Authorization", "Bearer "+token)
	rec := httptest.NewRecorder()
	handler.ServeHTTP(rec, req)
	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d with valid token, want 200", rec.Code)
	}

	req = httptest.NewRequest(http.MethodGet, "/posts/me", nil)
	rec = httptest.NewRecorder()
	handler.ServeHTTP(rec, req)
	if rec.Code != http.StatusUnauthorized {
		t.Fatalf("status = %d without token, want 401", rec.Code)
	}

	req = httptest.NewRequest(http.MethodGet, "/posts/me", nil)
	req.Header.Set("Authorization", "Token "+token)
	rec = httptest.NewRecorder()
	handler.ServeHTTP(rec, req)
	if rec.Code != http.StatusUnauthorized {
		t.Fatalf("status = %d with malformed header, want 401", rec.Code)
	}
}
