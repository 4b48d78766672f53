package helpers

import (
	"testing"

	"github.com/gazostheque/gazostheque/internal/models"
	"github.com/gazostheque/gazostheque/internal/services"
)

// TestJWTSecret signs session tokens in tests.
const TestJWTSecret = "test-session-secret"

// BearerToken initializes the session service with the test secret and
// mints a token for the given user.
func BearerToken(t *testing.T, user *models.User) string {
	t.Helper()
	if err := services.InitSession(TestJWTSecret); err != nil {
		t.Fatalf("Failed to initialize session service: %v", err)
	}
	token, err := services.GenerateToken(user)
	if err != nil {
		t.Fatalf("Failed to generate token: %v", err)
	}
	return "Bearer " + token
}
