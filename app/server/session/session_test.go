package session

import (
	"context"
	"strings"
	"testing"
	"time"

	"github.com/golang-jwt/jwt/v5"

	"vulcano-plugin-repository/app/server/constants"
)

func TestSignAndParse(t *testing.T) {
	m, err := New("test-secret-key", nil)
	if err != nil {
		t.Fatalf("New failed: %v", err)
	}

	token, signed, err := m.Sign("alice", constants.RoleCoAdmin)
	if err != nil {
		t.Fatalf("Sign failed: %v", err)
	}
	if signed.ID == "" {
		t.Error("expected a non-empty session ID")
	}

	parsed, err := m.Parse(context.Background(), token)
	if err != nil {
		t.Fatalf("Parse failed: %v", err)
	}
	if parsed.Username != "alice" {
		t.Errorf("expected username 'alice', got '%s'", parsed.Username)
	}
	if parsed.Role != constants.RoleCoAdmin {
		t.Errorf("expected role '%s', got '%s'", constants.RoleCoAdmin, parsed.Role)
	}
	if parsed.ID != signed.ID {
		t.Errorf("expected session ID '%s', got '%s'", signed.ID, parsed.ID)
	}
}

func TestParseRejectsOtherKey(t *testing.T) {
	m, _ := New("test-secret-key", nil)
	other, _ := New("another-secret-key", nil)

	token, _, err := other.Sign("alice", constants.RoleUser)
	if err != nil {
		t.Fatalf("Sign failed: %v", err)
	}

	if _, err := m.Parse(context.Background(), token); err == nil {
		t.Fatal("expected error for token signed with a different key, got nil")
	}
}

func TestParseRejectsExpired(t *testing.T) {
	m, _ := New("test-secret-key", nil)

	// 手工构造一个已过期的 token
	claims := jwt.MapClaims{
		"sub":  "alice",
		"role": constants.RoleUser,
		"jti":  "some-id",
		"exp":  time.Now().Add(-1 * time.Hour).Unix(),
	}
	token, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString([]byte("test-secret-key"))
	if err != nil {
		t.Fatalf("sign expired token: %v", err)
	}

	if _, err := m.Parse(context.Background(), token); err == nil {
		t.Fatal("expected error for expired token, got nil")
	}
}

func TestParseRejectsGarbage(t *testing.T) {
	m, _ := New("test-secret-key", nil)

	for _, tokenString := range []string{"", "not-a-token", strings.Repeat("a.", 10)} {
		if _, err := m.Parse(context.Background(), tokenString); err == nil {
			t.Errorf("expected error for token %q, got nil", tokenString)
		}
	}
}

func TestNewRequiresKey(t *testing.T) {
	if _, err := New("", nil); err == nil {
		t.Fatal("expected error for empty key, got nil")
	}
}
