package handlers

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/labstack/echo/v4"
	"go.uber.org/zap"

	"vulcano-plugin-repository/app/server/constants"
	"vulcano-plugin-repository/app/server/session"
)

func testApp(t *testing.T) *App {
	t.Helper()

	sm, err := session.New("test-secret-key", nil)
	if err != nil {
		t.Fatalf("session.New failed: %v", err)
	}

	return NewApp(zap.NewNop(), nil, nil, sm, nil)
}

func request(t *testing.T, a *App, handler echo.HandlerFunc, cookie string) *httptest.ResponseRecorder {
	t.Helper()

	e := echo.New()
	req := httptest.NewRequest(http.MethodGet, "/", nil)
	if cookie != "" {
		req.AddCookie(&http.Cookie{Name: constants.SessionCookieName, Value: cookie})
	}
	rec := httptest.NewRecorder()

	if err := handler(e.NewContext(req, rec)); err != nil {
		t.Fatalf("handler failed: %v", err)
	}
	return rec
}

func TestAuthStatusAnonymous(t *testing.T) {
	a := testApp(t)

	rec := request(t, a, a.AuthStatus, "")
	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", rec.Code)
	}

	var res struct {
		LoggedIn bool   `json:"logged_in"`
		Username string `json:"username"`
		Role     string `json:"role"`
	}
	if err := json.Unmarshal(rec.Body.Bytes(), &res); err != nil {
		t.Fatalf("failed to decode response: %v", err)
	}
	if res.LoggedIn {
		t.Error("expected logged_in false")
	}
	if res.Role != constants.RoleUser {
		t.Errorf("expected default role user, got %q", res.Role)
	}
}

func TestAuthStatusLoggedIn(t *testing.T) {
	a := testApp(t)

	token, _, err := a.session.Sign("alice", constants.RoleCoAdmin)
	if err != nil {
		t.Fatalf("Sign failed: %v", err)
	}

	rec := request(t, a, a.AuthStatus, token)

	var res struct {
		LoggedIn bool   `json:"logged_in"`
		Username string `json:"username"`
		Role     string `json:"role"`
	}
	if err := json.Unmarshal(rec.Body.Bytes(), &res); err != nil {
		t.Fatalf("failed to decode response: %v", err)
	}
	if !res.LoggedIn {
		t.Error("expected logged_in true")
	}
	if res.Username != "alice" || res.Role != constants.RoleCoAdmin {
		t.Errorf("unexpected identity: %+v", res)
	}
}

func TestAuthStatusTamperedToken(t *testing.T) {
	a := testApp(t)

	other, _ := session.New("another-secret-key", nil)
	token, _, err := other.Sign("alice", constants.RoleAdmin)
	if err != nil {
		t.Fatalf("Sign failed: %v", err)
	}

	rec := request(t, a, a.AuthStatus, token)

	var res struct {
		LoggedIn bool `json:"logged_in"`
	}
	if err := json.Unmarshal(rec.Body.Bytes(), &res); err != nil {
		t.Fatalf("failed to decode response: %v", err)
	}
	if res.LoggedIn {
		t.Error("tampered token must not count as logged in")
	}
}

func TestAdminCheckSessionRoleGate(t *testing.T) {
	a := testApp(t)

	tests := []struct {
		role         string
		wantLoggedIn bool
	}{
		{constants.RoleAdmin, true},
		{constants.RoleCoAdmin, true},
		{constants.RoleUser, false},
	}

	for _, tt := range tests {
		token, _, err := a.session.Sign("someone", tt.role)
		if err != nil {
			t.Fatalf("Sign failed: %v", err)
		}

		rec := request(t, a, a.AdminCheckSession, token)

		var res struct {
			LoggedIn bool   `json:"logged_in"`
			Role     string `json:"role"`
		}
		if err := json.Unmarshal(rec.Body.Bytes(), &res); err != nil {
			t.Fatalf("failed to decode response: %v", err)
		}
		if res.LoggedIn != tt.wantLoggedIn {
			t.Errorf("role %s: expected logged_in %v, got %v", tt.role, tt.wantLoggedIn, res.LoggedIn)
		}
		if tt.wantLoggedIn && res.Role != tt.role {
			t.Errorf("expected role %s echoed back, got %q", tt.role, res.Role)
		}
	}
}
