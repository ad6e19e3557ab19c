package handlers

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
)

func TestLogoutCookieCarriesConfiguredDomain(t *testing.T) {
	gin.SetMode(gin.TestMode)

	SetCookieDomain("hackxperience.dev")
	defer SetCookieDomain("")

	rec := httptest.NewRecorder()
	ctx, _ := gin.CreateTestContext(rec)
	ctx.Request = httptest.NewRequest(http.MethodPost, "/api/auth/logout", nil)

	LogoutAdmin(ctx)

	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", rec.Code)
	}

	cookies := rec.Result().Cookies()
	var token *http.Cookie
	for _, c := range cookies {
		if c.Name == "token" {
			token = c
		}
	}
	if token == nil {
		t.Fatal("expected a token cookie to be cleared")
	}
	if token.Domain != "hackxperience.dev" {
		t.Errorf("expected cookie domain hackxperience.dev, got %q", token.Domain)
	}
	if token.MaxAge >= 0 {
		t.Errorf("expected an expiring cookie, got MaxAge %d", token.MaxAge)
	}
}

func TestLogoutCookieOmitsDomainWhenUnset(t *testing.T) {
	gin.SetMode(gin.TestMode)

	SetCookieDomain("")

	rec := httptest.NewRecorder()
	ctx, _ := gin.CreateTestContext(rec)
	ctx.Request = httptest.NewRequest(http.MethodPost, "/api/auth/logout", nil)

	LogoutAdmin(ctx)

	cookies := rec.Result().Cookies()
	for _, c := range cookies {
		if c.Name == "token" && c.Domain != "" {
			t.Errorf("expected host-only cookie, got domain %q", c.Domain)
		}
	}
}
