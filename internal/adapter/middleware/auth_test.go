package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/labstack/echo/v4"
)

func setupAuthEcho(adminPIN, operatorPIN string, extra ...echo.MiddlewareFunc) *echo.Echo {
	e := echo.New()
	e.HideBanner = true
	mw := append([]echo.MiddlewareFunc{PINAuth(adminPIN, operatorPIN)}, extra...)
	e.GET("/whoami", func(c echo.Context) error {
		return c.JSON(http.StatusOK, map[string]string{"role": string(RoleFrom(c))})
	}, mw...)
	return e
}

func doAuthReq(t *testing.T, e *echo.Echo, pin string) *httptest.ResponseRecorder {
	t.Helper()
	req := httptest.NewRequest(http.MethodGet, "/whoami", nil)
	if pin != "" {
		req.Header.Set(HeaderAccessPin, pin)
	}
	rec := httptest.NewRecorder()
	e.ServeHTTP(rec, req)
	return rec
}

func Test_PINAuth_MissingPIN(t *testing.T) {
	e := setupAuthEcho("666666", "9999")
	rec := doAuthReq(t, e, "")
	if rec.Code != http.StatusUnauthorized {
		t.Fatalf("missing PIN => want 401, got %d", rec.Code)
	}
}

func Test_PINAuth_UnknownPIN(t *testing.T) {
	e := setupAuthEcho("666666", "9999")
	rec := doAuthReq(t, e, "000000")
	if rec.Code != http.StatusUnauthorized {
		t.Fatalf("unknown PIN => want 401, got %d", rec.Code)
	}
}

func Test_PINAuth_ResolvesRoles(t *testing.T) {
	e := setupAuthEcho("666666", "9999")

	rec := doAuthReq(t, e, "666666")
	if rec.Code != http.StatusOK {
		t.Fatalf("admin PIN => want 200, got %d", rec.Code)
	}
	if got := rec.Body.String(); got != `{"role":"admin"}`+"\n" {
		t.Fatalf("admin body = %q", got)
	}

	rec = doAuthReq(t, e, "9999")
	if rec.Code != http.StatusOK {
		t.Fatalf("operator PIN => want 200, got %d", rec.Code)
	}
	if got := rec.Body.String(); got != `{"role":"operator"}`+"\n" {
		t.Fatalf("operator body = %q", got)
	}
}

func Test_PINAuth_TrimsWhitespace(t *testing.T) {
	e := setupAuthEcho("666666", "9999")
	rec := doAuthReq(t, e, " 666666 ")
	if rec.Code != http.StatusOK {
		t.Fatalf("padded PIN => want 200, got %d (body=%s)", rec.Code, rec.Body.String())
	}
}

func Test_RequireRole_AdminOnly(t *testing.T) {
	e := setupAuthEcho("666666", "9999", RequireRole(RoleAdmin))

	rec := doAuthReq(t, e, "9999")
	if rec.Code != http.StatusForbidden {
		t.Fatalf("operator on admin route => want 403, got %d", rec.Code)
	}

	rec = doAuthReq(t, e, "666666")
	if rec.Code != http.StatusOK {
		t.Fatalf("admin on admin route => want 200, got %d", rec.Code)
	}
}

func Test_RoleFrom_Unset(t *testing.T) {
	e := echo.New()
	req := httptest.NewRequest(http.MethodGet, "/", nil)
	c := e.NewContext(req, httptest.NewRecorder())
	if got := RoleFrom(c); got != "" {
		t.Fatalf("RoleFrom without auth = %q, want empty", got)
	}
}
