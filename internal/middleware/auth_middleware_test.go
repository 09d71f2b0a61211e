package middleware

import (
	"context"
	"courseHub/business/auth"
	"courseHub/domain"
	"courseHub/pkg/utils"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/labstack/echo/v4"
)

type fakeUserRepo struct {
	users map[string]domain.User
}

func (f *fakeUserRepo) FindByEmail(ctx context.Context, email string) (domain.User, error) {
	if user, ok := f.users[email]; ok {
		return user, nil
	}
	return domain.User{}, domain.ErrNotFound
}

func okHandler(c echo.Context) error {
	return c.JSON(http.StatusOK, map[string]interface{}{"email": c.Get(ContextKeyEmail)})
}

func requestWithCookie(token string) (*httptest.ResponseRecorder, echo.Context) {
	e := echo.New()
	req := httptest.NewRequest(http.MethodGet, "/", nil)
	if token != "" {
		req.AddCookie(&http.Cookie{Name: SessionCookieName, Value: token})
	}
	rec := httptest.NewRecorder()
	return rec, e.NewContext(req, rec)
}

func TestAuthMiddleware_MissingCookie(t *testing.T) {
	utils.InitJWT("test-secret")

	rec, c := requestWithCookie("")
	if err := AuthMiddleware()(okHandler)(c); err != nil {
		t.Fatalf("middleware returned error: %v", err)
	}

	if rec.Code != http.StatusUnauthorized {
		t.Errorf("expected 401 without a cookie, got %d", rec.Code)
	}
}

func TestAuthMiddleware_GarbageToken(t *testing.T) {
	utils.InitJWT("test-secret")

	rec, c := requestWithCookie("not-a-jwt")
	if err := AuthMiddleware()(okHandler)(c); err != nil {
		t.Fatalf("middleware returned error: %v", err)
	}

	if rec.Code != http.StatusUnauthorized {
		t.Errorf("expected 401 for a garbage token, got %d", rec.Code)
	}
}

func TestAuthMiddleware_ValidTokenSetsEmail(t *testing.T) {
	utils.InitJWT("test-secret")

	token, err := utils.GenerateJWT("student@example.com")
	if err != nil {
		t.Fatalf("GenerateJWT returned error: %v", err)
	}

	rec, c := requestWithCookie(token)
	if err := AuthMiddleware()(okHandler)(c); err != nil {
		t.Fatalf("middleware returned error: %v", err)
	}

	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", rec.Code)
	}
	if got, _ := c.Get(ContextKeyEmail).(string); got != "student@example.com" {
		t.Errorf("expected email in context, got %q", got)
	}
}

func TestAdminOnly_RejectsStudents(t *testing.T) {
	utils.InitJWT("test-secret")

	authorizer := auth.NewService(&fakeUserRepo{users: map[string]domain.User{
		"student@example.com": {ID: 1, Email: "student@example.com", Role: domain.RoleStudent},
	}})

	token, _ := utils.GenerateJWT("student@example.com")
	rec, c := requestWithCookie(token)

	handler := AuthMiddleware()(AdminOnly(authorizer)(okHandler))
	if err := handler(c); err != nil {
		t.Fatalf("middleware returned error: %v", err)
	}

	if rec.Code != http.StatusUnauthorized {
		t.Errorf("expected 401 for student on admin route, got %d", rec.Code)
	}
}

func TestAdminOnly_AdmitsAdmins(t *testing.T) {
	utils.InitJWT("test-secret")

	authorizer := auth.NewService(&fakeUserRepo{users: map[string]domain.User{
		"admin@example.com": {ID: 2, Email: "admin@example.com", Role: domain.RoleAdmin},
	}})

	token, _ := utils.GenerateJWT("admin@example.com")
	rec, c := requestWithCookie(token)

	handler := AuthMiddleware()(AdminOnly(authorizer)(okHandler))
	if err := handler(c); err != nil {
		t.Fatalf("middleware returned error: %v", err)
	}

	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200 for admin, got %d", rec.Code)
	}

	identity, ok := c.Get(ContextKeyIdentity).(auth.Identity)
	if !ok {
		t.Fatal("expected identity in context after role gate")
	}
	if identity.Role != domain.RoleAdmin {
		t.Errorf("expected admin identity, got %q", identity.Role)
	}
}

func TestStudentOnly_UnknownUser(t *testing.T) {
	utils.InitJWT("test-secret")

	authorizer := auth.NewService(&fakeUserRepo{users: map[string]domain.User{}})

	token, _ := utils.GenerateJWT("ghost@example.com")
	rec, c := requestWithCookie(token)

	handler := AuthMiddleware()(StudentOnly(authorizer)(okHandler))
	if err := handler(c); err != nil {
		t.Fatalf("middleware returned error: %v", err)
	}

	// A valid token for a user the store has never seen is still a 401.
	if rec.Code != http.StatusUnauthorized {
		t.Errorf("expected 401 for unknown user, got %d", rec.Code)
	}
}
