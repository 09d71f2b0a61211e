package rest

import (
	"context"
	"courseHub/domain"
	"courseHub/internal/middleware"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/labstack/echo/v4"
)

type fakeCartService struct {
	items      []domain.CartItem
	insertedID *uint
}

func (f *fakeCartService) Add(ctx context.Context, item *domain.CartItem) (*uint, error) {
	return f.insertedID, nil
}

func (f *fakeCartService) List(ctx context.Context, email string) ([]domain.CartItem, error) {
	return f.items, nil
}

func (f *fakeCartService) Count(ctx context.Context, email string) (int64, error) {
	return int64(len(f.items)), nil
}

func (f *fakeCartService) Remove(ctx context.Context, id uint) error {
	return nil
}

func cartContext(method, target, sessionEmail string, body string) (*httptest.ResponseRecorder, echo.Context) {
	e := echo.New()
	var req *http.Request
	if body != "" {
		req = httptest.NewRequest(method, target, strings.NewReader(body))
		req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	} else {
		req = httptest.NewRequest(method, target, nil)
	}
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)
	if sessionEmail != "" {
		c.Set(middleware.ContextKeyEmail, sessionEmail)
	}
	return rec, c
}

func TestListOwned_ForbidsOtherUsersCart(t *testing.T) {
	handler := NewCartHandler(&fakeCartService{})

	rec, c := cartContext(http.MethodGet, "/carts/victim@example.com", "attacker@example.com", "")
	c.SetParamNames("email")
	c.SetParamValues("victim@example.com")

	if err := handler.ListOwned(c); err != nil {
		t.Fatalf("ListOwned returned error: %v", err)
	}

	if rec.Code != http.StatusForbidden {
		t.Fatalf("expected 403 for another user's cart, got %d", rec.Code)
	}

	var body ResponseError
	if err := json.Unmarshal(rec.Body.Bytes(), &body); err != nil {
		t.Fatalf("invalid response body: %v", err)
	}
	if body.Message != "Forbidden Access" {
		t.Errorf("expected forbidden message, got %q", body.Message)
	}
}

func TestListOwned_OwnerSeesItems(t *testing.T) {
	handler := NewCartHandler(&fakeCartService{items: []domain.CartItem{
		{ID: 1, ItemID: 10, Email: "owner@example.com"},
	}})

	rec, c := cartContext(http.MethodGet, "/carts/owner@example.com", "owner@example.com", "")
	c.SetParamNames("email")
	c.SetParamValues("owner@example.com")

	if err := handler.ListOwned(c); err != nil {
		t.Fatalf("ListOwned returned error: %v", err)
	}

	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200 for owner, got %d", rec.Code)
	}

	var items []domain.CartItem
	if err := json.Unmarshal(rec.Body.Bytes(), &items); err != nil {
		t.Fatalf("invalid response body: %v", err)
	}
	if len(items) != 1 {
		t.Errorf("expected 1 item, got %d", len(items))
	}
}

func TestAddCart_DuplicateResponseShape(t *testing.T) {
	handler := NewCartHandler(&fakeCartService{insertedID: nil})

	rec, c := cartContext(http.MethodPost, "/cart", "",
		`{"itemId":42,"email":"student@example.com","title":"Go","price":19.99}`)

	if err := handler.Add(c); err != nil {
		t.Fatalf("Add returned error: %v", err)
	}

	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", rec.Code)
	}

	var body map[string]interface{}
	if err := json.Unmarshal(rec.Body.Bytes(), &body); err != nil {
		t.Fatalf("invalid response body: %v", err)
	}
	if body["message"] != "Item already exists" {
		t.Errorf("expected duplicate message, got %v", body["message"])
	}
	if body["insertedId"] != nil {
		t.Errorf("expected null insertedId, got %v", body["insertedId"])
	}
}

func TestRemoveCart_ReportsDeletedCount(t *testing.T) {
	handler := NewCartHandler(&fakeCartService{})

	rec, c := cartContext(http.MethodDelete, "/cart/7", "student@example.com", "")
	c.SetParamNames("id")
	c.SetParamValues("7")

	if err := handler.Remove(c); err != nil {
		t.Fatalf("Remove returned error: %v", err)
	}

	var body map[string]interface{}
	if err := json.Unmarshal(rec.Body.Bytes(), &body); err != nil {
		t.Fatalf("invalid response body: %v", err)
	}
	if body["deletedCount"] != float64(1) {
		t.Errorf("expected deletedCount 1, got %v", body["deletedCount"])
	}
}
