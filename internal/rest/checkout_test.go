package rest

import (
	"context"
	"courseHub/business/checkout"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/labstack/echo/v4"
)

type fakeCheckoutService struct {
	lastInput checkout.CheckoutInput
	intentErr error
	secret    string
}

func (f *fakeCheckoutService) Pay(ctx context.Context, input checkout.CheckoutInput) (checkout.CheckoutResult, error) {
	f.lastInput = input
	return checkout.CheckoutResult{
		PaymentHistoryID: 1,
		Enrollments:      make([]uint, len(input.CourseIDs)),
	}, nil
}

func (f *fakeCheckoutService) CreatePaymentIntent(ctx context.Context, price float64) (string, error) {
	if f.intentErr != nil {
		return "", f.intentErr
	}
	return f.secret, nil
}

func checkoutRequest(target, body string) (*httptest.ResponseRecorder, echo.Context) {
	e := echo.New()
	req := httptest.NewRequest(http.MethodPost, target, strings.NewReader(body))
	req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	rec := httptest.NewRecorder()
	return rec, e.NewContext(req, rec)
}

func TestPay_BindsAndForwardsInput(t *testing.T) {
	svc := &fakeCheckoutService{}
	handler := NewCheckoutHandler(svc)

	rec, c := checkoutRequest("/payment", `{
		"email": "student@example.com",
		"transactionId": "txn_9",
		"price": 39.98,
		"status": "succeeded",
		"courseIds": [4, 5],
		"cartIds": [11, 12]
	}`)

	if err := handler.Pay(c); err != nil {
		t.Fatalf("Pay returned error: %v", err)
	}

	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d (%s)", rec.Code, rec.Body.String())
	}

	if svc.lastInput.TransactionID != "txn_9" {
		t.Errorf("transaction id not forwarded: %q", svc.lastInput.TransactionID)
	}
	if len(svc.lastInput.CourseIDs) != 2 || len(svc.lastInput.CartIDs) != 2 {
		t.Errorf("ids not forwarded: %+v", svc.lastInput)
	}
}

func TestPay_RejectsEmptyCourseList(t *testing.T) {
	handler := NewCheckoutHandler(&fakeCheckoutService{})

	rec, c := checkoutRequest("/payment", `{
		"email": "student@example.com",
		"transactionId": "txn_10",
		"courseIds": []
	}`)

	if err := handler.Pay(c); err != nil {
		t.Fatalf("Pay returned error: %v", err)
	}

	if rec.Code != http.StatusBadRequest {
		t.Errorf("expected 400 for empty course list, got %d", rec.Code)
	}
}

func TestCreatePaymentIntent_ReturnsClientSecret(t *testing.T) {
	handler := NewCheckoutHandler(&fakeCheckoutService{secret: "pi_test_secret"})

	rec, c := checkoutRequest("/create-payment-intent", `{"price": 9.99}`)

	if err := handler.CreatePaymentIntent(c); err != nil {
		t.Fatalf("CreatePaymentIntent returned error: %v", err)
	}

	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", rec.Code)
	}

	var body map[string]interface{}
	if err := json.Unmarshal(rec.Body.Bytes(), &body); err != nil {
		t.Fatalf("invalid response body: %v", err)
	}
	if body["clientSecret"] != "pi_test_secret" {
		t.Errorf("expected client secret, got %v", body["clientSecret"])
	}
}

func TestCreatePaymentIntent_TinyAmountIsEmpty400(t *testing.T) {
	handler := NewCheckoutHandler(&fakeCheckoutService{intentErr: checkout.ErrAmountTooSmall})

	rec, c := checkoutRequest("/create-payment-intent", `{"price": 0.004}`)

	if err := handler.CreatePaymentIntent(c); err != nil {
		t.Fatalf("CreatePaymentIntent returned error: %v", err)
	}

	if rec.Code != http.StatusBadRequest {
		t.Errorf("expected 400, got %d", rec.Code)
	}
	if rec.Body.Len() != 0 {
		t.Errorf("expected empty body, got %q", rec.Body.String())
	}
}
