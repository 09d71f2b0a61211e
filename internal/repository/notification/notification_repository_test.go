package notification

import (
	"context"
	"encoding/base64"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
)

func testConfig(baseURL string) MailjetConfig {
	return MailjetConfig{
		MailjetBaseURL:           baseURL,
		MailjetBasicAuthUsername: "api-key",
		MailjetBasicAuthPassword: "api-secret",
		MailjetSenderEmail:       "noreply@coursehub.example",
		MailjetSenderName:        "CourseHub",
	}
}

func TestSendEmail(t *testing.T) {
	var gotAuth string
	var gotPayload payloadSendEmail

	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path != "/v3.1/send" {
			t.Errorf("unexpected path %q", r.URL.Path)
		}
		gotAuth = r.Header.Get("Authorization")

		if err := json.NewDecoder(r.Body).Decode(&gotPayload); err != nil {
			t.Fatalf("failed to decode payload: %v", err)
		}

		w.WriteHeader(http.StatusOK)
	}))
	defer server.Close()

	repo := NewMailjetRepository(testConfig(server.URL))

	err := repo.SendEmail(context.Background(), "Student", "student@example.com", "Payment Confirmation", "<p>Transaction ID: txn_1.</p>")
	if err != nil {
		t.Fatalf("SendEmail returned error: %v", err)
	}

	wantAuth := "Basic " + base64.StdEncoding.EncodeToString([]byte("api-key:api-secret"))
	if gotAuth != wantAuth {
		t.Errorf("expected auth header %q, got %q", wantAuth, gotAuth)
	}

	if len(gotPayload.Messages) != 1 {
		t.Fatalf("expected 1 message, got %d", len(gotPayload.Messages))
	}

	msg := gotPayload.Messages[0]
	if msg.From.Email != "noreply@coursehub.example" {
		t.Errorf("unexpected sender %q", msg.From.Email)
	}
	if len(msg.To) != 1 || msg.To[0].Email != "student@example.com" {
		t.Errorf("unexpected recipients %+v", msg.To)
	}
	if msg.Subject != "Payment Confirmation" {
		t.Errorf("unexpected subject %q", msg.Subject)
	}
	if !strings.Contains(msg.HTMLPart, "txn_1") {
		t.Errorf("body missing transaction id: %q", msg.HTMLPart)
	}
}

func TestSendEmail_MailerFailure(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusUnauthorized)
		w.Write([]byte(`{"ErrorMessage":"invalid key"}`))
	}))
	defer server.Close()

	repo := NewMailjetRepository(testConfig(server.URL))

	err := repo.SendEmail(context.Background(), "", "student@example.com", "subject", "body")
	if err == nil {
		t.Fatal("expected an error on a non-2xx mailer response")
	}
	if !strings.Contains(err.Error(), "401") {
		t.Errorf("expected status in error, got %v", err)
	}
}
