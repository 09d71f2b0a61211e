package stripe

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strconv"
	"strings"
	"time"
)

type StripeConfig struct {
	StripeApi string
	StripeUrl string
	Currency  string
}

type StripeRepository struct {
	stripeConfig StripeConfig
	client       *http.Client
}

func NewStripeRepository(cfg StripeConfig) *StripeRepository {
	return &StripeRepository{
		stripeConfig: cfg,
		client:       &http.Client{Timeout: 10 * time.Second},
	}
}

type paymentIntentResponse struct {
	ID           string `json:"id"`
	ClientSecret string `json:"client_secret"`
	Error        *struct {
		Message string `json:"message"`
	} `json:"error"`
}

// CreatePaymentIntent asks Stripe for a card payment intent of the given
// minor-unit amount and returns the client secret the frontend confirms with.
// No idempotency key is attached; a retried call creates a fresh intent.
func (r *StripeRepository) CreatePaymentIntent(ctx context.Context, amount int64) (string, error) {
	endpoint := r.stripeConfig.StripeUrl + "/v1/payment_intents"

	form := url.Values{}
	form.Set("amount", strconv.FormatInt(amount, 10))
	form.Set("currency", r.stripeConfig.Currency)
	form.Set("payment_method_types[]", "card")

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, endpoint, strings.NewReader(form.Encode()))
	if err != nil {
		return "", err
	}

	req.Header.Add("Content-Type", "application/x-www-form-urlencoded")
	req.SetBasicAuth(r.stripeConfig.StripeApi, "")

	res, err := r.client.Do(req)
	if err != nil {
		return "", err
	}
	defer res.Body.Close()

	body, err := io.ReadAll(res.Body)
	if err != nil {
		return "", err
	}

	var intent paymentIntentResponse
	if err := json.Unmarshal(body, &intent); err != nil {
		return "", fmt.Errorf("failed to decode stripe response: %w", err)
	}

	if intent.Error != nil {
		return "", fmt.Errorf("stripe returned an error: %s", intent.Error.Message)
	}

	if intent.ClientSecret == "" {
		return "", fmt.Errorf("stripe response missing client secret (status %v)", res.StatusCode)
	}

	return intent.ClientSecret, nil
}
