package utils

import (
	"encoding/json"
	"fmt"
	"log"
	"strconv"

	"github.com/aka-azad/skill-space-server/config"

	"github.com/go-resty/resty/v2"
	"github.com/google/uuid"
)

// StripePaymentIntent is the subset of the gateway response we care about
type StripePaymentIntent struct {
	ID           string `json:"id"`
	ClientSecret string `json:"client_secret"`
	Status       string `json:"status"`
}

// CreatePaymentIntent creates a PaymentIntent at the gateway and returns
// its client secret. Amount is in minor units (cents).
func CreatePaymentIntent(amount int64, currency string) (string, error) {
	if config.AppConfig.StripeSecretKey == "" {
		return "", fmt.Errorf("stripe secret key is not configured")
	}
	if amount <= 0 {
		return "", fmt.Errorf("amount must be greater than 0")
	}

	client := resty.New()
	resp, err := client.R().
		SetBasicAuth(config.AppConfig.StripeSecretKey, "").
		SetHeader("Idempotency-Key", uuid.NewString()).
		SetFormData(map[string]string{
			"amount":   strconv.FormatInt(amount, 10),
			"currency": currency,
			"automatic_payment_methods[enabled]": "true",
		}).
		Post(config.AppConfig.StripeApiURL + "payment_intents")
	if err != nil {
		log.Printf("Failed to reach payment gateway: %v", err)
		return "", err
	}
	if resp.StatusCode() != 200 {
		log.Printf("Payment gateway error: %s", resp.String())
		return "", fmt.Errorf("payment gateway returned status %d", resp.StatusCode())
	}

	var intent StripePaymentIntent
	if err := json.Unmarshal(resp.Body(), &intent); err != nil {
		log.Printf("Failed to parse payment gateway response: %v", err)
		return "", err
	}
	if intent.ClientSecret == "" {
		return "", fmt.Errorf("payment gateway returned no client secret")
	}

	return intent.ClientSecret, nil
}
