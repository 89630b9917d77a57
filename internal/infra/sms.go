package infra

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"time"
)

// SMSGateway sends a message body to a phone number. The concrete gateway
// is a plain JSON-over-HTTP provider configured by endpoint + api key.
type SMSGateway interface {
	Send(ctx context.Context, to, body string) error
}

type httpSMSGateway struct {
	endpoint   string
	apiKey     string
	senderID   string
	HTTPClient *http.Client
}

func NewHTTPSMSGateway(endpoint, apiKey, senderID string) SMSGateway {
	return &httpSMSGateway{
		endpoint: endpoint,
		apiKey:   apiKey,
		senderID: senderID,
		HTTPClient: &http.Client{
			Timeout: 10 * time.Second,
		},
	}
}

type smsPayload struct {
	To      string `json:"to"`
	Message string `json:"message"`
	Sender  string `json:"sender,omitempty"`
}

type smsResult struct {
	Success bool   `json:"success"`
	Message string `json:"message"`
}

func (g *httpSMSGateway) Send(ctx context.Context, to, body string) error {
	payload, err := json.Marshal(smsPayload{To: to, Message: body, Sender: g.senderID})
	if err != nil {
		return err
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, g.endpoint, bytes.NewReader(payload))
	if err != nil {
		return err
	}
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("apikey", g.apiKey)

	resp, err := g.HTTPClient.Do(req)
	if err != nil {
		return fmt.Errorf("sms gateway unreachable: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		raw, _ := io.ReadAll(io.LimitReader(resp.Body, 1024))
		return fmt.Errorf("sms gateway returned %d: %s", resp.StatusCode, string(raw))
	}

	var result smsResult
	if err := json.NewDecoder(resp.Body).Decode(&result); err != nil {
		// Some providers return an empty body on success.
		return nil
	}
	if !result.Success && result.Message != "" {
		return fmt.Errorf("sms gateway rejected message: %s", result.Message)
	}
	return nil
}
