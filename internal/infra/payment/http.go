package payment

import (
	"bytes"
	"context"
	"encoding/json"
	"io"
	"net/http"
	"strings"

	"transit-booking/internal/pkg/config"
	"transit-booking/internal/pkg/errs"
	"transit-booking/internal/usecase/shared"
)

var (
	ErrGatewayUnavailable = errs.New("payment gateway unavailable")
	ErrGatewayResponse    = errs.New("unexpected payment gateway response")
)

const (
	chargeStatusSucceeded = "succeeded"
	maxErrorBodyBytes     = 4 << 10
)

type chargeRequest struct {
	Amount        int64  `json:"amount"`
	Currency      string `json:"currency"`
	Description   string `json:"description"`
	CustomerEmail string `json:"customer_email"`
}

type chargeResponse struct {
	ID            string `json:"id"`
	Status        string `json:"status"`
	DeclineReason string `json:"decline_reason,omitempty"`
}

// HTTPGateway talks to a card processor's JSON charge endpoint. The caller bounds each call with ctx.
type HTTPGateway struct {
	baseURL  string
	apiKey   string
	currency string
	client   *http.Client
}

func NewHTTPGateway(cfg config.PaymentConfig, client *http.Client) *HTTPGateway {
	if client == nil {
		client = &http.Client{}
	}
	return &HTTPGateway{
		baseURL:  strings.TrimRight(cfg.GatewayURL, "/"),
		apiKey:   cfg.APIKey,
		currency: cfg.Currency,
		client:   client,
	}
}

func (g *HTTPGateway) Charge(ctx context.Context, req shared.ChargeRequest) (shared.ChargeResult, error) {
	currency := req.Currency
	if currency == "" {
		currency = g.currency
	}

	body, err := json.Marshal(chargeRequest{
		Amount:        req.Amount,
		Currency:      currency,
		Description:   req.Description,
		CustomerEmail: req.CustomerEmail,
	})
	if err != nil {
		return shared.ChargeResult{}, errs.Wrap(err, "failed to encode charge request")
	}

	httpReq, err := http.NewRequestWithContext(ctx, http.MethodPost, g.baseURL+"/charges", bytes.NewReader(body))
	if err != nil {
		return shared.ChargeResult{}, errs.Wrap(err, "failed to build charge request")
	}
	httpReq.Header.Set("Content-Type", "application/json")
	httpReq.Header.Set("Authorization", "Bearer "+g.apiKey)
	// the hold id makes a retried charge for the same hold a no-op at the processor
	httpReq.Header.Set("Idempotency-Key", req.IdempotencyKey)

	resp, err := g.client.Do(httpReq)
	if err != nil {
		return shared.ChargeResult{}, errs.Mark(errs.Wrap(err, "charge request failed"), ErrGatewayUnavailable)
	}
	defer resp.Body.Close()

	switch {
	case resp.StatusCode == http.StatusPaymentRequired:
		var declined chargeResponse
		_ = json.NewDecoder(io.LimitReader(resp.Body, maxErrorBodyBytes)).Decode(&declined)
		reason := declined.DeclineReason
		if reason == "" {
			reason = "card declined"
		}
		return shared.ChargeResult{Approved: false, Reference: declined.ID, DeclineReason: reason}, nil
	case resp.StatusCode >= 500:
		return shared.ChargeResult{}, errs.Mark(
			errs.Newf("gateway returned %d", resp.StatusCode), ErrGatewayUnavailable)
	case resp.StatusCode < 200 || resp.StatusCode >= 300:
		return shared.ChargeResult{}, errs.Mark(
			errs.Newf("gateway returned %d", resp.StatusCode), ErrGatewayResponse)
	}

	var out chargeResponse
	if err := json.NewDecoder(resp.Body).Decode(&out); err != nil {
		return shared.ChargeResult{}, errs.Mark(errs.Wrap(err, "failed to decode charge response"), ErrGatewayResponse)
	}
	if out.Status != chargeStatusSucceeded {
		return shared.ChargeResult{Approved: false, Reference: out.ID, DeclineReason: out.DeclineReason}, nil
	}
	if out.ID == "" {
		return shared.ChargeResult{}, errs.Mark(errs.New("charge succeeded without an id"), ErrGatewayResponse)
	}
	return shared.ChargeResult{Approved: true, Reference: out.ID}, nil
}
