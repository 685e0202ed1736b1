package services

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"time"
)

// PaystackService handles all Paystack API interactions. Amounts cross the
// wire in the minor currency unit (kobo).
type PaystackService interface {
	CreateSubaccount(ctx context.Context, req *CreateSubaccountRequest) (*SubaccountData, error)
	InitializeTransaction(ctx context.Context, email string, amountKobo int64, subaccountCode string) (*InitializeData, error)
	VerifyTransaction(ctx context.Context, reference string) (*VerifyData, error)
}

type paystackService struct {
	secretKey string
	baseURL   string
	http      *http.Client
}

type CreateSubaccountRequest struct {
	BusinessName     string  `json:"business_name"`
	BankCode         string  `json:"settlement_bank"`
	AccountNumber    string  `json:"account_number"`
	PercentageCharge float64 `json:"percentage_charge"`
}

type SubaccountData struct {
	SubaccountCode string `json:"subaccount_code"`
	BusinessName   string `json:"business_name"`
	AccountNumber  string `json:"account_number"`
}

type InitializeData struct {
	AuthorizationURL string `json:"authorization_url"`
	AccessCode       string `json:"access_code"`
	Reference        string `json:"reference"`
}

type VerifyData struct {
	Status    string  `json:"status"` // success, failed, abandoned
	Reference string  `json:"reference"`
	Amount    int64   `json:"amount"` // kobo
	Currency  string  `json:"currency"`
	PaidAt    *string `json:"paid_at"`
}

type paystackEnvelope struct {
	Status  bool            `json:"status"`
	Message string          `json:"message"`
	Data    json.RawMessage `json:"data"`
}

// NewPaystackService creates a new Paystack client. The timeout bounds every
// gateway call so a slow upstream can never stall a lifecycle handler.
func NewPaystackService(secretKey, baseURL string) PaystackService {
	return &paystackService{
		secretKey: secretKey,
		baseURL:   baseURL,
		http:      &http.Client{Timeout: 10 * time.Second},
	}
}

func (s *paystackService) CreateSubaccount(ctx context.Context, req *CreateSubaccountRequest) (*SubaccountData, error) {
	raw, err := s.makeRequest(ctx, http.MethodPost, "/subaccount", req)
	if err != nil {
		return nil, err
	}
	data := &SubaccountData{}
	if err := json.Unmarshal(raw, data); err != nil {
		return nil, fmt.Errorf("failed to parse subaccount response: %w", err)
	}
	return data, nil
}

func (s *paystackService) InitializeTransaction(ctx context.Context, email string, amountKobo int64, subaccountCode string) (*InitializeData, error) {
	body := map[string]interface{}{
		"email":  email,
		"amount": amountKobo,
	}
	if subaccountCode != "" {
		body["subaccount"] = subaccountCode
	}
	raw, err := s.makeRequest(ctx, http.MethodPost, "/transaction/initialize", body)
	if err != nil {
		return nil, err
	}
	data := &InitializeData{}
	if err := json.Unmarshal(raw, data); err != nil {
		return nil, fmt.Errorf("failed to parse initialize response: %w", err)
	}
	return data, nil
}

func (s *paystackService) VerifyTransaction(ctx context.Context, reference string) (*VerifyData, error) {
	raw, err := s.makeRequest(ctx, http.MethodGet, "/transaction/verify/"+reference, nil)
	if err != nil {
		return nil, err
	}
	data := &VerifyData{}
	if err := json.Unmarshal(raw, data); err != nil {
		return nil, fmt.Errorf("failed to parse verify response: %w", err)
	}
	return data, nil
}

func (s *paystackService) makeRequest(ctx context.Context, method, path string, body interface{}) (json.RawMessage, error) {
	var reader io.Reader
	if body != nil {
		bodyBytes, err := json.Marshal(body)
		if err != nil {
			return nil, err
		}
		reader = bytes.NewBuffer(bodyBytes)
	}

	req, err := http.NewRequestWithContext(ctx, method, s.baseURL+path, reader)
	if err != nil {
		return nil, err
	}
	req.Header.Set("Authorization", "Bearer "+s.secretKey)
	req.Header.Set("Content-Type", "application/json")

	resp, err := s.http.Do(req)
	if err != nil {
		return nil, err
	}
	defer resp.Body.Close()

	raw, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, err
	}

	var envelope paystackEnvelope
	if err := json.Unmarshal(raw, &envelope); err != nil {
		return nil, fmt.Errorf("unexpected gateway response (HTTP %d)", resp.StatusCode)
	}
	if !envelope.Status {
		return nil, fmt.Errorf("gateway error: %s", envelope.Message)
	}
	return envelope.Data, nil
}
