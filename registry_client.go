package main

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"time"

	"cropcycle/models"

	"go.uber.org/zap"
)

// RegistrationError is a failed registration-complete call. Message is
// taken from the upstream JSON error body when present.
type RegistrationError struct {
	Message string
	Status  int
}

func (e *RegistrationError) Error() string {
	if e.Message == "" {
		return "registration failed"
	}
	return e.Message
}

// RegistryClient calls the marketplace backend's registration endpoint.
type RegistryClient struct {
	base string
	hc   *http.Client
	log  *zap.Logger
}

func NewRegistryClient(base string, log *zap.Logger) *RegistryClient {
	return &RegistryClient{
		base: base,
		hc:   &http.Client{Timeout: 15 * time.Second},
		log:  log,
	}
}

type registryEnvelope struct {
	Data struct {
		User models.RegistrationRecord `json:"user"`
	} `json:"data"`
}

type registryErrorBody struct {
	Message string `json:"message"`
}

// CompleteRegistration posts the record to
// POST {base}/users/register/complete with the caller's bearer token and
// returns the persisted user record. Non-2xx responses become a
// RegistrationError with the upstream message.
func (c *RegistryClient) CompleteRegistration(ctx context.Context, token string, rec models.RegistrationRecord) (*models.RegistrationRecord, error) {
	body, err := json.Marshal(rec)
	if err != nil {
		return nil, fmt.Errorf("marshal registration: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.base+"/users/register/complete", bytes.NewReader(body))
	if err != nil {
		return nil, fmt.Errorf("build request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Accept", "application/json")
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}

	resp, err := c.hc.Do(req)
	if err != nil {
		c.log.Warn("registration call failed", zap.Error(err))
		return nil, fmt.Errorf("registration call failed: %w", err)
	}
	defer resp.Body.Close()

	data, _ := io.ReadAll(resp.Body)
	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		var eb registryErrorBody
		_ = json.Unmarshal(data, &eb)
		c.log.Warn("registration rejected",
			zap.Int("status", resp.StatusCode),
			zap.String("message", eb.Message),
		)
		return nil, &RegistrationError{Message: eb.Message, Status: resp.StatusCode}
	}

	var env registryEnvelope
	if err := json.Unmarshal(data, &env); err != nil {
		return nil, fmt.Errorf("decode registration resp: %w", err)
	}
	return &env.Data.User, nil
}
