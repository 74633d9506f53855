package planner

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"strings"
	"time"

	"agribot/entities"
)

// Backend is the persistence collaborator behind a planner session. The
// session never mutates records locally without the backend confirming first.
type Backend interface {
	FetchMonth(ctx context.Context, year int, month time.Month) ([]entities.IrrigationRecord, error)
	FetchAll(ctx context.Context) ([]entities.IrrigationRecord, error)
	Create(ctx context.Context, rec entities.IrrigationRecord) (entities.IrrigationRecord, error)
}

// HTTPBackend talks to the irrigation API over plain HTTP.
type HTTPBackend struct {
	base  string
	token string
	httpc *http.Client
}

func NewHTTPBackend(base, token string) *HTTPBackend {
	return &HTTPBackend{
		base:  strings.TrimRight(base, "/"),
		token: token,
		httpc: &http.Client{Timeout: 10 * time.Second},
	}
}

func (b *HTTPBackend) get(ctx context.Context, path string, out any) error {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, b.base+path, nil)
	if err != nil {
		return err
	}
	if b.token != "" {
		req.Header.Set("Authorization", "Bearer "+b.token)
	}
	resp, err := b.httpc.Do(req)
	if err != nil {
		return err
	}
	defer resp.Body.Close()
	if resp.StatusCode != http.StatusOK {
		return fmt.Errorf("GET %s: unexpected status %d", path, resp.StatusCode)
	}
	return json.NewDecoder(resp.Body).Decode(out)
}

func (b *HTTPBackend) FetchMonth(ctx context.Context, year int, month time.Month) ([]entities.IrrigationRecord, error) {
	var out []entities.IrrigationRecord
	path := fmt.Sprintf("/api/irrigation?month=%d&year=%d", int(month), year)
	if err := b.get(ctx, path, &out); err != nil {
		return nil, err
	}
	return out, nil
}

func (b *HTTPBackend) FetchAll(ctx context.Context) ([]entities.IrrigationRecord, error) {
	var out []entities.IrrigationRecord
	if err := b.get(ctx, "/api/irrigation/list", &out); err != nil {
		return nil, err
	}
	return out, nil
}

func (b *HTTPBackend) Create(ctx context.Context, rec entities.IrrigationRecord) (entities.IrrigationRecord, error) {
	body, _ := json.Marshal(rec)
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, b.base+"/api/irrigation/", bytes.NewReader(body))
	if err != nil {
		return entities.IrrigationRecord{}, err
	}
	req.Header.Set("Content-Type", "application/json")
	if b.token != "" {
		req.Header.Set("Authorization", "Bearer "+b.token)
	}
	resp, err := b.httpc.Do(req)
	if err != nil {
		return entities.IrrigationRecord{}, err
	}
	defer resp.Body.Close()
	if resp.StatusCode != http.StatusCreated && resp.StatusCode != http.StatusOK {
		return entities.IrrigationRecord{}, fmt.Errorf("POST /api/irrigation/: unexpected status %d", resp.StatusCode)
	}
	var created entities.IrrigationRecord
	if err := json.NewDecoder(resp.Body).Decode(&created); err != nil {
		return entities.IrrigationRecord{}, err
	}
	return created, nil
}
