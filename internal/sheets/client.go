// Package sheets talks to the external spreadsheet provider that
// provisions one exported spreadsheet per user.
package sheets

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"
)

// Spreadsheet is a provisioned external resource.
type Spreadsheet struct {
	ID  string `json:"spreadsheet_id"`
	URL string `json:"spreadsheet_url"`
}

// ProviderError carries the provider's own failure message.
type ProviderError struct {
	Status  int
	Message string
}

func (e *ProviderError) Error() string {
	return fmt.Sprintf("sheets provider: status %d: %s", e.Status, e.Message)
}

type Client struct {
	BaseURL    string
	Token      string
	HTTPClient *http.Client
}

func NewClient(baseURL, token string) *Client {
	return &Client{BaseURL: baseURL, Token: token}
}

func (c *Client) httpClient() *http.Client {
	if c.HTTPClient != nil {
		return c.HTTPClient
	}
	return &http.Client{Timeout: 15 * time.Second}
}

// Create provisions a new spreadsheet with the given name.
func (c *Client) Create(ctx context.Context, name string) (*Spreadsheet, error) {
	body, _ := json.Marshal(map[string]string{"name": name})
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.url("/spreadsheets"), bytes.NewReader(body))
	if err != nil {
		return nil, fmt.Errorf("create sheets request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Authorization", "Bearer "+c.Token)

	resp, err := c.httpClient().Do(req)
	if err != nil {
		return nil, fmt.Errorf("execute sheets request: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		return nil, providerError(resp)
	}
	var sheet Spreadsheet
	if err := json.NewDecoder(resp.Body).Decode(&sheet); err != nil {
		return nil, fmt.Errorf("decode sheets response: %w", err)
	}
	if sheet.ID == "" {
		return nil, &ProviderError{Status: resp.StatusCode, Message: "response missing spreadsheet_id"}
	}
	return &sheet, nil
}

// Delete removes the external spreadsheet. A resource that is already
// gone counts as success; any other failure is reported so the caller
// keeps its local mapping row.
func (c *Client) Delete(ctx context.Context, sheetID string) error {
	req, err := http.NewRequestWithContext(ctx, http.MethodDelete, c.url("/spreadsheets/"+sheetID), nil)
	if err != nil {
		return fmt.Errorf("create sheets request: %w", err)
	}
	req.Header.Set("Authorization", "Bearer "+c.Token)

	resp, err := c.httpClient().Do(req)
	if err != nil {
		return fmt.Errorf("execute sheets request: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode == http.StatusNotFound {
		return nil
	}
	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		return providerError(resp)
	}
	return nil
}

func (c *Client) url(path string) string {
	return strings.TrimRight(strings.TrimSpace(c.BaseURL), "/") + path
}

func providerError(resp *http.Response) error {
	body, _ := io.ReadAll(io.LimitReader(resp.Body, 4096))
	var payload struct {
		Error string `json:"error"`
	}
	msg := strings.TrimSpace(string(body))
	if err := json.Unmarshal(body, &payload); err == nil && payload.Error != "" {
		msg = payload.Error
	}
	if msg == "" {
		msg = http.StatusText(resp.StatusCode)
	}
	return &ProviderError{Status: resp.StatusCode, Message: msg}
}
