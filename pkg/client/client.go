// Package client wraps the Good Stuff HTTP API: one method per backend
// operation, JSON in and out except the multipart menu upload. The backend
// owns all business logic; this layer only serializes, dispatches, and
// classifies failures so screens can degrade to neutral states.
package client

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"mime/multipart"
	"net/http"
	"strconv"
	"strings"

	"github.com/goodstuffhq/goodstuff/pkg/menu"
)

// Failure taxonomy. Call sites match with errors.Is and fall back to an
// empty/neutral state rather than surfacing the raw error.
var (
	// ErrUnreachable means the request never completed (transport level).
	ErrUnreachable = errors.New("server unreachable")
	// ErrServer means the server answered outside 2xx or with an error payload.
	ErrServer = errors.New("server error")
	// ErrMalformed means the response body did not match the expected shape.
	ErrMalformed = errors.New("malformed response")
	// ErrNotPDF means the menu file failed the pre-send PDF check.
	ErrNotPDF = errors.New("menu file is not a PDF")
)

// Client talks to one Good Stuff server. Requests carry only the caller's
// context: no retries, no client-side timeout, no auth.
type Client struct {
	base string
	http *http.Client
}

// New builds a client for the configured server.
func New(cfg Config) *Client {
	base := "http://127.0.0.1:8000"
	if cfg != nil && cfg.ServerURL() != "" {
		base = cfg.ServerURL()
	}
	return &Client{
		base: strings.TrimRight(base, "/"),
		http: http.DefaultClient,
	}
}

// Search runs the free-text allergy/ingredient query. An empty query is
// dispatched as-is; the server decides what that means. A missing or
// non-array results field resolves to an empty set, never an error.
func (c *Client) Search(ctx context.Context, query string) ([]menu.SearchResult, error) {
	var envelope struct {
		Results json.RawMessage `json:"results"`
	}
	if err := c.postJSON(ctx, "/api/q/", map[string]string{"query": query}, &envelope); err != nil {
		return nil, err
	}
	if len(envelope.Results) == 0 {
		return []menu.SearchResult{}, nil
	}
	var results []menu.SearchResult
	if err := json.Unmarshal(envelope.Results, &results); err != nil {
		// Non-array results coerce to empty rather than failing the screen.
		return []menu.SearchResult{}, nil
	}
	if results == nil {
		// A JSON null decodes cleanly into a nil slice.
		return []menu.SearchResult{}, nil
	}
	return results, nil
}

// ListRestaurants fetches every known restaurant.
func (c *Client) ListRestaurants(ctx context.Context) ([]menu.Restaurant, error) {
	var envelope struct {
		Restaurants []menu.Restaurant `json:"restaurants"`
	}
	if err := c.getJSON(ctx, "/api/get-all-restaurants/", &envelope); err != nil {
		return nil, err
	}
	return envelope.Restaurants, nil
}

// CreateRestaurant registers a new restaurant and returns its id. All fields
// are required; the server performs the real validation.
func (c *Client) CreateRestaurant(ctx context.Context, r menu.NewRestaurant) (int, error) {
	if missing := r.Validate(); missing != "" {
		return 0, fmt.Errorf("create restaurant: missing required field %q", missing)
	}
	var envelope struct {
		Restaurant struct {
			ID int `json:"id"`
		} `json:"restaurant"`
	}
	if err := c.postJSON(ctx, "/api/create-restaurant/", r, &envelope); err != nil {
		return 0, err
	}
	if envelope.Restaurant.ID == 0 {
		return 0, fmt.Errorf("%w: create restaurant returned no id", ErrMalformed)
	}
	return envelope.Restaurant.ID, nil
}

// AvgPrices fetches the price summary for one restaurant. A response with an
// error payload resolves to (nil, nil): the restaurant simply has no price
// data and callers drop it from aggregate listings.
func (c *Client) AvgPrices(ctx context.Context, restaurantID int) (*menu.AvgPriceSummary, error) {
	body := map[string]int{"restaurant_id": restaurantID}
	raw, err := c.post(ctx, "/api/get-summarized-avg-prices/", body)
	if err != nil {
		return nil, err
	}
	var probe struct {
		Error string `json:"error"`
	}
	if err := json.Unmarshal(raw, &probe); err == nil && probe.Error != "" {
		return nil, nil
	}
	var summary menu.AvgPriceSummary
	if err := json.Unmarshal(raw, &summary); err != nil {
		return nil, fmt.Errorf("%w: avg prices: %v", ErrMalformed, err)
	}
	return &summary, nil
}

// MenuVersion fetches one dated menu snapshot with its food items.
func (c *Client) MenuVersion(ctx context.Context, menuVersionID int) (*menu.MenuVersionDetail, error) {
	var detail menu.MenuVersionDetail
	body := map[string]int{"menu_version_id": menuVersionID}
	if err := c.postJSON(ctx, "/api/get-menu-version/", body, &detail); err != nil {
		return nil, err
	}
	return &detail, nil
}

// RestaurantMenus fetches a restaurant's fields plus its menu versions,
// newest first.
func (c *Client) RestaurantMenus(ctx context.Context, restaurantID int) (*menu.RestaurantDetail, error) {
	var detail menu.RestaurantDetail
	body := map[string]int{"restaurant_id": restaurantID}
	if err := c.postJSON(ctx, "/api/get-menus-restaurant/", body, &detail); err != nil {
		return nil, err
	}
	return &detail, nil
}

// UploadMenu sends a PDF menu for the given restaurant as multipart form
// data. The file is sniffed before any network I/O; non-PDF input returns
// ErrNotPDF without touching the server.
func (c *Client) UploadMenu(ctx context.Context, restaurantID int, filename string, file io.Reader) error {
	data, err := io.ReadAll(file)
	if err != nil {
		return fmt.Errorf("read menu file: %w", err)
	}
	if !IsPDF(data) {
		return fmt.Errorf("%w: %s", ErrNotPDF, filename)
	}

	var buf bytes.Buffer
	form := multipart.NewWriter(&buf)
	part, err := form.CreateFormFile("file", filename)
	if err != nil {
		return fmt.Errorf("build multipart body: %w", err)
	}
	if _, err := part.Write(data); err != nil {
		return fmt.Errorf("build multipart body: %w", err)
	}
	if err := form.WriteField("restaurant_id", strconv.Itoa(restaurantID)); err != nil {
		return fmt.Errorf("build multipart body: %w", err)
	}
	if err := form.Close(); err != nil {
		return fmt.Errorf("build multipart body: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.base+"/api/upload-menu/", &buf)
	if err != nil {
		return err
	}
	req.Header.Set("Content-Type", form.FormDataContentType())

	resp, err := c.http.Do(req)
	if err != nil {
		return fmt.Errorf("%w: %v", ErrUnreachable, err)
	}
	defer resp.Body.Close()
	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		msg, _ := io.ReadAll(io.LimitReader(resp.Body, 1024))
		return fmt.Errorf("%w: upload-menu: status %d: %s", ErrServer, resp.StatusCode, strings.TrimSpace(string(msg)))
	}
	return nil
}

// IsPDF sniffs the PDF magic header.
func IsPDF(data []byte) bool {
	return bytes.HasPrefix(data, []byte("%PDF-"))
}

func (c *Client) getJSON(ctx context.Context, path string, out any) error {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.base+path, nil)
	if err != nil {
		return err
	}
	return c.do(req, out)
}

func (c *Client) postJSON(ctx context.Context, path string, body, out any) error {
	raw, err := c.post(ctx, path, body)
	if err != nil {
		return err
	}
	if err := json.Unmarshal(raw, out); err != nil {
		return fmt.Errorf("%w: %s: %v", ErrMalformed, path, err)
	}
	return nil
}

func (c *Client) post(ctx context.Context, path string, body any) ([]byte, error) {
	payload, err := json.Marshal(body)
	if err != nil {
		return nil, err
	}
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.base+path, bytes.NewReader(payload))
	if err != nil {
		return nil, err
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := c.http.Do(req)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrUnreachable, err)
	}
	defer resp.Body.Close()
	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return nil, fmt.Errorf("%w: %s: status %d", ErrServer, path, resp.StatusCode)
	}
	raw, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("%w: %s: %v", ErrMalformed, path, err)
	}
	return raw, nil
}

func (c *Client) do(req *http.Request, out any) error {
	resp, err := c.http.Do(req)
	if err != nil {
		return fmt.Errorf("%w: %v", ErrUnreachable, err)
	}
	defer resp.Body.Close()
	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return fmt.Errorf("%w: %s: status %d", ErrServer, req.URL.Path, resp.StatusCode)
	}
	if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
		return fmt.Errorf("%w: %s: %v", ErrMalformed, req.URL.Path, err)
	}
	return nil
}
