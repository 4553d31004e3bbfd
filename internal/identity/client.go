package identity

import (
	"context"
	"encoding/json"
	"fmt"
	"log"
	"net/http"
	"net/url"
	"time"

	"github.com/rupal-draft/Tripezzy-Backend-sub000/pkg/models"
)

// requestTimeout bounds every directory call. The upstream contract does not
// specify one; 5s keeps a stalled directory from starving channel workers
// indefinitely.
const requestTimeout = 5 * time.Second

// Client resolves users against the remote identity directory. It is safe
// for concurrent use by all channel workers.
type Client struct {
	httpClient *http.Client
	baseURL    string
}

type healthResponse struct {
	Status string `json:"status"`
}

// New builds a directory client and probes the service's health endpoint.
// If the probe fails or reports a non-serving status, New returns an error
// and nothing depending on the directory should start.
func New(baseURL string) (*Client, error) {
	c := &Client{
		httpClient: &http.Client{Timeout: requestTimeout},
		baseURL:    baseURL,
	}

	ctx, cancel := context.WithTimeout(context.Background(), requestTimeout)
	defer cancel()

	var health healthResponse
	if err := c.getJSON(ctx, "/healthz", &health); err != nil {
		return nil, fmt.Errorf("identity health probe failed: %w", err)
	}
	if health.Status != "SERVING" {
		return nil, fmt.Errorf("identity service not serving: status=%q", health.Status)
	}

	log.Printf("[Identity] Connected to directory at %s", baseURL)
	return c, nil
}

// GetAllUsers returns every user in the directory. An empty directory yields
// an empty slice, not an error.
func (c *Client) GetAllUsers(ctx context.Context) ([]models.User, error) {
	return c.listUsers(ctx, "")
}

// GetAllAdminUsers returns all users with the ADMIN role.
func (c *Client) GetAllAdminUsers(ctx context.Context) ([]models.User, error) {
	return c.listUsers(ctx, models.RoleAdmin)
}

// GetAllSellerUsers returns all users with the SELLER role.
func (c *Client) GetAllSellerUsers(ctx context.Context) ([]models.User, error) {
	return c.listUsers(ctx, models.RoleSeller)
}

// GetAllGuideUsers returns all users with the GUIDE role.
func (c *Client) GetAllGuideUsers(ctx context.Context) ([]models.User, error) {
	return c.listUsers(ctx, models.RoleGuide)
}

// GetUserByID returns the user with the given id, or ErrNotFound.
func (c *Client) GetUserByID(ctx context.Context, id int64) (models.User, error) {
	var user models.User
	if err := c.getJSON(ctx, fmt.Sprintf("/users/%d", id), &user); err != nil {
		return models.User{}, fmt.Errorf("get user %d: %w", id, err)
	}
	return user, nil
}

func (c *Client) listUsers(ctx context.Context, role models.Role) ([]models.User, error) {
	path := "/users"
	if role != "" {
		path += "?role=" + url.QueryEscape(string(role))
	}

	var users []models.User
	if err := c.getJSON(ctx, path, &users); err != nil {
		return nil, fmt.Errorf("list users role=%q: %w", role, err)
	}
	if users == nil {
		users = []models.User{}
	}
	return users, nil
}

func (c *Client) getJSON(ctx context.Context, path string, result any) error {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.baseURL+path, nil)
	if err != nil {
		return err
	}
	req.Header.Set("Accept", "application/json")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		// Transport-level failures (refused, timed out, DNS) are transient
		// from the caller's point of view.
		return fmt.Errorf("%w: %v", ErrUnavailable, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return mapStatus(resp.StatusCode)
	}

	if err := json.NewDecoder(resp.Body).Decode(result); err != nil {
		return fmt.Errorf("decoding directory response: %w", err)
	}
	return nil
}

// Close tears down idle connections to the directory. It is bounded (idle
// teardown does not wait on in-flight calls) and never brings the process
// down; an interrupted shutdown is only logged by the caller.
func (c *Client) Close() {
	c.httpClient.CloseIdleConnections()
	log.Println("[Identity] Directory client closed")
}
