// Package remote implements the todo.DataSource collaborator against a
// remote todo HTTP API.
package remote

import (
	"context"
	"fmt"

	"github.com/go-resty/resty/v2"
	"github.com/tidwall/gjson"
)

// Client talks to a remote todo API over HTTP with optional basic auth.
// The API is expected to expose /todos with a JSON retrieval body of the
// form {"todos": ["...", ...]}.
type Client struct {
	client *resty.Client
}

// NewClient creates a Client for the API at baseURL. Credentials are
// attached as basic auth when username is non-empty.
func NewClient(baseURL, username, password string) *Client {
	client := resty.New().SetBaseURL(baseURL)
	if username != "" {
		client.SetBasicAuth(username, password)
	}
	return &Client{client: client}
}

// RetrieveTodos fetches all of user's items from the remote API.
func (c *Client) RetrieveTodos(ctx context.Context, user string) ([]string, error) {
	resp, err := c.client.R().
		SetContext(ctx).
		SetQueryParam("user", user).
		Get("/todos")
	if err != nil {
		return nil, fmt.Errorf("error fetching todos for %s: %w", user, err)
	}
	if resp.IsError() {
		return nil, fmt.Errorf("received non-2xx response status %d: %s", resp.StatusCode(), resp.String())
	}

	var items []string
	for _, result := range gjson.GetBytes(resp.Body(), "todos").Array() {
		items = append(items, result.String())
	}
	return items, nil
}

// DeleteTodo asks the remote API to remove one item by exact text. Which
// occurrence goes when texts are duplicated is the remote API's decision.
func (c *Client) DeleteTodo(ctx context.Context, item string) error {
	resp, err := c.client.R().
		SetContext(ctx).
		SetQueryParam("text", item).
		Delete("/todos")
	if err != nil {
		return fmt.Errorf("error deleting todo %q: %w", item, err)
	}
	if resp.IsError() {
		return fmt.Errorf("received non-2xx response status %d: %s", resp.StatusCode(), resp.String())
	}
	return nil
}

// AddTodo creates one item for user on the remote API.
func (c *Client) AddTodo(ctx context.Context, user, text string) error {
	resp, err := c.client.R().
		SetContext(ctx).
		SetBody(map[string]string{"user": user, "text": text}).
		Post("/todos")
	if err != nil {
		return fmt.Errorf("error creating todo for %s: %w", user, err)
	}
	if resp.IsError() {
		return fmt.Errorf("received non-2xx response status %d: %s", resp.StatusCode(), resp.String())
	}
	return nil
}
