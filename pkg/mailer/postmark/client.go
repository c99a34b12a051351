// Package postmark provides a mailer.Client implementation backed by a
// Postmark-compatible HTTP email API.
package postmark

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"newsletter/pkg/domain"
	"newsletter/pkg/mailer"
	"newsletter/pkg/serrors"
	"strings"
)

// Client talks to the email delivery REST API and fulfills the mailer.Client
// interface. It is safe for concurrent use.
type Client struct {
	httpClient *http.Client           // httpClient performs HTTP requests to the gateway
	baseURL    string                 // baseURL is the gateway endpoint, e.g. https://api.postmarkapp.com
	sender     domain.SubscriberEmail // sender is the validated from-address
	token      domain.Secret          // token is the server-issued authorization token
}

// sendReq mirrors the gateway's single-send request body.
type sendReq struct {
	From     string `json:"From"`
	To       string `json:"To"`
	Subject  string `json:"Subject"`
	HTMLBody string `json:"HtmlBody"`
	TextBody string `json:"TextBody"`
}

// Send delivers a single email through the gateway. Transport failures
// (connection errors, timeouts) and non-2xx responses are both classified as
// serrors.ErrUnavailable so callers can treat the gateway as one collaborator.
func (c *Client) Send(ctx context.Context, email mailer.Email) error {
	bodyBytes, err := json.Marshal(sendReq{
		From:     c.sender.String(),
		To:       email.To.String(),
		Subject:  email.Subject,
		HTMLBody: email.HTMLBody,
		TextBody: email.TextBody,
	})
	if err != nil {
		return fmt.Errorf("could not marshal request: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx,
		http.MethodPost,
		strings.TrimSuffix(c.baseURL, "/")+"/email",
		strings.NewReader(string(bodyBytes)))
	if err != nil {
		return fmt.Errorf("could not create request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Accept", "application/json")
	req.Header.Set("X-Postmark-Server-Token", c.token.Expose())

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return serrors.Wrap(serrors.ErrUnavailable, err, "could not reach email gateway")
	}
	defer func() {
		_ = resp.Body.Close()
	}()

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		b, readErr := io.ReadAll(resp.Body)
		if readErr != nil {
			return serrors.With(serrors.ErrUnavailable, "send failed with status %d", resp.StatusCode)
		}

		return serrors.With(serrors.ErrUnavailable,
			"send failed with status %d: %s", resp.StatusCode, strings.TrimSpace(string(b)))
	}

	return nil
}

// Ensure Client conforms to the mailer.Client interface at compile time.
var _ mailer.Client = (*Client)(nil)

// New constructs a Client that uses the provided http.Client (which carries
// the gateway request timeout) to deliver email on behalf of sender.
func New(httpClient *http.Client, baseURL string, sender domain.SubscriberEmail, token domain.Secret) *Client {
	return &Client{
		httpClient: httpClient,
		baseURL:    baseURL,
		sender:     sender,
		token:      token,
	}
}
