// Package googlecalendar implements the service.Calendar interface using the
// Google Calendar API.
package googlecalendar

import (
	"context"
	"encoding/json"
	"fmt"
	"os"
	"strings"
	"time"

	"golang.org/x/oauth2"
	"golang.org/x/oauth2/google"
	calendar "google.golang.org/api/calendar/v3"
	"google.golang.org/api/option"

	"tempoclaro/internal/config"
	"tempoclaro/internal/service"
)

const (
	// APITimeout is the timeout for API calls.
	APITimeout = 10 * time.Second

	// OAuth scope for Google Calendar
	calendarScope = "https://www.googleapis.com/auth/calendar"
)

// Client implements service.Calendar using the Google Calendar API.
type Client struct {
	svc *calendar.Service
	cfg *config.Config
}

// New creates a client from the stored oauth_client.json and token.json.
// The token source refreshes expired tokens transparently.
func New(ctx context.Context, cfg *config.Config) (*Client, error) {
	oauthConfig, err := loadOAuthConfig(cfg)
	if err != nil {
		return nil, err
	}

	token, err := loadToken(cfg)
	if err != nil {
		return nil, err
	}

	httpClient := oauth2.NewClient(ctx, oauthConfig.TokenSource(ctx, token))
	svc, err := calendar.NewService(ctx, option.WithHTTPClient(httpClient))
	if err != nil {
		return nil, fmt.Errorf("failed to create calendar service: %w", err)
	}

	return &Client{svc: svc, cfg: cfg}, nil
}

func loadOAuthConfig(cfg *config.Config) (*oauth2.Config, error) {
	clientJSON, err := os.ReadFile(cfg.OAuthClientPath())
	if err != nil {
		return nil, fmt.Errorf("failed to read oauth_client.json: %w", err)
	}
	oauthConfig, err := google.ConfigFromJSON(clientJSON, calendarScope)
	if err != nil {
		return nil, fmt.Errorf("invalid oauth_client.json: %w", err)
	}
	return oauthConfig, nil
}

func loadToken(cfg *config.Config) (*oauth2.Token, error) {
	data, err := os.ReadFile(cfg.TokenPath())
	if err != nil {
		return nil, fmt.Errorf("failed to read token.json: %w", err)
	}
	var token oauth2.Token
	if err := json.Unmarshal(data, &token); err != nil {
		return nil, fmt.Errorf("invalid token.json: %w", err)
	}
	return &token, nil
}

// FindCalendar looks up a calendar by display name.
func (c *Client) FindCalendar(ctx context.Context, summary string) (string, error) {
	ctx, cancel := context.WithTimeout(ctx, APITimeout)
	defer cancel()

	var found string
	err := c.svc.CalendarList.List().Pages(ctx, func(resp *calendar.CalendarList) error {
		for _, item := range resp.Items {
			if item.Summary == summary {
				found = item.Id
				return nil
			}
		}
		return nil
	})
	if err != nil {
		return "", wrapError(err)
	}

	return found, nil
}

// CreateCalendar creates a new calendar.
func (c *Client) CreateCalendar(ctx context.Context, info service.CalendarInfo) (string, error) {
	ctx, cancel := context.WithTimeout(ctx, APITimeout)
	defer cancel()

	created, err := c.svc.Calendars.Insert(&calendar.Calendar{
		Summary:     info.Summary,
		Description: info.Description,
		TimeZone:    info.TimeZone,
	}).Context(ctx).Do()
	if err != nil {
		return "", wrapError(err)
	}

	return created.Id, nil
}

// InsertEvent submits one event.
func (c *Client) InsertEvent(ctx context.Context, calendarID string, event service.Event) (string, error) {
	ctx, cancel := context.WithTimeout(ctx, APITimeout)
	defer cancel()

	created, err := c.svc.Events.Insert(calendarID, &calendar.Event{
		Summary:     event.Summary,
		Description: event.Description,
		Start: &calendar.EventDateTime{
			DateTime: event.StartDateTime,
			TimeZone: event.TimeZone,
		},
		End: &calendar.EventDateTime{
			DateTime: event.EndDateTime,
			TimeZone: event.TimeZone,
		},
		ColorId: event.ColorID,
	}).Context(ctx).Do()
	if err != nil {
		return "", wrapError(err)
	}

	return created.Id, nil
}

// DeleteEvent removes one event.
func (c *Client) DeleteEvent(ctx context.Context, calendarID, eventID string) error {
	ctx, cancel := context.WithTimeout(ctx, APITimeout)
	defer cancel()

	if err := c.svc.Events.Delete(calendarID, eventID).Context(ctx).Do(); err != nil {
		return wrapError(err)
	}
	return nil
}

// wrapError rewrites API errors into user-facing messages.
func wrapError(err error) error {
	if err == nil {
		return nil
	}
	msg := err.Error()
	switch {
	case strings.Contains(msg, "context deadline exceeded"):
		return fmt.Errorf("request timed out")
	case strings.Contains(msg, "401"), strings.Contains(msg, "403"):
		return fmt.Errorf("token expired or revoked (run: tempoclaro login)")
	case strings.Contains(msg, "404"):
		return fmt.Errorf("not found")
	}
	return err
}
