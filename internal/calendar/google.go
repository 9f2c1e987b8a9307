package calendar

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"time"

	"consultbook/internal/pkg/config"
	"consultbook/internal/pkg/errs"
)

var (
	errGoogleRequest  = errs.New("google calendar request failed")
	errGoogleResponse = errs.New("google calendar returned an error response")
)

// GoogleAdapter talks to the Google Calendar freebusy and events APIs.
type GoogleAdapter struct {
	baseURL string
	token   string
	client  *http.Client
}

func NewGoogleAdapter(cfg config.CalendarConfig) *GoogleAdapter {
	return &GoogleAdapter{
		baseURL: cfg.GoogleBaseURL,
		token:   cfg.GoogleToken,
		client:  &http.Client{Timeout: cfg.FetchTimeout},
	}
}

var _ Adapter = (*GoogleAdapter)(nil)

func (a *GoogleAdapter) Platform() Platform { return PlatformGoogle }

type googleEventsResponse struct {
	Items []struct {
		ID     string `json:"id"`
		Status string `json:"status"`
		Start  struct {
			DateTime time.Time `json:"dateTime"`
		} `json:"start"`
		End struct {
			DateTime time.Time `json:"dateTime"`
		} `json:"end"`
		Transparency string `json:"transparency"`
	} `json:"items"`
	NextPageToken string `json:"nextPageToken"`
}

func (a *GoogleAdapter) FetchBusyIntervals(ctx context.Context, accountRef string, from, to time.Time) ([]BusyEvent, error) {
	var out []BusyEvent
	pageToken := ""
	for {
		q := url.Values{}
		q.Set("timeMin", from.UTC().Format(time.RFC3339))
		q.Set("timeMax", to.UTC().Format(time.RFC3339))
		q.Set("singleEvents", "true")
		if pageToken != "" {
			q.Set("pageToken", pageToken)
		}
		endpoint := fmt.Sprintf("%s/calendars/%s/events?%s", a.baseURL, url.PathEscape(accountRef), q.Encode())

		var page googleEventsResponse
		if err := a.doJSON(ctx, http.MethodGet, endpoint, nil, &page); err != nil {
			return nil, err
		}

		for _, item := range page.Items {
			if item.Status == "cancelled" || item.Transparency == "transparent" {
				continue
			}
			if item.Start.DateTime.IsZero() || item.End.DateTime.IsZero() {
				// All-day events carry dates, not instants; they are
				// modeled locally as availability exceptions instead.
				continue
			}
			out = append(out, BusyEvent{
				SourceEventID: item.ID,
				Start:         item.Start.DateTime.UTC(),
				End:           item.End.DateTime.UTC(),
			})
		}

		if page.NextPageToken == "" {
			return out, nil
		}
		pageToken = page.NextPageToken
	}
}

func (a *GoogleAdapter) PushEvent(ctx context.Context, accountRef, title string, start, end time.Time) (string, error) {
	body := map[string]any{
		"summary": title,
		"start":   map[string]string{"dateTime": start.UTC().Format(time.RFC3339)},
		"end":     map[string]string{"dateTime": end.UTC().Format(time.RFC3339)},
	}
	endpoint := fmt.Sprintf("%s/calendars/%s/events", a.baseURL, url.PathEscape(accountRef))

	var created struct {
		ID string `json:"id"`
	}
	if err := a.doJSON(ctx, http.MethodPost, endpoint, body, &created); err != nil {
		return "", err
	}
	return created.ID, nil
}

func (a *GoogleAdapter) DeleteEvent(ctx context.Context, accountRef, eventID string) error {
	endpoint := fmt.Sprintf("%s/calendars/%s/events/%s", a.baseURL, url.PathEscape(accountRef), url.PathEscape(eventID))
	return a.doJSON(ctx, http.MethodDelete, endpoint, nil, nil)
}

func (a *GoogleAdapter) doJSON(ctx context.Context, method, endpoint string, body, dest any) error {
	var reader io.Reader
	if body != nil {
		raw, err := json.Marshal(body)
		if err != nil {
			return errs.Mark(err, errGoogleRequest)
		}
		reader = bytes.NewReader(raw)
	}

	req, err := http.NewRequestWithContext(ctx, method, endpoint, reader)
	if err != nil {
		return errs.Mark(err, errGoogleRequest)
	}
	req.Header.Set("Authorization", "Bearer "+a.token)
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}

	resp, err := a.client.Do(req)
	if err != nil {
		return errs.Mark(err, errGoogleRequest)
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		return errs.Mark(errs.Newf("google calendar status %d", resp.StatusCode), errGoogleResponse)
	}
	if dest == nil {
		return nil
	}
	if err := json.NewDecoder(resp.Body).Decode(dest); err != nil {
		return errs.Mark(err, errGoogleResponse)
	}
	return nil
}
