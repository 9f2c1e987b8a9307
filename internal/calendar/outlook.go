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
	errOutlookRequest  = errs.New("outlook calendar request failed")
	errOutlookResponse = errs.New("outlook calendar returned an error response")
)

// OutlookAdapter talks to the Microsoft Graph calendarView API.
type OutlookAdapter struct {
	baseURL string
	token   string
	client  *http.Client
}

func NewOutlookAdapter(cfg config.CalendarConfig) *OutlookAdapter {
	return &OutlookAdapter{
		baseURL: cfg.OutlookBaseURL,
		token:   cfg.OutlookToken,
		client:  &http.Client{Timeout: cfg.FetchTimeout},
	}
}

var _ Adapter = (*OutlookAdapter)(nil)

func (a *OutlookAdapter) Platform() Platform { return PlatformOutlook }

// graphTime is Graph's dateTimeTimeZone pair. Requests ask for UTC via
// the Prefer header, so the zone is fixed.
type graphTime struct {
	DateTime string `json:"dateTime"`
	TimeZone string `json:"timeZone"`
}

func (g graphTime) instant() (time.Time, error) {
	return time.Parse("2006-01-02T15:04:05.9999999", g.DateTime)
}

type graphEventsResponse struct {
	Value []struct {
		ID          string    `json:"id"`
		ShowAs      string    `json:"showAs"`
		IsCancelled bool      `json:"isCancelled"`
		Start       graphTime `json:"start"`
		End         graphTime `json:"end"`
	} `json:"value"`
	NextLink string `json:"@odata.nextLink"`
}

func (a *OutlookAdapter) FetchBusyIntervals(ctx context.Context, accountRef string, from, to time.Time) ([]BusyEvent, error) {
	q := url.Values{}
	q.Set("startDateTime", from.UTC().Format(time.RFC3339))
	q.Set("endDateTime", to.UTC().Format(time.RFC3339))
	endpoint := fmt.Sprintf("%s/users/%s/calendarView?%s", a.baseURL, url.PathEscape(accountRef), q.Encode())

	var out []BusyEvent
	for endpoint != "" {
		var page graphEventsResponse
		if err := a.doJSON(ctx, http.MethodGet, endpoint, nil, &page); err != nil {
			return nil, err
		}

		for _, item := range page.Value {
			if item.IsCancelled || item.ShowAs == "free" {
				continue
			}
			start, err := item.Start.instant()
			if err != nil {
				continue
			}
			end, err := item.End.instant()
			if err != nil {
				continue
			}
			out = append(out, BusyEvent{
				SourceEventID: item.ID,
				Start:         start.UTC(),
				End:           end.UTC(),
			})
		}
		endpoint = page.NextLink
	}
	return out, nil
}

func (a *OutlookAdapter) PushEvent(ctx context.Context, accountRef, title string, start, end time.Time) (string, error) {
	body := map[string]any{
		"subject": title,
		"start":   graphTime{DateTime: start.UTC().Format("2006-01-02T15:04:05"), TimeZone: "UTC"},
		"end":     graphTime{DateTime: end.UTC().Format("2006-01-02T15:04:05"), TimeZone: "UTC"},
		"showAs":  "busy",
	}
	endpoint := fmt.Sprintf("%s/users/%s/events", a.baseURL, url.PathEscape(accountRef))

	var created struct {
		ID string `json:"id"`
	}
	if err := a.doJSON(ctx, http.MethodPost, endpoint, body, &created); err != nil {
		return "", err
	}
	return created.ID, nil
}

func (a *OutlookAdapter) DeleteEvent(ctx context.Context, accountRef, eventID string) error {
	endpoint := fmt.Sprintf("%s/users/%s/events/%s", a.baseURL, url.PathEscape(accountRef), url.PathEscape(eventID))
	return a.doJSON(ctx, http.MethodDelete, endpoint, nil, nil)
}

func (a *OutlookAdapter) doJSON(ctx context.Context, method, endpoint string, body, dest any) error {
	var reader io.Reader
	if body != nil {
		raw, err := json.Marshal(body)
		if err != nil {
			return errs.Mark(err, errOutlookRequest)
		}
		reader = bytes.NewReader(raw)
	}

	req, err := http.NewRequestWithContext(ctx, method, endpoint, reader)
	if err != nil {
		return errs.Mark(err, errOutlookRequest)
	}
	req.Header.Set("Authorization", "Bearer "+a.token)
	req.Header.Set("Prefer", `outlook.timezone="UTC"`)
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}

	resp, err := a.client.Do(req)
	if err != nil {
		return errs.Mark(err, errOutlookRequest)
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		return errs.Mark(errs.Newf("outlook calendar status %d", resp.StatusCode), errOutlookResponse)
	}
	if dest == nil {
		return nil
	}
	if err := json.NewDecoder(resp.Body).Decode(dest); err != nil {
		return errs.Mark(err, errOutlookResponse)
	}
	return nil
}
