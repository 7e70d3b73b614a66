package roster

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"

	"github.com/ITB-Innovators-Move/inmove-2022-exhibition-page/logging"
)

// Verifier answers whether a student appears on the external roster.
type Verifier interface {
	Verify(ctx context.Context, name, studentID string) (bool, error)
}

// Entry is one roster row: [name, primaryID, secondaryID].
type Entry [3]string

// Client fetches the roster endpoint on every call. The roster is
// small and owned elsewhere, so no local copy is kept.
type Client struct {
	URL        string
	HTTPClient *http.Client
}

func NewClient(url string) *Client {
	return &Client{
		URL:        url,
		HTTPClient: http.DefaultClient,
	}
}

func (c *Client) fetch(ctx context.Context) ([]Entry, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.URL, nil)
	if err != nil {
		return nil, err
	}

	res, err := c.HTTPClient.Do(req)
	if err != nil {
		logging.Log.Errorf("ROSTER: fetch failed: %v", err)
		return nil, err
	}
	defer res.Body.Close()

	if res.StatusCode != http.StatusOK {
		logging.Log.Errorf("ROSTER: endpoint returned status %d", res.StatusCode)
		return nil, fmt.Errorf("roster endpoint returned status %d", res.StatusCode)
	}

	var entries []Entry
	if err := json.NewDecoder(res.Body).Decode(&entries); err != nil {
		logging.Log.Errorf("ROSTER: failed to decode roster: %v", err)
		return nil, err
	}
	return entries, nil
}

// Verify reports whether the roster holds a row with a matching name
// and either the primary or the secondary ID equal to studentID. A
// fetch failure propagates; it is never folded into a false.
func (c *Client) Verify(ctx context.Context, name, studentID string) (bool, error) {
	entries, err := c.fetch(ctx)
	if err != nil {
		return false, err
	}

	for _, entry := range entries {
		if entry[0] == name && (entry[1] == studentID || entry[2] == studentID) {
			return true, nil
		}
	}
	return false, nil
}
