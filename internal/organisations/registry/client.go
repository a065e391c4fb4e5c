// Package registry provides the prison-register HTTP client used to decorate
// a caseload ID with its prison display name. Lookups are best-effort: a
// missing registry entry yields an empty name, and callers must not fail the
// surrounding request on error.
package registry

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"time"

	"github.com/cenkalti/backoff/v4"
	"go.uber.org/zap"
)

type Client struct {
	baseURL    string
	httpClient *http.Client
	logger     *zap.Logger
}

func NewClient(baseURL string, logger *zap.Logger) *Client {
	return &Client{
		baseURL:    baseURL,
		httpClient: &http.Client{Timeout: 5 * time.Second},
		logger:     logger.Named("prison_register"),
	}
}

type prisonResponse struct {
	PrisonID   string `json:"prisonId"`
	PrisonName string `json:"prisonName"`
}

// LookupPrisonName resolves a caseload ID to a prison name. Unknown IDs return
// an empty name with no error; transient transport failures are retried a few
// times before giving up.
func (c *Client) LookupPrisonName(ctx context.Context, caseloadID string) (string, error) {
	var name string
	operation := func() error {
		req, err := http.NewRequestWithContext(ctx, http.MethodGet,
			fmt.Sprintf("%s/prisons/id/%s", c.baseURL, caseloadID), nil)
		if err != nil {
			return backoff.Permanent(err)
		}
		resp, err := c.httpClient.Do(req)
		if err != nil {
			return err
		}
		defer resp.Body.Close()

		if resp.StatusCode == http.StatusNotFound {
			name = ""
			return nil
		}
		if resp.StatusCode != http.StatusOK {
			return fmt.Errorf("prison register returned status %d", resp.StatusCode)
		}

		var prison prisonResponse
		if err := json.NewDecoder(resp.Body).Decode(&prison); err != nil {
			return backoff.Permanent(err)
		}
		name = prison.PrisonName
		return nil
	}

	policy := backoff.WithContext(backoff.WithMaxRetries(backoff.NewExponentialBackOff(), 3), ctx)
	if err := backoff.Retry(operation, policy); err != nil {
		c.logger.Warn("Prison register lookup failed",
			zap.Error(err),
			zap.String("caseload_id", caseloadID),
		)
		return "", err
	}
	return name, nil
}
