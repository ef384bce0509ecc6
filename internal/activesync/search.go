package activesync

import (
	"context"
	"fmt"

	"github.com/MKhiriev/go-eas-suite/models"
)

// Search runs req until the store returns expected results. A single empty
// result, or none at all, satisfies expected == 0. More results than
// expected fail at once with ErrResultCountExceeded. With loop unset only
// one attempt is made.
func (c *Client) Search(ctx context.Context, req *models.SearchRequest, loop bool, expected int) (*models.SearchResponse, error) {
	attempts := 1
	if loop {
		attempts = c.polling.RetryCount
	}

	for i := 0; i < attempts; i++ {
		if i > 0 {
			if err := sleep(ctx, c.polling.WaitTime); err != nil {
				return nil, err
			}
		}
		resp, _, err := invoke[models.SearchResponse](ctx, c, req, RequestOptions{})
		if err != nil {
			return nil, err
		}

		done, err := searchSettled(resp.Results(), expected)
		if err != nil {
			return resp, err
		}
		if done {
			return resp, nil
		}
		c.logger.Debug().
			Int("attempt", i+1).
			Int("results", len(resp.Results())).
			Int("expected", expected).
			Msg("search results not settled")
	}
	return nil, fmt.Errorf("%w: search did not return %d results after %d attempts", ErrPollingExhausted, expected, attempts)
}

func searchSettled(results []models.SearchResult, expected int) (bool, error) {
	if expected == 0 && (len(results) == 0 || (len(results) == 1 && results[0].IsEmpty())) {
		return true, nil
	}
	if len(results) > expected {
		return false, fmt.Errorf("%w: got %d, expected %d", ErrResultCountExceeded, len(results), expected)
	}
	if len(results) == expected {
		for _, r := range results {
			if r.Class != "" {
				return true, nil
			}
		}
	}
	return false, nil
}
