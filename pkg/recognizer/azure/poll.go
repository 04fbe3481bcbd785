package azure

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"time"

	"github.com/adrianliechti/docread/pkg/recognizer"
)

// Poll queries the operation status endpoint until the engine reports a
// terminal status or the attempt budget is exhausted.
//
// The first query is delayed by a fixed grace interval since a freshly
// submitted operation is never ready immediately. An explicit "Failed" status
// is terminal and consumes no further attempts. A transport error is surfaced
// at once as recognizer.ErrPollTransport rather than treated as in-progress.
func (c *Client) Poll(ctx context.Context, operationURL string) (*recognizer.Document, error) {
	if err := wait(ctx, c.graceInterval); err != nil {
		return nil, err
	}

	var attempts int

	for {
		operation, err := c.query(ctx, operationURL)

		if err != nil {
			return nil, err
		}

		switch operation.Status {
		case operationStatusSucceeded:
			return convertDocument(operation), nil

		case operationStatusFailed:
			return nil, recognizer.ErrRecognitionFailed
		}

		attempts++

		if attempts >= c.maxAttempts {
			return nil, &recognizer.TimeoutError{Attempts: attempts}
		}

		if err := wait(ctx, c.retryInterval); err != nil {
			return nil, err
		}
	}
}

func (c *Client) query(ctx context.Context, operationURL string) (*readOperation, error) {
	req, _ := http.NewRequestWithContext(ctx, http.MethodGet, operationURL, nil)
	req.Header.Set("Ocp-Apim-Subscription-Key", c.token)

	resp, err := c.client.Do(req)

	if err != nil {
		return nil, fmt.Errorf("%w: %w", recognizer.ErrPollTransport, err)
	}

	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("%w: status %d", recognizer.ErrPollTransport, resp.StatusCode)
	}

	var operation readOperation

	if err := json.NewDecoder(resp.Body).Decode(&operation); err != nil {
		return nil, fmt.Errorf("%w: %w", recognizer.ErrPollTransport, err)
	}

	return &operation, nil
}

func convertDocument(operation *readOperation) *recognizer.Document {
	document := &recognizer.Document{
		Pages: []recognizer.Page{},
	}

	for _, result := range operation.Results {
		page := recognizer.Page{
			Number: result.Page,

			Lines: []recognizer.Line{},
		}

		for _, line := range result.Lines {
			page.Lines = append(page.Lines, recognizer.Line{
				Text:        line.Text,
				BoundingBox: line.BoundingBox,
			})
		}

		document.Pages = append(document.Pages, page)
	}

	return document
}

func wait(ctx context.Context, duration time.Duration) error {
	timer := time.NewTimer(duration)
	defer timer.Stop()

	select {
	case <-ctx.Done():
		return ctx.Err()

	case <-timer.C:
		return nil
	}
}
