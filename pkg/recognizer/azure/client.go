package azure

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"
	"time"

	"github.com/adrianliechti/docread/pkg/recognizer"
)

var _ recognizer.Provider = &Client{}

type Client struct {
	client *http.Client

	url   string
	token string

	mode recognizer.Mode

	maxAttempts   int
	retryInterval time.Duration
	graceInterval time.Duration
}

func New(url string, options ...Option) (*Client, error) {
	if url == "" {
		return nil, errors.New("invalid url")
	}

	c := &Client{
		client: http.DefaultClient,

		url: url,

		mode: recognizer.ModePrinted,

		maxAttempts:   10,
		retryInterval: 1 * time.Second,
		graceInterval: 2 * time.Second,
	}

	for _, option := range options {
		option(c)
	}

	return c, nil
}

func (c *Client) Recognize(ctx context.Context, documentURL string, options *recognizer.RecognizeOptions) (*recognizer.Document, error) {
	if options == nil {
		options = new(recognizer.RecognizeOptions)
	}

	mode := options.Mode

	if mode == "" {
		mode = c.mode
	}

	operationURL, err := c.Submit(ctx, documentURL, mode)

	if err != nil {
		return nil, err
	}

	return c.Poll(ctx, operationURL)
}

// Submit issues a single asynchronous read request and returns the status
// endpoint from the Operation-Location header. Submission is never retried.
func (c *Client) Submit(ctx context.Context, documentURL string, mode recognizer.Mode) (string, error) {
	body, _ := json.Marshal(map[string]string{
		"url": documentURL,
	})

	u, _ := url.Parse(strings.TrimRight(c.url, "/") + "/vision/v2.0/read/core/asyncBatchAnalyze")

	query := u.Query()
	query.Set("mode", string(mode))

	u.RawQuery = query.Encode()

	req, _ := http.NewRequestWithContext(ctx, http.MethodPost, u.String(), bytes.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Ocp-Apim-Subscription-Key", c.token)

	resp, err := c.client.Do(req)

	if err != nil {
		return "", fmt.Errorf("%w: %w", recognizer.ErrSubmission, err)
	}

	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return "", convertError(resp)
	}

	operationURL := resp.Header.Get("Operation-Location")

	if operationURL == "" {
		return "", recognizer.ErrMissingOperation
	}

	return operationURL, nil
}

func convertError(resp *http.Response) error {
	data, _ := io.ReadAll(resp.Body)

	return &recognizer.StatusError{
		Status: resp.StatusCode,
		Detail: strings.TrimSpace(string(data)),
	}
}
