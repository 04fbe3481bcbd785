package azure

import (
	"net/http"
	"time"

	"github.com/adrianliechti/docread/pkg/recognizer"
)

type Option func(*Client)

func WithClient(client *http.Client) Option {
	return func(c *Client) {
		c.client = client
	}
}

func WithToken(token string) Option {
	return func(c *Client) {
		c.token = token
	}
}

func WithMode(mode recognizer.Mode) Option {
	return func(c *Client) {
		c.mode = mode
	}
}

func WithMaxAttempts(attempts int) Option {
	return func(c *Client) {
		if attempts > 0 {
			c.maxAttempts = attempts
		}
	}
}

func WithRetryInterval(interval time.Duration) Option {
	return func(c *Client) {
		if interval > 0 {
			c.retryInterval = interval
		}
	}
}

// WithGraceInterval overrides the delay before the first status query.
func WithGraceInterval(interval time.Duration) Option {
	return func(c *Client) {
		if interval >= 0 {
			c.graceInterval = interval
		}
	}
}

// https://learn.microsoft.com/en-us/azure/ai-services/computer-vision/overview-ocr
var SupportedExtensions = []string{
	".pdf",

	".jpeg", ".jpg",
	".png",
	".bmp",
	".tiff",
}

var SupportedMimeTypes = []string{
	"application/pdf",

	"image/jpeg",
	"image/png",
	"image/bmp",
	"image/tiff",
}
