package pdf

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"io"
	"mime/multipart"
	"net/http"
	"strings"
	"time"

	"github.com/avast/retry-go/v4"
	"github.com/pdfcpu/pdfcpu/pkg/api"

	"github.com/8bitGames/auto-contract/internal/config"
)

// A4 portrait with 20mm margins, expressed in inches as Gotenberg's Chromium
// route expects.
const (
	pageWidthIn  = "8.27"
	pageHeightIn = "11.7"
	marginIn     = "0.79"

	maxAttempts = 3
	retryDelay  = 500 * time.Millisecond
)

// ErrRendererUnavailable wraps network failures talking to the render
// service after retries are exhausted.
var ErrRendererUnavailable = errors.New("PDF renderer unavailable")

// Renderer converts an HTML document into a PDF.
type Renderer interface {
	Render(ctx context.Context, html string) ([]byte, error)
}

// Client renders HTML via a Gotenberg-compatible service's Chromium route.
type Client struct {
	baseURL string
	client  *http.Client
}

// NewClient returns a Client for the configured renderer, or nil when no
// renderer URL is set, meaning PDF export is disabled.
func NewClient(cfg *config.Config) *Client {
	if cfg.PDF.RendererURL == "" {
		return nil
	}
	return &Client{
		baseURL: strings.TrimRight(cfg.PDF.RendererURL, "/"),
		client:  &http.Client{Timeout: 60 * time.Second},
	}
}

// Render prints the HTML document to PDF. Transient network failures are
// retried; an HTTP error status from the service is not, since re-sending
// the same document would fail the same way. The returned bytes are
// validated as a well-formed PDF before being handed back.
func (c *Client) Render(ctx context.Context, html string) ([]byte, error) {
	var pdf []byte
	err := retry.Do(
		func() error {
			var err error
			pdf, err = c.render(ctx, html)
			return err
		},
		retry.Context(ctx),
		retry.Attempts(maxAttempts),
		retry.Delay(retryDelay),
		retry.RetryIf(func(err error) bool {
			return errors.Is(err, ErrRendererUnavailable)
		}),
	)
	if err != nil {
		return nil, err
	}

	if err := Validate(pdf); err != nil {
		return nil, fmt.Errorf("renderer returned invalid PDF: %w", err)
	}
	return pdf, nil
}

func (c *Client) render(ctx context.Context, html string) ([]byte, error) {
	var body bytes.Buffer
	mw := multipart.NewWriter(&body)

	part, err := mw.CreateFormFile("files", "index.html")
	if err != nil {
		return nil, fmt.Errorf("create form file: %w", err)
	}
	if _, err := io.WriteString(part, html); err != nil {
		return nil, fmt.Errorf("write document: %w", err)
	}

	fields := map[string]string{
		"paperWidth":      pageWidthIn,
		"paperHeight":     pageHeightIn,
		"marginTop":       marginIn,
		"marginBottom":    marginIn,
		"marginLeft":      marginIn,
		"marginRight":     marginIn,
		"printBackground": "true",
	}
	for k, v := range fields {
		if err := mw.WriteField(k, v); err != nil {
			return nil, fmt.Errorf("write field %s: %w", k, err)
		}
	}
	if err := mw.Close(); err != nil {
		return nil, fmt.Errorf("close multipart: %w", err)
	}

	url := c.baseURL + "/forms/chromium/convert/html"
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, url, &body)
	if err != nil {
		return nil, fmt.Errorf("create request: %w", err)
	}
	req.Header.Set("Content-Type", mw.FormDataContentType())

	resp, err := c.client.Do(req)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrRendererUnavailable, err)
	}
	defer resp.Body.Close()

	respBody, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("read response: %w", err)
	}

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("render service returned %d: %s", resp.StatusCode, respBody)
	}
	return respBody, nil
}

// Validate checks that data is a structurally sound PDF. Used on renderer
// output and on uploaded documents before they are sent for AI analysis.
func Validate(data []byte) error {
	return api.Validate(bytes.NewReader(data), nil)
}
