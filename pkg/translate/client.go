package translate

import (
	"context"
	"fmt"
	"net/http"
	"os"

	"golang.org/x/oauth2/google"
	"google.golang.org/api/option"
	translatev2 "google.golang.org/api/translate/v2"
)

// Client wraps the Google Translate v2 API service.
type Client struct {
	service *translatev2.Service
}

// NewClientWithAPIKey creates a Translate client from an API key.
func NewClientWithAPIKey(ctx context.Context, apiKey string) (*Client, error) {
	if apiKey == "" {
		return nil, fmt.Errorf("translate: api key is required")
	}
	svc, err := translatev2.NewService(ctx, option.WithAPIKey(apiKey))
	if err != nil {
		return nil, fmt.Errorf("failed to create translate service: %w", err)
	}
	return &Client{service: svc}, nil
}

// NewClientFromCredentialsFile creates a Translate client from a Service Account JSON file path.
func NewClientFromCredentialsFile(ctx context.Context, credentialsPath string) (*Client, error) {
	data, err := os.ReadFile(credentialsPath)
	if err != nil {
		return nil, fmt.Errorf("failed to read credentials file: %w", err)
	}
	return NewClientFromCredentialsJSON(ctx, data)
}

// NewClientFromCredentialsJSON creates a Translate client from raw Service Account JSON bytes.
func NewClientFromCredentialsJSON(ctx context.Context, credentialsJSON []byte) (*Client, error) {
	config, err := google.JWTConfigFromJSON(credentialsJSON, translatev2.CloudTranslationScope)
	if err != nil {
		return nil, fmt.Errorf("unsupported credentials format, use a service account or API key: %w", err)
	}

	tokenSource := config.TokenSource(ctx)
	svc, err := translatev2.NewService(ctx, option.WithTokenSource(tokenSource))
	if err != nil {
		return nil, fmt.Errorf("failed to create translate service: %w", err)
	}
	return &Client{service: svc}, nil
}

// NewClientFromHTTP creates a Translate client from a pre-configured HTTP client.
func NewClientFromHTTP(ctx context.Context, httpClient *http.Client) (*Client, error) {
	svc, err := translatev2.NewService(ctx, option.WithHTTPClient(httpClient))
	if err != nil {
		return nil, fmt.Errorf("failed to create translate service: %w", err)
	}
	return &Client{service: svc}, nil
}

// Translate translates a single text into the target language.
func (c *Client) Translate(ctx context.Context, req TranslateRequest) (*Translation, error) {
	if req.Text == "" {
		return &Translation{}, nil
	}

	target := req.Target
	if target == "" {
		target = "en"
	}

	call := c.service.Translations.List([]string{req.Text}, target).Format("text")
	if req.Source != "" {
		call = call.Source(req.Source)
	}

	resp, err := call.Context(ctx).Do()
	if err != nil {
		return nil, fmt.Errorf("failed to translate text: %w", err)
	}
	if len(resp.Translations) == 0 {
		return nil, fmt.Errorf("translate: empty response")
	}

	t := resp.Translations[0]
	return &Translation{
		Text:           t.TranslatedText,
		DetectedSource: t.DetectedSourceLanguage,
	}, nil
}

// Detect returns the detected language code for a single text.
func (c *Client) Detect(ctx context.Context, text string) (string, error) {
	if text == "" {
		return "", nil
	}

	resp, err := c.service.Detections.List([]string{text}).Context(ctx).Do()
	if err != nil {
		return "", fmt.Errorf("failed to detect language: %w", err)
	}
	if len(resp.Detections) == 0 || len(resp.Detections[0]) == 0 {
		return "", fmt.Errorf("translate: empty detection response")
	}

	return resp.Detections[0][0].Language, nil
}
