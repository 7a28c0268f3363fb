package resume

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"time"
)

// Entity is a named entity recognized in resume text.
type Entity struct {
	Text  string `json:"text"`
	Label string `json:"label"` // ORG, DATE, PRODUCT, ...
}

// EntityTagger recognizes named entities in free text. It is an optional
// capability: when no tagger is configured the parser falls back to its
// keyword-only path instead of failing the request.
type EntityTagger interface {
	Tag(ctx context.Context, text string) ([]Entity, error)
	// Ping reports whether the tagger is reachable; probed once at startup.
	Ping(ctx context.Context) error
}

// httpTagger calls an external NER service
// (POST {base}/tag with {"text": ...}, returns {"entities": [...]}).
type httpTagger struct {
	baseURL    string
	httpClient *http.Client
}

func NewHTTPTagger(baseURL string) EntityTagger {
	return &httpTagger{
		baseURL:    baseURL,
		httpClient: &http.Client{Timeout: 15 * time.Second},
	}
}

type tagRequest struct {
	Text string `json:"text"`
}

type tagResponse struct {
	Entities []Entity `json:"entities"`
}

func (t *httpTagger) Tag(ctx context.Context, text string) ([]Entity, error) {
	body, err := json.Marshal(tagRequest{Text: text})
	if err != nil {
		return nil, err
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, t.baseURL+"/tag", bytes.NewReader(body))
	if err != nil {
		return nil, err
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := t.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("ner service: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("ner service: unexpected status %d", resp.StatusCode)
	}

	var payload tagResponse
	if err := json.NewDecoder(resp.Body).Decode(&payload); err != nil {
		return nil, fmt.Errorf("ner service: decode response: %w", err)
	}
	return payload.Entities, nil
}

func (t *httpTagger) Ping(ctx context.Context) error {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, t.baseURL+"/health", nil)
	if err != nil {
		return err
	}
	resp, err := t.httpClient.Do(req)
	if err != nil {
		return err
	}
	defer resp.Body.Close()
	if resp.StatusCode != http.StatusOK {
		return fmt.Errorf("ner service: health returned %d", resp.StatusCode)
	}
	return nil
}
