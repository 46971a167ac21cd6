// Package ai is the HTTP adapter for the generative-AI capability behind the
// dashboard: news analysis, questionnaire validation, document extraction,
// CSV mapping, deep assessments, alert speech and the chat assistant. The
// service is treated as an opaque request/response capability; no state is
// kept here beyond the HTTP client.
package ai

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"strings"
	"time"
)

// ErrCapability means the capability was unreachable or answered with a
// failure status. ErrMalformedResult means it answered, but the payload could
// not be interpreted as the expected shape. Both are user-visible, non-fatal
// conditions; callers must leave their own state untouched when they see one.
var (
	ErrCapability      = errors.New("ai capability unavailable")
	ErrMalformedResult = errors.New("ai capability returned malformed result")
)

const (
	defaultBaseURL    = "https://generativelanguage.googleapis.com"
	defaultFlashModel = "gemini-3-flash-preview"
	defaultProModel   = "gemini-3-pro-preview"
	defaultTTSModel   = "gemini-2.5-flash-preview-tts"
)

// Client calls a Gemini-style generateContent endpoint.
type Client struct {
	baseURL    string
	apiKey     string
	flashModel string
	proModel   string
	ttsModel   string
	client     *http.Client
}

// NewClient creates a capability client. Empty arguments fall back to the
// hosted endpoint and default models.
func NewClient(baseURL, apiKey string) *Client {
	if baseURL == "" {
		baseURL = defaultBaseURL
	}
	return &Client{
		baseURL:    strings.TrimSuffix(baseURL, "/"),
		apiKey:     apiKey,
		flashModel: defaultFlashModel,
		proModel:   defaultProModel,
		ttsModel:   defaultTTSModel,
		client:     &http.Client{Timeout: 120 * time.Second},
	}
}

// --- wire types ---

type generateRequest struct {
	Contents          []content         `json:"contents"`
	SystemInstruction *content          `json:"systemInstruction,omitempty"`
	Tools             []tool            `json:"tools,omitempty"`
	GenerationConfig  *generationConfig `json:"generationConfig,omitempty"`
}

type content struct {
	Role  string `json:"role,omitempty"`
	Parts []part `json:"parts"`
}

type part struct {
	Text       string      `json:"text,omitempty"`
	InlineData *inlineData `json:"inlineData,omitempty"`
}

type inlineData struct {
	MimeType string `json:"mimeType"`
	Data     string `json:"data"`
}

type tool struct {
	GoogleSearch *struct{} `json:"googleSearch,omitempty"`
}

type generationConfig struct {
	ResponseMimeType   string        `json:"responseMimeType,omitempty"`
	ResponseModalities []string      `json:"responseModalities,omitempty"`
	ThinkingBudget     int           `json:"thinkingBudget,omitempty"`
	SpeechConfig       *speechConfig `json:"speechConfig,omitempty"`
}

type speechConfig struct {
	VoiceConfig voiceConfig `json:"voiceConfig"`
}

type voiceConfig struct {
	PrebuiltVoiceConfig prebuiltVoice `json:"prebuiltVoiceConfig"`
}

type prebuiltVoice struct {
	VoiceName string `json:"voiceName"`
}

type generateResponse struct {
	Candidates []struct {
		Content content `json:"content"`
	} `json:"candidates"`
}

func userText(text string) []content {
	return []content{{Role: "user", Parts: []part{{Text: text}}}}
}

// generate performs one generateContent round trip against the given model.
func (c *Client) generate(ctx context.Context, model string, reqBody generateRequest) (*generateResponse, error) {
	payload, err := json.Marshal(reqBody)
	if err != nil {
		return nil, fmt.Errorf("marshaling request: %w", err)
	}

	url := fmt.Sprintf("%s/v1beta/models/%s:generateContent", c.baseURL, model)
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, url, bytes.NewReader(payload))
	if err != nil {
		return nil, fmt.Errorf("creating request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")
	if c.apiKey != "" {
		req.Header.Set("x-goog-api-key", c.apiKey)
	}

	resp, err := c.client.Do(req)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrCapability, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("%w: status %d", ErrCapability, resp.StatusCode)
	}

	var genResp generateResponse
	if err := json.NewDecoder(resp.Body).Decode(&genResp); err != nil {
		return nil, fmt.Errorf("%w: decoding response: %v", ErrMalformedResult, err)
	}
	return &genResp, nil
}

// firstText returns the first text part of the first candidate.
func (r *generateResponse) firstText() (string, error) {
	for _, cand := range r.Candidates {
		for _, p := range cand.Content.Parts {
			if p.Text != "" {
				return p.Text, nil
			}
		}
	}
	return "", fmt.Errorf("%w: no text candidate", ErrMalformedResult)
}

// stripFences removes a markdown code fence around a JSON payload if the
// model wrapped its answer in one.
func stripFences(s string) string {
	s = strings.TrimSpace(s)
	if strings.HasPrefix(s, "```") {
		s = strings.TrimPrefix(s, "```json")
		s = strings.TrimPrefix(s, "```")
		s = strings.TrimSuffix(strings.TrimSpace(s), "```")
	}
	return strings.TrimSpace(s)
}
