package ai

import (
	"context"
	"encoding/base64"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
)

// textServer answers every generateContent call with a single text part.
func textServer(t *testing.T, text string) *httptest.Server {
	t.Helper()
	return httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if !strings.Contains(r.URL.Path, ":generateContent") {
			t.Errorf("unexpected path: %s", r.URL.Path)
		}
		json.NewEncoder(w).Encode(map[string]any{
			"candidates": []map[string]any{
				{"content": map[string]any{"parts": []map[string]any{{"text": text}}}},
			},
		})
	}))
}

func TestAnalyzeNews(t *testing.T) {
	server := textServer(t, "No adverse findings in the last quarter.")
	defer server.Close()

	client := NewClient(server.URL, "test-key")
	got, err := client.AnalyzeNews(context.Background(), "Acme Textiles Ltd")
	if err != nil {
		t.Fatalf("analyze failed: %v", err)
	}
	if got != "No adverse findings in the last quarter." {
		t.Errorf("unexpected analysis: %q", got)
	}
}

func TestValidateResponses(t *testing.T) {
	server := textServer(t, `{"score": 85, "feedback": "ok", "inconsistencies": []}`)
	defer server.Close()

	client := NewClient(server.URL, "")
	got, err := client.ValidateResponses(context.Background(), map[string]string{"q1": "yes"})
	if err != nil {
		t.Fatalf("validate failed: %v", err)
	}
	if got.Score != 85 || got.Feedback != "ok" || len(got.Inconsistencies) != 0 {
		t.Errorf("unexpected verdict: %+v", got)
	}
}

func TestValidateResponses_FencedJSON(t *testing.T) {
	server := textServer(t, "```json\n{\"score\": 40, \"feedback\": \"red flags\", \"inconsistencies\": [\"overtime\"]}\n```")
	defer server.Close()

	client := NewClient(server.URL, "")
	got, err := client.ValidateResponses(context.Background(), map[string]string{"q1": "no"})
	if err != nil {
		t.Fatalf("validate failed: %v", err)
	}
	if got.Score != 40 || len(got.Inconsistencies) != 1 {
		t.Errorf("unexpected verdict: %+v", got)
	}
}

func TestValidateResponses_ScoreOutOfRange(t *testing.T) {
	server := textServer(t, `{"score": 400, "feedback": "?", "inconsistencies": []}`)
	defer server.Close()

	client := NewClient(server.URL, "")
	_, err := client.ValidateResponses(context.Background(), map[string]string{"q1": "yes"})
	if !errors.Is(err, ErrMalformedResult) {
		t.Errorf("err = %v, want ErrMalformedResult", err)
	}
}

func TestValidateResponses_ServerError(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusServiceUnavailable)
	}))
	defer server.Close()

	client := NewClient(server.URL, "")
	_, err := client.ValidateResponses(context.Background(), map[string]string{"q1": "yes"})
	if !errors.Is(err, ErrCapability) {
		t.Errorf("err = %v, want ErrCapability", err)
	}
}

func TestParseTabularList_DropsMalformedRows(t *testing.T) {
	server := textServer(t, `[
		{"name": "Alpha GmbH", "country": "DE", "industry": "Software"},
		{"name": "", "country": "FR", "industry": "Chemicals"},
		{"country": "CN", "industry": "Electronics"},
		{"name": "Beta Ltd", "country": "VN", "industry": "Textiles", "city": "Hanoi", "annualVolume": 120000}
	]`)
	defer server.Close()

	client := NewClient(server.URL, "")
	rows, err := client.ParseTabularList(context.Background(), "name,country\n...")
	if err != nil {
		t.Fatalf("parse failed: %v", err)
	}
	if len(rows) != 2 {
		t.Fatalf("rows = %d, want 2 (malformed rows dropped)", len(rows))
	}
	if rows[0].Name != "Alpha GmbH" || rows[1].City != "Hanoi" {
		t.Errorf("unexpected rows: %+v", rows)
	}
}

func TestParseTabularList_UnparseablePayload(t *testing.T) {
	server := textServer(t, "sorry, I could not parse that")
	defer server.Close()

	client := NewClient(server.URL, "")
	_, err := client.ParseTabularList(context.Background(), "garbage")
	if !errors.Is(err, ErrMalformedResult) {
		t.Errorf("err = %v, want ErrMalformedResult", err)
	}
}

func TestExtractFromDocument(t *testing.T) {
	server := textServer(t, `{"name": "Acme Ltd", "legalName": "Acme Manufacturing Ltd", "country": "BD", "industry": "Textiles", "registrationNumber": "BD-12345"}`)
	defer server.Close()

	client := NewClient(server.URL, "")
	got, err := client.ExtractFromDocument(context.Background(), []byte{0xFF, 0xD8}, "image/jpeg")
	if err != nil {
		t.Fatalf("extract failed: %v", err)
	}
	if got.Name != "Acme Ltd" || got.RegistrationNumber != "BD-12345" {
		t.Errorf("unexpected extraction: %+v", got)
	}
}

func TestExtractFromDocument_MissingName(t *testing.T) {
	server := textServer(t, `{"country": "DE"}`)
	defer server.Close()

	client := NewClient(server.URL, "")
	_, err := client.ExtractFromDocument(context.Background(), []byte{1}, "application/pdf")
	if !errors.Is(err, ErrMalformedResult) {
		t.Errorf("err = %v, want ErrMalformedResult", err)
	}
}

func TestGenerateAlertSpeech(t *testing.T) {
	pcm := []byte{0x01, 0x02, 0x03, 0x04}
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		json.NewEncoder(w).Encode(map[string]any{
			"candidates": []map[string]any{
				{"content": map[string]any{"parts": []map[string]any{
					{"inlineData": map[string]any{"mimeType": "audio/L16", "data": base64.StdEncoding.EncodeToString(pcm)}},
				}}},
			},
		})
	}))
	defer server.Close()

	client := NewClient(server.URL, "")
	got, err := client.GenerateAlertSpeech(context.Background(), "sanctions hit detected")
	if err != nil {
		t.Fatalf("speech failed: %v", err)
	}
	if len(got) != len(pcm) || got[0] != 0x01 {
		t.Errorf("unexpected audio payload: %v", got)
	}
}

func TestGenerateAlertSpeech_NoAudioPart(t *testing.T) {
	server := textServer(t, "cannot speak")
	defer server.Close()

	client := NewClient(server.URL, "")
	_, err := client.GenerateAlertSpeech(context.Background(), "hello")
	if !errors.Is(err, ErrMalformedResult) {
		t.Errorf("err = %v, want ErrMalformedResult", err)
	}
}

func TestChat_SendsHistory(t *testing.T) {
	var captured generateRequest
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		json.NewDecoder(r.Body).Decode(&captured)
		json.NewEncoder(w).Encode(map[string]any{
			"candidates": []map[string]any{
				{"content": map[string]any{"parts": []map[string]any{{"text": "CSDDD applies from 2027."}}}},
			},
		})
	}))
	defer server.Close()

	client := NewClient(server.URL, "")
	history := []ChatMessage{
		{Role: "user", Text: "What is CSDDD?"},
		{Role: "model", Text: "The EU due diligence directive."},
	}
	reply, err := client.Chat(context.Background(), history, "When does it apply?")
	if err != nil {
		t.Fatalf("chat failed: %v", err)
	}
	if reply != "CSDDD applies from 2027." {
		t.Errorf("unexpected reply: %q", reply)
	}
	if len(captured.Contents) != 3 {
		t.Errorf("sent %d contents, want history plus new message (3)", len(captured.Contents))
	}
	if captured.SystemInstruction == nil {
		t.Error("chat must carry the assistant system instruction")
	}
}

func TestNewClient_Defaults(t *testing.T) {
	client := NewClient("", "")
	if client.baseURL != defaultBaseURL {
		t.Errorf("baseURL = %q, want default", client.baseURL)
	}
	if client.flashModel == "" || client.proModel == "" || client.ttsModel == "" {
		t.Error("model defaults missing")
	}
}
