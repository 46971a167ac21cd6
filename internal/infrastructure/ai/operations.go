package ai

import (
	"context"
	"encoding/base64"
	"encoding/json"
	"fmt"

	"github.com/supplyguard/supplyguard-api/internal/domain/entities"
)

// ValidationResult is the capability's verdict on questionnaire responses.
type ValidationResult struct {
	Score           int      `json:"score"`
	Feedback        string   `json:"feedback"`
	Inconsistencies []string `json:"inconsistencies"`
}

// ExtractedSupplier is the business information read out of an uploaded
// registration document or invoice.
type ExtractedSupplier struct {
	Name               string `json:"name"`
	LegalName          string `json:"legalName"`
	Country            string `json:"country"`
	Address            string `json:"address"`
	Industry           string `json:"industry"`
	RegistrationNumber string `json:"registrationNumber"`
}

// SupplierRow is one supplier parsed out of an uploaded tabular list.
type SupplierRow struct {
	Name         string  `json:"name"`
	LegalName    string  `json:"legalName"`
	Country      string  `json:"country"`
	Industry     string  `json:"industry"`
	Address      string  `json:"address"`
	City         string  `json:"city"`
	AnnualVolume float64 `json:"annualVolume"`
}

// ChatMessage is one turn of the assistant transcript.
type ChatMessage struct {
	Role string `json:"role"` // "user" or "model"
	Text string `json:"text"`
}

const assistantInstruction = "You are SupplyGuard Assistant, a professional ESG and supply chain compliance expert. You help users navigate CSDDD and other EU regulations. Be precise, professional, and focus on risk mitigation."

// AnalyzeNews searches recent compliance and ESG news for a supplier and
// returns a free-text risk summary.
func (c *Client) AnalyzeNews(ctx context.Context, supplierName string) (string, error) {
	prompt := fmt.Sprintf(`Analyze the latest compliance and ESG related news for the company %q. Identify potential risks such as labor violations, environmental issues, corruption, or sanctions.`, supplierName)
	resp, err := c.generate(ctx, c.flashModel, generateRequest{
		Contents: userText(prompt),
		Tools:    []tool{{GoogleSearch: &struct{}{}}},
	})
	if err != nil {
		return "", err
	}
	return resp.firstText()
}

// ValidateResponses scores questionnaire responses for truthfulness,
// consistency and risk.
func (c *Client) ValidateResponses(ctx context.Context, responses map[string]string) (ValidationResult, error) {
	raw, _ := json.MarshalIndent(responses, "", "  ")
	prompt := fmt.Sprintf(`As an ESG compliance auditor, evaluate these questionnaire responses for truthfulness, consistency, and risk.

Responses:
%s

Provide an overall compliance score (0-100) and highlight any red flags or inconsistencies. Respond with a JSON object {"score": integer, "feedback": string, "inconsistencies": [string]}.`, raw)

	resp, err := c.generate(ctx, c.proModel, generateRequest{
		Contents:         userText(prompt),
		GenerationConfig: &generationConfig{ResponseMimeType: "application/json"},
	})
	if err != nil {
		return ValidationResult{}, err
	}
	text, err := resp.firstText()
	if err != nil {
		return ValidationResult{}, err
	}

	var result ValidationResult
	if err := json.Unmarshal([]byte(stripFences(text)), &result); err != nil {
		return ValidationResult{}, fmt.Errorf("%w: validation verdict: %v", ErrMalformedResult, err)
	}
	if result.Score < 0 || result.Score > 100 {
		return ValidationResult{}, fmt.Errorf("%w: score %d outside 0-100", ErrMalformedResult, result.Score)
	}
	return result, nil
}

// ExtractFromDocument reads business information out of an uploaded document
// (image or PDF).
func (c *Client) ExtractFromDocument(ctx context.Context, data []byte, mimeType string) (ExtractedSupplier, error) {
	resp, err := c.generate(ctx, c.proModel, generateRequest{
		Contents: []content{{
			Role: "user",
			Parts: []part{
				{InlineData: &inlineData{MimeType: mimeType, Data: base64.StdEncoding.EncodeToString(data)}},
				{Text: "Extract all business information from this document. Return JSON with fields: name, legalName, country, address, industry, registrationNumber."},
			},
		}},
		GenerationConfig: &generationConfig{ResponseMimeType: "application/json"},
	})
	if err != nil {
		return ExtractedSupplier{}, err
	}
	text, err := resp.firstText()
	if err != nil {
		return ExtractedSupplier{}, err
	}

	var out ExtractedSupplier
	if err := json.Unmarshal([]byte(stripFences(text)), &out); err != nil {
		return ExtractedSupplier{}, fmt.Errorf("%w: extraction payload: %v", ErrMalformedResult, err)
	}
	if out.Name == "" {
		return ExtractedSupplier{}, fmt.Errorf("%w: extraction payload has no name", ErrMalformedResult)
	}
	return out, nil
}

// ParseTabularList maps raw CSV text onto supplier rows. Rows the model
// returns without the required name/country/industry fields are dropped
// rather than failing the whole batch; only an unparseable top-level payload
// is an error.
func (c *Client) ParseTabularList(ctx context.Context, rawText string) ([]SupplierRow, error) {
	prompt := fmt.Sprintf(`Parse the following CSV data into a JSON array of supplier objects.
Required fields: name, country, industry.
Optional fields: legalName, address, city, annualVolume.

CSV Data:
%s

Return ONLY a valid JSON array.`, rawText)

	resp, err := c.generate(ctx, c.flashModel, generateRequest{
		Contents:         userText(prompt),
		GenerationConfig: &generationConfig{ResponseMimeType: "application/json"},
	})
	if err != nil {
		return nil, err
	}
	text, err := resp.firstText()
	if err != nil {
		return nil, err
	}

	var rawRows []json.RawMessage
	if err := json.Unmarshal([]byte(stripFences(text)), &rawRows); err != nil {
		return nil, fmt.Errorf("%w: supplier list payload: %v", ErrMalformedResult, err)
	}
	rows := make([]SupplierRow, 0, len(rawRows))
	for _, raw := range rawRows {
		var row SupplierRow
		if err := json.Unmarshal(raw, &row); err != nil {
			continue
		}
		if row.Name == "" || row.Country == "" || row.Industry == "" {
			continue
		}
		rows = append(rows, row)
	}
	return rows, nil
}

// DeepRiskAssessment produces a long-form assessment of one supplier with
// concrete action recommendations.
func (c *Client) DeepRiskAssessment(ctx context.Context, supplier entities.Supplier) (string, error) {
	raw, _ := json.MarshalIndent(supplier, "", "  ")
	prompt := fmt.Sprintf(`As a professional supply chain compliance officer, perform a deep risk assessment for the following supplier:
%s

Evaluate potential CSDDD violations and provide 3-5 concrete action recommendations.`, raw)

	resp, err := c.generate(ctx, c.proModel, generateRequest{
		Contents:         userText(prompt),
		GenerationConfig: &generationConfig{ThinkingBudget: 32768},
	})
	if err != nil {
		return "", err
	}
	return resp.firstText()
}

// GenerateAlertSpeech renders an alert summary as speech and returns the
// decoded PCM payload.
func (c *Client) GenerateAlertSpeech(ctx context.Context, text string) ([]byte, error) {
	resp, err := c.generate(ctx, c.ttsModel, generateRequest{
		Contents: userText("Attention compliance officer: " + text),
		GenerationConfig: &generationConfig{
			ResponseModalities: []string{"AUDIO"},
			SpeechConfig:       &speechConfig{VoiceConfig: voiceConfig{PrebuiltVoiceConfig: prebuiltVoice{VoiceName: "Kore"}}},
		},
	})
	if err != nil {
		return nil, err
	}
	for _, cand := range resp.Candidates {
		for _, p := range cand.Content.Parts {
			if p.InlineData != nil && p.InlineData.Data != "" {
				audio, err := base64.StdEncoding.DecodeString(p.InlineData.Data)
				if err != nil {
					return nil, fmt.Errorf("%w: audio payload: %v", ErrMalformedResult, err)
				}
				return audio, nil
			}
		}
	}
	return nil, fmt.Errorf("%w: no audio part in response", ErrMalformedResult)
}

// Chat continues an assistant conversation and returns the model's reply.
func (c *Client) Chat(ctx context.Context, history []ChatMessage, message string) (string, error) {
	contents := make([]content, 0, len(history)+1)
	for _, m := range history {
		contents = append(contents, content{Role: m.Role, Parts: []part{{Text: m.Text}}})
	}
	contents = append(contents, content{Role: "user", Parts: []part{{Text: message}}})

	resp, err := c.generate(ctx, c.proModel, generateRequest{
		Contents:          contents,
		SystemInstruction: &content{Parts: []part{{Text: assistantInstruction}}},
	})
	if err != nil {
		return "", err
	}
	return resp.firstText()
}
