package gemini

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"time"

	"github.com/decryptorventure/taxgo-app/internal/config"
	"github.com/sirupsen/logrus"
)

const defaultBaseURL = "https://generativelanguage.googleapis.com/v1beta"

// system persona for the chat assistant
const systemInstruction = `Bạn là TaxGo AI, một chuyên gia về thuế hộ kinh doanh tại Việt Nam.
Nhiệm vụ của bạn là giải thích các quy định thuế (Thông tư 40/2021/TT-BTC),
cảnh báo rủi ro phạt, và hướng dẫn kê khai.
Hãy trả lời ngắn gọn, dễ hiểu, giọng điệu chuyên nghiệp và hỗ trợ.
Không đưa ra lời khuyên trốn thuế. Luôn khuyến khích tuân thủ pháp luật.`

const extractionPrompt = `Analyze this receipt/invoice image and extract the following information in JSON format:
1. 'amount': The total monetary amount (number only).
2. 'date': The date of transaction in YYYY-MM-DD format.
3. 'description': A short summary of the items or service.
4. 'category': ONE of the following values based on content: 'SUPPLIES', 'RENT', 'UTILITIES', 'MARKETING', 'SALARY', 'OTHER'.`

// Message is one prior conversation turn.
type Message struct {
	Role string `json:"role" binding:"required,oneof=user model"`
	Text string `json:"text" binding:"required"`
}

// InvoiceData is the structured result of a receipt-image extraction.
type InvoiceData struct {
	Amount      float64 `json:"amount"`
	Date        string  `json:"date"`
	Description string  `json:"description"`
	Category    string  `json:"category"`
}

// Client talks to the Gemini generateContent API. Calls are single shot: no
// retry, no streaming.
type Client struct {
	apiKey  string
	model   string
	baseURL string
	client  *http.Client
	log     *logrus.Logger
}

// NewClient initializes a Gemini client from config. An empty API key leaves
// the client disabled; callers are expected to check Enabled and fall back.
func NewClient(cfg *config.Config, log *logrus.Logger) *Client {
	return &Client{
		apiKey:  cfg.GeminiAPIKey,
		model:   cfg.GeminiModel,
		baseURL: defaultBaseURL,
		client: &http.Client{
			Timeout: 60 * time.Second,
		},
		log: log,
	}
}

// Enabled reports whether an API key is configured.
func (c *Client) Enabled() bool {
	return c.apiKey != ""
}

// --- wire types ---

type part struct {
	Text       string      `json:"text,omitempty"`
	InlineData *inlineData `json:"inline_data,omitempty"`
}

type inlineData struct {
	MimeType string `json:"mime_type"`
	Data     string `json:"data"`
}

type content struct {
	Role  string `json:"role,omitempty"`
	Parts []part `json:"parts"`
}

type generationConfig struct {
	ResponseMimeType string          `json:"response_mime_type,omitempty"`
	ResponseSchema   json.RawMessage `json:"response_schema,omitempty"`
}

type generateRequest struct {
	SystemInstruction *content          `json:"system_instruction,omitempty"`
	Contents          []content         `json:"contents"`
	GenerationConfig  *generationConfig `json:"generation_config,omitempty"`
}

type generateResponse struct {
	Candidates []struct {
		Content struct {
			Parts []struct {
				Text string `json:"text"`
			} `json:"parts"`
		} `json:"content"`
	} `json:"candidates"`
	Error *struct {
		Code    int    `json:"code"`
		Message string `json:"message"`
	} `json:"error"`
}

var invoiceSchema = json.RawMessage(`{
	"type": "OBJECT",
	"properties": {
		"amount": {"type": "NUMBER"},
		"date": {"type": "STRING"},
		"description": {"type": "STRING"},
		"category": {"type": "STRING", "enum": ["SUPPLIES", "RENT", "UTILITIES", "MARKETING", "SALARY", "OTHER"]}
	},
	"required": ["amount", "description", "category"]
}`)

// Chat submits the conversation so far plus one new user message and returns
// the model's reply text.
func (c *Client) Chat(ctx context.Context, history []Message, newMessage string) (string, error) {
	contents := make([]content, 0, len(history)+1)
	for _, m := range history {
		contents = append(contents, content{Role: m.Role, Parts: []part{{Text: m.Text}}})
	}
	contents = append(contents, content{Role: "user", Parts: []part{{Text: newMessage}}})

	req := generateRequest{
		SystemInstruction: &content{Parts: []part{{Text: systemInstruction}}},
		Contents:          contents,
	}

	return c.generate(ctx, req)
}

// AnalyzeInvoice submits a base64-encoded receipt image and requests a
// schema-constrained JSON extraction.
func (c *Client) AnalyzeInvoice(ctx context.Context, imageBase64 string) (*InvoiceData, error) {
	req := generateRequest{
		Contents: []content{{
			Role: "user",
			Parts: []part{
				{InlineData: &inlineData{MimeType: "image/jpeg", Data: imageBase64}},
				{Text: extractionPrompt},
			},
		}},
		GenerationConfig: &generationConfig{
			ResponseMimeType: "application/json",
			ResponseSchema:   invoiceSchema,
		},
	}

	text, err := c.generate(ctx, req)
	if err != nil {
		return nil, err
	}

	var data InvoiceData
	if err := json.Unmarshal([]byte(text), &data); err != nil {
		return nil, fmt.Errorf("failed to parse extraction result: %w", err)
	}
	return &data, nil
}

// generate sends one generateContent request and returns the first
// candidate's text.
func (c *Client) generate(ctx context.Context, reqBody generateRequest) (string, error) {
	payload, err := json.Marshal(reqBody)
	if err != nil {
		return "", fmt.Errorf("failed to build request: %w", err)
	}

	url := fmt.Sprintf("%s/models/%s:generateContent?key=%s", c.baseURL, c.model, c.apiKey)
	httpReq, err := http.NewRequestWithContext(ctx, http.MethodPost, url, bytes.NewBuffer(payload))
	if err != nil {
		return "", fmt.Errorf("failed to create request: %w", err)
	}
	httpReq.Header.Set("Content-Type", "application/json")

	resp, err := c.client.Do(httpReq)
	if err != nil {
		return "", fmt.Errorf("request failed: %w", err)
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return "", fmt.Errorf("failed to read response: %w", err)
	}

	if resp.StatusCode != http.StatusOK {
		c.log.Debugf("Gemini error response: %s", string(body))
		return "", fmt.Errorf("unexpected status code: %d", resp.StatusCode)
	}

	var parsed generateResponse
	if err := json.Unmarshal(body, &parsed); err != nil {
		return "", fmt.Errorf("failed to parse response: %w", err)
	}
	if parsed.Error != nil {
		return "", fmt.Errorf("gemini error %d: %s", parsed.Error.Code, parsed.Error.Message)
	}
	if len(parsed.Candidates) == 0 || len(parsed.Candidates[0].Content.Parts) == 0 {
		return "", fmt.Errorf("empty response from model")
	}

	return parsed.Candidates[0].Content.Parts[0].Text, nil
}
