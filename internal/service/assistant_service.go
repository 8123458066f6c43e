package service

import (
	"context"

	"github.com/decryptorventure/taxgo-app/internal/integrations/gemini"
	"github.com/decryptorventure/taxgo-app/internal/model"
	"github.com/sirupsen/logrus"
)

// Canned replies. The assistant never surfaces transport or auth failures to
// the user; it degrades to these strings instead.
const (
	demoReply = "Xin chào! Tôi là trợ lý ảo TaxGo. Hiện tại tôi đang chạy ở chế độ demo do chưa có API Key. " +
		"Tôi có thể giúp bạn giải đáp các thắc mắc về Thông tư 40, cách tính thuế khoán và kê khai thuế."
	apologyReply = "Xin lỗi, hiện tại tôi không thể kết nối với máy chủ. Vui lòng thử lại sau."
)

// --- DTOs ---

type ChatRequest struct {
	History []gemini.Message `json:"history"`
	Message string           `json:"message" binding:"required,min=1"`
}

type ChatResponse struct {
	Reply string `json:"reply"`
}

type ScanInvoiceRequest struct {
	ImageBase64 string `json:"image_base64" binding:"required"`
}

type ScanInvoiceResponse struct {
	Found   bool                `json:"found"`
	Invoice *gemini.InvoiceData `json:"invoice,omitempty"`
}

// --- Interface ---

// AssistantClient is the external language-model collaborator. Implemented
// by gemini.Client.
type AssistantClient interface {
	Enabled() bool
	Chat(ctx context.Context, history []gemini.Message, newMessage string) (string, error)
	AnalyzeInvoice(ctx context.Context, imageBase64 string) (*gemini.InvoiceData, error)
}

type AssistantService interface {
	Chat(ctx context.Context, req ChatRequest) ChatResponse
	ScanInvoice(ctx context.Context, req ScanInvoiceRequest) ScanInvoiceResponse
}

type assistantService struct {
	client AssistantClient
	log    *logrus.Logger
}

func NewAssistantService(client AssistantClient, log *logrus.Logger) AssistantService {
	return &assistantService{client: client, log: log}
}

// --- Implementation ---

// Chat runs one conversation turn. Failures are logged and converted to a
// canned apology; the caller always gets a reply.
func (s *assistantService) Chat(ctx context.Context, req ChatRequest) ChatResponse {
	if !s.client.Enabled() {
		return ChatResponse{Reply: demoReply}
	}

	reply, err := s.client.Chat(ctx, req.History, req.Message)
	if err != nil {
		s.log.Errorf("Assistant chat failed: %v", err)
		return ChatResponse{Reply: apologyReply}
	}
	return ChatResponse{Reply: reply}
}

// ScanInvoice extracts transaction data from a receipt image. A missing API
// key or a failed call yields Found=false so the client falls back to manual
// entry; it is never an error. A category outside the known set is coerced
// to OTHER rather than rejecting the extraction.
func (s *assistantService) ScanInvoice(ctx context.Context, req ScanInvoiceRequest) ScanInvoiceResponse {
	if !s.client.Enabled() {
		s.log.Warn("No API key configured for receipt scanning")
		return ScanInvoiceResponse{Found: false}
	}

	data, err := s.client.AnalyzeInvoice(ctx, req.ImageBase64)
	if err != nil {
		s.log.Errorf("Receipt analysis failed: %v", err)
		return ScanInvoiceResponse{Found: false}
	}

	if !model.IsExpenseCategory(data.Category) {
		data.Category = model.CategoryOther
	}

	return ScanInvoiceResponse{Found: true, Invoice: data}
}
