package service

import (
	"context"
	"errors"
	"testing"

	"github.com/decryptorventure/taxgo-app/internal/integrations/gemini"
	"github.com/decryptorventure/taxgo-app/internal/model"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type stubAssistantClient struct {
	enabled bool
	reply   string
	invoice *gemini.InvoiceData
	err     error
}

func (s *stubAssistantClient) Enabled() bool { return s.enabled }

func (s *stubAssistantClient) Chat(ctx context.Context, history []gemini.Message, newMessage string) (string, error) {
	return s.reply, s.err
}

func (s *stubAssistantClient) AnalyzeInvoice(ctx context.Context, imageBase64 string) (*gemini.InvoiceData, error) {
	return s.invoice, s.err
}

func TestAssistantService_ChatDemoModeWithoutKey(t *testing.T) {
	svc := NewAssistantService(&stubAssistantClient{enabled: false}, testLogger())

	res := svc.Chat(context.Background(), ChatRequest{Message: "Thuế khoán là gì?"})
	assert.Contains(t, res.Reply, "chế độ demo")
}

func TestAssistantService_ChatApologizesOnFailure(t *testing.T) {
	svc := NewAssistantService(&stubAssistantClient{enabled: true, err: errors.New("boom")}, testLogger())

	res := svc.Chat(context.Background(), ChatRequest{Message: "xin chào"})
	assert.Contains(t, res.Reply, "Xin lỗi")
}

func TestAssistantService_ChatPassthrough(t *testing.T) {
	svc := NewAssistantService(&stubAssistantClient{enabled: true, reply: "Thuế GTGT là 1%."}, testLogger())

	res := svc.Chat(context.Background(), ChatRequest{
		History: []gemini.Message{{Role: "user", Text: "chào"}, {Role: "model", Text: "chào bạn"}},
		Message: "thuế bao nhiêu?",
	})
	assert.Equal(t, "Thuế GTGT là 1%.", res.Reply)
}

func TestAssistantService_ScanInvoiceAbsentWithoutKey(t *testing.T) {
	svc := NewAssistantService(&stubAssistantClient{enabled: false}, testLogger())

	res := svc.ScanInvoice(context.Background(), ScanInvoiceRequest{ImageBase64: "aGVsbG8="})
	assert.False(t, res.Found)
	assert.Nil(t, res.Invoice)
}

func TestAssistantService_ScanInvoiceAbsentOnFailure(t *testing.T) {
	svc := NewAssistantService(&stubAssistantClient{enabled: true, err: errors.New("timeout")}, testLogger())

	res := svc.ScanInvoice(context.Background(), ScanInvoiceRequest{ImageBase64: "aGVsbG8="})
	assert.False(t, res.Found)
}

func TestAssistantService_ScanInvoiceSuccess(t *testing.T) {
	svc := NewAssistantService(&stubAssistantClient{
		enabled: true,
		invoice: &gemini.InvoiceData{Amount: 1_200_000, Date: "2025-05-10", Description: "Tiền điện", Category: model.CategoryUtilities},
	}, testLogger())

	res := svc.ScanInvoice(context.Background(), ScanInvoiceRequest{ImageBase64: "aGVsbG8="})
	require.True(t, res.Found)
	assert.Equal(t, model.CategoryUtilities, res.Invoice.Category)
	assert.Equal(t, "Tiền điện", res.Invoice.Description)
}

func TestAssistantService_ScanInvoiceCoercesUnknownCategory(t *testing.T) {
	svc := NewAssistantService(&stubAssistantClient{
		enabled: true,
		invoice: &gemini.InvoiceData{Amount: 50_000, Description: "Ăn trưa", Category: "FOOD"},
	}, testLogger())

	res := svc.ScanInvoice(context.Background(), ScanInvoiceRequest{ImageBase64: "aGVsbG8="})
	require.True(t, res.Found)
	assert.Equal(t, model.CategoryOther, res.Invoice.Category)
}
