package payment

import (
	"context"
	"fmt"
	"strings"

	"onelastevent/internal/model"
	"onelastevent/pkg/logger"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

const ProviderMock = "mock"

// Intent 在付款供應商建立的付款意圖。
type Intent struct {
	ProviderPaymentID string
	ClientSecret      *string
}

// Processor 付款供應商介面。實際扣款在供應商端發生，
// 結果經由 webhook 或手動完成端點回報。
type Processor interface {
	Name() string
	CreateIntent(ctx context.Context, p *model.Payment) (*Intent, error)
	Refund(ctx context.Context, providerPaymentID string) error
}

// MockProcessor 本地假供應商，永遠成功建立意圖。
// 扣款結果由 complete 端點模擬。
type MockProcessor struct{}

func NewMockProcessor() Processor {
	return &MockProcessor{}
}

func (m *MockProcessor) Name() string {
	return ProviderMock
}

func (m *MockProcessor) CreateIntent(ctx context.Context, p *model.Payment) (*Intent, error) {
	suffix := strings.ReplaceAll(uuid.New().String(), "-", "")[:16]
	secret := fmt.Sprintf("mock_secret_%s", suffix)

	logger.WithComponent("payment").Info("mock payment intent created",
		zap.String("payment_id", p.ID.String()),
		zap.Float64("amount", p.Amount),
		zap.String("currency", p.Currency))

	return &Intent{
		ProviderPaymentID: fmt.Sprintf("mock_pi_%s", suffix),
		ClientSecret:      &secret,
	}, nil
}

func (m *MockProcessor) Refund(ctx context.Context, providerPaymentID string) error {
	logger.WithComponent("payment").Info("mock refund issued",
		zap.String("provider_payment_id", providerPaymentID))
	return nil
}
