package usecase_test

import (
	"context"

	"sofia-assistant/internal/gateway"
	"sofia-assistant/internal/knowledge"
	"sofia-assistant/internal/model"
)

// Mock logger for testing
type mockLogger struct{}

func (m *mockLogger) Debug(ctx context.Context, arg ...any)                    {}
func (m *mockLogger) Debugf(ctx context.Context, template string, arg ...any)  {}
func (m *mockLogger) Info(ctx context.Context, arg ...any)                     {}
func (m *mockLogger) Infof(ctx context.Context, template string, arg ...any)   {}
func (m *mockLogger) Warn(ctx context.Context, arg ...any)                     {}
func (m *mockLogger) Warnf(ctx context.Context, template string, arg ...any)   {}
func (m *mockLogger) Error(ctx context.Context, arg ...any)                    {}
func (m *mockLogger) Errorf(ctx context.Context, template string, arg ...any)  {}
func (m *mockLogger) Fatal(ctx context.Context, arg ...any)                    {}
func (m *mockLogger) Fatalf(ctx context.Context, template string, arg ...any)  {}
func (m *mockLogger) DPanic(ctx context.Context, arg ...any)                   {}
func (m *mockLogger) DPanicf(ctx context.Context, template string, arg ...any) {}
func (m *mockLogger) Panic(ctx context.Context, arg ...any)                    {}
func (m *mockLogger) Panicf(ctx context.Context, template string, arg ...any)  {}

// mockKnowledge implements knowledge.Service with a func field.
type mockKnowledge struct {
	getAnswerFunc func(topicID string, dctx model.DialogContext) (knowledge.Answer, error)
}

func (m *mockKnowledge) GetAnswer(ctx context.Context, topicID string, dctx model.DialogContext) (knowledge.Answer, error) {
	if m.getAnswerFunc == nil {
		return knowledge.Answer{}, knowledge.ErrTopicNotFound
	}
	return m.getAnswerFunc(topicID, dctx)
}

// mockGateway implements Generator with func fields.
type mockGateway struct {
	available   bool
	simpleFunc  func(req gateway.Request) gateway.Response
	premiumFunc func(req gateway.Request) gateway.Response
}

func (m *mockGateway) IsAvailable() bool { return m.available }

func (m *mockGateway) ProcessSimpleQuery(ctx context.Context, req gateway.Request) gateway.Response {
	if m.simpleFunc == nil {
		return gateway.Response{Success: true, Text: "mock simple answer", CostTier: model.CostLowCost}
	}
	return m.simpleFunc(req)
}

func (m *mockGateway) ProcessPremiumGeneration(ctx context.Context, req gateway.Request) gateway.Response {
	if m.premiumFunc == nil {
		return gateway.Response{Success: true, Text: "mock premium content", CostTier: model.CostPremium}
	}
	return m.premiumFunc(req)
}
