package gateway

import (
	"context"
	"math/rand"
	"strings"
	"sync"
	"time"

	"sofia-assistant/internal/model"
	"sofia-assistant/pkg/log"
	"sofia-assistant/pkg/sofiaai"
)

// Provider is the gateway-side view of the AI provider client.
type Provider interface {
	Generate(ctx context.Context, req *sofiaai.Request) (*sofiaai.Response, error)
	Configured() bool
}

// Config controls retry behavior and prompt bounding.
type Config struct {
	RetryAttempts      int
	RetryDelay         time.Duration
	MaxHistoryMessages int
}

// Gateway encapsulates calls to the external AI provider and degrades to a
// local mock path when the provider is unavailable. Its public methods never
// return an error: every failure is folded into the Response shape.
type Gateway struct {
	client Provider
	cfg    Config
	l      log.Logger

	mu  sync.Mutex
	rng *rand.Rand
}

// New creates a Gateway. rng may be nil, in which case a time-seeded source
// is used; tests inject a fixed seed for deterministic mock selection.
func New(client Provider, cfg Config, l log.Logger, rng *rand.Rand) *Gateway {
	if cfg.RetryAttempts < 1 {
		cfg.RetryAttempts = 1
	}
	if cfg.MaxHistoryMessages <= 0 {
		cfg.MaxHistoryMessages = 10
	}
	if rng == nil {
		rng = rand.New(rand.NewSource(time.Now().UnixNano()))
	}
	return &Gateway{client: client, cfg: cfg, l: l, rng: rng}
}

// IsAvailable reports whether the provider endpoint and credentials are
// configured. When false, every call transparently uses the mock path.
func (g *Gateway) IsAvailable() bool {
	return g.client.Configured()
}

// ProcessSimpleQuery interprets an open-ended question. On any transport or
// provider failure it returns a locally generated mock response instead of
// propagating the error. Cost tier is low_cost on both paths.
func (g *Gateway) ProcessSimpleQuery(ctx context.Context, req Request) Response {
	if !g.IsAvailable() {
		return g.mockResponse(ctx, req)
	}

	resp, err := g.generateWithRetry(ctx, g.buildProviderRequest(req, sofiaai.ActionSimpleQuery))
	if err != nil {
		g.l.Warnf(ctx, "%s: provider failed, using local fallback: %v", LogPrefixSimpleQuery, err)
		return g.mockResponse(ctx, req)
	}

	return Response{
		Success:    true,
		Text:       resp.Response,
		TokensUsed: resp.TokensUsed,
		CostTier:   model.CostLowCost,
	}
}

// ProcessPremiumGeneration generates premium content. Failures are surfaced
// as Success=false with a localized error string; the cost tier stays
// premium regardless of outcome, because the attempt was priced at premium.
func (g *Gateway) ProcessPremiumGeneration(ctx context.Context, req Request) Response {
	fail := func() Response {
		return Response{
			Success:  false,
			Err:      premiumErrorMessage(req.Context.Language),
			CostTier: model.CostPremium,
		}
	}

	if !g.IsAvailable() {
		g.l.Warnf(ctx, "%s: provider not configured", LogPrefixPremium)
		return fail()
	}

	resp, err := g.generateWithRetry(ctx, g.buildProviderRequest(req, sofiaai.ActionPremiumGeneration))
	if err != nil {
		g.l.Errorf(ctx, "%s: provider failed: %v", LogPrefixPremium, err)
		return fail()
	}

	return Response{
		Success:    true,
		Text:       resp.Response,
		TokensUsed: resp.TokensUsed,
		CostTier:   model.CostPremium,
	}
}

// generateWithRetry retries the provider call with linear backoff,
// respecting context cancellation between attempts.
func (g *Gateway) generateWithRetry(ctx context.Context, req *sofiaai.Request) (*sofiaai.Response, error) {
	var lastErr error

	for attempt := 0; attempt < g.cfg.RetryAttempts; attempt++ {
		if attempt > 0 {
			delay := time.Duration(attempt) * g.cfg.RetryDelay
			select {
			case <-time.After(delay):
			case <-ctx.Done():
				return nil, ctx.Err()
			}
		}

		resp, err := g.client.Generate(ctx, req)
		if err == nil {
			return resp, nil
		}
		lastErr = err
	}

	return nil, lastErr
}

// buildProviderRequest projects the dialog context onto the wire contract,
// bounding conversation history to the configured window.
func (g *Gateway) buildProviderRequest(req Request, action sofiaai.RequestAction) *sofiaai.Request {
	dctx := req.Context

	history := req.History
	if history == nil {
		history = dctx.ConversationHistory
	}
	if len(history) > g.cfg.MaxHistoryMessages {
		history = history[len(history)-g.cfg.MaxHistoryMessages:]
	}

	wireHistory := make([]sofiaai.HistoryMessage, len(history))
	for i, m := range history {
		wireHistory[i] = sofiaai.HistoryMessage{Role: m.Role, Content: m.Content}
	}

	return &sofiaai.Request{
		Action: action,
		Prompt: req.Prompt,
		Context: sofiaai.UserContext{
			UserID:               dctx.UserID,
			UserName:             dctx.UserName,
			DocumentCount:        dctx.DocumentCount,
			GuardianCount:        dctx.GuardianCount,
			CompletionPercentage: dctx.CompletionPercentage,
			FamilyStatus:         string(dctx.FamilyStatus),
			Language:             dctx.Language,
		},
		ConversationHistory: wireHistory,
	}
}

// mockResponse picks a canned answer pool by coarse prompt intent and a
// pool entry via the injected random source.
func (g *Gateway) mockResponse(ctx context.Context, req Request) Response {
	pool := mockPools[coarseIntent(req.Prompt)]

	g.mu.Lock()
	text := pool[g.rng.Intn(len(pool))]
	g.mu.Unlock()

	return Response{
		Success:  true,
		Text:     text,
		CostTier: model.CostLowCost,
	}
}

// coarseIntent buckets a prompt into one of the mock pools.
func coarseIntent(prompt string) string {
	lower := strings.ToLower(prompt)
	switch {
	case strings.Contains(lower, "document") || strings.Contains(lower, "upload"):
		return "documents"
	case strings.Contains(lower, "guardian"):
		return "guardians"
	case strings.Contains(lower, "legacy") || strings.Contains(lower, "will"):
		return "legacy"
	default:
		return "general"
	}
}

func premiumErrorMessage(language string) string {
	if msg, ok := premiumErrorMessages[language]; ok {
		return msg
	}
	return premiumErrorMessages["en"]
}
