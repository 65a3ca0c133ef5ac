package ai

import (
	"context"
	"errors"
	"fmt"

	"go.uber.org/zap"

	"github.com/johnquangdev/sales-copilot/internal/domain/entities"
	pkgai "github.com/johnquangdev/sales-copilot/pkg/ai"
	"github.com/johnquangdev/sales-copilot/pkg/config"
	"github.com/johnquangdev/sales-copilot/pkg/reqcontext"
)

// Messages returned inside error analyses
const (
	MissingKeySummary = "Error: GROQ_API_KEY not configured. Please set your Groq API key in the .env file."
	MissingKeyInsight = "AI configuration needed"
	callErrorPrefix   = "Error calling Groq API: "
)

// Completer sends a single prompt to the model and returns its text.
// Failures of the external call must be reported as *pkgai.CallError.
type Completer interface {
	Complete(ctx context.Context, prompt string) (string, error)
}

// Gateway defines the model boundary used by the analysis use cases
type Gateway interface {
	// Generate never fails because of the model service: external-call
	// failures come back as an error-status Analysis with a nil error.
	// A non-nil error means something unexpected (e.g. cancellation).
	Generate(ctx context.Context, prompt string) (entities.Analysis, error)
}

type gateway struct {
	completer Completer
	logger    *zap.Logger
}

// NewGateway creates a model gateway. A nil completer means no API key is
// configured; every Generate call then short-circuits without network access.
func NewGateway(completer Completer, logger *zap.Logger) Gateway {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &gateway{completer: completer, logger: logger}
}

// NewGatewayForConfig wires completer only when an API key is configured
func NewGatewayForConfig(cfg *config.GroqConfig, completer Completer, logger *zap.Logger) Gateway {
	if cfg == nil || cfg.APIKey == "" {
		completer = nil
	}
	return NewGateway(completer, logger)
}

func (g *gateway) Generate(ctx context.Context, prompt string) (entities.Analysis, error) {
	if g.completer == nil {
		g.logger.Warn("groq api key not configured, skipping model call", reqcontext.Fields(ctx)...)
		return entities.NewErrorAnalysis(MissingKeySummary, MissingKeyInsight), nil
	}

	text, err := g.completer.Complete(ctx, prompt)
	if err != nil {
		var callErr *pkgai.CallError
		if errors.As(err, &callErr) {
			g.logger.Warn("groq call failed",
				append(reqcontext.Fields(ctx),
					zap.Int("status_code", callErr.StatusCode),
					zap.Error(err),
				)...,
			)
			return entities.NewErrorAnalysis(callErrorPrefix + err.Error()), nil
		}
		return entities.Analysis{}, fmt.Errorf("generate analysis: %w", err)
	}

	g.logger.Debug("groq call succeeded",
		append(reqcontext.Fields(ctx), zap.Int("summary_length", len(text)))...,
	)
	return entities.NewSuccessAnalysis(text), nil
}
