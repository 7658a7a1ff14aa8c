package llm

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/tmc/langchaingo/llms"
	"github.com/tmc/langchaingo/llms/googleai"
	"go.uber.org/zap"

	"quiz-brief/internal/config"
	"quiz-brief/internal/domain"
)

// CompletionClient implements domain.CompletionClient on top of a langchaingo model.
type CompletionClient struct {
	model       llms.Model
	modelName   string
	timeout     time.Duration
	temperature float64
	logger      *zap.Logger
}

// Option configures a CompletionClient.
type Option func(*CompletionClient)

// WithTimeout bounds every outbound call.
func WithTimeout(d time.Duration) Option {
	return func(c *CompletionClient) { c.timeout = d }
}

// WithTemperature sets the sampling temperature sent with every call.
func WithTemperature(t float64) Option {
	return func(c *CompletionClient) { c.temperature = t }
}

// WithLogger sets the logger. The default is a no-op logger.
func WithLogger(l *zap.Logger) Option {
	return func(c *CompletionClient) { c.logger = l }
}

// NewCompletionClient wraps any langchaingo model. modelName is used for
// logging and for the per-call model option.
func NewCompletionClient(model llms.Model, modelName string, opts ...Option) (*CompletionClient, error) {
	if model == nil {
		return nil, fmt.Errorf("llm model cannot be nil")
	}
	if modelName == "" {
		return nil, fmt.Errorf("model name cannot be empty")
	}
	c := &CompletionClient{
		model:       model,
		modelName:   modelName,
		timeout:     30 * time.Second,
		temperature: 0.2,
		logger:      zap.NewNop(),
	}
	for _, opt := range opts {
		opt(c)
	}
	return c, nil
}

// NewGeminiCompletionClient builds the production client backed by the
// Gemini API. The credential is checked before any network activity.
func NewGeminiCompletionClient(ctx context.Context, cfg config.GeminiConfig, logger *zap.Logger) (*CompletionClient, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	if logger == nil {
		logger = zap.NewNop()
	}

	logger.Info("Initializing Gemini completion client", zap.String("model", cfg.Model))
	model, err := googleai.New(ctx,
		googleai.WithAPIKey(cfg.APIKey),
		googleai.WithDefaultModel(cfg.Model),
	)
	if err != nil {
		return nil, domain.NewLLMServiceError(fmt.Errorf("failed to create Gemini client: %w", err))
	}

	return NewCompletionClient(model, cfg.Model,
		WithTimeout(cfg.Timeout),
		WithTemperature(cfg.Temperature),
		WithLogger(logger),
	)
}

// Complete implements domain.CompletionClient. It makes exactly one call.
func (c *CompletionClient) Complete(ctx context.Context, promptText, systemInstruction string) (string, error) {
	if strings.TrimSpace(promptText) == "" {
		return "", domain.NewInvalidInputError("prompt text cannot be empty")
	}
	if strings.TrimSpace(systemInstruction) == "" {
		return "", domain.NewInvalidInputError("system instruction cannot be empty")
	}

	fullPrompt := systemInstruction + "\n\n" + promptText

	callCtx, cancel := context.WithTimeout(ctx, c.timeout)
	defer cancel()

	start := time.Now()
	response, err := llms.GenerateFromSinglePrompt(callCtx, c.model, fullPrompt,
		llms.WithModel(c.modelName),
		llms.WithTemperature(c.temperature),
	)
	if err != nil {
		if errors.Is(err, context.DeadlineExceeded) || errors.Is(callCtx.Err(), context.DeadlineExceeded) {
			c.logger.Error("LLM request timed out", zap.Error(err), zap.Duration("timeout", c.timeout))
			return "", domain.NewLLMServiceError(fmt.Errorf("LLM request timed out: %w", err))
		}
		c.logger.Error("Failed to get response from LLM", zap.Error(err), zap.String("model", c.modelName))
		return "", domain.NewLLMServiceError(fmt.Errorf("LLM call failed: %w", err))
	}

	text := strings.TrimSpace(response)
	if text == "" {
		c.logger.Error("LLM returned an empty response", zap.String("model", c.modelName))
		return "", domain.NewLLMServiceError(errors.New("empty response from model"))
	}

	c.logger.Debug("LLM call completed",
		zap.String("model", c.modelName),
		zap.Duration("duration", time.Since(start)),
		zap.Int("response_chars", len(text)),
	)
	return text, nil
}

var _ domain.CompletionClient = (*CompletionClient)(nil)
