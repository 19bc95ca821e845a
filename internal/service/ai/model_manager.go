package ai

import (
	"context"
	"encoding/json"
	"fmt"
	"regexp"
	"strconv"
	"strings"
	"time"

	"go.uber.org/zap"
	"google.golang.org/genai"

	"github.com/tunescope/tunescope-go/internal/constants"
	"github.com/tunescope/tunescope-go/internal/util"
	perrors "github.com/tunescope/tunescope-go/pkg/errors"
)

// ModelManager drives JSON-mode generation against Gemini with an optional
// OpenAI fallback, guarded by a shared circuit breaker.
type ModelManager struct {
	gemini         *GeminiProvider
	openai         *OpenAIProvider
	logger         *zap.Logger
	enableFallback bool
	circuitBreaker *util.CircuitBreaker
}

type ModelManagerConfig struct {
	GeminiAPIKey       string
	OpenAIAPIKey       string
	DefaultGeminiModel string
	DefaultOpenAIModel string
	EnableFallback     bool
}

func NewModelManager(ctx context.Context, cfg ModelManagerConfig, logger *zap.Logger) (*ModelManager, error) {
	geminiClient, err := genai.NewClient(ctx, &genai.ClientConfig{
		APIKey:  cfg.GeminiAPIKey,
		Backend: genai.BackendGeminiAPI,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to create Gemini client: %w", err)
	}

	defaultGemini := cfg.DefaultGeminiModel
	if defaultGemini == "" {
		defaultGemini = "gemini-2.5-flash"
	}

	defaultOpenAI := cfg.DefaultOpenAIModel
	if defaultOpenAI == "" {
		defaultOpenAI = "gpt-4o-mini"
	}

	mm := &ModelManager{
		gemini:         NewGeminiProvider(geminiClient, defaultGemini, logger),
		logger:         logger,
		enableFallback: cfg.EnableFallback && cfg.OpenAIAPIKey != "",
	}

	if cfg.OpenAIAPIKey != "" {
		mm.openai = NewOpenAIProvider(cfg.OpenAIAPIKey, defaultOpenAI, logger)
		logger.Info("OpenAI fallback enabled", zap.String("model", defaultOpenAI))
	} else {
		logger.Info("OpenAI fallback disabled (no API key)")
	}

	mm.circuitBreaker = util.NewCircuitBreaker(
		constants.CircuitBreakerConfig.FailureThreshold,
		constants.CircuitBreakerConfig.ResetTimeout,
		constants.CircuitBreakerConfig.HealthCheckInterval,
		mm.healthCheckPing,
		logger,
	)

	return mm, nil
}

// GenerateJSON prompts the primary provider, falls back if configured, and
// unmarshals the response into dest. Markdown code fences around the JSON
// are tolerated.
func (mm *ModelManager) GenerateJSON(ctx context.Context, prompt string, preset ModelPreset, dest any, opts *GenerateOptions) (*GenerateMetadata, error) {
	if !mm.circuitBreaker.CanExecute() {
		status := mm.circuitBreaker.GetStatus()
		nextRetry := "unknown"
		if status.NextRetryTime != nil {
			nextRetry = status.NextRetryTime.Format(time.RFC3339)
		}

		mm.logger.Error("AI service unavailable (Circuit OPEN)",
			zap.String("state", status.State.String()),
			zap.Int("failure_count", status.FailureCount),
			zap.String("next_retry", nextRetry),
		)

		return nil, perrors.NewQuotaError("AI service temporarily unavailable", "circuit", nil)
	}

	if opts == nil {
		opts = &GenerateOptions{}
	}
	opts.JSONMode = true

	var text string
	var metadata *GenerateMetadata

	geminiResult, geminiErr := mm.gemini.Generate(ctx, prompt, preset, opts)
	if geminiErr == nil {
		mm.circuitBreaker.RecordSuccess()
		text = geminiResult.Text
		metadata = &GenerateMetadata{
			Provider:     mm.gemini.Name(),
			Model:        geminiResult.Model,
			UsedFallback: false,
		}
	} else if mm.enableFallback && mm.openai != nil {
		openaiResult, openaiErr := mm.openai.Generate(ctx, prompt, preset, opts)
		if openaiErr != nil {
			mm.recordClassifiedFailure(geminiErr, openaiErr)
			return nil, mm.classify(openaiErr)
		}
		mm.circuitBreaker.RecordSuccess()
		text = openaiResult.Text
		metadata = &GenerateMetadata{
			Provider:     mm.openai.Name(),
			Model:        openaiResult.Model,
			UsedFallback: true,
		}
	} else {
		mm.recordClassifiedFailure(geminiErr, nil)
		return nil, mm.classify(geminiErr)
	}

	cleaned := ExtractJSON(text)
	if cleaned == "" {
		return nil, perrors.NewMalformedResponseError(
			fmt.Sprintf("%s API returned empty response", metadata.Provider), "", nil)
	}

	if err := json.Unmarshal([]byte(cleaned), dest); err != nil {
		previewLen := util.Min(len(cleaned), 200)
		mm.logger.Error("Failed to unmarshal JSON response",
			zap.String("provider", metadata.Provider),
			zap.Error(err),
			zap.String("response_preview", cleaned[:previewLen]),
		)
		return nil, perrors.NewMalformedResponseError(
			fmt.Sprintf("invalid JSON from %s", metadata.Provider), cleaned[:previewLen], err)
	}

	return metadata, nil
}

// ExtractJSON strips a surrounding markdown code fence, if any, returning
// the trimmed payload.
func ExtractJSON(text string) string {
	cleaned := strings.TrimSpace(text)
	if strings.HasPrefix(cleaned, "```json") {
		cleaned = strings.TrimPrefix(cleaned, "```json")
		cleaned = strings.TrimSpace(cleaned)
	} else if strings.HasPrefix(cleaned, "```") {
		cleaned = strings.TrimPrefix(cleaned, "```")
		cleaned = strings.TrimSpace(cleaned)
	}
	if strings.HasSuffix(cleaned, "```") {
		cleaned = strings.TrimSuffix(cleaned, "```")
		cleaned = strings.TrimSpace(cleaned)
	}
	return cleaned
}

func (mm *ModelManager) recordClassifiedFailure(errs ...error) {
	service := false
	rateLimited := false
	for _, err := range errs {
		if isServiceFailure(err) {
			service = true
		}
		if isRateLimitError(err) {
			rateLimited = true
		}
	}
	if !service {
		return
	}
	timeout := constants.CircuitBreakerConfig.ResetTimeout
	if rateLimited {
		timeout = constants.CircuitBreakerConfig.RateLimitTimeout
	}
	mm.circuitBreaker.RecordFailure(timeout)
}

// classify maps a raw provider error to the typed error the HTTP layer
// understands.
func (mm *ModelManager) classify(err error) error {
	switch {
	case isRateLimitError(err):
		return perrors.NewQuotaError("AI provider quota exceeded", "model", err)
	case isCredentialError(err):
		return perrors.NewCredentialError("AI provider credentials rejected", "model", err)
	default:
		return perrors.NewServiceError("AI generation failed", "model", "generate", err)
	}
}

func (mm *ModelManager) healthCheckPing() bool {
	mm.logger.Info("Health Check: Testing AI services...")

	ctx, cancel := context.WithTimeout(context.Background(), constants.CircuitBreakerConfig.HealthCheckTimeout)
	defer cancel()

	geminiOK := mm.gemini.Ping(ctx)
	openaiOK := false

	if mm.enableFallback && mm.openai != nil {
		openaiOK = mm.openai.Ping(ctx)
	}

	isHealthy := geminiOK || openaiOK

	mm.logger.Info("Health Check: Result",
		zap.Bool("gemini", geminiOK),
		zap.Bool("openai", openaiOK),
		zap.Bool("healthy", isHealthy),
	)

	return isHealthy
}

func (mm *ModelManager) GetCircuitStatus() util.CircuitBreakerStatus {
	return mm.circuitBreaker.GetStatus()
}

func (mm *ModelManager) ResetCircuit() {
	mm.circuitBreaker.Reset()
}

var (
	embeddedCodeRegex = regexp.MustCompile(`"code":(\d{3})`)
	leadingCodeRegex  = regexp.MustCompile(`^(\d{3})\s`)
	statusRegex       = regexp.MustCompile(`\b(5\d{2})\b`)
)

func isServiceFailure(err error) bool {
	if err == nil {
		return false
	}

	msg := err.Error()

	if strings.Contains(msg, "timeout") || strings.Contains(msg, "ETIMEDOUT") {
		return true
	}

	if isRateLimitError(err) {
		return true
	}

	if statusRegex.MatchString(msg) {
		return true
	}

	if code, ok := embeddedCode(msg); ok {
		return code >= 500 && code < 600
	}

	return false
}

func isRateLimitError(err error) bool {
	if err == nil {
		return false
	}

	msg := err.Error()

	if strings.Contains(msg, "429") || strings.Contains(msg, "Rate limit") || strings.Contains(msg, "quota") {
		return true
	}

	if code, ok := embeddedCode(msg); ok {
		return code == 429
	}

	return false
}

func isCredentialError(err error) bool {
	if err == nil {
		return false
	}

	msg := err.Error()

	if strings.Contains(msg, "401") || strings.Contains(msg, "API key") || strings.Contains(msg, "Unauthorized") {
		return true
	}

	if code, ok := embeddedCode(msg); ok {
		return code == 401 || code == 403
	}

	return false
}

// embeddedCode pulls an HTTP status code out of a provider error message,
// either in a JSON body ("code":NNN) or as a leading "NNN " prefix.
func embeddedCode(msg string) (int, bool) {
	if matches := embeddedCodeRegex.FindStringSubmatch(msg); len(matches) > 1 {
		if code, err := strconv.Atoi(matches[1]); err == nil {
			return code, true
		}
	}
	if matches := leadingCodeRegex.FindStringSubmatch(msg); len(matches) > 1 {
		if code, err := strconv.Atoi(matches[1]); err == nil {
			return code, true
		}
	}
	return 0, false
}
