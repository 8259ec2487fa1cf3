package generation

import (
	"log/slog"
	"strings"

	"draftdeck/internal/config"
	"draftdeck/internal/domain/services"
	"draftdeck/internal/service/generation/providers/anthropic"
	"draftdeck/internal/service/generation/providers/lorem"
)

// SetupProvider selects and constructs the text generation provider
// once at startup. With an Anthropic key configured the real provider
// is used; otherwise the offline lorem provider keeps the service
// usable for development.
func SetupProvider(cfg *config.Config, logger *slog.Logger) (services.TextGenerator, error) {
	model := cfg.GenerationModel

	if cfg.AnthropicAPIKey != "" && !strings.HasPrefix(model, "lorem-") {
		provider, err := anthropic.NewProvider(cfg.AnthropicAPIKey)
		if err != nil {
			return nil, err
		}
		logger.Info("text generation provider available", "name", provider.Name(), "models", "claude-*")
		return provider, nil
	}

	logger.Warn("ANTHROPIC_API_KEY not set - using lorem placeholder provider")
	return lorem.NewProvider(), nil
}
