package integrations

import (
	"context"

	"go.uber.org/zap"

	"droscher.com/BrewWolf/configs"
	"droscher.com/BrewWolf/pkg/integrations/untappd-web"
	"droscher.com/BrewWolf/pkg/model"
)

type Integration interface {
	Name() string
	FindBeer(ctx context.Context, query string) ([]model.Beer, error)
}

func GetIntegration(name string, conf *configs.Config, logger *zap.Logger) Integration {
	if name == untappdweb.IntegrationName {
		integration, err := untappdweb.NewUntappedWebIntegration(conf.Integrations.UntappdURL, logger)
		if err != nil {
			logger.Error("invalid untappd url", zap.String("url", conf.Integrations.UntappdURL), zap.Error(err))

			return nil
		}

		return integration
	}

	return nil
}

// FromConfig builds every configured integration, skipping unknown names.
func FromConfig(conf *configs.Config, logger *zap.Logger) []Integration {
	found := make([]Integration, 0, len(conf.Integrations.Beer))

	for _, name := range conf.Integrations.Beer {
		integration := GetIntegration(name, conf, logger)
		if integration == nil {
			logger.Warn("unknown beer integration", zap.String("integration", name))

			continue
		}

		found = append(found, integration)
	}

	return found
}
