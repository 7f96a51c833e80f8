package untappdweb

import (
	"net/url"

	"go.uber.org/zap"
)

const (
	IntegrationName = "untappd_web"
	userAgent       = "Mozilla/5.0 (X11; Ubuntu; Linux x86_64; rv:15.0) Gecko/20100101 Firefox/15.0.1"
)

type UntappedWebIntegration struct {
	baseURL *url.URL
	logger  *zap.Logger
}

func NewUntappedWebIntegration(baseURL string, logger *zap.Logger) (*UntappedWebIntegration, error) {
	parsed, err := url.Parse(baseURL)
	if err != nil {
		return nil, err
	}

	return &UntappedWebIntegration{baseURL: parsed, logger: logger}, nil
}

func (u *UntappedWebIntegration) Name() string {
	return IntegrationName
}
