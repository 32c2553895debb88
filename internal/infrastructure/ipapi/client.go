package ipapi

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"

	"github.com/cadastral-mcp/internal/config"
	"github.com/cadastral-mcp/internal/domain"
	"github.com/cadastral-mcp/internal/domain/repository"
	"github.com/cadastral-mcp/internal/pkg/errors"
	"go.uber.org/zap"
)

type client struct {
	httpClient *http.Client
	checkURL   string
	logger     *zap.Logger
}

// NewClient создает клиент сервиса геолокации IP
func NewClient(cfg *config.GeoConfig, logger *zap.Logger) repository.GeoIPRepository {
	return &client{
		httpClient: &http.Client{
			Timeout: cfg.Timeout,
		},
		checkURL: cfg.CheckURL,
		logger:   logger,
	}
}

// Lookup определяет геолокацию исходящего IP одним запросом
func (c *client) Lookup(ctx context.Context) (*domain.IPLocation, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.checkURL, nil)
	if err != nil {
		return nil, errors.Wrap(errors.ErrTransport, fmt.Errorf("failed to create request: %w", err))
	}
	req.Header.Set("Accept", "application/json")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		c.logger.Warn("Geolocation request failed", zap.Error(err))
		return nil, errors.Wrap(errors.ErrTransport, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		body, _ := io.ReadAll(io.LimitReader(resp.Body, 1024))
		c.logger.Warn("Geolocation service returned error",
			zap.Int("status_code", resp.StatusCode),
			zap.String("body", string(body)))
		return nil, errors.Wrap(errors.ErrTransport,
			fmt.Errorf("geolocation service error: status %d", resp.StatusCode))
	}

	var location domain.IPLocation
	if err := json.NewDecoder(resp.Body).Decode(&location); err != nil {
		return nil, errors.Wrap(errors.ErrTransport, fmt.Errorf("failed to decode geolocation response: %w", err))
	}

	if location.Error {
		return nil, errors.Wrap(errors.ErrTransport, fmt.Errorf("geolocation service error: %s", location.Reason))
	}

	c.logger.Debug("Geolocation resolved",
		zap.String("country_code", domain.StringValue(location.CountryCode)),
		zap.String("city", domain.StringValue(location.City)))

	return &location, nil
}
