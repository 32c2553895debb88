package rosreestr

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strconv"

	"github.com/cadastral-mcp/internal/config"
	"github.com/cadastral-mcp/internal/domain"
	"github.com/cadastral-mcp/internal/domain/repository"
	"github.com/cadastral-mcp/internal/pkg/errors"
	"go.uber.org/zap"
)

// maxErrorBodySize ограничивает размер тела ответа, попадающего в текст ошибки
const maxErrorBodySize = 4 << 10

type client struct {
	httpClient *http.Client
	baseURL    string
	apiToken   string
	logger     *zap.Logger
}

// NewClient создает клиент удалённого API кадастровых данных
func NewClient(cfg *config.RosreestrConfig, logger *zap.Logger) repository.CadastralAPIRepository {
	return NewClientWithHTTP(cfg, &http.Client{Timeout: cfg.RequestTimeout}, logger)
}

// NewClientWithHTTP создает клиент с заданным http.Client (транспорт подменяется в тестах)
func NewClientWithHTTP(cfg *config.RosreestrConfig, httpClient *http.Client, logger *zap.Logger) repository.CadastralAPIRepository {
	return &client{
		httpClient: httpClient,
		baseURL:    cfg.BaseURL,
		apiToken:   cfg.APIToken,
		logger:     logger,
	}
}

// GetArea запрашивает объект по кадастровому номеру. Один запрос, без повторов.
func (c *client) GetArea(
	ctx context.Context,
	cadastralNumber string,
	areaType domain.AreaType,
) (domain.FetchResult, error) {
	if c.apiToken == "" {
		return nil, errors.ErrAPITokenNotConfigured
	}

	query := url.Values{}
	query.Set("area_type", strconv.Itoa(int(areaType)))
	endpoint := fmt.Sprintf("%s/api/cadastral/%s?%s",
		c.baseURL,
		url.PathEscape(cadastralNumber),
		query.Encode(),
	)

	c.logger.Debug("Calling Rosreestr API",
		zap.String("url", endpoint),
		zap.String("cadastral_number", cadastralNumber),
		zap.Int("area_type", int(areaType)))

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, endpoint, nil)
	if err != nil {
		c.logger.Error("Failed to create request", zap.Error(err))
		return nil, errors.Wrap(errors.ErrTransport, fmt.Errorf("failed to create request: %w", err))
	}
	req.Header.Set("Authorization", "Bearer "+c.apiToken)
	req.Header.Set("Accept", "application/json")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		c.logger.Error("Failed to execute request", zap.Error(err))
		return nil, errors.Wrap(errors.ErrTransport, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		body, _ := io.ReadAll(io.LimitReader(resp.Body, maxErrorBodySize))
		c.logger.Error("Rosreestr API returned error",
			zap.Int("status_code", resp.StatusCode),
			zap.String("body", string(body)))
		return nil, errors.Wrap(errors.ErrTransport,
			fmt.Errorf("rosreestr API error: status %d, body: %s", resp.StatusCode, string(bytes.TrimSpace(body))))
	}

	var result domain.FetchResult
	decoder := json.NewDecoder(resp.Body)
	decoder.UseNumber()
	if err := decoder.Decode(&result); err != nil {
		c.logger.Error("Failed to decode response", zap.Error(err))
		return nil, errors.Wrap(errors.ErrTransport, fmt.Errorf("failed to decode response: %w", err))
	}
	if result == nil {
		return nil, errors.Wrap(errors.ErrTransport, fmt.Errorf("failed to decode response: empty body"))
	}

	c.logger.Debug("Rosreestr API call successful",
		zap.String("cadastral_number", cadastralNumber),
		zap.Bool("success", result.Succeeded()))

	return result, nil
}
