package usecase

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"

	"go.uber.org/zap"

	"github.com/cadastral-mcp/internal/domain"
	"github.com/cadastral-mcp/internal/domain/repository"
	"github.com/cadastral-mcp/internal/pkg/errors"
)

// FetchStrategy - способ получения данных об объекте.
// Fetch никогда не возвращает ошибку: сбой источника превращается в {"error": ...}.
type FetchStrategy interface {
	Name() string
	Fetch(ctx context.Context, cadastralNumber string, areaType domain.AreaType) domain.FetchResult
}

var (
	_ FetchStrategy = (*RemoteAPIStrategy)(nil)
	_ FetchStrategy = (*DirectLibraryStrategy)(nil)
)

// RemoteAPIStrategy получает данные через удалённый API с bearer-токеном
type RemoteAPIStrategy struct {
	apiRepo repository.CadastralAPIRepository
	logger  *zap.Logger
}

// NewRemoteAPIStrategy создает стратегию удалённого API
func NewRemoteAPIStrategy(apiRepo repository.CadastralAPIRepository, logger *zap.Logger) *RemoteAPIStrategy {
	return &RemoteAPIStrategy{
		apiRepo: apiRepo,
		logger:  logger,
	}
}

func (s *RemoteAPIStrategy) Name() string {
	return "remote_api"
}

// Fetch выполняет один запрос к API без повторов
func (s *RemoteAPIStrategy) Fetch(ctx context.Context, cadastralNumber string, areaType domain.AreaType) domain.FetchResult {
	result, err := s.apiRepo.GetArea(ctx, cadastralNumber, areaType)
	if err != nil {
		s.logger.Warn("Remote API fetch failed",
			zap.String("cadastral_number", cadastralNumber),
			zap.String("code", errors.CodeOf(err)),
			zap.Error(err))
		return domain.NewErrorResult(errors.Message(err))
	}
	if result == nil {
		return domain.NewErrorResult(errors.ErrNoDataFound.Message)
	}
	return result
}

// DirectLibraryStrategy получает данные напрямую через rosreestr2coord
type DirectLibraryStrategy struct {
	parser repository.AreaParserRepository
	logger *zap.Logger
}

// NewDirectLibraryStrategy создает стратегию прямого вызова.
// parser == nil означает, что библиотека недоступна.
func NewDirectLibraryStrategy(parser repository.AreaParserRepository, logger *zap.Logger) *DirectLibraryStrategy {
	return &DirectLibraryStrategy{
		parser: parser,
		logger: logger,
	}
}

func (s *DirectLibraryStrategy) Name() string {
	return "direct_library"
}

// Fetch вызывает библиотеку с отключённым логированием и оборачивает feature
// в {"success": true, "data": {"features": [feature]}}
func (s *DirectLibraryStrategy) Fetch(ctx context.Context, cadastralNumber string, areaType domain.AreaType) (result domain.FetchResult) {
	if s.parser == nil {
		return domain.NewErrorResult(errors.ErrLibraryNotInstalled.Message)
	}

	defer func() {
		if r := recover(); r != nil {
			s.logger.Error("Direct library call panicked",
				zap.String("cadastral_number", cadastralNumber),
				zap.Any("panic", r))
			result = domain.NewErrorResult(fmt.Sprint(r))
		}
	}()

	raw, err := s.parser.LoadFeature(ctx, repository.AreaQuery{
		Code:     cadastralNumber,
		AreaType: areaType,
		WithLog:  false,
	})
	if err != nil {
		s.logger.Warn("Direct library fetch failed",
			zap.String("cadastral_number", cadastralNumber),
			zap.String("code", errors.CodeOf(err)),
			zap.Error(err))
		return domain.NewErrorResult(errors.Message(err))
	}

	feature, err := decodeFeature(raw)
	if err != nil {
		return domain.NewErrorResult(err.Error())
	}
	if feature == nil {
		return domain.NewErrorResult(errors.ErrNoDataFound.Message)
	}

	return domain.NewFeatureResult(feature)
}

// decodeFeature разбирает feature, сохраняя числа как json.Number.
// Пустой объект считается отсутствием данных.
func decodeFeature(raw json.RawMessage) (any, error) {
	if len(bytes.TrimSpace(raw)) == 0 {
		return nil, nil
	}

	decoder := json.NewDecoder(bytes.NewReader(raw))
	decoder.UseNumber()

	var feature any
	if err := decoder.Decode(&feature); err != nil {
		return nil, fmt.Errorf("malformed feature: %w", err)
	}
	if m, ok := feature.(map[string]any); ok && len(m) == 0 {
		return nil, nil
	}
	return feature, nil
}
