package usecase

import (
	"context"

	"go.uber.org/zap"

	"github.com/cadastral-mcp/internal/domain"
	"github.com/cadastral-mcp/internal/usecase/dto"
)

// BatchAggregator обрабатывает список номеров последовательно, по одному
// вызову Router на номер. Порядок результатов совпадает с порядком входа.
type BatchAggregator struct {
	router      CadastralRouter
	forceRemote bool
	logger      *zap.Logger
}

// NewBatchAggregator создает BatchAggregator
func NewBatchAggregator(router CadastralRouter, forceRemote bool, logger *zap.Logger) *BatchAggregator {
	return &BatchAggregator{
		router:      router,
		forceRemote: forceRemote,
		logger:      logger,
	}
}

// Run ожидает непустой список: пустой вход отклоняется на уровне диспетчера.
func (b *BatchAggregator) Run(ctx context.Context, cadastralNumbers []string, areaType domain.AreaType) *dto.BatchResult {
	b.logger.Info("Batch lookup started",
		zap.Int("total", len(cadastralNumbers)),
		zap.Int("area_type", int(areaType)))

	results := make([]domain.FetchResult, 0, len(cadastralNumbers))
	for _, cn := range cadastralNumbers {
		results = append(results, b.router.Route(ctx, cn, areaType, b.forceRemote))
	}

	collection := domain.NewFeatureCollection()
	successCount := 0
	for i, r := range results {
		if !r.Succeeded() {
			if msg, ok := r.ErrorMessage(); ok {
				b.logger.Debug("Batch item failed",
					zap.String("cadastral_number", cadastralNumbers[i]),
					zap.String("error", msg))
			}
			continue
		}
		successCount++

		// В коллекцию попадают только успешные результаты с полем geojson
		if geo, ok := r.GeoJSON(); ok {
			collection.Features = append(collection.Features, geo)
		}
	}

	b.logger.Info("Batch lookup completed",
		zap.Int("total", len(cadastralNumbers)),
		zap.Int("success", successCount),
		zap.Int("errors", len(cadastralNumbers)-successCount),
		zap.Int("features", len(collection.Features)))

	return &dto.BatchResult{
		Total:        len(cadastralNumbers),
		SuccessCount: successCount,
		Results:      results,
		GeoJSON:      collection,
	}
}
