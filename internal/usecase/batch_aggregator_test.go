package usecase_test

import (
	"context"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"go.uber.org/zap/zaptest/observer"

	"github.com/cadastral-mcp/internal/domain"
	"github.com/cadastral-mcp/internal/usecase"
)

func TestBatchAggregator_Run(t *testing.T) {
	logger := zap.NewNop()
	ctx := context.Background()

	t.Run("success with geojson and error", func(t *testing.T) {
		router := &MockCadastralRouter{}
		geometry := map[string]any{"type": "Feature", "geometry": map[string]any{"type": "Polygon"}}
		router.On("Route", ctx, "A", domain.AreaType(1), false).
			Return(domain.FetchResult{"success": true, "data": map[string]any{}, "geojson": geometry})
		router.On("Route", ctx, "B", domain.AreaType(1), false).
			Return(domain.NewErrorResult("No data found for this cadastral number"))

		result := usecase.NewBatchAggregator(router, false, logger).Run(ctx, []string{"A", "B"}, 1)

		assert.Equal(t, 2, result.Total)
		assert.Equal(t, 1, result.SuccessCount)
		require.Len(t, result.Results, 2)
		assert.True(t, result.Results[0].Succeeded())
		assert.False(t, result.Results[1].Succeeded())
		assert.Equal(t, "FeatureCollection", result.GeoJSON.Type)
		require.Len(t, result.GeoJSON.Features, 1)
		assert.Equal(t, geometry, result.GeoJSON.Features[0])
	})

	t.Run("preserves input order", func(t *testing.T) {
		router := &MockCadastralRouter{}
		numbers := make([]string, 0, 10)
		for i := 0; i < 10; i++ {
			cn := fmt.Sprintf("77:01:0001001:%d", i)
			numbers = append(numbers, cn)
			router.On("Route", ctx, cn, domain.AreaType(4), false).
				Return(domain.FetchResult{"success": true, "data": map[string]any{"cn": cn}})
		}

		result := usecase.NewBatchAggregator(router, false, logger).Run(ctx, numbers, 4)

		assert.Equal(t, len(numbers), result.Total)
		require.Len(t, result.Results, len(numbers))
		for i, r := range result.Results {
			assert.Equal(t, numbers[i], r["data"].(map[string]any)["cn"])
		}
	})

	t.Run("successful results without geojson are counted but not collected", func(t *testing.T) {
		router := &MockCadastralRouter{}
		router.On("Route", ctx, "A", domain.AreaType(1), false).
			Return(domain.NewFeatureResult(map[string]any{"type": "Feature"}))
		router.On("Route", ctx, "B", domain.AreaType(1), false).
			Return(domain.FetchResult{"success": true, "geojson": nil})

		result := usecase.NewBatchAggregator(router, false, logger).Run(ctx, []string{"A", "B"}, 1)

		assert.Equal(t, 2, result.SuccessCount)
		assert.NotNil(t, result.GeoJSON.Features)
		assert.Empty(t, result.GeoJSON.Features)
		assert.LessOrEqual(t, len(result.GeoJSON.Features), result.SuccessCount)
	})

	t.Run("geojson on failed result is ignored", func(t *testing.T) {
		router := &MockCadastralRouter{}
		router.On("Route", ctx, "A", domain.AreaType(1), false).
			Return(domain.FetchResult{"success": false, "geojson": map[string]any{"type": "Feature"}})

		result := usecase.NewBatchAggregator(router, false, logger).Run(ctx, []string{"A"}, 1)

		assert.Equal(t, 0, result.SuccessCount)
		assert.Empty(t, result.GeoJSON.Features)
	})

	t.Run("duplicates are fetched each time", func(t *testing.T) {
		router := &MockCadastralRouter{}
		router.On("Route", ctx, "A", domain.AreaType(1), true).
			Return(domain.NewErrorResult("ROSREESTR_API_TOKEN not configured"))

		result := usecase.NewBatchAggregator(router, true, logger).Run(ctx, []string{"A", "A", "A"}, 1)

		assert.Equal(t, 3, result.Total)
		assert.Len(t, result.Results, 3)
		router.AssertNumberOfCalls(t, "Route", 3)
	})

	t.Run("calls are sequential", func(t *testing.T) {
		router := &MockCadastralRouter{}
		var seen []string
		router.On("Route", ctx, mock.AnythingOfType("string"), domain.AreaType(1), false).
			Run(func(args mock.Arguments) {
				seen = append(seen, args.String(1))
			}).
			Return(domain.NewErrorResult("x"))

		usecase.NewBatchAggregator(router, false, logger).Run(ctx, []string{"c", "a", "b"}, 1)

		assert.Equal(t, []string{"c", "a", "b"}, seen)
	})

	t.Run("failed items are logged with their error", func(t *testing.T) {
		core, logs := observer.New(zapcore.DebugLevel)
		router := &MockCadastralRouter{}
		router.On("Route", ctx, "A", domain.AreaType(1), false).
			Return(domain.NewErrorResult("No data found for this cadastral number"))

		usecase.NewBatchAggregator(router, false, zap.New(core)).Run(ctx, []string{"A"}, 1)

		entries := logs.FilterMessage("Batch item failed").All()
		require.Len(t, entries, 1)
		assert.Equal(t, "A", entries[0].ContextMap()["cadastral_number"])
		assert.Equal(t, "No data found for this cadastral number", entries[0].ContextMap()["error"])
	})
}
