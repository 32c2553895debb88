package usecase_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"go.uber.org/zap"

	"github.com/cadastral-mcp/internal/domain"
	"github.com/cadastral-mcp/internal/usecase"
)

func TestRouter_Route(t *testing.T) {
	logger := zap.NewNop()
	ctx := context.Background()

	remoteResult := domain.FetchResult{"success": true, "data": map[string]any{"source": "api"}}
	directResult := domain.FetchResult{"success": true, "data": map[string]any{"source": "direct"}}

	t.Run("force remote skips geolocation", func(t *testing.T) {
		remote := &MockFetchStrategy{name: "remote_api"}
		direct := &MockFetchStrategy{name: "direct_library"}
		detector := &MockRegionDetector{}
		remote.On("Fetch", ctx, "12:05:0101001:1", domain.AreaType(1)).Return(remoteResult)

		router := usecase.NewRouter(remote, direct, detector, logger)
		result := router.Route(ctx, "12:05:0101001:1", 1, true)

		assert.Equal(t, remoteResult, result)
		detector.AssertNotCalled(t, "IsInDesignatedRegion", ctx)
		direct.AssertNotCalled(t, "Fetch", ctx, "12:05:0101001:1", domain.AreaType(1))
	})

	t.Run("outside region uses remote api", func(t *testing.T) {
		remote := &MockFetchStrategy{name: "remote_api"}
		direct := &MockFetchStrategy{name: "direct_library"}
		detector := &MockRegionDetector{}
		detector.On("IsInDesignatedRegion", ctx).Return(false)
		remote.On("Fetch", ctx, "12:05:0101001:1", domain.AreaType(2)).Return(remoteResult)

		router := usecase.NewRouter(remote, direct, detector, logger)
		result := router.Route(ctx, "12:05:0101001:1", 2, false)

		assert.Equal(t, remoteResult, result)
		detector.AssertNumberOfCalls(t, "IsInDesignatedRegion", 1)
		direct.AssertNotCalled(t, "Fetch", ctx, "12:05:0101001:1", domain.AreaType(2))
	})

	t.Run("inside region uses direct library", func(t *testing.T) {
		remote := &MockFetchStrategy{name: "remote_api"}
		direct := &MockFetchStrategy{name: "direct_library"}
		detector := &MockRegionDetector{}
		detector.On("IsInDesignatedRegion", ctx).Return(true)
		direct.On("Fetch", ctx, "12:05:0101001:1", domain.AreaType(1)).Return(directResult)

		router := usecase.NewRouter(remote, direct, detector, logger)
		result := router.Route(ctx, "12:05:0101001:1", 1, false)

		assert.Equal(t, directResult, result)
		remote.AssertNotCalled(t, "Fetch", ctx, "12:05:0101001:1", domain.AreaType(1))
	})

	t.Run("no fallback when selected strategy fails", func(t *testing.T) {
		remote := &MockFetchStrategy{name: "remote_api"}
		direct := &MockFetchStrategy{name: "direct_library"}
		detector := &MockRegionDetector{}
		failure := domain.NewErrorResult("rosreestr2coord not installed")
		detector.On("IsInDesignatedRegion", ctx).Return(true)
		direct.On("Fetch", ctx, "12:05:0101001:1", domain.AreaType(1)).Return(failure)

		router := usecase.NewRouter(remote, direct, detector, logger)
		result := router.Route(ctx, "12:05:0101001:1", 1, false)

		assert.Equal(t, failure, result)
		remote.AssertNotCalled(t, "Fetch", ctx, "12:05:0101001:1", domain.AreaType(1))
	})

	t.Run("invalid area type is forwarded as is", func(t *testing.T) {
		remote := &MockFetchStrategy{name: "remote_api"}
		direct := &MockFetchStrategy{name: "direct_library"}
		detector := &MockRegionDetector{}
		remote.On("Fetch", ctx, "1:1:1:1", domain.AreaType(99)).Return(remoteResult)

		router := usecase.NewRouter(remote, direct, detector, logger)
		router.Route(ctx, "1:1:1:1", 99, true)

		remote.AssertExpectations(t)
	})
}

func TestRouter_GeolocationFailureFallsOpenToRemote(t *testing.T) {
	logger := zap.NewNop()
	ctx := context.Background()

	geoRepo := &MockGeoIPRepository{}
	geoRepo.On("Lookup", ctx).Return(nil, context.DeadlineExceeded)

	remote := &MockFetchStrategy{name: "remote_api"}
	direct := &MockFetchStrategy{name: "direct_library"}
	remote.On("Fetch", ctx, "12:05:0101001:1", domain.AreaType(1)).
		Return(domain.NewErrorResult("ROSREESTR_API_TOKEN not configured"))

	router := usecase.NewRouter(remote, direct, usecase.NewGeoLocator(geoRepo, "RU", logger), logger)
	result := router.Route(ctx, "12:05:0101001:1", 1, false)

	assert.Equal(t, domain.FetchResult{"error": "ROSREESTR_API_TOKEN not configured"}, result)
	remote.AssertExpectations(t)
	direct.AssertNotCalled(t, "Fetch", ctx, "12:05:0101001:1", domain.AreaType(1))
}
