package usecase_test

import (
	"context"
	"encoding/json"

	"github.com/stretchr/testify/mock"

	"github.com/cadastral-mcp/internal/domain"
	"github.com/cadastral-mcp/internal/domain/repository"
)

// MockCadastralAPIRepository is a mock of CadastralAPIRepository
type MockCadastralAPIRepository struct {
	mock.Mock
}

func (m *MockCadastralAPIRepository) GetArea(ctx context.Context, cadastralNumber string, areaType domain.AreaType) (domain.FetchResult, error) {
	args := m.Called(ctx, cadastralNumber, areaType)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(domain.FetchResult), args.Error(1)
}

// MockAreaParserRepository is a mock of AreaParserRepository
type MockAreaParserRepository struct {
	mock.Mock
}

func (m *MockAreaParserRepository) LoadFeature(ctx context.Context, query repository.AreaQuery) (json.RawMessage, error) {
	args := m.Called(ctx, query)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(json.RawMessage), args.Error(1)
}

// MockGeoIPRepository is a mock of GeoIPRepository
type MockGeoIPRepository struct {
	mock.Mock
}

func (m *MockGeoIPRepository) Lookup(ctx context.Context) (*domain.IPLocation, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.IPLocation), args.Error(1)
}

// MockFetchStrategy is a mock of FetchStrategy
type MockFetchStrategy struct {
	mock.Mock
	name string
}

func (m *MockFetchStrategy) Name() string {
	return m.name
}

func (m *MockFetchStrategy) Fetch(ctx context.Context, cadastralNumber string, areaType domain.AreaType) domain.FetchResult {
	args := m.Called(ctx, cadastralNumber, areaType)
	return args.Get(0).(domain.FetchResult)
}

// MockRegionDetector is a mock of RegionDetector
type MockRegionDetector struct {
	mock.Mock
}

func (m *MockRegionDetector) IsInDesignatedRegion(ctx context.Context) bool {
	args := m.Called(ctx)
	return args.Bool(0)
}

// MockLocationResolver is a mock of LocationResolver
type MockLocationResolver struct {
	mock.Mock
}

func (m *MockLocationResolver) ResolveLocation(ctx context.Context) (*domain.LocationInfo, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.LocationInfo), args.Error(1)
}

// MockCadastralRouter is a mock of CadastralRouter
type MockCadastralRouter struct {
	mock.Mock
}

func (m *MockCadastralRouter) Route(ctx context.Context, cadastralNumber string, areaType domain.AreaType, forceRemote bool) domain.FetchResult {
	args := m.Called(ctx, cadastralNumber, areaType, forceRemote)
	return args.Get(0).(domain.FetchResult)
}

func strPtr(s string) *string {
	return &s
}
