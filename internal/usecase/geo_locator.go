package usecase

import (
	"context"
	"strings"

	"go.uber.org/zap"

	"github.com/cadastral-mcp/internal/domain"
	"github.com/cadastral-mcp/internal/domain/repository"
)

// RegionDetector сообщает, находится ли исходящий IP в выделенном регионе
type RegionDetector interface {
	IsInDesignatedRegion(ctx context.Context) bool
}

// LocationResolver возвращает подробные данные о геолокации
type LocationResolver interface {
	ResolveLocation(ctx context.Context) (*domain.LocationInfo, error)
}

var (
	_ RegionDetector   = (*GeoLocator)(nil)
	_ LocationResolver = (*GeoLocator)(nil)
)

// GeoLocator определяет, откуда выходит в сеть текущий процесс
type GeoLocator struct {
	geoRepo repository.GeoIPRepository
	region  string
	logger  *zap.Logger
}

// NewGeoLocator создает GeoLocator для региона region (двухбуквенный код страны)
func NewGeoLocator(geoRepo repository.GeoIPRepository, region string, logger *zap.Logger) *GeoLocator {
	return &GeoLocator{
		geoRepo: geoRepo,
		region:  strings.ToUpper(region),
		logger:  logger,
	}
}

// ResolveLocation выполняет один запрос к сервису геолокации
func (g *GeoLocator) ResolveLocation(ctx context.Context) (*domain.LocationInfo, error) {
	ipLocation, err := g.geoRepo.Lookup(ctx)
	if err != nil {
		return nil, err
	}

	inRegion := strings.ToUpper(domain.StringValue(ipLocation.CountryCode)) == g.region

	return &domain.LocationInfo{
		IP:          ipLocation.IP,
		Country:     ipLocation.CountryName,
		CountryCode: ipLocation.CountryCode,
		City:        ipLocation.City,
		InRegion:    inRegion,
		WillUseAPI:  !inRegion,
	}, nil
}

// IsInDesignatedRegion возвращает false при любой ошибке геолокации:
// при неизвестном местоположении используется удалённый API.
func (g *GeoLocator) IsInDesignatedRegion(ctx context.Context) bool {
	location, err := g.ResolveLocation(ctx)
	if err != nil {
		g.logger.Warn("Geolocation failed, assuming outside designated region",
			zap.String("region", g.region),
			zap.Error(err))
		return false
	}
	return location.InRegion
}
