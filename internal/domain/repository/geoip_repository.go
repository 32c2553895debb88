package repository

import (
	"context"

	"github.com/cadastral-mcp/internal/domain"
)

// GeoIPRepository определяет методы сервиса геолокации исходящего IP
type GeoIPRepository interface {
	// Lookup выполняет один запрос к сервису и возвращает данные о текущем IP
	Lookup(ctx context.Context) (*domain.IPLocation, error)
}
