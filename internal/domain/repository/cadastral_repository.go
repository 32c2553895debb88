package repository

import (
	"context"
	"encoding/json"

	"github.com/cadastral-mcp/internal/domain"
)

// CadastralAPIRepository определяет методы удалённого API кадастровых данных
type CadastralAPIRepository interface {
	// GetArea возвращает тело ответа API для кадастрового номера как есть
	GetArea(ctx context.Context, cadastralNumber string, areaType domain.AreaType) (domain.FetchResult, error)
}

// AreaQuery - параметры прямого вызова библиотеки rosreestr2coord
type AreaQuery struct {
	Code     string
	AreaType domain.AreaType
	WithLog  bool
}

// AreaParserRepository определяет прямой вызов библиотеки разбора ПКК
type AreaParserRepository interface {
	// LoadFeature возвращает feature объекта в виде JSON.
	// Пустой результат означает, что данных по номеру нет.
	LoadFeature(ctx context.Context, query AreaQuery) (json.RawMessage, error)
}
