package dto

import "github.com/cadastral-mcp/internal/domain"

// Tool - описание инструмента для клиента протокола
type Tool struct {
	Name        string         `json:"name"`
	Description string         `json:"description"`
	InputSchema map[string]any `json:"inputSchema"`
}

// GetCoordinatesArgs - аргументы get_cadastral_coordinates
type GetCoordinatesArgs struct {
	CadastralNumber string `json:"cadastral_number" validate:"required"`
	AreaType        *int   `json:"area_type,omitempty"`
}

// BatchGetCoordinatesArgs - аргументы batch_get_cadastral_coordinates
type BatchGetCoordinatesArgs struct {
	CadastralNumbers []string `json:"cadastral_numbers" validate:"required,min=1"`
	AreaType         *int     `json:"area_type,omitempty"`
}

// ResolveAreaType возвращает area_type или значение по умолчанию
func ResolveAreaType(areaType *int) domain.AreaType {
	if areaType == nil {
		return domain.DefaultAreaType
	}
	return domain.AreaType(*areaType)
}

// BatchResult - ответ на пакетный запрос
type BatchResult struct {
	Total        int                      `json:"total"`
	SuccessCount int                      `json:"success_count"`
	Results      []domain.FetchResult     `json:"results"`
	GeoJSON      domain.FeatureCollection `json:"geojson"`
}

// ErrorPayload - структурированная ошибка, которую получает клиент
type ErrorPayload struct {
	Error string `json:"error"`
}
