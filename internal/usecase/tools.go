package usecase

import "github.com/cadastral-mcp/internal/usecase/dto"

const (
	ToolGetCadastralCoordinates      = "get_cadastral_coordinates"
	ToolBatchGetCadastralCoordinates = "batch_get_cadastral_coordinates"
	ToolCheckIPLocation              = "check_ip_location"
)

// toolDefinitions - описание инструментов и JSON-схемы их аргументов
func toolDefinitions() []dto.Tool {
	return []dto.Tool{
		{
			Name: ToolGetCadastralCoordinates,
			Description: "Получить координаты и информацию об объекте недвижимости по кадастровому номеру. " +
				"Возвращает GeoJSON геометрию, адрес, площадь, стоимость и другие данные.",
			InputSchema: map[string]any{
				"type": "object",
				"properties": map[string]any{
					"cadastral_number": map[string]any{
						"type":        "string",
						"description": "Кадастровый номер (например: 12:05:0101001:1)",
					},
					"area_type": map[string]any{
						"type": "integer",
						"description": "Тип объекта: 1-Недвижимость (ЗУ, ОКС), 2-Кадастровое деление, " +
							"4-Адм.деление, 5-Зоны, 7-Терр.зоны, 15-Комплексы. По умолчанию: 1",
						"default": 1,
					},
				},
				"required": []string{"cadastral_number"},
			},
		},
		{
			Name:        ToolBatchGetCadastralCoordinates,
			Description: "Пакетное получение данных для нескольких кадастровых номеров",
			InputSchema: map[string]any{
				"type": "object",
				"properties": map[string]any{
					"cadastral_numbers": map[string]any{
						"type":        "array",
						"items":       map[string]any{"type": "string"},
						"description": "Список кадастровых номеров",
					},
					"area_type": map[string]any{
						"type":        "integer",
						"description": "Тип объекта (см. get_cadastral_coordinates)",
						"default":     1,
					},
				},
				"required": []string{"cadastral_numbers"},
			},
		},
		{
			Name:        ToolCheckIPLocation,
			Description: "Проверить текущую геолокацию IP адреса (для диагностики)",
			InputSchema: map[string]any{
				"type":       "object",
				"properties": map[string]any{},
			},
		},
	}
}
