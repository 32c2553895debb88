package domain

// AreaType - код категории объекта в публичной кадастровой карте.
// Значение не проверяется по перечислению и передаётся источникам как есть.
type AreaType int

const (
	AreaTypeRealEstate      AreaType = 1  // ЗУ, ОКС
	AreaTypeCadastralDiv    AreaType = 2  // кадастровое деление
	AreaTypeAdminDiv        AreaType = 4  // административное деление
	AreaTypeZones           AreaType = 5  // зоны
	AreaTypeTerritorialZone AreaType = 7  // территориальные зоны
	AreaTypeComplexes       AreaType = 15 // комплексы

	DefaultAreaType = AreaTypeRealEstate
)

// FetchResult - ответ одного источника данных.
// Схема не фиксирована: либо {"success": true, "data": ...} (иногда с "geojson"),
// либо {"error": "..."}.
type FetchResult map[string]any

// NewErrorResult создаёт результат с описанием ошибки
func NewErrorResult(message string) FetchResult {
	return FetchResult{"error": message}
}

// NewFeatureResult оборачивает объект, полученный напрямую из библиотеки
func NewFeatureResult(feature any) FetchResult {
	return FetchResult{
		"success": true,
		"data": map[string]any{
			"features": []any{feature},
		},
	}
}

// Succeeded возвращает true, только если поле success - булево true
func (r FetchResult) Succeeded() bool {
	ok, _ := r["success"].(bool)
	return ok
}

// GeoJSON возвращает геометрию результата, если поле geojson присутствует и не null
func (r FetchResult) GeoJSON() (any, bool) {
	v, ok := r["geojson"]
	if !ok || v == nil {
		return nil, false
	}
	return v, true
}

// ErrorMessage возвращает текст ошибки, если результат ошибочный
func (r FetchResult) ErrorMessage() (string, bool) {
	v, ok := r["error"]
	if !ok || v == nil {
		return "", false
	}
	if s, ok := v.(string); ok {
		return s, true
	}
	return "", true
}

// FeatureCollection - контейнер GeoJSON для пакетных ответов
type FeatureCollection struct {
	Type     string `json:"type"`
	Features []any  `json:"features"`
}

// NewFeatureCollection создаёт пустую коллекцию; features всегда сериализуется как массив
func NewFeatureCollection() FeatureCollection {
	return FeatureCollection{
		Type:     "FeatureCollection",
		Features: make([]any, 0),
	}
}
