package domain

// IPLocation - ответ сервиса геолокации IP (формат ipapi.co).
// Поля, которых нет в ответе, остаются nil и сериализуются как null.
type IPLocation struct {
	IP          *string `json:"ip"`
	CountryName *string `json:"country_name"`
	CountryCode *string `json:"country_code"`
	City        *string `json:"city"`

	// Error и Reason заполняются сервисом при ограничении частоты запросов
	Error  bool   `json:"error,omitempty"`
	Reason string `json:"reason,omitempty"`
}

// LocationInfo - результат проверки геолокации текущего IP
type LocationInfo struct {
	IP          *string `json:"ip"`
	Country     *string `json:"country"`
	CountryCode *string `json:"country_code"`
	City        *string `json:"city"`
	// InRegion - IP находится в регионе, где разрешён прямой вызов библиотеки
	InRegion bool `json:"is_russian"`
	// WillUseAPI всегда равен !InRegion
	WillUseAPI bool `json:"will_use_api"`
}

// StringValue возвращает значение или пустую строку для nil
func StringValue(s *string) string {
	if s == nil {
		return ""
	}
	return *s
}
