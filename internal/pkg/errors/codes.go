package errors

import "net/http"

const (
	CodeConfiguration         = "CONFIGURATION_ERROR"
	CodeTransport             = "TRANSPORT_ERROR"
	CodeDependencyUnavailable = "DEPENDENCY_UNAVAILABLE"
	CodeDependency            = "DEPENDENCY_ERROR"
	CodeNoDataFound           = "NO_DATA_FOUND"
	CodeValidation            = "VALIDATION_ERROR"
	CodeUnknownOperation      = "UNKNOWN_OPERATION"
	CodeInvalidRequest        = "INVALID_REQUEST"
	CodeInternal              = "INTERNAL_SERVER_ERROR"
)

var (
	ErrAPITokenNotConfigured = New(
		CodeConfiguration,
		"ROSREESTR_API_TOKEN not configured",
		http.StatusServiceUnavailable,
	)

	ErrTransport = New(
		CodeTransport,
		"Remote service request failed",
		http.StatusBadGateway,
	)

	ErrLibraryNotInstalled = New(
		CodeDependencyUnavailable,
		"rosreestr2coord not installed",
		http.StatusServiceUnavailable,
	)

	ErrLibraryFailed = New(
		CodeDependency,
		"rosreestr2coord call failed",
		http.StatusBadGateway,
	)

	ErrNoDataFound = New(
		CodeNoDataFound,
		"No data found for this cadastral number",
		http.StatusNotFound,
	)

	ErrCadastralNumberRequired = New(
		CodeValidation,
		"cadastral_number is required",
		http.StatusBadRequest,
	)

	ErrCadastralNumbersRequired = New(
		CodeValidation,
		"cadastral_numbers array is required",
		http.StatusBadRequest,
	)

	ErrInvalidArguments = New(
		CodeValidation,
		"invalid arguments",
		http.StatusBadRequest,
	)

	ErrUnknownTool = New(
		CodeUnknownOperation,
		"Unknown tool",
		http.StatusNotFound,
	)

	ErrInvalidRequest = New(
		CodeInvalidRequest,
		"Invalid request parameters",
		http.StatusBadRequest,
	)

	ErrInternalServer = New(
		CodeInternal,
		"Internal server error",
		http.StatusInternalServerError,
	)
)

// UnknownTool возвращает ошибку с именем неизвестного инструмента в тексте.
func UnknownTool(name string) *AppError {
	return New(ErrUnknownTool.Code, "Unknown tool: "+name, ErrUnknownTool.StatusCode)
}

// InvalidArguments возвращает ошибку валидации с причиной.
func InvalidArguments(reason string) *AppError {
	return New(ErrInvalidArguments.Code, ErrInvalidArguments.Message+": "+reason, ErrInvalidArguments.StatusCode)
}
