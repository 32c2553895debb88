package handler

import (
	"bytes"
	"context"
	"encoding/json"
	"time"

	"github.com/cadastral-mcp/internal/pkg/errors"
	"github.com/cadastral-mcp/internal/pkg/utils"
	"github.com/cadastral-mcp/internal/usecase/dto"
	"github.com/gofiber/fiber/v2"
	"go.uber.org/zap"
)

// ToolDispatcher - исполнитель инструментов
type ToolDispatcher interface {
	Tools() []dto.Tool
	Call(ctx context.Context, name string, args json.RawMessage) string
}

// ToolHandler - обработчик вызова инструментов по HTTP
type ToolHandler struct {
	dispatcher ToolDispatcher
	logger     *zap.Logger
}

// NewToolHandler - создание нового ToolHandler
func NewToolHandler(dispatcher ToolDispatcher, logger *zap.Logger) *ToolHandler {
	return &ToolHandler{
		dispatcher: dispatcher,
		logger:     logger,
	}
}

// ListTools godoc
// @Summary Список инструментов
// @Description Возвращает имена, описания и JSON-схемы аргументов доступных инструментов
// @Tags Tools
// @Produce json
// @Success 200 {object} utils.SuccessResponse{data=[]dto.Tool}
// @Router /api/v1/tools [get]
func (h *ToolHandler) ListTools(c *fiber.Ctx) error {
	start := time.Now()
	tools := h.dispatcher.Tools()
	return utils.SendSuccess(c, tools, &utils.Meta{
		Total:    len(tools),
		TimeMSec: float64(time.Since(start).Microseconds()) / 1000,
	})
}

// CallTool godoc
// @Summary Вызов инструмента
// @Description Выполняет инструмент (get_cadastral_coordinates, batch_get_cadastral_coordinates, check_ip_location).
// @Description Ошибки инструментов возвращаются в теле ответа в виде {"error": "..."} со статусом 200.
// @Tags Tools
// @Accept json
// @Produce json
// @Param name path string true "Имя инструмента"
// @Param arguments body object false "Аргументы инструмента"
// @Success 200 {object} map[string]interface{} "Результат инструмента"
// @Failure 400 {object} utils.ErrorResponse
// @Router /api/v1/tools/{name} [post]
func (h *ToolHandler) CallTool(c *fiber.Ctx) error {
	name := c.Params("name")

	body := bytes.TrimSpace(c.Body())
	if len(body) > 0 && !json.Valid(body) {
		h.logger.Debug("Invalid tool arguments body", zap.String("tool", name))
		return utils.SendError(c, errors.ErrInvalidRequest)
	}

	// Тело fasthttp переиспользуется после ответа, поэтому аргументы копируются
	args := make(json.RawMessage, len(body))
	copy(args, body)

	payload := h.dispatcher.Call(c.UserContext(), name, args)

	c.Set(fiber.HeaderContentType, fiber.MIMEApplicationJSONCharsetUTF8)
	return c.SendString(payload)
}
