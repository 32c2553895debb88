package usecase

import (
	"bytes"
	"context"
	"encoding/json"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/cadastral-mcp/internal/pkg/errors"
	"github.com/cadastral-mcp/internal/pkg/validator"
	"github.com/cadastral-mcp/internal/usecase/dto"
)

// ToolDispatcher сопоставляет имена инструментов с вызовами Router,
// BatchAggregator и GeoLocator. Любой ответ - JSON-текст, ошибки тоже.
type ToolDispatcher struct {
	router      CadastralRouter
	batch       *BatchAggregator
	locator     LocationResolver
	forceRemote bool
	logger      *zap.Logger
}

// NewToolDispatcher создает ToolDispatcher
func NewToolDispatcher(
	router CadastralRouter,
	batch *BatchAggregator,
	locator LocationResolver,
	forceRemote bool,
	logger *zap.Logger,
) *ToolDispatcher {
	return &ToolDispatcher{
		router:      router,
		batch:       batch,
		locator:     locator,
		forceRemote: forceRemote,
		logger:      logger,
	}
}

// Tools возвращает список доступных инструментов
func (d *ToolDispatcher) Tools() []dto.Tool {
	return toolDefinitions()
}

// Call выполняет инструмент name с аргументами args (JSON-объект или пусто)
func (d *ToolDispatcher) Call(ctx context.Context, name string, args json.RawMessage) string {
	log := d.logger.With(
		zap.String("call_id", uuid.NewString()),
		zap.String("tool", name))
	start := time.Now()

	var payload any
	switch name {
	case ToolGetCadastralCoordinates:
		payload = d.getCoordinates(ctx, args)
	case ToolBatchGetCadastralCoordinates:
		payload = d.batchGetCoordinates(ctx, args)
	case ToolCheckIPLocation:
		payload = d.checkIPLocation(ctx)
	default:
		log.Warn("Unknown tool requested")
		payload = errorPayload(errors.UnknownTool(name))
	}

	log.Info("Tool call completed", zap.Duration("duration", time.Since(start)))

	return render(payload)
}

func (d *ToolDispatcher) getCoordinates(ctx context.Context, raw json.RawMessage) any {
	var args dto.GetCoordinatesArgs
	if err := decodeArgs(raw, &args); err != nil {
		return errorPayload(err)
	}
	if err := validator.Validate(&args); err != nil {
		d.logger.Debug("Invalid arguments", zap.String("field", validator.FirstInvalidField(err)))
		return errorPayload(errors.ErrCadastralNumberRequired)
	}

	return d.router.Route(ctx, args.CadastralNumber, dto.ResolveAreaType(args.AreaType), d.forceRemote)
}

func (d *ToolDispatcher) batchGetCoordinates(ctx context.Context, raw json.RawMessage) any {
	var args dto.BatchGetCoordinatesArgs
	if err := decodeArgs(raw, &args); err != nil {
		return errorPayload(err)
	}
	if err := validator.Validate(&args); err != nil {
		d.logger.Debug("Invalid arguments", zap.String("field", validator.FirstInvalidField(err)))
		return errorPayload(errors.ErrCadastralNumbersRequired)
	}

	return d.batch.Run(ctx, args.CadastralNumbers, dto.ResolveAreaType(args.AreaType))
}

func (d *ToolDispatcher) checkIPLocation(ctx context.Context) any {
	location, err := d.locator.ResolveLocation(ctx)
	if err != nil {
		d.logger.Warn("IP location check failed", zap.Error(err))
		return errorPayload(err)
	}
	return location
}

// decodeArgs разбирает аргументы; пустые аргументы и null равны {}
func decodeArgs(raw json.RawMessage, dst any) error {
	trimmed := bytes.TrimSpace(raw)
	if len(trimmed) == 0 || bytes.Equal(trimmed, []byte("null")) {
		return nil
	}
	if err := json.Unmarshal(trimmed, dst); err != nil {
		return errors.InvalidArguments(err.Error())
	}
	return nil
}

func errorPayload(err error) dto.ErrorPayload {
	return dto.ErrorPayload{Error: errors.Message(err)}
}

// render сериализует ответ с отступами и без экранирования не-ASCII символов
func render(payload any) string {
	var buf bytes.Buffer
	encoder := json.NewEncoder(&buf)
	encoder.SetEscapeHTML(false)
	encoder.SetIndent("", "  ")

	if err := encoder.Encode(payload); err != nil {
		buf.Reset()
		encoder.Encode(dto.ErrorPayload{Error: err.Error()})
	}

	return string(bytes.TrimRight(buf.Bytes(), "\n"))
}
