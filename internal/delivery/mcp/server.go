// Package mcp публикует инструменты по протоколу MCP (stdio и любые другие
// транспорты SDK). Протокол, согласование версий и фрейминг обслуживает go-sdk.
package mcp

import (
	"context"
	"encoding/json"
	"time"

	sdkmcp "github.com/modelcontextprotocol/go-sdk/mcp"
	"go.uber.org/zap"

	"github.com/cadastral-mcp/internal/usecase/dto"
)

const methodToolsCall = "tools/call"

// Dispatcher - исполнитель инструментов
type Dispatcher interface {
	Tools() []dto.Tool
	Call(ctx context.Context, name string, args json.RawMessage) string
}

// ServerInfo - имя и версия сервера, которые видит клиент
type ServerInfo struct {
	Name    string
	Version string
}

// Server регистрирует инструменты диспетчера в MCP сервере
type Server struct {
	server     *sdkmcp.Server
	dispatcher Dispatcher
	known      map[string]struct{}
	logger     *zap.Logger
}

// NewServer создает MCP сервер
func NewServer(dispatcher Dispatcher, info ServerInfo, logger *zap.Logger) *Server {
	s := &Server{
		server: sdkmcp.NewServer(&sdkmcp.Implementation{
			Name:    info.Name,
			Version: info.Version,
		}, nil),
		dispatcher: dispatcher,
		known:      make(map[string]struct{}),
		logger:     logger,
	}

	for _, tool := range dispatcher.Tools() {
		s.server.AddTool(&sdkmcp.Tool{
			Name:        tool.Name,
			Description: tool.Description,
			InputSchema: tool.InputSchema,
		}, s.toolHandler(tool.Name))
		s.known[tool.Name] = struct{}{}
	}

	s.server.AddReceivingMiddleware(s.loggingMiddleware, s.unknownToolMiddleware)

	return s
}

// Run обслуживает одну сессию на transport до её закрытия или отмены ctx
func (s *Server) Run(ctx context.Context, transport sdkmcp.Transport) error {
	s.logger.Info("MCP server started", zap.Int("tools", len(s.known)))
	return s.server.Run(ctx, transport)
}

// Connect открывает сессию без блокировки
func (s *Server) Connect(ctx context.Context, transport sdkmcp.Transport) (*sdkmcp.ServerSession, error) {
	return s.server.Connect(ctx, transport, nil)
}

func (s *Server) toolHandler(name string) sdkmcp.ToolHandler {
	return func(ctx context.Context, req *sdkmcp.CallToolRequest) (*sdkmcp.CallToolResult, error) {
		return s.call(ctx, name, req.Params.Arguments), nil
	}
}

// Любой ответ инструмента, включая ошибку, - один текстовый блок с JSON
func (s *Server) call(ctx context.Context, name string, args json.RawMessage) *sdkmcp.CallToolResult {
	text := s.dispatcher.Call(ctx, name, args)
	return &sdkmcp.CallToolResult{
		Content: []sdkmcp.Content{&sdkmcp.TextContent{Text: text}},
	}
}

// unknownToolMiddleware отвечает на вызов незарегистрированного инструмента
// текстом диспетчера вместо ошибки JSON-RPC
func (s *Server) unknownToolMiddleware(next sdkmcp.MethodHandler) sdkmcp.MethodHandler {
	return func(ctx context.Context, method string, req sdkmcp.Request) (sdkmcp.Result, error) {
		if method != methodToolsCall {
			return next(ctx, method, req)
		}

		call, ok := req.(*sdkmcp.CallToolRequest)
		if !ok || call.Params == nil {
			return next(ctx, method, req)
		}
		if _, registered := s.known[call.Params.Name]; registered {
			return next(ctx, method, req)
		}

		return s.call(ctx, call.Params.Name, call.Params.Arguments), nil
	}
}

func (s *Server) loggingMiddleware(next sdkmcp.MethodHandler) sdkmcp.MethodHandler {
	return func(ctx context.Context, method string, req sdkmcp.Request) (sdkmcp.Result, error) {
		start := time.Now()
		result, err := next(ctx, method, req)

		fields := []zap.Field{
			zap.String("method", method),
			zap.Duration("duration", time.Since(start)),
		}
		if err != nil {
			s.logger.Warn("MCP request failed", append(fields, zap.Error(err))...)
		} else {
			s.logger.Debug("MCP request", fields...)
		}
		return result, err
	}
}
