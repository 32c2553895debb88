package usecase

import (
	"context"

	"go.uber.org/zap"

	"github.com/cadastral-mcp/internal/domain"
)

// CadastralRouter выбирает источник данных для одного номера
type CadastralRouter interface {
	Route(ctx context.Context, cadastralNumber string, areaType domain.AreaType, forceRemote bool) domain.FetchResult
}

var _ CadastralRouter = (*Router)(nil)

// Router выбирает между удалённым API и прямым вызовом библиотеки
type Router struct {
	remote   FetchStrategy
	direct   FetchStrategy
	detector RegionDetector
	logger   *zap.Logger
}

// NewRouter создает Router
func NewRouter(remote, direct FetchStrategy, detector RegionDetector, logger *zap.Logger) *Router {
	return &Router{
		remote:   remote,
		direct:   direct,
		detector: detector,
		logger:   logger,
	}
}

// Route использует удалённый API, если forceRemote или IP вне выделенного региона
// (в том числе когда геолокация не удалась). При forceRemote геолокация не вызывается.
// Переключения на другой источник при ошибке нет.
func (r *Router) Route(
	ctx context.Context,
	cadastralNumber string,
	areaType domain.AreaType,
	forceRemote bool,
) domain.FetchResult {
	strategy := r.selectStrategy(ctx, forceRemote)

	r.logger.Debug("Fetching cadastral object",
		zap.String("cadastral_number", cadastralNumber),
		zap.Int("area_type", int(areaType)),
		zap.String("strategy", strategy.Name()),
		zap.Bool("force_remote", forceRemote))

	return strategy.Fetch(ctx, cadastralNumber, areaType)
}

func (r *Router) selectStrategy(ctx context.Context, forceRemote bool) FetchStrategy {
	if forceRemote {
		return r.remote
	}
	if !r.detector.IsInDesignatedRegion(ctx) {
		return r.remote
	}
	return r.direct
}
