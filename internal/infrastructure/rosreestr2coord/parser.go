// Package rosreestr2coord вызывает библиотеку rosreestr2coord напрямую,
// без промежуточного API. Библиотека написана на Python, поэтому вызов
// выполняется через интерпретатор, указанный в конфигурации.
package rosreestr2coord

import (
	"bytes"
	"context"
	"encoding/json"
	stderrors "errors"
	"fmt"
	"os/exec"
	"strconv"
	"strings"
	"time"

	"github.com/cadastral-mcp/internal/config"
	"github.com/cadastral-mcp/internal/domain/repository"
	"github.com/cadastral-mcp/internal/pkg/errors"
	"go.uber.org/zap"
)

// exitImportError - код выхода программы, если модуль rosreestr2coord не установлен
const exitImportError = 3

// loaderProgram строит Area(code, area_type, with_log, timeout) и печатает area.feature
const loaderProgram = `import json, sys
try:
    from rosreestr2coord.parser import Area
except ImportError:
    sys.exit(3)
try:
    area = Area(code=sys.argv[1], area_type=int(sys.argv[2]), with_log=sys.argv[3] == "1", timeout=int(sys.argv[4]))
    json.dump(area.feature or None, sys.stdout, ensure_ascii=False)
except Exception as e:
    sys.stderr.write(str(e))
    sys.exit(1)
`

type parser struct {
	pythonBin string
	timeout   time.Duration
	logger    *zap.Logger
}

// NewParser создает адаптер прямого вызова библиотеки
func NewParser(cfg *config.DirectConfig, logger *zap.Logger) repository.AreaParserRepository {
	return &parser{
		pythonBin: cfg.PythonBin,
		timeout:   cfg.Timeout,
		logger:    logger,
	}
}

// LoadFeature возвращает feature объекта или nil, если данных нет
func (p *parser) LoadFeature(ctx context.Context, query repository.AreaQuery) (json.RawMessage, error) {
	bin, err := exec.LookPath(p.pythonBin)
	if err != nil {
		p.logger.Warn("Python interpreter not found", zap.String("python", p.pythonBin), zap.Error(err))
		return nil, errors.ErrLibraryNotInstalled
	}

	ctx, cancel := context.WithTimeout(ctx, p.timeout)
	defer cancel()

	withLog := "0"
	if query.WithLog {
		withLog = "1"
	}
	timeoutSec := int(p.timeout / time.Second)
	if timeoutSec < 1 {
		timeoutSec = 1
	}

	cmd := exec.CommandContext(ctx, bin, "-c", loaderProgram,
		query.Code,
		strconv.Itoa(int(query.AreaType)),
		withLog,
		strconv.Itoa(timeoutSec),
	)
	cmd.WaitDelay = time.Second

	var stdout, stderr bytes.Buffer
	cmd.Stdout = &stdout
	cmd.Stderr = &stderr

	p.logger.Debug("Calling rosreestr2coord",
		zap.String("cadastral_number", query.Code),
		zap.Int("area_type", int(query.AreaType)))

	if err := cmd.Run(); err != nil {
		if ctx.Err() == context.DeadlineExceeded {
			return nil, errors.Wrap(errors.ErrLibraryFailed,
				fmt.Errorf("rosreestr2coord timed out after %s", p.timeout))
		}

		var exitErr *exec.ExitError
		if stderrors.As(err, &exitErr) && exitErr.ExitCode() == exitImportError {
			return nil, errors.ErrLibraryNotInstalled
		}

		msg := lastLine(stderr.String())
		if msg == "" {
			msg = err.Error()
		}
		p.logger.Error("rosreestr2coord failed",
			zap.String("cadastral_number", query.Code),
			zap.String("stderr", msg),
			zap.Error(err))
		return nil, errors.Wrap(errors.ErrLibraryFailed, stderrors.New(msg))
	}

	out := bytes.TrimSpace(stdout.Bytes())
	if len(out) == 0 || bytes.Equal(out, []byte("null")) {
		return nil, nil
	}
	if !json.Valid(out) {
		return nil, errors.Wrap(errors.ErrLibraryFailed, fmt.Errorf("rosreestr2coord returned malformed feature"))
	}

	return json.RawMessage(out), nil
}

func lastLine(s string) string {
	lines := strings.Split(strings.TrimSpace(s), "\n")
	return strings.TrimSpace(lines[len(lines)-1])
}
