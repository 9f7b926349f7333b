package closer

import (
	"context"
	"errors"
	"sync"

	"go.uber.org/zap"
)

type Logger interface {
	Info(ctx context.Context, msg string, fields ...zap.Field)
	Error(ctx context.Context, msg string, fields ...zap.Field)
}

type namedFunc struct {
	name string
	fn   func(ctx context.Context) error
}

type closer struct {
	mu     sync.Mutex
	funcs  []namedFunc
	logger Logger
	once   sync.Once
}

var global = &closer{}

func SetLogger(l Logger) {
	global.mu.Lock()
	defer global.mu.Unlock()
	global.logger = l
}

// AddNamed registers fn to run on CloseAll. Functions run in reverse order of registration.
func AddNamed(name string, fn func(ctx context.Context) error) {
	global.mu.Lock()
	defer global.mu.Unlock()
	global.funcs = append(global.funcs, namedFunc{name: name, fn: fn})
}

func CloseAll(ctx context.Context) error {
	var result error

	global.once.Do(func() {
		global.mu.Lock()
		funcs := global.funcs
		global.funcs = nil
		l := global.logger
		global.mu.Unlock()

		errs := make([]error, 0, len(funcs))
		for i := len(funcs) - 1; i >= 0; i-- {
			if ctx.Err() != nil {
				errs = append(errs, ctx.Err())
				break
			}

			f := funcs[i]
			if err := f.fn(ctx); err != nil {
				if l != nil {
					l.Error(ctx, "failed to close", zap.String("name", f.name), zap.Error(err))
				}
				errs = append(errs, err)
				continue
			}

			if l != nil {
				l.Info(ctx, "closed", zap.String("name", f.name))
			}
		}

		result = errors.Join(errs...)
	})

	return result
}
