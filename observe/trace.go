package observe

import (
	"context"
	"log/slog"

	observables "github.com/deadlyengineer/some-observables-with-go"
)

// Trace returns an operator that logs every event of every subscription to the source observable using logger.
// Records carry a "stream" attribute set to name, and any attributes given using WithAttributes.
// If logger is nil, slog.Default is used.
func Trace[T any](logger *slog.Logger, name string, opts ...Option) observables.Operator[T] {
	if logger == nil {
		logger = slog.Default()
	}

	cfg := newConfig(opts)

	logger = logger.With(slog.String(string(StreamKey), name)).With(cfg.logAttrs()...)

	return func(source observables.Observable[T]) (observables.Observable[T], error) {
		if err := observables.CheckObservable("Trace", "source", source); err != nil {
			return nil, err
		}

		return observables.Create(func(ctx context.Context, sub observables.Observer[T]) {
			logger.Log(ctx, cfg.level, "subscribe")

			source.Subscribe(ctx, observables.ObserverFuncs[T]{
				OnNext: func(elem T) {
					logger.Log(ctx, cfg.level, "next", slog.Any("value", elem))
					sub.Next(elem)
				},
				OnComplete: func() {
					logger.Log(ctx, cfg.level, "complete")
					sub.Complete()
				},
				OnError: func(err error) {
					logger.Log(ctx, cfg.level, "error", slog.Any("error", err))
					sub.Error(err)
				},
			})
		}), nil
	}
}
