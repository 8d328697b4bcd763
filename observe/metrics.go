package observe

import (
	"context"
	"errors"

	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/metric"

	observables "github.com/deadlyengineer/some-observables-with-go"
)

// Argument error reasons.
const (
	reasonNotMeter = "not a meter"
	reasonEmpty    = "empty"
)

// StreamKey is the attribute key identifying the instrumented observable.
const StreamKey = attribute.Key("stream")

type instruments struct {
	subscriptions metric.Int64Counter
	values        metric.Int64Counter
	completions   metric.Int64Counter
	errors        metric.Int64Counter
}

// Instrument returns an operator that records the events of every subscription to the source observable
// using Int64 counters created from meter: name.subscriptions, name.values, name.completions, and name.errors.
// Each measurement carries the StreamKey attribute set to name, as well as any attributes given using WithAttributes.
// It returns an error if the counters cannot be created.
func Instrument[T any](meter metric.Meter, name string, opts ...Option) (observables.Operator[T], error) {
	if meter == nil {
		return nil, &observables.ArgumentError{Op: "Instrument", Param: "meter", Reason: reasonNotMeter}
	}

	if name == "" {
		return nil, &observables.ArgumentError{Op: "Instrument", Param: "name", Reason: reasonEmpty}
	}

	cfg := newConfig(opts)

	inst, err := newInstruments(meter, name, cfg)
	if err != nil {
		return nil, err
	}

	attrs := metric.WithAttributeSet(attribute.NewSet(append([]attribute.KeyValue{StreamKey.String(name)}, cfg.attributes...)...))

	return func(source observables.Observable[T]) (observables.Observable[T], error) {
		if err := observables.CheckObservable("Instrument", "source", source); err != nil {
			return nil, err
		}

		return observables.Create(func(ctx context.Context, sub observables.Observer[T]) {
			inst.subscriptions.Add(ctx, 1, attrs)

			source.Subscribe(ctx, observables.ObserverFuncs[T]{
				OnNext: func(elem T) {
					inst.values.Add(ctx, 1, attrs)
					sub.Next(elem)
				},
				OnComplete: func() {
					inst.completions.Add(ctx, 1, attrs)
					sub.Complete()
				},
				OnError: func(err error) {
					inst.errors.Add(ctx, 1, attrs)
					sub.Error(err)
				},
			})
		}), nil
	}, nil
}

func newInstruments(meter metric.Meter, name string, cfg *config) (*instruments, error) {
	counter := func(suffix string, unit string) (metric.Int64Counter, error) {
		opts := []metric.Int64CounterOption{metric.WithUnit(unit)}
		if cfg.description != "" {
			opts = append(opts, metric.WithDescription(cfg.description))
		}

		return meter.Int64Counter(name+"."+suffix, opts...)
	}

	subscriptions, err1 := counter("subscriptions", "{subscription}")
	values, err2 := counter("values", "{value}")
	completions, err3 := counter("completions", "{completion}")
	errs, err4 := counter("errors", "{error}")

	if err := errors.Join(err1, err2, err3, err4); err != nil {
		return nil, err
	}

	return &instruments{
		subscriptions: subscriptions,
		values:        values,
		completions:   completions,
		errors:        errs,
	}, nil
}
