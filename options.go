package pfifo

import "go.uber.org/zap"

// Options configure a Buffer.
//
// All zero values are replaced with sensible defaults in FillDefaults.
type Options struct {
	// Log receives lifecycle events (flush, close). Defaults to a
	// no-op logger; the hot push/pull path never logs.
	Log *zap.Logger

	// Metrics receives queueing activity. Defaults to NoopMetrics.
	Metrics MetricsPolicy
}

func (o *Options) FillDefaults() {
	if o.Log == nil {
		o.Log = zap.NewNop()
	}
	if o.Metrics == nil {
		o.Metrics = &NoopMetrics{}
	}
}
