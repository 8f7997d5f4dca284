/*
Package observability instruments handovers without changing what they compute.

Instrument wraps a handover so that every mapper call fires HandoverHooks. Ready-made
hooks log through slog (LoggingHooks) or record Prometheus metrics (Metrics.Hooks), and
MergeHooks combines them:

	metrics := observability.NewMetrics(prometheus.DefaultRegisterer)
	h = observability.Instrument(h, observability.LoggingHooks(logger), metrics.Hooks())
*/
package observability
