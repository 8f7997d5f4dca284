package observability

import (
	"log/slog"

	"github.com/aretw0/arkhe/pkg/domain"
)

// LoggingHooks logs every handover call at debug level.
func LoggingHooks(logger *slog.Logger) domain.HandoverHooks {
	return domain.HandoverHooks{
		OnExecute: func(e *domain.HandoverEvent) {
			logger.Debug("handover_execute",
				"handover_id", e.HandoverID,
				"protocol", e.Protocol.String(),
				"input", e.Input,
			)
		},
		OnReturn: func(e *domain.HandoverEvent) {
			logger.Debug("handover_return",
				"handover_id", e.HandoverID,
				"output", e.Output,
				"duration", e.Duration,
			)
		},
	}
}
