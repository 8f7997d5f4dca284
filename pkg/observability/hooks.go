package observability

import (
	"time"

	"github.com/aretw0/arkhe/pkg/domain"
)

// Instrument returns a handover with the same id, protocol and fidelity as h whose
// mapper fires hooks around every call. OnReturn is skipped when the mapper panics;
// the panic is not recovered.
func Instrument[S, T any](h *domain.Handover[S, T], hooks ...domain.HandoverHooks) *domain.Handover[S, T] {
	merged := MergeHooks(hooks...)
	mapper := h.Mapper()
	id, protocol := h.ID, h.Protocol

	wrapped := domain.NewHandover(id, protocol, func(in S) T {
		start := time.Now()
		if merged.OnExecute != nil {
			merged.OnExecute(&domain.HandoverEvent{
				Timestamp:  start,
				Type:       domain.EventHandoverExecute,
				HandoverID: id,
				Protocol:   protocol,
				Input:      in,
			})
		}

		out := mapper(in)

		if merged.OnReturn != nil {
			merged.OnReturn(&domain.HandoverEvent{
				Timestamp:  time.Now(),
				Type:       domain.EventHandoverReturn,
				HandoverID: id,
				Protocol:   protocol,
				Input:      in,
				Output:     out,
				Duration:   time.Since(start),
			})
		}
		return out
	})
	wrapped.Fidelity = h.Fidelity
	return wrapped
}

// MergeHooks returns hooks that call each of the given hooks in order.
func MergeHooks(hooks ...domain.HandoverHooks) domain.HandoverHooks {
	var onExecute, onReturn []func(*domain.HandoverEvent)
	for _, h := range hooks {
		if h.OnExecute != nil {
			onExecute = append(onExecute, h.OnExecute)
		}
		if h.OnReturn != nil {
			onReturn = append(onReturn, h.OnReturn)
		}
	}

	return domain.HandoverHooks{
		OnExecute: fanOut(onExecute),
		OnReturn:  fanOut(onReturn),
	}
}

func fanOut(fns []func(*domain.HandoverEvent)) func(*domain.HandoverEvent) {
	switch len(fns) {
	case 0:
		return nil
	case 1:
		return fns[0]
	}
	return func(e *domain.HandoverEvent) {
		for _, fn := range fns {
			fn(e)
		}
	}
}
