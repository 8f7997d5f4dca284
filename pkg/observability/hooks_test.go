package observability_test

import (
	"bytes"
	"log/slog"
	"strconv"
	"testing"

	"github.com/aretw0/arkhe/pkg/domain"
	"github.com/aretw0/arkhe/pkg/observability"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestInstrument_FiresHooks(t *testing.T) {
	var events []*domain.HandoverEvent
	record := func(e *domain.HandoverEvent) { events = append(events, e) }

	h := domain.NewHandover("stringify", domain.Creative, strconv.Itoa)
	h.Fidelity = 0.8

	wrapped := observability.Instrument(h, domain.HandoverHooks{OnExecute: record, OnReturn: record})

	assert.Equal(t, "stringify", wrapped.ID)
	assert.Equal(t, domain.Creative, wrapped.Protocol)
	assert.Equal(t, 0.8, wrapped.Fidelity)

	got := wrapped.Execute(domain.NewNode("n1", "R", 42))
	assert.Equal(t, "42", got)

	require.Len(t, events, 2)
	assert.Equal(t, domain.EventHandoverExecute, events[0].Type)
	assert.Equal(t, 42, events[0].Input)
	assert.Nil(t, events[0].Output)
	assert.Equal(t, domain.EventHandoverReturn, events[1].Type)
	assert.Equal(t, "42", events[1].Output)
	assert.Equal(t, domain.Creative, events[1].Protocol)
}

func TestInstrument_PanicSkipsReturn(t *testing.T) {
	var executed, returned int
	h := domain.NewHandover("boom", domain.Destructive, func(int) int { panic("boom") })

	wrapped := observability.Instrument(h, domain.HandoverHooks{
		OnExecute: func(*domain.HandoverEvent) { executed++ },
		OnReturn:  func(*domain.HandoverEvent) { returned++ },
	})

	assert.PanicsWithValue(t, "boom", func() { wrapped.Apply(1) })
	assert.Equal(t, 1, executed)
	assert.Equal(t, 0, returned)
}

func TestInstrument_NoHooks(t *testing.T) {
	h := observability.Instrument(domain.NewHandover("inc", domain.Creative, func(x int) int { return x + 1 }))
	assert.Equal(t, 2, h.Apply(1))
}

func TestInstrument_ComposesLikeAnyHandover(t *testing.T) {
	count := 0
	hooks := domain.HandoverHooks{OnReturn: func(*domain.HandoverEvent) { count++ }}

	h1 := observability.Instrument(domain.NewHandover("double", domain.Conservative, func(x int) int { return x * 2 }), hooks)
	h2 := observability.Instrument(domain.NewHandover("stringify", domain.Conservative, strconv.Itoa), hooks)

	h3 := domain.Compose(h1, h2)
	assert.Equal(t, "10", h3.Apply(5))
	assert.Equal(t, "double_stringify", h3.ID)
	assert.Equal(t, 2, count)
}

func TestMergeHooks_Order(t *testing.T) {
	var order []string
	a := domain.HandoverHooks{OnExecute: func(*domain.HandoverEvent) { order = append(order, "a") }}
	b := domain.HandoverHooks{OnExecute: func(*domain.HandoverEvent) { order = append(order, "b") }}

	merged := observability.MergeHooks(a, domain.HandoverHooks{}, b)
	require.NotNil(t, merged.OnExecute)
	assert.Nil(t, merged.OnReturn)

	merged.OnExecute(&domain.HandoverEvent{})
	assert.Equal(t, []string{"a", "b"}, order)
}

func TestLoggingHooks(t *testing.T) {
	var buf bytes.Buffer
	logger := slog.New(slog.NewTextHandler(&buf, &slog.HandlerOptions{Level: slog.LevelDebug}))

	h := observability.Instrument(
		domain.NewHandover("double", domain.Conservative, func(x int) int { return x * 2 }),
		observability.LoggingHooks(logger),
	)
	h.Apply(4)

	out := buf.String()
	assert.Contains(t, out, "handover_execute")
	assert.Contains(t, out, "handover_return")
	assert.Contains(t, out, "handover_id=double")
	assert.Contains(t, out, "protocol=conservative")
	assert.Contains(t, out, "output=8")
}
