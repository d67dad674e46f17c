package checklist

import (
	"log/slog"

	"github.com/alexanderramin/checkpoint/internal/domain"
)

// Operation names a source call.
type Operation string

const (
	OpFetch  Operation = "fetch"
	OpSubmit Operation = "submit"
)

// CallEvent records metadata about a single source call.
type CallEvent struct {
	Op        Operation
	Source    domain.SourceKind
	LatencyMs int64
	Success   bool
	Attempts  int
	ErrorCode string
}

// Observer receives events about source calls for logging and metrics.
type Observer interface {
	OnCallComplete(event CallEvent)
}

// LogObserver writes call events to a structured logger.
type LogObserver struct {
	logger *slog.Logger
}

// NewLogObserver creates an Observer that logs events through logger.
func NewLogObserver(logger *slog.Logger) *LogObserver {
	if logger == nil {
		logger = slog.Default()
	}
	return &LogObserver{logger: logger}
}

func (o *LogObserver) OnCallComplete(event CallEvent) {
	attrs := []any{
		"op", string(event.Op),
		"source", string(event.Source),
		"latency_ms", event.LatencyMs,
	}
	if event.Attempts > 0 {
		attrs = append(attrs, "attempts", event.Attempts)
	}
	if event.Success {
		o.logger.Info("checklist_call", append(attrs, "status", "ok")...)
		return
	}
	o.logger.Warn("checklist_call", append(attrs, "status", "err:"+event.ErrorCode)...)
}

// NoopObserver discards all events. Useful for tests.
type NoopObserver struct{}

func (NoopObserver) OnCallComplete(CallEvent) {}

func observerOrNoop(o Observer) Observer {
	if o == nil {
		return NoopObserver{}
	}
	return o
}
