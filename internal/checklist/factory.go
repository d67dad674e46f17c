package checklist

import (
	"fmt"
	"math/rand"
	"time"

	"github.com/alexanderramin/checkpoint/internal/config"
	"github.com/alexanderramin/checkpoint/internal/domain"
	"github.com/alexanderramin/checkpoint/internal/service"
)

// Deps carries the collaborators a source kind may need.
type Deps struct {
	// Service backs the local source. Required for SourceLocal.
	Service  service.ChecklistService
	Observer Observer
	// Rand overrides the mock's random source.
	Rand *rand.Rand
}

// New builds the source selected by cfg.Source, wrapped in a Guard.
func New(cfg config.Config, deps Deps) (*Guard, error) {
	var src Source
	switch cfg.Source {
	case domain.SourceMock, "":
		opts := []MockOption{
			WithLatency(time.Duration(cfg.MockLatencyMs) * time.Millisecond),
			WithFailureRate(cfg.MockFailureRate),
			WithMockObserver(deps.Observer),
		}
		if deps.Rand != nil {
			opts = append(opts, WithRand(deps.Rand))
		}
		src = NewMockSource(opts...)
	case domain.SourceHTTP:
		src = NewHTTPSource(HTTPConfig{
			Endpoint:        cfg.Endpoint,
			TimeoutMs:       cfg.TimeoutMs,
			MaxRetries:      cfg.MaxRetries,
			RetryDelay:      time.Duration(cfg.RetryDelayMs) * time.Millisecond,
			BreakerFailures: cfg.BreakerFailures,
		}, deps.Observer)
	case domain.SourceLocal:
		if deps.Service == nil {
			return nil, fmt.Errorf("local source requires a checklist service")
		}
		src = NewLocalSource(deps.Service, deps.Observer)
	default:
		return nil, fmt.Errorf("unknown checklist source %q", cfg.Source)
	}
	return NewGuard(src), nil
}
