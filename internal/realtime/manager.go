package realtime

import (
	"context"

	"github.com/adrianstier/rse-tracker/internal/logger"

	"golang.org/x/sync/errgroup"
)

// Manager runs one bridge per tracked collection over dedicated listen
// connections and tears them all down together
type Manager struct {
	bridges []*Bridge
	sources []NotificationSource
	log     *logger.Logger
	cancel  context.CancelFunc
	done    chan struct{}
}

// NewManager collects bridges to run. Sources are closed on Stop.
func NewManager(bridges []*Bridge, sources []NotificationSource) *Manager {
	return &Manager{
		bridges: bridges,
		sources: sources,
		log:     logger.New().WithField("component", "realtime"),
	}
}

// Start launches every bridge in the background. A bridge that fails is
// logged and stays down; the cache degrades to TTL staleness for that
// kind while the others keep running.
func (m *Manager) Start(ctx context.Context) {
	ctx, cancel := context.WithCancel(ctx)
	m.cancel = cancel
	m.done = make(chan struct{})

	group, ctx := errgroup.WithContext(ctx)
	for _, bridge := range m.bridges {
		b := bridge
		group.Go(func() error {
			if err := b.Run(ctx); err != nil {
				m.log.WithField("error", err.Error()).Error("Change subscription terminated")
			}
			// never propagate: one dead channel must not stop the rest
			return nil
		})
	}

	go func() {
		defer close(m.done)
		_ = group.Wait()
	}()
}

// Stop cancels the bridges and closes their connections
func (m *Manager) Stop(ctx context.Context) {
	if m.cancel != nil {
		m.cancel()
	}
	if m.done != nil {
		select {
		case <-m.done:
		case <-ctx.Done():
		}
	}
	for _, source := range m.sources {
		if err := source.Close(ctx); err != nil {
			m.log.WithField("error", err.Error()).Warn("Failed to close listen connection")
		}
	}
}
