// Package monitor polls the system clipboard on a fixed cadence and invokes
// a caller-supplied callback whenever the content changes.
package monitor

import (
	"sync"
	"sync/atomic"
	"time"

	"cliphist/pkg/clipboard"
	"cliphist/pkg/logger"

	"github.com/google/uuid"
	"github.com/rs/zerolog"
)

// DefaultInterval is the poll cadence used when none is configured.
const DefaultInterval = 500 * time.Millisecond

// Monitor watches the clipboard from a single background goroutine. The
// running flag and last-observed content are the only shared mutable state;
// the flag is atomic and the content is guarded by a mutex that is released
// before the callback fires, so a slow or reentrant callback cannot block
// the next poll's state update.
type Monitor struct {
	reader   clipboard.Reader
	interval time.Duration
	log      zerolog.Logger

	running atomic.Bool

	mu          sync.Mutex
	lastContent string
}

// Option configures a Monitor.
type Option func(*Monitor)

// WithInterval overrides the poll cadence.
func WithInterval(d time.Duration) Option {
	return func(m *Monitor) {
		if d > 0 {
			m.interval = d
		}
	}
}

// New creates a stopped monitor polling the given reader.
func New(reader clipboard.Reader, opts ...Option) *Monitor {
	m := &Monitor{
		reader:   reader,
		interval: DefaultInterval,
		log:      logger.GetLogger(),
	}
	for _, opt := range opts {
		opt(m)
	}
	return m
}

// Start transitions the monitor to running and spawns the polling loop.
// It returns false without side effects if the monitor is already running;
// the compare-and-swap guarantees two concurrent Start calls cannot spawn
// duplicate loops. notify is invoked once per observed change, after the
// internal lock has been released.
func (m *Monitor) Start(notify func(content string)) bool {
	if !m.running.CompareAndSwap(false, true) {
		return false
	}

	m.mu.Lock()
	m.lastContent = ""
	m.mu.Unlock()

	runID := uuid.NewString()
	log := m.log.With().Str("run_id", runID).Logger()
	log.Info().Dur("interval", m.interval).Msg("clipboard monitor started")

	go m.loop(log, notify)
	return true
}

// Stop requests the polling loop to exit. The loop observes the flag at the
// top of its next iteration, so there is up to one poll interval of latency.
// In-flight reads and callbacks complete.
func (m *Monitor) Stop() {
	m.running.Store(false)
}

// IsRunning reports whether the polling loop is active.
func (m *Monitor) IsRunning() bool {
	return m.running.Load()
}

func (m *Monitor) loop(log zerolog.Logger, notify func(string)) {
	for m.running.Load() {
		m.poll(log, notify)
		time.Sleep(m.interval)
	}
	log.Info().Msg("clipboard monitor stopped")
}

// poll runs one read-compare-notify cycle. Read failures (including
// unsupported platforms) skip the cycle; they must never terminate the loop.
func (m *Monitor) poll(log zerolog.Logger, notify func(string)) {
	content, err := m.reader.Read()
	if err != nil {
		log.Debug().Err(err).Msg("clipboard read failed, skipping cycle")
		return
	}
	if content == "" {
		return
	}

	m.mu.Lock()
	if content == m.lastContent {
		m.mu.Unlock()
		return
	}
	m.lastContent = content
	m.mu.Unlock()

	// Lock released above: the callback may re-enter the monitor or block
	// without stalling subsequent polls' state updates.
	notify(content)
}
