// Package status provides a thread-safe status tracker for the
// button-monitor daemon. It is read by the HTTP handlers and by the
// heartbeat publisher.
package status

import (
	"sync"
	"time"

	"github.com/sweeney/button-monitor/internal/button"
)

// NetworkInfo contains network state as reported by the host helper.
type NetworkInfo struct {
	Type       string
	IP         string
	Status     string
	Gateway    string
	WifiStatus string
	SSID       string
}

// Config contains daemon configuration for display.
type Config struct {
	PollMs            int64
	DebounceMs        int64
	DoubleTapWindowMs int64
	LongPressMs       int64
	HeartbeatMs       int64
	Broker            string
	HTTPAddr          string
}

// EventCounts tracks the number of each event kind since startup.
type EventCounts struct {
	SingleTap int
	DoubleTap int
	LongPress int
}

// ButtonStatus is the tracked state of one button.
type ButtonStatus struct {
	Name        string
	LastEvent   string // empty until the first event
	LastEventAt time.Time
	Counts      EventCounts
}

// Snapshot is a point-in-time view of daemon state.
// It is a value type with its own Buttons slice — safe to use after the
// lock is released.
type Snapshot struct {
	Buttons       []ButtonStatus
	StartTime     time.Time
	Now           time.Time
	MQTTConnected bool
	Network       *NetworkInfo
	Config        Config
}

// Uptime returns the duration since the daemon started.
func (s Snapshot) Uptime() time.Duration {
	return s.Now.Sub(s.StartTime)
}

// TotalCounts sums event counts across all buttons.
func (s Snapshot) TotalCounts() EventCounts {
	var total EventCounts
	for _, b := range s.Buttons {
		total.SingleTap += b.Counts.SingleTap
		total.DoubleTap += b.Counts.DoubleTap
		total.LongPress += b.Counts.LongPress
	}
	return total
}

// Tracker holds mutable daemon state behind an RWMutex.
type Tracker struct {
	mu      sync.RWMutex
	buttons []ButtonStatus
	index   map[string]int

	startTime     time.Time
	mqttConnected bool
	network       *NetworkInfo
	config        Config
}

// NewTracker creates a Tracker for the named buttons.
func NewTracker(startTime time.Time, cfg Config, names []string) *Tracker {
	t := &Tracker{
		startTime: startTime,
		config:    cfg,
		index:     make(map[string]int, len(names)),
	}
	for i, name := range names {
		t.buttons = append(t.buttons, ButtonStatus{Name: name})
		t.index[name] = i
	}
	return t
}

// RecordEvent notes a detected event for the named button.
// Unknown names are ignored.
func (t *Tracker) RecordEvent(name string, kind button.Event, at time.Time) {
	t.mu.Lock()
	defer t.mu.Unlock()

	i, ok := t.index[name]
	if !ok {
		return
	}
	b := &t.buttons[i]
	b.LastEvent = kind.String()
	b.LastEventAt = at
	switch kind {
	case button.EventSingleTap:
		b.Counts.SingleTap++
	case button.EventDoubleTap:
		b.Counts.DoubleTap++
	case button.EventLongPress:
		b.Counts.LongPress++
	}
}

// SetMQTTConnected sets the MQTT connection status.
func (t *Tracker) SetMQTTConnected(connected bool) {
	t.mu.Lock()
	t.mqttConnected = connected
	t.mu.Unlock()
}

// SetNetwork sets the network info.
func (t *Tracker) SetNetwork(info *NetworkInfo) {
	t.mu.Lock()
	t.network = info
	t.mu.Unlock()
}

// Snapshot returns a point-in-time copy of the daemon state.
// The Now field is set to the current time at the moment of the call.
func (t *Tracker) Snapshot() Snapshot {
	t.mu.RLock()
	s := Snapshot{
		Buttons:       make([]ButtonStatus, len(t.buttons)),
		StartTime:     t.startTime,
		MQTTConnected: t.mqttConnected,
		Network:       t.network,
		Config:        t.config,
	}
	copy(s.Buttons, t.buttons)
	t.mu.RUnlock()
	s.Now = time.Now()
	return s
}
