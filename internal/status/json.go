package status

import (
	"encoding/json"
	"time"
)

// StatusJSON is the top-level JSON envelope for status output.
type StatusJSON struct {
	Status StatusInner `json:"status"`
}

// StatusInner contains the status details.
type StatusInner struct {
	Event         string       `json:"event,omitempty"`
	Reason        string       `json:"reason,omitempty"`
	Buttons       []ButtonJSON `json:"buttons"`
	UptimeSeconds int64        `json:"uptime_seconds"`
	StartTime     string       `json:"start_time"`
	Timestamp     string       `json:"timestamp"`
	MQTT          MQTTStatus   `json:"mqtt"`
	Network       *NetworkJSON `json:"network,omitempty"`
	Config        ConfigJSON   `json:"config"`
}

// ButtonJSON is the JSON representation of one button's state.
type ButtonJSON struct {
	Name        string     `json:"name"`
	LastEvent   string     `json:"last_event,omitempty"`
	LastEventAt string     `json:"last_event_at,omitempty"`
	Counts      CountsJSON `json:"event_counts"`
}

// MQTTStatus reports MQTT connection state.
type MQTTStatus struct {
	Connected bool   `json:"connected"`
	Broker    string `json:"broker"`
}

// CountsJSON is the JSON representation of event counts.
type CountsJSON struct {
	SingleTap int `json:"single_tap"`
	DoubleTap int `json:"double_tap"`
	LongPress int `json:"long_press"`
}

// NetworkJSON is the JSON representation of network info.
type NetworkJSON struct {
	Type       string `json:"type"`
	IP         string `json:"ip"`
	Status     string `json:"status"`
	Gateway    string `json:"gateway"`
	WifiStatus string `json:"wifi_status"`
	SSID       string `json:"ssid"`
}

// ConfigJSON is the JSON representation of daemon config.
type ConfigJSON struct {
	PollMs            int64  `json:"poll_ms"`
	DebounceMs        int64  `json:"debounce_ms"`
	DoubleTapWindowMs int64  `json:"double_tap_window_ms"`
	LongPressMs       int64  `json:"long_press_ms"`
	HeartbeatMs       int64  `json:"heartbeat_ms"`
	Broker            string `json:"broker"`
	HTTPAddr          string `json:"http_addr"`
}

func buildInner(snap Snapshot) StatusInner {
	buttons := make([]ButtonJSON, len(snap.Buttons))
	for i, b := range snap.Buttons {
		bj := ButtonJSON{
			Name:      b.Name,
			LastEvent: b.LastEvent,
			Counts: CountsJSON{
				SingleTap: b.Counts.SingleTap,
				DoubleTap: b.Counts.DoubleTap,
				LongPress: b.Counts.LongPress,
			},
		}
		if !b.LastEventAt.IsZero() {
			bj.LastEventAt = b.LastEventAt.UTC().Format(time.RFC3339)
		}
		buttons[i] = bj
	}

	return StatusInner{
		Buttons:       buttons,
		UptimeSeconds: int64(snap.Uptime().Truncate(time.Second).Seconds()),
		StartTime:     snap.StartTime.UTC().Format(time.RFC3339),
		Timestamp:     snap.Now.UTC().Format(time.RFC3339),
		MQTT:          MQTTStatus{Connected: snap.MQTTConnected, Broker: snap.Config.Broker},
		Config: ConfigJSON{
			PollMs:            snap.Config.PollMs,
			DebounceMs:        snap.Config.DebounceMs,
			DoubleTapWindowMs: snap.Config.DoubleTapWindowMs,
			LongPressMs:       snap.Config.LongPressMs,
			HeartbeatMs:       snap.Config.HeartbeatMs,
			Broker:            snap.Config.Broker,
			HTTPAddr:          snap.Config.HTTPAddr,
		},
	}
}

func buildNetwork(snap Snapshot, inner *StatusInner) {
	if snap.Network != nil {
		inner.Network = &NetworkJSON{
			Type:       snap.Network.Type,
			IP:         snap.Network.IP,
			Status:     snap.Network.Status,
			Gateway:    snap.Network.Gateway,
			WifiStatus: snap.Network.WifiStatus,
			SSID:       snap.Network.SSID,
		}
	}
}

// FormatJSON returns the JSON status for the web endpoint (no event/reason).
func FormatJSON(snap Snapshot) []byte {
	inner := buildInner(snap)
	buildNetwork(snap, &inner)

	data, _ := json.MarshalIndent(StatusJSON{Status: inner}, "", "  ")
	return data
}

// FormatStatusEvent returns the JSON status for an MQTT system event.
func FormatStatusEvent(snap Snapshot, event, reason string) []byte {
	inner := buildInner(snap)
	inner.Event = event
	inner.Reason = reason
	buildNetwork(snap, &inner)

	data, _ := json.Marshal(StatusJSON{Status: inner})
	return data
}
