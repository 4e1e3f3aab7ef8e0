package main

import (
	"context"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	log "github.com/sirupsen/logrus"
	"github.com/spf13/cobra"

	"github.com/sweeney/button-monitor/internal/button"
	"github.com/sweeney/button-monitor/internal/config"
	"github.com/sweeney/button-monitor/internal/gpio"
	"github.com/sweeney/button-monitor/internal/mqtt"
	"github.com/sweeney/button-monitor/internal/status"
	"github.com/sweeney/button-monitor/internal/web"
)

// monitored pairs one button's configuration with its detector.
type monitored struct {
	name string
	det  *button.Detector
}

func runMonitor(cmd *cobra.Command, args []string) {
	cfg, err := config.Load(configPath)
	if err != nil {
		log.Fatalln(err)
	}
	if cfg.Broker == "" {
		log.Fatalln("config: broker is required")
	}
	if err := run(cfg); err != nil {
		log.Fatalln(err)
	}
}

func runState(cmd *cobra.Command, args []string) {
	cfg, err := config.Load(configPath)
	if err != nil {
		log.Fatalln(err)
	}

	reader, err := gpio.NewRealReader(cfg.Chip, pinsFor(cfg))
	if err != nil {
		log.Fatalln("init gpio:", err)
	}
	defer reader.Close()

	levels, err := reader.Read()
	if err != nil {
		log.Fatalln("read gpio:", err)
	}
	for i, b := range cfg.Button {
		pressed := "released"
		if levels[i] == rawFor(b.ActiveLevel()) {
			pressed = "pressed"
		}
		fmt.Printf("%s (pin %d): %d (%s)\n", b.Name, b.Pin, levels[i], pressed)
	}
}

func pinsFor(cfg *config.Config) []gpio.Pin {
	pins := make([]gpio.Pin, len(cfg.Button))
	for i, b := range cfg.Button {
		pins[i] = gpio.Pin{Offset: b.Pin, PullUp: b.PullUp}
	}
	return pins
}

func rawFor(l button.Level) int {
	if l == button.High {
		return 1
	}
	return 0
}

func newDetectors(cfg *config.Config) []monitored {
	buttons := make([]monitored, len(cfg.Button))
	for i, b := range cfg.Button {
		det := button.NewDetector(b.ActiveLevel())
		det.EnableEvents(b.Mask())
		det.SetDelays(b.Delays(cfg))
		buttons[i] = monitored{name: b.Name, det: det}
	}
	return buttons
}

func run(cfg *config.Config) error {
	reader, err := gpio.NewRealReader(cfg.Chip, pinsFor(cfg))
	if err != nil {
		return fmt.Errorf("init gpio: %w", err)
	}
	defer reader.Close()

	publisher := mqtt.NewRealPublisher(cfg.Broker)
	defer publisher.Close()

	names := make([]string, len(cfg.Button))
	for i, b := range cfg.Button {
		names[i] = b.Name
	}
	tracker := status.NewTracker(time.Now(), status.Config{
		PollMs:            cfg.PollInterval().Milliseconds(),
		DebounceMs:        cfg.DebounceMs,
		DoubleTapWindowMs: cfg.DoubleTapWindowMs,
		LongPressMs:       cfg.LongPressMs,
		HeartbeatMs:       cfg.Heartbeat().Milliseconds(),
		Broker:            cfg.Broker,
		HTTPAddr:          cfg.HTTPAddr,
	}, names)
	if net := readNetworkInfo(); net != nil {
		tracker.SetNetwork(net)
	}

	// Publish startup event with full status snapshot
	snap := tracker.Snapshot()
	startupEvent := mqtt.SystemEvent{
		Timestamp:  snap.Now,
		Event:      "STARTUP",
		Retained:   true,
		RawPayload: status.FormatStatusEvent(snap, "STARTUP", ""),
	}
	if err := publisher.PublishSystem(startupEvent); err != nil {
		log.Warnf("failed to publish startup event: %v", err)
	} else {
		log.Info("published startup event")
	}

	// Start HTTP status server
	if cfg.HTTPAddr != "" {
		srv := web.New(cfg.HTTPAddr, tracker)
		go func() {
			if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
				log.Errorf("http server error: %v", err)
			}
		}()
		defer srv.Shutdown(context.Background())
		log.Infof("http status server listening on %s", cfg.HTTPAddr)
	}

	log.Infof("started: %d buttons poll=%v broker=%s heartbeat=%v",
		len(cfg.Button), cfg.PollInterval(), cfg.Broker, cfg.Heartbeat())

	ticker := time.NewTicker(cfg.PollInterval())
	defer ticker.Stop()

	sigCh := make(chan os.Signal, 1)
	signal.Notify(sigCh, syscall.SIGINT, syscall.SIGTERM)

	return runLoop(reader, publisher, publisher, tracker, newDetectors(cfg), cfg.Heartbeat(), time.Now, ticker.C, sigCh)
}

func runLoop(reader gpio.Reader, publisher mqtt.Publisher, mqttStatus mqtt.ConnectionStatus, tracker *status.Tracker, buttons []monitored, heartbeat time.Duration, now func() time.Time, tick <-chan time.Time, sig <-chan os.Signal) error {
	lastHeartbeat := now()

	for {
		select {
		case s := <-sig:
			log.Infof("received %v, shutting down", s)
			event := mqtt.SystemEvent{
				Timestamp: now(),
				Event:     "SHUTDOWN",
				Reason:    signalName(s),
				Retained:  true,
			}
			if tracker != nil {
				if mqttStatus != nil {
					tracker.SetMQTTConnected(mqttStatus.IsConnected())
				}
				snap := tracker.Snapshot()
				event.RawPayload = status.FormatStatusEvent(snap, "SHUTDOWN", signalName(s))
			}
			if err := publisher.PublishSystem(event); err != nil {
				log.Warnf("failed to publish shutdown event: %v", err)
			} else {
				log.Info("published shutdown event")
			}
			return nil

		case <-tick:
			t := now()
			levels, err := reader.Read()
			if err != nil {
				log.Errorf("gpio read error: %v", err)
				continue
			}

			for i := range buttons {
				b := &buttons[i]
				raw := button.Low
				if levels[i] != 0 {
					raw = button.High
				}
				b.det.Poll(raw, t)

				if !b.det.EventDetected() {
					continue
				}
				kind := b.det.TakeEvent()
				log.Infof("event: %s %s", b.name, kind)
				if tracker != nil {
					tracker.RecordEvent(b.name, kind, t)
				}
				if err := publisher.Publish(mqtt.ButtonEvent{
					Timestamp: t,
					Button:    b.name,
					Event:     kind,
				}); err != nil {
					log.Errorf("publish error: %v", err)
					// Don't crash on publish failure
				}
			}

			if tracker != nil && mqttStatus != nil {
				tracker.SetMQTTConnected(mqttStatus.IsConnected())
			}

			if heartbeat > 0 && t.Sub(lastHeartbeat) >= heartbeat {
				lastHeartbeat = t
				hbEvent := mqtt.SystemEvent{
					Timestamp: t,
					Event:     "HEARTBEAT",
				}
				if tracker != nil {
					// Refresh network info for heartbeat
					if net := readNetworkInfo(); net != nil {
						tracker.SetNetwork(net)
					}
					snap := tracker.Snapshot()
					total := snap.TotalCounts()
					log.Infof("heartbeat: uptime=%v single=%d double=%d long=%d",
						snap.Uptime().Truncate(time.Second), total.SingleTap, total.DoubleTap, total.LongPress)
					hbEvent.RawPayload = status.FormatStatusEvent(snap, "HEARTBEAT", "")
				}
				if err := publisher.PublishSystem(hbEvent); err != nil {
					log.Warnf("heartbeat publish error: %v", err)
				}
			}
		}
	}
}

func signalName(s os.Signal) string {
	switch s {
	case syscall.SIGINT:
		return "SIGINT"
	case syscall.SIGTERM:
		return "SIGTERM"
	default:
		return "UNKNOWN"
	}
}

func readNetworkInfo() *status.NetworkInfo {
	s := os.Getenv(envNetworkStatus)
	if s == "" {
		return nil
	}
	return &status.NetworkInfo{
		Type:       os.Getenv(envNetworkType),
		IP:         os.Getenv(envNetworkIP),
		Status:     s,
		Gateway:    os.Getenv(envNetworkGateway),
		WifiStatus: os.Getenv(envNetworkWifiStatus),
		SSID:       os.Getenv(envNetworkWifiSSID),
	}
}
