package main

const defaultConfig = `
# NOTE: Pins use the GPIO chip's line offsets (BCM numbering on a Pi).

# GPIO sampling cadence. Keep this shorter than debounce_ms.
poll_interval_ms = 20

# Global timings; 0 keeps the built-in defaults (80 / 300 / 1000).
debounce_ms = 80
double_tap_window_ms = 300
long_press_ms = 1000

broker = "tcp://192.168.1.200:1883"
http_addr = ":8080"

# Heartbeat system event interval; 0 disables.
heartbeat_ms = 900000

chip = "gpiochip0"

[[button]]
	name = "power"
	pin = 26
	# Wired to ground through the switch, so pressed reads LOW.
	active_low = true
	pull_up = true
	events = ["double_tap", "long_press"]

[[button]]
	name = "mode"
	pin = 16
	events = ["double_tap"]
	# Per-button timing overrides inherit the globals when 0 or absent.
	# long_press_ms = 2000
`
