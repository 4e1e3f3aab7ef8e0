// Command button-monitor polls pushbutton GPIO inputs, detects tap and
// press events, and publishes them to MQTT.
package main

import (
	"os"

	log "github.com/sirupsen/logrus"
	"github.com/spf13/cobra"
)

var (
	configPath    string
	installPrefix string

	mainCmd = &cobra.Command{
		Use:   "button-monitor",
		Short: "Pushbutton event monitor",
	}
	runCmd = &cobra.Command{
		Use:   "run",
		Short: "Run the monitor daemon",
		Run:   runMonitor,
	}
	stateCmd = &cobra.Command{
		Use:   "state",
		Short: "Read the configured lines once and print their levels",
		Run:   runState,
	}
	installCmd = &cobra.Command{
		Use:   "install",
		Short: "Install the binary, systemd unit, and a default config",
		Run:   runInstall,
	}
)

func init() {
	mainCmd.PersistentFlags().StringVarP(&configPath, "config", "c", "/etc/button-monitor.toml", "path to config file")
	installCmd.Flags().StringVar(&installPrefix, "prefix", "", "install under this prefix instead of /")
}

func main() {
	mainCmd.AddCommand(runCmd, stateCmd, installCmd)
	if err := mainCmd.Execute(); err != nil {
		log.Errorln(err)
		os.Exit(1)
	}
}

func runInstall(cmd *cobra.Command, args []string) {
	if err := install(installPrefix); err != nil {
		log.Fatalln("install:", err)
	}
}

// pi-helper env var names (written to /run/pi-helper.env).
const (
	envNetworkType       = "NETWORK_TYPE"
	envNetworkIP         = "NETWORK_IP"
	envNetworkStatus     = "NETWORK_STATUS"
	envNetworkGateway    = "NETWORK_GATEWAY"
	envNetworkWifiStatus = "NETWORK_WIFI_STATUS"
	envNetworkWifiSSID   = "NETWORK_WIFI_SSID"
)
