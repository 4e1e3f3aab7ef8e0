package main

import (
	"io"
	"os"
	"path/filepath"
	"text/template"

	"github.com/kardianos/osext"
)

const serviceFile = `
[Unit]
Description=Pushbutton Event Monitor
After=network.target

[Service]
ExecStart={{.BinPath}} run -c {{.ConfigFile}}
Restart=on-failure

[Install]
WantedBy=multi-user.target
`

var serviceTmpl = template.Must(template.New("service").Parse(serviceFile))

// install copies the running binary, writes the systemd unit, and drops a
// default config if none exists. prefix relocates everything for testing
// and packaging.
func install(prefix string) error {
	if prefix == "" {
		prefix = "/"
	}
	bPath, err := osext.Executable()
	if err != nil {
		return err
	}

	src, err := os.Open(bPath)
	if err != nil {
		return err
	}
	defer src.Close()

	binPath := filepath.Join(prefix, "usr/bin/button-monitor")
	os.MkdirAll(filepath.Dir(binPath), 0755)
	dst, err := os.OpenFile(binPath, os.O_WRONLY|os.O_CREATE|os.O_TRUNC, 0755)
	if err != nil {
		return err
	}
	defer dst.Close()

	if _, err = io.Copy(dst, src); err != nil {
		return err
	}
	src.Close()
	dst.Close()

	unitPath := filepath.Join(prefix, "usr/lib/systemd/system/button-monitor.service")
	os.MkdirAll(filepath.Dir(unitPath), 0755)
	dst, err = os.OpenFile(unitPath, os.O_WRONLY|os.O_CREATE|os.O_TRUNC, 0644)
	if err != nil {
		return err
	}
	defer dst.Close()

	err = serviceTmpl.Execute(dst, struct{ BinPath, ConfigFile string }{binPath, configPath})
	if err != nil {
		return err
	}
	dst.Close()

	// Keep an existing config; only write the default when missing.
	cfgPath := filepath.Join(prefix, configPath)
	if _, err := os.Stat(cfgPath); err == nil {
		return nil
	}

	os.MkdirAll(filepath.Dir(cfgPath), 0755)
	dst, err = os.Create(cfgPath)
	if err != nil {
		return err
	}
	defer dst.Close()
	if _, err = io.WriteString(dst, defaultConfig); err != nil {
		return err
	}

	return nil
}
