package systemd

import "fmt"

// unitTemplate is the fixed service definition, parameterized only by the
// working directory and the installed binary path. Overwritten on every
// install.
const unitTemplate = `[Unit]
Description=Phantom Tunnel Service
After=network-online.target
Wants=network-online.target

[Service]
Type=simple
User=root
Group=root
WorkingDirectory=%s
ExecStart=%s --start-panel
Restart=always
RestartSec=5
LimitNOFILE=65536

[Install]
WantedBy=multi-user.target
`

func UnitText(binaryPath, workDir string) string {
	return fmt.Sprintf(unitTemplate, workDir, binaryPath)
}
