// Package doctor runs diagnostic checks over an installation and reports a
// pass/warn/fail checklist.
package doctor

import (
	"fmt"
	"os"
	"strings"

	"github.com/Ramin-Setoodehnia/phantomctl/internal/config"
	"github.com/Ramin-Setoodehnia/phantomctl/internal/systemd"
)

type Status int

const (
	Pass Status = iota
	Warn
	Fail
)

type CheckResult struct {
	Name    string
	Status  Status
	Message string
}

type Report struct {
	Results []CheckResult
}

func Run(paths config.Paths, svc *systemd.Manager) Report {
	var results []CheckResult
	results = append(results, checkBinary(paths))
	results = append(results, checkSymlink(paths))
	results = append(results, checkUnitFile(paths))
	results = append(results, checkService(svc))
	results = append(results, checkDatabase(paths))
	results = append(results, checkTempFiles(paths))
	return Report{Results: results}
}

func checkBinary(paths config.Paths) CheckResult {
	name := "Binary"
	info, err := os.Stat(paths.Binary)
	if err != nil {
		return CheckResult{Name: name, Status: Fail, Message: "not installed"}
	}
	if info.Mode().Perm()&0111 == 0 {
		return CheckResult{Name: name, Status: Fail, Message: "not executable"}
	}
	return CheckResult{Name: name, Status: Pass, Message: paths.Binary}
}

func checkSymlink(paths config.Paths) CheckResult {
	name := "Compatibility link"
	target, err := os.Readlink(paths.Symlink)
	if err != nil {
		return CheckResult{Name: name, Status: Warn, Message: "missing"}
	}
	if target != paths.Binary {
		return CheckResult{Name: name, Status: Fail, Message: fmt.Sprintf("points at %s", target)}
	}
	return CheckResult{Name: name, Status: Pass, Message: "in place"}
}

func checkUnitFile(paths config.Paths) CheckResult {
	name := "Unit file"
	data, err := os.ReadFile(paths.UnitFile)
	if err != nil {
		return CheckResult{Name: name, Status: Fail, Message: "missing"}
	}
	if !strings.Contains(string(data), "ExecStart="+paths.Binary) {
		return CheckResult{Name: name, Status: Warn, Message: "ExecStart does not match the installed binary"}
	}
	return CheckResult{Name: name, Status: Pass, Message: paths.UnitFile}
}

func checkService(svc *systemd.Manager) CheckResult {
	name := "Service"
	if !svc.IsEnabled() {
		return CheckResult{Name: name, Status: Warn, Message: "not enabled"}
	}
	if !svc.IsActive() {
		return CheckResult{Name: name, Status: Fail, Message: "enabled but not active"}
	}
	return CheckResult{Name: name, Status: Pass, Message: "enabled and active"}
}

func checkDatabase(paths config.Paths) CheckResult {
	name := "Configuration"
	if _, err := os.Stat(paths.Database); err != nil {
		return CheckResult{Name: name, Status: Warn, Message: "no database yet; install runs first-time setup"}
	}
	return CheckResult{Name: name, Status: Pass, Message: paths.Database}
}

func checkTempFiles(paths config.Paths) CheckResult {
	name := "Scratch files"
	var leftover []string
	for _, path := range paths.TempFiles {
		if _, err := os.Stat(path); err == nil {
			leftover = append(leftover, path)
		}
	}
	if len(leftover) > 0 {
		return CheckResult{Name: name, Status: Warn, Message: strings.Join(leftover, ", ")}
	}
	return CheckResult{Name: name, Status: Pass, Message: "clean"}
}
