package main

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/atomicstack/estate-finder/internal/app"
	"github.com/atomicstack/estate-finder/internal/config"
	"github.com/atomicstack/estate-finder/internal/dataset"
	"github.com/atomicstack/estate-finder/internal/logging"
	"github.com/atomicstack/estate-finder/internal/logging/events"
	"golang.org/x/term"
)

func main() {
	runtimeCfg := config.MustLoad()
	if err := config.Validate(runtimeCfg); err != nil {
		fmt.Fprintf(os.Stderr, "Configuration error: %v\n", err)
		os.Exit(2)
	}
	logging.Configure(runtimeCfg.Logging.FilePath)
	logging.SetTraceEnabled(runtimeCfg.Logging.Trace)

	tty := probeTerminal()
	runtimeCfg.App = seedViewport(runtimeCfg.App, tty)
	events.App.Start(startupTracePayload(runtimeCfg, tty))

	if err := app.Run(runtimeCfg.App); err != nil {
		logging.Error(err)
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

// seedViewport gives the first frame the terminal's size when no fixed size
// was configured. Later resizes still come from the terminal.
func seedViewport(cfg app.Config, tty terminalInfo) app.Config {
	if tty.Detected == nil {
		return cfg
	}
	if cfg.Width == 0 {
		cfg.InitialWidth = tty.Detected.Width
	}
	if cfg.Height == 0 {
		cfg.InitialHeight = tty.Detected.Height
	}
	return cfg
}

type datasetInfo struct {
	Path     string `json:"path"`
	Resolved string `json:"resolved,omitempty"`
	Format   string `json:"format,omitempty"`
	Exists   bool   `json:"exists"`
	Bytes    int64  `json:"bytes,omitempty"`
	Error    string `json:"error,omitempty"`
}

// describeDataset reports where the dataset will be read from without
// parsing it.
func describeDataset(path string) datasetInfo {
	info := datasetInfo{Path: path}
	if path == "" {
		return info
	}
	if abs, err := filepath.Abs(path); err == nil {
		info.Resolved = abs
	}
	if format, err := dataset.FormatForPath(path); err == nil {
		info.Format = format.String()
	} else {
		info.Error = err.Error()
	}
	stat, err := os.Stat(path)
	switch {
	case err == nil && stat.IsDir():
		info.Error = "is a directory"
	case err == nil:
		info.Exists = true
		info.Bytes = stat.Size()
	case !os.IsNotExist(err):
		info.Error = err.Error()
	}
	return info
}

// startupTracePayload records what the front-end is about to show: which
// dataset, which district, and at what size.
func startupTracePayload(cfg config.Config, tty terminalInfo) map[string]interface{} {
	payload := map[string]interface{}{
		"argv":     cfg.Args,
		"flags":    cfg.Flags,
		"dataset":  describeDataset(cfg.App.DataPath),
		"district": cfg.App.District,
		"viewport": map[string]interface{}{
			"width":         cfg.App.Width,
			"height":        cfg.App.Height,
			"initialWidth":  cfg.App.InitialWidth,
			"initialHeight": cfg.App.InitialHeight,
			"footer":        cfg.App.ShowFooter,
		},
		"logging": map[string]interface{}{
			"file":  logging.Path(),
			"trace": cfg.Logging.Trace,
		},
		"tty": tty,
	}
	if cwd, err := os.Getwd(); err == nil {
		payload["cwd"] = cwd
	}
	return payload
}

type terminalInfo struct {
	Detected *terminalSize  `json:"detected,omitempty"`
	Probes   []terminalProbe `json:"probes"`
}

type terminalSize struct {
	Source string `json:"source"`
	Width  int    `json:"width"`
	Height int    `json:"height"`
}

type terminalProbe struct {
	Name       string `json:"name"`
	IsTerminal bool   `json:"is_terminal"`
	Width      int    `json:"width,omitempty"`
	Height     int    `json:"height,omitempty"`
	Error      string `json:"error,omitempty"`
}

// probeTerminal checks stdout, stderr, then stdin for a terminal size. The
// renderer writes to stdout, so it is preferred.
func probeTerminal() terminalInfo {
	var info terminalInfo
	for _, f := range []*os.File{os.Stdout, os.Stderr, os.Stdin} {
		probe := terminalProbe{Name: filepath.Base(f.Name())}
		fd := int(f.Fd())
		if fd >= 0 && term.IsTerminal(fd) {
			probe.IsTerminal = true
			width, height, err := term.GetSize(fd)
			if err != nil {
				probe.Error = err.Error()
			} else {
				probe.Width, probe.Height = width, height
				if info.Detected == nil && width > 0 && height > 0 {
					info.Detected = &terminalSize{Source: probe.Name, Width: width, Height: height}
				}
			}
		}
		info.Probes = append(info.Probes, probe)
	}
	return info
}
