package app

import (
	"errors"
	"io/fs"
	"os"
	"strings"
	"time"

	"github.com/atomicstack/estate-finder/internal/dataset"
	"github.com/atomicstack/estate-finder/internal/logging"
	"github.com/atomicstack/estate-finder/internal/logging/events"
	"github.com/atomicstack/estate-finder/internal/lookup"
	"github.com/atomicstack/estate-finder/internal/ui"
	tea "github.com/charmbracelet/bubbletea"
)

// Config describes user-provided application options.
// Width and Height pin the viewport; InitialWidth and InitialHeight only size
// the first frame before the terminal reports its own size.
type Config struct {
	DataPath      string
	District      string
	Width         int
	Height        int
	InitialWidth  int
	InitialHeight int
	ShowFooter    bool
}

// Run bootstraps and executes the Bubble Tea program.
func Run(cfg Config) error {
	ds, err := LoadDataset(cfg.DataPath)
	if err != nil {
		return err
	}
	program := tea.NewProgram(NewModel(cfg, ds), tea.WithAltScreen())
	_, err = program.Run()
	if errors.Is(err, tea.ErrProgramKilled) {
		return nil
	}
	return err
}

// LoadDataset reads the dataset at path. A missing file is logged and
// replaced by an empty dataset; unreadable or malformed files are errors.
func LoadDataset(path string) (*dataset.Dataset, error) {
	ds, err := dataset.Load(path)
	if errors.Is(err, fs.ErrNotExist) {
		logging.Error(err)
		events.App.DatasetMissing(path)
		return dataset.Empty(), nil
	}
	if err != nil {
		return nil, err
	}
	events.App.DatasetLoaded(path, ds.Len())
	return ds, nil
}

// NewModel wires a lookup controller over ds into the terminal UI.
func NewModel(cfg Config, ds *dataset.Dataset) *ui.Model {
	ctrl := lookup.New(ds, cfg.District)
	m := ui.NewModel(ctrl, cfg.Width, cfg.Height, cfg.ShowFooter)
	m.SeedSize(cfg.InitialWidth, cfg.InitialHeight)
	m.SetSubtitle(DataUpdated(cfg.DataPath))
	return m
}

// DataUpdated describes when the dataset file was last modified, or returns
// "" when there is no readable file.
func DataUpdated(path string) string {
	if strings.TrimSpace(path) == "" {
		return ""
	}
	info, err := os.Stat(path)
	if err != nil || info.IsDir() {
		return ""
	}
	return "data updated: " + info.ModTime().Format(time.DateOnly)
}
