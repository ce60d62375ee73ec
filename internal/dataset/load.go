package dataset

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/tidwall/jsonc"
	"gopkg.in/yaml.v3"
)

// Format identifies an on-disk dataset encoding.
type Format int

const (
	FormatJSON Format = iota
	FormatJSONC
	FormatYAML
	// FormatScript is the page's data.js: a single global assignment such as
	// `window.SZ_HOUSING_DATA = {...};`, with JS comments allowed.
	FormatScript
)

func (f Format) String() string {
	switch f {
	case FormatJSON:
		return "json"
	case FormatJSONC:
		return "jsonc"
	case FormatYAML:
		return "yaml"
	case FormatScript:
		return "script"
	default:
		return fmt.Sprintf("format(%d)", int(f))
	}
}

// FormatForPath picks a format from the file extension.
func FormatForPath(path string) (Format, error) {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".json":
		return FormatJSON, nil
	case ".jsonc":
		return FormatJSONC, nil
	case ".yaml", ".yml":
		return FormatYAML, nil
	case ".js":
		return FormatScript, nil
	default:
		return 0, fmt.Errorf("unsupported dataset extension %q", filepath.Ext(path))
	}
}

// Load reads and parses a dataset file. An empty path yields an empty
// dataset. A missing file is reported with an error wrapping fs.ErrNotExist
// so callers can choose to continue without data.
func Load(path string) (*Dataset, error) {
	if strings.TrimSpace(path) == "" {
		return Empty(), nil
	}
	format, err := FormatForPath(path)
	if err != nil {
		return nil, err
	}
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading %s: %w", path, err)
	}
	ds, err := Parse(data, format)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	return ds, nil
}

// Parse decodes data in the given format, keeping districts in source order.
func Parse(data []byte, format Format) (*Dataset, error) {
	switch format {
	case FormatJSON:
		return parseJSON(data)
	case FormatJSONC:
		return parseJSON(jsonc.ToJSON(data))
	case FormatYAML:
		return parseYAML(data)
	case FormatScript:
		return parseScript(data)
	default:
		return nil, fmt.Errorf("unsupported dataset format %s", format)
	}
}

func parseJSON(data []byte) (*Dataset, error) {
	dec := json.NewDecoder(bytes.NewReader(data))
	tok, err := dec.Token()
	if errors.Is(err, io.EOF) {
		return Empty(), nil
	}
	if err != nil {
		return nil, fmt.Errorf("parsing dataset: %w", err)
	}
	if tok == nil {
		return Empty(), nil
	}
	if delim, ok := tok.(json.Delim); !ok || delim != '{' {
		return nil, fmt.Errorf("parsing dataset: expected object, got %v", tok)
	}
	ds := Empty()
	for dec.More() {
		keyTok, err := dec.Token()
		if err != nil {
			return nil, fmt.Errorf("parsing dataset: %w", err)
		}
		district, ok := keyTok.(string)
		if !ok {
			return nil, fmt.Errorf("parsing dataset: unexpected key %v", keyTok)
		}
		var records []Record
		if err := dec.Decode(&records); err != nil {
			return nil, fmt.Errorf("parsing district %q: %w", district, err)
		}
		ds.put(district, records)
	}
	if _, err := dec.Token(); err != nil {
		return nil, fmt.Errorf("parsing dataset: %w", err)
	}
	return ds, nil
}

func parseYAML(data []byte) (*Dataset, error) {
	var doc yaml.Node
	if err := yaml.Unmarshal(data, &doc); err != nil {
		return nil, fmt.Errorf("parsing dataset: %w", err)
	}
	if len(doc.Content) == 0 {
		return Empty(), nil
	}
	root := doc.Content[0]
	if root.Kind == yaml.ScalarNode && root.Tag == "!!null" {
		return Empty(), nil
	}
	if root.Kind != yaml.MappingNode {
		return nil, fmt.Errorf("parsing dataset: expected mapping at line %d", root.Line)
	}
	ds := Empty()
	for i := 0; i+1 < len(root.Content); i += 2 {
		district := root.Content[i].Value
		var records []Record
		if err := root.Content[i+1].Decode(&records); err != nil {
			return nil, fmt.Errorf("parsing district %q: %w", district, err)
		}
		ds.put(district, records)
	}
	return ds, nil
}

func parseScript(data []byte) (*Dataset, error) {
	stripped := jsonc.ToJSON(data)
	start := bytes.IndexByte(stripped, '{')
	end := bytes.LastIndexByte(stripped, '}')
	if start < 0 || end < start {
		if len(bytes.TrimSpace(stripped)) == 0 {
			return Empty(), nil
		}
		return nil, errors.New("parsing dataset: no object literal found in script")
	}
	ds, err := parseJSON(stripped[start : end+1])
	if err != nil {
		return nil, fmt.Errorf("parsing script: the assigned object must be JSON (quoted keys and strings; comments and trailing commas allowed): %w", err)
	}
	return ds, nil
}
