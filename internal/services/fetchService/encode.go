package fetchservice

import (
	"fmt"
	"io"
	"strings"

	"github.com/jedib0t/go-pretty/v6/table"
	"github.com/knadh/koanf/parsers/json"
	"github.com/knadh/koanf/parsers/toml"
	"github.com/knadh/koanf/parsers/yaml"
	"github.com/knadh/koanf/v2"
)

// Output formats accepted by Encode.
const (
	FormatJSON  = "json"
	FormatYAML  = "yaml"
	FormatTOML  = "toml"
	FormatTable = "table"
)

// Map flattens the facts into a document for the structured encoders.
func (f HostFacts) Map() map[string]interface{} {
	m := map[string]interface{}{
		"family":         f.Family,
		"kernel_name":    f.KernelName,
		"kernel_release": f.KernelRelease,
		"architecture":   f.Architecture,
		"distro":         f.DistroName,
		"shell":          f.Shell,
		"memory":         f.Memory,
		"init":           f.Init,
		"uptime":         f.Uptime,
		"storage":        f.Storage,
		"packages": map[string]interface{}{
			"summary":         f.Packages,
			"primary_manager": f.PackageCounts.PrimaryManager,
			"primary":         f.PackageCounts.Primary,
			"snaps":           f.PackageCounts.Snaps,
			"flatpaks":        f.PackageCounts.Flatpaks,
			"formulas":        f.PackageCounts.Formulas,
			"casks":           f.PackageCounts.Casks,
		},
	}
	if f.Device != "" {
		m["device"] = f.Device
	}
	if f.HasDisplay {
		m["desktop"] = f.Desktop
	}
	return m
}

func parserForFormat(format string) (koanf.Parser, error) {
	switch strings.ToLower(format) {
	case FormatJSON:
		return json.Parser(), nil
	case FormatYAML, "yml":
		return yaml.Parser(), nil
	case FormatTOML:
		return toml.Parser(), nil
	default:
		return nil, fmt.Errorf("unknown output format: %s", format)
	}
}

// Encode writes the facts to w in format: json, yaml, toml or table.
func Encode(w io.Writer, f HostFacts, format string) error {
	if strings.ToLower(format) == FormatTable {
		return writeTable(w, f)
	}

	parser, err := parserForFormat(format)
	if err != nil {
		return err
	}

	data, err := parser.Marshal(f.Map())
	if err != nil {
		return fmt.Errorf("encoding facts as %s: %w", format, err)
	}
	if _, err := w.Write(data); err != nil {
		return err
	}
	if len(data) > 0 && data[len(data)-1] != '\n' {
		_, err = io.WriteString(w, "\n")
	}
	return err
}

func writeTable(w io.Writer, f HostFacts) error {
	t := table.NewWriter()
	t.SetOutputMirror(w)
	t.SetStyle(table.StyleLight)
	t.AppendHeader(table.Row{"Fact", "Value"})
	for _, field := range f.Fields() {
		t.AppendRow(table.Row{field.Label, field.Value})
	}
	t.Render()
	return nil
}
