package app

import (
	"context"
	"encoding/csv"
	"errors"
	"os"
	"path/filepath"
	"sort"

	chart "github.com/wcharczuk/go-chart/v2"
	"gopkg.in/yaml.v3"

	"risk-measures/internal/risk"
)

// catalogDocument is the YAML export layout.
type catalogDocument struct {
	Measures   []catalogEntry    `yaml:"measures"`
	Deprecated map[string]string `yaml:"deprecated"`
}

type catalogEntry struct {
	Symbol   string          `yaml:"symbol"`
	Doc      string          `yaml:"doc,omitempty"`
	Builder  risk.Shape      `yaml:"builder,omitempty"`
	Rendered string          `yaml:"rendered"`
	Measure  risk.Descriptor `yaml:"measure"`
}

// Export writes the catalog as CSV, a PNG composition chart and/or YAML.
func (a *App) Export(ctx context.Context, opts ExportOptions) error {
	if opts.CSVPath == "" && opts.PNGPath == "" && opts.YAMLPath == "" {
		return errors.New("at least one of --csv, --png or --yaml must be provided")
	}

	entries := a.Registry.Entries()
	a.Logger.Info().Int("measures", len(entries)).Msg("exporting catalog")

	if opts.CSVPath != "" {
		if err := a.writeCatalogCSV(a.Config.ResolveExportPath(opts.CSVPath), entries); err != nil {
			return err
		}
	}

	if opts.PNGPath != "" {
		if err := writeCatalogPNG(a.Config.ResolveExportPath(opts.PNGPath), entries, a.Config.Export.ChartWidth); err != nil {
			return err
		}
	}

	if opts.YAMLPath != "" {
		if err := a.writeCatalogYAML(a.Config.ResolveExportPath(opts.YAMLPath), entries); err != nil {
			return err
		}
	}

	return nil
}

func (a *App) writeCatalogCSV(path string, entries []risk.Entry) error {
	if err := ensureDir(path); err != nil {
		return err
	}

	file, err := os.Create(path)
	if err != nil {
		return err
	}
	defer file.Close()

	writer := csv.NewWriter(file)
	defer writer.Flush()

	header := []string{"symbol", "name", "rendered", "measure_type", "asset_class", "unit", "builder", "replaced_by", "doc"}
	if err := writer.Write(header); err != nil {
		return err
	}

	for _, entry := range entries {
		m := entry.Measure
		replacement, _ := a.Registry.DeprecatedAlias(entry.Symbol)
		record := []string{
			entry.Symbol,
			m.Name(),
			m.String(),
			string(m.MeasureType()),
			string(m.AssetClass()),
			string(m.Unit()),
			string(m.Shape()),
			replacement,
			m.Doc(),
		}
		if err := writer.Write(record); err != nil {
			return err
		}
	}

	writer.Flush()
	return writer.Error()
}

func (a *App) writeCatalogYAML(path string, entries []risk.Entry) error {
	if err := ensureDir(path); err != nil {
		return err
	}

	doc := catalogDocument{
		Measures:   make([]catalogEntry, 0, len(entries)),
		Deprecated: a.Registry.DeprecatedAliases(),
	}
	for _, entry := range entries {
		doc.Measures = append(doc.Measures, catalogEntry{
			Symbol:   entry.Symbol,
			Doc:      entry.Measure.Doc(),
			Builder:  entry.Measure.Shape(),
			Rendered: entry.Measure.String(),
			Measure:  entry.Measure,
		})
	}

	file, err := os.Create(path)
	if err != nil {
		return err
	}
	defer file.Close()

	encoder := yaml.NewEncoder(file)
	encoder.SetIndent(2)
	if err := encoder.Encode(doc); err != nil {
		return err
	}
	return encoder.Close()
}

// assetClassCounts tallies entries per asset class; measures without one count as "Any".
func assetClassCounts(entries []risk.Entry) ([]string, map[string]int) {
	counts := make(map[string]int)
	for _, entry := range entries {
		label := string(entry.Measure.AssetClass())
		if label == "" {
			label = "Any"
		}
		counts[label]++
	}
	labels := make([]string, 0, len(counts))
	for label := range counts {
		labels = append(labels, label)
	}
	sort.Strings(labels)
	return labels, counts
}

func writeCatalogPNG(path string, entries []risk.Entry, width int) error {
	if err := ensureDir(path); err != nil {
		return err
	}

	labels, counts := assetClassCounts(entries)
	bars := make([]chart.Value, 0, len(labels))
	for _, label := range labels {
		bars = append(bars, chart.Value{Label: label, Value: float64(counts[label])})
	}

	graph := chart.BarChart{
		Title:      "Risk measures by asset class",
		Width:      width,
		Height:     width * 9 / 16,
		BarWidth:   max(width/(2*len(bars)+1), 8),
		Background: chart.Style{Padding: chart.Box{Top: 40}},
		Bars:       bars,
	}

	file, err := os.Create(path)
	if err != nil {
		return err
	}
	defer file.Close()

	return graph.Render(chart.PNG, file)
}

func ensureDir(path string) error {
	dir := filepath.Dir(path)
	if dir == "." || dir == "" {
		return nil
	}
	return os.MkdirAll(dir, 0o755)
}
