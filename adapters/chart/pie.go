// Package chart renders verdict charts to the media directory.
package chart

import (
	"fmt"
	"os"
	"path"
	"path/filepath"

	"adqa/internal"
	"adqa/internal/errors"

	"github.com/go-echarts/go-echarts/v2/charts"
	"github.com/go-echarts/go-echarts/v2/opts"
	"github.com/google/uuid"
)

// PieRenderer writes pie charts as standalone HTML files under the
// media directory and returns the web path the page embeds.
type PieRenderer struct {
	mediaDir string
	webBase  string
	log      *internal.Logger
}

// NewPieRenderer creates a renderer writing under mediaDir, served at
// webBase (e.g. "/media").
func NewPieRenderer(mediaDir, webBase string) *PieRenderer {
	return &PieRenderer{mediaDir: mediaDir, webBase: webBase, log: internal.DefaultLogger}
}

// RenderPie renders labeled slices to chart_<uuid>.html and returns its
// web path
func (r *PieRenderer) RenderPie(title string, labels []string, values []float64) (string, error) {
	if len(labels) != len(values) {
		return "", errors.InvalidInput("chart labels and values must have equal length")
	}

	pie := charts.NewPie()
	pie.SetGlobalOptions(charts.WithTitleOpts(opts.Title{Title: title}))

	items := make([]opts.PieData, len(labels))
	for i, label := range labels {
		items[i] = opts.PieData{Name: label, Value: values[i]}
	}
	pie.AddSeries("ad groups", items).
		SetSeriesOptions(charts.WithLabelOpts(opts.Label{Show: opts.Bool(true), Formatter: "{b}: {d}%"}))

	if err := os.MkdirAll(r.mediaDir, 0o755); err != nil {
		return "", errors.Wrap(err, "failed to create media directory")
	}

	filename := fmt.Sprintf("chart_%s.html", uuid.New().String())
	fullPath := filepath.Join(r.mediaDir, filename)
	f, err := os.Create(fullPath)
	if err != nil {
		return "", errors.Wrapf(err, "failed to create chart file %s", fullPath)
	}
	defer f.Close()

	if err := pie.Render(f); err != nil {
		return "", errors.Wrap(err, "failed to render chart")
	}

	r.log.Debug("[PieRenderer] chart written to %s", fullPath)
	return path.Join(r.webBase, filename), nil
}
