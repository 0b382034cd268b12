package datasource

import (
	"encoding/csv"
	"errors"
	"fmt"
	"image/color"
	"io"
	"log"
	"strconv"
	"strings"

	"git.sr.ht/~graphwise/axischart"
)

// palette cycles through the colors assigned to parsed series.
var palette = []color.NRGBA{
	{R: 0xa4, G: 0x63, B: 0x3a, A: 0xff},
	{R: 0x85, G: 0x76, B: 0x25, A: 0xff},
	{R: 0x51, G: 0x85, B: 0x4d, A: 0xff},
	{R: 0x2b, G: 0x7f, B: 0xa8, A: 0xff},
	{R: 0x72, G: 0x6c, B: 0xae, A: 0xff},
	{R: 0x97, G: 0x5f, B: 0x91, A: 0xff},
}

// ParseSeries reads chart data from CSV. The first record holds
// headings: an X-axis label followed by one name per series. Every
// further record holds an X value followed by one Y value per series;
// an empty cell marks a gap in that series.
//
// Records that fail to parse are logged and skipped rather than
// aborting the whole file, matching how a live-written trace is best
// consumed.
func ParseSeries(r io.Reader) ([]axischart.Series, []string, error) {
	cr := csv.NewReader(newWholeLineReader(r))
	cr.TrimLeadingSpace = true
	headings, err := cr.Read()
	if err != nil {
		return nil, nil, fmt.Errorf("could not read csv headings: %w", err)
	}
	if len(headings) < 2 {
		return nil, nil, fmt.Errorf("csv needs an x column and at least one series, got %d columns", len(headings))
	}
	names := headings[1:]
	points := make([][]axischart.Point, len(names))
	for {
		rec, err := cr.Read()
		if err == io.EOF {
			break
		}
		if err != nil {
			var parseErr *csv.ParseError
			if !errors.As(err, &parseErr) {
				return nil, nil, fmt.Errorf("could not read csv record: %w", err)
			}
			log.Printf("skipping malformed record: %v", err)
			continue
		}
		x, err := strconv.ParseFloat(strings.TrimSpace(rec[0]), 64)
		if err != nil {
			log.Printf("skipping record with bad x value %q: %v", rec[0], err)
			continue
		}
		for i, cell := range rec[1:] {
			cell = strings.TrimSpace(cell)
			if cell == "" {
				points[i] = append(points[i], axischart.SeriesBreak())
				continue
			}
			y, err := strconv.ParseFloat(cell, 64)
			if err != nil {
				log.Printf("skipping cell %q in series %q: %v", cell, names[i], err)
				points[i] = append(points[i], axischart.SeriesBreak())
				continue
			}
			points[i] = append(points[i], axischart.Pt(x, y))
		}
	}
	series := make([]axischart.Series, len(names))
	for i := range series {
		series[i] = axischart.NewSeries(points[i], palette[i%len(palette)])
	}
	return series, names, nil
}

// StateFor assembles a chart state around the given series, fitting
// both axis ranges to the union of the series' cached extrema.
func StateFor(series []axischart.Series) axischart.ChartState {
	var x, y axischart.AxisRange
	first := true
	for i := range series {
		l, ok := series[i].Leftmost()
		if !ok {
			continue
		}
		rt, _ := series[i].Rightmost()
		tp, _ := series[i].Topmost()
		bt, _ := series[i].Bottommost()
		if first {
			x = axischart.AxisRange{Min: l.X, Max: rt.X}
			y = axischart.AxisRange{Min: bt.Y, Max: tp.Y}
			first = false
			continue
		}
		x.Min = min(x.Min, l.X)
		x.Max = max(x.Max, rt.X)
		y.Min = min(y.Min, bt.Y)
		y.Max = max(y.Max, tp.Y)
	}
	return axischart.ChartState{
		XAxis:  x,
		YAxis:  y,
		Grid:   axischart.DefaultGrid(),
		Series: series,
		Clip:   true,
	}
}
