// Command axischart-demo displays an animated chart. With no
// arguments it cycles through synthesized chart states; pointed at a
// CSV trace (via -trace or the file picker) it tracks the file and
// animates toward its contents on every change.
package main

import (
	"context"
	"flag"
	"image"
	"image/color"
	"log"
	"os"
	"time"

	"gioui.org/app"
	"gioui.org/io/system"
	"gioui.org/layout"
	"gioui.org/op"
	"gioui.org/op/clip"
	"gioui.org/op/paint"
	"gioui.org/text"
	"gioui.org/widget"
	"gioui.org/widget/material"

	"gioui.org/font/gofont"
	"gioui.org/x/component"
	"gioui.org/x/explorer"
	"git.sr.ht/~gioverse/skel/stream"
	"git.sr.ht/~graphwise/axischart"
	"git.sr.ht/~graphwise/axischart/datasource"
	"golang.org/x/exp/shiny/materialdesign/icons"
)

type (
	C = layout.Context
	D = layout.Dimensions
)

var pauseIcon = func() *widget.Icon {
	icon, _ := widget.NewIcon(icons.AVPause)
	return icon
}()

var playIcon = func() *widget.Icon {
	icon, _ := widget.NewIcon(icons.AVPlayArrow)
	return icon
}()

func main() {
	trace := flag.String("trace", "", "CSV trace file to chart (watched for changes)")
	flag.Parse()

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	source := datasource.NewSource()
	if *trace != "" {
		source.Open(*trace)
	}

	go func() {
		w := app.NewWindow(app.Title("axischart demo"))
		expl := explorer.NewExplorer(w)
		ctl := stream.NewController(ctx, w.Invalidate)
		ui := NewUI(ctl, source, expl)
		if err := loop(w, ui); err != nil {
			log.Fatal(err)
		}
		os.Exit(0)
	}()

	app.Main()
}

func loop(w *app.Window, ui *UI) error {
	var ops op.Ops
	for {
		ev := w.NextEvent()
		ui.expl.ListenEvents(ev)
		switch ev := ev.(type) {
		case system.DestroyEvent:
			return ev.Err
		case system.FrameEvent:
			gtx := layout.NewContext(&ops, ev)
			ui.Layout(gtx)
			ev.Frame(gtx.Ops)
		}
	}
}

// demoPeriod is how long each synthesized state stays on screen.
const demoPeriod = 3 * time.Second

// UI holds the top-level state of the demo.
type UI struct {
	th     *material.Theme
	chart  axischart.Widget
	source *datasource.Source
	states *stream.Stream[datasource.Snapshot]
	snap   datasource.Snapshot
	expl   *explorer.Explorer

	lastSeq    int
	haveTrace  bool
	loadErr    string
	names      []string
	demoStates []axischart.ChartState
	demoIndex  int
	nextSwitch time.Time

	openBtn  widget.Clickable
	pauseBtn widget.Clickable
	paused   bool
	legend   component.GridState
}

func NewUI(ctl *stream.Controller, source *datasource.Source, expl *explorer.Explorer) *UI {
	th := material.NewTheme()
	th.Shaper = text.NewShaper(text.WithCollection(gofont.Collection()), text.NoSystemFonts())
	ui := &UI{
		th:         th,
		source:     source,
		expl:       expl,
		states:     stream.New(ctl, source.States),
		demoStates: demoStates(),
	}
	ui.chart.TransitionDuration = 800 * time.Millisecond
	ui.chart.SetEasing(axischart.EaseInOutCubic)
	ui.names = []string{"smooth", "stepped"}
	return ui
}

// Update consumes new snapshots and drives the demo rotation.
func (ui *UI) Update(gtx C) {
	ui.states.ReadInto(gtx, &ui.snap, datasource.Snapshot{})
	if ui.snap.Seq != ui.lastSeq {
		ui.lastSeq = ui.snap.Seq
		if ui.snap.Err != nil {
			ui.loadErr = ui.snap.Err.Error()
		} else {
			ui.loadErr = ""
			ui.haveTrace = true
			ui.names = ui.snap.Names
			ui.chart.SetState(ui.snap.State, gtx.Now)
		}
	}
	if ui.pauseBtn.Clicked(gtx) {
		ui.paused = !ui.paused
		ui.nextSwitch = gtx.Now.Add(demoPeriod)
	}
	if ui.openBtn.Clicked(gtx) {
		go func() {
			if err := ui.source.OpenFromExplorer(ui.expl); err != nil {
				log.Printf("failed opening trace: %v", err)
			}
		}()
	}
	if !ui.haveTrace && !ui.paused && !gtx.Now.Before(ui.nextSwitch) {
		ui.chart.SetState(ui.demoStates[ui.demoIndex], gtx.Now)
		ui.demoIndex = (ui.demoIndex + 1) % len(ui.demoStates)
		ui.nextSwitch = gtx.Now.Add(demoPeriod)
	}
	if !ui.haveTrace {
		// Keep frames coming so the rotation advances.
		gtx.Execute(op.InvalidateCmd{})
	}
}

func (ui *UI) Layout(gtx C) D {
	ui.Update(gtx)
	return layout.Flex{Axis: layout.Vertical}.Layout(gtx,
		layout.Rigid(ui.layoutControls),
		layout.Flexed(1, ui.chart.Layout),
		layout.Rigid(ui.layoutLegend),
	)
}

func (ui *UI) layoutControls(gtx C) D {
	return layout.Flex{Alignment: layout.Middle}.Layout(gtx,
		layout.Rigid(func(gtx C) D {
			gtx.Constraints.Min = image.Point{}
			return material.Button(ui.th, &ui.openBtn, "Open Trace").Layout(gtx)
		}),
		layout.Rigid(layout.Spacer{Width: 8}.Layout),
		layout.Rigid(func(gtx C) D {
			if ui.haveTrace {
				return D{}
			}
			icon := pauseIcon
			if ui.paused {
				icon = playIcon
			}
			return material.Clickable(gtx, &ui.pauseBtn, func(gtx C) D {
				gtx.Constraints.Min = image.Point{}
				gtx.Constraints.Max = image.Pt(gtx.Dp(32), gtx.Dp(32))
				return icon.Layout(gtx, ui.th.Fg)
			})
		}),
		layout.Rigid(func(gtx C) D {
			if ui.loadErr == "" {
				return D{}
			}
			l := material.Body1(ui.th, ui.loadErr)
			l.Color = color.NRGBA{R: 150, A: 255}
			return l.Layout(gtx)
		}),
	)
}

func (ui *UI) layoutLegend(gtx C) D {
	series := ui.chart.State().Series
	if len(series) == 0 {
		return D{}
	}
	table := component.Table(ui.th, &ui.legend)
	table.HScrollbarStyle.Indicator.MinorWidth = 0
	table.VScrollbarStyle.Indicator.MinorWidth = 0
	colorColWidth := gtx.Dp(50)
	rowHeight := gtx.Sp(20)
	const (
		colorCol = iota
		nameCol
		numCols
	)
	return table.Layout(gtx, len(series), numCols,
		func(axis layout.Axis, index, constraint int) int {
			if axis == layout.Vertical {
				return min(constraint, rowHeight)
			}
			if index == colorCol {
				return min(colorColWidth, constraint)
			}
			return min(constraint-colorColWidth, constraint)
		},
		func(gtx C, index int) D {
			l := material.Body1(ui.th, "Color")
			if index == nameCol {
				l = material.Body1(ui.th, "Series")
			}
			l.Color = ui.th.ContrastFg
			return layout.Background{}.Layout(gtx,
				func(gtx C) D {
					paint.FillShape(gtx.Ops, ui.th.ContrastBg, clip.Rect{Max: gtx.Constraints.Max}.Op())
					return D{Size: gtx.Constraints.Min}
				},
				l.Layout,
			)
		},
		func(gtx C, row, col int) D {
			switch col {
			case colorCol:
				return layout.Center.Layout(gtx, func(gtx C) D {
					sideLen := gtx.Dp(10)
					sz := image.Pt(sideLen, sideLen)
					paint.FillShape(gtx.Ops, series[row].Color, clip.Rect{Max: sz}.Op())
					return D{Size: sz}
				})
			case nameCol:
				name := "series"
				if row < len(ui.names) {
					name = ui.names[row]
				}
				return material.Body2(ui.th, name).Layout(gtx)
			default:
				return D{}
			}
		},
	)
}

// demoStates synthesizes the rotation shown before any trace is
// loaded. The states share list shapes so every transition between
// them interpolates instead of snapping.
func demoStates() []axischart.ChartState {
	smooth := func(pts []axischart.Point, col color.NRGBA) axischart.Series {
		s := axischart.NewSeries(pts, col)
		s.Curved = true
		s.PreventOvershoot = true
		return s
	}
	stepped := func(pts []axischart.Point, col color.NRGBA) axischart.Series {
		s := axischart.NewSeries(pts, col)
		s.Stepped = true
		s.Dashes = []float32{6, 4}
		return s
	}
	teal := color.NRGBA{R: 0x2b, G: 0x7f, B: 0xa8, A: 0xff}
	rust := color.NRGBA{R: 0xa4, G: 0x63, B: 0x3a, A: 0xff}

	a := axischart.ChartState{
		XAxis: axischart.AxisRange{Min: 0, Max: 10},
		YAxis: axischart.AxisRange{Min: 0, Max: 8},
		Grid:  axischart.DefaultGrid(),
		Series: []axischart.Series{
			smooth([]axischart.Point{
				axischart.Pt(0, 1), axischart.Pt(2, 5), axischart.Pt(4, 2),
				axischart.Pt(6, 6), axischart.Pt(8, 3), axischart.Pt(10, 7),
			}, teal),
			stepped([]axischart.Point{
				axischart.Pt(0, 4), axischart.Pt(2, 2), axischart.Pt(4, 5),
				axischart.SeriesBreak(),
				axischart.Pt(8, 1), axischart.Pt(10, 2),
			}, rust),
		},
		Horizontal: []axischart.HorizontalAnnotation{
			{Y1: 6.5, Y2: 8, Color: color.NRGBA{R: 0xa4, G: 0x63, B: 0x3a, A: 0x30}},
		},
		Background: color.NRGBA{R: 0xfa, G: 0xfa, B: 0xf7, A: 0xff},
		Clip:       true,
	}

	b := a
	b.YAxis = axischart.AxisRange{Min: 0, Max: 12}
	b.Series = []axischart.Series{
		smooth([]axischart.Point{
			axischart.Pt(0, 7), axischart.Pt(2, 2), axischart.Pt(4, 9),
			axischart.Pt(6, 1), axischart.Pt(8, 10), axischart.Pt(10, 4),
		}, rust),
		stepped([]axischart.Point{
			axischart.Pt(0, 1), axischart.Pt(2, 6), axischart.Pt(4, 3),
			axischart.SeriesBreak(),
			axischart.Pt(8, 8), axischart.Pt(10, 5),
		}, teal),
	}
	b.Horizontal = []axischart.HorizontalAnnotation{
		{Y1: 10, Y2: 12, Color: color.NRGBA{R: 0x2b, G: 0x7f, B: 0xa8, A: 0x30}},
	}

	return []axischart.ChartState{a, b}
}
