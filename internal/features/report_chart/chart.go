package report_chart

// Dual-axis equity / drawdown figure drawn with gg
// Sizes are given in points and converted with the figure DPI, so the
// layout scales with the resolution

import (
	"image"
	"image/color"
	"math"

	"sample-report/internal/series"

	"github.com/fogleman/gg"
	"golang.org/x/image/font"
)

const (
	titleFontSize  = 15.0
	labelFontSize  = 11.0
	tickFontSize   = 10.0
	legendFontSize = 10.0

	equityLineWidth   = 2.5
	drawdownLineWidth = 1.5
	spineWidth        = 0.8
	tickLength        = 3.5
	fillAlpha         = 0.08
	gridAlpha         = 0.2

	// dashed pattern per unit of line width
	dashOn  = 3.7
	dashOff = 1.6

	outerPad     = 6.0  // figure edge to outermost text
	labelPad     = 4.0  // axis label to tick labels
	tickLabelPad = 3.5  // tick mark to tick label
	titleGap     = 10.0 // title bottom to plot top
	legendPad    = 6.0
	legendHandle = 20.0 // legend line sample length

	maxYTicks  = 7
	maxXTicks  = 7
	axisMargin = 0.05

	equityLabel   = "Equity Curve"
	drawdownLabel = "Drawdown"
	equityAxis    = "Equity ($)"
	drawdownAxis  = "Drawdown ($)"
	tradeAxis     = "Trade Number"
)

var (
	equityColor   = color.RGBA{0x25, 0x63, 0xeb, 0xff}
	drawdownColor = color.RGBA{0xef, 0x44, 0x44, 0xff}
	textColor     = color.Black
	gridColor     = color.RGBA{0xb0, 0xb0, 0xb0, 0xff}
	legendEdge    = color.RGBA{0xcc, 0xcc, 0xcc, 0xff}
)

// Figure describes the rendered chart.
type Figure struct {
	Title    string
	DPI      float64
	WidthIn  float64
	HeightIn float64
}

func (f Figure) pixels() (int, int) {
	return int(math.Round(f.WidthIn * f.DPI)), int(math.Round(f.HeightIn * f.DPI))
}

// canvas owns the drawing context and fonts for one render.
// Close releases both; it is safe to call more than once.
type canvas struct {
	dc    *gg.Context
	faces *faceSet
	dpi   float64
}

func newCanvas(fig Figure) (*canvas, error) {
	faces, err := newFaceSet(fig.DPI)
	if err != nil {
		return nil, err
	}
	w, h := fig.pixels()
	return &canvas{dc: gg.NewContext(w, h), faces: faces, dpi: fig.DPI}, nil
}

func (c *canvas) Close() {
	if c.faces != nil {
		c.faces.Close()
		c.faces = nil
	}
	c.dc = nil
}

func (c *canvas) Image() image.Image {
	return c.dc.Image()
}

// pt converts points to pixels.
func (c *canvas) pt(v float64) float64 {
	return v * c.dpi / 72
}

type plotArea struct {
	left, top, right, bottom float64
}

func (p plotArea) width() float64  { return p.right - p.left }
func (p plotArea) height() float64 { return p.bottom - p.top }

type axisTicks struct {
	rng      axisRange
	values   []float64
	labels   []string
	maxWidth float64
}

func (c *canvas) buildTicks(rng axisRange, maxTicks int) axisTicks {
	values, step := niceTicks(rng, maxTicks)
	decimals := tickDecimals(step)

	c.dc.SetFontFace(c.faces.tick)
	t := axisTicks{rng: rng, values: values, labels: make([]string, len(values))}
	for i, v := range values {
		t.labels[i] = formatTick(v, decimals)
		w, _ := c.dc.MeasureString(t.labels[i])
		t.maxWidth = math.Max(t.maxWidth, w)
	}
	return t
}

// figureLayout records where draw placed the axes and the legend box.
type figureLayout struct {
	plot   plotArea
	legend plotArea
}

// draw composes the whole figure for s.
func (c *canvas) draw(fig Figure, s *series.Series) figureLayout {
	dc := c.dc
	w, h := float64(dc.Width()), float64(dc.Height())

	dc.SetColor(color.White)
	dc.Clear()

	xs := make([]float64, len(s.Equity))
	for i := range xs {
		xs[i] = float64(i)
	}
	xRange := paddedRange(xs, axisMargin)

	xTicks := c.buildTicks(xRange, maxXTicks)
	eqTicks := c.buildTicks(paddedRange(s.Equity, axisMargin), maxYTicks)
	ddTicks := c.buildTicks(paddedRange(s.Drawdown, axisMargin), maxYTicks)

	titleH := c.lineHeight(c.faces.title)
	labelH := c.lineHeight(c.faces.label)
	tickH := c.lineHeight(c.faces.tick)

	area := plotArea{
		left:   c.pt(outerPad) + labelH + c.pt(labelPad) + eqTicks.maxWidth + c.pt(tickLabelPad+tickLength),
		right:  w - (c.pt(outerPad) + labelH + c.pt(labelPad) + ddTicks.maxWidth + c.pt(tickLabelPad+tickLength)),
		top:    c.pt(outerPad) + titleH + c.pt(titleGap),
		bottom: h - (c.pt(outerPad) + labelH + c.pt(labelPad) + tickH + c.pt(tickLabelPad+tickLength)),
	}

	toX := func(v float64) float64 {
		return area.left + (v-xRange.min)/xRange.span()*area.width()
	}
	toY := func(r axisRange, v float64) float64 {
		return area.bottom - (v-r.min)/r.span()*area.height()
	}

	c.drawGrid(area, xTicks, eqTicks, toX, toY)

	// equity fill and line, clipped to the axes
	dc.Push()
	dc.DrawRectangle(area.left, area.top, area.width(), area.height())
	dc.Clip()

	dc.NewSubPath()
	dc.MoveTo(toX(xs[0]), area.bottom)
	for i, v := range s.Equity {
		dc.LineTo(toX(xs[i]), toY(eqTicks.rng, v))
	}
	dc.LineTo(toX(xs[len(xs)-1]), area.bottom)
	dc.ClosePath()
	dc.SetColor(withAlpha(equityColor, fillAlpha))
	dc.Fill()

	c.strokeSeries(xs, s.Equity, toX, func(v float64) float64 { return toY(eqTicks.rng, v) },
		equityColor, c.pt(equityLineWidth), false)
	c.strokeSeries(xs, s.Drawdown, toX, func(v float64) float64 { return toY(ddTicks.rng, v) },
		drawdownColor, c.pt(drawdownLineWidth), true)

	dc.ResetClip()
	dc.Pop()

	c.drawSpines(area)
	c.drawXAxis(area, xTicks, toX)
	c.drawYAxis(area, eqTicks, equityAxis, equityColor, true, toY)
	c.drawYAxis(area, ddTicks, drawdownAxis, drawdownColor, false, toY)
	legend := c.drawLegend(area)

	dc.SetFontFace(c.faces.title)
	dc.SetColor(textColor)
	dc.DrawStringAnchored(fig.Title, w/2, c.pt(outerPad)+titleH/2, 0.5, 0.5)

	return figureLayout{plot: area, legend: legend}
}

func (c *canvas) lineHeight(face font.Face) float64 {
	c.dc.SetFontFace(face)
	return c.dc.FontHeight()
}

func (c *canvas) strokeSeries(xs, ys []float64, toX, toY func(float64) float64, col color.Color, width float64, dashed bool) {
	dc := c.dc
	dc.NewSubPath()
	for i, v := range ys {
		if i == 0 {
			dc.MoveTo(toX(xs[i]), toY(v))
			continue
		}
		dc.LineTo(toX(xs[i]), toY(v))
	}
	c.stroke(col, width, dashed)
}

func (c *canvas) stroke(col color.Color, width float64, dashed bool) {
	dc := c.dc
	dc.SetColor(col)
	dc.SetLineWidth(width)
	dc.SetLineJoin(gg.LineJoinRound)
	dc.SetLineCap(gg.LineCapButt)
	if dashed {
		dc.SetDash(dashOn*width, dashOff*width)
	}
	dc.Stroke()
	dc.SetDash()
}

func (c *canvas) drawGrid(area plotArea, xTicks, yTicks axisTicks, toX func(float64) float64, toY func(axisRange, float64) float64) {
	dc := c.dc
	dc.SetColor(withAlpha(gridColor, gridAlpha))
	dc.SetLineWidth(c.pt(spineWidth))
	for _, v := range xTicks.values {
		x := toX(v)
		dc.DrawLine(x, area.top, x, area.bottom)
		dc.Stroke()
	}
	for _, v := range yTicks.values {
		y := toY(yTicks.rng, v)
		dc.DrawLine(area.left, y, area.right, y)
		dc.Stroke()
	}
}

func (c *canvas) drawSpines(area plotArea) {
	dc := c.dc
	dc.SetColor(textColor)
	dc.SetLineWidth(c.pt(spineWidth))
	dc.DrawRectangle(area.left, area.top, area.width(), area.height())
	dc.Stroke()
}

func (c *canvas) drawXAxis(area plotArea, ticks axisTicks, toX func(float64) float64) {
	dc := c.dc
	dc.SetFontFace(c.faces.tick)
	dc.SetLineWidth(c.pt(spineWidth))
	dc.SetColor(textColor)

	tickLen := c.pt(tickLength)
	for i, v := range ticks.values {
		x := toX(v)
		dc.DrawLine(x, area.bottom, x, area.bottom+tickLen)
		dc.Stroke()
		dc.DrawStringAnchored(ticks.labels[i], x, area.bottom+tickLen+c.pt(tickLabelPad), 0.5, 1)
	}

	dc.SetFontFace(c.faces.label)
	dc.DrawStringAnchored(tradeAxis, (area.left+area.right)/2, float64(dc.Height())-c.pt(outerPad), 0.5, 0)
}

// drawYAxis draws ticks, tick labels and the rotated axis label on the
// left (primary) or right (secondary) side.
func (c *canvas) drawYAxis(area plotArea, ticks axisTicks, label string, col color.Color, left bool, toY func(axisRange, float64) float64) {
	dc := c.dc
	dc.SetFontFace(c.faces.tick)
	dc.SetLineWidth(c.pt(spineWidth))

	tickLen := c.pt(tickLength)
	for i, v := range ticks.values {
		y := toY(ticks.rng, v)
		dc.SetColor(textColor)
		if left {
			dc.DrawLine(area.left-tickLen, y, area.left, y)
			dc.Stroke()
			dc.SetColor(col)
			dc.DrawStringAnchored(ticks.labels[i], area.left-tickLen-c.pt(tickLabelPad), y, 1, 0.5)
		} else {
			dc.DrawLine(area.right, y, area.right+tickLen, y)
			dc.Stroke()
			dc.SetColor(col)
			dc.DrawStringAnchored(ticks.labels[i], area.right+tickLen+c.pt(tickLabelPad), y, 0, 0.5)
		}
	}

	dc.SetFontFace(c.faces.label)
	labelH := dc.FontHeight()
	x := c.pt(outerPad) + labelH/2
	if !left {
		x = float64(dc.Width()) - c.pt(outerPad) - labelH/2
	}
	y := (area.top + area.bottom) / 2

	dc.Push()
	dc.SetColor(col)
	dc.RotateAbout(gg.Radians(-90), x, y)
	dc.DrawStringAnchored(label, x, y, 0.5, 0.5)
	dc.Pop()
}

// drawLegend draws one box holding both series at the upper left of the axes
// and returns the box.
func (c *canvas) drawLegend(area plotArea) plotArea {
	dc := c.dc
	dc.SetFontFace(c.faces.legend)

	type entry struct {
		label  string
		col    color.Color
		width  float64
		dashed bool
	}
	entries := []entry{
		{equityLabel, equityColor, c.pt(equityLineWidth), false},
		{drawdownLabel, drawdownColor, c.pt(drawdownLineWidth), true},
	}

	pad := c.pt(legendPad)
	handle := c.pt(legendHandle)
	rowH := dc.FontHeight() * 1.4

	var textW float64
	for _, e := range entries {
		tw, _ := dc.MeasureString(e.label)
		textW = math.Max(textW, tw)
	}
	boxW := pad + handle + pad + textW + pad
	boxH := pad + rowH*float64(len(entries)) + pad
	x0, y0 := area.left+pad, area.top+pad

	dc.DrawRoundedRectangle(x0, y0, boxW, boxH, c.pt(2))
	dc.SetColor(withAlpha(color.White, 0.8))
	dc.FillPreserve()
	dc.SetColor(legendEdge)
	dc.SetLineWidth(c.pt(spineWidth))
	dc.Stroke()

	for i, e := range entries {
		cy := y0 + pad + rowH*(float64(i)+0.5)
		dc.NewSubPath()
		dc.MoveTo(x0+pad, cy)
		dc.LineTo(x0+pad+handle, cy)
		c.stroke(e.col, e.width, e.dashed)

		dc.SetColor(textColor)
		dc.DrawStringAnchored(e.label, x0+pad+handle+pad, cy, 0, 0.5)
	}
	return plotArea{left: x0, top: y0, right: x0 + boxW, bottom: y0 + boxH}
}

func withAlpha(c color.Color, alpha float64) color.Color {
	r, g, b, _ := c.RGBA()
	return color.NRGBA{
		R: uint8(r >> 8),
		G: uint8(g >> 8),
		B: uint8(b >> 8),
		A: uint8(math.Round(alpha * 255)),
	}
}
