package anim

import (
	"fmt"
	"math"
	"strconv"
	"strings"
)

// DefaultMotionMs is the default duration of a motion path.
const DefaultMotionMs = 700

// maxOffset bounds path coordinates to a few slide sizes off-canvas.
const maxOffset = 4.0

// Point is an offset from the shape's layout position, as fractions of the
// slide width (X) and height (Y). Negative values are left of / above the
// shape; 0 means already at the destination.
type Point struct {
	X, Y float64
}

// MotionPath moves a shape along a straight two-point path.
type MotionPath struct {
	From, To   Point
	DurationMs int
}

func (MotionPath) Category() Category { return CategoryMotion }
func (m MotionPath) Duration() int { return m.DurationMs }
func (MotionPath) PresetID() int { return 0 }
func (MotionPath) descriptor() {}

// Path renders the path in the "M x0 y0 L x1 y1" convention.
func (m MotionPath) Path() string {
	return "M " + formatCoord(m.From.X) + " " + formatCoord(m.From.Y) +
		" L " + formatCoord(m.To.X) + " " + formatCoord(m.To.Y)
}

// NewMotionPath parses expr ("M x0 y0 L x1 y1") and builds a motion path.
func NewMotionPath(expr string, durationMs int) (MotionPath, error) {
	const name = "motion path"

	if err := checkDuration(name, durationMs); err != nil {
		return MotionPath{}, err
	}

	fields := strings.Fields(expr)
	if len(fields) != 6 || fields[0] != "M" || fields[3] != "L" {
		return MotionPath{}, fieldErr(name, "path", fmt.Sprintf("%q", expr), `expected "M x0 y0 L x1 y1"`)
	}

	var coords [4]float64
	for i, s := range []string{fields[1], fields[2], fields[4], fields[5]} {
		v, err := strconv.ParseFloat(s, 64)
		if err != nil || math.IsNaN(v) || math.IsInf(v, 0) {
			return MotionPath{}, fieldErr(name, "path", fmt.Sprintf("%q", expr), "coordinate "+s+" is not a number")
		}
		if math.Abs(v) > maxOffset {
			return MotionPath{}, fieldErr(name, "path", fmt.Sprintf("%q", expr), "coordinate "+s+" is outside ±4 slide sizes")
		}
		coords[i] = v
	}

	return MotionPath{
		From:       Point{X: coords[0], Y: coords[1]},
		To:         Point{X: coords[2], Y: coords[3]},
		DurationMs: durationMs,
	}, nil
}

// PathFrom returns the path that arrives at the shape from offset (dx, dy).
// PathFrom(-0.5, 0) is "M -0.5 0 L 0 0".
func PathFrom(dx, dy float64) string {
	return MotionPath{From: Point{X: dx, Y: dy}}.Path()
}

// ArriveFrom builds a motion path ending at the shape's layout position.
func ArriveFrom(dx, dy float64, durationMs int) (MotionPath, error) {
	return NewMotionPath(PathFrom(dx, dy), durationMs)
}

func SweepFromLeft(durationMs int) (MotionPath, error) {
	return ArriveFrom(-0.5, 0, durationMs)
}

func SweepFromRight(durationMs int) (MotionPath, error) {
	return ArriveFrom(0.5, 0, durationMs)
}

func SweepFromBelow(durationMs int) (MotionPath, error) {
	return ArriveFrom(0, 0.3, durationMs)
}

// PathBetween builds the path that carries a shape laid out at to from the
// frame at from. Slide dimensions are in EMU like the frames.
func PathBetween(from, to Rect, slideW, slideH int64, durationMs int) (MotionPath, error) {
	if slideW <= 0 || slideH <= 0 {
		return MotionPath{}, fieldErr("motion path", "slide size", fmt.Sprintf("%dx%d", slideW, slideH), "must be positive")
	}
	dx := round4(float64(from.X-to.X) / float64(slideW))
	dy := round4(float64(from.Y-to.Y) / float64(slideH))
	return ArriveFrom(dx, dy, durationMs)
}

func round4(v float64) float64 {
	return math.Round(v*10000) / 10000
}

func formatCoord(v float64) string {
	if v == 0 {
		return "0"
	}
	return strconv.FormatFloat(v, 'f', -1, 64)
}
