// Package layout holds the named slide layouts and the animation
// choreography each one applies to its shapes by role.
package layout

import (
	"fmt"
	"slices"
	"strings"

	"github.com/ivlev/slideanim/internal/scenario"
)

// Layout names.
const (
	Hero      = "hero"
	Split     = "split"
	Grid      = "grid"
	Numbered  = "numbered"
	Timeline  = "timeline"
	Spotlight = "spotlight"
)

// Shape roles used by the choreographies.
const (
	RoleAccentBar   = "accent-bar"
	RoleDeco        = "deco"
	RoleIndex       = "index"
	RoleTitle       = "title"
	RoleSubtitle    = "subtitle"
	RoleDetail      = "detail"
	RoleBody        = "body"
	RoleCard        = "card"
	RoleCardBar     = "card-bar"
	RoleLabel       = "label"
	RoleStrip       = "strip"
	RolePanel       = "panel"
	RoleSeparator   = "separator"
	RoleLine        = "line"
	RoleBadge       = "badge"
	RoleDot         = "dot"
	RolePointNumber = "point-number"
	RolePoint       = "point"
)

// Cue is what a role does: an effect starting at DelayMs, and StepMs later
// for each further shape with the same role. Wrap > 0 restarts the step
// every Wrap shapes, for roles laid out in columns.
type Cue struct {
	Effect    string
	DelayMs   int
	StepMs    int
	Wrap      int
	Magnitude int
}

// delay is the start delay of the n-th shape (from 0) with the cue's role.
func (c Cue) delay(n int) int {
	if c.Wrap > 0 {
		n %= c.Wrap
	}
	return c.DelayMs + n*c.StepMs
}

// Choreography maps roles to cues for one layout.
type Choreography struct {
	Name string
	Cues map[string]Cue
}

var choreographies = map[string]Choreography{
	Hero: {Name: Hero, Cues: map[string]Cue{
		RoleAccentBar: {Effect: scenario.EffectWipe},
		RoleDeco:      {Effect: scenario.EffectZoom, DelayMs: 80, StepMs: 60},
		RoleIndex:     {Effect: scenario.EffectAppear, DelayMs: 200},
		RoleTitle:     {Effect: scenario.EffectFloatUp, DelayMs: 280},
		RoleSubtitle:  {Effect: scenario.EffectFade, DelayMs: 480},
		RoleDetail:    {Effect: scenario.EffectFade, DelayMs: 660},
	}},
	Split: {Name: Split, Cues: map[string]Cue{
		RoleAccentBar: {Effect: scenario.EffectWipe},
		RoleIndex:     {Effect: scenario.EffectAppear, DelayMs: 100},
		RoleTitle:     {Effect: scenario.EffectFlyIn, DelayMs: 200},
		RoleCard:      {Effect: scenario.EffectFade, DelayMs: 270},
		RoleCardBar:   {Effect: scenario.EffectWipe, DelayMs: 320},
		RoleSubtitle:  {Effect: scenario.EffectFade, DelayMs: 370},
		RoleLabel:     {Effect: scenario.EffectAppear, DelayMs: 390},
		RoleBody:      {Effect: scenario.EffectFlyIn, DelayMs: 480},
		RoleDetail:    {Effect: scenario.EffectFade, DelayMs: 540},
	}},
	Grid: {Name: Grid, Cues: map[string]Cue{
		RoleStrip:       {Effect: scenario.EffectFade},
		RoleIndex:       {Effect: scenario.EffectAppear, DelayMs: 80},
		RoleTitle:       {Effect: scenario.EffectFloatUp, DelayMs: 160},
		RoleSubtitle:    {Effect: scenario.EffectFade, DelayMs: 330},
		RoleCard:        {Effect: scenario.EffectZoom, DelayMs: 420, StepMs: 130},
		RoleBadge:       {Effect: scenario.EffectGrow, DelayMs: 470, StepMs: 130, Magnitude: 115},
		RolePointNumber: {Effect: scenario.EffectAppear, DelayMs: 470, StepMs: 130},
		RolePoint:       {Effect: scenario.EffectFlyIn, DelayMs: 520, StepMs: 130},
	}},
	Numbered: {Name: Numbered, Cues: map[string]Cue{
		RolePanel:       {Effect: scenario.EffectFade},
		RoleSeparator:   {Effect: scenario.EffectWipe, DelayMs: 100},
		RoleIndex:       {Effect: scenario.EffectAppear, DelayMs: 150},
		RoleTitle:       {Effect: scenario.EffectFlyIn, DelayMs: 240},
		RoleSubtitle:    {Effect: scenario.EffectFade, DelayMs: 390},
		RoleDetail:      {Effect: scenario.EffectFade, DelayMs: 490},
		RoleDot:         {Effect: scenario.EffectZoom, DelayMs: 300, StepMs: 160},
		RolePointNumber: {Effect: scenario.EffectAppear, DelayMs: 320, StepMs: 160},
		RolePoint:       {Effect: scenario.EffectSweepLeft, DelayMs: 380, StepMs: 160},
	}},
	Timeline: {Name: Timeline, Cues: map[string]Cue{
		RoleIndex:       {Effect: scenario.EffectAppear},
		RoleTitle:       {Effect: scenario.EffectFlyIn, DelayMs: 100},
		RoleSubtitle:    {Effect: scenario.EffectFade, DelayMs: 280},
		RoleLine:        {Effect: scenario.EffectWipe, DelayMs: 380},
		RoleDot:         {Effect: scenario.EffectZoom, DelayMs: 500, StepMs: 160},
		RolePointNumber: {Effect: scenario.EffectAppear, DelayMs: 520, StepMs: 160},
		RoleCard:        {Effect: scenario.EffectFade, DelayMs: 560, StepMs: 160},
		RolePoint:       {Effect: scenario.EffectFlyIn, DelayMs: 620, StepMs: 160},
	}},
	Spotlight: {Name: Spotlight, Cues: map[string]Cue{
		RoleAccentBar: {Effect: scenario.EffectWipe},
		RoleIndex:     {Effect: scenario.EffectAppear, DelayMs: 100},
		RoleTitle:     {Effect: scenario.EffectFloatUp, DelayMs: 200},
		RoleSubtitle:  {Effect: scenario.EffectFade, DelayMs: 350},
		RolePoint:     {Effect: scenario.EffectFlyIn, DelayMs: 450, StepMs: 130, Wrap: 2},
		RoleCard:      {Effect: scenario.EffectFade, DelayMs: 700},
		RoleCardBar:   {Effect: scenario.EffectSpin, DelayMs: 760, Magnitude: 90},
		RoleLabel:     {Effect: scenario.EffectAppear, DelayMs: 790},
		RoleDetail:    {Effect: scenario.EffectFade, DelayMs: 840},
	}},
}

// rotation is the order layouts cycle through for middle slides without a
// usable layout of their own.
var rotation = []string{Hero, Split, Grid, Numbered, Timeline, Spotlight}

var aliases = map[string]string{
	"title-hero":   Hero,
	"two-column":   Split,
	"icon-grid":    Grid,
	"stat-callout": Numbered,
	"full-detail":  Spotlight,
}

// Normalize resolves a layout name or alias, "" when unknown.
func Normalize(name string) string {
	n := strings.ReplaceAll(strings.ToLower(strings.TrimSpace(name)), "_", "-")
	if a, ok := aliases[n]; ok {
		n = a
	}
	if _, ok := choreographies[n]; !ok {
		return ""
	}
	return n
}

// Lookup returns the choreography for a layout name or alias.
func Lookup(name string) (Choreography, error) {
	n := Normalize(name)
	if n == "" {
		return Choreography{}, fmt.Errorf("unknown layout: %s", name)
	}
	return choreographies[n], nil
}

// Names lists the layout names in order.
func Names() []string {
	names := make([]string, 0, len(choreographies))
	for n := range choreographies {
		names = append(names, n)
	}
	slices.Sort(names)
	return names
}

// Pick chooses the layout for the index-th (from 1) of total slides. The
// first and last slides are always heroes; others keep a known requested
// layout or cycle through the non-hero layouts.
func Pick(index, total int, requested string) string {
	if index <= 1 || index >= total {
		return Hero
	}
	if n := Normalize(requested); n != "" {
		return n
	}
	return rotation[(index-1)%(len(rotation)-1)+1]
}
