package timing

import (
	"fmt"
	"strings"

	"github.com/ivlev/slideanim/internal/anim"
	"github.com/ivlev/slideanim/internal/ids"
	"github.com/ivlev/slideanim/internal/slide"
)

// Group ids for non-entrance blocks. Entrance groups are numbered from 1 by
// position.
const (
	grpGrow   = 99
	grpShrink = 94
	grpSpin   = 98
	grpPulse  = 97
	grpMotion = 96
	grpTeeter = 95
)

const (
	pulseScale  = 108 // percent
	teeterAngle = 4   // degrees either side
)

// Build serializes the sequence into a standalone p:timing fragment. Every
// time node takes its id from alloc in emission order, so ids increase down
// the document. An empty sequence still yields a valid timing tree.
func (s *Sequence) Build(alloc *ids.Allocator) string {
	var b strings.Builder

	rootID := alloc.Allocate()
	seqID := alloc.Allocate()
	fmt.Fprintf(&b, `<p:timing xmlns:p="%s"><p:tnLst><p:par>`, slide.NSPresentation)
	fmt.Fprintf(&b, `<p:cTn id="%d" dur="indefinite" restart="whenNotActive" nodeType="tmRoot"><p:childTnLst>`, rootID)
	fmt.Fprintf(&b, `<p:seq concurrent="1" nextAc="seek"><p:cTn id="%d" dur="indefinite" nodeType="mainSeq"><p:childTnLst>`, seqID)

	for i, a := range s.Entrances() {
		writeEntrance(&b, alloc, a, i+1)
	}
	for _, a := range s.Extras() {
		switch d := a.Descriptor.(type) {
		case anim.Emphasis:
			writeEmphasis(&b, alloc, a, d)
		case anim.MotionPath:
			writeMotion(&b, alloc, a, d)
		}
	}

	b.WriteString(`</p:childTnLst></p:cTn>`)
	b.WriteString(`<p:prevCondLst><p:cond evt="onPrev" delay="0"><p:tgtEl><p:sldTgt/></p:tgtEl></p:cond></p:prevCondLst>`)
	b.WriteString(`<p:nextCondLst><p:cond evt="onNext" delay="0"><p:tgtEl><p:sldTgt/></p:tgtEl></p:cond></p:nextCondLst>`)
	b.WriteString(`</p:seq></p:childTnLst></p:cTn></p:par></p:tnLst><p:bldLst/></p:timing>`)
	return b.String()
}

// Inject builds seq and installs it as tree's timing. A nil alloc starts
// numbering above the slide's largest shape id.
func Inject(tree *slide.Tree, seq *Sequence, alloc *ids.Allocator) slide.Result {
	if tree == nil {
		return slide.SetTiming(nil, "")
	}
	if seq == nil {
		seq = NewSequence()
	}
	if alloc == nil {
		alloc = ids.Above(tree.MaxShapeID())
	}
	return slide.SetTiming(tree, seq.Build(alloc))
}

func openBlock(b *strings.Builder, id ids.ID, preset int, class string, subtype, group int, a Action) {
	fmt.Fprintf(b, `<p:par><p:cTn id="%d" presetID="%d" presetClass="%s" presetSubtype="%d" fill="hold" grpId="%d" nodeType="%s">`,
		id, preset, class, subtype, group, a.Trigger.nodeType())
	fmt.Fprintf(b, `<p:stCondLst><p:cond delay="%d"/></p:stCondLst><p:childTnLst>`, a.StartDelay())
}

func closeBlock(b *strings.Builder) {
	b.WriteString(`</p:childTnLst></p:cTn></p:par>`)
}

func target(spid int) string {
	return fmt.Sprintf(`<p:tgtEl><p:spTgt spid="%d"/></p:tgtEl>`, spid)
}

func writeVisible(b *strings.Builder, alloc *ids.Allocator, spid int) {
	fmt.Fprintf(b, `<p:set><p:cBhvr><p:cTn id="%d" dur="1" fill="hold"/>%s`, alloc.Allocate(), target(spid))
	b.WriteString(`<p:attrNameLst><p:attrName>style.visibility</p:attrName></p:attrNameLst></p:cBhvr><p:to><p:strVal val="visible"/></p:to></p:set>`)
}

func writeEntrance(b *strings.Builder, alloc *ids.Allocator, a Action, group int) {
	e := a.Descriptor.(anim.Entrance)
	spid := a.Target.SpID

	openBlock(b, alloc.Allocate(), e.PresetID(), "entr", e.Subtype, group, a)
	writeVisible(b, alloc, spid)
	if e.Filter != anim.FilterNone {
		fmt.Fprintf(b, `<p:animEffect transition="in" filter="%s"><p:cBhvr><p:cTn id="%d" dur="%d"/>%s</p:cBhvr></p:animEffect>`,
			e.Filter, alloc.Allocate(), e.Duration(), target(spid))
	}
	closeBlock(b)
}

func writeEmphasis(b *strings.Builder, alloc *ids.Allocator, a Action, e anim.Emphasis) {
	spid := a.Target.SpID

	switch e.Kind {
	case anim.EmphasisGrow, anim.EmphasisShrink:
		group := grpGrow
		if e.Kind == anim.EmphasisShrink {
			group = grpShrink
		}
		openBlock(b, alloc.Allocate(), e.PresetID(), "emph", 0, group, a)
		writeScale(b, alloc, spid, e.Magnitude, e.Duration(), 1)
	case anim.EmphasisPulse:
		openBlock(b, alloc.Allocate(), e.PresetID(), "emph", 0, grpPulse, a)
		writeScale(b, alloc, spid, pulseScale, e.Duration(), e.Magnitude)
	case anim.EmphasisSpin:
		openBlock(b, alloc.Allocate(), e.PresetID(), "emph", 0, grpSpin, a)
		writeRotate(b, alloc, spid, e.Magnitude, fmt.Sprintf(`dur="%d" fill="hold"`, e.Duration()))
	case anim.EmphasisTeeter:
		openBlock(b, alloc.Allocate(), e.PresetID(), "emph", 0, grpTeeter, a)
		writeRotate(b, alloc, spid, teeterAngle,
			fmt.Sprintf(`dur="%d" autoRev="1" repeatCount="%d"`, e.Duration(), repeatCount(e.Magnitude)))
	default:
		return
	}
	closeBlock(b)
}

// writeScale scales the target to percent and back, repeated count times.
func writeScale(b *strings.Builder, alloc *ids.Allocator, spid, percent, durationMs, count int) {
	repeat := ""
	if count > 1 {
		repeat = fmt.Sprintf(` repeatCount="%d"`, repeatCount(count))
	}
	fmt.Fprintf(b, `<p:animScale><p:cBhvr><p:cTn id="%d" dur="%d" autoRev="1"%s/>%s</p:cBhvr>`,
		alloc.Allocate(), durationMs, repeat, target(spid))
	fmt.Fprintf(b, `<p:from x="100000" y="100000"/><p:to x="%d" y="%d"/></p:animScale>`, percent*1000, percent*1000)
}

// writeRotate turns the target by degrees.
func writeRotate(b *strings.Builder, alloc *ids.Allocator, spid, degrees int, timing string) {
	fmt.Fprintf(b, `<p:animRot by="%d"><p:cBhvr><p:cTn id="%d" %s/>%s`, degrees*60000, alloc.Allocate(), timing, target(spid))
	b.WriteString(`<p:attrNameLst><p:attrName>r</p:attrName></p:attrNameLst></p:cBhvr></p:animRot>`)
}

func writeMotion(b *strings.Builder, alloc *ids.Allocator, a Action, m anim.MotionPath) {
	spid := a.Target.SpID

	openBlock(b, alloc.Allocate(), m.PresetID(), "path", 0, grpMotion, a)
	writeVisible(b, alloc, spid)
	fmt.Fprintf(b, `<p:animMotion origin="layout" path="%s" pathEditMode="relative" rAng="0" ptsTypes="">`, m.Path())
	fmt.Fprintf(b, `<p:cBhvr><p:cTn id="%d" dur="%d" fill="hold"/>%s`, alloc.Allocate(), m.Duration(), target(spid))
	b.WriteString(`<p:attrNameLst><p:attrName>ppt_x</p:attrName><p:attrName>ppt_y</p:attrName></p:attrNameLst></p:cBhvr></p:animMotion>`)
	closeBlock(b)
}

// repeatCount is in thousandths of an iteration.
func repeatCount(n int) int {
	return n * 1000
}
