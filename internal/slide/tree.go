// Package slide holds a slide's XML document tree and the narrow mutation
// API the animation engine is allowed to use on it: replacing the slide's
// p:transition and p:timing children.
package slide

import (
	"errors"
	"fmt"
	"io"
	"strconv"

	"github.com/beevik/etree"

	"github.com/ivlev/slideanim/internal/anim"
)

// Namespaces used by slide parts.
const (
	NSPresentation  = "http://schemas.openxmlformats.org/presentationml/2006/main"
	NSDrawing       = "http://schemas.openxmlformats.org/drawingml/2006/main"
	NSRelationships = "http://schemas.openxmlformats.org/officeDocument/2006/relationships"
	NSPowerPoint14  = "http://schemas.microsoft.com/office/powerpoint/2010/main"
)

// ErrNotSlide is returned by ParseTree for documents whose root is not p:sld.
var ErrNotSlide = errors.New("document root is not a slide")

// Tree is one slide's document. The shapes in it belong to the document
// model; the engine only replaces the transition and timing children.
type Tree struct {
	doc *etree.Document
}

// NewTree creates an empty slide: a group root shape (id 1), no content
// shapes, a colour map override and no transition or timing.
func NewTree() *Tree {
	doc := etree.NewDocument()
	doc.CreateProcInst("xml", `version="1.0" encoding="UTF-8" standalone="yes"`)

	sld := doc.CreateElement("p:sld")
	sld.CreateAttr("xmlns:a", NSDrawing)
	sld.CreateAttr("xmlns:r", NSRelationships)
	sld.CreateAttr("xmlns:p", NSPresentation)

	spTree := sld.CreateElement("p:cSld").CreateElement("p:spTree")
	nv := spTree.CreateElement("p:nvGrpSpPr")
	cNvPr := nv.CreateElement("p:cNvPr")
	cNvPr.CreateAttr("id", "1")
	cNvPr.CreateAttr("name", "")
	nv.CreateElement("p:cNvGrpSpPr")
	nv.CreateElement("p:nvPr")
	spTree.CreateElement("p:grpSpPr")

	sld.CreateElement("p:clrMapOvr").CreateElement("a:masterClrMapping")

	return &Tree{doc: doc}
}

// ParseTree reads an existing slide part.
func ParseTree(xml string) (*Tree, error) {
	doc := etree.NewDocument()
	if err := doc.ReadFromString(xml); err != nil {
		return nil, fmt.Errorf("parse slide: %w", err)
	}
	root := doc.Root()
	if root == nil || root.Tag != "sld" {
		return nil, ErrNotSlide
	}
	return &Tree{doc: doc}, nil
}

func (t *Tree) root() *etree.Element {
	return t.doc.Root()
}

func (t *Tree) shapeTree() *etree.Element {
	return t.root().FindElement("./cSld/spTree")
}

// AddShape appends an empty shape to the slide and returns its reference.
// The id is the document model's: one past the largest id on the slide.
func (t *Tree) AddShape(name string) anim.ShapeRef {
	spTree := t.shapeTree()
	if spTree == nil {
		spTree = t.root().CreateElement("p:cSld").CreateElement("p:spTree")
	}
	id := t.MaxShapeID() + 1

	sp := spTree.CreateElement("p:sp")
	nv := sp.CreateElement("p:nvSpPr")
	cNvPr := nv.CreateElement("p:cNvPr")
	cNvPr.CreateAttr("id", strconv.Itoa(id))
	cNvPr.CreateAttr("name", name)
	nv.CreateElement("p:cNvSpPr")
	nv.CreateElement("p:nvPr")
	sp.CreateElement("p:spPr")

	return anim.ShapeRef{SpID: id, Name: name}
}

// Shapes lists every shape on the slide, group root included, in document
// order.
func (t *Tree) Shapes() []anim.ShapeRef {
	cSld := t.root().SelectElement("cSld")
	if cSld == nil {
		return nil
	}
	var refs []anim.ShapeRef
	for _, el := range cSld.FindElements(".//cNvPr") {
		id, err := strconv.Atoi(el.SelectAttrValue("id", ""))
		if err != nil {
			continue
		}
		refs = append(refs, anim.ShapeRef{SpID: id, Name: el.SelectAttrValue("name", "")})
	}
	return refs
}

// Shape finds a shape by name.
func (t *Tree) Shape(name string) (anim.ShapeRef, bool) {
	for _, s := range t.Shapes() {
		if s.Name == name {
			return s, true
		}
	}
	return anim.ShapeRef{}, false
}

// MaxShapeID is the largest shape id on the slide, 0 when there is none.
func (t *Tree) MaxShapeID() int {
	highest := 0
	for _, s := range t.Shapes() {
		if s.SpID > highest {
			highest = s.SpID
		}
	}
	return highest
}

// Timing returns the slide's p:timing element, or nil.
func (t *Tree) Timing() *etree.Element {
	return t.root().SelectElement(string(PartTiming))
}

// Transition returns the slide's p:transition element, or nil.
func (t *Tree) Transition() *etree.Element {
	return t.root().SelectElement(string(PartTransition))
}

// PartString serializes one replaceable part of the slide, "" when absent.
func (t *Tree) PartString(part Part) string {
	el := t.root().SelectElement(string(part))
	if el == nil {
		return ""
	}
	doc := etree.NewDocument()
	doc.SetRoot(el.Copy())
	s, err := doc.WriteToString()
	if err != nil {
		return ""
	}
	return s
}

// ChildOrder lists the local names of the slide root's children in order.
func (t *Tree) ChildOrder() []string {
	children := t.root().ChildElements()
	names := make([]string, 0, len(children))
	for _, c := range children {
		names = append(names, c.Tag)
	}
	return names
}

// String serializes the slide.
func (t *Tree) String() string {
	s, err := t.doc.WriteToString()
	if err != nil {
		return ""
	}
	return s
}

// WriteTo serializes the slide to w.
func (t *Tree) WriteTo(w io.Writer) (int64, error) {
	return t.doc.WriteTo(w)
}
