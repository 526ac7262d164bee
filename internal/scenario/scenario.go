package scenario

// Version is written into new scenario documents.
const Version = "1.0"

// Scenario represents a deck: the slides to build, in order
type Scenario struct {
	Version string  `yaml:"version"`
	Slides  []Slide `yaml:"slides"`
}

// Slide represents a single slide with its shapes and animations
type Slide struct {
	ID         int         `yaml:"id"`
	Layout     string      `yaml:"layout,omitempty"`
	Transition string      `yaml:"transition,omitempty"`
	Shapes     []Shape     `yaml:"shapes"`
	Animations []Animation `yaml:"animations,omitempty"`
}

// Shape is a named shape the slide owns. Role ties it to a layout
// choreography; Rect is only needed for reading order and motion between
// shapes.
type Shape struct {
	Name string     `yaml:"name"`
	Role string     `yaml:"role,omitempty"`
	Rect *Rectangle `yaml:"rect,omitempty"`
}

// Animation represents one effect on one shape
type Animation struct {
	Shape     string `yaml:"shape"`
	Effect    string `yaml:"effect"`
	Direction string `yaml:"direction,omitempty"`
	Delay     int    `yaml:"delay,omitempty"`     // Milliseconds after the slide's click
	Duration  int    `yaml:"duration,omitempty"`  // Milliseconds, 0 = effect default
	Magnitude int    `yaml:"magnitude,omitempty"` // Scale %, degrees or repeat count
	Path      string `yaml:"path,omitempty"`      // "M x y L x y" for the path effect
	From      string `yaml:"from,omitempty"`      // Shape the path effect starts from
}

// Rectangle represents a bounding box in EMU
type Rectangle struct {
	X int64 `yaml:"x"`
	Y int64 `yaml:"y"`
	W int64 `yaml:"w"`
	H int64 `yaml:"h"`
}

// Size is the slide size in EMU.
type Size struct {
	W int64
	H int64
}

// Shape finds a shape on the slide by name.
func (s *Slide) Shape(name string) (Shape, bool) {
	for _, sh := range s.Shapes {
		if sh.Name == name {
			return sh, true
		}
	}
	return Shape{}, false
}
