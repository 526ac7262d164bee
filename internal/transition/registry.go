// Package transition maps transition names to p:transition fragments.
// Resolving a name never fails: unknown names fall back to the registry's
// default, fade unless changed.
package transition

import (
	"errors"
	"fmt"
	"regexp"
	"slices"
	"strings"
	"sync"

	"go.uber.org/zap"

	"github.com/ivlev/slideanim/internal/slide"
)

// Speed is the host format's coarse transition speed.
type Speed string

const (
	SpeedSlow   Speed = "slow"
	SpeedMedium Speed = "med"
	SpeedFast   Speed = "fast"
)

// DefaultName is the transition used for unknown names.
const DefaultName = "fade"

var (
	ErrUnknown     = errors.New("unknown transition")
	ErrInvalidSpec = errors.New("invalid transition spec")
)

var effectName = regexp.MustCompile(`^[a-z][a-zA-Z0-9]*$`)

var validDirs = map[string]bool{
	"": true, "l": true, "r": true, "u": true, "d": true,
	"lu": true, "ru": true, "ld": true, "rd": true,
	"in": true, "out": true, "horz": true, "vert": true,
}

// Spec describes one named transition.
type Spec struct {
	Name       string
	Effect     string // child element local name, e.g. "push"
	Dir        string
	Option     string
	Speed      Speed
	DurationMs int  // 0 omits the attribute
	Extension  bool // effect element lives in the PowerPoint 2010 namespace
}

// Validate checks the spec can be rendered into a well-formed fragment.
func (s Spec) Validate() error {
	switch {
	case Normalize(s.Name) == "":
		return fmt.Errorf("%w: empty name", ErrInvalidSpec)
	case !effectName.MatchString(s.Effect):
		return fmt.Errorf("%w: %s: bad effect %q", ErrInvalidSpec, s.Name, s.Effect)
	case !validDirs[s.Dir]:
		return fmt.Errorf("%w: %s: bad direction %q", ErrInvalidSpec, s.Name, s.Dir)
	case s.Option != "" && !effectName.MatchString(s.Option):
		return fmt.Errorf("%w: %s: bad option %q", ErrInvalidSpec, s.Name, s.Option)
	case s.DurationMs < 0:
		return fmt.Errorf("%w: %s: negative duration %d", ErrInvalidSpec, s.Name, s.DurationMs)
	}
	switch s.Speed {
	case SpeedSlow, SpeedMedium, SpeedFast:
		return nil
	}
	return fmt.Errorf("%w: %s: bad speed %q", ErrInvalidSpec, s.Name, s.Speed)
}

// Fragment renders the spec as a standalone p:transition element.
func (s Spec) Fragment() string {
	var b strings.Builder
	fmt.Fprintf(&b, `<p:transition xmlns:p="%s"`, slide.NSPresentation)
	prefix := "p"
	if s.Extension {
		prefix = "p14"
		fmt.Fprintf(&b, ` xmlns:p14="%s"`, slide.NSPowerPoint14)
	}
	fmt.Fprintf(&b, ` spd="%s"`, s.Speed)
	if s.DurationMs > 0 {
		fmt.Fprintf(&b, ` dur="%d"`, s.DurationMs)
	}
	fmt.Fprintf(&b, `><%s:%s`, prefix, s.Effect)
	if s.Dir != "" {
		fmt.Fprintf(&b, ` dir="%s"`, s.Dir)
	}
	if s.Option != "" {
		fmt.Fprintf(&b, ` option="%s"`, s.Option)
	}
	b.WriteString(`/></p:transition>`)
	return b.String()
}

// Normalize folds case, surrounding space and underscores so that
// "Push_R" and "push-r" name the same transition.
func Normalize(name string) string {
	return strings.ReplaceAll(strings.ToLower(strings.TrimSpace(name)), "_", "-")
}

func builtins() []Spec {
	return []Spec{
		{Name: "fade", Effect: "fade", Speed: SpeedMedium, DurationMs: 700},
		{Name: "push-left", Effect: "push", Dir: "l", Speed: SpeedMedium, DurationMs: 600},
		{Name: "push-right", Effect: "push", Dir: "r", Speed: SpeedMedium, DurationMs: 600},
		{Name: "push-up", Effect: "push", Dir: "u", Speed: SpeedMedium, DurationMs: 600},
		{Name: "wipe", Effect: "wipe", Dir: "l", Speed: SpeedMedium, DurationMs: 500},
		{Name: "zoom", Effect: "zoom", Dir: "in", Speed: SpeedMedium, DurationMs: 600},
		{Name: "cover", Effect: "cover", Dir: "l", Speed: SpeedMedium, DurationMs: 500},
		{Name: "uncover", Effect: "uncover", Dir: "l", Speed: SpeedMedium, DurationMs: 500},
		{Name: "cut", Effect: "cut", Speed: SpeedFast, DurationMs: 100},
		{Name: "dissolve", Effect: "dissolve", Speed: SpeedMedium, DurationMs: 700},
		{Name: "flip", Effect: "flip", Dir: "l", Speed: SpeedMedium, DurationMs: 600},
		{Name: "morph", Effect: "morph", Option: "byObject", Speed: SpeedMedium, Extension: true},
	}
}

var builtinAliases = map[string]string{
	"push":   "push-left",
	"push-l": "push-left",
	"push-r": "push-right",
	"push-u": "push-up",
}

// Registry holds named transitions. It is safe for concurrent use.
type Registry struct {
	mu      sync.RWMutex
	specs   map[string]Spec
	aliases map[string]string
	def     string
	logger  *zap.Logger
}

// NewRegistry returns a registry loaded with the built-in transitions and
// fade as the default.
func NewRegistry(logger *zap.Logger) *Registry {
	if logger == nil {
		logger = zap.NewNop()
	}
	r := &Registry{
		specs:   make(map[string]Spec),
		aliases: make(map[string]string, len(builtinAliases)),
		def:     DefaultName,
		logger:  logger,
	}
	for _, s := range builtins() {
		r.specs[s.Name] = s
	}
	for alias, name := range builtinAliases {
		r.aliases[alias] = name
	}
	return r
}

func (r *Registry) canonical(name string) string {
	n := Normalize(name)
	if target, ok := r.aliases[n]; ok {
		return target
	}
	return n
}

// Lookup finds a transition by name or alias.
func (r *Registry) Lookup(name string) (Spec, bool) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	s, ok := r.specs[r.canonical(name)]
	return s, ok
}

// Resolve returns the fragment for name, or the default transition's
// fragment when name is unknown.
func (r *Registry) Resolve(name string) string {
	r.mu.RLock()
	defer r.mu.RUnlock()

	if s, ok := r.specs[r.canonical(name)]; ok {
		return s.Fragment()
	}
	r.logger.Debug("unknown transition, using default",
		zap.String("transition", name),
		zap.String("default", r.def))
	return r.specs[r.def].Fragment()
}

// Register adds or replaces a transition.
func (r *Registry) Register(s Spec) error {
	if err := s.Validate(); err != nil {
		return err
	}
	s.Name = Normalize(s.Name)

	r.mu.Lock()
	defer r.mu.Unlock()
	r.specs[s.Name] = s
	delete(r.aliases, s.Name)
	return nil
}

// SetDefault changes the fallback transition.
func (r *Registry) SetDefault(name string) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	n := r.canonical(name)
	if _, ok := r.specs[n]; !ok {
		return fmt.Errorf("%w: %q", ErrUnknown, name)
	}
	r.def = n
	return nil
}

// DefaultName reports the current fallback transition.
func (r *Registry) DefaultName() string {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return r.def
}

// Names lists the canonical transition names in order.
func (r *Registry) Names() []string {
	r.mu.RLock()
	defer r.mu.RUnlock()

	names := make([]string, 0, len(r.specs))
	for n := range r.specs {
		names = append(names, n)
	}
	slices.Sort(names)
	return names
}

// Apply installs the transition named name on tree, replacing any existing
// one.
func (r *Registry) Apply(tree *slide.Tree, name string) slide.Result {
	return slide.SetTransition(tree, r.Resolve(name))
}

var (
	defaultOnce     sync.Once
	defaultRegistry *Registry
)

// Default is the shared registry of built-in transitions.
func Default() *Registry {
	defaultOnce.Do(func() {
		defaultRegistry = NewRegistry(nil)
	})
	return defaultRegistry
}

// Resolve resolves name against the default registry.
func Resolve(name string) string {
	return Default().Resolve(name)
}

// Apply installs name from the default registry on tree.
func Apply(tree *slide.Tree, name string) slide.Result {
	return Default().Apply(tree, name)
}
