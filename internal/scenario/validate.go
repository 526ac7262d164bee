package scenario

import (
	"errors"
	"fmt"
)

// Validate checks the whole document and reports every problem it finds.
// A valid scenario builds without construction errors.
func (s *Scenario) Validate(size Size) error {
	var errs []error
	if len(s.Slides) == 0 {
		errs = append(errs, errors.New("scenario has no slides"))
	}

	ids := make(map[int]bool, len(s.Slides))
	for i := range s.Slides {
		sl := &s.Slides[i]
		if sl.ID <= 0 {
			errs = append(errs, fmt.Errorf("slide %d: id must be positive, got %d", i+1, sl.ID))
		} else if ids[sl.ID] {
			errs = append(errs, fmt.Errorf("slide %d: duplicate id %d", i+1, sl.ID))
		}
		ids[sl.ID] = true

		if err := sl.Validate(size); err != nil {
			errs = append(errs, fmt.Errorf("slide %d: %w", sl.ID, err))
		}
	}
	return errors.Join(errs...)
}

// Validate checks shape names and that every animation resolves.
func (s *Slide) Validate(size Size) error {
	var errs []error

	names := make(map[string]bool, len(s.Shapes))
	for _, sh := range s.Shapes {
		switch {
		case sh.Name == "":
			errs = append(errs, errors.New("shape with empty name"))
		case names[sh.Name]:
			errs = append(errs, fmt.Errorf("duplicate shape %q", sh.Name))
		}
		names[sh.Name] = true
	}

	for i, a := range s.Animations {
		if !names[a.Shape] {
			errs = append(errs, fmt.Errorf("animation %d: %w: %q", i+1, ErrUnknownShape, a.Shape))
			continue
		}
		if a.Delay < 0 {
			errs = append(errs, fmt.Errorf("animation %d on %q: negative delay %d", i+1, a.Shape, a.Delay))
		}
		if a.Duration < 0 {
			errs = append(errs, fmt.Errorf("animation %d on %q: negative duration %d", i+1, a.Shape, a.Duration))
			continue
		}
		if _, err := s.Descriptor(a, size); err != nil {
			errs = append(errs, fmt.Errorf("animation %d on %q: %w", i+1, a.Shape, err))
		}
	}
	return errors.Join(errs...)
}
