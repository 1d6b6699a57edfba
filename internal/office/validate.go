package office

import (
	"errors"
	"fmt"
	"strconv"
	"strings"

	"gitoffice/internal/code"
	"gitoffice/internal/sensor"
)

// Validate normalises the layout in place and reports every problem it finds.
// Entries without a kind get one from their legacy name prefix; legacy dynamic names
// carry their parameters as dynamic_{friction}_{restitution}_{name}.
func Validate(l *Layout) error {
	var errs []error
	points := map[string]bool{}
	renderTargets := 0

	for i := range l.Entries {
		e := &l.Entries[i]
		if e.Kind == "" {
			if err := fromLegacyName(e); err != nil {
				errs = append(errs, fmt.Errorf("entry %d (%s): %w", i, e.Name, err))
				continue
			}
		}
		if e.Name == "" {
			errs = append(errs, fmt.Errorf("entry %d: missing name", i))
			continue
		}
		if err := validateEntry(e); err != nil {
			errs = append(errs, fmt.Errorf("entry %d (%s): %w", i, e.Name, err))
		}
		switch e.Kind {
		case KindPoint:
			if points[e.Name] {
				errs = append(errs, fmt.Errorf("entry %d: duplicate point %q", i, e.Name))
			}
			points[e.Name] = true
		case KindRenderTarget:
			renderTargets++
		}
	}
	if renderTargets > 1 {
		errs = append(errs, fmt.Errorf("%d render targets, want at most one", renderTargets))
	}
	return errors.Join(errs...)
}

func validateEntry(e *Entry) error {
	if e.Color != "" {
		if _, ok := ParseColor(e.Color); !ok {
			return fmt.Errorf("bad color %q", e.Color)
		}
	}
	switch e.Kind {
	case KindPoint, KindMesh, KindEmissive, KindRenderTarget:
		return nil
	case KindCollider:
		return positiveSize(e)
	case KindSensor:
		k, err := sensor.ParseKind(e.Sensor)
		if err != nil {
			return err
		}
		if k == sensor.Painter {
			c, err := code.ParseColor(e.Paint)
			if err != nil {
				return err
			}
			if c == code.None {
				return fmt.Errorf("painter needs a paint colour")
			}
		}
		return positiveSize(e)
	case KindDynamic:
		if e.Mass < 0 {
			return fmt.Errorf("negative mass %v", e.Mass)
		}
		if e.Friction != nil && (*e.Friction < 0 || *e.Friction > 1) {
			return fmt.Errorf("friction %v out of [0,1]", *e.Friction)
		}
		if e.Restitution != nil && (*e.Restitution < 0 || *e.Restitution > 1) {
			return fmt.Errorf("restitution %v out of [0,1]", *e.Restitution)
		}
		return positiveSize(e)
	case KindInteractable:
		if e.Interactable != "terminal" {
			return fmt.Errorf("unsupported interactable %q", e.Interactable)
		}
		return positiveSize(e)
	}
	return fmt.Errorf("unknown kind %q", e.Kind)
}

func positiveSize(e *Entry) error {
	if e.Size[0] <= 0 || e.Size[1] <= 0 || e.Size[2] <= 0 {
		return fmt.Errorf("size %v must be positive", e.Size)
	}
	return nil
}

// fromLegacyName derives the kind (and for dynamics, the body parameters) from a prefixed name.
func fromLegacyName(e *Entry) error {
	e.Kind = KindMesh
	for _, p := range legacyPrefixes {
		if strings.HasPrefix(e.Name, p.prefix) {
			e.Kind = p.kind
			e.Name = strings.TrimPrefix(e.Name, p.prefix)
			break
		}
	}
	if e.Kind == KindInteractable && e.Interactable == "" {
		e.Interactable = e.Name
	}
	if e.Kind != KindDynamic {
		return nil
	}

	parts := strings.SplitN(e.Name, "_", 3)
	if len(parts) != 3 || parts[2] == "" {
		return fmt.Errorf("dynamic name must be dynamic_{friction}_{restitution}_{name}")
	}
	friction, err := strconv.ParseFloat(parts[0], 32)
	if err != nil {
		return fmt.Errorf("bad friction %q: %w", parts[0], err)
	}
	restitution, err := strconv.ParseFloat(parts[1], 32)
	if err != nil {
		return fmt.Errorf("bad restitution %q: %w", parts[1], err)
	}
	f, r := float32(friction), float32(restitution)
	e.Friction, e.Restitution = &f, &r
	e.Name = parts[2]
	return nil
}
