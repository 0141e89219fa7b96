package revert

import (
	"errors"
	"fmt"
	"strings"

	"github.com/samirkut/mntrevert/mount"
)

// Framework names a family of root-management frameworks.
type Framework int

const (
	// Auto picks the family from the mount table.
	Auto Framework = iota
	Stacking
	Skeleton
)

var ErrUnknownFramework = errors.New("unknown root framework")

func (f Framework) String() string {
	switch f {
	case Auto:
		return "auto"
	case Stacking:
		return "stacking"
	case Skeleton:
		return "skeleton"
	}
	return fmt.Sprintf("Framework(%d)", int(f))
}

func ParseFramework(s string) (Framework, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "", "auto":
		return Auto, nil
	case "stacking", "ksu", "kernelsu", "apatch":
		return Stacking, nil
	case "skeleton", "magisk":
		return Skeleton, nil
	}
	return Auto, fmt.Errorf("%q: %w", s, ErrUnknownFramework)
}

// Detect guesses which framework populated the snapshot. Stacking signals
// take precedence over skeleton ones.
func Detect(records []mount.Record, p Profile) (Framework, error) {
	skeleton := false
	for _, rec := range records {
		if contains(p.StackingSources, rec.Source) {
			return Stacking, nil
		}
		if rec.Target == p.ModuleDir && (rec.Type == "overlay" || rec.Type == "tmpfs") {
			return Stacking, nil
		}
		if contains(p.SkeletonSources, rec.Source) || strings.HasPrefix(rec.Root, p.SkeletonModuleRoot) {
			skeleton = true
		}
	}
	if skeleton {
		return Skeleton, nil
	}
	return Auto, ErrUnknownFramework
}

// Plan returns the targets Revert would detach for f, in detach order.
func Plan(f Framework, records []mount.Record, p Profile) ([]string, error) {
	var rec mount.Recorder
	if err := run(f, records, p, &rec); err != nil {
		return nil, err
	}
	return rec.Targets, nil
}

func run(f Framework, records []mount.Record, p Profile, d mount.Detacher) error {
	switch f {
	case Stacking:
		StackingRevert(records, p, d)
	case Skeleton:
		SkeletonRevert(records, p, d)
	default:
		return fmt.Errorf("%v: %w", f, ErrUnknownFramework)
	}
	return nil
}
