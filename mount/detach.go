package mount

import (
	"golang.org/x/sys/unix"
)

// Detacher issues a best-effort unmount of one target. It never reports
// failure to the caller.
type Detacher interface {
	Detach(target string)
}

// LazyDetacher unmounts with MNT_DETACH so a busy mount point is removed
// from the namespace immediately and released once its last user goes away.
type LazyDetacher struct {
	// Diagnostics enables logging of failed detaches.
	Diagnostics bool

	unmount func(target string, flags int) error
}

// NewLazyDetacher returns a detacher backed by umount2(2). Diagnostics
// default to on only in builds tagged "debug".
func NewLazyDetacher() *LazyDetacher {
	return &LazyDetacher{
		Diagnostics: diagnostics,
		unmount:     unix.Unmount,
	}
}

func (d *LazyDetacher) Detach(target string) {
	if err := d.unmount(target, unix.MNT_DETACH); err != nil {
		if d.Diagnostics {
			logger.WithError(err).Errorf("Unmount (%s)", target)
		}
		return
	}
	logger.Debugf("Unmounted (%s)", target)
}

// Recorder collects targets instead of detaching them.
type Recorder struct {
	Targets []string
}

func (r *Recorder) Detach(target string) {
	logger.Infof("Would unmount (%s)", target)
	r.Targets = append(r.Targets, target)
}
