package revert

import (
	"fmt"

	"github.com/samirkut/mntrevert/mount"
	"github.com/samirkut/mntrevert/utils"
)

var logger = utils.MustGetLogger()

// Reverter tears down the mounts of a superseded framework in one pass over
// a fresh snapshot. Nothing is cached between passes.
type Reverter struct {
	Reader   mount.Reader
	Detacher mount.Detacher
	Profile  Profile
}

func NewReverter(reader mount.Reader, detacher mount.Detacher) *Reverter {
	return &Reverter{
		Reader:   reader,
		Detacher: detacher,
		Profile:  DefaultProfile(),
	}
}

// Revert reads the namespace named by selector and detaches the mounts
// owned by f. Only a failed read, or a framework that cannot be
// determined, is reported; individual detaches are best effort.
func (r *Reverter) Revert(selector string, f Framework) (Framework, error) {
	records, err := r.Reader.Read(selector)
	if err != nil {
		return f, fmt.Errorf("read mount namespace: %w", err)
	}

	if f == Auto {
		f, err = Detect(records, r.Profile)
		if err != nil {
			return f, fmt.Errorf("detect framework: %w", err)
		}
		logger.Infof("Detected %s framework", f)
	}

	logger.Debugf("Reverting %s mounts over %d records", f, len(records))
	return f, run(f, records, r.Profile, r.Detacher)
}
