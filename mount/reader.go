package mount

import (
	"errors"
	"fmt"
	"path/filepath"

	"github.com/moby/sys/mountinfo"
	"github.com/spf13/afero"

	"github.com/samirkut/mntrevert/utils"
)

// SelfNamespace selects the mount namespace of the calling process.
const SelfNamespace = "self"

const DefaultProcRoot = "/proc"

var (
	logger = utils.MustGetLogger()

	ErrUnsupportedNamespace = errors.New("only the caller's own mount namespace is supported")
)

// Reader produces a snapshot of a mount namespace, in kernel order.
type Reader interface {
	Read(selector string) ([]Record, error)
}

// ProcReader reads <ProcRoot>/<selector>/mountinfo.
type ProcReader struct {
	Fs       afero.Fs
	ProcRoot string
}

func NewProcReader(procRoot string) *ProcReader {
	if procRoot == "" {
		procRoot = DefaultProcRoot
	}
	return &ProcReader{Fs: afero.NewOsFs(), ProcRoot: procRoot}
}

func (r *ProcReader) Read(selector string) ([]Record, error) {
	if selector == "" {
		selector = SelfNamespace
	}
	if selector != SelfNamespace {
		return nil, fmt.Errorf("namespace %q: %w", selector, ErrUnsupportedNamespace)
	}

	path := filepath.Join(r.ProcRoot, selector, "mountinfo")
	logger.Tracef("Reading mount table from %s", path)

	f, err := r.Fs.Open(path)
	if err != nil {
		return nil, fmt.Errorf("open mount table: %w", err)
	}
	defer f.Close()

	infos, err := mountinfo.GetMountsFromReader(f, nil)
	if err != nil {
		return nil, fmt.Errorf("parse %s: %w", path, err)
	}

	records := make([]Record, 0, len(infos))
	for _, info := range infos {
		records = append(records, fromInfo(info))
	}

	logger.Debugf("Read %d mount records from %s", len(records), path)
	return records, nil
}
