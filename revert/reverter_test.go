package revert

import (
	"errors"
	"testing"

	"github.com/spf13/afero"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/samirkut/mntrevert/mount"
)

type staticReader struct {
	records []mount.Record
	err     error
	reads   int
}

func (r *staticReader) Read(selector string) ([]mount.Record, error) {
	r.reads++
	return r.records, r.err
}

const ksuMountInfo = `1 0 253:0 / / ro,relatime - ext4 /dev/block/dm-0 ro
31 1 0:44 / /data/adb/modules rw,relatime - overlay KSU rw
32 31 0:45 / /data/adb/modules/foo/system rw,relatime - overlay KSU rw
40 1 0:46 / /system/bin/app_process64 ro,relatime - overlay KSU ro
`

func TestReverterFromProcfs(t *testing.T) {
	fs := afero.NewMemMapFs()
	require.NoError(t, afero.WriteFile(fs, "/proc/self/mountinfo", []byte(ksuMountInfo), 0444))

	var rec mount.Recorder
	r := NewReverter(&mount.ProcReader{Fs: fs, ProcRoot: "/proc"}, &rec)

	f, err := r.Revert(mount.SelfNamespace, Auto)
	require.NoError(t, err)
	assert.Equal(t, Stacking, f)
	assert.Equal(t, []string{
		"/data/adb/modules/foo/system",
		"/system/bin/app_process64",
		"/data/adb/modules",
	}, rec.Targets)
}

func TestReverterReadFailureSkipsReversal(t *testing.T) {
	readErr := errors.New("permission denied")
	var rec mount.Recorder
	r := NewReverter(&staticReader{err: readErr}, &rec)

	_, err := r.Revert(mount.SelfNamespace, Stacking)
	assert.ErrorIs(t, err, readErr)
	assert.Empty(t, rec.Targets)
}

func TestReverterUndetectable(t *testing.T) {
	var rec mount.Recorder
	r := NewReverter(&staticReader{}, &rec)

	_, err := r.Revert(mount.SelfNamespace, Auto)
	assert.ErrorIs(t, err, ErrUnknownFramework)
	assert.Empty(t, rec.Targets)
}

func TestReverterTakesFreshSnapshotEachPass(t *testing.T) {
	reader := &staticReader{records: []mount.Record{
		{Target: "/data/adb/tmp_a", Source: "magisk", Type: "tmpfs", Root: "/"},
		{Target: "/data/adb/tmp_b", Source: "magisk", Type: "tmpfs", Root: "/"},
	}}
	var rec mount.Recorder
	r := NewReverter(reader, &rec)

	_, err := r.Revert(mount.SelfNamespace, Skeleton)
	require.NoError(t, err)

	// second pass on a cleaned namespace
	reader.records = nil
	_, err = r.Revert(mount.SelfNamespace, Skeleton)
	require.NoError(t, err)

	assert.Equal(t, 2, reader.reads)
	assert.Equal(t, []string{"/data/adb/tmp_b", "/data/adb/tmp_a"}, rec.Targets)
}

func TestReverterIdempotentStacking(t *testing.T) {
	var rec mount.Recorder
	r := NewReverter(&staticReader{}, &rec)

	for i := 0; i < 2; i++ {
		_, err := r.Revert(mount.SelfNamespace, Stacking)
		require.NoError(t, err)
	}
	assert.Equal(t, []string{"/data/adb/modules", "/data/adb/modules"}, rec.Targets)
}
