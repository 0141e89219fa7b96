package mount

import (
	"io"
	"testing"

	"github.com/sirupsen/logrus"
	"github.com/sirupsen/logrus/hooks/test"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/sys/unix"
)

type unmountCall struct {
	target string
	flags  int
}

func captureLogs(t *testing.T) *test.Hook {
	t.Helper()

	out, level := logger.Out, logger.Level
	logger.SetOutput(io.Discard)
	logger.SetLevel(logrus.DebugLevel)
	hook := test.NewLocal(logger)
	t.Cleanup(func() {
		logger.ReplaceHooks(make(logrus.LevelHooks))
		logger.SetOutput(out)
		logger.SetLevel(level)
	})
	return hook
}

func fakeDetacher(diag bool, fail map[string]error) (*LazyDetacher, *[]unmountCall) {
	var calls []unmountCall
	d := &LazyDetacher{
		Diagnostics: diag,
		unmount: func(target string, flags int) error {
			calls = append(calls, unmountCall{target, flags})
			return fail[target]
		},
	}
	return d, &calls
}

func TestLazyDetacherUsesDetachFlag(t *testing.T) {
	captureLogs(t)
	d, calls := fakeDetacher(false, nil)

	d.Detach("/data/adb/modules")

	require.Len(t, *calls, 1)
	assert.Equal(t, unmountCall{"/data/adb/modules", unix.MNT_DETACH}, (*calls)[0])
}

func TestLazyDetacherLogsSuccessAtDebug(t *testing.T) {
	hook := captureLogs(t)
	d, _ := fakeDetacher(false, nil)

	d.Detach("/system/bin/app_process64")

	require.Len(t, hook.Entries, 1)
	assert.Equal(t, logrus.DebugLevel, hook.LastEntry().Level)
	assert.Equal(t, "Unmounted (/system/bin/app_process64)", hook.LastEntry().Message)
}

func TestLazyDetacherFailureIsSilentWithoutDiagnostics(t *testing.T) {
	hook := captureLogs(t)
	d, calls := fakeDetacher(false, map[string]error{"/busy": unix.EBUSY})

	d.Detach("/busy")
	d.Detach("/next")

	assert.Len(t, *calls, 2)
	require.Len(t, hook.Entries, 1)
	assert.Equal(t, "Unmounted (/next)", hook.LastEntry().Message)
}

func TestLazyDetacherFailureLoggedWithDiagnostics(t *testing.T) {
	hook := captureLogs(t)
	d, _ := fakeDetacher(true, map[string]error{"/gone": unix.EINVAL})

	d.Detach("/gone")

	require.Len(t, hook.Entries, 1)
	entry := hook.LastEntry()
	assert.Equal(t, logrus.ErrorLevel, entry.Level)
	assert.Equal(t, "Unmount (/gone)", entry.Message)
	assert.Equal(t, unix.EINVAL, entry.Data[logrus.ErrorKey])
}

func TestNewLazyDetacherDiagnosticsFollowBuild(t *testing.T) {
	d := NewLazyDetacher()
	assert.Equal(t, diagnostics, d.Diagnostics)
	assert.NotNil(t, d.unmount)
}

func TestRecorder(t *testing.T) {
	captureLogs(t)
	var r Recorder

	r.Detach("/a")
	r.Detach("/b")
	r.Detach("/a")

	assert.Equal(t, []string{"/a", "/b", "/a"}, r.Targets)
}
