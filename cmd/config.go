package cmd

import (
	"strings"

	"github.com/spf13/viper"

	"github.com/samirkut/mntrevert/mount"
	"github.com/samirkut/mntrevert/revert"
)

var envKeyReplacer = strings.NewReplacer("-", "_")

type settings struct {
	Framework   revert.Framework
	ProcRoot    string
	Diagnostics bool
	DryRun      bool
}

func loadSettings(v *viper.Viper) (*settings, error) {
	f, err := revert.ParseFramework(v.GetString("framework"))
	if err != nil {
		return nil, err
	}

	procRoot := v.GetString("proc-root")
	if procRoot == "" {
		procRoot = mount.DefaultProcRoot
	}

	return &settings{
		Framework:   f,
		ProcRoot:    procRoot,
		Diagnostics: v.GetBool("diagnostics"),
		DryRun:      v.GetBool("dry-run"),
	}, nil
}
