package cmd

import (
	"errors"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/samirkut/mntrevert/mount"
	"github.com/samirkut/mntrevert/revert"
)

// revertCmd represents the revert command
var revertCmd = &cobra.Command{
	Use:   "revert",
	Short: "Unmount everything a root framework mounted into this namespace",
	Long: `Reads the mount table of the calling process and lazily unmounts the mounts
	owned by the selected (or detected) root framework.

	Failed unmounts are tolerated; the command only fails when the mount table
	cannot be read.`,
	Args: cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		s, err := loadSettings(viper.GetViper())
		if err != nil {
			return err
		}

		return runRevert(s, mount.NewProcReader(s.ProcRoot), newDetacher(s))
	},
}

func init() {
	rootCmd.AddCommand(revertCmd)

	revertCmd.Flags().Bool("dry-run", false, "log the unmounts instead of performing them")
	cobra.CheckErr(viper.BindPFlag("dry-run", revertCmd.Flags().Lookup("dry-run")))
}

func newDetacher(s *settings) mount.Detacher {
	if s.DryRun {
		return &mount.Recorder{}
	}

	d := mount.NewLazyDetacher()
	if s.Diagnostics {
		d.Diagnostics = true
	}
	return d
}

func runRevert(s *settings, reader mount.Reader, detacher mount.Detacher) error {
	r := revert.NewReverter(reader, detacher)

	f, err := r.Revert(mount.SelfNamespace, s.Framework)
	if s.Framework == revert.Auto && errors.Is(err, revert.ErrUnknownFramework) {
		logger.Info("No root framework mounts found, nothing to revert")
		return nil
	}
	if err != nil {
		return err
	}

	if rec, ok := detacher.(*mount.Recorder); ok {
		logger.Infof("Dry run: %d %s unmounts planned", len(rec.Targets), f)
		return nil
	}
	logger.Infof("Reverted %s framework mounts", f)
	return nil
}
