package cmd

import (
	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/samirkut/mntrevert/mount"
	"github.com/samirkut/mntrevert/utils"
)

const defaultConfigFile = "~/.mntrevert.yaml"

var (
	verboseLogging, quietLogging bool
	cfgFile                      string

	logger = utils.MustGetLogger()
)

// rootCmd represents the base command when called without any subcommands
var rootCmd = &cobra.Command{
	Use:   "mntrevert",
	Short: "Revert mounts left behind by a root framework",
	Long: `Reconciles the mount namespace of the calling process by lazily unmounting
	everything a previously active root framework (KernelSU/APatch style stacking
	or Magisk style skeleton) mounted into it.

	Unmounting is best effort: a mount that cannot be detached is left in place.`,
	SilenceUsage: true,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		if verboseLogging {
			utils.SetLoggerVerbose()
		}
		if quietLogging {
			utils.SetLoggerQuiet()
		}
		return initConfig()
	},
}

// Execute adds all child commands to the root command and sets flags appropriately.
// This is called by main.main(). It only needs to happen once to the rootCmd.
func Execute() {
	cobra.CheckErr(rootCmd.Execute())
}

func init() {
	rootCmd.PersistentFlags().BoolVarP(&verboseLogging, "verbose", "v", false, "enable verbose logging")
	rootCmd.PersistentFlags().BoolVarP(&quietLogging, "quiet", "q", false, "disable logging")
	rootCmd.PersistentFlags().StringVar(&cfgFile, "config", defaultConfigFile, "config file (yaml)")
	rootCmd.PersistentFlags().String("proc-root", mount.DefaultProcRoot, "procfs mount point")
	rootCmd.PersistentFlags().String("framework", "auto", "root framework to revert: auto, stacking (ksu, apatch) or skeleton (magisk)")
	rootCmd.PersistentFlags().Bool("diagnostics", false, "log unmount failures")

	cobra.CheckErr(viper.BindPFlag("proc-root", rootCmd.PersistentFlags().Lookup("proc-root")))
	cobra.CheckErr(viper.BindPFlag("framework", rootCmd.PersistentFlags().Lookup("framework")))
	cobra.CheckErr(viper.BindPFlag("diagnostics", rootCmd.PersistentFlags().Lookup("diagnostics")))
}

// initConfig layers the config file and MNTREVERT_* environment under the flags.
func initConfig() error {
	viper.SetEnvPrefix("mntrevert")
	viper.SetEnvKeyReplacer(envKeyReplacer)
	viper.AutomaticEnv()

	path, err := utils.ExpandPath(cfgFile)
	if err != nil {
		return err
	}

	// the default file is optional, an explicit one is not
	if !utils.PathExists(path) && cfgFile == defaultConfigFile {
		return nil
	}

	viper.SetConfigFile(path)
	viper.SetConfigType("yaml")
	if err := viper.ReadInConfig(); err != nil {
		return err
	}

	logger.Debugf("Using config file %s", viper.ConfigFileUsed())
	return nil
}
