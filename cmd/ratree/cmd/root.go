// SPDX-License-Identifier: MIT

package cmd

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"strings"

	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/katalvlaran/ratree/tree"
)

const (
	envPrefix      = "RATREE"
	defaultCfgName = ".ratree.yaml"
)

type rootOpts struct {
	cfgFile     string
	debugModeOn bool
	output      string
}

// app holds the state one command tree shares: its flags, its viper
// instance and its logger. Every NewRootCmd call gets a fresh app.
type app struct {
	opts rootOpts
	v    *viper.Viper
	log  *logrus.Logger
}

var longRootCmdDescription = `ratree converts between paths and fractions of the Stern-Brocot and
Calkin-Wilf trees, lists tree levels, locates fathers and sons, and
approximates real numbers by truncated Stern-Brocot paths.

Paths are strings over {L, R} read from the root; the root is the empty
path "". Fractions are written "3/8", "5" or "0.375".
`

// NewRootCmd builds the ratree command tree.
func NewRootCmd() *cobra.Command {
	a := &app{v: viper.New(), log: logrus.New()}

	rootCmd := &cobra.Command{
		Use:           "ratree",
		Short:         "Explore the Stern-Brocot and Calkin-Wilf trees of positive rationals.",
		Long:          longRootCmdDescription,
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			if err := a.initConfig(cmd); err != nil {
				return err
			}
			a.log.WithFields(logrus.Fields{"command": cmd.Name(), "args": args}).Debug("run")

			return nil
		},
	}

	rootCmd.PersistentFlags().StringVar(&a.opts.cfgFile, "config", "", "config file of ratree (default is $HOME/"+defaultCfgName+")")
	rootCmd.PersistentFlags().BoolVarP(&a.opts.debugModeOn, "debug", "d", false, "turn on debug mode, tracing every walk step")
	rootCmd.PersistentFlags().StringVarP(&a.opts.output, "output", "o", formatText, fmt.Sprintf("output format, one of %v", supportedFormats))
	mustBind(a.v, "output", rootCmd, "output")

	rootCmd.AddCommand(
		a.newFractionCmd(tree.KindSternBrocot),
		a.newFractionCmd(tree.KindCalkinWilf),
		a.newPathCmd(tree.KindSternBrocot),
		a.newPathCmd(tree.KindCalkinWilf),
		a.newIndexCmd(),
		a.newPathAtCmd(),
		a.newLevelsCmd(),
		a.newDiatomicCmd(),
		a.newApproxCmd(),
		a.newFatherCmd(),
		a.newSonsCmd(),
	)
	rootCmd.DisableAutoGenTag = true

	return rootCmd
}

// Execute runs the command tree on os.Args and exits non-zero on failure.
// This is called by main.main().
func Execute() {
	if err := NewRootCmd().Execute(); err != nil {
		logrus.Errorf("ratree: %v", err)
		os.Exit(1)
	}
}

// initConfig reads in config file and ENV variables if set. A missing
// default config file is not an error; a missing --config file is.
func (a *app) initConfig(cmd *cobra.Command) error {
	a.log.SetOutput(cmd.ErrOrStderr())
	a.log.SetFormatter(&logrus.TextFormatter{DisableTimestamp: true})
	if a.opts.debugModeOn {
		a.log.SetLevel(logrus.DebugLevel)
	} else {
		a.log.SetLevel(logrus.InfoLevel)
	}

	explicit := a.opts.cfgFile != ""
	cfgFile := a.opts.cfgFile
	if !explicit {
		home, err := os.UserHomeDir()
		if err != nil {
			a.log.Debugf("no home directory, skipping config file: %v", err)
			cfgFile = ""
		} else {
			cfgFile = filepath.Join(home, defaultCfgName)
		}
	}

	a.v.SetEnvPrefix(envPrefix)
	a.v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	a.v.AutomaticEnv()

	if cfgFile == "" {
		return checkFormat(a.v.GetString("output"))
	}
	a.v.SetConfigFile(cfgFile)
	if err := a.v.ReadInConfig(); err != nil {
		if !explicit && errors.Is(err, fs.ErrNotExist) {
			a.log.Debugf("config file %s not found, using defaults", cfgFile)
			return checkFormat(a.v.GetString("output"))
		}
		return fmt.Errorf("failed to read config file %s: %w", cfgFile, err)
	}
	a.log.Debugf("using config file %s", a.v.ConfigFileUsed())

	return checkFormat(a.v.GetString("output"))
}

// mustBind binds a viper key to a flag of cmd. Flags are registered in code,
// so a failure is a programming error.
func mustBind(v *viper.Viper, key string, cmd *cobra.Command, name string) {
	f := cmd.Flags().Lookup(name)
	if f == nil {
		f = cmd.PersistentFlags().Lookup(name)
	}
	if err := v.BindPFlag(key, f); err != nil {
		panic(fmt.Sprintf("ratree: bind %s to --%s: %v", key, name, err))
	}
}
