package main

import (
	"io"
	"log/slog"
	"os"

	"github.com/mattn/go-isatty"
	"github.com/spf13/cobra"

	"github.com/katalvlaran/lvlopt/config"
	"github.com/katalvlaran/lvlopt/narrate"
)

// app carries what every subcommand needs once the root has parsed its
// persistent flags.
type app struct {
	cfg    config.Config
	log    *slog.Logger
	text   *narrate.Narrator
	styles styles

	configPath string
	lang       string
	logLevel   string
	noColor    bool
}

func newRootCmd() *cobra.Command {
	a := &app{}
	root := &cobra.Command{
		Use:           "lvlopt",
		Short:         "Step-by-step simplex and branch-and-bound solver",
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, _ []string) error {
			return a.setup(cmd.OutOrStdout(), cmd.ErrOrStderr())
		},
	}

	pf := root.PersistentFlags()
	pf.StringVarP(&a.configPath, "config", "c", "", "configuration file (YAML)")
	pf.StringVarP(&a.lang, "lang", "l", "", "narration language (overrides the config)")
	pf.StringVar(&a.logLevel, "log-level", "", "log level: debug, info, warn, error")
	pf.BoolVar(&a.noColor, "no-color", false, "disable colours")

	root.AddCommand(
		newSimplexCmd(a),
		newBranchCmd(a),
		newSensitivityCmd(a),
		newStandardFormCmd(a),
		newDualCmd(a),
		newConfigCmd(a),
	)

	return root
}

func (a *app) setup(out, errOut io.Writer) error {
	cfg := config.Default()
	if a.configPath != "" {
		var err error
		if cfg, err = config.Load(a.configPath); err != nil {
			return err
		}
	}
	if a.lang != "" {
		cfg.Lang = a.lang
	}
	if a.logLevel != "" {
		cfg.Log.Level = a.logLevel
	}
	if err := cfg.Validate(); err != nil {
		return err
	}

	logger, err := cfg.NewLogger(errOut)
	if err != nil {
		return err
	}
	text, err := narrate.New(cfg.Lang)
	if err != nil {
		return err
	}

	a.cfg, a.log, a.text = cfg, logger, text
	a.styles = newStyles(!a.noColor && colorEnabled(out))

	return nil
}

// colorEnabled reports whether w is a terminal and NO_COLOR is unset.
func colorEnabled(w io.Writer) bool {
	if _, ok := os.LookupEnv("NO_COLOR"); ok {
		return false
	}
	f, ok := w.(*os.File)
	if !ok {
		return false
	}

	return isatty.IsTerminal(f.Fd()) || isatty.IsCygwinTerminal(f.Fd())
}
