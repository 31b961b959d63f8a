// Package cli implements the contentschema command line.
package cli

import (
	"context"
	"fmt"
	"io"
	"os"
	"os/signal"

	"github.com/fatih/color"
	"github.com/rs/zerolog"
	"github.com/spf13/afero"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/reoring/contentschema/i18n"
	"github.com/reoring/contentschema/internal/config"
	"github.com/reoring/contentschema/internal/logging"
)

var (
	// Version information
	version   = "dev"
	commit    = "unknown"
	buildDate = "unknown"
)

// SetVersion sets the version information reported by the CLI.
func SetVersion(v, c, b string) {
	version = v
	commit = c
	buildDate = b
}

func versionString() string {
	return fmt.Sprintf("%s (commit: %s, built: %s)", version, commit, buildDate)
}

// App carries the state shared by all commands. The zero value is not usable;
// fill Fs, Out and Err before building the command tree.
type App struct {
	Fs  afero.Fs
	Out io.Writer
	Err io.Writer

	v        *viper.Viper
	cfg      *config.Config
	log      zerolog.Logger
	closeLog io.Closer

	cfgFile string
	verbose bool
	noColor bool
}

// Execute runs the root command against the real filesystem and terminal.
func Execute() error {
	app := &App{Fs: afero.NewOsFs(), Out: os.Stdout, Err: os.Stderr}
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()
	return app.Run(ctx, os.Args[1:])
}

// Run executes the command line args and prints any returned error.
func (a *App) Run(ctx context.Context, args []string) error {
	root := NewRootCmd(a)
	root.SetArgs(args)
	err := root.ExecuteContext(ctx)
	if err != nil {
		a.report(err)
	}
	if a.closeLog != nil {
		_ = a.closeLog.Close()
	}
	return err
}

// NewRootCmd builds the command tree for app.
func NewRootCmd(app *App) *cobra.Command {
	app.v = viper.New()
	app.log = zerolog.Nop()

	root := &cobra.Command{
		Use:   "contentschema",
		Short: "Generate JSON Schema documents for content collections",
		Long: `contentschema reads content collection declarations (YAML, JSON, TOML or
CUE files) and writes one JSON Schema Draft-7 document per collection, ready
for editor validation of frontmatter and data files.`,
		Version:       versionString(),
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			return app.init()
		},
	}
	root.SetOut(app.Out)
	root.SetErr(app.Err)

	pf := root.PersistentFlags()
	pf.StringVar(&app.cfgFile, "config", "", "config file (default is ./contentschema.yaml)")
	pf.BoolVarP(&app.verbose, "verbose", "v", false, "verbose output")
	pf.BoolVar(&app.noColor, "no-color", false, "disable colored output")
	pf.String("log-level", "", "log level (trace, debug, info, warn, error)")
	pf.String("log-format", "", "log format (console or json)")
	pf.String("language", "", "message language (en or ja)")
	_ = app.v.BindPFlag(config.KeyLogLevel, pf.Lookup("log-level"))
	_ = app.v.BindPFlag(config.KeyLogFormat, pf.Lookup("log-format"))
	_ = app.v.BindPFlag(config.KeyLanguage, pf.Lookup("language"))

	root.AddCommand(
		newGenerateCmd(app),
		newInspectCmd(app),
		newVersionCmd(app),
	)
	return root
}

// init reads configuration and sets up logging once flags are parsed.
func (a *App) init() error {
	if a.noColor {
		color.NoColor = true
	}
	used, err := config.Read(a.v, a.Fs, a.cfgFile)
	if err != nil {
		return err
	}
	cfg, err := config.Load(a.v)
	if err != nil {
		return err
	}
	if a.verbose {
		cfg.Log.Level = "debug"
	}
	i18n.SetLanguage(cfg.Language)

	log, closer, err := logging.New(a.Err, cfg.Log.Options(a.noColor || color.NoColor))
	if err != nil {
		return err
	}
	a.cfg, a.log, a.closeLog = cfg, log, closer
	if used != "" {
		a.log.Debug().Str("file", used).Msg("using config file")
	}
	return nil
}
