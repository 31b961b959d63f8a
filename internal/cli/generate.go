package cli

import (
	"errors"
	"fmt"
	"maps"
	"slices"

	"github.com/spf13/cobra"

	"github.com/reoring/contentschema/collections"
	"github.com/reoring/contentschema/declfile"
	"github.com/reoring/contentschema/internal/config"
	"github.com/reoring/contentschema/internal/emit"
)

// errNoSources is returned when neither arguments nor config name any file.
var errNoSources = errors.New("no declaration files: pass files as arguments or set sources in the config file")

func newGenerateCmd(app *App) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "generate [files...]",
		Short: "Write a JSON Schema document for every collection",
		Long: `Load the given declaration files (or the config's sources) and write
<out_dir>/<collection>.schema.json for every collection.

A collection that fails to resolve is reported and skipped; the others are
still written and the command exits non-zero.

Examples:
  # Use sources from contentschema.yaml
  contentschema generate

  # Explicit files and output directory
  contentschema generate content/*.yaml --out .astro/collections

  # Only regenerate one collection
  contentschema generate --collection blog`,
		RunE: func(cmd *cobra.Command, args []string) error {
			return app.generate(cmd, args)
		},
	}
	f := cmd.Flags()
	f.StringP("out", "o", "", "output directory (default "+config.DefaultOutDir+")")
	f.StringSlice("collection", nil, "only generate these collections")
	f.Int("concurrency", 0, "collections generated at once (0 means GOMAXPROCS)")
	f.Int("indent", config.DefaultIndent, "spaces per indentation level")
	_ = app.v.BindPFlag(config.KeyOutDir, f.Lookup("out"))
	_ = app.v.BindPFlag(config.KeyCollections, f.Lookup("collection"))
	_ = app.v.BindPFlag(config.KeyConcurrency, f.Lookup("concurrency"))
	_ = app.v.BindPFlag(config.KeyIndent, f.Lookup("indent"))
	return cmd
}

func (a *App) generate(cmd *cobra.Command, args []string) error {
	set, err := a.load(args)
	if err != nil {
		return err
	}
	defs, err := a.selected(set)
	if err != nil {
		return err
	}

	results, err := collections.GenerateAll(cmd.Context(), defs, set.Table,
		collections.WithConcurrency(a.cfg.Concurrency),
		collections.WithLogger(a.log),
	)
	if results == nil && err != nil {
		return err
	}

	w := &emit.Writer{Fs: a.Fs, Dir: a.cfg.OutDir, Indent: a.cfg.IndentString()}
	failed := 0
	for _, r := range results {
		if r.Err != nil {
			failed++
			a.report(r.Err)
			continue
		}
		path, changed, err := w.Write(r.Name, r.Document)
		if err != nil {
			failed++
			a.errorf("%v", err)
			continue
		}
		a.log.Debug().Str("collection", r.Name).Str("path", path).Bool("changed", changed).Msg("written")
		if changed {
			a.success("%s → %s", r.Name, path)
		} else {
			a.info("%s unchanged", r.Name)
		}
	}
	undefined := collections.Undefined(results)
	for _, name := range slices.Sorted(maps.Keys(undefined)) {
		for _, ref := range undefined[name] {
			a.warn("%s references undefined collection %s", name, ref)
		}
	}
	if failed > 0 {
		return fmt.Errorf("%d of %d collections failed", failed, len(results))
	}
	return nil
}

// load expands args, or the configured sources, and loads every file.
func (a *App) load(args []string) (*declfile.Set, error) {
	patterns := args
	if len(patterns) == 0 {
		patterns = a.cfg.Sources
	}
	if len(patterns) == 0 {
		return nil, errNoSources
	}
	paths, err := declfile.Glob(a.Fs, patterns...)
	if err != nil {
		return nil, err
	}
	a.log.Debug().Strs("files", paths).Msg("loading declarations")
	set, err := declfile.Load(a.Fs, paths...)
	if err != nil {
		return nil, err
	}
	return set, nil
}

// selected applies the collections filter from flags or config.
func (a *App) selected(set *declfile.Set) ([]collections.Definition, error) {
	for _, name := range a.cfg.Collections {
		if _, ok := set.Collection(name); !ok {
			return nil, fmt.Errorf("unknown collection %q", name)
		}
	}
	var out []collections.Definition
	for _, def := range set.Collections {
		if a.cfg.Wants(def.Name) {
			out = append(out, def)
		}
	}
	return out, nil
}
