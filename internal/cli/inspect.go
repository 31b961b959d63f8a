package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/reoring/contentschema/collections"
	js "github.com/reoring/contentschema/jsonschema"
)

type inspectOptions struct {
	collection string
}

func newInspectCmd(app *App) *cobra.Command {
	opts := &inspectOptions{}
	cmd := &cobra.Command{
		Use:   "inspect <files...> --collection NAME",
		Short: "Print the document of one collection",
		Long: `Print the JSON Schema document of a single collection to stdout without
writing anything. Pass every declaration file the collection depends on.

Example:
  contentschema inspect content/consts.yaml content/config.yaml --collection blog`,
		Args: cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return app.inspect(args, opts)
		},
	}
	cmd.Flags().StringVarP(&opts.collection, "collection", "c", "", "collection to print")
	_ = cmd.MarkFlagRequired("collection")
	return cmd
}

func (a *App) inspect(args []string, opts *inspectOptions) error {
	set, err := a.load(args)
	if err != nil {
		return err
	}
	def, ok := set.Collection(opts.collection)
	if !ok {
		return fmt.Errorf("unknown collection %q", opts.collection)
	}
	doc, err := collections.Generate(def, set.Table)
	if err != nil {
		return err
	}
	return js.Encode(a.Out, doc, a.cfg.IndentString())
}
