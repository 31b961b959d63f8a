package collections

import (
	"context"
	"errors"
	"fmt"
	"runtime"

	"github.com/rs/zerolog"
	"golang.org/x/sync/errgroup"

	contentschema "github.com/reoring/contentschema"
	"github.com/reoring/contentschema/dsl/irconv"
	"github.com/reoring/contentschema/i18n"
	js "github.com/reoring/contentschema/jsonschema"
)

// Result is the outcome for one collection. Exactly one of Document and Err
// is set.
type Result struct {
	Name     string
	Envelope Envelope
	Document *js.Document
	// References lists the collections referenced from the entry schema.
	References []string
	Err        error
}

type options struct {
	concurrency int
	log         zerolog.Logger
}

// Option configures GenerateAll.
type Option func(*options)

// WithConcurrency bounds the number of collections generated at once. Values
// below one mean GOMAXPROCS.
func WithConcurrency(n int) Option {
	return func(o *options) { o.concurrency = n }
}

// WithLogger sets the logger used for per-collection progress.
func WithLogger(l zerolog.Logger) Option {
	return func(o *options) { o.log = l }
}

// GenerateAll generates every definition in parallel. Results come back in
// definition order. A failing collection never stops the others; the returned
// error joins all per-collection failures. Duplicate names are rejected before
// any work starts.
func GenerateAll(ctx context.Context, defs []Definition, scope irconv.Scope, opts ...Option) ([]Result, error) {
	o := options{log: zerolog.Nop()}
	for _, opt := range opts {
		opt(&o)
	}
	if o.concurrency < 1 {
		o.concurrency = runtime.GOMAXPROCS(0)
	}
	if err := checkNames(defs); err != nil {
		return nil, err
	}

	results := make([]Result, len(defs))
	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(o.concurrency)
	for i, def := range defs {
		g.Go(func() error {
			res := Result{Name: def.Name, Envelope: def.Envelope()}
			if err := gctx.Err(); err != nil {
				res.Err = fmt.Errorf("collection %s: %w", def.Name, err)
				results[i] = res
				return nil
			}
			doc, refs, err := generate(def, scope)
			res.Document, res.References, res.Err = doc, refs, err
			results[i] = res
			if err != nil {
				o.log.Debug().Str("collection", def.Name).Err(err).Msg("generate failed")
				return nil
			}
			o.log.Debug().
				Str("collection", def.Name).
				Stringer("envelope", res.Envelope).
				Strs("references", refs).
				Msg("generated")
			return nil
		})
	}
	_ = g.Wait()

	var errs []error
	for _, r := range results {
		if r.Err != nil {
			errs = append(errs, r.Err)
		}
	}
	return results, errors.Join(errs...)
}

func checkNames(defs []Definition) error {
	var iss contentschema.Issues
	seen := make(map[string]bool, len(defs))
	for _, d := range defs {
		if seen[d.Name] {
			iss = contentschema.AppendIssues(iss, contentschema.Issue{
				Path:       "/",
				Code:       contentschema.CodeDuplicateCollection,
				Message:    i18n.T(contentschema.CodeDuplicateCollection, map[string]string{"collection": d.Name}),
				Collection: d.Name,
			})
			continue
		}
		seen[d.Name] = true
	}
	if len(iss) > 0 {
		return iss
	}
	return nil
}

// Undefined reports references to collections missing from defs. It is
// informational: references are not validated during generation.
func Undefined(results []Result) map[string][]string {
	known := make(map[string]bool, len(results))
	for _, r := range results {
		known[r.Name] = true
	}
	out := map[string][]string{}
	for _, r := range results {
		for _, ref := range r.References {
			if !known[ref] {
				out[r.Name] = append(out[r.Name], ref)
			}
		}
	}
	return out
}
