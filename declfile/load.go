package declfile

import (
	"errors"
	"fmt"
	"os"

	"github.com/spf13/afero"

	contentschema "github.com/reoring/contentschema"
	"github.com/reoring/contentschema/collections"
	"github.com/reoring/contentschema/i18n"
	"github.com/reoring/contentschema/modules"
)

// Set is the result of loading several declaration files into one table.
type Set struct {
	Table *modules.Table
	Files []*File
	// Collections holds every declared collection in file order.
	Collections []collections.Definition
}

// Collection returns the named collection.
func (s *Set) Collection(name string) (collections.Definition, bool) {
	for _, c := range s.Collections {
		if c.Name == name {
			return c, true
		}
	}
	return collections.Definition{}, false
}

// Load reads and parses every path from fsys. All files are read even when
// some fail; the returned error joins every failure. Two files declaring the
// same module are rejected.
func Load(fsys afero.Fs, paths ...string) (*Set, error) {
	if fsys == nil {
		fsys = afero.NewOsFs()
	}
	set := &Set{Table: modules.New()}
	var errs []error
	owner := map[string]string{}
	for _, path := range paths {
		data, err := afero.ReadFile(fsys, path)
		if err != nil {
			errs = append(errs, fmt.Errorf("read declaration: %w", err))
			continue
		}
		f, err := Parse(path, data)
		if err != nil {
			errs = append(errs, err)
			continue
		}
		if prev, dup := owner[f.Module]; dup {
			errs = append(errs, fmt.Errorf("%s: %w", path, contentschema.Issues{{
				Path:    "/module",
				Code:    contentschema.CodeInvalidDeclaration,
				Message: i18n.T(contentschema.CodeInvalidDeclaration, nil),
				Hint:    fmt.Sprintf("module %s is already declared by %s", f.Module, prev),
			}}))
			continue
		}
		owner[f.Module] = path
		f.Register(set.Table)
		set.Files = append(set.Files, f)
		set.Collections = append(set.Collections, f.Collections...)
	}
	return set, errors.Join(errs...)
}

// Glob expands patterns against fsys. Patterns without matches are kept as-is
// so a missing file is reported by Load.
func Glob(fsys afero.Fs, patterns ...string) ([]string, error) {
	if fsys == nil {
		fsys = afero.NewOsFs()
	}
	var out []string
	for _, pat := range patterns {
		matches, err := afero.Glob(fsys, pat)
		if err != nil {
			return nil, fmt.Errorf("glob %q: %w", pat, err)
		}
		if len(matches) == 0 {
			out = append(out, pat)
			continue
		}
		out = append(out, matches...)
	}
	return out, nil
}

// IsNotExist reports whether err was caused by a missing declaration file.
func IsNotExist(err error) bool { return errors.Is(err, os.ErrNotExist) }
