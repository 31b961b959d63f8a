// Package declfile reads collection declarations from YAML, JSON, TOML or CUE
// files.
//
// Each file declares one module: its constants, reusable schema fragments,
// imports from other modules and, optionally, collections. A minimal YAML
// file:
//
//	module: config
//	imports:
//	  - from: consts
//	    names: [TAGS]
//	fragments:
//	  seo:
//	    type: object
//	    fields:
//	      title: {type: string, max: 60}
//	collections:
//	  blog:
//	    loader: glob
//	    schema:
//	      type: object
//	      fields:
//	        title: string
//	        tags: {type: array, items: {type: enum, source: TAGS}, optional: true}
//	        seo: {ident: seo}
//	        draft: {type: boolean, default: false}
//
// Schema nodes are maps with a type key, or a bare primitive name. Values
// written as {ident: NAME} refer to constants; {expr: SOURCE} records a
// runtime expression, which always fails resolution.
package declfile

import (
	"fmt"
	"path/filepath"
	"strings"

	"github.com/reoring/contentschema/collections"
	"github.com/reoring/contentschema/dsl"
	"github.com/reoring/contentschema/modules"
)

// Format is a declaration file syntax.
type Format int

const (
	FormatYAML Format = iota
	FormatJSON
	FormatTOML
	FormatCUE
)

func (f Format) String() string {
	switch f {
	case FormatYAML:
		return "yaml"
	case FormatJSON:
		return "json"
	case FormatTOML:
		return "toml"
	case FormatCUE:
		return "cue"
	}
	return fmt.Sprintf("Format(%d)", int(f))
}

// FormatOf picks the format from a file extension.
func FormatOf(path string) (Format, error) {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".yaml", ".yml":
		return FormatYAML, nil
	case ".json":
		return FormatJSON, nil
	case ".toml":
		return FormatTOML, nil
	case ".cue":
		return FormatCUE, nil
	}
	return 0, fmt.Errorf("unsupported declaration file %q (want .yaml, .yml, .json, .toml or .cue)", path)
}

// Import makes From.Name visible as Local.
type Import struct {
	Local string
	From  string
	Name  string
}

// Constant is a named value.
type Constant struct {
	Name  string
	Value any
}

// Fragment is a named reusable schema.
type Fragment struct {
	Name string
	Node dsl.Node
}

// File is one parsed declaration file.
type File struct {
	Path        string
	Format      Format
	Module      string
	Imports     []Import
	Constants   []Constant
	Fragments   []Fragment
	Collections []collections.Definition
}

// Register declares the file's module in tbl. Declaration order is kept so
// later entries with the same name replace earlier ones.
func (f *File) Register(tbl *modules.Table) {
	m := tbl.Module(f.Module)
	for _, im := range f.Imports {
		m.Import(im.Local, im.From, im.Name)
	}
	for _, c := range f.Constants {
		m.Const(c.Name, c.Value)
	}
	for _, fr := range f.Fragments {
		m.Fragment(fr.Name, fr.Node)
	}
}

// Parse decodes data in the format implied by path's extension. The module
// name defaults to the file name without extension.
func Parse(path string, data []byte) (*File, error) {
	format, err := FormatOf(path)
	if err != nil {
		return nil, err
	}
	return ParseFormat(format, path, data)
}

// ParseFormat decodes data in the given format. Syntax errors are returned
// wrapped; structural problems are returned as contentschema.Issues with
// code invalid_declaration.
func ParseFormat(format Format, path string, data []byte) (*File, error) {
	var (
		tree any
		err  error
	)
	switch format {
	case FormatYAML, FormatJSON:
		// JSON is a subset of YAML 1.2; one decoder keeps key order for both.
		tree, err = decodeYAML(data)
	case FormatTOML:
		tree, err = decodeTOML(data)
	case FormatCUE:
		tree, err = decodeCUE(path, data)
	default:
		err = fmt.Errorf("unknown format %v", format)
	}
	if err != nil {
		return nil, fmt.Errorf("decode %s: %w", path, err)
	}
	p := &parser{}
	f := p.file(tree)
	f.Path, f.Format = path, format
	if f.Module == "" {
		f.Module = moduleName(path)
	}
	for i := range f.Collections {
		f.Collections[i].Module = f.Module
	}
	if len(p.iss) > 0 {
		return nil, fmt.Errorf("%s: %w", path, p.iss)
	}
	return f, nil
}

func moduleName(path string) string {
	base := filepath.Base(path)
	return strings.TrimSuffix(base, filepath.Ext(base))
}
