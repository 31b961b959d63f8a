package contentschema

import (
	"fmt"
	"strings"
)

// LoaderKind identifies how a collection's entries are loaded.
type LoaderKind int

const (
	LoaderGlob   LoaderKind = iota // One file per entry.
	LoaderFile                     // A single JSON/YAML document holding entries by key.
	LoaderCustom                   // Any other loader; treated like Glob.
)

// String returns the lower-case loader name.
func (k LoaderKind) String() string {
	switch k {
	case LoaderGlob:
		return "glob"
	case LoaderFile:
		return "file"
	case LoaderCustom:
		return "custom"
	}
	return fmt.Sprintf("LoaderKind(%d)", int(k))
}

// ParseLoaderKind maps a loader name to a LoaderKind. The empty string means glob.
func ParseLoaderKind(s string) (LoaderKind, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "", "glob":
		return LoaderGlob, nil
	case "file":
		return LoaderFile, nil
	case "custom":
		return LoaderCustom, nil
	}
	return LoaderGlob, fmt.Errorf("unknown loader kind %q", s)
}
