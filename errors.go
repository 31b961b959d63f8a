package contentschema

import (
	"errors"
	"fmt"
	"strings"
)

// Issue codes (exported consts for IDE completion and type safety by convention)
const (
	CodeUnresolvedIdentifier = "unresolved_identifier"
	CodeUnknownModule        = "unknown_module"
	CodeNonConstant          = "non_constant"
	CodeInvalidEnumSource    = "invalid_enum_source"
	CodeInvalidFragment      = "invalid_fragment"
	CodeInvalidValue         = "invalid_value"
	CodeIdentifierCycle      = "identifier_cycle"
	CodeImportCycle          = "import_cycle"
	CodeInvalidVariant       = "invalid_variant"
	CodeInvalidRoot          = "invalid_root"
	// Collection/declaration level
	CodeDuplicateCollection = "duplicate_collection"
	CodeInvalidDeclaration  = "invalid_declaration"
)

// Issue represents a single resolution or declaration failure.
type Issue struct {
	Path       string // Field path inside the collection schema (for example: /seo/title).
	Code       string // One of the codes listed above.
	Identifier string // Offending identifier, module-qualified when known (for example: consts.TAGS).
	Message    string
	Hint       string // Optional: remediation hints.
	Cause      error  // Optional: underlying error.
	// Collection optionally records the collection being generated.
	Collection string
}

// Issues is a collection of failures that implements error.
type Issues []Issue

// Error summarizes the first few issues.
func (iss Issues) Error() string {
	if len(iss) == 0 {
		return ""
	}
	const maxShown = 3
	b := &strings.Builder{}
	n := len(iss)
	lim := n
	if lim > maxShown {
		lim = maxShown
	}
	for i := 0; i < lim; i++ {
		if i > 0 {
			b.WriteString("; ")
		}
		it := iss[i]
		// e.g. unresolved_identifier "TAGS" at /tags
		b.WriteString(it.Code)
		if it.Identifier != "" {
			fmt.Fprintf(b, " %q", it.Identifier)
		}
		fmt.Fprintf(b, " at %s", pathOrRoot(it.Path))
		if it.Collection != "" {
			fmt.Fprintf(b, " (collection %s)", it.Collection)
		}
	}
	if n > lim {
		fmt.Fprintf(b, "; ... (total %d)", n)
	}
	return b.String()
}

// Unwrap exposes the causes so errors.Is can see sentinel errors from lookups.
func (iss Issues) Unwrap() []error {
	var out []error
	for _, it := range iss {
		if it.Cause != nil {
			out = append(out, it.Cause)
		}
	}
	return out
}

// WithCollection returns a copy of the issues tagged with the collection name.
func (iss Issues) WithCollection(name string) Issues {
	out := make(Issues, len(iss))
	for i, it := range iss {
		if it.Collection == "" {
			it.Collection = name
		}
		out[i] = it
	}
	return out
}

// AppendIssues appends issues to the destination, initializing the slice when
// needed.
func AppendIssues(dst Issues, more ...Issue) Issues {
	if dst == nil {
		dst = Issues{}
	}
	dst = append(dst, more...)
	return dst
}

// AsIssues extracts Issues from an error using errors.As internally.
func AsIssues(err error) (Issues, bool) {
	if err == nil {
		return nil, false
	}
	var iss Issues
	if errors.As(err, &iss) {
		return iss, true
	}
	return nil, false
}

// HasCode reports whether err carries an Issue with the given code.
func HasCode(err error, code string) bool {
	iss, ok := AsIssues(err)
	if !ok {
		return false
	}
	for _, it := range iss {
		if it.Code == code {
			return true
		}
	}
	return false
}

func pathOrRoot(p string) string {
	if p == "" {
		return "/"
	}
	return p
}
