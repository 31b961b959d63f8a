package contentschema

import (
	"errors"
	"strings"
	"testing"
)

var errLookup = errors.New("lookup failed")

func TestIssues_ErrorSummary(t *testing.T) {
	iss := Issues{
		{Path: "/tags", Code: CodeUnresolvedIdentifier, Identifier: "consts.TAGS"},
		{Code: CodeInvalidRoot, Collection: "blog"},
		{Path: "/a", Code: CodeNonConstant},
		{Path: "/b", Code: CodeNonConstant},
	}
	got := iss.Error()
	want := `unresolved_identifier "consts.TAGS" at /tags; invalid_root at / (collection blog); non_constant at /a; ... (total 4)`
	if got != want {
		t.Fatalf("got  %s\nwant %s", got, want)
	}
	if (Issues{}).Error() != "" {
		t.Fatalf("empty issues should render empty")
	}
}

func TestIssues_UnwrapAndHelpers(t *testing.T) {
	var err error = Issues{{Code: CodeUnknownModule, Cause: errLookup}}
	if !errors.Is(err, errLookup) {
		t.Fatalf("cause not reachable")
	}
	if !HasCode(err, CodeUnknownModule) || HasCode(err, CodeImportCycle) {
		t.Fatalf("HasCode mismatch")
	}
	if _, ok := AsIssues(errors.New("plain")); ok {
		t.Fatalf("plain error is not Issues")
	}
	tagged := Issues{{Code: CodeInvalidRoot}, {Code: CodeInvalidRoot, Collection: "keep"}}.WithCollection("blog")
	if tagged[0].Collection != "blog" || tagged[1].Collection != "keep" {
		t.Fatalf("tagged = %+v", tagged)
	}
	if !strings.Contains(AppendIssues(nil, Issue{Code: CodeInvalidValue}).Error(), CodeInvalidValue) {
		t.Fatalf("AppendIssues lost the issue")
	}
}

func TestParseLoaderKind(t *testing.T) {
	cases := map[string]LoaderKind{"": LoaderGlob, "glob": LoaderGlob, "file": LoaderFile, "custom": LoaderCustom}
	for in, want := range cases {
		got, err := ParseLoaderKind(in)
		if err != nil || got != want {
			t.Errorf("ParseLoaderKind(%q) = %v, %v", in, got, err)
		}
		if in != "" && got.String() != in {
			t.Errorf("String() = %q", got.String())
		}
	}
	if _, err := ParseLoaderKind("s3"); err == nil {
		t.Fatalf("expected error")
	}
}
