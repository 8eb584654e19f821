package domain

import (
	"testing"

	"github.com/google/go-cmp/cmp"
)

func TestSplitLine(t *testing.T) {
	tests := []struct {
		name      string
		line      string
		wantLeft  string
		wantRight string
	}{
		{name: "empty", line: "", wantLeft: "", wantRight: ""},
		{name: "no tab", line: "notab", wantLeft: "notab"},
		{name: "no tab with space", line: "no tab", wantLeft: "no tab"},
		{name: "one tab", line: "one\ttab", wantLeft: "one", wantRight: "tab"},
		{name: "trailing tab", line: "Cover\t", wantLeft: "Cover"},
		{name: "two tabs", line: "one\ttab\tanother", wantLeft: "one", wantRight: "tab\tanother"},
		{name: "three tabs", line: "a\tb\tc\td", wantLeft: "a", wantRight: "b\tc\td"},
		{name: "leading tab", line: "\tright", wantLeft: "", wantRight: "right"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			left, right := SplitLine(tt.line)
			if left != tt.wantLeft || right != tt.wantRight {
				t.Errorf("SplitLine(%q) = (%q, %q), want (%q, %q)",
					tt.line, left, right, tt.wantLeft, tt.wantRight)
			}
		})
	}
}

func TestSplitLine_NoTabIsStable(t *testing.T) {
	for _, line := range []string{"Game", "some words", "x"} {
		left, right := SplitLine(line)
		again, rest := SplitLine(left)
		if again != line || right != "" || rest != "" {
			t.Errorf("re-splitting %q gave (%q, %q)", line, again, rest)
		}
	}
}

func TestParseField_SingleValues(t *testing.T) {
	kinds := []FieldKind{
		FieldGame, FieldCover, FieldEngine, FieldSetup, FieldRuntime, FieldHints,
		FieldDev, FieldPub, FieldVersion, FieldStatus, FieldYear, FieldUpdated,
	}

	for _, kind := range kinds {
		t.Run(kind.String(), func(t *testing.T) {
			line := kind.String() + "\tToto"
			field := ParseField(line)
			if field.Kind != kind || field.Value != "Toto" {
				t.Errorf("ParseField(%q) = %+v", line, field)
			}
			if got := field.String(); got != line {
				t.Errorf("render: got %q, want %q", got, line)
			}

			bare := ParseField(kind.String())
			if bare.Kind != kind || bare.HasValue() {
				t.Errorf("ParseField(%q) = %+v, want empty %s", kind.String(), bare, kind)
			}
			if got := bare.String(); got != kind.String() {
				t.Errorf("render: got %q, want %q", got, kind.String())
			}
		})
	}
}

func TestParseField_AddedDefaultsToEpoch(t *testing.T) {
	field := ParseField("Added")
	if field.Kind != FieldAdded || field.Value != DefaultAdded {
		t.Errorf("expected Added %s, got %+v", DefaultAdded, field)
	}

	field = ParseField("Added\t2012-12-03")
	if field.Value != "2012-12-03" {
		t.Errorf("expected explicit date, got %q", field.Value)
	}
}

func TestParseField_Lists(t *testing.T) {
	tests := []struct {
		name string
		line string
		kind FieldKind
		want []string
	}{
		{name: "store", line: "Store\tfirst second", kind: FieldStore, want: []string{"first", "second"}},
		{name: "store double space", line: "Store\tfirst  second", kind: FieldStore, want: []string{"first", "second"}},
		{name: "genre", line: "Genre\tfirst, second", kind: FieldGenre, want: []string{"first", "second"}},
		{name: "genre no space", line: "Genre\ta,b", kind: FieldGenre, want: []string{"a", "b"}},
		{name: "tags", line: "Tags\tfirst, second", kind: FieldTags, want: []string{"first", "second"}},
		{name: "tags empty piece", line: "Tags\ta, , b,", kind: FieldTags, want: []string{"a", "b"}},
		{name: "tags absent", line: "Tags", kind: FieldTags, want: nil},
		{name: "genre only separators", line: "Genre\t , ,", kind: FieldGenre, want: nil},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			field := ParseField(tt.line)
			if field.Kind != tt.kind {
				t.Fatalf("expected kind %s, got %s", tt.kind, field.Kind)
			}
			if diff := cmp.Diff(tt.want, field.Values); diff != "" {
				t.Errorf("values mismatch (-want +got):\n%s", diff)
			}
		})
	}
}

func TestParseField_ListRendering(t *testing.T) {
	for _, line := range []string{"Store\tfirst second", "Genre\tfirst, second", "Tags\tfirst, second"} {
		if got := ParseField(line).String(); got != line {
			t.Errorf("render: got %q, want %q", got, line)
		}
	}
}

func TestParseField_Unknown(t *testing.T) {
	tests := []struct {
		name       string
		line       string
		want       Field
		wantRender string
	}{
		{
			name:       "unknown token",
			line:       "Let's not\tpanic",
			want:       Field{Kind: FieldUnknown, Left: "Let's not", Right: "panic"},
			wantRender: "Unknown\tLet's not\tpanic",
		},
		{
			name:       "unknown without tab",
			line:       "Let's not",
			want:       Field{Kind: FieldUnknown, Left: "Let's not"},
			wantRender: "Unknown\tLet's not",
		},
		{
			name:       "case sensitive",
			line:       "game\tFoo",
			want:       Field{Kind: FieldUnknown, Left: "game", Right: "Foo"},
			wantRender: "Unknown\tgame\tFoo",
		},
		{
			name:       "empty line",
			line:       "",
			want:       Field{Kind: FieldUnknown},
			wantRender: "Unknown",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			field := ParseField(tt.line)
			if diff := cmp.Diff(tt.want, field); diff != "" {
				t.Errorf("field mismatch (-want +got):\n%s", diff)
			}
			if got := field.String(); got != tt.wantRender {
				t.Errorf("render: got %q, want %q", got, tt.wantRender)
			}
		})
	}
}

func TestParseFieldKind(t *testing.T) {
	if ParseFieldKind("Pub") != FieldPub {
		t.Error("Pub should map to FieldPub")
	}
	if ParseFieldKind("Publisher") != FieldUnknown {
		t.Error("Publisher is not part of the vocabulary")
	}
	if FieldUnknown.String() != "Unknown" {
		t.Errorf("unexpected name %q", FieldUnknown.String())
	}
}
