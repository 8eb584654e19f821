package domain

import "strings"

// FieldKind identifies the kind of a database line
type FieldKind int

const (
	FieldUnknown FieldKind = iota
	FieldGame
	FieldCover
	FieldEngine
	FieldSetup
	FieldRuntime
	FieldStore
	FieldHints
	FieldGenre
	FieldTags
	FieldYear
	FieldDev
	FieldPub
	FieldVersion
	FieldStatus
	FieldAdded
	FieldUpdated
)

// DefaultAdded is used when an Added line carries no date
const DefaultAdded = "1970/01/01"

var fieldTokens = map[FieldKind]string{
	FieldGame:    "Game",
	FieldCover:   "Cover",
	FieldEngine:  "Engine",
	FieldSetup:   "Setup",
	FieldRuntime: "Runtime",
	FieldStore:   "Store",
	FieldHints:   "Hints",
	FieldGenre:   "Genre",
	FieldTags:    "Tags",
	FieldYear:    "Year",
	FieldDev:     "Dev",
	FieldPub:     "Pub",
	FieldVersion: "Version",
	FieldStatus:  "Status",
	FieldAdded:   "Added",
	FieldUpdated: "Updated",
}

var tokenKinds = func() map[string]FieldKind {
	m := make(map[string]FieldKind, len(fieldTokens))
	for k, v := range fieldTokens {
		m[v] = k
	}
	return m
}()

// String returns the token used for the kind in the database
func (k FieldKind) String() string {
	if s, ok := fieldTokens[k]; ok {
		return s
	}
	return "Unknown"
}

// IsList reports whether lines of this kind carry a list of values
func (k FieldKind) IsList() bool {
	return k == FieldStore || k == FieldGenre || k == FieldTags
}

// separator returns the separator used to render a list kind
func (k FieldKind) separator() string {
	if k == FieldStore {
		return " "
	}
	return ", "
}

// ParseFieldKind maps a left-hand token to its kind. Matching is exact and
// case-sensitive; anything else is FieldUnknown.
func ParseFieldKind(token string) FieldKind {
	if k, ok := tokenKinds[token]; ok {
		return k
	}
	return FieldUnknown
}

// Field is one classified line of the database.
//
// Single-value kinds use Value, list kinds use Values. An empty Value or a nil
// Values means the line had no right-hand side. Unknown fields keep the
// original tokens in Left and Right.
type Field struct {
	Kind   FieldKind
	Value  string
	Values []string
	Left   string
	Right  string
}

// HasValue reports whether the field carries a payload
func (f Field) HasValue() bool {
	if f.Kind.IsList() {
		return len(f.Values) > 0
	}
	return f.Value != ""
}

// String renders the field back as a database line
func (f Field) String() string {
	if f.Kind == FieldUnknown {
		parts := []string{"Unknown"}
		if f.Left != "" {
			parts = append(parts, f.Left)
		}
		if f.Right != "" {
			parts = append(parts, f.Right)
		}
		return strings.Join(parts, "\t")
	}

	var value string
	if f.Kind.IsList() {
		value = strings.Join(f.Values, f.Kind.separator())
	} else {
		value = f.Value
	}
	return formatLine(f.Kind, value)
}

func formatLine(kind FieldKind, value string) string {
	if value == "" {
		return kind.String()
	}
	return kind.String() + "\t" + value
}

// SplitLine splits a line on its first tab. Everything after the first tab,
// embedded tabs included, is kept verbatim as the right-hand side. An empty
// string stands for an absent side.
func SplitLine(line string) (left, right string) {
	left, right, _ = strings.Cut(line, "\t")
	return left, right
}

// Classify turns a split line into a Field. It never fails: tokens outside the
// vocabulary produce a FieldUnknown carrying both sides unaltered.
func Classify(left, right string) Field {
	if left == "" {
		return Field{Kind: FieldUnknown, Right: right}
	}

	kind := ParseFieldKind(left)
	switch kind {
	case FieldUnknown:
		return Field{Kind: FieldUnknown, Left: left, Right: right}
	case FieldStore:
		return Field{Kind: kind, Values: splitList(right, " ")}
	case FieldGenre, FieldTags:
		return Field{Kind: kind, Values: splitList(right, ",")}
	case FieldAdded:
		if right == "" {
			right = DefaultAdded
		}
		return Field{Kind: kind, Value: right}
	default:
		return Field{Kind: kind, Value: right}
	}
}

// ParseField splits and classifies a single line
func ParseField(line string) Field {
	return Classify(SplitLine(line))
}

// splitList splits s on sep, trims each piece and drops empty ones.
// Returns nil when nothing is left.
func splitList(s, sep string) []string {
	if s == "" {
		return nil
	}
	var items []string
	for _, piece := range strings.Split(s, sep) {
		if piece = strings.TrimSpace(piece); piece != "" {
			items = append(items, piece)
		}
	}
	return items
}
