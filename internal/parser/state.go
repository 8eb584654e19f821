package parser

import (
	"fmt"
	"strings"

	"pobsd/internal/domain"
)

// Mode controls what happens on the first structural error
type Mode int

const (
	// Relaxed records the bad line and keeps going, recovering on the next Game line
	Relaxed Mode = iota
	// Strict stops at the first bad line
	Strict
)

func (m Mode) String() string {
	if m == Strict {
		return "strict"
	}
	return "relaxed"
}

// ParseMode parses "strict" or "relaxed" (case-insensitive)
func ParseMode(s string) (Mode, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "", "relaxed":
		return Relaxed, nil
	case "strict":
		return Strict, nil
	default:
		return Relaxed, fmt.Errorf("unknown parsing mode %q (expected strict or relaxed)", s)
	}
}

// State is the field the assembler expects next, or StateError while it
// waits for a Game line to recover.
type State int

const (
	StateGame State = iota
	StateCover
	StateEngine
	StateSetup
	StateRuntime
	StateStore
	StateHints
	StateGenre
	StateTags
	StateYear
	StateDev
	StatePub
	StateVersion
	StateStatus
	StateAdded
	StateUpdated
	StateError
)

func (s State) String() string {
	if s == StateError {
		return "Error"
	}
	return s.Expected().String()
}

// Expected returns the field kind accepted in this state
func (s State) Expected() domain.FieldKind {
	if s < StateGame || s >= StateError {
		return domain.FieldGame
	}
	return transitions[s].kind
}

// transition is one row of the record cycle: in state, a field of kind is
// applied to the current game and the machine moves to next.
type transition struct {
	kind  domain.FieldKind
	apply func(g *domain.Game, f domain.Field)
	next  State
}

// transitions is indexed by State. The Game row is only consulted for its
// kind; starting a record is handled by the parser itself.
var transitions = [StateError]transition{
	StateGame:    {domain.FieldGame, func(g *domain.Game, f domain.Field) { g.Name = f.Value }, StateCover},
	StateCover:   {domain.FieldCover, func(g *domain.Game, f domain.Field) { g.Cover = f.Value }, StateEngine},
	StateEngine:  {domain.FieldEngine, func(g *domain.Game, f domain.Field) { g.Engine = f.Value }, StateSetup},
	StateSetup:   {domain.FieldSetup, func(g *domain.Game, f domain.Field) { g.Setup = f.Value }, StateRuntime},
	StateRuntime: {domain.FieldRuntime, func(g *domain.Game, f domain.Field) { g.Runtime = f.Value }, StateStore},
	StateStore:   {domain.FieldStore, func(g *domain.Game, f domain.Field) { g.Stores = f.Values }, StateHints},
	StateHints:   {domain.FieldHints, func(g *domain.Game, f domain.Field) { g.Hints = f.Value }, StateGenre},
	StateGenre:   {domain.FieldGenre, func(g *domain.Game, f domain.Field) { g.Genres = f.Values }, StateTags},
	StateTags:    {domain.FieldTags, func(g *domain.Game, f domain.Field) { g.Tags = f.Values }, StateYear},
	StateYear:    {domain.FieldYear, func(g *domain.Game, f domain.Field) { g.Year = f.Value }, StateDev},
	StateDev:     {domain.FieldDev, func(g *domain.Game, f domain.Field) { g.Dev = f.Value }, StatePub},
	StatePub:     {domain.FieldPub, func(g *domain.Game, f domain.Field) { g.Publisher = f.Value }, StateVersion},
	StateVersion: {domain.FieldVersion, func(g *domain.Game, f domain.Field) { g.Version = f.Value }, StateStatus},
	StateStatus:  {domain.FieldStatus, func(g *domain.Game, f domain.Field) { g.Status = f.Value }, StateAdded},
	StateAdded:   {domain.FieldAdded, func(g *domain.Game, f domain.Field) { g.Added = f.Value }, StateUpdated},
	StateUpdated: {domain.FieldUpdated, setUpdated, StateGame},
}

// setUpdated falls back to the Added date when the line carries none
func setUpdated(g *domain.Game, f domain.Field) {
	if f.Value != "" {
		g.Updated = f.Value
		return
	}
	g.Updated = g.Added
}
