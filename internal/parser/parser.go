// Package parser assembles PlayOnBSD database lines into game records.
//
// Each record is a fixed cycle of sixteen fields starting with a Game line.
// A field that does not match the one expected puts the parser in an error
// state from which only a new Game line recovers. In Relaxed mode every
// offending line is recorded and parsing continues; in Strict mode parsing
// stops at the first one.
package parser

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"strings"

	"pobsd/internal/ctxlog"
	"pobsd/internal/domain"
)

// ErrMalformed is matched by errors describing rejected database lines
var ErrMalformed = errors.New("malformed database")

// MalformedError lists the lines the parser rejected
type MalformedError struct {
	Lines  []int
	Halted bool
}

func (e *MalformedError) Error() string {
	if len(e.Lines) == 0 {
		return "malformed database"
	}
	if e.Halted {
		return fmt.Sprintf("malformed database: stopped at line %d", e.Lines[len(e.Lines)-1])
	}
	return fmt.Sprintf("malformed database: %d line(s) ignored (%s)", len(e.Lines), joinInts(e.Lines))
}

func (e *MalformedError) Is(target error) bool {
	return target == ErrMalformed
}

// UnknownField is a line whose left-hand token is not part of the vocabulary
type UnknownField struct {
	Line  int
	Field domain.Field
}

// Result is the outcome of a parse run
type Result struct {
	Games    []domain.Game
	BadLines []int
	Unknown  []UnknownField
	Lines    int
	Halted   bool
}

// HasErrors reports whether any line was rejected
func (r *Result) HasErrors() bool {
	return len(r.BadLines) > 0
}

// Err returns a *MalformedError when lines were rejected, nil otherwise
func (r *Result) Err() error {
	if !r.HasErrors() {
		return nil
	}
	return &MalformedError{Lines: r.BadLines, Halted: r.Halted}
}

// Option configures a Parser
type Option func(*Parser)

// WithMode sets the parsing mode. The default is Relaxed.
func WithMode(mode Mode) Option {
	return func(p *Parser) {
		p.mode = mode
	}
}

// WithLogger sets the logger used for diagnostics
func WithLogger(logger *slog.Logger) Option {
	return func(p *Parser) {
		if logger != nil {
			p.logger = logger
			p.ownLogger = true
		}
	}
}

// Parser is the record assembler. It is single use and not safe for
// concurrent use; run one Parser per load.
type Parser struct {
	mode      Mode
	logger    *slog.Logger
	ownLogger bool

	state    State
	line     int
	games    []domain.Game
	badLines []int
	unknown  []UnknownField
	halted   bool
}

// New creates a Parser expecting a Game line
func New(opts ...Option) *Parser {
	p := &Parser{
		mode:   Relaxed,
		logger: slog.Default(),
		state:  StateGame,
	}
	for _, opt := range opts {
		opt(p)
	}
	return p
}

// Mode returns the parsing mode
func (p *Parser) Mode() Mode {
	return p.mode
}

// State returns the current state of the assembler
func (p *Parser) State() State {
	return p.state
}

// Feed consumes the next line. It returns false once the parser has halted
// (Strict mode after an error); further lines are ignored.
func (p *Parser) Feed(line string) bool {
	if p.halted {
		return false
	}
	p.line++

	if strings.TrimSpace(line) == "" {
		return true
	}

	field := domain.ParseField(line)
	if field.Kind == domain.FieldUnknown {
		p.unknown = append(p.unknown, UnknownField{Line: p.line, Field: field})
		p.logger.Debug("unknown field", "line", p.line, "left", field.Left, "right", field.Right)
	}

	p.step(field)
	return !p.halted
}

func (p *Parser) step(f domain.Field) {
	// A record without its Updated line takes the Added date
	if p.state == StateUpdated && f.Kind == domain.FieldGame {
		setUpdated(p.current(), domain.Field{Kind: domain.FieldUpdated})
		p.state = StateGame
	}

	switch p.state {
	case StateGame, StateError:
		if f.Kind == domain.FieldGame && f.Value != "" {
			p.startGame(f.Value)
			return
		}
		p.reject(f)
	default:
		t := transitions[p.state]
		if f.Kind != t.kind {
			p.reject(f)
			// An early Game line is reported, then starts the next record
			if f.Kind == domain.FieldGame && f.Value != "" && !p.halted {
				p.startGame(f.Value)
			}
			return
		}
		t.apply(p.current(), f)
		p.state = t.next
	}
}

func (p *Parser) startGame(name string) {
	p.games = append(p.games, domain.Game{
		ID:   len(p.games) + 1,
		UUID: domain.StableID(name),
		Name: name,
	})
	p.state = StateCover
}

func (p *Parser) current() *domain.Game {
	return &p.games[len(p.games)-1]
}

func (p *Parser) reject(f domain.Field) {
	switch {
	case f.Kind == domain.FieldGame:
		p.logger.Warn("game line without a name", "line", p.line)
	case p.state == StateError:
		p.logger.Warn("skipping line while waiting for a game", "line", p.line, "field", f.Kind.String())
	default:
		p.logger.Warn("unexpected field", "line", p.line, "expected", p.state.String(), "got", f.Kind.String())
	}

	p.badLines = append(p.badLines, p.line)
	p.state = StateError
	if p.mode == Strict {
		p.halted = true
	}
}

// Finish closes the current record and returns the result. The parser must
// not be fed afterwards.
func (p *Parser) Finish() *Result {
	if p.state == StateUpdated {
		setUpdated(p.current(), domain.Field{Kind: domain.FieldUpdated})
		p.state = StateGame
	}
	if p.halted {
		p.logger.Warn("parsing stopped", "line", p.line, "mode", p.mode.String())
	} else if len(p.badLines) > 0 {
		p.logger.Warn("parsed with errors", "games", len(p.games), "ignored_lines", len(p.badLines))
	}

	return &Result{
		Games:    p.games,
		BadLines: p.badLines,
		Unknown:  p.unknown,
		Lines:    p.line,
		Halted:   p.halted,
	}
}

// Parse reads r line by line. Lines have no length limit. The returned error
// only reports I/O failures or cancellation, and comes with the records
// assembled up to that point; rejected lines are reported through the Result.
func (p *Parser) Parse(ctx context.Context, r io.Reader) (*Result, error) {
	if !p.ownLogger {
		p.logger = ctxlog.FromContext(ctx)
	}

	br := bufio.NewReader(r)
	for {
		if err := ctx.Err(); err != nil {
			return p.Finish(), err
		}

		line, err := br.ReadString('\n')
		if line != "" {
			line = strings.TrimSuffix(line, "\n")
			if !p.Feed(strings.TrimSuffix(line, "\r")) {
				break
			}
		}
		if errors.Is(err, io.EOF) {
			break
		}
		if err != nil {
			return p.Finish(), fmt.Errorf("reading database: %w", err)
		}
	}
	return p.Finish(), nil
}

// ParseString parses an in-memory database
func ParseString(data string, opts ...Option) *Result {
	p := New(opts...)
	for line := range strings.Lines(data) {
		line = strings.TrimSuffix(line, "\n")
		if !p.Feed(strings.TrimSuffix(line, "\r")) {
			break
		}
	}
	return p.Finish()
}

func joinInts(values []int) string {
	parts := make([]string, len(values))
	for i, v := range values {
		parts[i] = fmt.Sprint(v)
	}
	return strings.Join(parts, ", ")
}
