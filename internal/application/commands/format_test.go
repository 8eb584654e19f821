package commands

import (
	"bytes"
	"errors"
	"strings"
	"testing"

	"pobsd/internal/application"
	"pobsd/internal/parser"
)

func TestFormatCommand_RoundTrip(t *testing.T) {
	content := dbRecord("Stardew Valley", "XNA", "2016") + dbRecord("Celeste", "XNA", "2018")

	var out bytes.Buffer
	res, err := NewFormatCommand(writeDatabase(t, content), parser.Relaxed).Execute(quietContext(), &out)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if res.HasErrors() {
		t.Errorf("unexpected bad lines %v", res.BadLines)
	}
	if out.String() != content {
		t.Errorf("expected formatted output to equal the input\ngot:\n%s\nwant:\n%s", out.String(), content)
	}
}

func TestFormatCommand_Options(t *testing.T) {
	content := dbRecord("Stardew Valley", "XNA", "2016") + dbRecord("Celeste", "XNA", "2018")

	cmd := NewFormatCommand(writeDatabase(t, content), parser.Relaxed)
	cmd.NormalizeDates = true
	cmd.SortByName = true

	var out bytes.Buffer
	if _, err := cmd.Execute(quietContext(), &out); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	lines := strings.Split(strings.TrimSuffix(out.String(), "\n"), "\n")
	if len(lines) != 32 {
		t.Fatalf("expected 32 lines, got %d", len(lines))
	}
	if lines[0] != "Game\tCeleste" || lines[16] != "Game\tStardew Valley" {
		t.Errorf("expected records sorted by name, got %q and %q", lines[0], lines[16])
	}
	if lines[14] != "Added\t2020-01-02" || lines[15] != "Updated\t2021-03-04" {
		t.Errorf("expected normalized dates, got %q and %q", lines[14], lines[15])
	}
}

func TestFormatCommand_DropsBadLines(t *testing.T) {
	content := dbRecord("Celeste", "XNA", "2018") + "garbage\n"

	var out bytes.Buffer
	res, err := NewFormatCommand(writeDatabase(t, content), parser.Relaxed).Execute(quietContext(), &out)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !equalInts(res.BadLines, []int{17}) {
		t.Errorf("expected bad lines [17], got %v", res.BadLines)
	}
	if contains(out.String(), "garbage") {
		t.Error("expected rejected line to be dropped from the output")
	}

	out.Reset()
	_, err = NewFormatCommand(writeDatabase(t, content), parser.Strict).Execute(quietContext(), &out)
	if !errors.Is(err, application.ErrMalformedDatabase) {
		t.Errorf("expected ErrMalformedDatabase in strict mode, got %v", err)
	}
	if out.Len() != 0 {
		t.Error("expected no output in strict mode")
	}
}
