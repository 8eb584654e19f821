package application

import (
	"fmt"
	"strconv"
	"strings"

	"pobsd/internal/catalog"
	"pobsd/internal/parser"
)

// ValidateRequired checks if a string field is non-empty (after trimming whitespace).
// Returns a ValidationError if the field is empty.
func ValidateRequired(fieldName, value string) error {
	if strings.TrimSpace(value) == "" {
		return &ValidationError{
			Field:   fieldName,
			Message: fmt.Sprintf("%s is required", formatFieldName(fieldName)),
		}
	}
	return nil
}

// formatFieldName converts camelCase field names to space-separated words
// for more readable error messages (e.g., "gameID" -> "game ID")
func formatFieldName(fieldName string) string {
	replacements := map[string]string{
		"gameID":    "game ID",
		"attribute": "attribute",
		"value":     "value",
		"query":     "query",
		"mode":      "parsing mode",
	}

	if formatted, ok := replacements[fieldName]; ok {
		return formatted
	}
	return fieldName
}

// ValidateID parses a game id. Ids are positive integers.
func ValidateID(fieldName, raw string) (int, error) {
	if err := ValidateRequired(fieldName, raw); err != nil {
		return 0, err
	}
	id, err := strconv.Atoi(strings.TrimSpace(raw))
	if err != nil || id < 1 {
		return 0, fmt.Errorf("%w: %w", ErrInvalidID, &ValidationError{
			Field:   fieldName,
			Message: fmt.Sprintf("expected a positive number, got: %s", raw),
		})
	}
	return id, nil
}

// ValidateAttribute parses an attribute name
func ValidateAttribute(fieldName, raw string) (catalog.Attribute, error) {
	attr, err := catalog.ParseAttribute(raw)
	if err != nil {
		return 0, fmt.Errorf("%w: %w", ErrInvalidAttribute, &ValidationError{
			Field:   fieldName,
			Message: fmt.Sprintf("expected one of engine, runtime, genre, tag, year, dev, pub, got: %s", raw),
		})
	}
	return attr, nil
}

// ValidateMode parses a parsing mode
func ValidateMode(fieldName, raw string) (parser.Mode, error) {
	mode, err := parser.ParseMode(raw)
	if err != nil {
		return mode, &ValidationError{Field: fieldName, Message: err.Error()}
	}
	return mode, nil
}
