package link

import "strconv"

// Codec converts between a value type and the text representation used by
// text-surface controls. Format followed by Parse is the identity for every
// value of T, so a quiet write into a text control reads back unchanged.
type Codec[T any] struct {
	// Name is the value type's name, used in conversion error messages.
	Name string
	// Format renders a value as control text. Total.
	Format func(T) string
	// Parse converts control text back to a value.
	Parse func(string) (T, error)
}

// Strings is the identity codec for string cells.
func Strings() Codec[string] {
	return Codec[string]{
		Name:   "string",
		Format: func(s string) string { return s },
		Parse:  func(s string) (string, error) { return s, nil },
	}
}

// Ints converts int cells to and from decimal text.
func Ints() Codec[int] {
	return Codec[int]{
		Name:   "int",
		Format: strconv.Itoa,
		Parse:  strconv.Atoi,
	}
}

// Floats converts float64 cells to and from the shortest text that parses
// back exactly.
func Floats() Codec[float64] {
	return Codec[float64]{
		Name: "float64",
		Format: func(v float64) string {
			return strconv.FormatFloat(v, 'g', -1, 64)
		},
		Parse: func(s string) (float64, error) {
			return strconv.ParseFloat(s, 64)
		},
	}
}
