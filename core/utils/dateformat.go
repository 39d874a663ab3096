package utils

import (
	"errors"
	"fmt"
	"strings"
)

const (
	// DefaultDateFormat is the display format used when none is configured.
	DefaultDateFormat = "yyyy-MM-dd HH:mm:ss"
	// PreciseDateFormat shows timestamps down to 100ns ticks.
	PreciseDateFormat = "yyyy-MM-dd HH:mm:ss.fffffff"
)

// ErrAmbiguousLiteral is returned for a date format whose literal text would
// be read back as a layout element, such as a digit or "Jan".
var ErrAmbiguousLiteral = errors.New("literal text would be read as a date element")

// goElements are substrings Go treats as layout elements wherever they occur.
var goElements = []string{"Jan", "Mon", "MST", "PM", "pm", "_"}

// GoLayout converts a .NET style custom date format string (yyyy-MM-dd HH:mm:ss)
// into the equivalent Go reference layout (2006-01-02 15:04:05).
// Single or double quoted runs and backslash escapes are copied literally.
// Go has no escape syntax, so literal text holding digits or Go element names
// cannot be expressed and yields ErrAmbiguousLiteral.
func GoLayout(format string) (string, error) {
	runes := []rune(format)
	var b, lit strings.Builder

	flush := func() error {
		if lit.Len() == 0 {
			return nil
		}
		defer lit.Reset()
		if err := checkLiteral(lit.String()); err != nil {
			return fmt.Errorf("date format %q: %w", format, err)
		}
		return nil
	}
	literal := func(s string) {
		lit.WriteString(s)
		b.WriteString(s)
	}

	for i := 0; i < len(runes); {
		c := runes[i]

		switch c {
		case '\'', '"':
			end := i + 1
			for end < len(runes) && runes[end] != c {
				end++
			}
			literal(string(runes[i+1 : min(end, len(runes))]))
			i = end + 1
			continue
		case '\\':
			if i+1 < len(runes) {
				literal(string(runes[i+1]))
			}
			i += 2
			continue
		}

		n := runLength(runes, i)
		if !strings.ContainsRune("yMdHhmsfFtzK", c) {
			literal(strings.Repeat(string(c), n))
			i += n
			continue
		}
		if err := flush(); err != nil {
			return "", err
		}

		switch c {
		case 'y':
			if n <= 2 {
				b.WriteString("06")
			} else {
				b.WriteString("2006")
			}
		case 'M':
			b.WriteString(pick(n, "1", "01", "Jan", "January"))
		case 'd':
			b.WriteString(pick(n, "2", "02", "Mon", "Monday"))
		case 'H':
			b.WriteString("15")
		case 'h':
			b.WriteString(pick(n, "3", "03"))
		case 'm':
			b.WriteString(pick(n, "4", "04"))
		case 's':
			b.WriteString(pick(n, "5", "05"))
		case 'f', 'F':
			digit := "0"
			if c == 'F' {
				digit = "9"
			}
			// Go only recognises fractional seconds after a separator
			if !strings.HasSuffix(b.String(), ".") && !strings.HasSuffix(b.String(), ",") {
				b.WriteString(".")
			}
			b.WriteString(strings.Repeat(digit, min(n, 9)))
		case 't':
			b.WriteString("PM")
		case 'z':
			b.WriteString(pick(n, "-07", "-07", "-07:00"))
		case 'K':
			b.WriteString("Z07:00")
		}
		i += n
	}

	if err := flush(); err != nil {
		return "", err
	}
	return b.String(), nil
}

// checkLiteral rejects literal text Go would not print verbatim.
func checkLiteral(s string) error {
	if strings.ContainsAny(s, "0123456789") {
		return fmt.Errorf("%w: %q", ErrAmbiguousLiteral, s)
	}
	for _, el := range goElements {
		if strings.Contains(s, el) {
			return fmt.Errorf("%w: %q", ErrAmbiguousLiteral, s)
		}
	}
	return nil
}

// runLength counts how many times runes[i] repeats from position i.
func runLength(runes []rune, i int) int {
	n := 1
	for i+n < len(runes) && runes[i+n] == runes[i] {
		n++
	}
	return n
}

// pick returns the variant for a token repeated n times, clamping to the longest.
func pick(n int, variants ...string) string {
	if n > len(variants) {
		n = len(variants)
	}
	return variants[n-1]
}
