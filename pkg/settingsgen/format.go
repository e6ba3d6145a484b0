package settingsgen

import (
	"strings"
	"unicode"

	"github.com/go-openapi/inflect"
	"github.com/iancoleman/strcase"
)

type NameStyle interface {
	Format(name string) string
}

type NameStyleFunc func(name string) string

func (f NameStyleFunc) Format(name string) string {
	return f(name)
}

// PascalStyle turns "window-width" into "WindowWidth". Characters that
// cannot appear in a Go identifier separate words.
var PascalStyle NameStyleFunc = func(name string) string {
	return inflect.Camelize(strings.Map(func(r rune) rune {
		if r == '_' || isWordRune(r) {
			return r
		}
		return '-'
	}, name))
}

// SnakeStyle turns "window-width" into "window_width" and "x11" into "x11".
var SnakeStyle NameStyleFunc = func(name string) string {
	words := strings.FieldsFunc(name, func(r rune) bool {
		return !isWordRune(r)
	})
	for i, w := range words {
		words[i] = snakeWord(w)
	}
	return strings.Join(words, "_")
}

// snakeWord splits w at case changes. Digits stay with the word before
// them unless an upper case letter follows.
func snakeWord(w string) string {
	snake := strcase.ToSnake(w)
	var b strings.Builder
	j := 0
	for i := 0; i < len(snake); i++ {
		if snake[i] != '_' {
			b.WriteByte(snake[i])
			j++
			continue
		}
		prev, next := w[j-1], w[j]
		if isDigit(next) || (isDigit(prev) && !isUpper(next)) {
			continue
		}
		b.WriteByte('_')
	}
	return b.String()
}

func isWordRune(r rune) bool {
	return unicode.IsLetter(r) || unicode.IsDigit(r)
}

func isDigit(c byte) bool { return c >= '0' && c <= '9' }

func isUpper(c byte) bool { return c >= 'A' && c <= 'Z' }

// lastSegment returns the part of a dotted id after the last dot.
func lastSegment(id string) string {
	return id[strings.LastIndex(id, ".")+1:]
}
