package view

import (
	"fmt"
	"html/template"
	"strings"
	"unicode"
	"unicode/utf8"

	"golang.org/x/text/language"
	"golang.org/x/text/message"

	"github.com/jwalitptl/noill-admin/internal/model"
)

var printer = message.NewPrinter(language.English)

// Funcs returns the template helpers shared by every page.
func Funcs() template.FuncMap {
	return template.FuncMap{
		"badge":     Badge,
		"money":     Money,
		"thousands": Thousands,
		"initials":  Initials,
		"title":     Title,
		"selected":  strings.EqualFold,
		"lower":     strings.ToLower,
		"list": func(items ...string) []string {
			return items
		},
		"emptyState": func(heading, hint string) EmptyState {
			return EmptyState{Heading: heading, Hint: hint}
		},
	}
}

// EmptyState is shown in place of a list that filtered down to nothing.
type EmptyState struct {
	Heading string
	Hint    string
}

// Badge maps a variant to its CSS classes.
func Badge(v model.BadgeVariant) string {
	if v == "" {
		v = model.BadgeDefault
	}
	return "badge badge-" + string(v)
}

// Money renders an amount with two decimals and no grouping: $1250.00.
func Money(amount float64) string {
	return fmt.Sprintf("$%.2f", amount)
}

// Thousands groups the digits of an integer: 125400 becomes 125,400.
func Thousands(n any) string {
	switch v := n.(type) {
	case int:
		return printer.Sprintf("%d", v)
	case int64:
		return printer.Sprintf("%d", v)
	case float64:
		return printer.Sprintf("%.0f", v)
	default:
		return fmt.Sprint(n)
	}
}

// Initials is the first letter of every word of name.
func Initials(name string) string {
	return model.StaffMember{Name: name}.Initials()
}

// Title upper-cases the first letter of s.
func Title(s string) string {
	r, size := utf8.DecodeRuneInString(s)
	if r == utf8.RuneError {
		return s
	}
	return string(unicode.ToUpper(r)) + s[size:]
}
