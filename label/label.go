// Package label holds currency symbols and the set of symbols a report is filtered by
package label

import (
	"sort"
	"strings"

	"golang.org/x/text/cases"
	"golang.org/x/text/currency"
	"golang.org/x/text/language"
)

// Symbol is an uppercase currency code, e.g. USD
type Symbol string

const (
	USD Symbol = "USD"
	EUR Symbol = "EUR"
	UAH Symbol = "UAH"
)

// DefaultSymbols are always part of a report
var DefaultSymbols = []Symbol{USD, EUR}

func (s Symbol) String() string {
	return string(s)
}

// IsISO reports whether the symbol is a known ISO 4217 code
func (s Symbol) IsISO() bool {
	_, err := currency.ParseISO(string(s))
	return err == nil
}

// Parse turns a raw token into a symbol. Any token is accepted, it is only trimmed and uppercased
func Parse(token string) Symbol {
	return Symbol(cases.Upper(language.Und).String(strings.TrimSpace(token)))
}

// Set is a read-only membership set of symbols once built
type Set map[Symbol]struct{}

// NewSet returns a set with the given symbols
func NewSet(symbols ...Symbol) Set {
	s := make(Set, len(symbols))
	for _, sym := range symbols {
		s[sym] = struct{}{}
	}

	return s
}

// DefaultSet returns a fresh set with DefaultSymbols
func DefaultSet() Set {
	return NewSet(DefaultSymbols...)
}

func (s Set) Add(sym Symbol) {
	s[sym] = struct{}{}
}

func (s Set) Has(sym Symbol) bool {
	_, ok := s[sym]
	return ok
}

func (s Set) Len() int {
	return len(s)
}

// Symbols returns the sorted list of symbols
func (s Set) Symbols() []Symbol {
	list := make([]Symbol, 0, len(s))
	for sym := range s {
		list = append(list, sym)
	}

	sort.Slice(list, func(i, j int) bool {
		return list[i] < list[j]
	})

	return list
}
