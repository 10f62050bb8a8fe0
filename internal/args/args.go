// Package args turns positional command line arguments into report parameters
package args

import (
	"errors"
	"fmt"
	"strconv"

	rates "github.com/crazytosser25/goit-web-hw-05"
	"github.com/crazytosser25/goit-web-hw-05/label"
)

var (
	ErrDuplicateDays  = errors.New("only one day count is allowed")
	ErrDaysOutOfRange = fmt.Errorf("day count must be between 1 and %d", rates.MaxDays)
)

// Params are the report parameters requested on the command line
type Params struct {
	Days       int
	Currencies label.Set
}

// Parse reads argv without the program name. A token of digits only is the day count, anything
// else is a currency code added to the default set
func Parse(argv []string) (Params, error) {
	params := Params{
		Days:       rates.DefaultDays,
		Currencies: label.DefaultSet(),
	}

	seenDays := false
	for _, arg := range argv {
		if !isDigits(arg) {
			params.Currencies.Add(label.Parse(arg))
			continue
		}

		if seenDays {
			return Params{}, fmt.Errorf("%w: %s", ErrDuplicateDays, arg)
		}
		seenDays = true

		days, err := strconv.ParseUint(arg, 10, 32)
		if err != nil || days < 1 || days > rates.MaxDays {
			return Params{}, fmt.Errorf("%w: %s", ErrDaysOutOfRange, arg)
		}

		params.Days = int(days)
	}

	return params, nil
}

// Unknown returns the requested symbols that are not ISO 4217 codes
func (p Params) Unknown() []label.Symbol {
	var list []label.Symbol
	for _, sym := range p.Currencies.Symbols() {
		if !sym.IsISO() {
			list = append(list, sym)
		}
	}

	return list
}

func isDigits(s string) bool {
	if s == "" {
		return false
	}

	for _, r := range s {
		if r < '0' || r > '9' {
			return false
		}
	}

	return true
}
