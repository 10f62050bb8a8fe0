package label

import (
	"testing"

	"github.com/google/go-cmp/cmp"
)

func TestParse(t *testing.T) {
	t.Parallel()

	testCases := []struct {
		name  string
		token string
		want  Symbol
	}{
		{
			name:  "test_parse_lower",
			token: "pln",
			want:  "PLN",
		},
		{
			name:  "test_parse_mixed",
			token: "gBp",
			want:  "GBP",
		},
		{
			name:  "test_parse_spaces",
			token: " chf ",
			want:  "CHF",
		},
		{
			name:  "test_parse_not_a_currency",
			token: "hello",
			want:  "HELLO",
		},
	}

	for _, tc := range testCases {
		tc := tc
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()

			if diff := cmp.Diff(tc.want, Parse(tc.token)); diff != "" {
				t.Errorf("mismatch (-want, +got):\n%s", diff)
			}
		})
	}
}

func TestSymbol_IsISO(t *testing.T) {
	t.Parallel()

	testCases := []struct {
		name   string
		symbol Symbol
		want   bool
	}{
		{name: "test_iso_usd", symbol: USD, want: true},
		{name: "test_iso_uah", symbol: UAH, want: true},
		{name: "test_iso_pln", symbol: "PLN", want: true},
		{name: "test_iso_unknown", symbol: "QQQ", want: false},
		{name: "test_iso_long", symbol: "HELLO", want: false},
	}

	for _, tc := range testCases {
		tc := tc
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()

			if diff := cmp.Diff(tc.want, tc.symbol.IsISO()); diff != "" {
				t.Errorf("mismatch (-want, +got):\n%s", diff)
			}
		})
	}
}

func TestSet(t *testing.T) {
	t.Parallel()

	set := DefaultSet()
	set.Add("PLN")
	set.Add(USD)

	if diff := cmp.Diff(3, set.Len()); diff != "" {
		t.Errorf("bad expected len (-want, +got): %s", diff)
	}

	if !set.Has("PLN") || !set.Has(EUR) {
		t.Errorf("set %v lost a symbol", set.Symbols())
	}

	if set.Has("GBP") {
		t.Errorf("unexpected symbol GBP in set")
	}

	if diff := cmp.Diff([]Symbol{EUR, "PLN", USD}, set.Symbols()); diff != "" {
		t.Errorf("mismatch (-want, +got):\n%s", diff)
	}
}

func TestDefaultSet_Fresh(t *testing.T) {
	t.Parallel()

	a := DefaultSet()
	a.Add("GBP")

	if DefaultSet().Has("GBP") {
		t.Errorf("default set shared between calls")
	}
}
