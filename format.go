package rates

import (
	"encoding/json"
	"errors"
	"fmt"

	"github.com/shopspring/decimal"

	"github.com/crazytosser25/goit-web-hw-05/label"
	"github.com/crazytosser25/goit-web-hw-05/provider"
)

// Places is the number of fractional digits kept in a report
const Places = 2

var ErrRateNotFound = errors.New("rate not found")

// Quote is the bank sale and purchase price of one unit of a currency
type Quote struct {
	Sale     decimal.Decimal
	Purchase decimal.Decimal
}

// MarshalJSON writes both prices as JSON numbers
func (q Quote) MarshalJSON() ([]byte, error) {
	return json.Marshal(struct {
		Sale     json.Number `json:"sale"`
		Purchase json.Number `json:"purchase"`
	}{
		Sale:     json.Number(q.Sale.String()),
		Purchase: json.Number(q.Purchase.String()),
	})
}

// DayRecord holds the quotes of the filtered currencies for one day
type DayRecord struct {
	Date  string
	Rates map[label.Symbol]Quote
}

// MarshalJSON writes the record as {"<date>": {"<code>": quote, ...}}
func (r DayRecord) MarshalJSON() ([]byte, error) {
	rates := r.Rates
	if rates == nil {
		rates = map[label.Symbol]Quote{}
	}

	return json.Marshal(map[string]map[label.Symbol]Quote{r.Date: rates})
}

// extractor reads one optional field of a currency rate
type extractor func(provider.CurrencyRate) decimal.NullDecimal

// Retail fields first, National Bank fields as fallback
var (
	saleExtractors = []extractor{
		func(r provider.CurrencyRate) decimal.NullDecimal { return r.SaleRate },
		func(r provider.CurrencyRate) decimal.NullDecimal { return r.SaleRateNB },
	}
	purchaseExtractors = []extractor{
		func(r provider.CurrencyRate) decimal.NullDecimal { return r.PurchaseRate },
		func(r provider.CurrencyRate) decimal.NullDecimal { return r.PurchaseRateNB },
	}
)

func resolve(rate provider.CurrencyRate, extractors []extractor) (decimal.Decimal, bool) {
	for _, fn := range extractors {
		if v := fn(rate); v.Valid {
			return v.Decimal, true
		}
	}

	return decimal.Decimal{}, false
}

// Round rounds half away from zero to Places digits
func Round(d decimal.Decimal) decimal.Decimal {
	return d.Round(Places)
}

// Format builds the record of one day for the currencies in set. Currencies missing from the day
// are left out; a listed currency without any rate is an error
func Format(day provider.DayReport, set label.Set) (DayRecord, error) {
	record := DayRecord{
		Date:  day.Date,
		Rates: make(map[label.Symbol]Quote),
	}

	for _, rate := range day.ExchangeRate {
		sym := label.Symbol(rate.Currency)
		if !set.Has(sym) {
			continue
		}

		sale, ok := resolve(rate, saleExtractors)
		if !ok {
			return DayRecord{}, fmt.Errorf("%w: %s sale on %s", ErrRateNotFound, sym, day.Date)
		}

		purchase, ok := resolve(rate, purchaseExtractors)
		if !ok {
			return DayRecord{}, fmt.Errorf("%w: %s purchase on %s", ErrRateNotFound, sym, day.Date)
		}

		record.Rates[sym] = Quote{
			Sale:     Round(sale),
			Purchase: Round(purchase),
		}
	}

	return record, nil
}
