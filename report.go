package rates

import (
	"encoding/json"
	"fmt"
	"io"

	"github.com/hashicorp/go-multierror"

	"github.com/crazytosser25/goit-web-hw-05/label"
	"github.com/crazytosser25/goit-web-hw-05/provider"
)

// Report is the list of day records, most recent day first
type Report []DayRecord

// Assemble formats every day in order. Any failed day fails the whole report, the errors
// of all failed days are returned together
func Assemble(days []provider.DayReport, set label.Set) (Report, error) {
	report := make(Report, len(days))

	var merr *multierror.Error
	for i, day := range days {
		record, err := Format(day, set)
		if err != nil {
			merr = multierror.Append(merr, fmt.Errorf("format day %d: %w", i, err))
			continue
		}

		report[i] = record
	}

	if err := merr.ErrorOrNil(); err != nil {
		return nil, err
	}

	return report, nil
}

// Encode writes the report as JSON indented with two spaces
func (r Report) Encode(w io.Writer) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")

	if err := enc.Encode(r); err != nil {
		return fmt.Errorf("json encode: %w", err)
	}

	return nil
}
