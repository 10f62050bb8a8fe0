package privat

import (
	"encoding/json"
	"errors"
	"fmt"

	"github.com/crazytosser25/goit-web-hw-05/provider"
)

var errDateMissing = errors.New("report date is missing")

func decodeJSON(b []byte) (provider.DayReport, error) {
	var report provider.DayReport
	if err := json.Unmarshal(b, &report); err != nil {
		return report, fmt.Errorf("json unmarshal: %w", err)
	}

	if report.Date == "" {
		return report, errDateMissing
	}

	return report, nil
}
