package entities

import (
	"encoding/json"
	"strconv"
	"strings"
)

// Number is a tolerant numeric document field. Invoice documents originate
// from loosely-typed clients, so quantities, rates and totals may arrive as
// JSON numbers, numeric strings, or garbage. Anything that does not parse
// collapses to 0 instead of failing the decode; rendering and aggregation
// must keep working on degraded data.
type Number float64

func (n Number) Float() float64 {
	return float64(n)
}

func (n *Number) UnmarshalJSON(b []byte) error {
	var v any
	if err := json.Unmarshal(b, &v); err != nil {
		*n = 0
		return nil
	}
	switch t := v.(type) {
	case float64:
		*n = Number(t)
	case string:
		f, err := strconv.ParseFloat(strings.TrimSpace(t), 64)
		if err != nil {
			*n = 0
			return nil
		}
		*n = Number(f)
	default:
		*n = 0
	}
	return nil
}
