package resp

import "strconv"

// parseDouble parses a Double payload already confirmed to match the
// grammar in SPEC_FULL §4.1 ("inf", "-inf", or "[-]?\d+(\.\d+)?").
// strconv.ParseFloat accepts "inf"/"-inf" case-insensitively, so no
// special-casing is needed once the grammar has been validated.
func parseDouble(payload []byte) (float64, bool) {
	f, err := strconv.ParseFloat(string(payload), 64)
	if err != nil {
		return 0, false
	}
	return f, true
}
