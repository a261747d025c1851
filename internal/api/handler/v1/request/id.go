package request

import (
	"math"
	"strconv"
	"strings"
)

// ID is an event id as posted by the site's forms: a JSON number or a
// numeric string. Integral floats such as 1.0 are accepted. Anything else
// decodes as zero.
type ID uint

func (id *ID) UnmarshalJSON(b []byte) error {
	s := strings.Trim(string(b), `"`)

	if n, err := strconv.ParseUint(s, 10, 64); err == nil {
		*id = ID(n)
		return nil
	}

	f, err := strconv.ParseFloat(s, 64)
	if err != nil || f < 1 || f != math.Trunc(f) || f > math.MaxUint32 {
		*id = 0
		return nil
	}

	*id = ID(f)

	return nil
}
