package api

import (
	"fmt"
	"math"
	"strconv"
	"strings"
)

// Float is a float64 always written with a fraction part, 20 goes out as 20.0
type Float float64

// MarshalJSON implements json.Marshaler
func (f Float) MarshalJSON() ([]byte, error) {
	v := float64(f)
	if math.IsNaN(v) || math.IsInf(v, 0) {
		return nil, fmt.Errorf("unsupported value %v", v)
	}
	res := strconv.FormatFloat(v, 'f', -1, 64)
	if !strings.Contains(res, ".") {
		res += ".0"
	}
	return []byte(res), nil
}
