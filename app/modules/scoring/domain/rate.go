package scoringdomain

import (
	"encoding/json"
	"errors"
	"math"
	"strconv"
)

// ErrDivisionUndefined is returned by Ratio when the denominator is zero.
var ErrDivisionUndefined = errors.New("rate undefined: zero denominator")

// Rate is a ratio expressed as a percentage. When Defined is false the
// denominator was zero and Percent carries no meaning.
type Rate struct {
	Numerator   int
	Denominator int
	Percent     float64
	Defined     bool
}

// Ratio computes num/den as a percentage rounded to one decimal. A zero
// denominator yields an undefined Rate and ErrDivisionUndefined.
func Ratio(num, den int) (Rate, error) {
	if den == 0 {
		return Rate{Numerator: num}, ErrDivisionUndefined
	}
	pct := float64(num) / float64(den) * 100
	return Rate{
		Numerator:   num,
		Denominator: den,
		Percent:     math.Round(pct*10) / 10,
		Defined:     true,
	}, nil
}

// NewRate is Ratio without the error; callers check Defined.
func NewRate(num, den int) Rate {
	r, _ := Ratio(num, den)
	return r
}

// MarshalJSON renders an undefined rate's percent as null.
func (r Rate) MarshalJSON() ([]byte, error) {
	out := struct {
		Numerator   int      `json:"numerator"`
		Denominator int      `json:"denominator"`
		Percent     *float64 `json:"percent"`
		Defined     bool     `json:"defined"`
	}{Numerator: r.Numerator, Denominator: r.Denominator, Defined: r.Defined}
	if r.Defined {
		out.Percent = &r.Percent
	}
	return json.Marshal(out)
}

// String renders the rate for spreadsheets and logs.
func (r Rate) String() string {
	if !r.Defined {
		return "n/a"
	}
	return strconv.FormatFloat(r.Percent, 'f', -1, 64) + "%"
}
