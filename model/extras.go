package model

import (
	"bytes"
	"encoding/json"
	"fmt"
	"math"
	"pizzeria_kassa/constants"
	"pizzeria_kassa/utils"
	"strconv"
	"strings"
)

// StringList decodes either a single string or a list of strings.
type StringList []string

func (l *StringList) UnmarshalJSON(data []byte) error {
	data = bytes.TrimSpace(data)
	if len(data) == 0 || string(data) == "null" {
		*l = nil
		return nil
	}
	if data[0] == '"' {
		var s string
		if err := json.Unmarshal(data, &s); err != nil {
			return err
		}
		s = strings.TrimSpace(s)
		if s == "" {
			*l = nil
			return nil
		}
		*l = StringList{s}
		return nil
	}
	var raw []any
	if err := json.Unmarshal(data, &raw); err != nil {
		return fmt.Errorf("expected string or list of strings: %w", err)
	}
	out := make(StringList, 0, len(raw))
	for _, v := range raw {
		switch t := v.(type) {
		case string:
			if t = strings.TrimSpace(t); t != "" {
				out = append(out, t)
			}
		case float64:
			out = append(out, strconv.FormatFloat(t, 'f', -1, 64))
		}
	}
	if len(out) == 0 {
		out = nil
	}
	*l = out
	return nil
}

func (l StringList) String() string {
	return strings.Join(l, ", ")
}

// LenientFloat accepts numbers, numeric strings ("0,50" included) and anything
// else as zero. It never fails to decode.
type LenientFloat float64

func (f *LenientFloat) UnmarshalJSON(data []byte) error {
	*f = LenientFloat(ParseLenientFloat(strings.Trim(string(bytes.TrimSpace(data)), `"`)))
	return nil
}

func (f LenientFloat) Float64() float64 { return float64(f) }

// ParseLenientFloat parses s as a decimal number, accepting a comma separator.
// Malformed input, NaN and infinities yield 0.
func ParseLenientFloat(s string) float64 {
	s = strings.TrimSpace(strings.ReplaceAll(s, ",", "."))
	s = strings.TrimPrefix(s, "€")
	v, err := strconv.ParseFloat(strings.TrimSpace(s), 64)
	if err != nil || math.IsNaN(v) || math.IsInf(v, 0) {
		return 0
	}
	return v
}

// Extras is the typed form of an order line's free-form options. Which fields a
// line may carry depends on the kind of its category, see Validate.
type Extras struct {
	Vlees         string       `json:"vlees,omitempty"`
	Bijgerecht    StringList   `json:"bijgerecht,omitempty"`
	Sauzen        StringList   `json:"sauzen,omitempty"`
	SauzenToeslag LenientFloat `json:"sauzen_toeslag,omitempty"`
	Garnering     StringList   `json:"garnering,omitempty"`
	HalfHalf      StringList   `json:"half_half,omitempty"`
	VolleKaart    bool         `json:"volle_kaart,omitempty"`
	Opmerking     string       `json:"opmerking,omitempty"`
}

func (e *Extras) UnmarshalJSON(data []byte) error {
	type plain Extras
	var aux struct {
		plain
		Saus StringList `json:"saus"`
	}
	if err := json.Unmarshal(data, &aux); err != nil {
		return err
	}
	*e = Extras(aux.plain)
	if len(aux.Saus) > 0 {
		e.Sauzen = append(aux.Saus, e.Sauzen...)
	}
	e.Vlees = strings.TrimSpace(e.Vlees)
	e.Opmerking = strings.TrimSpace(e.Opmerking)
	return nil
}

func (e Extras) IsEmpty() bool {
	return e.Vlees == "" && len(e.Bijgerecht) == 0 && len(e.Sauzen) == 0 &&
		e.SauzenToeslag == 0 && len(e.Garnering) == 0 && len(e.HalfHalf) == 0 &&
		!e.VolleKaart && e.Opmerking == ""
}

// Key is the canonical serialization used to group identical lines.
func (e Extras) Key() string {
	if e.IsEmpty() {
		return "{}"
	}
	b, err := json.Marshal(e)
	if err != nil {
		// never collapse distinct extras into the empty key
		return fmt.Sprintf("%#v", e)
	}
	return string(b)
}

// Surcharge is the per-item price added on top of the product price.
func (e Extras) Surcharge() float64 {
	v := e.SauzenToeslag.Float64()
	if v < 0 || math.IsNaN(v) || math.IsInf(v, 0) {
		return 0
	}
	return v
}

// Details renders one human-readable line per present option.
func (e Extras) Details() []string {
	var out []string
	if e.Vlees != "" {
		out = append(out, "Vlees: "+e.Vlees)
	}
	if len(e.Bijgerecht) > 0 {
		out = append(out, "Bijgerecht: "+e.Bijgerecht.String())
	}
	if len(e.Sauzen) > 0 {
		line := "Saus: " + e.Sauzen.String()
		if s := e.Surcharge(); s > 0 {
			line += fmt.Sprintf(" (+%.2f)", s)
		}
		out = append(out, line)
	}
	if len(e.Garnering) > 0 {
		out = append(out, "Garnering: "+e.Garnering.String())
	}
	if len(e.HalfHalf) > 0 {
		out = append(out, "Half/half: "+strings.Join(e.HalfHalf, " / "))
	}
	if e.Opmerking != "" {
		out = append(out, "Opmerking: "+e.Opmerking)
	}
	return out
}

// Validate checks the extras against the variant allowed for a category kind.
// Unknown kinds are treated as "other".
func (e Extras) Validate(kind string) error {
	var bad []string
	switch kind {
	case constants.KIND_PIZZA:
		if e.Vlees != "" {
			bad = append(bad, "vlees")
		}
		if len(e.Bijgerecht) > 0 {
			bad = append(bad, "bijgerecht")
		}
		if len(e.HalfHalf) != 0 && len(e.HalfHalf) != 2 {
			return utils.NewValidationError("half_half needs exactly two products", nil)
		}
	case constants.KIND_SCHOTEL:
		if len(e.Garnering) > 0 {
			bad = append(bad, "garnering")
		}
		if len(e.HalfHalf) > 0 {
			bad = append(bad, "half_half")
		}
	case constants.KIND_BROODJE:
		if len(e.Bijgerecht) > 0 {
			bad = append(bad, "bijgerecht")
		}
		if len(e.HalfHalf) > 0 {
			bad = append(bad, "half_half")
		}
	default:
		if e.Vlees != "" {
			bad = append(bad, "vlees")
		}
		if len(e.Bijgerecht) > 0 {
			bad = append(bad, "bijgerecht")
		}
		if len(e.Garnering) > 0 {
			bad = append(bad, "garnering")
		}
		if len(e.HalfHalf) > 0 {
			bad = append(bad, "half_half")
		}
	}
	if len(bad) > 0 {
		if kind == "" {
			kind = constants.KIND_OTHER
		}
		return utils.NewValidationError(
			fmt.Sprintf("extras %s not allowed for %s products", strings.Join(bad, ", "), kind), nil)
	}
	return nil
}
