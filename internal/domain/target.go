package domain

import (
	"encoding/json"
	"regexp"
	"strconv"
)

// TargetRange is a weekly set-count target for one muscle, always carried
// with both bounds. The historical "8–12 sets / week" string form is an
// input format only and is normalized on load.
type TargetRange struct {
	Low  int `bson:"low" json:"low"`
	High int `bson:"high" json:"high"`
}

// MuscleTarget is the persisted weekly target for one muscle group, keyed
// by the muscle name.
type MuscleTarget struct {
	Muscle string      `bson:"_id" json:"muscle"`
	Range  TargetRange `bson:"range" json:"range"`
}

var rangePattern = regexp.MustCompile(`(\d+)\D+(\d+)`)

// ParseTargetRange extracts the first two integers from a free-text range
// ("8–12 sets / week", "8-12"). A bare number yields {n,n}; anything
// unparsable fails closed to {0,0}.
func ParseTargetRange(text string) TargetRange {
	if m := rangePattern.FindStringSubmatch(text); m != nil {
		low, _ := strconv.Atoi(m[1])
		high, _ := strconv.Atoi(m[2])
		return TargetRange{Low: low, High: high}
	}
	if n, err := strconv.Atoi(text); err == nil {
		return TargetRange{Low: n, High: n}
	}
	return TargetRange{}
}

// UnmarshalJSON accepts the structured {low,high} form, a range string, or
// a bare number, so stored targets from any client generation load cleanly.
func (t *TargetRange) UnmarshalJSON(data []byte) error {
	type structured TargetRange
	var s structured
	if err := json.Unmarshal(data, &s); err == nil {
		*t = TargetRange(s)
		return nil
	}
	var text string
	if err := json.Unmarshal(data, &text); err == nil {
		*t = ParseTargetRange(text)
		return nil
	}
	var n int
	if err := json.Unmarshal(data, &n); err == nil {
		*t = TargetRange{Low: n, High: n}
		return nil
	}
	// Fail closed rather than rejecting the whole targets payload.
	*t = TargetRange{}
	return nil
}
