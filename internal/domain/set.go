package domain

import (
	"encoding/json"
	"fmt"
	"strconv"
)

// WeightKind tags how a set's load is expressed.
type WeightKind string

const (
	// WeightNumeric is a plain load in kilos.
	WeightNumeric WeightKind = "numeric"
	// WeightBodyweight is a bodyweight-relative token such as "BW" for plain
	// bodyweight work or "-35" for assisted machines.
	WeightBodyweight WeightKind = "bodyweight"
)

// Weight is the load of a single set. Historically the client logged either
// a number or a free-form token in the same field; the tag makes the two
// cases explicit so arithmetic and display can switch on Kind instead of
// probing the runtime type.
type Weight struct {
	Kind  WeightKind `bson:"kind" json:"kind"`
	Kilos float64    `bson:"kilos,omitempty" json:"kilos,omitempty"`
	Token string     `bson:"token,omitempty" json:"token,omitempty"`
}

// Kilos returns a numeric weight.
func Kilos(v float64) Weight {
	return Weight{Kind: WeightNumeric, Kilos: v}
}

// Bodyweight returns a bodyweight-relative weight carrying the raw token.
func Bodyweight(token string) Weight {
	return Weight{Kind: WeightBodyweight, Token: token}
}

// MarshalJSON writes the historical wire shape: a JSON number for numeric
// loads, a JSON string for bodyweight-relative tokens.
func (w Weight) MarshalJSON() ([]byte, error) {
	if w.Kind == WeightBodyweight {
		return json.Marshal(w.Token)
	}
	return json.Marshal(w.Kilos)
}

// UnmarshalJSON accepts both wire shapes.
func (w *Weight) UnmarshalJSON(data []byte) error {
	var num float64
	if err := json.Unmarshal(data, &num); err == nil {
		*w = Kilos(num)
		return nil
	}
	var token string
	if err := json.Unmarshal(data, &token); err != nil {
		return fmt.Errorf("weight must be a number or a string: %w", err)
	}
	// Tokens like "-35" are numeric strings but still describe assistance
	// relative to bodyweight, so they keep the token form.
	if f, err := strconv.ParseFloat(token, 64); err == nil && token != "" && token[0] != '-' {
		*w = Kilos(f)
		return nil
	}
	*w = Bodyweight(token)
	return nil
}

func (w Weight) String() string {
	if w.Kind == WeightBodyweight {
		return w.Token
	}
	return strconv.FormatFloat(w.Kilos, 'f', -1, 64)
}

// Set is one performed (or planned) set of a strength exercise.
type Set struct {
	Index  int    `bson:"set" json:"set"`
	Weight Weight `bson:"weight" json:"weight"`
	Reps   int    `bson:"reps" json:"reps"`
}
