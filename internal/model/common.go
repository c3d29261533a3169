package model

import (
	"encoding/json"
	"math"
	"strconv"
	"strings"
)

type PaginationMeta struct {
	CurrentPage int `json:"current_page"`
	LastPage    int `json:"last_page"`
	PerPage     int `json:"per_page"`
	Total       int `json:"total"`
}

func DefaultMeta(perPage int) PaginationMeta {
	return PaginationMeta{CurrentPage: 1, LastPage: 1, PerPage: perPage, Total: 0}
}

// Ref is the {id, name} shape the backend uses for embedded relations.
type Ref struct {
	ID   int64  `json:"id"`
	Name string `json:"name"`
}

type Difficulty string

const (
	DifficultyEasy      Difficulty = "easy"
	DifficultyModerate  Difficulty = "moderate"
	DifficultyDifficult Difficulty = "difficult"
	DifficultyExpert    Difficulty = "expert"
)

// Decimal is a nullable number the backend may encode as a JSON number,
// a numeric string ("12.50") or null. Anything unparsable decodes as null.
type Decimal struct {
	Value float64
	Valid bool
}

func NewDecimal(f float64) Decimal {
	return Decimal{Value: f, Valid: true}
}

func (d *Decimal) UnmarshalJSON(b []byte) error {
	s := strings.TrimSpace(string(b))
	if s == "null" {
		*d = Decimal{}
		return nil
	}
	s = strings.TrimSpace(strings.Trim(s, `"`))
	f, err := strconv.ParseFloat(s, 64)
	if err != nil || math.IsNaN(f) || math.IsInf(f, 0) {
		*d = Decimal{}
		return nil
	}
	*d = Decimal{Value: f, Valid: true}
	return nil
}

func (d Decimal) MarshalJSON() ([]byte, error) {
	if !d.Valid {
		return []byte("null"), nil
	}
	return json.Marshal(d.Value)
}

// Ptr returns nil for a null decimal.
func (d Decimal) Ptr() *float64 {
	if !d.Valid {
		return nil
	}
	v := d.Value
	return &v
}
