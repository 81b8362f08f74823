package entities

import (
	"database/sql/driver"
	"encoding/json"
	"fmt"
)

// Gender is the closed set of character genders. The zero value is invalid.
type Gender uint8

const (
	GenderFemale Gender = iota + 1
	GenderMale
	GenderOther
)

var genderLabels = map[Gender]string{
	GenderFemale: "Female",
	GenderMale:   "Male",
	GenderOther:  "Other",
}

// ParseGender maps a label to its Gender. Labels are case-sensitive.
func ParseGender(label string) (Gender, error) {
	for g, l := range genderLabels {
		if l == label {
			return g, nil
		}
	}
	return 0, InvalidEnumValue("gender", label)
}

func (g Gender) Valid() bool {
	_, ok := genderLabels[g]
	return ok
}

// String returns the label stored and serialized for g.
func (g Gender) String() string {
	if l, ok := genderLabels[g]; ok {
		return l
	}
	return fmt.Sprintf("Gender(%d)", uint8(g))
}

func (g Gender) Value() (driver.Value, error) {
	if !g.Valid() {
		return nil, InvalidEnumValue("gender", g.String())
	}
	return g.String(), nil
}

func (g *Gender) Scan(src any) error {
	var label string
	switch v := src.(type) {
	case string:
		label = v
	case []byte:
		label = string(v)
	default:
		return fmt.Errorf("gender: cannot scan %T", src)
	}
	parsed, err := ParseGender(label)
	if err != nil {
		return err
	}
	*g = parsed
	return nil
}

func (g Gender) MarshalJSON() ([]byte, error) {
	if !g.Valid() {
		return nil, InvalidEnumValue("gender", g.String())
	}
	return json.Marshal(g.String())
}

func (g *Gender) UnmarshalJSON(b []byte) error {
	var label string
	if err := json.Unmarshal(b, &label); err != nil {
		return err
	}
	parsed, err := ParseGender(label)
	if err != nil {
		return err
	}
	*g = parsed
	return nil
}
