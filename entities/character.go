package entities

import "time"

type Character struct {
	ID        uint      `gorm:"primaryKey" json:"id"`
	Name      string    `gorm:"type:varchar(50);not null" json:"name"`
	Height    string    `gorm:"type:varchar(5);not null" json:"height"`
	Mass      string    `gorm:"type:varchar(5);not null" json:"mass"`
	BirthYear time.Time `gorm:"not null" json:"birth_year"`
	Gender    Gender    `gorm:"type:varchar(10);not null;check:chk_characters_gender,gender IN ('Female','Male','Other')" json:"gender"`
}

func (Character) TableName() string { return "characters" }

type CharacterInput struct {
	Name      *string `json:"name" validate:"required,max=50"`
	Height    *string `json:"height" validate:"required,max=5"`
	Mass      *string `json:"mass" validate:"required,max=5"`
	BirthYear *string `json:"birth_year" validate:"required"`
	Gender    *string `json:"gender" validate:"required"`
}

// NewCharacter validates input, parses the birth timestamp and resolves the
// gender label against the closed set.
func NewCharacter(in CharacterInput) (*Character, error) {
	if err := checkInput("character", in); err != nil {
		return nil, err
	}
	gender, err := ParseGender(*in.Gender)
	if err != nil {
		return nil, err
	}
	birth, err := parseTimestamp("birth_year", *in.BirthYear)
	if err != nil {
		return nil, err
	}
	return &Character{
		Name:      *in.Name,
		Height:    *in.Height,
		Mass:      *in.Mass,
		BirthYear: birth,
		Gender:    gender,
	}, nil
}

func (c Character) Serialize() Record {
	return Record{
		"id":         c.ID,
		"name":       c.Name,
		"height":     c.Height,
		"mass":       c.Mass,
		"birth_year": c.BirthYear,
		"gender":     c.Gender.String(),
	}
}
