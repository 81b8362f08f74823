package entities

import "time"

type Film struct {
	ID          uint      `gorm:"primaryKey" json:"id"`
	Title       string    `gorm:"type:varchar(50);not null" json:"title"`
	Director    string    `gorm:"type:varchar(50);not null" json:"director"`
	Producer    string    `gorm:"type:varchar(50);not null" json:"producer"`
	ReleaseDate time.Time `gorm:"not null" json:"release_date"`
}

func (Film) TableName() string { return "films" }

type FilmInput struct {
	Title       *string `json:"title" validate:"required,max=50"`
	Director    *string `json:"director" validate:"required,max=50"`
	Producer    *string `json:"producer" validate:"required,max=50"`
	ReleaseDate *string `json:"release_date" validate:"required"`
}

func NewFilm(in FilmInput) (*Film, error) {
	if err := checkInput("film", in); err != nil {
		return nil, err
	}
	released, err := parseTimestamp("release_date", *in.ReleaseDate)
	if err != nil {
		return nil, err
	}
	return &Film{
		Title:       *in.Title,
		Director:    *in.Director,
		Producer:    *in.Producer,
		ReleaseDate: released,
	}, nil
}

func (f Film) Serialize() Record {
	return Record{
		"id":           f.ID,
		"title":        f.Title,
		"director":     f.Director,
		"producer":     f.Producer,
		"release_date": f.ReleaseDate,
	}
}
