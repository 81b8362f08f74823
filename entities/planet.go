package entities

type Planet struct {
	ID             uint   `gorm:"primaryKey" json:"id"`
	Name           string `gorm:"type:varchar(50);not null" json:"name"`
	RotationPeriod string `gorm:"type:varchar(50);not null" json:"rotation_period"`
	Diameter       string `gorm:"type:varchar(50);not null" json:"diameter"`
	Climate        string `gorm:"type:varchar(50);not null" json:"climate"`
	Population     string `gorm:"type:varchar(50);not null" json:"population"`
}

func (Planet) TableName() string { return "planets" }

type PlanetInput struct {
	Name           *string `json:"name" validate:"required,max=50"`
	RotationPeriod *string `json:"rotation_period" validate:"required,max=50"`
	Diameter       *string `json:"diameter" validate:"required,max=50"`
	Climate        *string `json:"climate" validate:"required,max=50"`
	Population     *string `json:"population" validate:"required,max=50"`
}

func NewPlanet(in PlanetInput) (*Planet, error) {
	if err := checkInput("planet", in); err != nil {
		return nil, err
	}
	return &Planet{
		Name:           *in.Name,
		RotationPeriod: *in.RotationPeriod,
		Diameter:       *in.Diameter,
		Climate:        *in.Climate,
		Population:     *in.Population,
	}, nil
}

func (p Planet) Serialize() Record {
	return Record{
		"id":              p.ID,
		"name":            p.Name,
		"rotation_period": p.RotationPeriod,
		"diameter":        p.Diameter,
		"climate":         p.Climate,
		"population":      p.Population,
	}
}
