package entities

// FavoriteCharacter links a user to a character they favorited. The pair is unique.
type FavoriteCharacter struct {
	ID          uint `gorm:"primaryKey" json:"id"`
	UserID      uint `gorm:"not null;uniqueIndex:idx_favorite_characters_user_character,priority:1" json:"user_id"`
	CharacterID uint `gorm:"not null;uniqueIndex:idx_favorite_characters_user_character,priority:2;index" json:"character_id"`
}

func (FavoriteCharacter) TableName() string { return "favorite_characters" }

// FavoritePlanet links a user to a planet they favorited. The pair is unique.
type FavoritePlanet struct {
	ID       uint `gorm:"primaryKey" json:"id"`
	UserID   uint `gorm:"not null;uniqueIndex:idx_favorite_planets_user_planet,priority:1" json:"user_id"`
	PlanetID uint `gorm:"not null;uniqueIndex:idx_favorite_planets_user_planet,priority:2;index" json:"planet_id"`
}

func (FavoritePlanet) TableName() string { return "favorite_planets" }

func NewFavoriteCharacter(userID, characterID uint) (*FavoriteCharacter, error) {
	if userID == 0 {
		return nil, MissingField("favorite_character", "user_id")
	}
	if characterID == 0 {
		return nil, MissingField("favorite_character", "character_id")
	}
	return &FavoriteCharacter{UserID: userID, CharacterID: characterID}, nil
}

func NewFavoritePlanet(userID, planetID uint) (*FavoritePlanet, error) {
	if userID == 0 {
		return nil, MissingField("favorite_planet", "user_id")
	}
	if planetID == 0 {
		return nil, MissingField("favorite_planet", "planet_id")
	}
	return &FavoritePlanet{UserID: userID, PlanetID: planetID}, nil
}

// FavoriteCharacterView is a favorite joined at read time with its owner's
// email and the character's name.
type FavoriteCharacterView struct {
	ID            uint   `json:"id"`
	UserID        uint   `json:"user_id"`
	UserEmail     string `json:"user_email"`
	CharacterID   uint   `json:"character_id"`
	CharacterName string `json:"character_name"`
}

func NewFavoriteCharacterView(f FavoriteCharacter, u User, c Character) FavoriteCharacterView {
	return FavoriteCharacterView{
		ID:            f.ID,
		UserID:        u.ID,
		UserEmail:     u.Email,
		CharacterID:   c.ID,
		CharacterName: c.Name,
	}
}

func (v FavoriteCharacterView) Serialize() Record {
	return Record{
		"id":             v.ID,
		"user_id":        v.UserID,
		"user_email":     v.UserEmail,
		"character_id":   v.CharacterID,
		"character_name": v.CharacterName,
	}
}

type FavoritePlanetView struct {
	ID         uint   `json:"id"`
	UserID     uint   `json:"user_id"`
	UserEmail  string `json:"user_email"`
	PlanetID   uint   `json:"planet_id"`
	PlanetName string `json:"planet_name"`
}

func NewFavoritePlanetView(f FavoritePlanet, u User, p Planet) FavoritePlanetView {
	return FavoritePlanetView{
		ID:         f.ID,
		UserID:     u.ID,
		UserEmail:  u.Email,
		PlanetID:   p.ID,
		PlanetName: p.Name,
	}
}

func (v FavoritePlanetView) Serialize() Record {
	return Record{
		"id":          v.ID,
		"user_id":     v.UserID,
		"user_email":  v.UserEmail,
		"planet_id":   v.PlanetID,
		"planet_name": v.PlanetName,
	}
}
