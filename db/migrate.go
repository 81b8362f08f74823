package db

import (
	"starwars-server/entities"

	"gorm.io/gorm"
)

// The *Table types exist only for migrations: they add the foreign keys
// (restrict on delete) without giving the entities an object graph.

type favoriteCharacterTable struct {
	entities.FavoriteCharacter
	User      entities.User      `gorm:"foreignKey:UserID;constraint:OnUpdate:CASCADE,OnDelete:RESTRICT"`
	Character entities.Character `gorm:"foreignKey:CharacterID;constraint:OnUpdate:CASCADE,OnDelete:RESTRICT"`
}

func (favoriteCharacterTable) TableName() string { return entities.FavoriteCharacter{}.TableName() }

type favoritePlanetTable struct {
	entities.FavoritePlanet
	User   entities.User   `gorm:"foreignKey:UserID;constraint:OnUpdate:CASCADE,OnDelete:RESTRICT"`
	Planet entities.Planet `gorm:"foreignKey:PlanetID;constraint:OnUpdate:CASCADE,OnDelete:RESTRICT"`
}

func (favoritePlanetTable) TableName() string { return entities.FavoritePlanet{}.TableName() }

// Migrate creates missing tables, indexes and constraints.
func Migrate(db *gorm.DB) error {
	return db.AutoMigrate(
		&entities.User{},
		&entities.Character{},
		&entities.Planet{},
		&entities.Film{},
		&favoriteCharacterTable{},
		&favoritePlanetTable{},
	)
}
