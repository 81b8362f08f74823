package repositories

import (
	"context"

	"starwars-server/entities"
)

type UserRepository interface {
	Create(ctx context.Context, user *entities.User) error
	GetByID(ctx context.Context, id uint) (*entities.User, error)
	GetAll(ctx context.Context) ([]entities.User, error)
	Delete(ctx context.Context, id uint) error
}

type CharacterRepository interface {
	Create(ctx context.Context, character *entities.Character) error
	GetByID(ctx context.Context, id uint) (*entities.Character, error)
	GetByIDs(ctx context.Context, ids []uint) ([]entities.Character, error)
	GetAll(ctx context.Context) ([]entities.Character, error)
	Delete(ctx context.Context, id uint) error
}

type PlanetRepository interface {
	Create(ctx context.Context, planet *entities.Planet) error
	GetByID(ctx context.Context, id uint) (*entities.Planet, error)
	GetByIDs(ctx context.Context, ids []uint) ([]entities.Planet, error)
	GetAll(ctx context.Context) ([]entities.Planet, error)
	Delete(ctx context.Context, id uint) error
}

type FilmRepository interface {
	Create(ctx context.Context, film *entities.Film) error
	GetByID(ctx context.Context, id uint) (*entities.Film, error)
	GetAll(ctx context.Context) ([]entities.Film, error)
	Delete(ctx context.Context, id uint) error
}

type FavoriteCharacterRepository interface {
	Create(ctx context.Context, fav *entities.FavoriteCharacter) error
	GetByUserID(ctx context.Context, userID uint) ([]entities.FavoriteCharacter, error)
	CountByUserID(ctx context.Context, userID uint) (int64, error)
	CountByCharacterID(ctx context.Context, characterID uint) (int64, error)
	DeleteByUserAndCharacter(ctx context.Context, userID, characterID uint) error
}

type FavoritePlanetRepository interface {
	Create(ctx context.Context, fav *entities.FavoritePlanet) error
	GetByUserID(ctx context.Context, userID uint) ([]entities.FavoritePlanet, error)
	CountByUserID(ctx context.Context, userID uint) (int64, error)
	CountByPlanetID(ctx context.Context, planetID uint) (int64, error)
	DeleteByUserAndPlanet(ctx context.Context, userID, planetID uint) error
}
