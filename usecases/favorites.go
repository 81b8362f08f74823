package usecases

import (
	"context"

	"starwars-server/entities"
	"starwars-server/logger"
	"starwars-server/repositories"

	"github.com/rs/zerolog"
)

// FavoritesUseCase manages the user to character and user to planet links.
// Views are composed by fetching the referenced rows by id.
type FavoritesUseCase struct {
	UserRepo              repositories.UserRepository
	CharacterRepo         repositories.CharacterRepository
	PlanetRepo            repositories.PlanetRepository
	FavoriteCharacterRepo repositories.FavoriteCharacterRepository
	FavoritePlanetRepo    repositories.FavoritePlanetRepository

	notifier Notifier
	log      zerolog.Logger
}

func NewFavoritesUseCase(
	userRepo repositories.UserRepository,
	characterRepo repositories.CharacterRepository,
	planetRepo repositories.PlanetRepository,
	favoriteCharacterRepo repositories.FavoriteCharacterRepository,
	favoritePlanetRepo repositories.FavoritePlanetRepository,
	notifier Notifier,
	log zerolog.Logger,
) *FavoritesUseCase {
	return &FavoritesUseCase{
		UserRepo:              userRepo,
		CharacterRepo:         characterRepo,
		PlanetRepo:            planetRepo,
		FavoriteCharacterRepo: favoriteCharacterRepo,
		FavoritePlanetRepo:    favoritePlanetRepo,
		notifier:              notifierOrNop(notifier),
		log:                   logger.Component(log, "favorites"),
	}
}

// ============= Favorite Character Use Cases =============

// AddFavoriteCharacter links an existing user to an existing character
func (uc *FavoritesUseCase) AddFavoriteCharacter(ctx context.Context, userID, characterID uint) (*entities.FavoriteCharacterView, error) {
	fav, err := entities.NewFavoriteCharacter(userID, characterID)
	if err != nil {
		return nil, err
	}

	// Verify both sides exist
	user, err := uc.UserRepo.GetByID(ctx, userID)
	if err != nil {
		return nil, err
	}
	character, err := uc.CharacterRepo.GetByID(ctx, characterID)
	if err != nil {
		return nil, err
	}

	if err := uc.FavoriteCharacterRepo.Create(ctx, fav); err != nil {
		return nil, err
	}

	view := entities.NewFavoriteCharacterView(*fav, *user, *character)
	uc.log.Info().
		Str("operation", "add_favorite_character").
		Uint("user_id", userID).
		Uint("character_id", characterID).
		Msg("favorite character added")
	uc.notifier.Publish(EventFavoriteCharacterCreated, fav.ID, view.Serialize())
	return &view, nil
}

// ListFavoriteCharacters returns the user's favorite characters in insertion order
func (uc *FavoritesUseCase) ListFavoriteCharacters(ctx context.Context, userID uint) ([]entities.FavoriteCharacterView, error) {
	user, err := uc.UserRepo.GetByID(ctx, userID)
	if err != nil {
		return nil, err
	}

	favs, err := uc.FavoriteCharacterRepo.GetByUserID(ctx, userID)
	if err != nil {
		return nil, err
	}

	ids := make([]uint, 0, len(favs))
	for _, f := range favs {
		ids = append(ids, f.CharacterID)
	}
	characters, err := uc.CharacterRepo.GetByIDs(ctx, ids)
	if err != nil {
		return nil, err
	}
	byID := make(map[uint]entities.Character, len(characters))
	for _, c := range characters {
		byID[c.ID] = c
	}

	views := make([]entities.FavoriteCharacterView, 0, len(favs))
	for _, f := range favs {
		c, ok := byID[f.CharacterID]
		if !ok {
			return nil, entities.NotFound("character", f.CharacterID)
		}
		views = append(views, entities.NewFavoriteCharacterView(f, *user, c))
	}
	return views, nil
}

// RemoveFavoriteCharacter deletes the link between a user and a character
func (uc *FavoritesUseCase) RemoveFavoriteCharacter(ctx context.Context, userID, characterID uint) error {
	if err := uc.FavoriteCharacterRepo.DeleteByUserAndCharacter(ctx, userID, characterID); err != nil {
		return err
	}
	uc.log.Info().
		Str("operation", "remove_favorite_character").
		Uint("user_id", userID).
		Uint("character_id", characterID).
		Msg("favorite character removed")
	uc.notifier.Publish(EventFavoriteCharacterDeleted, characterID, entities.Record{"user_id": userID, "character_id": characterID})
	return nil
}

// ============= Favorite Planet Use Cases =============

// AddFavoritePlanet links an existing user to an existing planet
func (uc *FavoritesUseCase) AddFavoritePlanet(ctx context.Context, userID, planetID uint) (*entities.FavoritePlanetView, error) {
	fav, err := entities.NewFavoritePlanet(userID, planetID)
	if err != nil {
		return nil, err
	}

	user, err := uc.UserRepo.GetByID(ctx, userID)
	if err != nil {
		return nil, err
	}
	planet, err := uc.PlanetRepo.GetByID(ctx, planetID)
	if err != nil {
		return nil, err
	}

	if err := uc.FavoritePlanetRepo.Create(ctx, fav); err != nil {
		return nil, err
	}

	view := entities.NewFavoritePlanetView(*fav, *user, *planet)
	uc.log.Info().
		Str("operation", "add_favorite_planet").
		Uint("user_id", userID).
		Uint("planet_id", planetID).
		Msg("favorite planet added")
	uc.notifier.Publish(EventFavoritePlanetCreated, fav.ID, view.Serialize())
	return &view, nil
}

// ListFavoritePlanets returns the user's favorite planets in insertion order
func (uc *FavoritesUseCase) ListFavoritePlanets(ctx context.Context, userID uint) ([]entities.FavoritePlanetView, error) {
	user, err := uc.UserRepo.GetByID(ctx, userID)
	if err != nil {
		return nil, err
	}

	favs, err := uc.FavoritePlanetRepo.GetByUserID(ctx, userID)
	if err != nil {
		return nil, err
	}

	ids := make([]uint, 0, len(favs))
	for _, f := range favs {
		ids = append(ids, f.PlanetID)
	}
	planets, err := uc.PlanetRepo.GetByIDs(ctx, ids)
	if err != nil {
		return nil, err
	}
	byID := make(map[uint]entities.Planet, len(planets))
	for _, p := range planets {
		byID[p.ID] = p
	}

	views := make([]entities.FavoritePlanetView, 0, len(favs))
	for _, f := range favs {
		p, ok := byID[f.PlanetID]
		if !ok {
			return nil, entities.NotFound("planet", f.PlanetID)
		}
		views = append(views, entities.NewFavoritePlanetView(f, *user, p))
	}
	return views, nil
}

// RemoveFavoritePlanet deletes the link between a user and a planet
func (uc *FavoritesUseCase) RemoveFavoritePlanet(ctx context.Context, userID, planetID uint) error {
	if err := uc.FavoritePlanetRepo.DeleteByUserAndPlanet(ctx, userID, planetID); err != nil {
		return err
	}
	uc.log.Info().
		Str("operation", "remove_favorite_planet").
		Uint("user_id", userID).
		Uint("planet_id", planetID).
		Msg("favorite planet removed")
	uc.notifier.Publish(EventFavoritePlanetDeleted, planetID, entities.Record{"user_id": userID, "planet_id": planetID})
	return nil
}
