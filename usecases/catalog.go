package usecases

import (
	"context"

	"starwars-server/entities"
	"starwars-server/logger"
	"starwars-server/repositories"

	"github.com/rs/zerolog"
)

type CatalogUseCase struct {
	UserRepo              repositories.UserRepository
	CharacterRepo         repositories.CharacterRepository
	PlanetRepo            repositories.PlanetRepository
	FilmRepo              repositories.FilmRepository
	FavoriteCharacterRepo repositories.FavoriteCharacterRepository
	FavoritePlanetRepo    repositories.FavoritePlanetRepository

	notifier Notifier
	log      zerolog.Logger
}

func NewCatalogUseCase(
	userRepo repositories.UserRepository,
	characterRepo repositories.CharacterRepository,
	planetRepo repositories.PlanetRepository,
	filmRepo repositories.FilmRepository,
	favoriteCharacterRepo repositories.FavoriteCharacterRepository,
	favoritePlanetRepo repositories.FavoritePlanetRepository,
	notifier Notifier,
	log zerolog.Logger,
) *CatalogUseCase {
	return &CatalogUseCase{
		UserRepo:              userRepo,
		CharacterRepo:         characterRepo,
		PlanetRepo:            planetRepo,
		FilmRepo:              filmRepo,
		FavoriteCharacterRepo: favoriteCharacterRepo,
		FavoritePlanetRepo:    favoritePlanetRepo,
		notifier:              notifierOrNop(notifier),
		log:                   logger.Component(log, "catalog"),
	}
}

// ============= User Use Cases =============

// CreateUser validates input and stores a new user
func (uc *CatalogUseCase) CreateUser(ctx context.Context, in entities.UserInput) (*entities.User, error) {
	user, err := entities.NewUser(in)
	if err != nil {
		return nil, err
	}
	if err := uc.UserRepo.Create(ctx, user); err != nil {
		return nil, err
	}
	uc.log.Info().Str("operation", "create_user").Uint("id", user.ID).Msg("user created")
	uc.notifier.Publish(EventUserCreated, user.ID, user.Serialize())
	return user, nil
}

// GetUser retrieves a user by ID
func (uc *CatalogUseCase) GetUser(ctx context.Context, id uint) (*entities.User, error) {
	return uc.UserRepo.GetByID(ctx, id)
}

// GetAllUsers retrieves all users
func (uc *CatalogUseCase) GetAllUsers(ctx context.Context) ([]entities.User, error) {
	return uc.UserRepo.GetAll(ctx)
}

// DeleteUser removes a user that has no favorites left
func (uc *CatalogUseCase) DeleteUser(ctx context.Context, id uint) error {
	if _, err := uc.UserRepo.GetByID(ctx, id); err != nil {
		return err
	}

	chars, err := uc.FavoriteCharacterRepo.CountByUserID(ctx, id)
	if err != nil {
		return err
	}
	planets, err := uc.FavoritePlanetRepo.CountByUserID(ctx, id)
	if err != nil {
		return err
	}
	if n := chars + planets; n > 0 {
		return entities.Referenced("user", id, n)
	}

	if err := uc.UserRepo.Delete(ctx, id); err != nil {
		return err
	}
	uc.log.Info().Str("operation", "delete_user").Uint("id", id).Msg("user deleted")
	uc.notifier.Publish(EventUserDeleted, id, nil)
	return nil
}

// ============= Character Use Cases =============

// CreateCharacter validates input and stores a new character
func (uc *CatalogUseCase) CreateCharacter(ctx context.Context, in entities.CharacterInput) (*entities.Character, error) {
	character, err := entities.NewCharacter(in)
	if err != nil {
		return nil, err
	}
	if err := uc.CharacterRepo.Create(ctx, character); err != nil {
		return nil, err
	}
	uc.log.Info().Str("operation", "create_character").Uint("id", character.ID).Msg("character created")
	uc.notifier.Publish(EventCharacterCreated, character.ID, character.Serialize())
	return character, nil
}

// GetCharacter retrieves a character by ID
func (uc *CatalogUseCase) GetCharacter(ctx context.Context, id uint) (*entities.Character, error) {
	return uc.CharacterRepo.GetByID(ctx, id)
}

// GetAllCharacters retrieves all characters
func (uc *CatalogUseCase) GetAllCharacters(ctx context.Context) ([]entities.Character, error) {
	return uc.CharacterRepo.GetAll(ctx)
}

// DeleteCharacter removes a character nobody has favorited
func (uc *CatalogUseCase) DeleteCharacter(ctx context.Context, id uint) error {
	if _, err := uc.CharacterRepo.GetByID(ctx, id); err != nil {
		return err
	}

	n, err := uc.FavoriteCharacterRepo.CountByCharacterID(ctx, id)
	if err != nil {
		return err
	}
	if n > 0 {
		return entities.Referenced("character", id, n)
	}

	if err := uc.CharacterRepo.Delete(ctx, id); err != nil {
		return err
	}
	uc.log.Info().Str("operation", "delete_character").Uint("id", id).Msg("character deleted")
	uc.notifier.Publish(EventCharacterDeleted, id, nil)
	return nil
}

// ============= Planet Use Cases =============

// CreatePlanet validates input and stores a new planet
func (uc *CatalogUseCase) CreatePlanet(ctx context.Context, in entities.PlanetInput) (*entities.Planet, error) {
	planet, err := entities.NewPlanet(in)
	if err != nil {
		return nil, err
	}
	if err := uc.PlanetRepo.Create(ctx, planet); err != nil {
		return nil, err
	}
	uc.log.Info().Str("operation", "create_planet").Uint("id", planet.ID).Msg("planet created")
	uc.notifier.Publish(EventPlanetCreated, planet.ID, planet.Serialize())
	return planet, nil
}

// GetPlanet retrieves a planet by ID
func (uc *CatalogUseCase) GetPlanet(ctx context.Context, id uint) (*entities.Planet, error) {
	return uc.PlanetRepo.GetByID(ctx, id)
}

// GetAllPlanets retrieves all planets
func (uc *CatalogUseCase) GetAllPlanets(ctx context.Context) ([]entities.Planet, error) {
	return uc.PlanetRepo.GetAll(ctx)
}

// DeletePlanet removes a planet nobody has favorited
func (uc *CatalogUseCase) DeletePlanet(ctx context.Context, id uint) error {
	if _, err := uc.PlanetRepo.GetByID(ctx, id); err != nil {
		return err
	}

	n, err := uc.FavoritePlanetRepo.CountByPlanetID(ctx, id)
	if err != nil {
		return err
	}
	if n > 0 {
		return entities.Referenced("planet", id, n)
	}

	if err := uc.PlanetRepo.Delete(ctx, id); err != nil {
		return err
	}
	uc.log.Info().Str("operation", "delete_planet").Uint("id", id).Msg("planet deleted")
	uc.notifier.Publish(EventPlanetDeleted, id, nil)
	return nil
}

// ============= Film Use Cases =============

// CreateFilm validates input and stores a new film
func (uc *CatalogUseCase) CreateFilm(ctx context.Context, in entities.FilmInput) (*entities.Film, error) {
	film, err := entities.NewFilm(in)
	if err != nil {
		return nil, err
	}
	if err := uc.FilmRepo.Create(ctx, film); err != nil {
		return nil, err
	}
	uc.log.Info().Str("operation", "create_film").Uint("id", film.ID).Msg("film created")
	uc.notifier.Publish(EventFilmCreated, film.ID, film.Serialize())
	return film, nil
}

// GetAllFilms retrieves all films
func (uc *CatalogUseCase) GetAllFilms(ctx context.Context) ([]entities.Film, error) {
	return uc.FilmRepo.GetAll(ctx)
}

// DeleteFilm removes a film. Films have no dependents.
func (uc *CatalogUseCase) DeleteFilm(ctx context.Context, id uint) error {
	if err := uc.FilmRepo.Delete(ctx, id); err != nil {
		return err
	}
	uc.log.Info().Str("operation", "delete_film").Uint("id", id).Msg("film deleted")
	uc.notifier.Publish(EventFilmDeleted, id, nil)
	return nil
}
