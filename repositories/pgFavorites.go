package repositories

import (
	"context"

	"starwars-server/db"
	"starwars-server/entities"
)

type favoriteCharacterPgRepository struct {
	db db.Database
}

func NewFavoriteCharacterPgRepository(database db.Database) FavoriteCharacterRepository {
	return &favoriteCharacterPgRepository{db: database}
}

func (r *favoriteCharacterPgRepository) Create(ctx context.Context, fav *entities.FavoriteCharacter) error {
	return translateWrite("create favorite character", r.db.GetDB().WithContext(ctx).Create(fav).Error)
}

func (r *favoriteCharacterPgRepository) GetByUserID(ctx context.Context, userID uint) ([]entities.FavoriteCharacter, error) {
	favs := []entities.FavoriteCharacter{}
	err := r.db.GetDB().WithContext(ctx).Where("user_id = ?", userID).Order("id ASC").Find(&favs).Error
	if err != nil {
		return nil, entities.Persistence("list favorite characters", err)
	}
	return favs, nil
}

func (r *favoriteCharacterPgRepository) CountByUserID(ctx context.Context, userID uint) (int64, error) {
	return r.count(ctx, "user_id = ?", userID)
}

func (r *favoriteCharacterPgRepository) CountByCharacterID(ctx context.Context, characterID uint) (int64, error) {
	return r.count(ctx, "character_id = ?", characterID)
}

func (r *favoriteCharacterPgRepository) count(ctx context.Context, query string, id uint) (int64, error) {
	var n int64
	err := r.db.GetDB().WithContext(ctx).Model(&entities.FavoriteCharacter{}).Where(query, id).Count(&n).Error
	if err != nil {
		return 0, entities.Persistence("count favorite characters", err)
	}
	return n, nil
}

func (r *favoriteCharacterPgRepository) DeleteByUserAndCharacter(ctx context.Context, userID, characterID uint) error {
	res := r.db.GetDB().WithContext(ctx).
		Where("user_id = ? AND character_id = ?", userID, characterID).
		Delete(&entities.FavoriteCharacter{})
	if res.Error != nil {
		return entities.Persistence("delete favorite character", res.Error)
	}
	if res.RowsAffected == 0 {
		return entities.NotFoundf("user %d has no favorite character %d", userID, characterID)
	}
	return nil
}

type favoritePlanetPgRepository struct {
	db db.Database
}

func NewFavoritePlanetPgRepository(database db.Database) FavoritePlanetRepository {
	return &favoritePlanetPgRepository{db: database}
}

func (r *favoritePlanetPgRepository) Create(ctx context.Context, fav *entities.FavoritePlanet) error {
	return translateWrite("create favorite planet", r.db.GetDB().WithContext(ctx).Create(fav).Error)
}

func (r *favoritePlanetPgRepository) GetByUserID(ctx context.Context, userID uint) ([]entities.FavoritePlanet, error) {
	favs := []entities.FavoritePlanet{}
	err := r.db.GetDB().WithContext(ctx).Where("user_id = ?", userID).Order("id ASC").Find(&favs).Error
	if err != nil {
		return nil, entities.Persistence("list favorite planets", err)
	}
	return favs, nil
}

func (r *favoritePlanetPgRepository) CountByUserID(ctx context.Context, userID uint) (int64, error) {
	return r.count(ctx, "user_id = ?", userID)
}

func (r *favoritePlanetPgRepository) CountByPlanetID(ctx context.Context, planetID uint) (int64, error) {
	return r.count(ctx, "planet_id = ?", planetID)
}

func (r *favoritePlanetPgRepository) count(ctx context.Context, query string, id uint) (int64, error) {
	var n int64
	err := r.db.GetDB().WithContext(ctx).Model(&entities.FavoritePlanet{}).Where(query, id).Count(&n).Error
	if err != nil {
		return 0, entities.Persistence("count favorite planets", err)
	}
	return n, nil
}

func (r *favoritePlanetPgRepository) DeleteByUserAndPlanet(ctx context.Context, userID, planetID uint) error {
	res := r.db.GetDB().WithContext(ctx).
		Where("user_id = ? AND planet_id = ?", userID, planetID).
		Delete(&entities.FavoritePlanet{})
	if res.Error != nil {
		return entities.Persistence("delete favorite planet", res.Error)
	}
	if res.RowsAffected == 0 {
		return entities.NotFoundf("user %d has no favorite planet %d", userID, planetID)
	}
	return nil
}
