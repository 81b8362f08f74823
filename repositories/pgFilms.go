package repositories

import (
	"starwars-server/db"
	"starwars-server/entities"
)

type filmPgRepository struct {
	pgRepository[entities.Film]
}

func NewFilmPgRepository(database db.Database) FilmRepository {
	return &filmPgRepository{pgRepository[entities.Film]{db: database, entity: "film"}}
}
