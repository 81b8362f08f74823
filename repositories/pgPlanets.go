package repositories

import (
	"starwars-server/db"
	"starwars-server/entities"
)

type planetPgRepository struct {
	pgRepository[entities.Planet]
}

func NewPlanetPgRepository(database db.Database) PlanetRepository {
	return &planetPgRepository{pgRepository[entities.Planet]{db: database, entity: "planet"}}
}
