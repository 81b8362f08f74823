package repositories

import (
	"starwars-server/db"
	"starwars-server/entities"
)

type userPgRepository struct {
	pgRepository[entities.User]
}

func NewUserPgRepository(database db.Database) UserRepository {
	return &userPgRepository{pgRepository[entities.User]{db: database, entity: "user"}}
}
