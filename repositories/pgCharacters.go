package repositories

import (
	"starwars-server/db"
	"starwars-server/entities"
)

type characterPgRepository struct {
	pgRepository[entities.Character]
}

func NewCharacterPgRepository(database db.Database) CharacterRepository {
	return &characterPgRepository{pgRepository[entities.Character]{db: database, entity: "character"}}
}
