package usecases

import (
	"starwars-server/entities"
)

// Catalog change event types published after a successful write.
const (
	EventUserCreated              = "user.created"
	EventUserDeleted              = "user.deleted"
	EventCharacterCreated         = "character.created"
	EventCharacterDeleted         = "character.deleted"
	EventPlanetCreated            = "planet.created"
	EventPlanetDeleted            = "planet.deleted"
	EventFilmCreated              = "film.created"
	EventFilmDeleted              = "film.deleted"
	EventFavoriteCharacterCreated = "favorite_character.created"
	EventFavoriteCharacterDeleted = "favorite_character.deleted"
	EventFavoritePlanetCreated    = "favorite_planet.created"
	EventFavoritePlanetDeleted    = "favorite_planet.deleted"
)

// Notifier receives catalog change events. Publish must not block.
type Notifier interface {
	Publish(eventType string, id uint, data entities.Record)
}

type nopNotifier struct{}

func (nopNotifier) Publish(string, uint, entities.Record) {}

func notifierOrNop(n Notifier) Notifier {
	if n == nil {
		return nopNotifier{}
	}
	return n
}
