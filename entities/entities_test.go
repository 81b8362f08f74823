package entities

import (
	"testing"
	"time"
)

func ptr(s string) *string { return &s }

func validCharacterInput() CharacterInput {
	return CharacterInput{
		Name:      ptr("Luke"),
		Height:    ptr("172"),
		Mass:      ptr("77"),
		BirthYear: ptr("1977-05-25"),
		Gender:    ptr("Male"),
	}
}

func TestNewUserRequiresEmailAndPassword(t *testing.T) {
	_, err := NewUser(UserInput{Password: ptr("secret")})
	if !IsKind(err, KindMissingField) {
		t.Fatalf("expected missing field, got %v", err)
	}
	var e *Error
	if !asError(err, &e) || e.Field != "email" {
		t.Fatalf("expected field email, got %+v", e)
	}

	_, err = NewUser(UserInput{Email: ptr("a@b.com")})
	if !IsKind(err, KindMissingField) {
		t.Fatalf("expected missing password, got %v", err)
	}
}

func TestNewUserAcceptsEmptyStrings(t *testing.T) {
	u, err := NewUser(UserInput{Email: ptr(""), Password: ptr("")})
	if err != nil {
		t.Fatalf("empty but present fields should pass: %v", err)
	}
	if u.ID != 0 {
		t.Fatalf("new user must not carry an id")
	}
}

func TestUserSerializeOmitsPassword(t *testing.T) {
	u := User{ID: 3, Email: "a@b.com", Password: "hunter2"}
	rec := u.Serialize()
	if _, ok := rec["password"]; ok {
		t.Fatalf("password leaked: %v", rec)
	}
	if rec["email"] != "a@b.com" || rec["id"] != uint(3) {
		t.Fatalf("unexpected record %v", rec)
	}
}

func TestNewCharacter(t *testing.T) {
	c, err := NewCharacter(validCharacterInput())
	if err != nil {
		t.Fatalf("NewCharacter error: %v", err)
	}
	want := time.Date(1977, 5, 25, 0, 0, 0, 0, time.UTC)
	if !c.BirthYear.Equal(want) {
		t.Fatalf("birth year = %v, want %v", c.BirthYear, want)
	}

	rec := c.Serialize()
	if rec["gender"] != "Male" {
		t.Fatalf("gender should serialize as label, got %#v", rec["gender"])
	}
	if len(rec) != 6 {
		t.Fatalf("record should hold exactly the declared fields, got %v", rec)
	}
}

func TestNewCharacterValidation(t *testing.T) {
	tests := []struct {
		name   string
		mutate func(*CharacterInput)
		kind   ErrorKind
		field  string
	}{
		{"missing name", func(in *CharacterInput) { in.Name = nil }, KindMissingField, "name"},
		{"missing gender", func(in *CharacterInput) { in.Gender = nil }, KindMissingField, "gender"},
		{"missing birth year", func(in *CharacterInput) { in.BirthYear = nil }, KindMissingField, "birth_year"},
		{"unknown gender", func(in *CharacterInput) { in.Gender = ptr("Unknown") }, KindInvalidEnumValue, "gender"},
		{"bad birth year", func(in *CharacterInput) { in.BirthYear = ptr("19BBY") }, KindInvalidField, "birth_year"},
		{"height too long", func(in *CharacterInput) { in.Height = ptr("123456") }, KindInvalidField, "height"},
		{"missing wins over invalid", func(in *CharacterInput) {
			in.Height = ptr("123456")
			in.Mass = nil
		}, KindMissingField, "mass"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			in := validCharacterInput()
			tt.mutate(&in)

			_, err := NewCharacter(in)
			if !IsKind(err, tt.kind) {
				t.Fatalf("expected %s, got %v", tt.kind, err)
			}
			var e *Error
			if !asError(err, &e) || e.Field != tt.field {
				t.Fatalf("expected field %q, got %+v", tt.field, e)
			}
		})
	}
}

func TestNewPlanetAndFilm(t *testing.T) {
	p, err := NewPlanet(PlanetInput{
		Name:           ptr("Tatooine"),
		RotationPeriod: ptr("23"),
		Diameter:       ptr("10465"),
		Climate:        ptr("arid"),
		Population:     ptr("200000"),
	})
	if err != nil {
		t.Fatalf("NewPlanet error: %v", err)
	}
	if p.Serialize()["rotation_period"] != "23" {
		t.Fatalf("unexpected planet record %v", p.Serialize())
	}

	_, err = NewPlanet(PlanetInput{Name: ptr("Hoth")})
	if !IsKind(err, KindMissingField) {
		t.Fatalf("expected missing field, got %v", err)
	}

	f, err := NewFilm(FilmInput{
		Title:       ptr("A New Hope"),
		Director:    ptr("George Lucas"),
		Producer:    ptr("Gary Kurtz"),
		ReleaseDate: ptr("1977-05-25T00:00:00Z"),
	})
	if err != nil {
		t.Fatalf("NewFilm error: %v", err)
	}
	if _, ok := f.Serialize()["planet"]; ok {
		t.Fatalf("film record must only hold declared fields")
	}
}

func TestNewFavoriteRequiresBothIDs(t *testing.T) {
	if _, err := NewFavoriteCharacter(0, 1); !IsKind(err, KindMissingField) {
		t.Fatalf("expected missing user id, got %v", err)
	}
	if _, err := NewFavoritePlanet(1, 0); !IsKind(err, KindMissingField) {
		t.Fatalf("expected missing planet id, got %v", err)
	}
	fav, err := NewFavoriteCharacter(1, 2)
	if err != nil || fav.UserID != 1 || fav.CharacterID != 2 {
		t.Fatalf("unexpected favorite %+v err=%v", fav, err)
	}
}

func TestFavoriteViewsDenormalize(t *testing.T) {
	v := NewFavoriteCharacterView(
		FavoriteCharacter{ID: 9, UserID: 1, CharacterID: 2},
		User{ID: 1, Email: "a@b.com"},
		Character{ID: 2, Name: "Luke"},
	)
	rec := v.Serialize()
	if rec["user_email"] != "a@b.com" || rec["character_name"] != "Luke" || rec["id"] != uint(9) {
		t.Fatalf("unexpected view %v", rec)
	}

	pv := NewFavoritePlanetView(
		FavoritePlanet{ID: 4, UserID: 1, PlanetID: 7},
		User{ID: 1, Email: "a@b.com"},
		Planet{ID: 7, Name: "Hoth"},
	)
	if pv.Serialize()["planet_name"] != "Hoth" {
		t.Fatalf("unexpected planet view %v", pv.Serialize())
	}
}
