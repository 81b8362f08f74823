package entities

// User is a catalog account. Password is stored as given.
type User struct {
	ID       uint   `gorm:"primaryKey" json:"id"`
	Email    string `gorm:"type:varchar(50);not null;uniqueIndex:idx_users_email" json:"email"`
	Password string `gorm:"type:varchar(180);not null" json:"-"`
}

func (User) TableName() string { return "users" }

// UserInput carries the fields accepted by NewUser. Nil means absent.
type UserInput struct {
	Email    *string `json:"email" validate:"required,max=50"`
	Password *string `json:"password" validate:"required,max=180"`
}

// NewUser builds an unsaved User from input.
func NewUser(in UserInput) (*User, error) {
	if err := checkInput("user", in); err != nil {
		return nil, err
	}
	return &User{Email: *in.Email, Password: *in.Password}, nil
}

// Serialize never exposes the password.
func (u User) Serialize() Record {
	return Record{
		"id":    u.ID,
		"email": u.Email,
	}
}
