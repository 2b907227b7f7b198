package models

// User is an identity record. PasswordHash is nil for pure Google
// accounts, GoogleID is nil for pure password accounts; a user with
// both can log in either way. At least one of the two must be set,
// which the auth service guarantees at every creation path.
type User struct {
	BaseModel
	Name         string  `gorm:"not null"`
	Email        string  `gorm:"uniqueIndex;not null"`
	PasswordHash *string `gorm:"type:varchar(100)"`
	GoogleID     *string `gorm:"index"`

	Details *UserDetails `gorm:"foreignKey:UserID"`
}

// HasPassword reports whether password login is available.
func (u *User) HasPassword() bool {
	return u.PasswordHash != nil && *u.PasswordHash != ""
}
