package models

import "golang.org/x/crypto/bcrypt"

// User is an authenticated portal user. The password column holds a bcrypt
// hash and is never serialized.
type User struct {
	BaseModel
	Email    string   `json:"email" gorm:"uniqueIndex;not null;size:255" validate:"required,email,max=255"`
	Password string   `json:"-" gorm:"not null;size:100"`
	Name     string   `json:"name" gorm:"not null;size:100" validate:"required,min=1,max=100"`
	Role     UserRole `json:"role" gorm:"type:varchar(20);not null;default:'member'" validate:"required,oneof=manager director member"`
}

// TableName returns the table name for User
func (User) TableName() string {
	return "users"
}

// SetPassword hashes and stores the plaintext password
func (u *User) SetPassword(plain string, cost int) error {
	if cost == 0 {
		cost = bcrypt.DefaultCost
	}
	hash, err := bcrypt.GenerateFromPassword([]byte(plain), cost)
	if err != nil {
		return err
	}
	u.Password = string(hash)
	return nil
}

// CheckPassword compares the plaintext password against the stored hash
func (u *User) CheckPassword(plain string) bool {
	return bcrypt.CompareHashAndPassword([]byte(u.Password), []byte(plain)) == nil
}
