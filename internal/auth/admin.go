package auth

import (
	"errors"

	"github.com/hackxperience/hackxperience/db"
	"github.com/hackxperience/hackxperience/internal/models"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"
)

// EnsureAdmin provisions the admin account from configuration at startup.
// There is no signup endpoint; an existing account is left untouched.
func EnsureAdmin(email, password string) error {
	if email == "" || password == "" {
		return nil
	}

	var existing models.AdminUser

	err := db.DB.Where("email = ?", email).First(&existing).Error

	if err == nil {
		return nil
	}

	if !errors.Is(err, gorm.ErrRecordNotFound) {
		return err
	}

	passwordHash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)

	if err != nil {
		return err
	}

	admin := models.AdminUser{
		Email:        email,
		PasswordHash: string(passwordHash),
	}

	return db.DB.Create(&admin).Error
}
