package seed

import (
	"log"

	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"

	"vitrine_backend/internal/model"
)

// SeedAdminUser bootstraps the console account from the environment. There
// is no registration endpoint; this is the only way accounts come to exist.
func SeedAdminUser(db *gorm.DB, email, password string) {
	if email == "" || password == "" {
		log.Println("ADMIN_EMAIL/ADMIN_PASSWORD not set, skipping admin user seed")
		return
	}

	var existing model.User
	if err := db.Where("email = ?", email).First(&existing).Error; err == nil {
		return
	}

	hashedPassword, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		log.Printf("Could not hash admin password: %v", err)
		return
	}

	user := model.User{
		Email:    email,
		Password: string(hashedPassword),
		Name:     "Administrador",
	}

	if err := db.Create(&user).Error; err != nil {
		log.Printf("Error creating admin user %s: %v", email, err)
		return
	}

	log.Printf("Admin user %s seeded successfully!", email)
}
