package main

import (
	"errors"
	"flag"
	"log"

	"go-portfolio-api/internal/authz"
	"go-portfolio-api/internal/model"
	"go-portfolio-api/pkg/database"

	"github.com/joho/godotenv"
	"gorm.io/gorm"
)

// bootstrap-admin creates or resets the super admin account. Useful for
// first deployments and for recovering a locked-out install.
func main() {
	email := flag.String("email", "", "super admin email (required)")
	password := flag.String("password", "", "super admin password (required)")
	name := flag.String("name", "Super Administrator", "display name")
	flag.Parse()

	if *email == "" || *password == "" {
		log.Fatal("Usage: bootstrap-admin -email <email> -password <password> [-name <name>]")
	}

	// 1. Load Env
	if err := godotenv.Load(); err != nil {
		log.Println("Warning: .env file not found, relying on system env")
	}

	// 2. Setup Database
	db := database.ConnectDB()
	db.AutoMigrate(&model.User{})

	// 3. Find or create the account
	var user model.User
	err := db.Where("email = ?", *email).First(&user).Error
	switch {
	case err == nil:
		if err := user.SetPassword(*password); err != nil {
			log.Fatalf("Failed to hash password: %v", err)
		}
		user.UserRole = authz.RoleSuperAdmin
		user.IsActive = true
		if err := db.Save(&user).Error; err != nil {
			log.Fatalf("Failed to update user: %v", err)
		}
		log.Printf("Password reset and super admin role ensured for %s", *email)

	case errors.Is(err, gorm.ErrRecordNotFound):
		user = model.User{
			Email:    *email,
			Name:     *name,
			UserRole: authz.RoleSuperAdmin,
			IsActive: true,
		}
		if err := user.SetPassword(*password); err != nil {
			log.Fatalf("Failed to hash password: %v", err)
		}
		if err := db.Create(&user).Error; err != nil {
			log.Fatalf("Failed to create user: %v", err)
		}
		log.Printf("Super admin created: %s", *email)

	default:
		log.Fatalf("Database error: %v", err)
	}
}
