package seed

import (
	"github.com/rs/zerolog"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"

	"github.com/clinicore/booking-api/internal/middleware"
	"github.com/clinicore/booking-api/internal/models"
)

const demoPassword = "Passw0rd!"

// Run seeds the demo admin and patient accounts. Idempotent: existing
// emails are left untouched.
func Run(db *gorm.DB, logger zerolog.Logger) {
	seedUser(db, logger, "Admin User", "admin@example.com", middleware.RoleAdmin)
	seedUser(db, logger, "Test Patient", "patient@example.com", middleware.RolePatient)
}

func seedUser(db *gorm.DB, logger zerolog.Logger, name, email, role string) {
	var existing models.User
	if err := db.Where("email = ?", email).First(&existing).Error; err == nil {
		logger.Debug().Str("email", email).Msg("seed user already exists")
		return
	}

	hashed, err := bcrypt.GenerateFromPassword([]byte(demoPassword), bcrypt.DefaultCost)
	if err != nil {
		logger.Error().Err(err).Msg("failed to hash seed password")
		return
	}

	user := models.User{
		Name:         name,
		Email:        email,
		PasswordHash: string(hashed),
		Role:         role,
	}

	if err := db.Create(&user).Error; err != nil {
		logger.Error().Err(err).Str("email", email).Msg("failed to seed user")
		return
	}

	logger.Info().Str("email", email).Str("role", role).Msg("seed user created")
}
