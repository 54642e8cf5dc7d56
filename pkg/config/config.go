package config

import (
	"os"

	"github.com/go-playground/validator/v10"
	"github.com/joho/godotenv"
)

var validate = validator.New()

type Config struct {
	FirebaseProject    string `validate:"required"`
	ServiceAccountPath string
	ServiceAccountJSON string
	Environment        string
}

func Load() (*Config, error) {
	godotenv.Load()

	config := &Config{
		FirebaseProject:    getEnv("FIREBASE_PROJECT_ID", "demo-sports-app"),
		ServiceAccountPath: getEnv("FIREBASE_SERVICE_ACCOUNT_PATH", getEnv("GOOGLE_APPLICATION_CREDENTIALS", "")),
		ServiceAccountJSON: getEnv("FIREBASE_SERVICE_ACCOUNT_JSON", ""),
		Environment:        getEnv("ENVIRONMENT", "development"),
	}

	if err := validate.Struct(config); err != nil {
		return nil, err
	}

	return config, nil
}

// ProfileSeedOptions holds the flags for the profile seeding pipeline. The
// service account and project are mandatory; email and password default to
// the seed account the mobile app is tested against.
type ProfileSeedOptions struct {
	ServiceAccountPath string `validate:"required,file"`
	ProjectID          string `validate:"required"`
	Email              string `validate:"required,email"`
	Password           string `validate:"required,min=6"`
}

func (o *ProfileSeedOptions) Validate() error {
	return validate.Struct(o)
}

// TournamentSeedOptions holds the flags for the showcase tournament seeder.
type TournamentSeedOptions struct {
	ServiceAccountPath string `validate:"omitempty,file"`
	TournamentName     string `validate:"required"`
}

func (o *TournamentSeedOptions) Validate() error {
	return validate.Struct(o)
}

func getEnv(key, defaultValue string) string {
	if value, exists := os.LookupEnv(key); exists {
		return value
	}
	return defaultValue
}
