package main

import (
	"errors"
	"fmt"
	"log"

	"github.com/udyogsetu/udyogsetu-backend/config"
	"github.com/udyogsetu/udyogsetu-backend/internal/app/repository"
	"github.com/udyogsetu/udyogsetu-backend/internal/app/service"
	"github.com/udyogsetu/udyogsetu-backend/internal/db"
	"github.com/udyogsetu/udyogsetu-backend/pkg/logger"
)

// Seeds a demo business account with a complete profile so the dashboard
// has data on first run.
func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("Failed to load configuration: %v", err)
	}

	logger.Initialize(logger.Config{
		Level:       "info",
		Format:      "console",
		EnableColor: true,
	})

	if err := db.Initialize(&cfg.Database); err != nil {
		log.Fatalf("Failed to initialize database: %v", err)
	}
	defer db.Close()

	if err := db.Migrate(); err != nil {
		log.Fatalf("Failed to run migrations: %v", err)
	}

	userRepo := repository.NewUserRepository(db.GetDB())
	profileRepo := repository.NewProfileRepository(db.GetDB())

	authService := service.NewAuthService(
		userRepo,
		cfg.JWT.Secret,
		cfg.JWT.AccessTokenExpiry,
		cfg.JWT.RefreshTokenExpiry,
	)
	profileService := service.NewProfileService(profileRepo)

	const demoEmail = "demo@udyogsetu.in"
	const demoPassword = "Demo@1234"

	_, _, err = authService.Register(demoEmail, demoPassword, "9876543210", "business")
	if err != nil {
		if errors.Is(err, service.ErrEmailAlreadyExists) {
			log.Println("Demo account already exists, updating profile only")
		} else {
			log.Fatalf("Failed to create demo account: %v", err)
		}
	}

	input := service.ProfileInput{
		BusinessType:        "startup",
		LegalEntityType:     "private_limited",
		BusinessName:        "Demo Innovations Pvt Ltd",
		OwnerName:           "Asha Verma",
		Gender:              "female",
		PAN:                 "ABCDE1234F",
		Mobile:              "9876543210",
		State:               "Karnataka",
		City:                "Bengaluru",
		Pincode:             "560001",
		Sector:              "it_software",
		PrimaryNeed:         "grant",
		Website:             "https://demo-innovations.example.com",
		YearOfIncorporation: service.FlexNumber{Value: 2021, Valid: true},
		EmployeeCount:       service.FlexNumber{Value: 8, Valid: true},
		AnnualTurnoverLakhs: service.FlexNumber{Value: 120, Valid: true},
		FundingNeedLakhs:    service.FlexNumber{Value: 25, Valid: true},
		FounderShareholding: service.FlexNumber{Value: 72, Valid: true},
		DpiitNumber:         "DPIIT123456",
		WomenLed:            true,
		ExportFocus:         true,
	}

	profile, recommendations, _, err := profileService.SaveProfile(demoEmail, input)
	if err != nil {
		log.Fatalf("Failed to seed demo profile: %v", err)
	}

	fmt.Printf("Seeded demo account %s (password %s)\n", demoEmail, demoPassword)
	fmt.Printf("Profile: %s (%s), %d scheme recommendation(s)\n",
		profile.BusinessName, profile.BusinessType, len(recommendations))
}
