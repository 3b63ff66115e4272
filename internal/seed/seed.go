package seed

import (
	"context"
	"errors"
	"time"

	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/rs/zerolog"
	"golang.org/x/crypto/bcrypt"

	appModels "github.com/okanserdaroglu/campushub/internal/app/models"
	appRepos "github.com/okanserdaroglu/campushub/internal/app/repositories"
	"github.com/okanserdaroglu/campushub/internal/pkg/apperrors"
)

const (
	defaultAdminEmail    = "admin@campushub.edu"
	defaultAdminPassword = "Admin123!"
)

// CreateDefaultData ensures a default admin account and a starter subject
// catalog exist. Safe to run on every startup; existing rows are left
// alone and individual failures are collected rather than aborting.
func CreateDefaultData(ctx context.Context, dbPool *pgxpool.Pool, lgr zerolog.Logger) error {
	userRepo := appRepos.NewUserRepository(dbPool)
	subjectRepo := appRepos.NewSubjectRepository(dbPool)

	lgr.Info().Msg("Checking/Creating default data...")
	var finalErr error

	// --- Default Admin User --- //
	_, err := userRepo.GetUserByEmail(ctx, defaultAdminEmail)
	switch {
	case err == nil:
		lgr.Info().Msg("Admin user already exists, skipping creation")
	case errors.Is(err, apperrors.ErrUserNotFound):
		lgr.Info().Msg("Creating default admin user...")

		hashedPassword, hashErr := bcrypt.GenerateFromPassword([]byte(defaultAdminPassword), bcrypt.DefaultCost)
		if hashErr != nil {
			lgr.Error().Err(hashErr).Msg("Error hashing admin password")
			finalErr = errors.Join(finalErr, hashErr)
			break
		}

		admin := &appModels.User{
			Email:     defaultAdminEmail,
			Password:  string(hashedPassword),
			FirstName: "System",
			LastName:  "Administrator",
			Role:      appModels.RoleAdmin,
			IsActive:  true,
			CreatedAt: time.Now(),
			UpdatedAt: time.Now(),
		}
		adminID, createErr := userRepo.CreateUser(ctx, admin)
		if createErr != nil {
			lgr.Error().Err(createErr).Msg("Error creating admin user")
			finalErr = errors.Join(finalErr, createErr)
		} else {
			lgr.Info().Int64("adminID", adminID).Msg("Default admin user created successfully")
		}
	default:
		lgr.Error().Err(err).Msg("Error checking if admin user exists")
		finalErr = errors.Join(finalErr, err)
	}

	// --- Starter Subject Catalog --- //
	starterSubjects := []appModels.Subject{
		{Code: "CS101", Name: "Introduction to Programming", Credits: 4, Semester: 1, Program: "B.Tech CSE"},
		{Code: "CS201", Name: "Data Structures", Credits: 4, Semester: 3, Program: "B.Tech CSE"},
		{Code: "CS301", Name: "Operating Systems", Credits: 4, Semester: 5, Program: "B.Tech CSE"},
		{Code: "MA101", Name: "Engineering Mathematics I", Credits: 3, Semester: 1, Program: "B.Tech CSE"},
		{Code: "HS101", Name: "Communication Skills", Credits: 2, Semester: 1, Program: "B.Tech CSE"},
	}
	for i := range starterSubjects {
		subject := starterSubjects[i]
		if _, err := subjectRepo.CreateSubject(ctx, &subject); err != nil &&
			!errors.Is(err, apperrors.ErrSubjectAlreadyExists) {
			lgr.Error().Err(err).Str("code", subject.Code).Msg("Error creating starter subject")
			finalErr = errors.Join(finalErr, err)
		}
	}

	lgr.Info().Msg("Default data check/creation finished.")
	return finalErr
}
