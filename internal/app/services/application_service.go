package services

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"
	"unicode"

	"github.com/jackc/pgx/v5"
	"github.com/rs/zerolog"
	"github.com/okanserdaroglu/campushub/internal/app/models"
	"github.com/okanserdaroglu/campushub/internal/app/models/dto"
	"github.com/okanserdaroglu/campushub/internal/app/repositories"
	"github.com/okanserdaroglu/campushub/internal/db"
	"github.com/okanserdaroglu/campushub/internal/pkg/apperrors"
	"github.com/okanserdaroglu/campushub/internal/pkg/auth"
	"github.com/okanserdaroglu/campushub/internal/pkg/email"
	"github.com/okanserdaroglu/campushub/internal/pkg/helpers"
)

const (
	temporaryPasswordLength = 12

	// rollNumberAllocationRetries bounds how often an approval re-runs
	// its transaction after losing a roll number race.
	rollNumberAllocationRetries = 3
)

// ApplicationService handles the admission application lifecycle
type ApplicationService struct {
	applicationRepo *repositories.ApplicationRepository
	userRepo        *repositories.UserRepository
	studentRepo     *repositories.StudentRepository
	database        *db.PostgresDB
	emailService    email.Service
	logger          zerolog.Logger
}

// NewApplicationService creates a new ApplicationService
func NewApplicationService(
	applicationRepo *repositories.ApplicationRepository,
	userRepo *repositories.UserRepository,
	studentRepo *repositories.StudentRepository,
	database *db.PostgresDB,
	emailService email.Service,
	logger zerolog.Logger,
) *ApplicationService {
	return &ApplicationService{
		applicationRepo: applicationRepo,
		userRepo:        userRepo,
		studentRepo:     studentRepo,
		database:        database,
		emailService:    emailService,
		logger:          logger,
	}
}

// SubmitApplication files a new application in Pending state
func (s *ApplicationService) SubmitApplication(ctx context.Context, req *dto.SubmitApplicationRequest) (*models.Application, error) {
	app := &models.Application{
		FirstName:   req.FirstName,
		LastName:    req.LastName,
		Email:       strings.ToLower(strings.TrimSpace(req.Email)),
		Phone:       req.Phone,
		Program:     req.Program,
		PrevSchool:  req.PrevSchool,
		PrevPercent: req.PrevPercent,
		Status:      models.ApplicationPending,
	}

	id, err := s.applicationRepo.CreateApplication(ctx, app)
	if err != nil {
		return nil, err
	}
	app.ID = id

	s.logger.Info().Int64("applicationID", id).Str("program", app.Program).Msg("Application submitted")
	return app, nil
}

// GetApplication retrieves one application
func (s *ApplicationService) GetApplication(ctx context.Context, id int64) (*models.Application, error) {
	return s.applicationRepo.GetApplicationByID(ctx, id)
}

// ListApplications lists applications for the admin review queue
func (s *ApplicationService) ListApplications(ctx context.Context, filter *dto.ApplicationFilterRequest) ([]models.Application, dto.PaginationInfo, error) {
	apps, total, err := s.applicationRepo.GetAllApplications(ctx, filter.Status, filter.Program, filter.Page, filter.PageSize)
	if err != nil {
		return nil, dto.PaginationInfo{}, err
	}
	return apps, helpers.NewPaginationInfo(total, filter.Page, filter.PageSize), nil
}

// ApproveApplication approves a Pending application. In one transaction
// it flips the application to Approved, provisions a student user with a
// temporary password and creates the student record with a generated
// roll number. The credentials email goes out after the commit; a mail
// failure never rolls back an admission.
func (s *ApplicationService) ApproveApplication(ctx context.Context, applicationID, decidedBy int64) (*dto.ApprovalResponse, error) {
	app, err := s.applicationRepo.GetApplicationByID(ctx, applicationID)
	if err != nil {
		return nil, err
	}

	tempPassword, err := auth.GenerateTemporaryPassword(temporaryPasswordLength)
	if err != nil {
		return nil, fmt.Errorf("failed to generate temporary password: %w", err)
	}
	hashed, err := auth.HashPassword(tempPassword)
	if err != nil {
		return nil, fmt.Errorf("failed to hash temporary password: %w", err)
	}

	admissionYear := time.Now().Year()
	prefix := fmt.Sprintf("%d%s", admissionYear, programCode(app.Program))

	response := &dto.ApprovalResponse{
		ApplicationID: applicationID,
		Email:         app.Email,
	}

	// The sequence is allocated inside the transaction, but two
	// concurrent approvals can still read the same count; the roll
	// number unique constraint decides the loser, which retries with a
	// fresh sequence.
	for attempt := 0; ; attempt++ {
		err = s.database.WithTransaction(ctx, func(ctx context.Context, tx pgx.Tx) error {
			if err := s.applicationRepo.DecideApplicationTx(ctx, tx, applicationID, models.ApplicationApproved, decidedBy); err != nil {
				return err
			}

			sequence, err := s.studentRepo.NextRollSequenceTx(ctx, tx, prefix)
			if err != nil {
				return err
			}
			rollNumber := fmt.Sprintf("%s%04d", prefix, sequence)

			user := &models.User{
				Email:     app.Email,
				Password:  hashed,
				FirstName: app.FirstName,
				LastName:  app.LastName,
				Role:      models.RoleStudent,
				IsActive:  true,
			}
			userID, err := s.userRepo.CreateUserTx(ctx, tx, user)
			if err != nil {
				return err
			}

			student := &models.Student{
				UserID:        userID,
				RollNumber:    rollNumber,
				Program:       app.Program,
				Semester:      1,
				AdmissionYear: admissionYear,
			}
			studentID, err := s.studentRepo.CreateStudentTx(ctx, tx, student)
			if err != nil {
				return err
			}

			response.RollNumber = rollNumber
			response.UserID = userID
			response.StudentID = studentID
			return nil
		})
		if err == nil {
			break
		}
		if shouldRetryRollNumber(err, attempt) {
			s.logger.Warn().
				Int64("applicationID", applicationID).
				Str("prefix", prefix).
				Msg("Roll number collided with a concurrent approval, retrying")
			continue
		}
		return nil, err
	}

	if err := s.emailService.SendCredentialsEmail(app.Email, app.FirstName+" "+app.LastName, response.RollNumber, tempPassword); err != nil {
		s.logger.Error().Err(err).Int64("applicationID", applicationID).Msg("Failed to send credentials email")
	}

	s.logger.Info().
		Int64("applicationID", applicationID).
		Int64("studentID", response.StudentID).
		Str("rollNumber", response.RollNumber).
		Msg("Application approved")
	return response, nil
}

// RejectApplication rejects a Pending application and notifies the applicant
func (s *ApplicationService) RejectApplication(ctx context.Context, applicationID, decidedBy int64) error {
	app, err := s.applicationRepo.GetApplicationByID(ctx, applicationID)
	if err != nil {
		return err
	}

	err = s.database.WithTransaction(ctx, func(ctx context.Context, tx pgx.Tx) error {
		return s.applicationRepo.DecideApplicationTx(ctx, tx, applicationID, models.ApplicationRejected, decidedBy)
	})
	if err != nil {
		return err
	}

	if err := s.emailService.SendApplicationDecisionEmail(app.Email, app.FirstName+" "+app.LastName, false); err != nil {
		s.logger.Error().Err(err).Int64("applicationID", applicationID).Msg("Failed to send rejection email")
	}

	s.logger.Info().Int64("applicationID", applicationID).Msg("Application rejected")
	return nil
}

// shouldRetryRollNumber reports whether a failed approval transaction
// should be re-run. Only a roll number collision with a concurrent
// approval qualifies, and only up to rollNumberAllocationRetries.
func shouldRetryRollNumber(err error, attempt int) bool {
	return errors.Is(err, apperrors.ErrRollNumberAlreadyExists) && attempt < rollNumberAllocationRetries
}

// programCode derives the two-letter roll number segment from a program
// name: word initials for multi-word names ("Computer Science" -> "CS"),
// the first two letters otherwise.
func programCode(program string) string {
	words := strings.Fields(program)
	var code []rune
	if len(words) >= 2 {
		for _, w := range words {
			code = append(code, unicode.ToUpper(rune(w[0])))
			if len(code) == 2 {
				break
			}
		}
	} else if len(words) == 1 {
		for _, r := range words[0] {
			code = append(code, unicode.ToUpper(r))
			if len(code) == 2 {
				break
			}
		}
	}
	for len(code) < 2 {
		code = append(code, 'X')
	}
	return string(code)
}
