package services

import (
	"context"
	"fmt"
	"strings"

	"github.com/jackc/pgx/v5"
	"github.com/rs/zerolog"
	"github.com/okanserdaroglu/campushub/internal/app/models"
	"github.com/okanserdaroglu/campushub/internal/app/models/dto"
	"github.com/okanserdaroglu/campushub/internal/app/repositories"
	"github.com/okanserdaroglu/campushub/internal/db"
	"github.com/okanserdaroglu/campushub/internal/pkg/apperrors"
	"github.com/okanserdaroglu/campushub/internal/pkg/auth"
	"github.com/okanserdaroglu/campushub/internal/pkg/helpers"
	"github.com/okanserdaroglu/campushub/internal/pkg/validation"
)

// StudentService handles student record operations
type StudentService struct {
	studentRepo *repositories.StudentRepository
	userRepo    *repositories.UserRepository
	database    *db.PostgresDB
	logger      zerolog.Logger
}

// NewStudentService creates a new StudentService
func NewStudentService(
	studentRepo *repositories.StudentRepository,
	userRepo *repositories.UserRepository,
	database *db.PostgresDB,
	logger zerolog.Logger,
) *StudentService {
	return &StudentService{
		studentRepo: studentRepo,
		userRepo:    userRepo,
		database:    database,
		logger:      logger,
	}
}

// CreateStudent provisions a student and their user account in one
// transaction (direct admin enrolment, bypassing the application flow).
func (s *StudentService) CreateStudent(ctx context.Context, req *dto.CreateStudentRequest) (*models.Student, error) {
	if !validation.IsValidRollNumber(req.RollNumber) {
		return nil, apperrors.NewBadRequestError("roll number must look like 2024CS0042")
	}

	hashed, err := auth.HashPassword(req.Password)
	if err != nil {
		return nil, fmt.Errorf("failed to hash password: %w", err)
	}

	student := &models.Student{
		RollNumber:    req.RollNumber,
		Program:       req.Program,
		Semester:      req.Semester,
		AdmissionYear: req.AdmissionYear,
		GuardianName:  req.GuardianName,
		GuardianPhone: req.GuardianPhone,
	}

	err = s.database.WithTransaction(ctx, func(ctx context.Context, tx pgx.Tx) error {
		user := &models.User{
			Email:     strings.ToLower(strings.TrimSpace(req.Email)),
			Password:  hashed,
			FirstName: req.FirstName,
			LastName:  req.LastName,
			Role:      models.RoleStudent,
			IsActive:  true,
		}
		userID, err := s.userRepo.CreateUserTx(ctx, tx, user)
		if err != nil {
			return err
		}

		student.UserID = userID
		studentID, err := s.studentRepo.CreateStudentTx(ctx, tx, student)
		if err != nil {
			return err
		}
		student.ID = studentID
		return nil
	})
	if err != nil {
		return nil, err
	}

	s.logger.Info().Int64("studentID", student.ID).Str("rollNumber", student.RollNumber).Msg("Student created")
	return s.studentRepo.GetStudentByID(ctx, student.ID)
}

// GetStudent retrieves a student by ID
func (s *StudentService) GetStudent(ctx context.Context, id int64) (*models.Student, error) {
	return s.studentRepo.GetStudentByID(ctx, id)
}

// GetStudentByUserID retrieves the student record owned by a user
func (s *StudentService) GetStudentByUserID(ctx context.Context, userID int64) (*models.Student, error) {
	return s.studentRepo.GetStudentByUserID(ctx, userID)
}

// ListStudents lists students with filters and pagination
func (s *StudentService) ListStudents(ctx context.Context, filter *dto.StudentFilterRequest) (*dto.StudentListResponse, error) {
	students, total, err := s.studentRepo.GetAllStudents(ctx, filter.Program, filter.Search, filter.Semester, filter.Page, filter.PageSize)
	if err != nil {
		return nil, err
	}

	return &dto.StudentListResponse{
		Students:       students,
		PaginationInfo: helpers.NewPaginationInfo(total, filter.Page, filter.PageSize),
	}, nil
}

// UpdateStudent edits the mutable parts of a student record
func (s *StudentService) UpdateStudent(ctx context.Context, id int64, req *dto.UpdateStudentRequest) (*models.Student, error) {
	student, err := s.studentRepo.GetStudentByID(ctx, id)
	if err != nil {
		return nil, err
	}

	student.Program = req.Program
	student.Semester = req.Semester
	student.GuardianName = req.GuardianName
	student.GuardianPhone = req.GuardianPhone

	if err := s.studentRepo.UpdateStudent(ctx, student); err != nil {
		return nil, err
	}
	return s.studentRepo.GetStudentByID(ctx, id)
}

// DeleteStudent removes the student record and deactivates the user so
// their login stops working without erasing the account history.
func (s *StudentService) DeleteStudent(ctx context.Context, id int64) error {
	student, err := s.studentRepo.GetStudentByID(ctx, id)
	if err != nil {
		return err
	}

	if err := s.studentRepo.DeleteStudent(ctx, id); err != nil {
		return err
	}

	if err := s.userRepo.SetActive(ctx, student.UserID, false); err != nil {
		s.logger.Warn().Err(err).Int64("userID", student.UserID).Msg("Failed to deactivate user after student delete")
	}
	return nil
}
