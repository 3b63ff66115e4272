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
	"github.com/okanserdaroglu/campushub/internal/pkg/validation"
)

// FacultyMemberService handles faculty member record operations
type FacultyMemberService struct {
	facultyRepo *repositories.FacultyMemberRepository
	userRepo    *repositories.UserRepository
	database    *db.PostgresDB
	logger      zerolog.Logger
}

// NewFacultyMemberService creates a new FacultyMemberService
func NewFacultyMemberService(
	facultyRepo *repositories.FacultyMemberRepository,
	userRepo *repositories.UserRepository,
	database *db.PostgresDB,
	logger zerolog.Logger,
) *FacultyMemberService {
	return &FacultyMemberService{
		facultyRepo: facultyRepo,
		userRepo:    userRepo,
		database:    database,
		logger:      logger,
	}
}

// CreateFacultyMember provisions a faculty member and their user account
// in one transaction
func (s *FacultyMemberService) CreateFacultyMember(ctx context.Context, req *dto.CreateFacultyMemberRequest) (*models.FacultyMember, error) {
	if !validation.CompiledPatterns.EmployeeID.MatchString(req.EmployeeID) {
		return nil, apperrors.NewBadRequestError("employee ID must look like EMP-0042")
	}

	hashed, err := auth.HashPassword(req.Password)
	if err != nil {
		return nil, fmt.Errorf("failed to hash password: %w", err)
	}

	member := &models.FacultyMember{
		EmployeeID:  req.EmployeeID,
		Designation: req.Designation,
		Department:  req.Department,
	}

	err = s.database.WithTransaction(ctx, func(ctx context.Context, tx pgx.Tx) error {
		user := &models.User{
			Email:     strings.ToLower(strings.TrimSpace(req.Email)),
			Password:  hashed,
			FirstName: req.FirstName,
			LastName:  req.LastName,
			Role:      models.RoleFaculty,
			IsActive:  true,
		}
		userID, err := s.userRepo.CreateUserTx(ctx, tx, user)
		if err != nil {
			return err
		}

		member.UserID = userID
		memberID, err := s.facultyRepo.CreateFacultyMemberTx(ctx, tx, member)
		if err != nil {
			return err
		}
		member.ID = memberID
		return nil
	})
	if err != nil {
		return nil, err
	}

	s.logger.Info().Int64("facultyMemberID", member.ID).Str("employeeID", member.EmployeeID).Msg("Faculty member created")
	return s.facultyRepo.GetFacultyMemberByID(ctx, member.ID)
}

// GetFacultyMember retrieves a faculty member by ID
func (s *FacultyMemberService) GetFacultyMember(ctx context.Context, id int64) (*models.FacultyMember, error) {
	return s.facultyRepo.GetFacultyMemberByID(ctx, id)
}

// ListFacultyMembers lists faculty members, optionally by department
func (s *FacultyMemberService) ListFacultyMembers(ctx context.Context, department string) ([]models.FacultyMember, error) {
	return s.facultyRepo.GetAllFacultyMembers(ctx, department)
}

// UpdateFacultyMember edits designation and department
func (s *FacultyMemberService) UpdateFacultyMember(ctx context.Context, id int64, req *dto.UpdateFacultyMemberRequest) (*models.FacultyMember, error) {
	member, err := s.facultyRepo.GetFacultyMemberByID(ctx, id)
	if err != nil {
		return nil, err
	}

	member.Designation = req.Designation
	member.Department = req.Department

	if err := s.facultyRepo.UpdateFacultyMember(ctx, member); err != nil {
		return nil, err
	}
	return s.facultyRepo.GetFacultyMemberByID(ctx, id)
}

// DeleteFacultyMember removes the record and deactivates the user account
func (s *FacultyMemberService) DeleteFacultyMember(ctx context.Context, id int64) error {
	member, err := s.facultyRepo.GetFacultyMemberByID(ctx, id)
	if err != nil {
		return err
	}

	if err := s.facultyRepo.DeleteFacultyMember(ctx, id); err != nil {
		return err
	}

	if err := s.userRepo.SetActive(ctx, member.UserID, false); err != nil {
		s.logger.Warn().Err(err).Int64("userID", member.UserID).Msg("Failed to deactivate user after faculty member delete")
	}
	return nil
}
