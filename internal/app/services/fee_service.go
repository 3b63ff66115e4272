package services

import (
	"context"

	"github.com/rs/zerolog"
	"github.com/okanserdaroglu/campushub/internal/app/models"
	"github.com/okanserdaroglu/campushub/internal/app/models/dto"
	"github.com/okanserdaroglu/campushub/internal/app/repositories"
	"github.com/okanserdaroglu/campushub/internal/pkg/apperrors"
	"github.com/okanserdaroglu/campushub/internal/pkg/helpers"
	"github.com/okanserdaroglu/campushub/internal/pkg/validation"
)

// FeeService handles fee structures and payments
type FeeService struct {
	feeRepo     *repositories.FeeRepository
	studentRepo *repositories.StudentRepository
	logger      zerolog.Logger
}

// NewFeeService creates a new FeeService
func NewFeeService(
	feeRepo *repositories.FeeRepository,
	studentRepo *repositories.StudentRepository,
	logger zerolog.Logger,
) *FeeService {
	return &FeeService{
		feeRepo:     feeRepo,
		studentRepo: studentRepo,
		logger:      logger,
	}
}

// CreateFeeStructure defines dues for a program/semester/year
func (s *FeeService) CreateFeeStructure(ctx context.Context, req *dto.CreateFeeStructureRequest) (*models.FeeStructure, error) {
	if !validation.IsValidAcademicYear(req.AcademicYear) {
		return nil, apperrors.NewBadRequestError("academic year must look like 2024-2025")
	}

	dueDate, err := helpers.ParseDate(req.DueDate)
	if err != nil {
		return nil, apperrors.NewBadRequestError("due date must look like 2024-08-31")
	}

	fee := &models.FeeStructure{
		Program:      req.Program,
		Semester:     req.Semester,
		AcademicYear: req.AcademicYear,
		Amount:       req.Amount,
		DueDate:      dueDate,
	}

	id, err := s.feeRepo.CreateFeeStructure(ctx, fee)
	if err != nil {
		return nil, err
	}

	s.logger.Info().Int64("feeStructureID", id).Str("program", fee.Program).Msg("Fee structure created")
	return s.feeRepo.GetFeeStructureByID(ctx, id)
}

// ListFeeStructures lists structures matching the filters
func (s *FeeService) ListFeeStructures(ctx context.Context, program string, semester int, academicYear string) ([]models.FeeStructure, error) {
	return s.feeRepo.GetFeeStructures(ctx, program, semester, academicYear)
}

// RecordPayment records a student's payment. A payment that would push
// the total above the structure's amount is rejected; overpaying is a
// data-entry mistake, not a feature.
func (s *FeeService) RecordPayment(ctx context.Context, recordedBy int64, req *dto.RecordPaymentRequest) (*models.FeePayment, error) {
	if _, err := s.studentRepo.GetStudentByID(ctx, req.StudentID); err != nil {
		return nil, err
	}

	fee, err := s.feeRepo.GetFeeStructureByID(ctx, req.FeeStructureID)
	if err != nil {
		return nil, err
	}

	paid, err := s.feeRepo.GetTotalPaid(ctx, req.StudentID, req.FeeStructureID)
	if err != nil {
		return nil, err
	}
	if paid+req.Amount > fee.Amount {
		return nil, apperrors.ErrPaymentExceedsDue
	}

	payment := &models.FeePayment{
		StudentID:      req.StudentID,
		FeeStructureID: req.FeeStructureID,
		Amount:         req.Amount,
		Reference:      req.Reference,
		RecordedBy:     recordedBy,
	}

	id, err := s.feeRepo.RecordPayment(ctx, payment)
	if err != nil {
		return nil, err
	}
	payment.ID = id

	s.logger.Info().
		Int64("paymentID", id).
		Int64("studentID", req.StudentID).
		Int64("amount", req.Amount).
		Msg("Fee payment recorded")
	return payment, nil
}

// GetStudentFeeStatus reports a student's dues, payments and outstanding
// balance for their program's fee structures.
func (s *FeeService) GetStudentFeeStatus(ctx context.Context, studentID int64, academicYear string) (*dto.FeeStatusResponse, error) {
	student, err := s.studentRepo.GetStudentByID(ctx, studentID)
	if err != nil {
		return nil, err
	}

	structures, err := s.feeRepo.GetFeeStructures(ctx, student.Program, 0, academicYear)
	if err != nil {
		return nil, err
	}

	response := &dto.FeeStatusResponse{Structures: structures}
	for _, fee := range structures {
		response.TotalDue += fee.Amount

		payments, err := s.feeRepo.GetStudentPayments(ctx, studentID, fee.ID)
		if err != nil {
			return nil, err
		}
		for _, p := range payments {
			response.TotalPaid += p.Amount
		}
		response.Payments = append(response.Payments, payments...)
	}
	response.Outstanding = response.TotalDue - response.TotalPaid

	return response, nil
}
