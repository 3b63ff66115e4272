package services

import (
	"context"
	"errors"
	"mime/multipart"
	"time"

	"github.com/rs/zerolog"
	"github.com/okanserdaroglu/campushub/internal/app/models"
	"github.com/okanserdaroglu/campushub/internal/app/models/dto"
	"github.com/okanserdaroglu/campushub/internal/app/repositories"
	"github.com/okanserdaroglu/campushub/internal/pkg/apperrors"
	"github.com/okanserdaroglu/campushub/internal/pkg/filestorage"
)

// AssignmentService handles coursework and submissions
type AssignmentService struct {
	assignmentRepo *repositories.AssignmentRepository
	subjectRepo    *repositories.SubjectRepository
	studentRepo    *repositories.StudentRepository
	fileStorage    filestorage.FileStorage
	logger         zerolog.Logger
}

// NewAssignmentService creates a new AssignmentService
func NewAssignmentService(
	assignmentRepo *repositories.AssignmentRepository,
	subjectRepo *repositories.SubjectRepository,
	studentRepo *repositories.StudentRepository,
	fileStorage filestorage.FileStorage,
	logger zerolog.Logger,
) *AssignmentService {
	return &AssignmentService{
		assignmentRepo: assignmentRepo,
		subjectRepo:    subjectRepo,
		studentRepo:    studentRepo,
		fileStorage:    fileStorage,
		logger:         logger,
	}
}

// CreateAssignment hands out coursework, optionally with an attachment
func (s *AssignmentService) CreateAssignment(ctx context.Context, createdBy int64, req *dto.CreateAssignmentRequest, attachment *multipart.FileHeader) (*models.Assignment, error) {
	if _, err := s.subjectRepo.GetSubjectByID(ctx, req.SubjectID); err != nil {
		return nil, err
	}

	dueAt, err := time.Parse(time.RFC3339, req.DueAt)
	if err != nil {
		return nil, apperrors.NewBadRequestError("dueAt must be RFC 3339")
	}

	assignment := &models.Assignment{
		SubjectID:   req.SubjectID,
		Title:       req.Title,
		Description: req.Description,
		DueAt:       dueAt,
		CreatedBy:   createdBy,
	}

	if attachment != nil {
		url, err := s.fileStorage.SaveFileWithPath(attachment, "assignments")
		if err != nil {
			return nil, err
		}
		assignment.AttachmentURL = &url
	}

	id, err := s.assignmentRepo.CreateAssignment(ctx, assignment)
	if err != nil {
		return nil, err
	}

	s.logger.Info().Int64("assignmentID", id).Int64("subjectID", req.SubjectID).Msg("Assignment created")
	return s.assignmentRepo.GetAssignmentByID(ctx, id)
}

// GetAssignment retrieves one assignment
func (s *AssignmentService) GetAssignment(ctx context.Context, id int64) (*models.Assignment, error) {
	return s.assignmentRepo.GetAssignmentByID(ctx, id)
}

// ListAssignments lists a subject's assignments
func (s *AssignmentService) ListAssignments(ctx context.Context, subjectID int64) ([]models.Assignment, error) {
	if _, err := s.subjectRepo.GetSubjectByID(ctx, subjectID); err != nil {
		return nil, err
	}
	return s.assignmentRepo.GetAssignmentsBySubject(ctx, subjectID)
}

// DeleteAssignment removes an assignment and its stored attachment
func (s *AssignmentService) DeleteAssignment(ctx context.Context, id int64) error {
	assignment, err := s.assignmentRepo.GetAssignmentByID(ctx, id)
	if err != nil {
		return err
	}

	if err := s.assignmentRepo.DeleteAssignment(ctx, id); err != nil {
		return err
	}

	if assignment.AttachmentURL != nil {
		if err := s.fileStorage.DeleteFile(*assignment.AttachmentURL); err != nil {
			s.logger.Warn().Err(err).Int64("assignmentID", id).Msg("Failed to delete assignment attachment")
		}
	}
	return nil
}

// SubmitAssignment stores a student's answer file. Re-submitting before
// the deadline replaces the earlier file; after the deadline nothing is
// accepted.
func (s *AssignmentService) SubmitAssignment(ctx context.Context, studentID, assignmentID int64, file *multipart.FileHeader) (*models.Submission, error) {
	if _, err := s.studentRepo.GetStudentByID(ctx, studentID); err != nil {
		return nil, err
	}

	assignment, err := s.assignmentRepo.GetAssignmentByID(ctx, assignmentID)
	if err != nil {
		return nil, err
	}
	if time.Now().After(assignment.DueAt) {
		return nil, apperrors.ErrDeadlinePassed
	}

	previous, err := s.assignmentRepo.GetSubmission(ctx, assignmentID, studentID)
	if err != nil && !errors.Is(err, apperrors.ErrSubmissionNotFound) {
		return nil, err
	}

	url, err := s.fileStorage.SaveFileWithPath(file, "submissions")
	if err != nil {
		return nil, err
	}

	submission := &models.Submission{
		AssignmentID: assignmentID,
		StudentID:    studentID,
		FileURL:      url,
	}
	id, err := s.assignmentRepo.UpsertSubmission(ctx, submission)
	if err != nil {
		return nil, err
	}

	if previous != nil {
		if err := s.fileStorage.DeleteFile(previous.FileURL); err != nil {
			s.logger.Warn().Err(err).Int64("submissionID", previous.ID).Msg("Failed to delete replaced submission file")
		}
	}

	s.logger.Info().
		Int64("submissionID", id).
		Int64("assignmentID", assignmentID).
		Int64("studentID", studentID).
		Msg("Assignment submitted")
	return s.assignmentRepo.GetSubmission(ctx, assignmentID, studentID)
}

// ListSubmissions lists every submission for an assignment (faculty view)
func (s *AssignmentService) ListSubmissions(ctx context.Context, assignmentID int64) ([]models.Submission, error) {
	if _, err := s.assignmentRepo.GetAssignmentByID(ctx, assignmentID); err != nil {
		return nil, err
	}
	return s.assignmentRepo.GetSubmissionsByAssignment(ctx, assignmentID)
}

// GetStudentSubmission retrieves one student's submission
func (s *AssignmentService) GetStudentSubmission(ctx context.Context, assignmentID, studentID int64) (*models.Submission, error) {
	return s.assignmentRepo.GetSubmission(ctx, assignmentID, studentID)
}

// GiveFeedback attaches faculty feedback to a submission
func (s *AssignmentService) GiveFeedback(ctx context.Context, submissionID int64, req *dto.FeedbackRequest) error {
	return s.assignmentRepo.SetSubmissionFeedback(ctx, submissionID, req.Feedback)
}
