package services

import (
	"context"
	"strings"

	"github.com/rs/zerolog"
	"github.com/okanserdaroglu/campushub/internal/app/models"
	"github.com/okanserdaroglu/campushub/internal/app/models/dto"
	"github.com/okanserdaroglu/campushub/internal/app/repositories"
	"github.com/okanserdaroglu/campushub/internal/pkg/apperrors"
)

// SubjectService handles course offering operations
type SubjectService struct {
	subjectRepo *repositories.SubjectRepository
	logger      zerolog.Logger
}

// NewSubjectService creates a new SubjectService
func NewSubjectService(subjectRepo *repositories.SubjectRepository, logger zerolog.Logger) *SubjectService {
	return &SubjectService{
		subjectRepo: subjectRepo,
		logger:      logger,
	}
}

// CreateSubject creates a course offering
func (s *SubjectService) CreateSubject(ctx context.Context, req *dto.CreateSubjectRequest) (*models.Subject, error) {
	subject := &models.Subject{
		Code:     strings.ToUpper(strings.TrimSpace(req.Code)),
		Name:     req.Name,
		Credits:  req.Credits,
		Semester: req.Semester,
		Program:  req.Program,
	}

	id, err := s.subjectRepo.CreateSubject(ctx, subject)
	if err != nil {
		return nil, err
	}

	s.logger.Info().Int64("subjectID", id).Str("code", subject.Code).Msg("Subject created")
	return s.subjectRepo.GetSubjectByID(ctx, id)
}

// GetSubject retrieves a subject by ID
func (s *SubjectService) GetSubject(ctx context.Context, id int64) (*models.Subject, error) {
	return s.subjectRepo.GetSubjectByID(ctx, id)
}

// ListSubjects lists subjects filtered by program and semester
func (s *SubjectService) ListSubjects(ctx context.Context, filter *dto.SubjectFilterRequest) ([]models.Subject, error) {
	return s.subjectRepo.GetAllSubjects(ctx, filter.Program, filter.Semester)
}

// UpdateSubject edits a subject. A credits change is allowed only while
// no marks reference the subject; afterwards it would silently rewrite
// every SGPA already computed against it.
func (s *SubjectService) UpdateSubject(ctx context.Context, id int64, req *dto.UpdateSubjectRequest) (*models.Subject, error) {
	subject, err := s.subjectRepo.GetSubjectByID(ctx, id)
	if err != nil {
		return nil, err
	}

	if req.Credits != subject.Credits {
		hasMarks, err := s.subjectRepo.HasMarksEntries(ctx, id)
		if err != nil {
			return nil, err
		}
		if hasMarks {
			return nil, apperrors.ErrSubjectHasResults
		}
		subject.Credits = req.Credits
		if err := s.subjectRepo.UpdateSubjectCredits(ctx, id, req.Credits); err != nil {
			return nil, err
		}
	}

	subject.Name = req.Name
	subject.Semester = req.Semester
	subject.Program = req.Program

	if err := s.subjectRepo.UpdateSubject(ctx, subject); err != nil {
		return nil, err
	}
	return s.subjectRepo.GetSubjectByID(ctx, id)
}

// DeleteSubject removes a subject that has no graded results
func (s *SubjectService) DeleteSubject(ctx context.Context, id int64) error {
	hasMarks, err := s.subjectRepo.HasMarksEntries(ctx, id)
	if err != nil {
		return err
	}
	if hasMarks {
		return apperrors.ErrSubjectHasResults
	}
	return s.subjectRepo.DeleteSubject(ctx, id)
}
