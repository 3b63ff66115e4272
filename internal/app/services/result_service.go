package services

import (
	"context"
	"sort"

	"github.com/rs/zerolog"
	"github.com/okanserdaroglu/campushub/internal/app/grading"
	"github.com/okanserdaroglu/campushub/internal/app/models"
	"github.com/okanserdaroglu/campushub/internal/app/models/dto"
	"github.com/okanserdaroglu/campushub/internal/app/repositories"
	"github.com/okanserdaroglu/campushub/internal/pkg/apperrors"
	"github.com/okanserdaroglu/campushub/internal/pkg/validation"
)

// ResultService handles marks entry and derived result operations.
// Grades are never stored; every read recomputes them from the raw
// marks through the grading package.
type ResultService struct {
	marksRepo    *repositories.MarksRepository
	subjectRepo  *repositories.SubjectRepository
	studentRepo  *repositories.StudentRepository
	retakePolicy grading.RetakePolicy
	logger       zerolog.Logger
}

// NewResultService creates a new ResultService
func NewResultService(
	marksRepo *repositories.MarksRepository,
	subjectRepo *repositories.SubjectRepository,
	studentRepo *repositories.StudentRepository,
	retakePolicy grading.RetakePolicy,
	logger zerolog.Logger,
) *ResultService {
	return &ResultService{
		marksRepo:    marksRepo,
		subjectRepo:  subjectRepo,
		studentRepo:  studentRepo,
		retakePolicy: retakePolicy,
		logger:       logger,
	}
}

// EnterMarks records one student's marks in one subject. The marks are
// validated through the grading rules before anything is written, so an
// out-of-range value can never reach the table.
func (s *ResultService) EnterMarks(ctx context.Context, enteredBy int64, req *dto.EnterMarksRequest) (*models.MarksEntry, error) {
	if !validation.IsValidAcademicYear(req.AcademicYear) {
		return nil, apperrors.NewBadRequestError("academic year must look like 2024-2025")
	}

	if _, err := grading.ComputeGrade(*req.InternalMarks, *req.ExternalMarks); err != nil {
		return nil, err
	}

	if _, err := s.studentRepo.GetStudentByID(ctx, req.StudentID); err != nil {
		return nil, err
	}
	if _, err := s.subjectRepo.GetSubjectByID(ctx, req.SubjectID); err != nil {
		return nil, err
	}

	entry := &models.MarksEntry{
		StudentID:     req.StudentID,
		SubjectID:     req.SubjectID,
		Semester:      req.Semester,
		AcademicYear:  req.AcademicYear,
		InternalMarks: *req.InternalMarks,
		ExternalMarks: *req.ExternalMarks,
		Remarks:       req.Remarks,
		EnteredBy:     enteredBy,
	}

	id, err := s.marksRepo.CreateMarksEntry(ctx, entry)
	if err != nil {
		return nil, err
	}

	s.logger.Info().
		Int64("marksEntryID", id).
		Int64("studentID", req.StudentID).
		Int64("subjectID", req.SubjectID).
		Msg("Marks entered")
	return s.marksRepo.GetMarksEntryByID(ctx, id)
}

// CorrectMarks rewrites the raw marks of an entry that has not been
// published yet. Published rows are visible to students and stay frozen.
func (s *ResultService) CorrectMarks(ctx context.Context, entryID int64, req *dto.EnterMarksRequest) (*models.MarksEntry, error) {
	entry, err := s.marksRepo.GetMarksEntryByID(ctx, entryID)
	if err != nil {
		return nil, err
	}
	if entry.IsPublished {
		return nil, apperrors.NewConflictError("published marks cannot be corrected")
	}

	if _, err := grading.ComputeGrade(*req.InternalMarks, *req.ExternalMarks); err != nil {
		return nil, err
	}

	entry.InternalMarks = *req.InternalMarks
	entry.ExternalMarks = *req.ExternalMarks
	entry.Remarks = req.Remarks

	if err := s.marksRepo.UpdateMarksEntry(ctx, entry); err != nil {
		return nil, err
	}
	return s.marksRepo.GetMarksEntryByID(ctx, entryID)
}

// PublishMarks makes every entry for a subject and academic year visible
// to students. Idempotent.
func (s *ResultService) PublishMarks(ctx context.Context, req *dto.PublishMarksRequest) (int64, error) {
	if _, err := s.subjectRepo.GetSubjectByID(ctx, req.SubjectID); err != nil {
		return 0, err
	}
	return s.marksRepo.PublishSubjectMarks(ctx, req.SubjectID, req.AcademicYear)
}

// GetSubjectMarks lists a subject's raw entries for faculty review,
// including unpublished drafts.
func (s *ResultService) GetSubjectMarks(ctx context.Context, subjectID int64, academicYear string) ([]models.MarksEntry, error) {
	if _, err := s.subjectRepo.GetSubjectByID(ctx, subjectID); err != nil {
		return nil, err
	}
	return s.marksRepo.GetSubjectMarks(ctx, subjectID, academicYear)
}

// GetSemesterResult derives a student's results and SGPA for one
// semester. publishedOnly is true for the student's own view; admins and
// faculty also see drafts.
func (s *ResultService) GetSemesterResult(ctx context.Context, studentID int64, semester int, publishedOnly bool) (*dto.SemesterResultResponse, error) {
	if _, err := s.studentRepo.GetStudentByID(ctx, studentID); err != nil {
		return nil, err
	}

	entries, err := s.marksRepo.GetStudentMarks(ctx, studentID, semester, publishedOnly)
	if err != nil {
		return nil, err
	}

	results, err := resultsFromEntries(entries)
	if err != nil {
		return nil, err
	}

	summary, err := grading.ComputeSemesterSummary(results)
	if err != nil {
		return nil, err
	}
	summary.Semester = semester

	return &dto.SemesterResultResponse{
		Results: results,
		Summary: summary,
	}, nil
}

// GetTranscript derives the full academic history: per-semester results
// with SGPA plus the CGPA over everything, honoring the configured
// retake policy.
func (s *ResultService) GetTranscript(ctx context.Context, studentID int64, publishedOnly bool) (*dto.TranscriptResponse, error) {
	if _, err := s.studentRepo.GetStudentByID(ctx, studentID); err != nil {
		return nil, err
	}

	entries, err := s.marksRepo.GetStudentMarks(ctx, studentID, 0, publishedOnly)
	if err != nil {
		return nil, err
	}

	results, err := resultsFromEntries(entries)
	if err != nil {
		return nil, err
	}

	bySemester := make(map[int][]grading.Result)
	for _, r := range results {
		bySemester[r.Semester] = append(bySemester[r.Semester], r)
	}

	semesters := make([]int, 0, len(bySemester))
	for sem := range bySemester {
		semesters = append(semesters, sem)
	}
	sort.Ints(semesters)

	response := &dto.TranscriptResponse{
		Semesters: make([]dto.SemesterResultResponse, 0, len(semesters)),
	}
	for _, sem := range semesters {
		semResults := bySemester[sem]
		summary, err := grading.ComputeSemesterSummary(semResults)
		if err != nil {
			return nil, err
		}
		response.Semesters = append(response.Semesters, dto.SemesterResultResponse{
			Results: semResults,
			Summary: summary,
		})
	}

	transcript, err := grading.ComputeTranscriptSummary(results, s.retakePolicy)
	if err != nil {
		return nil, err
	}
	response.Summary = transcript

	return response, nil
}

func resultsFromEntries(entries []models.MarksEntry) ([]grading.Result, error) {
	results := make([]grading.Result, 0, len(entries))
	for i := range entries {
		result, err := grading.ResultFromEntry(&entries[i], entries[i].Subject)
		if err != nil {
			return nil, err
		}
		results = append(results, result)
	}
	return results, nil
}
