package services

import (
	"context"
	"time"

	"github.com/rs/zerolog"
	"github.com/okanserdaroglu/campushub/internal/app/attendance"
	"github.com/okanserdaroglu/campushub/internal/app/models"
	"github.com/okanserdaroglu/campushub/internal/app/models/dto"
	"github.com/okanserdaroglu/campushub/internal/app/repositories"
	"github.com/okanserdaroglu/campushub/internal/pkg/apperrors"
	"github.com/okanserdaroglu/campushub/internal/pkg/helpers"
)

// AttendanceService handles daily attendance marking and summaries
type AttendanceService struct {
	attendanceRepo *repositories.AttendanceRepository
	subjectRepo    *repositories.SubjectRepository
	studentRepo    *repositories.StudentRepository
	logger         zerolog.Logger
}

// NewAttendanceService creates a new AttendanceService
func NewAttendanceService(
	attendanceRepo *repositories.AttendanceRepository,
	subjectRepo *repositories.SubjectRepository,
	studentRepo *repositories.StudentRepository,
	logger zerolog.Logger,
) *AttendanceService {
	return &AttendanceService{
		attendanceRepo: attendanceRepo,
		subjectRepo:    subjectRepo,
		studentRepo:    studentRepo,
		logger:         logger,
	}
}

// RecordAttendance marks a whole class for one subject and day. The
// batch is validated and deduplicated through a MarkSet before it
// touches the database; re-marking a (student, subject, day) tuple
// replaces the earlier status.
func (s *AttendanceService) RecordAttendance(ctx context.Context, markedBy int64, req *dto.RecordAttendanceRequest) (int, error) {
	if _, err := s.subjectRepo.GetSubjectByID(ctx, req.SubjectID); err != nil {
		return 0, err
	}

	day, err := helpers.ParseDate(req.Date)
	if err != nil {
		return 0, apperrors.NewBadRequestError("date must look like 2024-01-10")
	}

	set, err := attendance.NewMarkSet()
	if err != nil {
		return 0, err
	}
	for _, entry := range req.Entries {
		mark := models.AttendanceMark{
			StudentID: entry.StudentID,
			SubjectID: req.SubjectID,
			Date:      day,
			Status:    models.AttendanceStatus(entry.Status),
			MarkedBy:  markedBy,
		}
		if _, err := set.Record(mark); err != nil {
			return 0, err
		}
	}

	marks := set.Marks()
	if err := s.attendanceRepo.UpsertMarks(ctx, marks); err != nil {
		return 0, err
	}

	s.logger.Info().
		Int64("subjectID", req.SubjectID).
		Time("date", day).
		Int("marks", len(marks)).
		Msg("Attendance recorded")
	return len(marks), nil
}

// GetClassAttendance lists a subject's marks for one day (faculty view)
func (s *AttendanceService) GetClassAttendance(ctx context.Context, subjectID int64, date string) ([]models.AttendanceMark, error) {
	if _, err := s.subjectRepo.GetSubjectByID(ctx, subjectID); err != nil {
		return nil, err
	}

	day, err := helpers.ParseDate(date)
	if err != nil {
		return nil, apperrors.NewBadRequestError("date must look like 2024-01-10")
	}
	return s.attendanceRepo.GetSubjectMarksForDate(ctx, subjectID, day)
}

// GetStudentSummary aggregates a student's attendance percentage,
// overall and per subject, over an optional subject and date filter.
func (s *AttendanceService) GetStudentSummary(ctx context.Context, studentID int64, query *dto.AttendanceQueryRequest) (*dto.AttendanceSummaryResponse, error) {
	if _, err := s.studentRepo.GetStudentByID(ctx, studentID); err != nil {
		return nil, err
	}

	var from, to *time.Time
	if query.StartDate != "" {
		day, err := helpers.ParseDate(query.StartDate)
		if err != nil {
			return nil, apperrors.NewBadRequestError("startDate must look like 2024-01-10")
		}
		from = &day
	}
	if query.EndDate != "" {
		day, err := helpers.ParseDate(query.EndDate)
		if err != nil {
			return nil, apperrors.NewBadRequestError("endDate must look like 2024-01-10")
		}
		to = &day
	}

	marks, err := s.attendanceRepo.GetStudentMarks(ctx, studentID, query.SubjectID, from, to)
	if err != nil {
		return nil, err
	}

	response := &dto.AttendanceSummaryResponse{
		Overall: attendance.Summarize(marks),
	}
	if query.SubjectID == 0 {
		response.BySubject = attendance.SummarizeBySubject(marks)
	}
	return response, nil
}
