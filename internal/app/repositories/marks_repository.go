package repositories

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/Masterminds/squirrel"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/okanserdaroglu/campushub/internal/app/models"
	"github.com/okanserdaroglu/campushub/internal/pkg/apperrors"
	"github.com/okanserdaroglu/campushub/internal/pkg/dberrors"
	"github.com/okanserdaroglu/campushub/internal/pkg/logger"
)

// MarksRepository handles marks entry database operations
type MarksRepository struct {
	db *pgxpool.Pool
	sb squirrel.StatementBuilderType
}

// NewMarksRepository creates a new MarksRepository
func NewMarksRepository(db *pgxpool.Pool) *MarksRepository {
	return &MarksRepository{
		db: db,
		sb: squirrel.StatementBuilder.PlaceholderFormat(squirrel.Dollar),
	}
}

func marksSelect(sb squirrel.StatementBuilderType) squirrel.SelectBuilder {
	return sb.Select(
		"m.id", "m.student_id", "m.subject_id", "m.semester", "m.academic_year",
		"m.internal_marks", "m.external_marks", "m.remarks", "m.is_published",
		"m.entered_by", "m.created_at", "m.updated_at",
		"s.code", "s.name", "s.credits", "s.semester", "s.program",
	).
		From("marks_entries m").
		Join("subjects s ON m.subject_id = s.id")
}

func scanMarksEntry(row pgx.Row) (*models.MarksEntry, error) {
	var m models.MarksEntry
	var s models.Subject
	err := row.Scan(
		&m.ID, &m.StudentID, &m.SubjectID, &m.Semester, &m.AcademicYear,
		&m.InternalMarks, &m.ExternalMarks, &m.Remarks, &m.IsPublished,
		&m.EnteredBy, &m.CreatedAt, &m.UpdatedAt,
		&s.Code, &s.Name, &s.Credits, &s.Semester, &s.Program,
	)
	if err != nil {
		return nil, err
	}
	s.ID = m.SubjectID
	m.Subject = &s
	return &m, nil
}

// CreateMarksEntry inserts a new marks entry. One row per
// (student, subject, academic year); a second attempt in a later year is
// a fresh row, a second entry for the same year is rejected.
func (r *MarksRepository) CreateMarksEntry(ctx context.Context, entry *models.MarksEntry) (int64, error) {
	sql, args, err := r.sb.Insert("marks_entries").
		Columns("student_id", "subject_id", "semester", "academic_year",
			"internal_marks", "external_marks", "remarks", "entered_by").
		Values(entry.StudentID, entry.SubjectID, entry.Semester, entry.AcademicYear,
			entry.InternalMarks, entry.ExternalMarks, entry.Remarks, entry.EnteredBy).
		Suffix("RETURNING id").
		ToSql()
	if err != nil {
		return 0, fmt.Errorf("failed to build create marks entry query: %w", err)
	}

	var id int64
	err = r.db.QueryRow(ctx, sql, args...).Scan(&id)
	if err != nil {
		if dberrors.IsDuplicateConstraintError(err, "marks_entries_attempt_key") {
			return 0, apperrors.ErrMarksAlreadyEntered
		}
		return 0, fmt.Errorf("error inserting marks entry: %w", err)
	}
	return id, nil
}

// GetMarksEntryByID retrieves one entry with its subject
func (r *MarksRepository) GetMarksEntryByID(ctx context.Context, id int64) (*models.MarksEntry, error) {
	sql, args, err := marksSelect(r.sb).
		Where(squirrel.Eq{"m.id": id}).
		Limit(1).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("failed to build get marks entry query: %w", err)
	}

	entry, err := scanMarksEntry(r.db.QueryRow(ctx, sql, args...))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.ErrMarksEntryNotFound
		}
		return nil, fmt.Errorf("error querying marks entry ID=%d: %w", id, err)
	}
	return entry, nil
}

// UpdateMarksEntry rewrites the raw marks of an unpublished entry
func (r *MarksRepository) UpdateMarksEntry(ctx context.Context, entry *models.MarksEntry) error {
	sql, args, err := r.sb.Update("marks_entries").
		SetMap(map[string]interface{}{
			"internal_marks": entry.InternalMarks,
			"external_marks": entry.ExternalMarks,
			"remarks":        entry.Remarks,
			"updated_at":     time.Now(),
		}).
		Where(squirrel.Eq{"id": entry.ID}).
		ToSql()
	if err != nil {
		return fmt.Errorf("failed to build update marks entry query: %w", err)
	}

	cmdTag, err := r.db.Exec(ctx, sql, args...)
	if err != nil {
		return fmt.Errorf("error updating marks entry ID=%d: %w", entry.ID, err)
	}
	if cmdTag.RowsAffected() == 0 {
		return apperrors.ErrMarksEntryNotFound
	}
	return nil
}

// GetStudentMarks retrieves a student's entries, optionally limited to one
// semester and/or to published rows only
func (r *MarksRepository) GetStudentMarks(ctx context.Context, studentID int64, semester int, publishedOnly bool) ([]models.MarksEntry, error) {
	builder := marksSelect(r.sb).
		Where(squirrel.Eq{"m.student_id": studentID}).
		OrderBy("m.semester ASC", "s.code ASC")
	if semester > 0 {
		builder = builder.Where(squirrel.Eq{"m.semester": semester})
	}
	if publishedOnly {
		builder = builder.Where(squirrel.Eq{"m.is_published": true})
	}

	sql, args, err := builder.ToSql()
	if err != nil {
		return nil, fmt.Errorf("failed to build student marks query: %w", err)
	}

	return r.queryEntries(ctx, sql, args)
}

// GetSubjectMarks retrieves all entries for one subject and academic year
func (r *MarksRepository) GetSubjectMarks(ctx context.Context, subjectID int64, academicYear string) ([]models.MarksEntry, error) {
	builder := marksSelect(r.sb).
		Where(squirrel.Eq{"m.subject_id": subjectID}).
		OrderBy("m.student_id ASC")
	if academicYear != "" {
		builder = builder.Where(squirrel.Eq{"m.academic_year": academicYear})
	}

	sql, args, err := builder.ToSql()
	if err != nil {
		return nil, fmt.Errorf("failed to build subject marks query: %w", err)
	}

	return r.queryEntries(ctx, sql, args)
}

func (r *MarksRepository) queryEntries(ctx context.Context, sql string, args []interface{}) ([]models.MarksEntry, error) {
	rows, err := r.db.Query(ctx, sql, args...)
	if err != nil {
		return nil, fmt.Errorf("failed to query marks entries: %w", err)
	}
	defer rows.Close()

	var entries []models.MarksEntry
	for rows.Next() {
		entry, err := scanMarksEntry(rows)
		if err != nil {
			return nil, fmt.Errorf("failed to scan marks entry row: %w", err)
		}
		entries = append(entries, *entry)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating marks entry rows: %w", err)
	}

	return entries, nil
}

// PublishSubjectMarks marks every entry of a subject and academic year as
// published. Idempotent; republishing already-published rows changes nothing.
func (r *MarksRepository) PublishSubjectMarks(ctx context.Context, subjectID int64, academicYear string) (int64, error) {
	sql, args, err := r.sb.Update("marks_entries").
		Set("is_published", true).
		Set("updated_at", time.Now()).
		Where(squirrel.Eq{
			"subject_id":    subjectID,
			"academic_year": academicYear,
		}).
		ToSql()
	if err != nil {
		return 0, fmt.Errorf("failed to build publish marks query: %w", err)
	}

	cmdTag, err := r.db.Exec(ctx, sql, args...)
	if err != nil {
		return 0, fmt.Errorf("error publishing marks for subject ID=%d: %w", subjectID, err)
	}

	logger.Info().
		Int64("subjectId", subjectID).
		Str("academicYear", academicYear).
		Int64("rows", cmdTag.RowsAffected()).
		Msg("Published subject marks")
	return cmdTag.RowsAffected(), nil
}

// DeleteMarksEntry removes an entry
func (r *MarksRepository) DeleteMarksEntry(ctx context.Context, id int64) error {
	sql, args, err := r.sb.Delete("marks_entries").
		Where(squirrel.Eq{"id": id}).
		ToSql()
	if err != nil {
		return fmt.Errorf("failed to build delete marks entry query: %w", err)
	}

	cmdTag, err := r.db.Exec(ctx, sql, args...)
	if err != nil {
		return fmt.Errorf("error deleting marks entry ID=%d: %w", id, err)
	}
	if cmdTag.RowsAffected() == 0 {
		return apperrors.ErrMarksEntryNotFound
	}
	return nil
}
