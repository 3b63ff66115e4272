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
)

// SubjectRepository handles subject database operations
type SubjectRepository struct {
	db *pgxpool.Pool
	sb squirrel.StatementBuilderType
}

// NewSubjectRepository creates a new SubjectRepository
func NewSubjectRepository(db *pgxpool.Pool) *SubjectRepository {
	return &SubjectRepository{
		db: db,
		sb: squirrel.StatementBuilder.PlaceholderFormat(squirrel.Dollar),
	}
}

const subjectColumns = "id, code, name, credits, semester, program, created_at, updated_at"

func scanSubject(row pgx.Row) (*models.Subject, error) {
	var s models.Subject
	err := row.Scan(
		&s.ID, &s.Code, &s.Name, &s.Credits, &s.Semester, &s.Program,
		&s.CreatedAt, &s.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}
	return &s, nil
}

// CreateSubject inserts a new subject
func (r *SubjectRepository) CreateSubject(ctx context.Context, subject *models.Subject) (int64, error) {
	sql, args, err := r.sb.Insert("subjects").
		Columns("code", "name", "credits", "semester", "program").
		Values(subject.Code, subject.Name, subject.Credits, subject.Semester, subject.Program).
		Suffix("RETURNING id").
		ToSql()
	if err != nil {
		return 0, fmt.Errorf("failed to build create subject query: %w", err)
	}

	var id int64
	err = r.db.QueryRow(ctx, sql, args...).Scan(&id)
	if err != nil {
		if dberrors.IsDuplicateConstraintError(err, "subjects_code_key") {
			return 0, apperrors.ErrSubjectAlreadyExists
		}
		return 0, fmt.Errorf("error inserting subject: %w", err)
	}
	return id, nil
}

// GetSubjectByID retrieves a subject by ID
func (r *SubjectRepository) GetSubjectByID(ctx context.Context, id int64) (*models.Subject, error) {
	sql, args, err := r.sb.Select(subjectColumns).
		From("subjects").
		Where(squirrel.Eq{"id": id}).
		Limit(1).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("failed to build get subject query: %w", err)
	}

	subject, err := scanSubject(r.db.QueryRow(ctx, sql, args...))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.ErrSubjectNotFound
		}
		return nil, fmt.Errorf("error querying subject ID=%d: %w", id, err)
	}
	return subject, nil
}

// GetSubjectsByIDs retrieves a set of subjects keyed by ID
func (r *SubjectRepository) GetSubjectsByIDs(ctx context.Context, ids []int64) (map[int64]models.Subject, error) {
	subjects := make(map[int64]models.Subject, len(ids))
	if len(ids) == 0 {
		return subjects, nil
	}

	sql, args, err := r.sb.Select(subjectColumns).
		From("subjects").
		Where(squirrel.Eq{"id": ids}).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("failed to build get subjects query: %w", err)
	}

	rows, err := r.db.Query(ctx, sql, args...)
	if err != nil {
		return nil, fmt.Errorf("failed to query subjects: %w", err)
	}
	defer rows.Close()

	for rows.Next() {
		subject, err := scanSubject(rows)
		if err != nil {
			return nil, fmt.Errorf("failed to scan subject row: %w", err)
		}
		subjects[subject.ID] = *subject
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating subject rows: %w", err)
	}

	return subjects, nil
}

// GetAllSubjects lists subjects filtered by program and semester
func (r *SubjectRepository) GetAllSubjects(ctx context.Context, program string, semester int) ([]models.Subject, error) {
	builder := r.sb.Select(subjectColumns).
		From("subjects").
		OrderBy("semester ASC", "code ASC")
	if program != "" {
		builder = builder.Where(squirrel.Eq{"program": program})
	}
	if semester > 0 {
		builder = builder.Where(squirrel.Eq{"semester": semester})
	}

	sql, args, err := builder.ToSql()
	if err != nil {
		return nil, fmt.Errorf("failed to build list subjects query: %w", err)
	}

	rows, err := r.db.Query(ctx, sql, args...)
	if err != nil {
		return nil, fmt.Errorf("failed to query subjects: %w", err)
	}
	defer rows.Close()

	var subjects []models.Subject
	for rows.Next() {
		subject, err := scanSubject(rows)
		if err != nil {
			return nil, fmt.Errorf("failed to scan subject row: %w", err)
		}
		subjects = append(subjects, *subject)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating subject rows: %w", err)
	}

	return subjects, nil
}

// UpdateSubject updates name, semester and program. Credits are never
// touched here: changing them would silently rewrite every SGPA computed
// against the subject.
func (r *SubjectRepository) UpdateSubject(ctx context.Context, subject *models.Subject) error {
	sql, args, err := r.sb.Update("subjects").
		SetMap(map[string]interface{}{
			"name":       subject.Name,
			"semester":   subject.Semester,
			"program":    subject.Program,
			"updated_at": time.Now(),
		}).
		Where(squirrel.Eq{"id": subject.ID}).
		ToSql()
	if err != nil {
		return fmt.Errorf("failed to build update subject query: %w", err)
	}

	cmdTag, err := r.db.Exec(ctx, sql, args...)
	if err != nil {
		return fmt.Errorf("error updating subject ID=%d: %w", subject.ID, err)
	}
	if cmdTag.RowsAffected() == 0 {
		return apperrors.ErrSubjectNotFound
	}
	return nil
}

// UpdateSubjectCredits rewrites the credits value. The service only calls
// this while the subject has no graded results.
func (r *SubjectRepository) UpdateSubjectCredits(ctx context.Context, id int64, credits int) error {
	sql, args, err := r.sb.Update("subjects").
		Set("credits", credits).
		Set("updated_at", time.Now()).
		Where(squirrel.Eq{"id": id}).
		ToSql()
	if err != nil {
		return fmt.Errorf("failed to build update subject credits query: %w", err)
	}

	cmdTag, err := r.db.Exec(ctx, sql, args...)
	if err != nil {
		return fmt.Errorf("error updating credits for subject ID=%d: %w", id, err)
	}
	if cmdTag.RowsAffected() == 0 {
		return apperrors.ErrSubjectNotFound
	}
	return nil
}

// HasMarksEntries reports whether any marks have been entered for the subject
func (r *SubjectRepository) HasMarksEntries(ctx context.Context, subjectID int64) (bool, error) {
	sql, args, err := r.sb.Select("1").
		From("marks_entries").
		Where(squirrel.Eq{"subject_id": subjectID}).
		Limit(1).
		ToSql()
	if err != nil {
		return false, fmt.Errorf("failed to build marks existence query: %w", err)
	}

	var one int
	err = r.db.QueryRow(ctx, sql, args...).Scan(&one)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return false, nil
		}
		return false, fmt.Errorf("error checking marks for subject ID=%d: %w", subjectID, err)
	}
	return true, nil
}

// DeleteSubject removes a subject
func (r *SubjectRepository) DeleteSubject(ctx context.Context, id int64) error {
	sql, args, err := r.sb.Delete("subjects").
		Where(squirrel.Eq{"id": id}).
		ToSql()
	if err != nil {
		return fmt.Errorf("failed to build delete subject query: %w", err)
	}

	cmdTag, err := r.db.Exec(ctx, sql, args...)
	if err != nil {
		return fmt.Errorf("error deleting subject ID=%d: %w", id, err)
	}
	if cmdTag.RowsAffected() == 0 {
		return apperrors.ErrSubjectNotFound
	}
	return nil
}
