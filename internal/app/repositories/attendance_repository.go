package repositories

import (
	"context"
	"fmt"
	"time"

	"github.com/Masterminds/squirrel"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/okanserdaroglu/campushub/internal/app/models"
)

// AttendanceRepository handles attendance mark database operations
type AttendanceRepository struct {
	db *pgxpool.Pool
	sb squirrel.StatementBuilderType
}

// NewAttendanceRepository creates a new AttendanceRepository
func NewAttendanceRepository(db *pgxpool.Pool) *AttendanceRepository {
	return &AttendanceRepository{
		db: db,
		sb: squirrel.StatementBuilder.PlaceholderFormat(squirrel.Dollar),
	}
}

const attendanceColumns = "id, student_id, subject_id, mark_date, status, marked_by, created_at, updated_at"

func scanAttendanceMark(row pgx.Row) (*models.AttendanceMark, error) {
	var m models.AttendanceMark
	err := row.Scan(
		&m.ID, &m.StudentID, &m.SubjectID, &m.Date, &m.Status, &m.MarkedBy,
		&m.CreatedAt, &m.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}
	return &m, nil
}

// UpsertMarks writes a batch of attendance marks in one transaction. The
// unique index on (student_id, subject_id, mark_date) owns the one-mark-
// per-day invariant; re-marking a tuple overwrites the earlier status
// (last write wins).
func (r *AttendanceRepository) UpsertMarks(ctx context.Context, marks []models.AttendanceMark) error {
	if len(marks) == 0 {
		return nil
	}

	tx, err := r.db.Begin(ctx)
	if err != nil {
		return fmt.Errorf("failed to begin attendance transaction: %w", err)
	}
	defer func() { _ = tx.Rollback(ctx) }()

	const upsert = `
		INSERT INTO attendance_marks (student_id, subject_id, mark_date, status, marked_by)
		VALUES ($1, $2, $3, $4, $5)
		ON CONFLICT (student_id, subject_id, mark_date)
		DO UPDATE SET status = EXCLUDED.status, marked_by = EXCLUDED.marked_by, updated_at = now()`

	for _, m := range marks {
		if _, err := tx.Exec(ctx, upsert, m.StudentID, m.SubjectID, m.Date, m.Status, m.MarkedBy); err != nil {
			return fmt.Errorf("error upserting attendance mark for student ID=%d: %w", m.StudentID, err)
		}
	}

	if err := tx.Commit(ctx); err != nil {
		return fmt.Errorf("failed to commit attendance transaction: %w", err)
	}
	return nil
}

// GetStudentMarks retrieves a student's marks, optionally filtered by
// subject and an inclusive date range
func (r *AttendanceRepository) GetStudentMarks(ctx context.Context, studentID int64, subjectID int64, from, to *time.Time) ([]models.AttendanceMark, error) {
	builder := r.sb.Select(attendanceColumns).
		From("attendance_marks").
		Where(squirrel.Eq{"student_id": studentID}).
		OrderBy("mark_date ASC", "subject_id ASC")
	if subjectID > 0 {
		builder = builder.Where(squirrel.Eq{"subject_id": subjectID})
	}
	if from != nil {
		builder = builder.Where(squirrel.GtOrEq{"mark_date": *from})
	}
	if to != nil {
		builder = builder.Where(squirrel.LtOrEq{"mark_date": *to})
	}

	sql, args, err := builder.ToSql()
	if err != nil {
		return nil, fmt.Errorf("failed to build student attendance query: %w", err)
	}

	return r.queryMarks(ctx, sql, args)
}

// GetSubjectMarksForDate retrieves every mark recorded for a subject on a day
func (r *AttendanceRepository) GetSubjectMarksForDate(ctx context.Context, subjectID int64, date time.Time) ([]models.AttendanceMark, error) {
	sql, args, err := r.sb.Select(attendanceColumns).
		From("attendance_marks").
		Where(squirrel.Eq{"subject_id": subjectID, "mark_date": date}).
		OrderBy("student_id ASC").
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("failed to build subject attendance query: %w", err)
	}

	return r.queryMarks(ctx, sql, args)
}

func (r *AttendanceRepository) queryMarks(ctx context.Context, sql string, args []interface{}) ([]models.AttendanceMark, error) {
	rows, err := r.db.Query(ctx, sql, args...)
	if err != nil {
		return nil, fmt.Errorf("failed to query attendance marks: %w", err)
	}
	defer rows.Close()

	var marks []models.AttendanceMark
	for rows.Next() {
		mark, err := scanAttendanceMark(rows)
		if err != nil {
			return nil, fmt.Errorf("failed to scan attendance mark row: %w", err)
		}
		marks = append(marks, *mark)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating attendance mark rows: %w", err)
	}

	return marks, nil
}
