package repositories

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/Masterminds/squirrel"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/okanserdaroglu/campushub/internal/app/models"
	"github.com/okanserdaroglu/campushub/internal/pkg/apperrors"
	"github.com/okanserdaroglu/campushub/internal/pkg/dberrors"
	"github.com/okanserdaroglu/campushub/internal/pkg/logger"
)

// StudentRepository handles student database operations
type StudentRepository struct {
	db *pgxpool.Pool
	sb squirrel.StatementBuilderType
}

// NewStudentRepository creates a new StudentRepository
func NewStudentRepository(db *pgxpool.Pool) *StudentRepository {
	return &StudentRepository{
		db: db,
		sb: squirrel.StatementBuilder.PlaceholderFormat(squirrel.Dollar),
	}
}

func studentSelect(sb squirrel.StatementBuilderType) squirrel.SelectBuilder {
	return sb.Select(
		"s.id", "s.user_id", "s.roll_number", "s.program", "s.semester",
		"s.admission_year", "s.guardian_name", "s.guardian_phone",
		"s.created_at", "s.updated_at",
		"u.email", "u.first_name", "u.last_name", "u.role", "u.is_active",
	).
		From("students s").
		Join("users u ON s.user_id = u.id")
}

func scanStudent(row pgx.Row) (*models.Student, error) {
	var s models.Student
	var u models.User
	err := row.Scan(
		&s.ID, &s.UserID, &s.RollNumber, &s.Program, &s.Semester,
		&s.AdmissionYear, &s.GuardianName, &s.GuardianPhone,
		&s.CreatedAt, &s.UpdatedAt,
		&u.Email, &u.FirstName, &u.LastName, &u.Role, &u.IsActive,
	)
	if err != nil {
		return nil, err
	}
	u.ID = s.UserID
	s.User = &u
	return &s, nil
}

// CreateStudentTx inserts a student row within a transaction. The user
// row must already exist (see ApplicationService approval flow).
func (r *StudentRepository) CreateStudentTx(ctx context.Context, tx pgx.Tx, student *models.Student) (int64, error) {
	sql, args, err := r.sb.Insert("students").
		Columns("user_id", "roll_number", "program", "semester", "admission_year", "guardian_name", "guardian_phone").
		Values(student.UserID, student.RollNumber, student.Program, student.Semester,
			student.AdmissionYear, student.GuardianName, student.GuardianPhone).
		Suffix("RETURNING id").
		ToSql()
	if err != nil {
		return 0, fmt.Errorf("failed to build create student query: %w", err)
	}

	var id int64
	err = tx.QueryRow(ctx, sql, args...).Scan(&id)
	if err != nil {
		if dberrors.IsDuplicateConstraintError(err, "students_roll_number_key") {
			return 0, apperrors.ErrRollNumberAlreadyExists
		}
		return 0, fmt.Errorf("error inserting student: %w", err)
	}
	return id, nil
}

// GetStudentByID retrieves a student with their user row
func (r *StudentRepository) GetStudentByID(ctx context.Context, id int64) (*models.Student, error) {
	sql, args, err := studentSelect(r.sb).
		Where(squirrel.Eq{"s.id": id}).
		Limit(1).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("failed to build get student query: %w", err)
	}

	student, err := scanStudent(r.db.QueryRow(ctx, sql, args...))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.ErrStudentNotFound
		}
		logger.Error().Err(err).Int64("studentID", id).Msg("Error querying student by ID")
		return nil, fmt.Errorf("error querying student ID=%d: %w", id, err)
	}
	return student, nil
}

// GetStudentByUserID retrieves the student record owned by a user
func (r *StudentRepository) GetStudentByUserID(ctx context.Context, userID int64) (*models.Student, error) {
	sql, args, err := studentSelect(r.sb).
		Where(squirrel.Eq{"s.user_id": userID}).
		Limit(1).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("failed to build get student query: %w", err)
	}

	student, err := scanStudent(r.db.QueryRow(ctx, sql, args...))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.ErrStudentNotFound
		}
		return nil, fmt.Errorf("error querying student by user ID=%d: %w", userID, err)
	}
	return student, nil
}

// GetAllStudents retrieves students with filtering and pagination
func (r *StudentRepository) GetAllStudents(ctx context.Context, program, search string, semester, page, pageSize int) ([]models.Student, int64, error) {
	where := squirrel.And{}
	if program != "" {
		where = append(where, squirrel.Eq{"s.program": program})
	}
	if semester > 0 {
		where = append(where, squirrel.Eq{"s.semester": semester})
	}
	if search != "" {
		pattern := "%" + strings.TrimSpace(search) + "%"
		where = append(where, squirrel.Or{
			squirrel.ILike{"s.roll_number": pattern},
			squirrel.ILike{"u.first_name": pattern},
			squirrel.ILike{"u.last_name": pattern},
		})
	}

	countSql, countArgs, err := r.sb.Select("COUNT(*)").
		From("students s").
		Join("users u ON s.user_id = u.id").
		Where(where).
		ToSql()
	if err != nil {
		return nil, 0, fmt.Errorf("failed to build count students query: %w", err)
	}

	var total int64
	if err := r.db.QueryRow(ctx, countSql, countArgs...).Scan(&total); err != nil {
		return nil, 0, fmt.Errorf("failed to count students: %w", err)
	}
	if total == 0 {
		return []models.Student{}, 0, nil
	}

	offset := uint64((page - 1) * pageSize)
	sql, args, err := studentSelect(r.sb).
		Where(where).
		OrderBy("s.roll_number ASC").
		Limit(uint64(pageSize)).
		Offset(offset).
		ToSql()
	if err != nil {
		return nil, 0, fmt.Errorf("failed to build get students query: %w", err)
	}

	rows, err := r.db.Query(ctx, sql, args...)
	if err != nil {
		return nil, 0, fmt.Errorf("failed to query students: %w", err)
	}
	defer rows.Close()

	var students []models.Student
	for rows.Next() {
		student, err := scanStudent(rows)
		if err != nil {
			return nil, 0, fmt.Errorf("failed to scan student row: %w", err)
		}
		students = append(students, *student)
	}
	if err := rows.Err(); err != nil {
		return nil, 0, fmt.Errorf("error iterating student rows: %w", err)
	}

	return students, total, nil
}

// UpdateStudent updates the mutable parts of a student record
func (r *StudentRepository) UpdateStudent(ctx context.Context, student *models.Student) error {
	sql, args, err := r.sb.Update("students").
		SetMap(map[string]interface{}{
			"program":        student.Program,
			"semester":       student.Semester,
			"guardian_name":  student.GuardianName,
			"guardian_phone": student.GuardianPhone,
			"updated_at":     time.Now(),
		}).
		Where(squirrel.Eq{"id": student.ID}).
		ToSql()
	if err != nil {
		return fmt.Errorf("failed to build update student query: %w", err)
	}

	cmdTag, err := r.db.Exec(ctx, sql, args...)
	if err != nil {
		return fmt.Errorf("error updating student ID=%d: %w", student.ID, err)
	}
	if cmdTag.RowsAffected() == 0 {
		return apperrors.ErrStudentNotFound
	}
	return nil
}

// DeleteStudent removes a student record (the user row remains and is
// deactivated by the service layer).
func (r *StudentRepository) DeleteStudent(ctx context.Context, id int64) error {
	sql, args, err := r.sb.Delete("students").
		Where(squirrel.Eq{"id": id}).
		ToSql()
	if err != nil {
		return fmt.Errorf("failed to build delete student query: %w", err)
	}

	cmdTag, err := r.db.Exec(ctx, sql, args...)
	if err != nil {
		return fmt.Errorf("error deleting student ID=%d: %w", id, err)
	}
	if cmdTag.RowsAffected() == 0 {
		return apperrors.ErrStudentNotFound
	}

	logger.Info().Int64("studentID", id).Msg("Student deleted")
	return nil
}

// NextRollSequenceTx computes the next roll number sequence for a
// year/program prefix inside the caller's transaction. Two concurrent
// transactions can still read the same count; the roll number unique
// constraint arbitrates and the loser retries with a fresh sequence.
func (r *StudentRepository) NextRollSequenceTx(ctx context.Context, tx pgx.Tx, prefix string) (int, error) {
	sql, args, err := r.sb.Select("COUNT(*) + 1").
		From("students").
		Where(squirrel.Like{"roll_number": prefix + "%"}).
		ToSql()
	if err != nil {
		return 0, fmt.Errorf("failed to build roll sequence query: %w", err)
	}

	var next int
	if err := tx.QueryRow(ctx, sql, args...).Scan(&next); err != nil {
		return 0, fmt.Errorf("error computing roll sequence for prefix %s: %w", prefix, err)
	}
	return next, nil
}
