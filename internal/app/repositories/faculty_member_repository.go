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

// FacultyMemberRepository handles faculty member database operations
type FacultyMemberRepository struct {
	db *pgxpool.Pool
	sb squirrel.StatementBuilderType
}

// NewFacultyMemberRepository creates a new FacultyMemberRepository
func NewFacultyMemberRepository(db *pgxpool.Pool) *FacultyMemberRepository {
	return &FacultyMemberRepository{
		db: db,
		sb: squirrel.StatementBuilder.PlaceholderFormat(squirrel.Dollar),
	}
}

func facultyMemberSelect(sb squirrel.StatementBuilderType) squirrel.SelectBuilder {
	return sb.Select(
		"f.id", "f.user_id", "f.employee_id", "f.designation", "f.department",
		"f.created_at", "f.updated_at",
		"u.email", "u.first_name", "u.last_name", "u.role", "u.is_active",
	).
		From("faculty_members f").
		Join("users u ON f.user_id = u.id")
}

func scanFacultyMember(row pgx.Row) (*models.FacultyMember, error) {
	var f models.FacultyMember
	var u models.User
	err := row.Scan(
		&f.ID, &f.UserID, &f.EmployeeID, &f.Designation, &f.Department,
		&f.CreatedAt, &f.UpdatedAt,
		&u.Email, &u.FirstName, &u.LastName, &u.Role, &u.IsActive,
	)
	if err != nil {
		return nil, err
	}
	u.ID = f.UserID
	f.User = &u
	return &f, nil
}

// CreateFacultyMemberTx inserts a faculty member within a transaction
func (r *FacultyMemberRepository) CreateFacultyMemberTx(ctx context.Context, tx pgx.Tx, member *models.FacultyMember) (int64, error) {
	sql, args, err := r.sb.Insert("faculty_members").
		Columns("user_id", "employee_id", "designation", "department").
		Values(member.UserID, member.EmployeeID, member.Designation, member.Department).
		Suffix("RETURNING id").
		ToSql()
	if err != nil {
		return 0, fmt.Errorf("failed to build create faculty member query: %w", err)
	}

	var id int64
	err = tx.QueryRow(ctx, sql, args...).Scan(&id)
	if err != nil {
		if dberrors.IsDuplicateConstraintError(err, "faculty_members_employee_id_key") {
			return 0, apperrors.ErrEmployeeIDAlreadyExists
		}
		return 0, fmt.Errorf("error inserting faculty member: %w", err)
	}
	return id, nil
}

// GetFacultyMemberByID retrieves a faculty member with their user row
func (r *FacultyMemberRepository) GetFacultyMemberByID(ctx context.Context, id int64) (*models.FacultyMember, error) {
	sql, args, err := facultyMemberSelect(r.sb).
		Where(squirrel.Eq{"f.id": id}).
		Limit(1).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("failed to build get faculty member query: %w", err)
	}

	member, err := scanFacultyMember(r.db.QueryRow(ctx, sql, args...))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.ErrFacultyMemberNotFound
		}
		return nil, fmt.Errorf("error querying faculty member ID=%d: %w", id, err)
	}
	return member, nil
}

// GetFacultyMemberByUserID retrieves the record owned by a user
func (r *FacultyMemberRepository) GetFacultyMemberByUserID(ctx context.Context, userID int64) (*models.FacultyMember, error) {
	sql, args, err := facultyMemberSelect(r.sb).
		Where(squirrel.Eq{"f.user_id": userID}).
		Limit(1).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("failed to build get faculty member query: %w", err)
	}

	member, err := scanFacultyMember(r.db.QueryRow(ctx, sql, args...))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.ErrFacultyMemberNotFound
		}
		return nil, fmt.Errorf("error querying faculty member by user ID=%d: %w", userID, err)
	}
	return member, nil
}

// GetAllFacultyMembers lists faculty members, optionally by department
func (r *FacultyMemberRepository) GetAllFacultyMembers(ctx context.Context, department string) ([]models.FacultyMember, error) {
	builder := facultyMemberSelect(r.sb).OrderBy("f.employee_id ASC")
	if department != "" {
		builder = builder.Where(squirrel.Eq{"f.department": department})
	}

	sql, args, err := builder.ToSql()
	if err != nil {
		return nil, fmt.Errorf("failed to build list faculty members query: %w", err)
	}

	rows, err := r.db.Query(ctx, sql, args...)
	if err != nil {
		return nil, fmt.Errorf("failed to query faculty members: %w", err)
	}
	defer rows.Close()

	var members []models.FacultyMember
	for rows.Next() {
		member, err := scanFacultyMember(rows)
		if err != nil {
			return nil, fmt.Errorf("failed to scan faculty member row: %w", err)
		}
		members = append(members, *member)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating faculty member rows: %w", err)
	}

	return members, nil
}

// UpdateFacultyMember updates designation and department
func (r *FacultyMemberRepository) UpdateFacultyMember(ctx context.Context, member *models.FacultyMember) error {
	sql, args, err := r.sb.Update("faculty_members").
		SetMap(map[string]interface{}{
			"designation": member.Designation,
			"department":  member.Department,
			"updated_at":  time.Now(),
		}).
		Where(squirrel.Eq{"id": member.ID}).
		ToSql()
	if err != nil {
		return fmt.Errorf("failed to build update faculty member query: %w", err)
	}

	cmdTag, err := r.db.Exec(ctx, sql, args...)
	if err != nil {
		return fmt.Errorf("error updating faculty member ID=%d: %w", member.ID, err)
	}
	if cmdTag.RowsAffected() == 0 {
		return apperrors.ErrFacultyMemberNotFound
	}
	return nil
}

// DeleteFacultyMember removes a faculty member record
func (r *FacultyMemberRepository) DeleteFacultyMember(ctx context.Context, id int64) error {
	sql, args, err := r.sb.Delete("faculty_members").
		Where(squirrel.Eq{"id": id}).
		ToSql()
	if err != nil {
		return fmt.Errorf("failed to build delete faculty member query: %w", err)
	}

	cmdTag, err := r.db.Exec(ctx, sql, args...)
	if err != nil {
		return fmt.Errorf("error deleting faculty member ID=%d: %w", id, err)
	}
	if cmdTag.RowsAffected() == 0 {
		return apperrors.ErrFacultyMemberNotFound
	}
	return nil
}
