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
)

// FeeRepository handles fee structure and payment database operations
type FeeRepository struct {
	db *pgxpool.Pool
	sb squirrel.StatementBuilderType
}

// NewFeeRepository creates a new FeeRepository
func NewFeeRepository(db *pgxpool.Pool) *FeeRepository {
	return &FeeRepository{
		db: db,
		sb: squirrel.StatementBuilder.PlaceholderFormat(squirrel.Dollar),
	}
}

const feeStructureColumns = "id, program, semester, academic_year, amount, due_date, created_at, updated_at"

func scanFeeStructure(row pgx.Row) (*models.FeeStructure, error) {
	var f models.FeeStructure
	err := row.Scan(
		&f.ID, &f.Program, &f.Semester, &f.AcademicYear, &f.Amount, &f.DueDate,
		&f.CreatedAt, &f.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}
	return &f, nil
}

// CreateFeeStructure inserts a fee structure
func (r *FeeRepository) CreateFeeStructure(ctx context.Context, fee *models.FeeStructure) (int64, error) {
	sql, args, err := r.sb.Insert("fee_structures").
		Columns("program", "semester", "academic_year", "amount", "due_date").
		Values(fee.Program, fee.Semester, fee.AcademicYear, fee.Amount, fee.DueDate).
		Suffix("RETURNING id").
		ToSql()
	if err != nil {
		return 0, fmt.Errorf("failed to build create fee structure query: %w", err)
	}

	var id int64
	if err := r.db.QueryRow(ctx, sql, args...).Scan(&id); err != nil {
		return 0, fmt.Errorf("error inserting fee structure: %w", err)
	}
	return id, nil
}

// GetFeeStructureByID retrieves a fee structure by ID
func (r *FeeRepository) GetFeeStructureByID(ctx context.Context, id int64) (*models.FeeStructure, error) {
	sql, args, err := r.sb.Select(feeStructureColumns).
		From("fee_structures").
		Where(squirrel.Eq{"id": id}).
		Limit(1).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("failed to build get fee structure query: %w", err)
	}

	fee, err := scanFeeStructure(r.db.QueryRow(ctx, sql, args...))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.ErrFeeStructureNotFound
		}
		return nil, fmt.Errorf("error querying fee structure ID=%d: %w", id, err)
	}
	return fee, nil
}

// GetFeeStructures lists structures matching a program, semester and year
func (r *FeeRepository) GetFeeStructures(ctx context.Context, program string, semester int, academicYear string) ([]models.FeeStructure, error) {
	builder := r.sb.Select(feeStructureColumns).
		From("fee_structures").
		OrderBy("academic_year DESC", "semester ASC")
	if program != "" {
		builder = builder.Where(squirrel.Eq{"program": program})
	}
	if semester > 0 {
		builder = builder.Where(squirrel.Eq{"semester": semester})
	}
	if academicYear != "" {
		builder = builder.Where(squirrel.Eq{"academic_year": academicYear})
	}

	sql, args, err := builder.ToSql()
	if err != nil {
		return nil, fmt.Errorf("failed to build list fee structures query: %w", err)
	}

	rows, err := r.db.Query(ctx, sql, args...)
	if err != nil {
		return nil, fmt.Errorf("failed to query fee structures: %w", err)
	}
	defer rows.Close()

	var fees []models.FeeStructure
	for rows.Next() {
		fee, err := scanFeeStructure(rows)
		if err != nil {
			return nil, fmt.Errorf("failed to scan fee structure row: %w", err)
		}
		fees = append(fees, *fee)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating fee structure rows: %w", err)
	}

	return fees, nil
}

// RecordPayment inserts a payment against a fee structure
func (r *FeeRepository) RecordPayment(ctx context.Context, payment *models.FeePayment) (int64, error) {
	sql, args, err := r.sb.Insert("fee_payments").
		Columns("student_id", "fee_structure_id", "amount", "reference", "recorded_by", "paid_at").
		Values(payment.StudentID, payment.FeeStructureID, payment.Amount,
			payment.Reference, payment.RecordedBy, time.Now()).
		Suffix("RETURNING id").
		ToSql()
	if err != nil {
		return 0, fmt.Errorf("failed to build record payment query: %w", err)
	}

	var id int64
	if err := r.db.QueryRow(ctx, sql, args...).Scan(&id); err != nil {
		return 0, fmt.Errorf("error inserting fee payment: %w", err)
	}
	return id, nil
}

// GetStudentPayments retrieves every payment a student has made against
// one fee structure
func (r *FeeRepository) GetStudentPayments(ctx context.Context, studentID, feeStructureID int64) ([]models.FeePayment, error) {
	sql, args, err := r.sb.Select("id", "student_id", "fee_structure_id", "amount", "reference", "recorded_by", "paid_at").
		From("fee_payments").
		Where(squirrel.Eq{"student_id": studentID, "fee_structure_id": feeStructureID}).
		OrderBy("paid_at ASC").
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("failed to build student payments query: %w", err)
	}

	rows, err := r.db.Query(ctx, sql, args...)
	if err != nil {
		return nil, fmt.Errorf("failed to query fee payments: %w", err)
	}
	defer rows.Close()

	var payments []models.FeePayment
	for rows.Next() {
		var p models.FeePayment
		err := rows.Scan(&p.ID, &p.StudentID, &p.FeeStructureID, &p.Amount,
			&p.Reference, &p.RecordedBy, &p.PaidAt)
		if err != nil {
			return nil, fmt.Errorf("failed to scan fee payment row: %w", err)
		}
		payments = append(payments, p)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating fee payment rows: %w", err)
	}

	return payments, nil
}

// GetTotalPaid returns the sum a student has paid against one fee structure
func (r *FeeRepository) GetTotalPaid(ctx context.Context, studentID, feeStructureID int64) (int64, error) {
	sql, args, err := r.sb.Select("COALESCE(SUM(amount), 0)").
		From("fee_payments").
		Where(squirrel.Eq{"student_id": studentID, "fee_structure_id": feeStructureID}).
		ToSql()
	if err != nil {
		return 0, fmt.Errorf("failed to build total paid query: %w", err)
	}

	var total int64
	if err := r.db.QueryRow(ctx, sql, args...).Scan(&total); err != nil {
		return 0, fmt.Errorf("error summing payments for student ID=%d: %w", studentID, err)
	}
	return total, nil
}
