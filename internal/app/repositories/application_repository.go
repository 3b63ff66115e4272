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

// ApplicationRepository handles admission application database operations
type ApplicationRepository struct {
	db *pgxpool.Pool
	sb squirrel.StatementBuilderType
}

// NewApplicationRepository creates a new ApplicationRepository
func NewApplicationRepository(db *pgxpool.Pool) *ApplicationRepository {
	return &ApplicationRepository{
		db: db,
		sb: squirrel.StatementBuilder.PlaceholderFormat(squirrel.Dollar),
	}
}

const applicationColumns = "id, first_name, last_name, email, phone, program, prev_school, prev_percent, status, decided_by, decided_at, created_at"

func scanApplication(row pgx.Row) (*models.Application, error) {
	var a models.Application
	err := row.Scan(
		&a.ID, &a.FirstName, &a.LastName, &a.Email, &a.Phone, &a.Program,
		&a.PrevSchool, &a.PrevPercent, &a.Status, &a.DecidedBy, &a.DecidedAt,
		&a.CreatedAt,
	)
	if err != nil {
		return nil, err
	}
	return &a, nil
}

// CreateApplication inserts a new application in Pending state
func (r *ApplicationRepository) CreateApplication(ctx context.Context, app *models.Application) (int64, error) {
	sql, args, err := r.sb.Insert("applications").
		Columns("first_name", "last_name", "email", "phone", "program", "prev_school", "prev_percent", "status").
		Values(app.FirstName, app.LastName, app.Email, app.Phone, app.Program,
			app.PrevSchool, app.PrevPercent, models.ApplicationPending).
		Suffix("RETURNING id").
		ToSql()
	if err != nil {
		return 0, fmt.Errorf("failed to build create application query: %w", err)
	}

	var id int64
	if err := r.db.QueryRow(ctx, sql, args...).Scan(&id); err != nil {
		return 0, fmt.Errorf("error inserting application: %w", err)
	}
	return id, nil
}

// GetApplicationByID retrieves an application by ID
func (r *ApplicationRepository) GetApplicationByID(ctx context.Context, id int64) (*models.Application, error) {
	sql, args, err := r.sb.Select(applicationColumns).
		From("applications").
		Where(squirrel.Eq{"id": id}).
		Limit(1).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("failed to build get application query: %w", err)
	}

	app, err := scanApplication(r.db.QueryRow(ctx, sql, args...))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.ErrApplicationNotFound
		}
		return nil, fmt.Errorf("error querying application ID=%d: %w", id, err)
	}
	return app, nil
}

// GetAllApplications lists applications filtered by status and program
// with pagination
func (r *ApplicationRepository) GetAllApplications(ctx context.Context, status, program string, page, pageSize int) ([]models.Application, int64, error) {
	conditions := squirrel.And{}
	if status != "" {
		conditions = append(conditions, squirrel.Eq{"status": status})
	}
	if program != "" {
		conditions = append(conditions, squirrel.Eq{"program": program})
	}

	countBuilder := r.sb.Select("COUNT(*)").From("applications")
	if len(conditions) > 0 {
		countBuilder = countBuilder.Where(conditions)
	}
	countSQL, countArgs, err := countBuilder.ToSql()
	if err != nil {
		return nil, 0, fmt.Errorf("failed to build count applications query: %w", err)
	}

	var total int64
	if err := r.db.QueryRow(ctx, countSQL, countArgs...).Scan(&total); err != nil {
		return nil, 0, fmt.Errorf("error counting applications: %w", err)
	}

	builder := r.sb.Select(applicationColumns).
		From("applications").
		OrderBy("created_at DESC").
		Limit(uint64(pageSize)).
		Offset(uint64((page - 1) * pageSize))
	if len(conditions) > 0 {
		builder = builder.Where(conditions)
	}

	sql, args, err := builder.ToSql()
	if err != nil {
		return nil, 0, fmt.Errorf("failed to build list applications query: %w", err)
	}

	rows, err := r.db.Query(ctx, sql, args...)
	if err != nil {
		return nil, 0, fmt.Errorf("failed to query applications: %w", err)
	}
	defer rows.Close()

	var apps []models.Application
	for rows.Next() {
		app, err := scanApplication(rows)
		if err != nil {
			return nil, 0, fmt.Errorf("failed to scan application row: %w", err)
		}
		apps = append(apps, *app)
	}
	if err := rows.Err(); err != nil {
		return nil, 0, fmt.Errorf("error iterating application rows: %w", err)
	}

	return apps, total, nil
}

// DecideApplicationTx transitions a Pending application to Approved or
// Rejected within a transaction. The WHERE status = 'Pending' guard makes
// a second decision on the same application a no-op that surfaces as
// ErrApplicationNotPending.
func (r *ApplicationRepository) DecideApplicationTx(ctx context.Context, tx pgx.Tx, id int64, status models.ApplicationStatus, decidedBy int64) error {
	sql, args, err := r.sb.Update("applications").
		SetMap(map[string]interface{}{
			"status":     status,
			"decided_by": decidedBy,
			"decided_at": time.Now(),
		}).
		Where(squirrel.Eq{"id": id, "status": models.ApplicationPending}).
		ToSql()
	if err != nil {
		return fmt.Errorf("failed to build decide application query: %w", err)
	}

	cmdTag, err := tx.Exec(ctx, sql, args...)
	if err != nil {
		return fmt.Errorf("error deciding application ID=%d: %w", id, err)
	}
	if cmdTag.RowsAffected() == 0 {
		return apperrors.ErrApplicationNotPending
	}
	return nil
}
