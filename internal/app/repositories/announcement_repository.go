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

// AnnouncementRepository handles announcement database operations
type AnnouncementRepository struct {
	db *pgxpool.Pool
	sb squirrel.StatementBuilderType
}

// NewAnnouncementRepository creates a new AnnouncementRepository
func NewAnnouncementRepository(db *pgxpool.Pool) *AnnouncementRepository {
	return &AnnouncementRepository{
		db: db,
		sb: squirrel.StatementBuilder.PlaceholderFormat(squirrel.Dollar),
	}
}

const announcementColumns = "id, title, body, audience, posted_by, created_at, updated_at"

func scanAnnouncement(row pgx.Row) (*models.Announcement, error) {
	var a models.Announcement
	err := row.Scan(
		&a.ID, &a.Title, &a.Body, &a.Audience, &a.PostedBy,
		&a.CreatedAt, &a.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}
	return &a, nil
}

// CreateAnnouncement inserts a new announcement
func (r *AnnouncementRepository) CreateAnnouncement(ctx context.Context, announcement *models.Announcement) (int64, error) {
	sql, args, err := r.sb.Insert("announcements").
		Columns("title", "body", "audience", "posted_by").
		Values(announcement.Title, announcement.Body, announcement.Audience, announcement.PostedBy).
		Suffix("RETURNING id").
		ToSql()
	if err != nil {
		return 0, fmt.Errorf("failed to build create announcement query: %w", err)
	}

	var id int64
	if err := r.db.QueryRow(ctx, sql, args...).Scan(&id); err != nil {
		return 0, fmt.Errorf("error inserting announcement: %w", err)
	}
	return id, nil
}

// GetAnnouncementByID retrieves an announcement by ID
func (r *AnnouncementRepository) GetAnnouncementByID(ctx context.Context, id int64) (*models.Announcement, error) {
	sql, args, err := r.sb.Select(announcementColumns).
		From("announcements").
		Where(squirrel.Eq{"id": id}).
		Limit(1).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("failed to build get announcement query: %w", err)
	}

	announcement, err := scanAnnouncement(r.db.QueryRow(ctx, sql, args...))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.ErrAnnouncementNotFound
		}
		return nil, fmt.Errorf("error querying announcement ID=%d: %w", id, err)
	}
	return announcement, nil
}

// GetAnnouncementsForAudience lists announcements visible to the given
// audience, newest first. ALL announcements are visible to everyone.
func (r *AnnouncementRepository) GetAnnouncementsForAudience(ctx context.Context, audience models.Audience, page, pageSize int) ([]models.Announcement, int64, error) {
	condition := squirrel.Eq{"audience": []models.Audience{models.AudienceAll, audience}}

	countSQL, countArgs, err := r.sb.Select("COUNT(*)").
		From("announcements").
		Where(condition).
		ToSql()
	if err != nil {
		return nil, 0, fmt.Errorf("failed to build count announcements query: %w", err)
	}

	var total int64
	if err := r.db.QueryRow(ctx, countSQL, countArgs...).Scan(&total); err != nil {
		return nil, 0, fmt.Errorf("error counting announcements: %w", err)
	}

	sql, args, err := r.sb.Select(announcementColumns).
		From("announcements").
		Where(condition).
		OrderBy("created_at DESC").
		Limit(uint64(pageSize)).
		Offset(uint64((page - 1) * pageSize)).
		ToSql()
	if err != nil {
		return nil, 0, fmt.Errorf("failed to build list announcements query: %w", err)
	}

	rows, err := r.db.Query(ctx, sql, args...)
	if err != nil {
		return nil, 0, fmt.Errorf("failed to query announcements: %w", err)
	}
	defer rows.Close()

	var announcements []models.Announcement
	for rows.Next() {
		announcement, err := scanAnnouncement(rows)
		if err != nil {
			return nil, 0, fmt.Errorf("failed to scan announcement row: %w", err)
		}
		announcements = append(announcements, *announcement)
	}
	if err := rows.Err(); err != nil {
		return nil, 0, fmt.Errorf("error iterating announcement rows: %w", err)
	}

	return announcements, total, nil
}

// UpdateAnnouncement rewrites title, body and audience
func (r *AnnouncementRepository) UpdateAnnouncement(ctx context.Context, announcement *models.Announcement) error {
	sql, args, err := r.sb.Update("announcements").
		SetMap(map[string]interface{}{
			"title":      announcement.Title,
			"body":       announcement.Body,
			"audience":   announcement.Audience,
			"updated_at": time.Now(),
		}).
		Where(squirrel.Eq{"id": announcement.ID}).
		ToSql()
	if err != nil {
		return fmt.Errorf("failed to build update announcement query: %w", err)
	}

	cmdTag, err := r.db.Exec(ctx, sql, args...)
	if err != nil {
		return fmt.Errorf("error updating announcement ID=%d: %w", announcement.ID, err)
	}
	if cmdTag.RowsAffected() == 0 {
		return apperrors.ErrAnnouncementNotFound
	}
	return nil
}

// DeleteAnnouncement removes an announcement
func (r *AnnouncementRepository) DeleteAnnouncement(ctx context.Context, id int64) error {
	sql, args, err := r.sb.Delete("announcements").
		Where(squirrel.Eq{"id": id}).
		ToSql()
	if err != nil {
		return fmt.Errorf("failed to build delete announcement query: %w", err)
	}

	cmdTag, err := r.db.Exec(ctx, sql, args...)
	if err != nil {
		return fmt.Errorf("error deleting announcement ID=%d: %w", id, err)
	}
	if cmdTag.RowsAffected() == 0 {
		return apperrors.ErrAnnouncementNotFound
	}
	return nil
}
