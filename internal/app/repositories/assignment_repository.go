package repositories

import (
	"context"
	"errors"
	"fmt"

	"github.com/Masterminds/squirrel"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/okanserdaroglu/campushub/internal/app/models"
	"github.com/okanserdaroglu/campushub/internal/pkg/apperrors"
)

// AssignmentRepository handles assignment and submission database operations
type AssignmentRepository struct {
	db *pgxpool.Pool
	sb squirrel.StatementBuilderType
}

// NewAssignmentRepository creates a new AssignmentRepository
func NewAssignmentRepository(db *pgxpool.Pool) *AssignmentRepository {
	return &AssignmentRepository{
		db: db,
		sb: squirrel.StatementBuilder.PlaceholderFormat(squirrel.Dollar),
	}
}

func assignmentSelect(sb squirrel.StatementBuilderType) squirrel.SelectBuilder {
	return sb.Select(
		"a.id", "a.subject_id", "a.title", "a.description", "a.due_at",
		"a.attachment_url", "a.created_by", "a.created_at",
		"s.code", "s.name", "s.credits", "s.semester", "s.program",
	).
		From("assignments a").
		Join("subjects s ON a.subject_id = s.id")
}

func scanAssignment(row pgx.Row) (*models.Assignment, error) {
	var a models.Assignment
	var s models.Subject
	err := row.Scan(
		&a.ID, &a.SubjectID, &a.Title, &a.Description, &a.DueAt,
		&a.AttachmentURL, &a.CreatedBy, &a.CreatedAt,
		&s.Code, &s.Name, &s.Credits, &s.Semester, &s.Program,
	)
	if err != nil {
		return nil, err
	}
	s.ID = a.SubjectID
	a.Subject = &s
	return &a, nil
}

// CreateAssignment inserts a new assignment
func (r *AssignmentRepository) CreateAssignment(ctx context.Context, assignment *models.Assignment) (int64, error) {
	sql, args, err := r.sb.Insert("assignments").
		Columns("subject_id", "title", "description", "due_at", "attachment_url", "created_by").
		Values(assignment.SubjectID, assignment.Title, assignment.Description,
			assignment.DueAt, assignment.AttachmentURL, assignment.CreatedBy).
		Suffix("RETURNING id").
		ToSql()
	if err != nil {
		return 0, fmt.Errorf("failed to build create assignment query: %w", err)
	}

	var id int64
	if err := r.db.QueryRow(ctx, sql, args...).Scan(&id); err != nil {
		return 0, fmt.Errorf("error inserting assignment: %w", err)
	}
	return id, nil
}

// GetAssignmentByID retrieves an assignment with its subject
func (r *AssignmentRepository) GetAssignmentByID(ctx context.Context, id int64) (*models.Assignment, error) {
	sql, args, err := assignmentSelect(r.sb).
		Where(squirrel.Eq{"a.id": id}).
		Limit(1).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("failed to build get assignment query: %w", err)
	}

	assignment, err := scanAssignment(r.db.QueryRow(ctx, sql, args...))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.ErrAssignmentNotFound
		}
		return nil, fmt.Errorf("error querying assignment ID=%d: %w", id, err)
	}
	return assignment, nil
}

// GetAssignmentsBySubject lists a subject's assignments, newest deadline first
func (r *AssignmentRepository) GetAssignmentsBySubject(ctx context.Context, subjectID int64) ([]models.Assignment, error) {
	sql, args, err := assignmentSelect(r.sb).
		Where(squirrel.Eq{"a.subject_id": subjectID}).
		OrderBy("a.due_at DESC").
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("failed to build list assignments query: %w", err)
	}

	rows, err := r.db.Query(ctx, sql, args...)
	if err != nil {
		return nil, fmt.Errorf("failed to query assignments: %w", err)
	}
	defer rows.Close()

	var assignments []models.Assignment
	for rows.Next() {
		assignment, err := scanAssignment(rows)
		if err != nil {
			return nil, fmt.Errorf("failed to scan assignment row: %w", err)
		}
		assignments = append(assignments, *assignment)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating assignment rows: %w", err)
	}

	return assignments, nil
}

// DeleteAssignment removes an assignment
func (r *AssignmentRepository) DeleteAssignment(ctx context.Context, id int64) error {
	sql, args, err := r.sb.Delete("assignments").
		Where(squirrel.Eq{"id": id}).
		ToSql()
	if err != nil {
		return fmt.Errorf("failed to build delete assignment query: %w", err)
	}

	cmdTag, err := r.db.Exec(ctx, sql, args...)
	if err != nil {
		return fmt.Errorf("error deleting assignment ID=%d: %w", id, err)
	}
	if cmdTag.RowsAffected() == 0 {
		return apperrors.ErrAssignmentNotFound
	}
	return nil
}

// UpsertSubmission writes a student's submission. One row per
// (assignment, student); re-submitting replaces the stored file URL and
// refreshes the timestamp.
func (r *AssignmentRepository) UpsertSubmission(ctx context.Context, submission *models.Submission) (int64, error) {
	const upsert = `
		INSERT INTO submissions (assignment_id, student_id, file_url, submitted_at)
		VALUES ($1, $2, $3, now())
		ON CONFLICT (assignment_id, student_id)
		DO UPDATE SET file_url = EXCLUDED.file_url, submitted_at = now()
		RETURNING id`

	var id int64
	err := r.db.QueryRow(ctx, upsert, submission.AssignmentID, submission.StudentID, submission.FileURL).Scan(&id)
	if err != nil {
		return 0, fmt.Errorf("error upserting submission: %w", err)
	}
	return id, nil
}

// GetSubmission retrieves one student's submission for an assignment
func (r *AssignmentRepository) GetSubmission(ctx context.Context, assignmentID, studentID int64) (*models.Submission, error) {
	sql, args, err := r.sb.Select("id", "assignment_id", "student_id", "file_url", "feedback", "submitted_at").
		From("submissions").
		Where(squirrel.Eq{"assignment_id": assignmentID, "student_id": studentID}).
		Limit(1).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("failed to build get submission query: %w", err)
	}

	var s models.Submission
	err = r.db.QueryRow(ctx, sql, args...).Scan(&s.ID, &s.AssignmentID, &s.StudentID,
		&s.FileURL, &s.Feedback, &s.SubmittedAt)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.ErrSubmissionNotFound
		}
		return nil, fmt.Errorf("error querying submission: %w", err)
	}
	return &s, nil
}

// GetSubmissionsByAssignment lists every submission for an assignment
func (r *AssignmentRepository) GetSubmissionsByAssignment(ctx context.Context, assignmentID int64) ([]models.Submission, error) {
	sql, args, err := r.sb.Select("id", "assignment_id", "student_id", "file_url", "feedback", "submitted_at").
		From("submissions").
		Where(squirrel.Eq{"assignment_id": assignmentID}).
		OrderBy("submitted_at ASC").
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("failed to build list submissions query: %w", err)
	}

	rows, err := r.db.Query(ctx, sql, args...)
	if err != nil {
		return nil, fmt.Errorf("failed to query submissions: %w", err)
	}
	defer rows.Close()

	var submissions []models.Submission
	for rows.Next() {
		var s models.Submission
		err := rows.Scan(&s.ID, &s.AssignmentID, &s.StudentID, &s.FileURL,
			&s.Feedback, &s.SubmittedAt)
		if err != nil {
			return nil, fmt.Errorf("failed to scan submission row: %w", err)
		}
		submissions = append(submissions, s)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating submission rows: %w", err)
	}

	return submissions, nil
}

// SetSubmissionFeedback records faculty feedback on a submission
func (r *AssignmentRepository) SetSubmissionFeedback(ctx context.Context, submissionID int64, feedback string) error {
	sql, args, err := r.sb.Update("submissions").
		Set("feedback", feedback).
		Where(squirrel.Eq{"id": submissionID}).
		ToSql()
	if err != nil {
		return fmt.Errorf("failed to build submission feedback query: %w", err)
	}

	cmdTag, err := r.db.Exec(ctx, sql, args...)
	if err != nil {
		return fmt.Errorf("error setting submission feedback ID=%d: %w", submissionID, err)
	}
	if cmdTag.RowsAffected() == 0 {
		return apperrors.ErrSubmissionNotFound
	}
	return nil
}
