package storage

import (
	"context"
	"database/sql"
	"fmt"

	sq "github.com/Masterminds/squirrel"
	"github.com/google/uuid"
	"github.com/lib/pq"

	"AuditScanner/internal/domain"
	"AuditScanner/internal/ports"
)

// PostgresRepository persists flattened course plans into Postgres.
type PostgresRepository struct {
	db *sql.DB
	sb sq.StatementBuilderType
}

var _ ports.PlanRepository = (*PostgresRepository)(nil)

// NewPostgresRepository wires a sql.DB implementation.
func NewPostgresRepository(db *sql.DB) *PostgresRepository {
	return &PostgresRepository{
		db: db,
		sb: sq.StatementBuilder.PlaceholderFormat(sq.Dollar),
	}
}

// SavedCourseIDs returns a map with course IDs that already exist for the user.
func (r *PostgresRepository) SavedCourseIDs(ctx context.Context, userID string, ids []string) (map[string]bool, error) {
	if r.db == nil || len(ids) == 0 {
		return map[string]bool{}, nil
	}

	query, args, err := r.sb.
		Select("DISTINCT course_id").
		From("user_courses").
		Where(sq.Eq{"user_id": userID}).
		Where("course_id = ANY(?)", pq.StringArray(ids)).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("build saved query: %w", err)
	}

	rows, err := r.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("query saved courses: %w", err)
	}
	defer rows.Close()

	result := make(map[string]bool)
	for rows.Next() {
		var id string
		if err := rows.Scan(&id); err != nil {
			return nil, fmt.Errorf("scan course id: %w", err)
		}
		result[id] = true
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("rows iteration: %w", err)
	}

	return result, nil
}

// ReplacePlan overwrites the user's course list for one source in a single
// transaction and records the source document for re-upload detection.
func (r *PostgresRepository) ReplacePlan(ctx context.Context, userID, source string, doc domain.DocumentMeta, courses []domain.StoredCourse) error {
	if r.db == nil {
		return nil
	}

	tx, err := r.db.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("begin tx: %w", err)
	}
	defer tx.Rollback()

	del, args, err := r.sb.
		Delete("user_courses").
		Where(sq.Eq{"user_id": userID, "source": source}).
		ToSql()
	if err != nil {
		return fmt.Errorf("build delete: %w", err)
	}
	if _, err := tx.ExecContext(ctx, del, args...); err != nil {
		return fmt.Errorf("delete previous plan: %w", err)
	}

	if len(courses) > 0 {
		insert := r.sb.
			Insert("user_courses").
			Columns("id", "user_id", "source", "term", "course_id", "title", "credits", "status", "grade")
		for _, c := range courses {
			insert = insert.Values(uuid.NewString(), userID, source, c.Term, c.CourseID, c.Title, c.Credits, c.Status, c.Grade)
		}
		query, args, err := insert.ToSql()
		if err != nil {
			return fmt.Errorf("build insert: %w", err)
		}
		if _, err := tx.ExecContext(ctx, query, args...); err != nil {
			return fmt.Errorf("insert plan: %w", err)
		}
	}

	if doc.ContentHash != "" {
		upsert := `INSERT INTO audit_documents (id, user_id, content_hash, file_name, uploaded_at)
                   VALUES ($1, $2, $3, $4, NOW())
                   ON CONFLICT (user_id, content_hash) DO UPDATE
                   SET file_name = EXCLUDED.file_name,
                       uploaded_at = NOW()`
		if _, err := tx.ExecContext(ctx, upsert, uuid.NewString(), userID, doc.ContentHash, doc.FileName); err != nil {
			return fmt.Errorf("upsert document: %w", err)
		}
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("commit: %w", err)
	}
	return nil
}
