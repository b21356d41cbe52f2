package media

import (
	"context"
	"errors"
	"fmt"
	"strconv"
	"strings"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/nDmitry/mediafeeds/internal/entity"
)

// The repository reads the CMS schema:
//
//	media (id, slug, title, description, duration, views, thumb_url,
//	       reviewed, encoded, publishable, restricted,
//	       publish_on, publish_until, modified_on)
//	media_files (id, media_id, url, mime_type, size)
//	categories (id, name, slug)
//	media_categories (media_id, category_id)
const (
	publishedClause = `m.reviewed AND m.encoded AND m.publishable
  AND m.publish_on <= now()
  AND (m.publish_until IS NULL OR m.publish_until > now())`

	viewableClause = `NOT m.restricted`

	inCategoryClause = `EXISTS (
  SELECT 1 FROM media_categories mc WHERE mc.media_id = m.id AND mc.category_id = $%d
)`

	selectColumns = `SELECT m.id, m.slug, m.title, COALESCE(m.description, ''),
  COALESCE(m.duration, 0), COALESCE(m.views, 0), COALESCE(m.thumb_url, ''),
  COALESCE(f.url, ''), COALESCE(f.mime_type, ''), COALESCE(f.size, 0),
  m.publish_on, COALESCE(m.modified_on, m.publish_on)
FROM media m
LEFT JOIN LATERAL (
  SELECT url, mime_type, size FROM media_files WHERE media_id = m.id ORDER BY id LIMIT 1
) f ON true`
)

// PostgresRepository implements Repository on top of a pgx pool
type PostgresRepository struct {
	pool *pgxpool.Pool
}

// NewPostgresPool connects to the database and checks the connection
func NewPostgresPool(ctx context.Context, dsn string) (*pgxpool.Pool, error) {
	pool, err := pgxpool.New(ctx, dsn)

	if err != nil {
		return nil, fmt.Errorf("could not create pgx pool: %w", err)
	}

	if err := pool.Ping(ctx); err != nil {
		pool.Close()
		return nil, fmt.Errorf("postgres ping failed: %w", err)
	}

	return pool, nil
}

func NewPostgresRepository(pool *pgxpool.Pool) *PostgresRepository {
	return &PostgresRepository{pool: pool}
}

// Count returns the number of published, viewable media matching q
func (r *PostgresRepository) Count(ctx context.Context, q Query) (int, error) {
	where, args := buildWhere(q)

	var count int

	if err := r.pool.QueryRow(ctx, "SELECT COUNT(*) FROM media m WHERE "+where, args...).Scan(&count); err != nil {
		return 0, fmt.Errorf("count media: %w", err)
	}

	return count, nil
}

// Find returns published, viewable media matching q
func (r *PostgresRepository) Find(ctx context.Context, q Query) ([]entity.MediaItem, error) {
	query, args := buildSelect(q)

	rows, err := r.pool.Query(ctx, query, args...)

	if err != nil {
		return nil, fmt.Errorf("find media: %w", err)
	}

	defer rows.Close()

	var items []entity.MediaItem

	for rows.Next() {
		var m entity.MediaItem

		if err := rows.Scan(
			&m.ID,
			&m.Slug,
			&m.Title,
			&m.Description,
			&m.Duration,
			&m.Views,
			&m.ThumbnailURL,
			&m.File.URL,
			&m.File.MimeType,
			&m.File.Size,
			&m.PublishOn,
			&m.ModifiedOn,
		); err != nil {
			return nil, fmt.Errorf("scan media: %w", err)
		}

		items = append(items, m)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("find media: %w", err)
	}

	return items, nil
}

// Category returns a category by ID
func (r *PostgresRepository) Category(ctx context.Context, id int64) (*entity.Category, error) {
	var c entity.Category

	err := r.pool.QueryRow(ctx,
		`SELECT id, name, slug FROM categories WHERE id = $1`, id,
	).Scan(&c.ID, &c.Name, &c.Slug)

	if errors.Is(err, pgx.ErrNoRows) {
		return nil, nil
	}

	if err != nil {
		return nil, fmt.Errorf("get category %d: %w", id, err)
	}

	return &c, nil
}

func buildWhere(q Query) (string, []any) {
	clauses := []string{publishedClause, viewableClause}

	var args []any

	if q.CategoryID != 0 {
		args = append(args, q.CategoryID)
		clauses = append(clauses, fmt.Sprintf(inCategoryClause, len(args)))
	}

	return strings.Join(clauses, "\n  AND "), args
}

func buildSelect(q Query) (string, []any) {
	where, args := buildWhere(q)

	var sb strings.Builder

	sb.WriteString(selectColumns)
	sb.WriteString("\nWHERE ")
	sb.WriteString(where)

	switch q.OrderBy {
	case OrderPublishOnDesc:
		sb.WriteString("\nORDER BY m.publish_on DESC, m.id DESC")
	default:
		sb.WriteString("\nORDER BY m.id ASC")
	}

	if q.Skip > 0 {
		args = append(args, q.Skip)
		sb.WriteString("\nOFFSET $" + strconv.Itoa(len(args)))
	}

	if q.Max > 0 {
		args = append(args, q.Max)
		sb.WriteString("\nLIMIT $" + strconv.Itoa(len(args)))
	}

	return sb.String(), args
}
