package repositories

import (
	"context"
	"errors"
	"fmt"

	"github.com/Masterminds/squirrel"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/milad/unitel/internal/app/models"
	"github.com/milad/unitel/internal/db"
	"github.com/milad/unitel/internal/pkg/apperrors"
	"github.com/milad/unitel/internal/pkg/logger"
)

// PostRepository handles post database operations
type PostRepository struct {
	db *pgxpool.Pool
	sb squirrel.StatementBuilderType
}

// NewPostRepository creates a new PostRepository
func NewPostRepository(db *pgxpool.Pool) *PostRepository {
	return &PostRepository{
		db: db,
		sb: squirrel.StatementBuilder.PlaceholderFormat(squirrel.Dollar),
	}
}

// CreatePost creates a post together with its contactable identity.
func (r *PostRepository) CreatePost(ctx context.Context, post *models.Post) (int64, error) {
	var cid int64
	err := db.WithTransaction(ctx, r.db, func(ctx context.Context, tx pgx.Tx) error {
		if err := tx.QueryRow(ctx, "INSERT INTO contactables DEFAULT VALUES RETURNING cid").Scan(&cid); err != nil {
			return fmt.Errorf("error creating contactable: %w", err)
		}

		sql, args, err := r.sb.Insert("posts").
			Columns("cid", "pname", "description").
			Values(cid, post.PName, post.Description).
			ToSql()
		if err != nil {
			return fmt.Errorf("failed to build create post query: %w", err)
		}

		if _, err := tx.Exec(ctx, sql, args...); err != nil {
			return fmt.Errorf("error creating post: %w", err)
		}

		return nil
	})
	if err != nil {
		logger.Error().Err(err).Str("pname", post.PName).Msg("Error executing create post transaction")
		return 0, err
	}

	return cid, nil
}

// GetPostByID retrieves a post by its contactable ID
func (r *PostRepository) GetPostByID(ctx context.Context, cid int64) (*models.Post, error) {
	sql, args, err := r.sb.Select("cid", "pname", "description").
		From("posts").
		Where(squirrel.Eq{"cid": cid}).
		Limit(1).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("failed to build get post query: %w", err)
	}

	post := &models.Post{}
	err = r.db.QueryRow(ctx, sql, args...).Scan(&post.CID, &post.PName, &post.Description)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.ErrPostNotFound
		}
		logger.Error().Err(err).Int64("cid", cid).Msg("Error scanning post row")
		return nil, fmt.Errorf("error getting post by ID: %w", err)
	}

	return post, nil
}

// GetAllPosts retrieves posts, optionally windowed by limit/offset.
func (r *PostRepository) GetAllPosts(ctx context.Context, limit, offset int, paged bool) ([]*models.Post, error) {
	builder := r.sb.Select("cid", "pname", "description").
		From("posts").
		OrderBy("cid ASC")
	if paged {
		builder = builder.Limit(uint64(limit)).Offset(uint64(offset))
	}

	sql, args, err := builder.ToSql()
	if err != nil {
		return nil, fmt.Errorf("failed to build get all posts query: %w", err)
	}

	rows, err := r.db.Query(ctx, sql, args...)
	if err != nil {
		logger.Error().Err(err).Msg("Error executing get all posts query")
		return nil, fmt.Errorf("error querying posts: %w", err)
	}
	defer rows.Close()

	posts := []*models.Post{}
	for rows.Next() {
		post := &models.Post{}
		if err := rows.Scan(&post.CID, &post.PName, &post.Description); err != nil {
			return nil, fmt.Errorf("error scanning post row: %w", err)
		}
		posts = append(posts, post)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating post rows: %w", err)
	}

	return posts, nil
}

// UpdatePost updates an existing post
func (r *PostRepository) UpdatePost(ctx context.Context, post *models.Post) error {
	sql, args, err := r.sb.Update("posts").
		Set("pname", post.PName).
		Set("description", post.Description).
		Where(squirrel.Eq{"cid": post.CID}).
		ToSql()
	if err != nil {
		return fmt.Errorf("failed to build update post query: %w", err)
	}

	cmdTag, err := r.db.Exec(ctx, sql, args...)
	if err != nil {
		logger.Error().Err(err).Int64("cid", post.CID).Msg("Error executing update post query")
		return fmt.Errorf("error updating post: %w", err)
	}

	if cmdTag.RowsAffected() == 0 {
		return apperrors.ErrPostNotFound
	}

	return nil
}

// DeletePost deletes a post and its contactable identity.
func (r *PostRepository) DeletePost(ctx context.Context, cid int64) error {
	return db.WithTransaction(ctx, r.db, func(ctx context.Context, tx pgx.Tx) error {
		cmdTag, err := tx.Exec(ctx, "DELETE FROM posts WHERE cid = $1", cid)
		if err != nil {
			return fmt.Errorf("error deleting post: %w", err)
		}
		if cmdTag.RowsAffected() == 0 {
			return apperrors.ErrPostNotFound
		}
		if _, err := tx.Exec(ctx, "DELETE FROM contactables WHERE cid = $1", cid); err != nil {
			return fmt.Errorf("error deleting contactable: %w", err)
		}
		return nil
	})
}
