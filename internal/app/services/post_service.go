package services

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/milad/unitel/internal/app/models"
	"github.com/milad/unitel/internal/app/repositories"
	"github.com/milad/unitel/internal/pkg/apperrors"
)

// PostService defines the interface for post-related operations
type PostService interface {
	CreatePost(ctx context.Context, post *models.Post) (int64, error)
	GetPostByID(ctx context.Context, cid int64) (*models.Post, error)
	GetAllPosts(ctx context.Context, limit, offset int, paged bool) ([]*models.Post, error)
	UpdatePost(ctx context.Context, post *models.Post) error
	DeletePost(ctx context.Context, cid int64) error
}

// postServiceImpl implements the PostService interface
type postServiceImpl struct {
	postRepo *repositories.PostRepository
}

// NewPostService creates a new post service instance
func NewPostService(postRepo *repositories.PostRepository) PostService {
	return &postServiceImpl{
		postRepo: postRepo,
	}
}

// CreatePost creates a new post
func (s *postServiceImpl) CreatePost(ctx context.Context, post *models.Post) (int64, error) {
	if post == nil || strings.TrimSpace(post.PName) == "" {
		return 0, fmt.Errorf("%w: pname cannot be empty", apperrors.ErrValidationFailed)
	}

	cid, err := s.postRepo.CreatePost(ctx, post)
	if err != nil {
		return 0, fmt.Errorf("error creating post: %w", err)
	}
	return cid, nil
}

// GetPostByID retrieves a post by ID
func (s *postServiceImpl) GetPostByID(ctx context.Context, cid int64) (*models.Post, error) {
	if cid <= 0 {
		return nil, fmt.Errorf("%w: invalid post ID", apperrors.ErrValidationFailed)
	}

	post, err := s.postRepo.GetPostByID(ctx, cid)
	if err != nil {
		if errors.Is(err, apperrors.ErrPostNotFound) {
			return nil, apperrors.ErrPostNotFound
		}
		return nil, fmt.Errorf("error retrieving post: %w", err)
	}
	return post, nil
}

// GetAllPosts retrieves posts with optional paging
func (s *postServiceImpl) GetAllPosts(ctx context.Context, limit, offset int, paged bool) ([]*models.Post, error) {
	posts, err := s.postRepo.GetAllPosts(ctx, limit, offset, paged)
	if err != nil {
		return nil, fmt.Errorf("error retrieving posts: %w", err)
	}
	return posts, nil
}

// UpdatePost updates an existing post
func (s *postServiceImpl) UpdatePost(ctx context.Context, post *models.Post) error {
	if post == nil || strings.TrimSpace(post.PName) == "" {
		return fmt.Errorf("%w: pname cannot be empty", apperrors.ErrValidationFailed)
	}
	if post.CID <= 0 {
		return fmt.Errorf("%w: invalid post ID", apperrors.ErrValidationFailed)
	}

	err := s.postRepo.UpdatePost(ctx, post)
	if err != nil {
		if errors.Is(err, apperrors.ErrPostNotFound) {
			return apperrors.ErrPostNotFound
		}
		return fmt.Errorf("error updating post: %w", err)
	}
	return nil
}

// DeletePost deletes a post by ID
func (s *postServiceImpl) DeletePost(ctx context.Context, cid int64) error {
	if cid <= 0 {
		return fmt.Errorf("%w: invalid post ID", apperrors.ErrValidationFailed)
	}

	err := s.postRepo.DeletePost(ctx, cid)
	if err != nil {
		if errors.Is(err, apperrors.ErrPostNotFound) {
			return apperrors.ErrPostNotFound
		}
		return fmt.Errorf("error deleting post: %w", err)
	}
	return nil
}
