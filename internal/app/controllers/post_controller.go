package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/milad/unitel/internal/app/models"
	"github.com/milad/unitel/internal/app/models/dto"
	"github.com/milad/unitel/internal/app/services"
	"github.com/milad/unitel/internal/middleware"
	"github.com/milad/unitel/internal/pkg/helpers"
)

// PostController handles post-related operations
type PostController struct {
	postService services.PostService
}

// NewPostController creates a new PostController
func NewPostController(postService services.PostService) *PostController {
	return &PostController{
		postService: postService,
	}
}

// CreatePost handles post creation
func (c *PostController) CreatePost(ctx *gin.Context) {
	var req dto.CreatePostRequest
	if !bindJSON(ctx, &req) {
		return
	}

	post := &models.Post{PName: req.PName, Description: req.Description}
	cid, err := c.postService.CreatePost(ctx, post)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	post.CID = cid
	ctx.JSON(http.StatusCreated, dto.NewAPIResponse(post))
}

// GetPostByID retrieves a post by ID
func (c *PostController) GetPostByID(ctx *gin.Context) {
	cid, ok := parseIDParam(ctx, "id")
	if !ok {
		return
	}

	post, err := c.postService.GetPostByID(ctx, cid)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.NewAPIResponse(post))
}

// GetAllPosts lists posts with optional limit/index paging
func (c *PostController) GetAllPosts(ctx *gin.Context) {
	limit, index, paged := helpers.ParseListParams(ctx)

	posts, err := c.postService.GetAllPosts(ctx, limit, index, paged)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.NewAPIResponse(posts))
}

// UpdatePost updates an existing post
func (c *PostController) UpdatePost(ctx *gin.Context) {
	cid, ok := parseIDParam(ctx, "id")
	if !ok {
		return
	}

	var req dto.UpdatePostRequest
	if !bindJSON(ctx, &req) {
		return
	}

	post := &models.Post{CID: cid, PName: req.PName, Description: req.Description}
	if err := c.postService.UpdatePost(ctx, post); err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.NewAPIResponse(post))
}

// DeletePost deletes a post
func (c *PostController) DeletePost(ctx *gin.Context) {
	cid, ok := parseIDParam(ctx, "id")
	if !ok {
		return
	}

	if err := c.postService.DeletePost(ctx, cid); err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.NewAPIResponse(dto.MessageResponse{Message: "post deleted"}))
}
