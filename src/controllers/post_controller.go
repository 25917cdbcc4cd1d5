package controllers

import (
	"context"

	"github.com/gofiber/fiber/v2"
	"go.mongodb.org/mongo-driver/bson/primitive"

	"github.com/theleywin/talentnest/src/lib"
	"github.com/theleywin/talentnest/src/middleware"
	"github.com/theleywin/talentnest/src/models"
	"github.com/theleywin/talentnest/src/services/posts"
)

type postService interface {
	Feed(ctx context.Context, user *models.User) ([]models.PostDto, error)
	Create(ctx context.Context, authorID primitive.ObjectID, in posts.CreateInput) (*models.PostDto, error)
	Get(ctx context.Context, id primitive.ObjectID) (*models.PostDto, error)
	Delete(ctx context.Context, id, userID primitive.ObjectID) error
	Comment(ctx context.Context, postID primitive.ObjectID, user *models.User, content string) (*models.PostDto, error)
	Like(ctx context.Context, postID, userID primitive.ObjectID) (*models.PostDto, error)
}

type PostController struct {
	posts postService
}

func NewPostController(svc postService) *PostController {
	return &PostController{posts: svc}
}

// GetFeedPosts returns posts from the authenticated user's connections and themselves
func (ctl *PostController) GetFeedPosts(c *fiber.Ctx) error {
	user := middleware.CurrentUser(c)

	feed, err := ctl.posts.Feed(c.UserContext(), &user)
	if err != nil {
		return err
	}
	return c.Status(fiber.StatusOK).JSON(feed)
}

// CreatePost creates a post authored by the authenticated user
func (ctl *PostController) CreatePost(c *fiber.Ctx) error {
	var in posts.CreateInput
	if err := parseBody(c, &in); err != nil {
		return err
	}
	user := middleware.CurrentUser(c)

	post, err := ctl.posts.Create(c.UserContext(), user.Id, in)
	if err != nil {
		return err
	}
	return c.Status(fiber.StatusCreated).JSON(post)
}

// DeletePost deletes a post written by the authenticated user
func (ctl *PostController) DeletePost(c *fiber.Ctx) error {
	postID, err := objectIDParam(c, "id", "Invalid post ID format")
	if err != nil {
		return err
	}
	user := middleware.CurrentUser(c)

	if err := ctl.posts.Delete(c.UserContext(), postID, user.Id); err != nil {
		return err
	}
	return c.Status(fiber.StatusOK).JSON(lib.MessageResponse("Post deleted successfully"))
}

// GetPostByID returns a single post
func (ctl *PostController) GetPostByID(c *fiber.Ctx) error {
	postID, err := objectIDParam(c, "id", "Invalid post ID format")
	if err != nil {
		return err
	}

	post, err := ctl.posts.Get(c.UserContext(), postID)
	if err != nil {
		return err
	}
	return c.Status(fiber.StatusOK).JSON(post)
}

// CreateComment adds a comment to a post
func (ctl *PostController) CreateComment(c *fiber.Ctx) error {
	postID, err := objectIDParam(c, "id", "Invalid post ID format")
	if err != nil {
		return err
	}
	var body struct {
		Content string `json:"content"`
	}
	if err := parseBody(c, &body); err != nil {
		return err
	}
	user := middleware.CurrentUser(c)

	post, err := ctl.posts.Comment(c.UserContext(), postID, &user, body.Content)
	if err != nil {
		return err
	}
	return c.Status(fiber.StatusOK).JSON(post)
}

// LikePost toggles the authenticated user's like on a post
func (ctl *PostController) LikePost(c *fiber.Ctx) error {
	postID, err := objectIDParam(c, "id", "Invalid post ID format")
	if err != nil {
		return err
	}
	user := middleware.CurrentUser(c)

	post, err := ctl.posts.Like(c.UserContext(), postID, user.Id)
	if err != nil {
		return err
	}
	return c.Status(fiber.StatusOK).JSON(post)
}
