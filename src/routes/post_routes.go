package routes

import (
	"github.com/gofiber/fiber/v2"

	"github.com/theleywin/talentnest/src/controllers"
)

// PostRoutes sets up feed, post, comment and like routes
func PostRoutes(app *fiber.App, ctl *controllers.PostController, protect fiber.Handler) {
	post := app.Group("/api/v1/posts", protect)

	post.Get("/", ctl.GetFeedPosts)
	post.Post("/create", ctl.CreatePost)
	post.Delete("/delete/:id", ctl.DeletePost)
	post.Get("/:id", ctl.GetPostByID)
	post.Post("/:id/comment", ctl.CreateComment)
	post.Post("/:id/like", ctl.LikePost)
}
