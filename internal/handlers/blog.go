package handlers

import (
	"errors"
	"html/template"
	"net/http"
	"time"

	"inkwell/internal/db"
	"inkwell/internal/middleware"
	"inkwell/internal/models"
	"inkwell/internal/services"
	"inkwell/internal/utils"

	"github.com/gin-gonic/gin"
)

type BlogHandler struct {
	posts *services.PostService
}

func NewBlogHandler() *BlogHandler {
	return &BlogHandler{
		posts: services.NewPostService(db.DB),
	}
}

// postView pairs a post with its body rendered as sanitized HTML.
type postView struct {
	models.Post
	BodyHTML template.HTML
}

func (h *BlogHandler) Index(c *gin.Context) {
	// Only the post views are cached, never the render map: Render adds
	// request-scoped keys like CurrentUser, and a cached map would replay
	// one user's session to everyone else.
	if cachedData := utils.GetCache().Get(indexCacheKey); cachedData != nil {
		if views, ok := cachedData.([]postView); ok {
			Render(c, http.StatusOK, "blog/index.html", gin.H{
				"Posts": views,
				"Title": "Posts",
			})
			return
		}
	}

	posts, err := h.posts.List()
	if err != nil {
		RenderError(c, http.StatusInternalServerError, "Failed to load posts.")
		return
	}

	views := make([]postView, len(posts))
	for i, p := range posts {
		views[i] = postView{
			Post:     p,
			BodyHTML: utils.RenderMarkdown(p.Body),
		}
	}

	utils.GetCache().Set(indexCacheKey, views, 1*time.Minute)

	Render(c, http.StatusOK, "blog/index.html", gin.H{
		"Posts": views,
		"Title": "Posts",
	})
}

func (h *BlogHandler) ShowCreate(c *gin.Context) {
	Render(c, http.StatusOK, "blog/create.html", gin.H{"Title": "New Post"})
}

func (h *BlogHandler) Create(c *gin.Context) {
	user := c.MustGet(middleware.CheckUserKey).(*models.User)

	title := c.PostForm("title")
	body := c.PostForm("body")

	_, err := h.posts.Create(user.ID, title, body)
	if err != nil {
		var vErr *services.ValidationError
		if errors.As(err, &vErr) {
			Render(c, http.StatusBadRequest, "blog/create.html", gin.H{
				"Error":     vErr.Message,
				"PostTitle": title,
				"PostBody":  body,
				"Title":     "New Post",
			})
			return
		}
		RenderError(c, http.StatusInternalServerError, "Failed to create post.")
		return
	}

	utils.GetCache().Delete(indexCacheKey)
	c.Redirect(http.StatusFound, "/")
}

func (h *BlogHandler) ShowEdit(c *gin.Context) {
	user := c.MustGet(middleware.CheckUserKey).(*models.User)
	id := utils.StringToUint(c.Param("id"))

	post, err := h.posts.Get(id, true, user.ID)
	if err != nil {
		h.renderPostError(c, err)
		return
	}

	Render(c, http.StatusOK, "blog/update.html", gin.H{
		"Post":  post,
		"Title": "Edit \"" + post.Title + "\"",
	})
}

func (h *BlogHandler) Update(c *gin.Context) {
	user := c.MustGet(middleware.CheckUserKey).(*models.User)
	id := utils.StringToUint(c.Param("id"))

	title := c.PostForm("title")
	body := c.PostForm("body")

	if err := h.posts.Update(id, user.ID, title, body); err != nil {
		var vErr *services.ValidationError
		if errors.As(err, &vErr) {
			post, getErr := h.posts.Get(id, true, user.ID)
			if getErr != nil {
				h.renderPostError(c, getErr)
				return
			}
			post.Title = title
			post.Body = body
			Render(c, http.StatusBadRequest, "blog/update.html", gin.H{
				"Error": vErr.Message,
				"Post":  post,
				"Title": "Edit post",
			})
			return
		}
		h.renderPostError(c, err)
		return
	}

	utils.GetCache().Delete(indexCacheKey)
	c.Redirect(http.StatusFound, "/")
}

func (h *BlogHandler) Delete(c *gin.Context) {
	user := c.MustGet(middleware.CheckUserKey).(*models.User)
	id := utils.StringToUint(c.Param("id"))

	if err := h.posts.Delete(id, user.ID); err != nil {
		h.renderPostError(c, err)
		return
	}

	utils.GetCache().Delete(indexCacheKey)
	c.Redirect(http.StatusFound, "/")
}

// renderPostError maps service errors to their response pages.
func (h *BlogHandler) renderPostError(c *gin.Context, err error) {
	switch {
	case errors.Is(err, services.ErrPostNotFound):
		RenderError(c, http.StatusNotFound, "Post doesn't exist.")
	case errors.Is(err, services.ErrNotPostAuthor):
		RenderError(c, http.StatusForbidden, "You are not the author of this post.")
	default:
		RenderError(c, http.StatusInternalServerError, "Something went wrong.")
	}
}
