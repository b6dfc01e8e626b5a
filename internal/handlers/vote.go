package handlers

import (
	"errors"
	"net/http"

	"inkwell/internal/db"
	"inkwell/internal/middleware"
	"inkwell/internal/models"
	"inkwell/internal/services"
	"inkwell/internal/utils"

	"github.com/gin-gonic/gin"
)

type VoteHandler struct {
	votes *services.VoteService
}

func NewVoteHandler() *VoteHandler {
	return &VoteHandler{
		votes: services.NewVoteService(db.DB),
	}
}

// Upvote handles upvote logic
func (h *VoteHandler) Upvote(c *gin.Context) {
	user := c.MustGet(middleware.CheckUserKey).(*models.User)
	id := utils.StringToUint(c.Param("id"))

	if err := h.votes.CastUpvote(user.ID, id); err != nil {
		h.renderVoteError(c, err)
		return
	}

	utils.GetCache().Delete(indexCacheKey)
	c.Redirect(http.StatusFound, "/")
}

// Downvote handles downvote logic
func (h *VoteHandler) Downvote(c *gin.Context) {
	user := c.MustGet(middleware.CheckUserKey).(*models.User)
	id := utils.StringToUint(c.Param("id"))

	if err := h.votes.CastDownvote(user.ID, id); err != nil {
		h.renderVoteError(c, err)
		return
	}

	utils.GetCache().Delete(indexCacheKey)
	c.Redirect(http.StatusFound, "/")
}

func (h *VoteHandler) renderVoteError(c *gin.Context, err error) {
	if errors.Is(err, services.ErrPostNotFound) {
		RenderError(c, http.StatusNotFound, "Post doesn't exist.")
		return
	}
	RenderError(c, http.StatusInternalServerError, "Something went wrong.")
}
