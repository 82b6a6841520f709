package httpapi

import (
	"net/http"

	"socialfeed/internal/ports/media"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

type PostController struct {
	pc     PostUseCase
	logger *zap.Logger
}

func NewPostController(pc PostUseCase, logger *zap.Logger) *PostController {
	return &PostController{pc: pc, logger: logger}
}

type textRequest struct {
	Text string `json:"text"`
}

// CreatePost فرم multipart (content و image اختیاری) یا JSON با content
func (ctl *PostController) CreatePost(c *gin.Context) {
	userID, ok := currentUser(c)
	if !ok {
		return
	}

	var (
		content string
		img     *media.Image
	)
	if isMultipart(c) {
		content = c.PostForm("content")
		var err error
		if img, err = readImage(c, "image"); err != nil {
			writeError(c, ctl.logger, err)
			return
		}
	} else {
		var req struct {
			Content string `json:"content"`
		}
		if err := c.ShouldBindJSON(&req); err != nil {
			badRequest(c, "invalid input")
			return
		}
		content = req.Content
	}

	res, err := ctl.pc.CreatePost(c.Request.Context(), userID, content, img)
	if err != nil {
		writeError(c, ctl.logger, err)
		return
	}
	c.JSON(http.StatusCreated, res)
}

func (ctl *PostController) ListPosts(c *gin.Context) {
	res, err := ctl.pc.ListPosts(c.Request.Context())
	if err != nil {
		writeError(c, ctl.logger, err)
		return
	}
	c.JSON(http.StatusOK, res)
}

func (ctl *PostController) ToggleLike(c *gin.Context) {
	userID, ok := currentUser(c)
	if !ok {
		return
	}
	res, err := ctl.pc.ToggleLike(c.Request.Context(), c.Param("id"), userID)
	if err != nil {
		writeError(c, ctl.logger, err)
		return
	}
	c.JSON(http.StatusOK, res)
}

func (ctl *PostController) AddComment(c *gin.Context) {
	userID, ok := currentUser(c)
	if !ok {
		return
	}
	var req textRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		badRequest(c, "invalid input")
		return
	}
	res, err := ctl.pc.AddComment(c.Request.Context(), c.Param("id"), userID, req.Text)
	if err != nil {
		writeError(c, ctl.logger, err)
		return
	}
	c.JSON(http.StatusOK, res)
}

func (ctl *PostController) AddReply(c *gin.Context) {
	userID, ok := currentUser(c)
	if !ok {
		return
	}
	var req textRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		badRequest(c, "invalid input")
		return
	}
	res, err := ctl.pc.AddReply(c.Request.Context(), c.Param("id"), c.Param("commentId"), userID, req.Text)
	if err != nil {
		writeError(c, ctl.logger, err)
		return
	}
	c.JSON(http.StatusOK, res)
}

func (ctl *PostController) DeletePost(c *gin.Context) {
	userID, ok := currentUser(c)
	if !ok {
		return
	}
	if err := ctl.pc.DeletePost(c.Request.Context(), c.Param("id"), userID); err != nil {
		writeError(c, ctl.logger, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "Post deleted successfully"})
}
