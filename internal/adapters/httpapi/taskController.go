package httpapi

import (
	"net/http"

	taskPort "socialfeed/internal/ports/task"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

type TaskController struct {
	tc     TaskUseCase
	logger *zap.Logger
}

func NewTaskController(tc TaskUseCase, logger *zap.Logger) *TaskController {
	return &TaskController{tc: tc, logger: logger}
}

func (ctl *TaskController) CreateTask(c *gin.Context) {
	var in taskPort.CreateTaskInput
	if err := c.ShouldBindJSON(&in); err != nil {
		badRequest(c, "invalid input")
		return
	}
	res, err := ctl.tc.CreateTask(c.Request.Context(), in)
	if err != nil {
		writeError(c, ctl.logger, err)
		return
	}
	c.JSON(http.StatusCreated, res)
}

func (ctl *TaskController) ListTasks(c *gin.Context) {
	res, err := ctl.tc.ListTasks(c.Request.Context())
	if err != nil {
		writeError(c, ctl.logger, err)
		return
	}
	c.JSON(http.StatusOK, res)
}

func (ctl *TaskController) UpdateTask(c *gin.Context) {
	var in taskPort.UpdateTaskInput
	if err := c.ShouldBindJSON(&in); err != nil {
		badRequest(c, "invalid input")
		return
	}
	res, err := ctl.tc.UpdateTask(c.Request.Context(), c.Param("id"), in)
	if err != nil {
		writeError(c, ctl.logger, err)
		return
	}
	c.JSON(http.StatusOK, res)
}

func (ctl *TaskController) DeleteTask(c *gin.Context) {
	res, err := ctl.tc.DeleteTask(c.Request.Context(), c.Param("id"))
	if err != nil {
		writeError(c, ctl.logger, err)
		return
	}
	c.JSON(http.StatusOK, res)
}
