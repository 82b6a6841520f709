package httpapi

import (
	"net/http"
	"strconv"

	leavePort "socialfeed/internal/ports/leave"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

type LeaveController struct {
	lc     LeaveUseCase
	logger *zap.Logger
}

func NewLeaveController(lc LeaveUseCase, logger *zap.Logger) *LeaveController {
	return &LeaveController{lc: lc, logger: logger}
}

// CreateLeave فرم multipart با فایل الزامی image
func (ctl *LeaveController) CreateLeave(c *gin.Context) {
	if !isMultipart(c) {
		badRequest(c, "Image is required")
		return
	}
	img, err := readImage(c, "image")
	if err != nil {
		writeError(c, ctl.logger, err)
		return
	}

	in := leavePort.CreateLeaveInput{
		RequesterID: c.PostForm("id"),
		Name:        c.PostForm("mm_name"),
		Position:    c.PostForm("position"),
		Remark:      c.PostForm("remark"),
		StartDate:   c.PostForm("start_date"),
		EndDate:     c.PostForm("end_date"),
		HalfDay:     c.PostForm("half_day"),
	}
	if raw := c.PostForm("condition"); raw != "" {
		if in.Condition, err = strconv.ParseBool(raw); err != nil {
			badRequest(c, "Invalid condition value")
			return
		}
	}

	res, err := ctl.lc.CreateLeave(c.Request.Context(), in, img)
	if err != nil {
		writeError(c, ctl.logger, err)
		return
	}
	c.JSON(http.StatusCreated, res)
}

func (ctl *LeaveController) ListLeaves(c *gin.Context) {
	res, err := ctl.lc.ListLeaves(c.Request.Context())
	if err != nil {
		writeError(c, ctl.logger, err)
		return
	}
	c.JSON(http.StatusOK, res)
}

func (ctl *LeaveController) GetLeave(c *gin.Context) {
	res, err := ctl.lc.GetLeave(c.Request.Context(), c.Param("id"))
	if err != nil {
		writeError(c, ctl.logger, err)
		return
	}
	c.JSON(http.StatusOK, res)
}

func (ctl *LeaveController) UpdateLeave(c *gin.Context) {
	var in leavePort.UpdateLeaveInput
	if err := c.ShouldBindJSON(&in); err != nil {
		badRequest(c, "invalid input")
		return
	}
	res, err := ctl.lc.UpdateLeave(c.Request.Context(), c.Param("id"), in)
	if err != nil {
		writeError(c, ctl.logger, err)
		return
	}
	c.JSON(http.StatusOK, res)
}

// DeleteLeave رکورد حذف‌شده را برمی‌گرداند
func (ctl *LeaveController) DeleteLeave(c *gin.Context) {
	res, err := ctl.lc.DeleteLeave(c.Request.Context(), c.Param("id"))
	if err != nil {
		writeError(c, ctl.logger, err)
		return
	}
	c.JSON(http.StatusOK, res)
}
