package httpapi

import (
	"errors"
	"io"
	"net/http"

	"socialfeed/internal/adapters/httpapi/middleware"
	"socialfeed/internal/core/apperr"
	"socialfeed/internal/ports/media"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

// maxImageSize حداکثر اندازه فایل تصویر دریافتی
const maxImageSize = 10 << 20

// writeError دسته خطا را به وضعیت HTTP تبدیل و پیام را بدون تغییر برمی‌گرداند
func writeError(c *gin.Context, logger *zap.Logger, err error) {
	kind := apperr.KindOf(err)
	if kind == apperr.KindUnknown || kind == apperr.KindUpload {
		logger.Error("Request failed",
			zap.String("path", c.FullPath()),
			zap.String("kind", kind.String()),
			zap.Error(err))
	}
	_ = c.Error(err)
	c.JSON(kind.Status(), gin.H{"message": err.Error()})
}

func badRequest(c *gin.Context, message string) {
	c.JSON(http.StatusBadRequest, gin.H{"message": message})
}

func currentUser(c *gin.Context) (string, bool) {
	userID := c.GetString(middleware.UserIDKey)
	if userID == "" {
		c.JSON(http.StatusUnauthorized, gin.H{"message": "User not found in context"})
		return "", false
	}
	return userID, true
}

// readImage فایل فرم با نام field را می‌خواند؛ نبود فایل خطا نیست و nil برمی‌گرداند
func readImage(c *gin.Context, field string) (*media.Image, error) {
	fh, err := c.FormFile(field)
	if errors.Is(err, http.ErrMissingFile) {
		return nil, nil
	}
	if err != nil {
		return nil, apperr.Validation("Invalid image upload")
	}
	if fh.Size > maxImageSize {
		return nil, apperr.Validation("Image is too large")
	}

	f, err := fh.Open()
	if err != nil {
		return nil, apperr.Validation("Invalid image upload")
	}
	defer f.Close()

	data, err := io.ReadAll(io.LimitReader(f, maxImageSize+1))
	if err != nil {
		return nil, apperr.Validation("Invalid image upload")
	}
	if len(data) > maxImageSize {
		return nil, apperr.Validation("Image is too large")
	}
	return &media.Image{
		Filename:    fh.Filename,
		ContentType: fh.Header.Get("Content-Type"),
		Data:        data,
	}, nil
}

func isMultipart(c *gin.Context) bool {
	return c.ContentType() == gin.MIMEMultipartPOSTForm
}
