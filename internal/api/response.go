package api

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"foliocms/internal/errcode"
)

func Error(c *gin.Context, status int, msg string) {
	c.JSON(status, gin.H{"error": msg})
}

func Unauthorized(c *gin.Context)           { Error(c, http.StatusUnauthorized, "unauthorized") }
func BadRequest(c *gin.Context, msg string) { Error(c, http.StatusBadRequest, msg) }
func Forbidden(c *gin.Context, msg string)  { Error(c, http.StatusForbidden, msg) }
func NotFound(c *gin.Context, msg string)   { Error(c, http.StatusNotFound, msg) }
func Internal(c *gin.Context, msg string)   { Error(c, http.StatusInternalServerError, msg) }

// RespondError 将分类错误折算为状态码并输出统一的错误响应。
// 未分类的错误按内部错误处理，不向客户端透出原始信息。
func RespondError(c *gin.Context, err error) {
	status := errcode.HTTPStatus(err)
	if status == http.StatusInternalServerError {
		Internal(c, "internal error")
		return
	}
	Error(c, status, displayMessage(err))
}

func displayMessage(err error) string {
	for _, sentinel := range []error{
		errcode.ErrInvalidCredentials,
		errcode.ErrDuplicateUsername,
		errcode.ErrUnauthorized,
		errcode.ErrForbidden,
		errcode.ErrInvalidID,
		errcode.ErrNotFound,
		errcode.ErrValidation,
	} {
		if errors.Is(err, sentinel) {
			return sentinel.Error()
		}
	}
	return err.Error()
}
