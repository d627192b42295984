package response

import (
	"net/http"

	"github.com/gin-gonic/gin"
)

type BizError struct {
	Code int
	Msg  string
}

func (e *BizError) Error() string {
	return e.Msg
}

func NewError(code int, msg string) *BizError {
	return &BizError{
		Code: code,
		Msg:  msg,
	}
}

// 业务错误分类，Code 同时就是边界层要回的 HTTP 状态码

// NewValidationError 参数校验失败
func NewValidationError(msg string) *BizError {
	return NewError(http.StatusBadRequest, msg)
}

// NewUnauthorizedError 未携带有效身份
func NewUnauthorizedError(msg string) *BizError {
	return NewError(http.StatusUnauthorized, msg)
}

// NewForbiddenError 身份有效但无权操作
func NewForbiddenError(msg string) *BizError {
	return NewError(http.StatusForbidden, msg)
}

// NewNotFoundError 目标记录不存在
func NewNotFoundError(msg string) *BizError {
	return NewError(http.StatusNotFound, msg)
}

// NewConflictError 关系冲突（重复收藏、重复关注、关注自己）
func NewConflictError(msg string) *BizError {
	return NewError(http.StatusConflict, msg)
}

// IsNotFound 判断是否为 404 业务错误
func IsNotFound(err error) bool {
	be, ok := err.(*BizError)
	return ok && be.Code == http.StatusNotFound
}

// IsConflict 判断是否为 409 业务错误
func IsConflict(err error) bool {
	be, ok := err.(*BizError)
	return ok && be.Code == http.StatusConflict
}

func Abort(c *gin.Context, httpStatus int, msg string) {
	c.AbortWithStatusJSON(httpStatus, Response{
		Code: httpStatus,
		Msg:  msg,
		Data: nil,
	})
}
