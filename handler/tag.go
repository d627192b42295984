package handler

import (
	"net/http"
	"strconv"

	"Foodgram/dao"
	"Foodgram/pkg/context"
	"Foodgram/pkg/response"

	"github.com/gin-gonic/gin"
)

type Tag struct {
	TagDAO *dao.TagDAO
}

func (h *Tag) RegisterRouter(r gin.IRouter) {
	g := r.Group("/tags")
	g.GET("", context.Wrap(h.List))
	g.GET("/:tag_id", context.Wrap(h.Retrieve))
}

// List 全量标签
func (h *Tag) List(c *gin.Context) error {
	tags, err := h.TagDAO.List(c.Request.Context())
	if err != nil {
		return err
	}
	response.Success(c, tags)
	return nil
}

// Retrieve 单个标签
func (h *Tag) Retrieve(c *gin.Context) error {
	id, err := strconv.ParseInt(c.Param("tag_id"), 10, 64)
	if err != nil {
		return response.NewError(http.StatusBadRequest, "tag_id 格式错误")
	}

	tag, err := h.TagDAO.GetByID(c.Request.Context(), id)
	if err != nil {
		return err
	}
	if tag == nil {
		return response.NewNotFoundError("标签不存在")
	}
	response.Success(c, tag)
	return nil
}
