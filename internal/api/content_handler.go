package api

import (
	"fmt"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"foliocms/internal/content"
	"foliocms/internal/errcode"
)

// bindFunc 把请求体解析为一条新记录（用于创建）和一个部分更新映射
// （用于 PUT 合并）。解析失败包装为 errcode.ErrValidation。
type bindFunc[M any] func(c *gin.Context) (M, map[string]any, error)

// entityHandler 是七类内容实体共用的 CRUD 处理器，
// 把逐路由重复的错误处理折叠到一处。
type entityHandler[M any] struct {
	store *content.Store[M]
	bind  bindFunc[M]
}

func registerEntityRoutes[M any](rg *gin.RouterGroup, path string, store *content.Store[M], bind bindFunc[M]) {
	h := &entityHandler[M]{store: store, bind: bind}
	grp := rg.Group("/" + path)
	grp.GET("", h.list)
	grp.POST("", h.create)
	grp.GET("/:id", h.get)
	grp.PUT("/:id", h.update)
	grp.DELETE("/:id", h.delete)
}

func (h *entityHandler[M]) list(c *gin.Context) {
	records, err := h.store.List(c.Request.Context())
	if err != nil {
		RespondError(c, err)
		return
	}
	c.JSON(http.StatusOK, records)
}

func (h *entityHandler[M]) get(c *gin.Context) {
	id, err := parseIDParam(c)
	if err != nil {
		RespondError(c, err)
		return
	}
	record, err := h.store.Get(c.Request.Context(), id)
	if err != nil {
		RespondError(c, err)
		return
	}
	c.JSON(http.StatusOK, record)
}

func (h *entityHandler[M]) create(c *gin.Context) {
	record, _, err := h.bind(c)
	if err != nil {
		RespondError(c, err)
		return
	}
	if err := h.store.Create(c.Request.Context(), &record); err != nil {
		RespondError(c, err)
		return
	}
	c.JSON(http.StatusCreated, record)
}

func (h *entityHandler[M]) update(c *gin.Context) {
	id, err := parseIDParam(c)
	if err != nil {
		RespondError(c, err)
		return
	}
	_, updates, err := h.bind(c)
	if err != nil {
		RespondError(c, err)
		return
	}
	record, err := h.store.Update(c.Request.Context(), id, updates)
	if err != nil {
		RespondError(c, err)
		return
	}
	c.JSON(http.StatusOK, record)
}

func (h *entityHandler[M]) delete(c *gin.Context) {
	id, err := parseIDParam(c)
	if err != nil {
		RespondError(c, err)
		return
	}
	success, err := h.store.Delete(c.Request.Context(), id)
	if err != nil {
		RespondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"success": success})
}

func parseIDParam(c *gin.Context) (uint, error) {
	id, err := strconv.ParseUint(c.Param("id"), 10, 64)
	if err != nil {
		return 0, fmt.Errorf("%w: %q", errcode.ErrInvalidID, c.Param("id"))
	}
	return uint(id), nil
}
