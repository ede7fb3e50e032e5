package api

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"foliocms/internal/resume"
)

// ResumeHandler 负责公开简历接口。
type ResumeHandler struct {
	assembler *resume.Assembler
}

// NewResumeHandler 构造 ResumeHandler。
func NewResumeHandler(assembler *resume.Assembler) *ResumeHandler {
	return &ResumeHandler{assembler: assembler}
}

// GetResume 返回拼装后的公开简历。任何内部失败都已在拼装层
// 折算为占位简历，这个接口恒定返回 200。
func (h *ResumeHandler) GetResume(c *gin.Context) {
	c.JSON(http.StatusOK, h.assembler.Assemble(c.Request.Context()))
}
