package router

import (
	"context"
	"encoding/json"
	"errors"

	"github.com/cloudwego/hertz/pkg/app"
	"github.com/cloudwego/hertz/pkg/app/server"
	"github.com/cloudwego/hertz/pkg/common/utils"
	"github.com/cloudwego/hertz/pkg/protocol/consts"

	"resume-match-go/internal/api/handler"
	"resume-match-go/internal/types"
)

// RegisterRoutes 注册 API 路由
func RegisterRoutes(h *server.Hertz, resumeHandler *handler.ResumeHandler) {
	api := h.Group("/api/v1")

	// 简历上传与分析
	api.POST("/resume/upload", func(c context.Context, ctx *app.RequestContext) {
		fileHeader, err := ctx.FormFile("resume")
		if err != nil {
			ctx.JSON(consts.StatusBadRequest, utils.H{"error": "未找到上传文件"})
			return
		}
		if fileHeader.Filename == "" {
			ctx.JSON(consts.StatusBadRequest, utils.H{"error": "未选择文件"})
			return
		}

		jobDescription := ctx.PostForm("job_description")

		file, err := fileHeader.Open()
		if err != nil {
			ctx.JSON(consts.StatusInternalServerError, utils.H{"error": "打开上传文件失败"})
			return
		}
		defer file.Close()

		resp, err := resumeHandler.HandleResumeUpload(
			c,
			file,
			fileHeader.Size,
			fileHeader.Filename,
			jobDescription,
		)
		if err != nil {
			ctx.JSON(statusForError(err), utils.H{"error": err.Error()})
			return
		}

		ctx.JSON(consts.StatusOK, resp)
	})

	// 把评分结果渲染为PDF报告下载
	api.POST("/resume/report", func(c context.Context, ctx *app.RequestContext) {
		body := ctx.Request.Body()
		if len(body) == 0 {
			ctx.JSON(consts.StatusBadRequest, utils.H{"error": "缺少评分结果"})
			return
		}

		var bundle types.ScoreBundle
		if err := json.Unmarshal(body, &bundle); err != nil {
			ctx.JSON(consts.StatusBadRequest, utils.H{"error": "评分结果格式不合法"})
			return
		}

		data, err := resumeHandler.HandleFeedbackReport(c, &bundle)
		if err != nil {
			ctx.JSON(statusForError(err), utils.H{"error": err.Error()})
			return
		}

		ctx.Response.Header.Set("Content-Disposition", `attachment; filename="resume_report.pdf"`)
		ctx.Data(consts.StatusOK, "application/pdf", data)
	})

	// 健康检查
	api.GET("/health", func(c context.Context, ctx *app.RequestContext) {
		ctx.JSON(consts.StatusOK, utils.H{"status": "ok"})
	})
}

// statusForError 把业务错误映射为HTTP状态码
// 输入类错误返回400，其余(解析失败等)返回500
func statusForError(err error) int {
	if errors.Is(err, handler.ErrInputMissing) || errors.Is(err, handler.ErrFileTooLarge) {
		return consts.StatusBadRequest
	}
	return consts.StatusInternalServerError
}
