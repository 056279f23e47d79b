package handler

import (
	"context"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/gofrs/uuid/v5"

	"resume-match-go/internal/config"
	"resume-match-go/internal/logger"
	"resume-match-go/internal/parser"
	"resume-match-go/internal/report"
	"resume-match-go/internal/scoring"
	"resume-match-go/internal/types"
)

// ResumeHandler 简历分析处理器，负责协调上传、解析、评分到报告的完整流程
type ResumeHandler struct {
	cfg        *config.Config
	extractor  *parser.FieldExtractor
	comparator *scoring.Comparator
	reporter   *report.Generator
}

// NewResumeHandler 创建简历分析处理器
func NewResumeHandler(
	cfg *config.Config,
	extractor *parser.FieldExtractor,
	comparator *scoring.Comparator,
	reporter *report.Generator,
) *ResumeHandler {
	return &ResumeHandler{
		cfg:        cfg,
		extractor:  extractor,
		comparator: comparator,
		reporter:   reporter,
	}
}

// ResumeAnalyzeResponse 简历分析响应
// 评分字段直接平铺在顶层，与解析结果一起返回
type ResumeAnalyzeResponse struct {
	SubmissionUUID string              `json:"submission_uuid"`
	ParsedData     *types.ParsedResume `json:"parsed_data"`
	types.ScoreBundle
}

// HandleResumeUpload 处理简历上传请求：落盘临时文件、提取字段、评分
// 临时文件在任何返回路径上都会被删除
func (h *ResumeHandler) HandleResumeUpload(ctx context.Context, reader io.Reader, fileSize int64,
	filename string, jobDescription string) (*ResumeAnalyzeResponse, error) {

	// 1. 生成本次提交的UUIDv7
	uuidV7, err := uuid.NewV7()
	if err != nil {
		return nil, NewParseError("", "生成提交UUID失败: "+err.Error())
	}
	submissionUUID := uuidV7.String()

	// 2. 校验文件大小与扩展名
	maxBytes := int64(h.cfg.Upload.MaxFileSizeMB) * 1024 * 1024
	if maxBytes > 0 && fileSize > maxBytes {
		return nil, NewFileTooLargeError(submissionUUID, filename)
	}

	ext := strings.ToLower(filepath.Ext(filename))
	if ext == "" {
		ext = ".pdf" // 默认按PDF处理
	}
	if !h.extensionAllowed(ext) {
		return nil, NewInputMissingError("不支持的文件扩展名: " + ext)
	}

	// 3. 落盘到临时文件，保留扩展名以便读取器路由
	tmpFile, err := os.CreateTemp(h.cfg.Upload.TempDir, "resume-*"+ext)
	if err != nil {
		return nil, NewParseError(submissionUUID, "创建临时文件失败: "+err.Error())
	}
	tmpPath := tmpFile.Name()
	defer func() {
		// 无论成功失败，临时文件都必须清理
		if removeErr := os.Remove(tmpPath); removeErr != nil && !os.IsNotExist(removeErr) {
			logger.Warn().Err(removeErr).Str("path", tmpPath).Msg("删除临时文件失败")
		}
	}()

	if _, err := io.Copy(tmpFile, reader); err != nil {
		tmpFile.Close()
		return nil, NewParseError(submissionUUID, "写入临时文件失败: "+err.Error())
	}
	if err := tmpFile.Close(); err != nil {
		return nil, NewParseError(submissionUUID, "关闭临时文件失败: "+err.Error())
	}

	// 4. 提取结构化字段；解析失败直接中止请求，不返回部分结果
	parsed, err := h.extractor.ParseFile(ctx, tmpPath)
	if err != nil {
		return nil, NewParseError(submissionUUID, err.Error())
	}

	// 5. 评分与反馈
	bundle := h.comparator.Compare(parsed, jobDescription)

	logger.Info().
		Str("submission_uuid", submissionUUID).
		Str("filename", filename).
		Float64("ats_score", bundle.CompletenessScore).
		Bool("compared", bundle.HasComparison()).
		Msg("简历分析完成")

	return &ResumeAnalyzeResponse{
		SubmissionUUID: submissionUUID,
		ParsedData:     parsed,
		ScoreBundle:    *bundle,
	}, nil
}

// HandleFeedbackReport 把客户端回传的评分结果渲染为PDF报告
func (h *ResumeHandler) HandleFeedbackReport(ctx context.Context, bundle *types.ScoreBundle) ([]byte, error) {
	if bundle == nil {
		return nil, NewInputMissingError("缺少评分结果")
	}

	data, err := h.reporter.Render(bundle)
	if err != nil {
		return nil, NewParseError("", "渲染PDF报告失败: "+err.Error())
	}

	logger.Info().Int("pdf_bytes", len(data)).Msg("反馈报告生成完成")
	return data, nil
}

// extensionAllowed 判断扩展名是否在允许列表中
func (h *ResumeHandler) extensionAllowed(ext string) bool {
	for _, allowed := range h.cfg.Upload.AllowedExtensions {
		if strings.EqualFold(allowed, ext) {
			return true
		}
	}
	return false
}
