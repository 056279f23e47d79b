package report

import (
	"bytes"
	"fmt"
	"strconv"
	"strings"

	"github.com/go-pdf/fpdf"

	"resume-match-go/internal/config"
	"resume-match-go/internal/types"
)

// Generator 把评分结果渲染为分页的PDF报告
// 只消费 ScoreBundle 的文本/数值字段，所有字段均按可缺失处理
type Generator struct {
	cfg config.ReportConfig
}

// NewGenerator 创建报告生成器
func NewGenerator(cfg config.ReportConfig) *Generator {
	return &Generator{cfg: cfg}
}

// Render 渲染PDF报告并返回文件字节
func (g *Generator) Render(bundle *types.ScoreBundle) ([]byte, error) {
	if bundle == nil {
		return nil, fmt.Errorf("评分结果为空，无法生成报告")
	}

	pdf := fpdf.New("P", "pt", g.cfg.PageSize, "")
	pdf.SetMargins(g.cfg.MarginPt, g.cfg.MarginPt, g.cfg.MarginPt)
	pdf.SetAutoPageBreak(true, g.cfg.MarginPt)
	pdf.AddPage()
	pdf.SetFont(g.cfg.FontFamily, "", g.cfg.FontSize)

	// 核心字体使用cp1252编码，项目符号等字符需要转换
	translate := pdf.UnicodeTranslatorFromDescriptor("")

	for _, line := range buildLines(bundle) {
		for _, wrapped := range wrapLine(line, g.cfg.WrapWidth) {
			pdf.CellFormat(0, g.cfg.LineHeight, translate(wrapped), "", 1, "L", false, 0, "")
		}
	}

	var buf bytes.Buffer
	if err := pdf.Output(&buf); err != nil {
		return nil, fmt.Errorf("生成PDF报告失败: %w", err)
	}
	return buf.Bytes(), nil
}

// buildLines 把评分结果展开为报告的文本行，缺失的分数直接跳过
func buildLines(bundle *types.ScoreBundle) []string {
	var lines []string

	lines = append(lines, "ATS Score: "+formatScore(bundle.CompletenessScore))
	if bundle.KeywordOverlap != nil {
		lines = append(lines, "Keyword Overlap: "+formatScore(*bundle.KeywordOverlap))
	}
	if bundle.SemanticSimilarity != nil {
		lines = append(lines, "Semantic Similarity: "+formatScore(*bundle.SemanticSimilarity))
	}
	if bundle.MatchScore != nil {
		lines = append(lines, "Overall Match Score: "+formatScore(*bundle.MatchScore))
	}

	lines = append(lines, "", "=== FEEDBACK ===", "")
	if bundle.Feedback != "" {
		lines = append(lines, strings.Split(bundle.Feedback, "\n")...)
	}

	lines = append(lines, "", "=== STRENGTHS ===", "")
	if len(bundle.Strengths) > 0 {
		for _, item := range bundle.Strengths {
			lines = append(lines, "• "+item)
		}
	} else {
		lines = append(lines, "No strengths found.")
	}

	lines = append(lines, "", "=== WEAKNESSES ===", "")
	if len(bundle.Weaknesses) > 0 {
		for _, item := range bundle.Weaknesses {
			lines = append(lines, "• "+item)
		}
	} else {
		lines = append(lines, "No missing keywords found.")
	}

	return lines
}

// formatScore 分数固定保留一位小数
func formatScore(v float64) string {
	return strconv.FormatFloat(v, 'f', 1, 64)
}

// wrapLine 按最大字符数对行做贪心折行，空行原样保留
func wrapLine(line string, width int) []string {
	if len(line) <= width {
		return []string{line}
	}

	var wrapped []string
	current := ""
	for _, word := range strings.Fields(line) {
		switch {
		case current == "":
			current = word
		case len(current)+1+len(word) <= width:
			current += " " + word
		default:
			wrapped = append(wrapped, current)
			current = word
		}
	}
	if current != "" {
		wrapped = append(wrapped, current)
	}
	if len(wrapped) == 0 {
		wrapped = []string{""}
	}
	return wrapped
}
