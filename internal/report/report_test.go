package report

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"resume-match-go/internal/config"
	"resume-match-go/internal/types"
)

func testReportConfig() config.ReportConfig {
	return config.ReportConfig{
		PageSize:   "Letter",
		FontFamily: "Helvetica",
		FontSize:   12,
		MarginPt:   72,
		LineHeight: 16,
		WrapWidth:  90,
	}
}

func f(v float64) *float64 { return &v }

// TestRenderProducesPDF 渲染结果应是合法的PDF字节流
func TestRenderProducesPDF(t *testing.T) {
	g := NewGenerator(testReportConfig())
	bundle := &types.ScoreBundle{
		CompletenessScore:  100,
		KeywordOverlap:     f(66.7),
		SemanticSimilarity: f(50),
		MatchScore:         f(58.4),
		Strengths:          []string{"python", "sql"},
		Weaknesses:         []string{"developer"},
		Feedback:           "Your resume includes most core sections that ATS systems look for.",
	}

	data, err := g.Render(bundle)
	require.NoError(t, err)
	require.NotEmpty(t, data)
	assert.True(t, strings.HasPrefix(string(data), "%PDF"), "输出应以 %%PDF 文件头开始")
}

// TestRenderNilBundle 空评分结果应报错而不是崩溃
func TestRenderNilBundle(t *testing.T) {
	g := NewGenerator(testReportConfig())
	_, err := g.Render(nil)
	assert.Error(t, err)
}

// TestBuildLinesFullBundle 验证报告行的内容与顺序
func TestBuildLinesFullBundle(t *testing.T) {
	bundle := &types.ScoreBundle{
		CompletenessScore:  100,
		KeywordOverlap:     f(66.7),
		SemanticSimilarity: f(50),
		MatchScore:         f(58.4),
		Strengths:          []string{"python", "sql"},
		Weaknesses:         []string{"developer"},
		Feedback:           "Looks good.",
	}

	lines := buildLines(bundle)
	want := []string{
		"ATS Score: 100.0",
		"Keyword Overlap: 66.7",
		"Semantic Similarity: 50.0",
		"Overall Match Score: 58.4",
		"", "=== FEEDBACK ===", "",
		"Looks good.",
		"", "=== STRENGTHS ===", "",
		"• python",
		"• sql",
		"", "=== WEAKNESSES ===", "",
		"• developer",
	}
	assert.Equal(t, want, lines)
}

// TestBuildLinesMissingScores 缺失的分数不应出现在报告中
func TestBuildLinesMissingScores(t *testing.T) {
	bundle := &types.ScoreBundle{
		CompletenessScore: 40,
		Feedback:          "Upload a resume and job description to see detailed feedback.",
	}

	lines := buildLines(bundle)
	joined := strings.Join(lines, "\n")

	assert.Contains(t, joined, "ATS Score: 40.0")
	assert.NotContains(t, joined, "Keyword Overlap")
	assert.NotContains(t, joined, "Semantic Similarity")
	assert.NotContains(t, joined, "Overall Match Score")
	assert.Contains(t, joined, "No strengths found.")
	assert.Contains(t, joined, "No missing keywords found.")
}

// TestWrapLine 折行行为
func TestWrapLine(t *testing.T) {
	assert.Equal(t, []string{""}, wrapLine("", 10), "空行应原样保留")
	assert.Equal(t, []string{"short"}, wrapLine("short", 10))

	wrapped := wrapLine("alpha beta gamma delta", 11)
	assert.Equal(t, []string{"alpha beta", "gamma delta"}, wrapped)

	for _, line := range wrapLine(strings.Repeat("word ", 50), 20) {
		assert.LessOrEqual(t, len(line), 20, "折行后每行不应超过宽度")
	}
}
