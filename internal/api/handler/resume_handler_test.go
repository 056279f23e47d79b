package handler

import (
	"context"
	"errors"
	"io"
	"os"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"resume-match-go/internal/config"
	"resume-match-go/internal/nlp"
	"resume-match-go/internal/parser"
	"resume-match-go/internal/report"
	"resume-match-go/internal/scoring"
	"resume-match-go/internal/types"
)

const stubResumeText = `Jane Doe
jane@example.com

Experience
Engineer at X

Skills
Python, SQL

Education
BS CS
`

// textReader 返回固定文本的文档读取器替身
type textReader struct {
	text string
	err  error
}

func (r *textReader) ReadText(ctx context.Context, filePath string) (string, error) {
	return r.text, r.err
}

func (r *textReader) ReadTextFromReader(ctx context.Context, reader io.Reader, uri string) (string, error) {
	return r.text, r.err
}

// wordEngine 按空白分词、全部视为名词的NLP引擎替身
type wordEngine struct{}

func (e *wordEngine) Annotate(text string) ([]nlp.Token, error) {
	var tokens []nlp.Token
	for _, word := range strings.Fields(text) {
		lower := strings.ToLower(word)
		tokens = append(tokens, nlp.Token{Text: word, Lemma: lower, POS: nlp.PosNoun, Stop: nlp.IsStopword(lower)})
	}
	return tokens, nil
}

func (e *wordEngine) Similarity(textA, textB string) float64 { return 0.5 }

func newTestHandler(t *testing.T, reader parser.DocumentReader) *ResumeHandler {
	t.Helper()

	cfg, err := config.LoadConfig("")
	require.NoError(t, err)
	cfg.Upload.TempDir = t.TempDir()

	return NewResumeHandler(
		cfg,
		parser.NewFieldExtractor(reader),
		scoring.NewComparator(&wordEngine{}),
		report.NewGenerator(cfg.Report),
	)
}

// TestHandleResumeUpload 上传处理的正常路径
func TestHandleResumeUpload(t *testing.T) {
	h := newTestHandler(t, &textReader{text: stubResumeText})

	resp, err := h.HandleResumeUpload(context.Background(),
		strings.NewReader("%PDF-fake"), 9, "resume.pdf", "Python SQL developer")
	require.NoError(t, err)
	require.NotNil(t, resp)

	assert.NotEmpty(t, resp.SubmissionUUID)
	require.NotNil(t, resp.ParsedData)
	assert.Equal(t, "Jane Doe", resp.ParsedData.Name)
	assert.Equal(t, "jane@example.com", resp.ParsedData.Email)
	assert.InDelta(t, 100.0, resp.CompletenessScore, 0.001)
	require.NotNil(t, resp.KeywordOverlap, "简历与JD均非空时重合度应存在")
	require.NotNil(t, resp.MatchScore)
	assert.NotEmpty(t, resp.Feedback)
}

// TestHandleResumeUploadNoJob JD为空时对比指标缺失
func TestHandleResumeUploadNoJob(t *testing.T) {
	h := newTestHandler(t, &textReader{text: stubResumeText})

	resp, err := h.HandleResumeUpload(context.Background(),
		strings.NewReader("data"), 4, "resume.pdf", "")
	require.NoError(t, err)

	assert.Nil(t, resp.KeywordOverlap)
	assert.Nil(t, resp.SemanticSimilarity)
	assert.Nil(t, resp.MatchScore)
	assert.Empty(t, resp.Strengths)
	assert.Empty(t, resp.Weaknesses)
}

// TestHandleResumeUploadTempFileCleanup 成功与失败路径都必须清理临时文件
func TestHandleResumeUploadTempFileCleanup(t *testing.T) {
	tmpDir := t.TempDir()

	cfg, err := config.LoadConfig("")
	require.NoError(t, err)
	cfg.Upload.TempDir = tmpDir

	h := NewResumeHandler(cfg,
		parser.NewFieldExtractor(&textReader{text: stubResumeText}),
		scoring.NewComparator(nil),
		report.NewGenerator(cfg.Report))

	_, err = h.HandleResumeUpload(context.Background(), strings.NewReader("data"), 4, "a.pdf", "")
	require.NoError(t, err)

	// 失败路径：读取器报错
	failing := NewResumeHandler(cfg,
		parser.NewFieldExtractor(&textReader{err: errors.New("坏文件")}),
		scoring.NewComparator(nil),
		report.NewGenerator(cfg.Report))

	_, err = failing.HandleResumeUpload(context.Background(), strings.NewReader("data"), 4, "b.pdf", "")
	require.Error(t, err)

	entries, err := os.ReadDir(tmpDir)
	require.NoError(t, err)
	assert.Empty(t, entries, "临时目录中不应残留文件")
}

// TestHandleResumeUploadParseFailure 解析失败应返回 ErrParseFailure 且无部分结果
func TestHandleResumeUploadParseFailure(t *testing.T) {
	h := newTestHandler(t, &textReader{err: errors.New("提取文本失败")})

	resp, err := h.HandleResumeUpload(context.Background(), strings.NewReader("data"), 4, "a.pdf", "")
	require.Error(t, err)
	assert.Nil(t, resp, "解析失败不应返回部分结果")
	assert.True(t, errors.Is(err, ErrParseFailure))
}

// TestHandleResumeUploadFileTooLarge 超过大小限制应返回 ErrFileTooLarge
func TestHandleResumeUploadFileTooLarge(t *testing.T) {
	h := newTestHandler(t, &textReader{text: stubResumeText})

	huge := int64(h.cfg.Upload.MaxFileSizeMB)*1024*1024 + 1
	_, err := h.HandleResumeUpload(context.Background(), strings.NewReader("data"), huge, "a.pdf", "")
	require.Error(t, err)
	assert.True(t, errors.Is(err, ErrFileTooLarge))
}

// TestHandleResumeUploadBadExtension 不在允许列表中的扩展名应返回 ErrInputMissing
func TestHandleResumeUploadBadExtension(t *testing.T) {
	h := newTestHandler(t, &textReader{text: stubResumeText})

	_, err := h.HandleResumeUpload(context.Background(), strings.NewReader("data"), 4, "a.exe", "")
	require.Error(t, err)
	assert.True(t, errors.Is(err, ErrInputMissing))
}

// TestHandleResumeUploadNoExtensionDefaultsPDF 无扩展名的文件按PDF处理
func TestHandleResumeUploadNoExtensionDefaultsPDF(t *testing.T) {
	h := newTestHandler(t, &textReader{text: stubResumeText})

	resp, err := h.HandleResumeUpload(context.Background(), strings.NewReader("data"), 4, "resume", "")
	require.NoError(t, err)
	assert.NotNil(t, resp)
}

// TestHandleFeedbackReport 报告渲染的正常与缺失输入路径
func TestHandleFeedbackReport(t *testing.T) {
	h := newTestHandler(t, &textReader{text: stubResumeText})

	overlap := 66.7
	bundle := &types.ScoreBundle{
		CompletenessScore: 100,
		KeywordOverlap:    &overlap,
		Strengths:         []string{"python"},
		Weaknesses:        []string{"developer"},
		Feedback:          "ok",
	}

	data, err := h.HandleFeedbackReport(context.Background(), bundle)
	require.NoError(t, err)
	assert.True(t, strings.HasPrefix(string(data), "%PDF"))

	_, err = h.HandleFeedbackReport(context.Background(), nil)
	require.Error(t, err)
	assert.True(t, errors.Is(err, ErrInputMissing))
}
