package parser

import (
	"bytes"
	"context"
	"fmt"
	"io"
	"regexp"
	"strings"

	"github.com/nguyenthenguyen/docx"
)

// DocxReader 从DOCX文档中提取纯文本
type DocxReader struct{}

// NewDocxReader 创建DOCX文本读取器
func NewDocxReader() *DocxReader {
	return &DocxReader{}
}

// ReadText 实现 DocumentReader 接口，从DOCX文件提取纯文本
func (r *DocxReader) ReadText(ctx context.Context, filePath string) (string, error) {
	doc, err := docx.ReadDocxFile(filePath)
	if err != nil {
		return "", fmt.Errorf("打开DOCX文件 %s 失败: %w", filePath, err)
	}
	defer doc.Close()

	return docxXMLToText(doc.Editable().GetContent()), nil
}

// ReadTextFromReader 从 io.Reader 中提取DOCX文本
func (r *DocxReader) ReadTextFromReader(ctx context.Context, reader io.Reader, uri string) (string, error) {
	var buf bytes.Buffer
	if _, err := io.Copy(&buf, reader); err != nil {
		return "", fmt.Errorf("读取DOCX内容失败 (URI: %s): %w", uri, err)
	}

	doc, err := docx.ReadDocxFromMemory(bytes.NewReader(buf.Bytes()), int64(buf.Len()))
	if err != nil {
		return "", fmt.Errorf("DOCX解析失败 (URI: %s): %w", uri, err)
	}
	defer doc.Close()

	return docxXMLToText(doc.Editable().GetContent()), nil
}

var xmlTagPattern = regexp.MustCompile(`<[^>]+>`)

// docxXMLToText 把 document.xml 内容还原为纯文本
// 段落边界转为换行，其余XML标签全部去除
func docxXMLToText(content string) string {
	content = strings.ReplaceAll(content, "</w:p>", "\n")
	content = strings.ReplaceAll(content, "<w:tab/>", "\t")
	content = strings.ReplaceAll(content, "<w:br/>", "\n")
	text := xmlTagPattern.ReplaceAllString(content, "")

	// 折叠连续空白但保留换行结构
	lines := strings.Split(text, "\n")
	out := make([]string, 0, len(lines))
	for _, line := range lines {
		line = strings.Join(strings.Fields(line), " ")
		out = append(out, line)
	}
	return strings.TrimSpace(strings.Join(out, "\n"))
}
