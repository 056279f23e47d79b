package parser

import (
	"context"
	"fmt"
	"io"
	"log"
	"os"
	"time"

	"github.com/cloudwego/eino-ext/components/document/parser/pdf"
	einoParser "github.com/cloudwego/eino/components/document/parser"
)

// PDFReader 使用 Eino PDF Parser 从PDF文档中提取纯文本
type PDFReader struct {
	parser *pdf.PDFParser
	logger *log.Logger
}

// PDFReaderOption PDF读取器的配置选项
type PDFReaderOption func(*PDFReader)

// WithPDFLogger 配置自定义日志记录器
func WithPDFLogger(logger *log.Logger) PDFReaderOption {
	return func(r *PDFReader) {
		r.logger = logger
	}
}

// NewPDFReader 初始化PDF文本读取器
// 配置为不按页面分割，以获取整个文档的连续文本
func NewPDFReader(ctx context.Context, options ...PDFReaderOption) (*PDFReader, error) {
	p, err := pdf.NewPDFParser(ctx, &pdf.Config{
		ToPages: false, // 整个PDF的文本作为单个字符串返回
	})
	if err != nil {
		return nil, fmt.Errorf("创建PDF解析器失败: %w", err)
	}

	reader := &PDFReader{
		parser: p,
		logger: log.New(io.Discard, "", 0),
	}
	for _, option := range options {
		option(reader)
	}
	return reader, nil
}

// ReadText 实现 DocumentReader 接口，从PDF文件提取纯文本
func (r *PDFReader) ReadText(ctx context.Context, filePath string) (string, error) {
	file, err := os.Open(filePath)
	if err != nil {
		return "", fmt.Errorf("打开PDF文件 %s 失败: %w", filePath, err)
	}
	defer file.Close()

	return r.ReadTextFromReader(ctx, file, filePath)
}

// ReadTextFromReader 从 io.Reader 中提取PDF文本
func (r *PDFReader) ReadTextFromReader(ctx context.Context, reader io.Reader, uri string) (string, error) {
	startTime := time.Now()
	r.logger.Printf("开始提取PDF文本 (URI: %s)", uri)

	// 解析超时上限30秒，防止异常文档阻塞请求
	ctx, cancel := context.WithTimeout(ctx, 30*time.Second)
	defer cancel()

	docs, err := r.parser.Parse(ctx, reader, einoParser.WithURI(uri))
	duration := time.Since(startTime)
	if err != nil {
		r.logger.Printf("PDF提取失败: %s (用时 %.2f秒)", err, duration.Seconds())
		return "", fmt.Errorf("PDF解析失败 (URI: %s): %w", uri, err)
	}
	if len(docs) == 0 {
		return "", fmt.Errorf("PDF解析无结果 (URI: %s)", uri)
	}

	// 合并所有文档的内容（以防万一返回了多个）
	var fullContent string
	for i, doc := range docs {
		fullContent += doc.Content
		if i < len(docs)-1 {
			fullContent += "\n"
		}
	}

	r.logger.Printf("PDF提取完成: %d 个字符 (用时 %.2f秒)", len(fullContent), duration.Seconds())
	return fullContent, nil
}
