package parser

import (
	"context"
	"io"
	"path/filepath"
	"strings"
)

// DocumentReader "文档 → 纯文本" 的可插拔读取策略
// 字段提取器通过该接口消费文档内容，便于替换底层解析实现
type DocumentReader interface {
	// ReadText 从文件路径读取纯文本内容
	ReadText(ctx context.Context, filePath string) (string, error)

	// ReadTextFromReader 从 io.Reader 读取纯文本内容，uri 仅用于日志和错误信息
	ReadTextFromReader(ctx context.Context, reader io.Reader, uri string) (string, error)
}

// ReaderSet 按扩展名路由到具体读取器的组合读取器
type ReaderSet struct {
	readers  map[string]DocumentReader
	fallback DocumentReader
}

// NewReaderSet 创建组合读取器，fallback 用于处理未注册的扩展名
func NewReaderSet(fallback DocumentReader) *ReaderSet {
	return &ReaderSet{
		readers:  make(map[string]DocumentReader),
		fallback: fallback,
	}
}

// Register 为指定扩展名(形如 ".pdf")注册读取器
func (s *ReaderSet) Register(ext string, reader DocumentReader) {
	s.readers[strings.ToLower(ext)] = reader
}

// ReadText 根据文件扩展名选择读取器
func (s *ReaderSet) ReadText(ctx context.Context, filePath string) (string, error) {
	return s.pick(filePath).ReadText(ctx, filePath)
}

// ReadTextFromReader 根据 uri 的扩展名选择读取器
func (s *ReaderSet) ReadTextFromReader(ctx context.Context, reader io.Reader, uri string) (string, error) {
	return s.pick(uri).ReadTextFromReader(ctx, reader, uri)
}

func (s *ReaderSet) pick(path string) DocumentReader {
	ext := strings.ToLower(filepath.Ext(path))
	if reader, ok := s.readers[ext]; ok {
		return reader
	}
	return s.fallback
}
