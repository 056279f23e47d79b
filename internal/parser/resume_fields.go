package parser

import (
	"context"
	"fmt"
	"io"
	"regexp"
	"strings"

	"resume-match-go/internal/types"
)

// FieldExtractor 从文档中提取结构化简历字段
// 通过注入的 DocumentReader 完成"文档 → 文本"转换，自身只做字段启发式识别
type FieldExtractor struct {
	reader DocumentReader
}

// NewFieldExtractor 创建字段提取器
func NewFieldExtractor(reader DocumentReader) *FieldExtractor {
	return &FieldExtractor{reader: reader}
}

// ParseFile 解析文档文件，返回结构化简历
func (e *FieldExtractor) ParseFile(ctx context.Context, filePath string) (*types.ParsedResume, error) {
	text, err := e.reader.ReadText(ctx, filePath)
	if err != nil {
		return nil, fmt.Errorf("读取文档文本失败: %w", err)
	}
	return ExtractFields(text), nil
}

// ParseReader 从 io.Reader 解析文档，返回结构化简历
func (e *FieldExtractor) ParseReader(ctx context.Context, reader io.Reader, uri string) (*types.ParsedResume, error) {
	text, err := e.reader.ReadTextFromReader(ctx, reader, uri)
	if err != nil {
		return nil, fmt.Errorf("读取文档文本失败: %w", err)
	}
	return ExtractFields(text), nil
}

var (
	emailPattern = regexp.MustCompile(`[a-zA-Z0-9._%+\-]+@[a-zA-Z0-9.\-]+\.[a-zA-Z]{2,}`)
	phonePattern = regexp.MustCompile(`(\+?\d{1,3}[\s\-.]?)?(\(?\d{3}\)?[\s\-.]?)\d{3}[\s\-.]?\d{4}`)
)

// 简历小节标题关键词，标题行匹配后切换当前小节
var sectionHeaders = map[string][]string{
	"summary":    {"summary", "objective", "profile", "about me", "about"},
	"experience": {"experience", "work experience", "employment", "employment history", "work history", "professional experience"},
	"skills":     {"skills", "technical skills", "skills & tools", "technologies", "core competencies"},
	"education":  {"education", "academic background", "academics"},
}

// ExtractFields 用启发式规则从简历纯文本中提取结构化字段
// 提取不到的字段保持零值，调用方按缺失处理；纯函数，永不报错
func ExtractFields(text string) *types.ParsedResume {
	resume := &types.ParsedResume{}
	if strings.TrimSpace(text) == "" {
		return resume
	}

	if email := emailPattern.FindString(text); email != "" {
		resume.Email = email
	}
	if phone := phonePattern.FindString(text); phone != "" {
		resume.Phone = strings.TrimSpace(phone)
	}

	sections := splitSections(text)
	resume.Name = guessName(sections[""])
	resume.Summary = strings.Join(sections["summary"], " ")
	resume.Experience = sections["experience"]
	resume.Skills = splitSkillItems(sections["skills"])
	resume.Education = sections["education"]
	return resume
}

// splitSections 按小节标题把文本行分组，标题之前的行归入 "" 组
func splitSections(text string) map[string][]string {
	sections := make(map[string][]string)
	current := ""

	for _, rawLine := range strings.Split(text, "\n") {
		line := strings.TrimSpace(rawLine)
		if line == "" {
			continue
		}
		if name, ok := matchSectionHeader(line); ok {
			current = name
			continue
		}
		sections[current] = append(sections[current], line)
	}
	return sections
}

// matchSectionHeader 判断一行是否为小节标题
// 只接受较短的行，避免正文中出现关键词时误切换小节
func matchSectionHeader(line string) (string, bool) {
	normalized := strings.ToLower(strings.TrimRight(strings.TrimSpace(line), ":："))
	if len(strings.Fields(normalized)) > 4 {
		return "", false
	}
	for name, keywords := range sectionHeaders {
		for _, keyword := range keywords {
			if normalized == keyword {
				return name, true
			}
		}
	}
	return "", false
}

// guessName 从首个小节标题之前的行中猜测姓名
// 取第一个 1-4 个词、不含数字和邮箱符号的行
func guessName(headLines []string) string {
	for _, line := range headLines {
		if strings.ContainsAny(line, "@0123456789") {
			continue
		}
		words := strings.Fields(line)
		if len(words) >= 1 && len(words) <= 4 {
			return line
		}
	}
	return ""
}

// splitSkillItems 技能行常用逗号/分号/竖线分隔，拆开为独立条目
func splitSkillItems(lines []string) []string {
	var skills []string
	for _, line := range lines {
		items := strings.FieldsFunc(line, func(r rune) bool {
			return r == ',' || r == ';' || r == '|' || r == '•'
		})
		for _, item := range items {
			if item = strings.TrimSpace(item); item != "" {
				skills = append(skills, item)
			}
		}
	}
	return skills
}
