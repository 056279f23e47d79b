package scoring

import (
	"math"
	"strings"

	"resume-match-go/internal/types"
)

// Comparator 评分编排器，负责把(解析后的简历, JD文本)转换为完整的评分结果
type Comparator struct {
	engine      Engine
	minLemmaLen int
}

// Option Comparator 的配置选项
type Option func(*Comparator)

// WithMinLemmaLength 配置关键词词元的最小长度（严格大于该值才保留）
func WithMinLemmaLength(n int) Option {
	return func(c *Comparator) {
		if n > 0 {
			c.minLemmaLen = n
		}
	}
}

// NewComparator 创建评分编排器
// engine 为 nil 表示NLP能力不可用，所有依赖NLP的输出降级为空/缺失
func NewComparator(engine Engine, options ...Option) *Comparator {
	c := &Comparator{
		engine:      engine,
		minLemmaLen: 2,
	}
	for _, option := range options {
		option(c)
	}
	return c
}

// ResumeText 把解析后的简历拼接为纯文本表示
// 固定顺序: summary, experience, skills, education；列表字段用单个空格连接
func ResumeText(resume *types.ParsedResume) string {
	if resume == nil {
		return ""
	}

	var parts []string
	if resume.Summary != "" {
		parts = append(parts, resume.Summary)
	}
	for _, section := range [][]string{resume.Experience, resume.Skills, resume.Education} {
		if len(section) > 0 {
			parts = append(parts, strings.Join(section, " "))
		}
	}
	return strings.Join(parts, "\n")
}

// Compare 计算简历与JD的完整评分结果
// 完整度永远计算；关键词重合度仅在两段文本均非空时存在；
// 语义相似度和综合匹配分还要求NLP引擎可用
func (c *Comparator) Compare(resume *types.ParsedResume, jobText string) *types.ScoreBundle {
	bundle := &types.ScoreBundle{
		CompletenessScore: CompletenessScore(resume),
		Strengths:         []string{},
		Weaknesses:        []string{},
	}

	resumeText := ResumeText(resume)
	if strings.TrimSpace(jobText) != "" && strings.TrimSpace(resumeText) != "" {
		resumeKeywords := c.ExtractKeywords(resumeText)
		jobKeywords := c.ExtractKeywords(jobText)
		shared := Intersect(resumeKeywords, jobKeywords)

		// JD关键词集合为空时重合度记 0
		overlap := 0.0
		if len(jobKeywords) > 0 {
			overlap = float64(len(shared)) / float64(len(jobKeywords)) * 100
		}
		overlap = round1(clamp(overlap, 0, 100))
		bundle.KeywordOverlap = &overlap

		bundle.Strengths = shared.Sorted()
		bundle.Weaknesses = Difference(jobKeywords, resumeKeywords).Sorted()

		if c.engine != nil {
			similarity := round1(clamp(c.engine.Similarity(resumeText, jobText), 0, 1) * 100)
			bundle.SemanticSimilarity = &similarity

			// 综合匹配分为两个分数的简单平均（不加权）
			match := round1((overlap + similarity) / 2)
			bundle.MatchScore = &match
		}
	}

	bundle.Feedback = BuildFeedback(&bundle.CompletenessScore, bundle.KeywordOverlap, bundle.SemanticSimilarity)
	return bundle
}

// round1 四舍五入保留一位小数
func round1(v float64) float64 {
	return math.Round(v*10) / 10
}

// clamp 把数值裁剪到 [lo, hi] 区间
func clamp(v, lo, hi float64) float64 {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}
