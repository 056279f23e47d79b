package scoring

import (
	"strings"

	"resume-match-go/internal/types"
)

// 各简历字段在完整度评分中的权重，总分 100
const (
	weightName       = 5
	weightEmail      = 5
	weightExperience = 40
	weightSkills     = 30
	weightEducation  = 20
)

// CompletenessScore 基于结构化字段的存在性计算ATS风格的完整度评分
// 只依赖解析后的简历本身，与JD无关；输入为 nil 时返回 0，永不报错
func CompletenessScore(resume *types.ParsedResume) float64 {
	if resume == nil {
		return 0
	}

	score := 0
	if strings.TrimSpace(resume.Name) != "" {
		score += weightName
	}
	if strings.TrimSpace(resume.Email) != "" {
		score += weightEmail
	}
	if len(resume.Experience) > 0 {
		score += weightExperience
	}
	if len(resume.Skills) > 0 {
		score += weightSkills
	}
	if len(resume.Education) > 0 {
		score += weightEducation
	}

	return round1(float64(score))
}
