package types

// ParsedResume 外部字段提取器产出的结构化简历
// 任何字段都可能缺失或为空，缺失只会降低评分，不会报错
type ParsedResume struct {
	Name       string   `json:"name,omitempty"`
	Email      string   `json:"email,omitempty"`
	Phone      string   `json:"phone,omitempty"`
	Summary    string   `json:"summary,omitempty"`
	Experience []string `json:"experience,omitempty"`
	Skills     []string `json:"skills,omitempty"`
	Education  []string `json:"education,omitempty"`
}

// ScoreBundle 一次简历与JD对比的完整评分结果
// 百分比分数均裁剪到 [0,100] 并保留一位小数
// KeywordOverlap/SemanticSimilarity/MatchScore 仅在简历文本与JD文本均非空时存在，否则为 nil
type ScoreBundle struct {
	CompletenessScore  float64  `json:"ats_score"`
	KeywordOverlap     *float64 `json:"keyword_overlap"`
	SemanticSimilarity *float64 `json:"semantic_similarity"`
	MatchScore         *float64 `json:"match_score"`
	Strengths          []string `json:"strengths"`
	Weaknesses         []string `json:"weaknesses"`
	Feedback           string   `json:"feedback"`
}

// HasComparison 判断是否完成了简历与JD的对比
func (b *ScoreBundle) HasComparison() bool {
	return b.KeywordOverlap != nil && b.SemanticSimilarity != nil
}
