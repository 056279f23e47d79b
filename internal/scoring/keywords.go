package scoring

import (
	"sort"
	"strings"

	"resume-match-go/internal/logger"
	"resume-match-go/internal/nlp"
)

// Engine 评分所依赖的外部NLP能力
// 引擎在进程启动时加载一次，只读共享；加载失败时传入 nil，所有依赖NLP的输出降级为空
type Engine interface {
	// Annotate 对文本分词并标注词性/词元/停用词
	Annotate(text string) ([]nlp.Token, error)

	// Similarity 计算两段文本的语义相似度，返回 [0,1] 区间的值
	Similarity(textA, textB string) float64
}

// KeywordSet 归一化后的关键词词元集合，无序且已去重
type KeywordSet map[string]struct{}

// Add 向集合中添加词元
func (s KeywordSet) Add(lemma string) {
	s[lemma] = struct{}{}
}

// Contains 判断词元是否在集合中
func (s KeywordSet) Contains(lemma string) bool {
	_, ok := s[lemma]
	return ok
}

// Sorted 按词元字典序返回切片，永不返回 nil
func (s KeywordSet) Sorted() []string {
	out := make([]string, 0, len(s))
	for lemma := range s {
		out = append(out, lemma)
	}
	sort.Strings(out)
	return out
}

// Intersect 返回两个集合的交集
func Intersect(a, b KeywordSet) KeywordSet {
	out := make(KeywordSet)
	for lemma := range a {
		if b.Contains(lemma) {
			out.Add(lemma)
		}
	}
	return out
}

// Difference 返回 a 中存在而 b 中不存在的词元集合
func Difference(a, b KeywordSet) KeywordSet {
	out := make(KeywordSet)
	for lemma := range a {
		if !b.Contains(lemma) {
			out.Add(lemma)
		}
	}
	return out
}

// ExtractKeywords 从自由文本中提取关键词集合
// 保留词性为名词/专有名词/形容词/动词的内容词，过滤停用词和标点，
// 词元统一小写且长度必须大于 minLemmaLen
// 文本为空或NLP引擎不可用时返回空集合，永不报错
func (c *Comparator) ExtractKeywords(text string) KeywordSet {
	keywords := make(KeywordSet)
	if strings.TrimSpace(text) == "" || c.engine == nil {
		return keywords
	}

	tokens, err := c.engine.Annotate(text)
	if err != nil {
		// 标注失败按NLP不可用降级处理
		logger.Warn().Err(err).Msg("文本标注失败，关键词提取降级为空集合")
		return keywords
	}

	for _, t := range tokens {
		if t.Stop || t.Punct {
			continue
		}
		switch t.POS {
		case nlp.PosNoun, nlp.PosProperN, nlp.PosAdjective, nlp.PosVerb:
		default:
			continue
		}
		if len(t.Lemma) > c.minLemmaLen {
			keywords.Add(t.Lemma)
		}
	}
	return keywords
}
