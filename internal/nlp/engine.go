package nlp

import (
	"fmt"
	"math"
	"strings"
	"unicode"

	"github.com/aaaton/golem/v4"
	"github.com/aaaton/golem/v4/dicts/en"
	prose "github.com/jdkato/prose/v2"
)

// 粗粒度词性标签，与 Penn Treebank 细粒度标签相对应
const (
	PosNoun      = "NOUN"  // NN, NNS
	PosProperN   = "PROPN" // NNP, NNPS
	PosAdjective = "ADJ"   // JJ, JJR, JJS
	PosVerb      = "VERB"  // VB, VBD, VBG, VBN, VBP, VBZ
	PosOther     = "X"     // 其余所有标签
)

// Token 标注后的单个词符
type Token struct {
	Text  string // 原始文本
	Lemma string // 小写词元
	POS   string // 粗粒度词性
	Stop  bool   // 是否为停用词
	Punct bool   // 是否为标点或纯符号
}

// Engine NLP引擎，进程启动时加载一次，之后只读共享
// 标注与相似度计算均为纯函数，可被并发请求安全使用
type Engine struct {
	lemmatizer *golem.Lemmatizer
}

// NewEngine 初始化NLP引擎（加载英文词元词典）
// 加载失败时调用方应降级为无NLP能力，而不是中断启动
func NewEngine() (*Engine, error) {
	lemmatizer, err := golem.New(en.New())
	if err != nil {
		return nil, fmt.Errorf("加载英文词元词典失败: %w", err)
	}
	return &Engine{lemmatizer: lemmatizer}, nil
}

// Annotate 对文本分词并标注词性/词元/停用词
func (e *Engine) Annotate(text string) ([]Token, error) {
	if strings.TrimSpace(text) == "" {
		return nil, nil
	}

	// 只需要分词和词性标注，关闭实体识别与分句以减少开销
	doc, err := prose.NewDocument(text,
		prose.WithSegmentation(false),
		prose.WithExtraction(false),
	)
	if err != nil {
		return nil, fmt.Errorf("文本标注失败: %w", err)
	}

	raw := doc.Tokens()
	tokens := make([]Token, 0, len(raw))
	for _, t := range raw {
		word := strings.TrimSpace(t.Text)
		if word == "" {
			continue
		}

		lower := strings.ToLower(word)
		token := Token{
			Text:  word,
			Lemma: strings.ToLower(e.lemmatizer.Lemma(lower)),
			POS:   coarsePOS(t.Tag),
			Stop:  stopwords[lower],
			Punct: isPunct(word),
		}
		tokens = append(tokens, token)
	}
	return tokens, nil
}

// Similarity 计算两段文本的语义相似度，返回 [0,1] 区间的余弦值
// 基于内容词元的词频向量；任一向量为零向量时返回 0 而不是 NaN
func (e *Engine) Similarity(textA, textB string) float64 {
	vecA := e.docVector(textA)
	vecB := e.docVector(textB)
	return cosine(vecA, vecB)
}

// docVector 构建词元词频向量（忽略标点，保留停用词以贴近整体文档语义）
func (e *Engine) docVector(text string) map[string]float64 {
	tokens, err := e.Annotate(text)
	if err != nil {
		return nil
	}
	vec := make(map[string]float64, len(tokens))
	for _, t := range tokens {
		if t.Punct || t.Lemma == "" {
			continue
		}
		vec[t.Lemma]++
	}
	return vec
}

// cosine 稀疏向量余弦相似度，零向量返回 0
func cosine(a, b map[string]float64) float64 {
	if len(a) == 0 || len(b) == 0 {
		return 0
	}

	var dot, normA, normB float64
	for k, va := range a {
		normA += va * va
		if vb, ok := b[k]; ok {
			dot += va * vb
		}
	}
	for _, vb := range b {
		normB += vb * vb
	}

	if normA == 0 || normB == 0 {
		return 0
	}
	return dot / (math.Sqrt(normA) * math.Sqrt(normB))
}

// coarsePOS 将 Penn Treebank 标签折叠为粗粒度词性
func coarsePOS(tag string) string {
	switch {
	case strings.HasPrefix(tag, "NNP"):
		return PosProperN
	case strings.HasPrefix(tag, "NN"):
		return PosNoun
	case strings.HasPrefix(tag, "JJ"):
		return PosAdjective
	case strings.HasPrefix(tag, "VB"):
		return PosVerb
	default:
		return PosOther
	}
}

// isPunct 判断词符是否全部由标点或符号构成
func isPunct(word string) bool {
	for _, r := range word {
		if !unicode.IsPunct(r) && !unicode.IsSymbol(r) {
			return false
		}
	}
	return true
}
