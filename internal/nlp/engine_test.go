package nlp

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// TestNewEngine 验证引擎初始化（词典为纯Go数据包，离线可加载）
func TestNewEngine(t *testing.T) {
	engine, err := NewEngine()
	require.NoError(t, err, "引擎初始化不应失败")
	require.NotNil(t, engine)
}

// TestAnnotateEmptyText 空文本标注应返回空结果且无错误
func TestAnnotateEmptyText(t *testing.T) {
	engine, err := NewEngine()
	require.NoError(t, err)

	for _, text := range []string{"", "   ", "\n\t"} {
		tokens, err := engine.Annotate(text)
		assert.NoError(t, err, "空文本不应报错")
		assert.Empty(t, tokens, "空文本应返回空词符列表")
	}
}

// TestAnnotateBasic 验证基本的标注行为：词元小写、停用词与标点标记
func TestAnnotateBasic(t *testing.T) {
	engine, err := NewEngine()
	require.NoError(t, err)

	tokens, err := engine.Annotate("The engineers are building systems.")
	require.NoError(t, err)
	require.NotEmpty(t, tokens)

	byText := make(map[string]Token, len(tokens))
	for _, tok := range tokens {
		byText[strings.ToLower(tok.Text)] = tok
		assert.Equal(t, tok.Lemma, strings.ToLower(tok.Lemma), "词元必须是小写")
	}

	the, ok := byText["the"]
	require.True(t, ok)
	assert.True(t, the.Stop, "the 应被标记为停用词")

	period, ok := byText["."]
	require.True(t, ok)
	assert.True(t, period.Punct, "句号应被标记为标点")

	engineers, ok := byText["engineers"]
	require.True(t, ok)
	assert.Equal(t, "engineer", engineers.Lemma, "复数名词应被还原为单数词元")
	assert.Contains(t, []string{PosNoun, PosProperN}, engineers.POS)
}

// TestAnnotateVerbLemma 动词应被还原为原形
func TestAnnotateVerbLemma(t *testing.T) {
	engine, err := NewEngine()
	require.NoError(t, err)

	tokens, err := engine.Annotate("She was running and developed software")
	require.NoError(t, err)

	lemmas := make(map[string]bool, len(tokens))
	for _, tok := range tokens {
		lemmas[tok.Lemma] = true
	}
	assert.True(t, lemmas["run"], "running 的词元应为 run")
	assert.True(t, lemmas["develop"], "developed 的词元应为 develop")
}

// TestSimilarityIdentical 相同文本的相似度应接近 1
func TestSimilarityIdentical(t *testing.T) {
	engine, err := NewEngine()
	require.NoError(t, err)

	text := "experienced python developer with sql skills"
	sim := engine.Similarity(text, text)
	assert.InDelta(t, 1.0, sim, 0.0001, "相同文本的余弦相似度应为 1")
}

// TestSimilarityDisjoint 完全不相关的文本相似度应为 0
func TestSimilarityDisjoint(t *testing.T) {
	engine, err := NewEngine()
	require.NoError(t, err)

	sim := engine.Similarity("python sql database", "violin orchestra melody")
	assert.InDelta(t, 0.0, sim, 0.0001, "无共同词元的文本相似度应为 0")
}

// TestSimilarityDegenerate 空文本或纯标点文本应返回 0 而不是 NaN
func TestSimilarityDegenerate(t *testing.T) {
	engine, err := NewEngine()
	require.NoError(t, err)

	assert.Zero(t, engine.Similarity("", "python developer"))
	assert.Zero(t, engine.Similarity("python developer", ""))
	assert.Zero(t, engine.Similarity("... !!! ???", "python developer"), "纯标点文本的向量为零向量")
}

// TestSimilarityRange 相似度必须落在 [0,1] 区间
func TestSimilarityRange(t *testing.T) {
	engine, err := NewEngine()
	require.NoError(t, err)

	sim := engine.Similarity(
		"python sql engineer with cloud experience",
		"python sql developer building cloud systems",
	)
	assert.GreaterOrEqual(t, sim, 0.0)
	assert.LessOrEqual(t, sim, 1.0)
	assert.Greater(t, sim, 0.0, "有共同词元的文本相似度应大于 0")
}

// TestCoarsePOS 验证 Penn 标签到粗粒度词性的折叠
func TestCoarsePOS(t *testing.T) {
	cases := map[string]string{
		"NN":   PosNoun,
		"NNS":  PosNoun,
		"NNP":  PosProperN,
		"NNPS": PosProperN,
		"JJ":   PosAdjective,
		"JJR":  PosAdjective,
		"VB":   PosVerb,
		"VBD":  PosVerb,
		"VBG":  PosVerb,
		"DT":   PosOther,
		"IN":   PosOther,
	}
	for tag, want := range cases {
		assert.Equal(t, want, coarsePOS(tag), "标签 %s 的折叠结果不符", tag)
	}
}

// TestIsStopword 停用词表的基本校验
func TestIsStopword(t *testing.T) {
	assert.True(t, IsStopword("the"))
	assert.True(t, IsStopword("with"))
	assert.False(t, IsStopword("python"))
	assert.False(t, IsStopword("engineer"))
}
