package scoring

import "strings"

// 反馈语句按指标分档，阈值为闭区间下界
const (
	feedbackCompletenessHigh = "Your resume includes most core sections that ATS systems look for."
	feedbackCompletenessMid  = "Your resume has the main sections, but you could strengthen experience and skills descriptions."
	feedbackCompletenessLow  = "Your resume may be missing important sections or details for ATS systems."

	feedbackOverlapHigh = "You are using many of the same keywords as the job description."
	feedbackOverlapMid  = "You are matching some job keywords, but you could add more relevant skills and responsibilities."
	feedbackOverlapLow  = "Consider adding more role-specific keywords from the job posting in your skills and experience sections."

	feedbackSimilarityHigh = "Overall, your resume content is semantically close to the job description."
	feedbackSimilarityMid  = "Your resume is somewhat related to the job, but you can tailor it more to the specific responsibilities."
	feedbackSimilarityLow  = "Your resume appears to target a different type of role than this job description."

	feedbackEmpty = "Upload a resume and job description to see detailed feedback."
)

// BuildFeedback 把三个评分映射为人类可读的反馈段落
// 每个指标独立产生零或一句话，按固定顺序(完整度、重合度、相似度)用单个空格连接；
// 缺失的指标不产生语句，三者全部缺失时返回固定的引导语
func BuildFeedback(completeness, overlap, similarity *float64) string {
	var messages []string

	if completeness != nil {
		switch {
		case *completeness >= 80:
			messages = append(messages, feedbackCompletenessHigh)
		case *completeness >= 60:
			messages = append(messages, feedbackCompletenessMid)
		default:
			messages = append(messages, feedbackCompletenessLow)
		}
	}

	if overlap != nil {
		switch {
		case *overlap >= 70:
			messages = append(messages, feedbackOverlapHigh)
		case *overlap >= 40:
			messages = append(messages, feedbackOverlapMid)
		default:
			messages = append(messages, feedbackOverlapLow)
		}
	}

	if similarity != nil {
		switch {
		case *similarity >= 70:
			messages = append(messages, feedbackSimilarityHigh)
		case *similarity >= 40:
			messages = append(messages, feedbackSimilarityMid)
		default:
			messages = append(messages, feedbackSimilarityLow)
		}
	}

	if len(messages) == 0 {
		return feedbackEmpty
	}
	return strings.Join(messages, " ")
}
