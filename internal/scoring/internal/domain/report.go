package domain

const (
	ClassificationGoodFit          = "Good Fit"
	ClassificationPotentialFit     = "Potential Fit"
	ClassificationNeedsImprovement = "Needs Improvement"
)

const (
	PriorityHigh   = "high"
	PriorityMedium = "medium"
)

// Report 简历和岗位描述的匹配评估结果，分值都是 0-100
type Report struct {
	OverallScore    float64
	Categories      Categories
	MatchedSkills   []string
	MissingSkills   []string
	Classification  string
	Recommendations []Recommendation
}

// Recommendation 某个维度分数偏低时给求职者的改进建议
type Recommendation struct {
	Priority    string
	Category    string
	Title       string
	Description string
}

// Categories 各维度的得分，加权求和得到总分
type Categories struct {
	Skills     float64
	Header     float64
	Experience float64
	Projects   float64
	Education  float64
	Format     float64
}

// Classify 按总分给一个结论
func Classify(overall float64) string {
	switch {
	case overall >= 70:
		return ClassificationGoodFit
	case overall >= 50:
		return ClassificationPotentialFit
	default:
		return ClassificationNeedsImprovement
	}
}
