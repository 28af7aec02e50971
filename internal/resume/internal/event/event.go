package event

import (
	"encoding/json"

	"github.com/resumatch/resumatch/internal/resume/internal/domain"
)

const (
	// TaskTopic 异步评估任务
	TaskTopic = "resume_analysis_tasks"
	// SyncTopic 评估结果同步到搜索
	SyncTopic = "sync_report_to_search"
)

// AnalysisTaskEvent 一次异步评估任务，文本已经在接收端抽好
type AnalysisTaskEvent struct {
	Tid        string `json:"tid"`
	Filename   string `json:"filename"`
	ResumeText string `json:"resumeText"`
	JobDesc    string `json:"jobDesc"`
}

type ReportEvent struct {
	Biz   string `json:"biz"`
	BizID int64  `json:"bizID"`
	Data  string `json:"data"`
}

// Report 同步到搜索索引里的字段
type Report struct {
	Id             int64    `json:"id"`
	Tid            string   `json:"tid"`
	Filename       string   `json:"filename"`
	HeaderTitle    string   `json:"header_title"`
	Name           string   `json:"name"`
	Email          string   `json:"email"`
	Skills         []string `json:"skills"`
	MatchedSkills  []string `json:"matched_skills"`
	MissingSkills  []string `json:"missing_skills"`
	OverallScore   float64  `json:"overall_score"`
	Classification string   `json:"classification"`
	Ctime          int64    `json:"ctime"`
	Utime          int64    `json:"utime"`
}

func NewReportEvent(r domain.Report) ReportEvent {
	data, _ := json.Marshal(Report{
		Id:             r.Id,
		Tid:            r.Tid,
		Filename:       r.Filename,
		HeaderTitle:    r.HeaderTitle,
		Name:           r.Contact.Name,
		Email:          r.Contact.Email,
		Skills:         r.Skills,
		MatchedSkills:  r.MatchedSkills,
		MissingSkills:  r.MissingSkills,
		OverallScore:   r.OverallScore,
		Classification: r.Classification,
		Ctime:          r.Ctime,
		Utime:          r.Utime,
	})
	return ReportEvent{
		Biz:   "report",
		BizID: r.Id,
		Data:  string(data),
	}
}
