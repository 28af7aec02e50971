// Copyright 2023 resumatch
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
// http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

package domain

// ClassificationError 兜底结论，评估过程崩了才会出现
const ClassificationError = "Analysis Error"

// FallbackOverallScore 评估失败时给的保底总分
const FallbackOverallScore = 45.0

// FallbackMissingSkillsNote 保底报告在缺失技能里放的提示文案
const FallbackMissingSkillsNote = "Analysis failed - please try again"

// FallbackCategoryScores 保底报告的各维度分，数值是产品定死的
func FallbackCategoryScores() CategoryScores {
	return CategoryScores{
		Skills:     40.0,
		Header:     50.0,
		Experience: 45.0,
		Projects:   40.0,
		Education:  50.0,
		Format:     45.0,
	}
}

// Report 一次简历评估的完整结果
type Report struct {
	Id int64
	// Tid 对外暴露的评估单号
	Tid string
	// ResumeSha 简历文件内容的哈希
	ResumeSha string
	// Jid 关联的岗位描述
	Jid      int64
	Filename string
	// HeaderTitle 候选人自称的职位
	HeaderTitle    string
	Contact        Contact
	Skills         []string
	MatchedSkills  []string
	MissingSkills  []string
	OverallScore   float64
	Categories     CategoryScores
	Classification string
	// Recommendations 分数偏低的维度对应的改进建议
	Recommendations []Recommendation
	Status          ReportStatus
	Ctime           int64
	Utime           int64
}

type Recommendation struct {
	Priority    string
	Category    string
	Title       string
	Description string
}

type Contact struct {
	Name     string
	Email    string
	Phone    string
	Location string
	LinkedIn string
	GitHub   string
}

type CategoryScores struct {
	Skills     float64
	Header     float64
	Experience float64
	Projects   float64
	Education  float64
	Format     float64
}

type ReportStatus uint8

func (s ReportStatus) ToUint8() uint8 {
	return uint8(s)
}

const (
	ReportStatusProcessing ReportStatus = 0
	ReportStatusSuccess    ReportStatus = 1
	ReportStatusFailed     ReportStatus = 2
)

// ProcessingLog 评估流程里每个阶段的留痕，供排查和清理
type ProcessingLog struct {
	Id     int64
	Tid    string
	Stage  string
	Status ReportStatus
	Detail string
	Ctime  int64
}

const (
	StageExtract = "extract"
	StageParse   = "parse"
	StageScore   = "score"
	StageSave    = "save"
)

// DailyStat 某一天的评估聚合数据
type DailyStat struct {
	Id           int64
	Day          string
	Total        int64
	GoodFit      int64
	PotentialFit int64
	NeedsWork    int64
	AvgScore     float64
	Ctime        int64
}
