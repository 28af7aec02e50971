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

package dao

import (
	"context"
	"database/sql"
	"time"

	"github.com/ecodeclub/ekit/sqlx"
	"github.com/ego-component/egorm"
	"gorm.io/gorm"
)

var ErrRecordNotFound = gorm.ErrRecordNotFound

type ReportDAO interface {
	// Save 报告和联系方式、技能一起落库
	Save(ctx context.Context, r Report, c ReportContact, skills []ReportSkill) (int64, error)
	FindByTid(ctx context.Context, tid string) (Report, error)
	ContactByRid(ctx context.Context, rid int64) (ReportContact, error)
	SkillsByRid(ctx context.Context, rid int64) ([]ReportSkill, error)
	List(ctx context.Context, offset, limit int) ([]Report, error)
	Count(ctx context.Context) (int64, error)

	InsertProcessingLog(ctx context.Context, l ProcessingLog) (int64, error)
	// DeleteProcessingLogsBefore 清理早于 ctime 的留痕，返回删掉的行数
	DeleteProcessingLogsBefore(ctx context.Context, ctime int64, limit int) (int64, error)

	// DailyStat 统计 [start, end) 里评估结果的聚合数据
	DailyStat(ctx context.Context, start, end int64) (total, goodFit, potentialFit int64, avgScore float64, err error)
	SaveDailyStat(ctx context.Context, stat DailyStat) error
}

type reportDAO struct {
	db *egorm.Component
}

func NewReportDAO(db *egorm.Component) ReportDAO {
	return &reportDAO{
		db: db,
	}
}

func (d *reportDAO) Save(ctx context.Context, r Report, c ReportContact, skills []ReportSkill) (int64, error) {
	now := time.Now().UnixMilli()
	r.Ctime = now
	r.Utime = now
	err := d.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Create(&r).Error; err != nil {
			return err
		}
		c.Rid = r.Id
		c.Ctime = now
		c.Utime = now
		if err := tx.Create(&c).Error; err != nil {
			return err
		}
		if len(skills) == 0 {
			return nil
		}
		for i := range skills {
			skills[i].Rid = r.Id
			skills[i].Ctime = now
		}
		return tx.Create(&skills).Error
	})
	return r.Id, err
}

func (d *reportDAO) FindByTid(ctx context.Context, tid string) (Report, error) {
	var r Report
	err := d.db.WithContext(ctx).Where("tid = ?", tid).First(&r).Error
	return r, err
}

func (d *reportDAO) ContactByRid(ctx context.Context, rid int64) (ReportContact, error) {
	var c ReportContact
	err := d.db.WithContext(ctx).Where("rid = ?", rid).First(&c).Error
	return c, err
}

func (d *reportDAO) SkillsByRid(ctx context.Context, rid int64) ([]ReportSkill, error) {
	var skills []ReportSkill
	err := d.db.WithContext(ctx).Where("rid = ?", rid).Order("id ASC").Find(&skills).Error
	return skills, err
}

func (d *reportDAO) List(ctx context.Context, offset, limit int) ([]Report, error) {
	var reports []Report
	err := d.db.WithContext(ctx).
		Order("ctime DESC").
		Offset(offset).Limit(limit).
		Find(&reports).Error
	return reports, err
}

func (d *reportDAO) Count(ctx context.Context) (int64, error) {
	var count int64
	err := d.db.WithContext(ctx).Model(&Report{}).Count(&count).Error
	return count, err
}

func (d *reportDAO) InsertProcessingLog(ctx context.Context, l ProcessingLog) (int64, error) {
	l.Ctime = time.Now().UnixMilli()
	err := d.db.WithContext(ctx).Create(&l).Error
	return l.Id, err
}

func (d *reportDAO) DeleteProcessingLogsBefore(ctx context.Context, ctime int64, limit int) (int64, error) {
	res := d.db.WithContext(ctx).
		Where("ctime < ?", ctime).
		Limit(limit).
		Delete(&ProcessingLog{})
	return res.RowsAffected, res.Error
}

func (d *reportDAO) DailyStat(ctx context.Context, start, end int64) (total, goodFit, potentialFit int64, avgScore float64, err error) {
	type aggRow struct {
		Total        int64
		GoodFit      int64
		PotentialFit int64
		AvgScore     sql.NullFloat64
	}
	var row aggRow
	err = d.db.WithContext(ctx).Model(&Report{}).
		Select("COUNT(*) AS total, "+
			"SUM(CASE WHEN classification = ? THEN 1 ELSE 0 END) AS good_fit, "+
			"SUM(CASE WHEN classification = ? THEN 1 ELSE 0 END) AS potential_fit, "+
			"AVG(overall_score) AS avg_score",
			"Good Fit", "Potential Fit").
		Where("ctime >= ? AND ctime < ?", start, end).
		Scan(&row).Error
	return row.Total, row.GoodFit, row.PotentialFit, row.AvgScore.Float64, err
}

func (d *reportDAO) SaveDailyStat(ctx context.Context, stat DailyStat) error {
	stat.Ctime = time.Now().UnixMilli()
	return d.db.WithContext(ctx).Create(&stat).Error
}

type Report struct {
	// Id 是 snowflake 生成的，不自增
	Id  int64  `gorm:"primaryKey"`
	Tid string `gorm:"type:varchar(256);not null;uniqueIndex:unq_tid"`
	// ResumeSha 简历文件内容的哈希，配合 Jid 可以定位一次完全相同的评估
	ResumeSha       string                            `gorm:"type:char(64);index:idx_resume_sha"`
	Jid             int64                             `gorm:"index:idx_jid;comment:岗位描述ID"`
	Filename        string                            `gorm:"type:varchar(512)"`
	HeaderTitle     string                            `gorm:"type:varchar(256)"`
	OverallScore    float64                           `gorm:"comment:加权总分"`
	SkillsScore     float64
	HeaderScore     float64
	ExpScore        float64
	ProjectsScore   float64
	EduScore        float64
	FormatScore     float64
	MatchedSkills   sqlx.JsonColumn[[]string]         `gorm:"type:text"`
	MissingSkills   sqlx.JsonColumn[[]string]         `gorm:"type:text"`
	Recommendations sqlx.JsonColumn[[]Recommendation] `gorm:"type:text"`
	Classification  string                            `gorm:"type:varchar(64);index:idx_classification"`
	Status          uint8                             `gorm:"type:tinyint unsigned;not null;default:0;comment:0=进行中 1=成功 2=失败"`
	Ctime           int64                             `gorm:"index"`
	Utime           int64                             `gorm:"index"`
}

func (Report) TableName() string {
	return "reports"
}

// Recommendation 整条 JSON 存进 reports 表，不单独建表
type Recommendation struct {
	Priority    string `json:"priority"`
	Category    string `json:"category"`
	Title       string `json:"title"`
	Description string `json:"description"`
}

type ReportContact struct {
	Id       int64  `gorm:"primaryKey,autoIncrement"`
	Rid      int64  `gorm:"uniqueIndex:unq_rid;comment:报告ID"`
	Name     string `gorm:"type:varchar(256)"`
	Email    string `gorm:"type:varchar(256)"`
	Phone    string `gorm:"type:varchar(64)"`
	Location string `gorm:"type:varchar(256)"`
	LinkedIn string `gorm:"type:varchar(512)"`
	GitHub   string `gorm:"type:varchar(512)"`
	Ctime    int64
	Utime    int64
}

func (ReportContact) TableName() string {
	return "report_contacts"
}

type ReportSkill struct {
	Id    int64  `gorm:"primaryKey,autoIncrement"`
	Rid   int64  `gorm:"index:idx_rid;comment:报告ID"`
	Skill string `gorm:"type:varchar(128)"`
	Ctime int64
}

func (ReportSkill) TableName() string {
	return "report_skills"
}

type ProcessingLog struct {
	Id    int64  `gorm:"primaryKey,autoIncrement"`
	Tid   string `gorm:"type:varchar(256);index:idx_tid"`
	Stage string `gorm:"type:varchar(64)"`
	// Status 0=进行中 1=成功 2=失败
	Status uint8  `gorm:"type:tinyint unsigned;not null;default:0"`
	Detail string `gorm:"type:text"`
	Ctime  int64  `gorm:"index"`
}

func (ProcessingLog) TableName() string {
	return "processing_logs"
}

type DailyStat struct {
	Id           int64  `gorm:"primaryKey,autoIncrement"`
	Day          string `gorm:"type:char(10);uniqueIndex:unq_day;comment:yyyy-mm-dd"`
	Total        int64
	GoodFit      int64
	PotentialFit int64
	NeedsWork    int64
	AvgScore     float64
	Ctime        int64
}

func (DailyStat) TableName() string {
	return "report_daily_stats"
}
