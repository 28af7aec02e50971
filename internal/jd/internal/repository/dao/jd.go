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
	"time"

	"github.com/ego-component/egorm"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

var ErrRecordNotFound = gorm.ErrRecordNotFound

type JobDescriptionDAO interface {
	// Upsert 已存在就把使用次数加一，返回落库后的记录
	Upsert(ctx context.Context, jd JobDescription) (JobDescription, error)
	FindById(ctx context.Context, id int64) (JobDescription, error)
	FindBySha256(ctx context.Context, sha string) (JobDescription, error)
	// List 按最近使用排序
	List(ctx context.Context, offset, limit int) ([]JobDescription, error)
}

type jobDescriptionDAO struct {
	db *egorm.Component
}

func NewJobDescriptionDAO(db *egorm.Component) JobDescriptionDAO {
	return &jobDescriptionDAO{
		db: db,
	}
}

func (d *jobDescriptionDAO) Upsert(ctx context.Context, jd JobDescription) (JobDescription, error) {
	now := time.Now().UnixMilli()
	jd.Ctime = now
	jd.Utime = now
	jd.UsageCount = 1
	err := d.db.WithContext(ctx).Clauses(clause.OnConflict{
		Columns: []clause.Column{{Name: "sha256"}},
		DoUpdates: clause.Assignments(map[string]any{
			"usage_count": gorm.Expr("usage_count + 1"),
			"utime":       now,
		}),
	}).Create(&jd).Error
	if err != nil {
		return JobDescription{}, err
	}
	// MySQL 的 upsert 撞上已有行时拿不到 id，回查一次
	return d.FindBySha256(ctx, jd.Sha256)
}

func (d *jobDescriptionDAO) FindById(ctx context.Context, id int64) (JobDescription, error) {
	var jd JobDescription
	err := d.db.WithContext(ctx).Where("id = ?", id).First(&jd).Error
	return jd, err
}

func (d *jobDescriptionDAO) FindBySha256(ctx context.Context, sha string) (JobDescription, error) {
	var jd JobDescription
	err := d.db.WithContext(ctx).Where("sha256 = ?", sha).First(&jd).Error
	return jd, err
}

func (d *jobDescriptionDAO) List(ctx context.Context, offset, limit int) ([]JobDescription, error) {
	var jds []JobDescription
	err := d.db.WithContext(ctx).
		Order("utime DESC").
		Offset(offset).Limit(limit).
		Find(&jds).Error
	return jds, err
}

type JobDescription struct {
	Id     int64  `gorm:"primaryKey,autoIncrement"`
	Sha256 string `gorm:"type:char(64);uniqueIndex"`
	Text   string `gorm:"type:text"`
	// UsageCount 有多少次评估用的是这份岗位描述
	UsageCount int64
	Ctime      int64
	Utime      int64 `gorm:"index"`
}

func (JobDescription) TableName() string {
	return "job_descriptions"
}
