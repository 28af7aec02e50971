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

	"github.com/ecodeclub/ekit/sqlx"
	"github.com/ego-component/egorm"
	"gorm.io/gorm/clause"
)

type EmbedRecordDAO interface {
	Save(ctx context.Context, r EmbedRecord) (int64, error)
}

type GORMEmbedRecordDAO struct {
	db *egorm.Component
}

func NewGORMEmbedRecordDAO(db *egorm.Component) EmbedRecordDAO {
	return &GORMEmbedRecordDAO{db: db}
}

func (g *GORMEmbedRecordDAO) Save(ctx context.Context, record EmbedRecord) (int64, error) {
	now := time.Now().UnixMilli()
	record.Ctime = now
	record.Utime = now
	err := g.db.WithContext(ctx).Model(&EmbedRecord{}).
		Clauses(clause.OnConflict{
			Columns:   []clause.Column{{Name: "tid"}},
			DoUpdates: clause.AssignmentColumns([]string{"status", "tokens", "utime"}),
		}).Create(&record).Error
	return record.Id, err
}

type EmbedRecord struct {
	Id     int64                     `gorm:"primaryKey;autoIncrement"`
	Tid    string                    `gorm:"type:varchar(256);not null;uniqueIndex:unq_tid;comment:一次请求的Tid只能有一次"`
	Biz    string                    `gorm:"type:varchar(256);not null;comment:业务类型名"`
	Texts  sqlx.JsonColumn[[]string] `gorm:"type:text;comment:向量化的文本"`
	Tokens int64                     `gorm:"type:int;default:0;comment:消耗的token数"`
	Status uint8                     `gorm:"type:tinyint unsigned;not null;default:0;comment:调用状态 0=进行中, 1=成功, 2=失败"`
	Ctime  int64
	Utime  int64
}

func (l EmbedRecord) TableName() string {
	return "embed_records"
}
