package cache

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/ecodeclub/ecache"
	"github.com/pkg/errors"
	"github.com/resumatch/resumatch/internal/resume/internal/domain"
)

var ErrKeyNotFound = errors.New("缓存里没有这个 key")

// ReportCache 同一份简历配同一份岗位描述的评估结果短期内不会变，
// 直接缓存整个报告
type ReportCache interface {
	Get(ctx context.Context, resumeSha, jdSha string) (domain.Report, error)
	Set(ctx context.Context, resumeSha, jdSha string, r domain.Report) error
}

type reportCache struct {
	ec ecache.Cache
}

func NewReportCache(ec ecache.Cache) ReportCache {
	return &reportCache{
		ec: &ecache.NamespaceCache{
			C:         ec,
			Namespace: "report",
		},
	}
}

func (c *reportCache) Get(ctx context.Context, resumeSha, jdSha string) (domain.Report, error) {
	val := c.ec.Get(ctx, c.key(resumeSha, jdSha))
	if val.KeyNotFound() {
		return domain.Report{}, ErrKeyNotFound
	}
	if val.Err != nil {
		return domain.Report{}, errors.Wrap(val.Err, "查询缓存出错")
	}
	var r domain.Report
	err := json.Unmarshal([]byte(val.Val.(string)), &r)
	return r, err
}

func (c *reportCache) Set(ctx context.Context, resumeSha, jdSha string, r domain.Report) error {
	data, err := json.Marshal(r)
	if err != nil {
		return err
	}
	return c.ec.Set(ctx, c.key(resumeSha, jdSha), string(data), time.Hour)
}

func (c *reportCache) key(resumeSha, jdSha string) string {
	return fmt.Sprintf("%s:%s", resumeSha, jdSha)
}
