package cache

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/ecodeclub/ecache"
	"github.com/pkg/errors"
	"github.com/resumatch/resumatch/internal/jd/internal/domain"
)

var ErrKeyNotFound = errors.New("缓存里没有这个 key")

type JDCache interface {
	Get(ctx context.Context, id int64) (domain.JD, error)
	Set(ctx context.Context, jd domain.JD) error
}

type jdCache struct {
	ec ecache.Cache
}

func NewJDCache(ec ecache.Cache) JDCache {
	return &jdCache{
		ec: &ecache.NamespaceCache{
			C:         ec,
			Namespace: "jd",
		},
	}
}

func (c *jdCache) Get(ctx context.Context, id int64) (domain.JD, error) {
	val := c.ec.Get(ctx, c.key(id))
	if val.KeyNotFound() {
		return domain.JD{}, ErrKeyNotFound
	}
	if val.Err != nil {
		return domain.JD{}, errors.Wrap(val.Err, "查询缓存出错")
	}
	var jd domain.JD
	err := json.Unmarshal([]byte(val.Val.(string)), &jd)
	return jd, err
}

func (c *jdCache) Set(ctx context.Context, jd domain.JD) error {
	data, err := json.Marshal(jd)
	if err != nil {
		return err
	}
	return c.ec.Set(ctx, c.key(jd.Id), string(data), time.Minute*30)
}

func (c *jdCache) key(id int64) string {
	return fmt.Sprintf("id:%d", id)
}
