package lock

import (
	"context"
	"fmt"

	"essay-grader/biz/infrastructure/consts"

	"github.com/google/uuid"
	"github.com/zeromicro/go-zero/core/stores/redis"
)

// GradeMutex 按用户维度的批改互斥锁，防止同一用户并发触发模型调用
type GradeMutex struct {
	ctx        context.Context
	rds        *redis.Redis
	key        string
	value      string
	ttlSeconds int
}

func NewGradeMutex(ctx context.Context, rds *redis.Redis, userId string, ttlSeconds int) *GradeMutex {
	return &GradeMutex{
		ctx:        ctx,
		rds:        rds,
		key:        fmt.Sprintf("grade_lock:%s", userId),
		value:      uuid.New().String(),
		ttlSeconds: ttlSeconds,
	}
}

// Lock 抢锁失败说明该用户已有一次批改在进行中
func (m *GradeMutex) Lock() error {
	ok, err := m.rds.SetnxExCtx(m.ctx, m.key, m.value, m.ttlSeconds)
	if err != nil {
		return err
	}
	if !ok {
		return consts.ErrOneCall
	}
	return nil
}

// Unlock 只释放自己持有的锁
func (m *GradeMutex) Unlock() {
	val, err := m.rds.GetCtx(m.ctx, m.key)
	if err != nil || val != m.value {
		return
	}
	_, _ = m.rds.DelCtx(m.ctx, m.key)
}
