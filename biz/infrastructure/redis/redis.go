package redis

import (
	"essay-grader/biz/infrastructure/config"

	"github.com/zeromicro/go-zero/core/stores/redis"
)

// NewRedis 未配置 redis 时返回 nil，调用方按可选依赖处理
func NewRedis(cfg *config.Config) *redis.Redis {
	if cfg.Redis == nil {
		return nil
	}
	return redis.MustNewRedis(*cfg.Redis)
}
