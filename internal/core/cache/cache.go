package cache

import (
	"context"
	"fmt"

	"fittrack-api/internal/infrastructure/config"
)

// Store 推薦結果快取介面
// 鍵為正規化後輪廓的標準字串，值為序列化後的推薦結果
type Store interface {
	Get(ctx context.Context, key string) (string, error)
	Set(ctx context.Context, key string, value string) error
	Close() error
}

// New 依設定建立快取後端
// 快取關閉時回傳 nil，呼叫端需自行判空
func New(cfg *config.Config) (Store, error) {
	if !cfg.Cache.Enabled {
		return nil, nil
	}

	switch cfg.Cache.Backend {
	case "redis":
		return NewRedisStore(&cfg.Cache)
	case "memory":
		return NewManager(cfg), nil
	default:
		return nil, fmt.Errorf("unknown cache backend: %s", cfg.Cache.Backend)
	}
}
