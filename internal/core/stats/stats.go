package stats

import (
	"context"
	"fmt"

	"menu-image-resolver/internal/infrastructure/config"
)

// 解析結果類型
const (
	OutcomeIllustrated  = "illustrated"
	OutcomePhotographic = "photographic"
	OutcomeCustom       = "custom"
	OutcomeNone         = "none"
)

// Recorder 解析結果計數器
type Recorder interface {
	Record(ctx context.Context, outcome string) error
	Snapshot(ctx context.Context) (map[string]int64, error)
	Close() error
}

// New 依設定建立計數器，統計關閉時返回 nil
func New(cfg *config.Config) (Recorder, error) {
	if !cfg.Stats.Enabled {
		return nil, nil
	}
	switch cfg.Stats.Backend {
	case config.StatsBackendMemory:
		return NewManager(), nil
	case config.StatsBackendRedis:
		rec, err := NewRedisRecorder(cfg.Redis)
		if err != nil {
			return nil, err
		}
		return rec, nil
	default:
		return nil, fmt.Errorf("unknown stats backend %q", cfg.Stats.Backend)
	}
}
