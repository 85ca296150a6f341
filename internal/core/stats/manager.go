package stats

import (
	"context"
	"sync"
	"time"

	"menu-image-resolver/internal/pkg/common"

	"go.uber.org/zap"
)

// Manager 記憶體計數器
type Manager struct {
	mu        sync.RWMutex
	counts    map[string]int64
	startedAt time.Time
}

// NewManager 創建記憶體計數器
func NewManager() *Manager {
	common.LogInfo("統計管理員已初始化", zap.String("backend", "memory"))
	return &Manager{
		counts:    make(map[string]int64),
		startedAt: time.Now(),
	}
}

// Record 累加一次解析結果
func (m *Manager) Record(_ context.Context, outcome string) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.counts[outcome]++
	return nil
}

// Snapshot 返回目前計數的副本
func (m *Manager) Snapshot(_ context.Context) (map[string]int64, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()

	out := make(map[string]int64, len(m.counts))
	for k, v := range m.counts {
		out[k] = v
	}
	return out, nil
}

// Close 關閉計數器
func (m *Manager) Close() error {
	m.mu.Lock()
	defer m.mu.Unlock()

	var total int64
	for _, v := range m.counts {
		total += v
	}
	common.LogInfo("統計管理員已關閉",
		zap.Int64("解析次數", total),
		zap.Duration("運行時間", time.Since(m.startedAt)),
	)
	m.counts = make(map[string]int64)
	return nil
}
