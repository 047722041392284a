package config

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"
)

// ReadDiskFile 从磁盘读取配置文件（热重载路径）
// 嵌入资源走 embedded，磁盘读取只在开发模式的 watcher 回调里用
func ReadDiskFile(path string) ([]byte, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read config file %s: %w", path, err)
	}
	return data, nil
}

// MatchesFile 判断路径的文件名（去扩展名）是否等于给定的配置名
// 例如 MatchesFile("data/enemy_stats.yaml", "enemy_stats") 为 true
func MatchesFile(path, name string) bool {
	base := filepath.Base(path)
	stem := strings.TrimSuffix(base, filepath.Ext(base))
	return stem == name
}
