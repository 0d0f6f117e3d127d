package configwatcher

import (
	"path/filepath"
	"time"
	"walkalong_backend/internal/config"
	"walkalong_backend/pkg/logger"

	"github.com/fsnotify/fsnotify"
	"go.uber.org/zap"
)

const debounceDelay = time.Second

// WatchConfig 监听配置文件写入并防抖重载，重载成功后把新配置交给回调。
// 编辑器保存往往触发多个事件，1 秒内的连续写入只重载一次。
func WatchConfig(configPath string, onReload func(*config.Config)) {
	watcher, err := fsnotify.NewWatcher()
	if err != nil {
		logger.Log.Error("创建配置监听器失败", zap.Error(err))
		return
	}
	defer watcher.Close()

	absPath, err := filepath.Abs(configPath)
	if err != nil {
		logger.Log.Error("解析配置文件路径失败", zap.String("path", configPath), zap.Error(err))
		return
	}
	if err := watcher.Add(absPath); err != nil {
		logger.Log.Error("监听配置文件失败", zap.String("path", absPath), zap.Error(err))
		return
	}

	debounce := time.NewTimer(debounceDelay)
	debounce.Stop()

	for {
		select {
		case event, ok := <-watcher.Events:
			if !ok {
				return
			}
			if event.Op&(fsnotify.Write|fsnotify.Create) != 0 {
				debounce.Stop()
				debounce.Reset(debounceDelay)
			}
		case <-debounce.C:
			cfg, err := config.LoadConfig(filepath.Dir(absPath))
			if err != nil {
				logger.Log.Error("配置重载失败，沿用旧配置", zap.Error(err))
				continue
			}
			onReload(cfg)
			logger.Log.Info("配置已热重载", zap.String("path", absPath))
		case err, ok := <-watcher.Errors:
			if !ok {
				return
			}
			logger.Log.Error("配置监听出错", zap.Error(err))
		}
	}
}
