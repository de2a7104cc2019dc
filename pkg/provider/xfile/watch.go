package xfile

import (
	"context"
	"errors"
	"fmt"
	"path/filepath"
	"sync"
	"time"

	"github.com/fsnotify/fsnotify"
)

// watcher 监视单个配置文件的变更。
type watcher struct {
	fw       *fsnotify.Watcher
	filename string
	delay    time.Duration
	onChange func()

	ctx    context.Context
	cancel context.CancelFunc

	mu    sync.Mutex
	timer *time.Timer // 防抖定时器，stop() 时需要取消
}

// newWatcher 监视 path 所在目录并启动事件循环。
// 监视目录而非文件本身：编辑器保存时可能先删除再创建，
// 直接监视文件会丢失事件。
func newWatcher(path string, delay time.Duration, onChange func()) (*watcher, error) {
	fw, err := fsnotify.NewWatcher()
	if err != nil {
		return nil, fmt.Errorf("xfile: create watcher: %w", err)
	}

	dir := filepath.Dir(path)
	if err := fw.Add(dir); err != nil {
		closeErr := fw.Close()
		return nil, errors.Join(
			fmt.Errorf("xfile: watch directory %s: %w", dir, err),
			closeErr,
		)
	}

	ctx, cancel := context.WithCancel(context.Background())
	w := &watcher{
		fw:       fw,
		filename: filepath.Base(path),
		delay:    delay,
		onChange: onChange,
		ctx:      ctx,
		cancel:   cancel,
	}

	go w.run()
	return w, nil
}

func (w *watcher) stop() error {
	w.mu.Lock()
	defer w.mu.Unlock()

	if w.timer != nil {
		w.timer.Stop()
		w.timer = nil
	}

	w.cancel()
	return w.fw.Close()
}

func (w *watcher) run() {
	for {
		select {
		case <-w.ctx.Done():
			return

		case event, ok := <-w.fw.Events:
			if !ok {
				return
			}
			w.handleEvent(event)

		case _, ok := <-w.fw.Errors:
			if !ok {
				return
			}
			// 监视错误不可恢复为具体变更，等待后续事件
		}
	}
}

func (w *watcher) handleEvent(event fsnotify.Event) {
	if filepath.Base(event.Name) != w.filename {
		return
	}

	// Write: 直接修改；Create: 新建；Rename: 原子写入
	// （vim/emacs 写临时文件后 rename）
	if !event.Has(fsnotify.Write) && !event.Has(fsnotify.Create) && !event.Has(fsnotify.Rename) {
		return
	}

	// 防抖：重置计时器，窗口内的多次事件合并为一次重载
	w.mu.Lock()
	defer w.mu.Unlock()

	if w.timer != nil {
		w.timer.Stop()
	}

	w.timer = time.AfterFunc(w.delay, func() {
		select {
		case <-w.ctx.Done():
			return
		default:
		}

		w.onChange()
	})
}
