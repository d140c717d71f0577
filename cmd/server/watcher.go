package main

import (
	"path/filepath"
	"sync"
	"time"

	"github.com/fsnotify/fsnotify"
	"go.uber.org/zap"

	backronym "github.com/wordworks/backronym"
)

// debounceWindow swallows the burst of events editors emit per save.
const debounceWindow = 500 * time.Millisecond

// watchDataDir reloads the word list or template library when its file
// changes on disk. The returned function stops the watcher.
func watchDataDir(dir string, gen *backronym.Generator, logger *zap.Logger) (func(), error) {
	watcher, err := fsnotify.NewWatcher()
	if err != nil {
		return nil, err
	}
	if err := watcher.Add(dir); err != nil {
		watcher.Close()
		return nil, err
	}

	var mu sync.Mutex
	lastReload := make(map[string]time.Time)

	go func() {
		for {
			select {
			case event, ok := <-watcher.Events:
				if !ok {
					return
				}
				if !event.Has(fsnotify.Write) && !event.Has(fsnotify.Create) {
					continue
				}
				name := filepath.Base(event.Name)
				if name != backronym.WordListFile && name != backronym.TemplateFile {
					continue
				}

				mu.Lock()
				if time.Since(lastReload[name]) < debounceWindow {
					mu.Unlock()
					continue
				}
				lastReload[name] = time.Now()
				mu.Unlock()

				var err error
				if name == backronym.WordListFile {
					err = gen.ReloadWords()
				} else {
					err = gen.ReloadTemplates()
				}
				if err != nil {
					logger.Warn("auto-reload failed, keeping previous data",
						zap.String("file", name), zap.Error(err))
					continue
				}
				logger.Info("auto-reloaded",
					zap.String("file", name),
					zap.Int("words", gen.WordCount()),
					zap.Int("templates", gen.TemplateCount()))

			case err, ok := <-watcher.Errors:
				if !ok {
					return
				}
				logger.Warn("watcher error", zap.Error(err))
			}
		}
	}()

	return func() { watcher.Close() }, nil
}
