package assets

import (
	"errors"
	"fmt"
	"path/filepath"
	"sync"
	"time"

	"github.com/fsnotify/fsnotify"
	"github.com/spaghettifunk/anima-drills/engine/config"
	"github.com/spaghettifunk/anima-drills/engine/core"
)

// AssetManager watches the drill config file and reloads it on demand.
// Change notices are produced on the watcher goroutine and consumed by the
// engine loop through Changes.
type AssetManager struct {
	path       string
	loader     Loader
	lastLoaded time.Time

	mutex sync.RWMutex

	done     chan struct{}
	stopped  chan struct{}
	fsnotify *fsnotify.Watcher
	isClosed bool
	changes  chan string
}

func NewAssetManager(loader Loader) (*AssetManager, error) {
	if loader == nil {
		return nil, errors.New("func NewAssetManager - loader must not be nil")
	}
	fsWatch, err := fsnotify.NewWatcher()
	if err != nil {
		return nil, err
	}
	return &AssetManager{
		loader:   loader,
		fsnotify: fsWatch,
		// One pending notice is enough, later writes coalesce into it.
		changes: make(chan string, 1),
		done:    make(chan struct{}),
		stopped: make(chan struct{}),
	}, nil
}

// Initialize starts watching path. The parent directory is watched so that
// editors replacing the file through a rename are noticed too.
func (am *AssetManager) Initialize(path string) error {
	if am.isClosed {
		return errors.New("asset manager already closed")
	}
	abs, err := filepath.Abs(path)
	if err != nil {
		return err
	}
	if err := am.fsnotify.Add(filepath.Dir(abs)); err != nil {
		return fmt.Errorf("watching %s: %w", path, err)
	}
	am.path = abs
	go am.start()
	core.LogInfo("watching %s for changes", abs)
	return nil
}

// Changes delivers the path of the config file each time it changed on disk.
func (am *AssetManager) Changes() <-chan string {
	return am.changes
}

// Reload reads the watched file again through the loader.
func (am *AssetManager) Reload() (config.DrillConfig, error) {
	am.mutex.RLock()
	path := am.path
	am.mutex.RUnlock()
	if path == "" {
		return config.DrillConfig{}, errors.New("asset manager is not watching any file")
	}
	cfg, err := am.loader.Load(path)
	if err != nil {
		return cfg, err
	}
	am.mutex.Lock()
	am.lastLoaded = time.Now()
	am.mutex.Unlock()
	return cfg, nil
}

func (am *AssetManager) LastLoaded() time.Time {
	am.mutex.RLock()
	defer am.mutex.RUnlock()
	return am.lastLoaded
}

func (am *AssetManager) Shutdown() error {
	if am.isClosed {
		return nil
	}
	am.isClosed = true
	close(am.done)
	if am.path == "" {
		// start never ran.
		return am.fsnotify.Close()
	}
	<-am.stopped
	return nil
}

func (am *AssetManager) start() {
	defer close(am.stopped)
	for {
		select {
		case e, ok := <-am.fsnotify.Events:
			if !ok {
				return
			}
			if filepath.Clean(e.Name) != am.path {
				continue
			}
			// Handle create or modify events
			if e.Op&(fsnotify.Create|fsnotify.Write) != 0 {
				select {
				case am.changes <- am.path:
				default:
				}
			}

		case err, ok := <-am.fsnotify.Errors:
			if !ok {
				return
			}
			core.LogError("config watcher: %s", err)

		case <-am.done:
			am.fsnotify.Close()
			return
		}
	}
}
