package app

import (
	"log"
	"time"

	"github.com/fsnotify/fsnotify"

	"github.com/crcweb/center-site/internal/content"
)

// debounceDuration coalesces editor write bursts into one reload.
const debounceDuration = 500 * time.Millisecond

// WatchContent watches the content directory and notifies the store when
// JSON files change. Runs until the watcher fails or the process exits.
func WatchContent(dir string, store *content.Store) error {
	watcher, err := fsnotify.NewWatcher()
	if err != nil {
		return err
	}
	if err := watcher.Add(dir); err != nil {
		watcher.Close()
		return err
	}

	go func() {
		defer watcher.Close()

		var reloadTimer *time.Timer
		for {
			select {
			case event, ok := <-watcher.Events:
				if !ok {
					return
				}
				if event.Has(fsnotify.Write) || event.Has(fsnotify.Create) ||
					event.Has(fsnotify.Remove) || event.Has(fsnotify.Rename) {
					log.Printf("Content change detected: %s (%s)", event.Name, event.Op)
					if reloadTimer != nil {
						reloadTimer.Stop()
					}
					reloadTimer = time.AfterFunc(debounceDuration, func() {
						store.Reload("watch")
					})
				}
			case err, ok := <-watcher.Errors:
				if !ok {
					return
				}
				log.Printf("Watcher error: %v", err)
			}
		}
	}()

	log.Printf("Watching content directory: %s", dir)
	return nil
}
