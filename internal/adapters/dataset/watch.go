package dataset

import (
	"context"
	"fmt"
	"path/filepath"

	"github.com/fsnotify/fsnotify"
	"github.com/sirupsen/logrus"

	"github.com/emiliopalmerini/mcba/internal/domain"
)

// Watch reloads path whenever it changes on disk and calls onChange with the
// new inputs. It runs until ctx is cancelled.
//
// The parent directory is watched rather than the file, so saves that write
// a temporary file and rename it over path are seen too. A reload that fails
// to parse is logged and skipped; onChange is not called.
func Watch(ctx context.Context, log logrus.FieldLogger, path string, onChange func([]domain.TreatmentInput)) error {
	target, err := filepath.Abs(path)
	if err != nil {
		return fmt.Errorf("resolve %s: %w", path, err)
	}

	watcher, err := fsnotify.NewWatcher()
	if err != nil {
		return err
	}
	defer watcher.Close()

	if err := watcher.Add(filepath.Dir(target)); err != nil {
		return err
	}

	log = log.WithField("path", path)
	log.Info("dataset: watching for changes")

	for {
		select {
		case <-ctx.Done():
			return nil

		case event, ok := <-watcher.Events:
			if !ok {
				return nil
			}
			if !affects(event, target) {
				continue
			}

			inputs, err := Load(target)
			if err != nil {
				log.WithError(err).Error("dataset: reload failed, keeping previous data")
				continue
			}

			log.WithField("treatments", len(inputs)).Info("dataset: reloaded")
			onChange(inputs)

		case err, ok := <-watcher.Errors:
			if !ok {
				return nil
			}
			log.WithError(err).Error("dataset: watcher error")
		}
	}
}

// affects reports whether event leaves new content at target. A rename onto
// target arrives as Create; removals and renames away are ignored.
func affects(event fsnotify.Event, target string) bool {
	name, err := filepath.Abs(event.Name)
	if err != nil || name != target {
		return false
	}
	return event.Has(fsnotify.Write) || event.Has(fsnotify.Create)
}
