package app

import (
	"context"
	"os"
)

// WatchMarkdown renders the file at path once, then again on every change,
// passing the HTML and source path to emit. It blocks until ctx is done.
// A file that cannot be read after a change is logged and skipped.
func (a *App) WatchMarkdown(ctx context.Context, path string, emit func(path, html string)) error {
	render := func(p string) error {
		src, err := os.ReadFile(p)
		if err != nil {
			return err
		}
		emit(p, a.MarkdownToHTML(string(src)))
		return nil
	}

	if err := render(path); err != nil {
		return wrapWatchError(err)
	}

	w, err := a.newWatcher()
	if err != nil {
		return wrapWatchError(err)
	}
	defer w.Stop()

	if err := w.Watch(path, func(changed string) {
		if err := render(changed); err != nil {
			a.Log.Warn("re-render failed", "path", changed, "error", err)
			return
		}
		a.Log.Debug("re-rendered", "path", changed)
	}); err != nil {
		return wrapWatchError(err)
	}
	a.Log.Info("watching", "path", path)

	<-ctx.Done()
	return nil
}
