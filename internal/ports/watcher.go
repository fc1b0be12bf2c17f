package ports

// Watcher monitors a file (or a directory of files) for changes and triggers
// re-rendering. The adapter (fsnotify) filters editor noise (.swp, backups)
// and debounces rapid writes before invoking onChange. Only one Watch call
// should be active at a time.
type Watcher interface {
	// Watch starts monitoring path. When path is a file, only events for that
	// file are delivered. When path is a directory, events for files directly
	// inside it are delivered. onChange is called with the absolute path of
	// each changed file and may be invoked from any goroutine. Returns an error
	// if the path doesn't exist or permissions are insufficient.
	Watch(path string, onChange func(filePath string)) error

	// Stop ends monitoring and releases all resources. After Stop returns,
	// no further onChange calls will fire. Safe to call multiple times.
	Stop() error
}
