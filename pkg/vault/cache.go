package vault

import (
	"log"
	"os"
	"sync"
	"time"

	"tasklens/pkg/parser"
	"tasklens/pkg/task"
)

// Cache memoizes parsed tasks per file, keyed by modification time. A file
// is re-read only when its mtime differs from the cached one; an unchanged
// mtime serves the cached tasks without touching the file contents.
type Cache struct {
	parser *parser.Parser

	mu      sync.Mutex
	entries map[string]cacheEntry

	// Overridable for tests.
	statFile func(path string) (os.FileInfo, error)
	readFile func(path string) ([]byte, error)
}

type cacheEntry struct {
	mtime time.Time
	tasks []*task.Task
}

// NewCache creates an empty cache that parses with p.
func NewCache(p *parser.Parser) *Cache {
	return &Cache{
		parser:   p,
		entries:  make(map[string]cacheEntry),
		statFile: os.Stat,
		readFile: os.ReadFile,
	}
}

// Tasks returns the parsed tasks for path, reparsing only when the file's
// modification time changed since the last call. A stat failure forces a
// reparse attempt; a read failure caches an empty task list so one broken
// file does not abort a vault-wide scan.
func (c *Cache) Tasks(path string) []*task.Task {
	var mtime time.Time
	if info, err := c.statFile(path); err == nil {
		mtime = info.ModTime()
	}

	c.mu.Lock()
	defer c.mu.Unlock()

	if entry, ok := c.entries[path]; ok && entry.mtime.Equal(mtime) {
		return entry.tasks
	}

	var tasks []*task.Task
	content, err := c.readFile(path)
	if err != nil {
		log.Printf("warning: reading %s: %v", path, err)
	} else {
		tasks = c.parser.ParseContent(path, string(content))
	}

	c.entries[path] = cacheEntry{mtime: mtime, tasks: tasks}
	return tasks
}

// AllTasks walks the vault at root and returns the tasks of every Markdown
// file, served through the cache.
func (c *Cache) AllTasks(root string) ([]*task.Task, error) {
	files, err := FindMarkdownFiles(root)
	if err != nil {
		return nil, err
	}

	var all []*task.Task
	for _, file := range files {
		all = append(all, c.Tasks(file)...)
	}
	return all, nil
}

// Clear drops every cached entry. There is no per-file eviction; the next
// access reparses.
func (c *Cache) Clear() {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.entries = make(map[string]cacheEntry)
}
