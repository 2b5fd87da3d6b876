// Package vault locates Markdown files in an Obsidian-style vault and keeps
// a modification-time keyed cache of their parsed tasks.
package vault

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"
)

// FindMarkdownFiles walks root recursively and returns every regular .md
// file, in walk order.
func FindMarkdownFiles(root string) ([]string, error) {
	info, err := os.Stat(root)
	if err != nil {
		return nil, fmt.Errorf("vault path %s: %w", root, err)
	}
	if !info.IsDir() {
		return nil, fmt.Errorf("vault path %s is not a directory", root)
	}

	var files []string
	err = filepath.Walk(root, func(path string, info os.FileInfo, err error) error {
		if err != nil {
			return err
		}
		if !info.IsDir() && strings.HasSuffix(strings.ToLower(info.Name()), ".md") {
			files = append(files, path)
		}
		return nil
	})
	if err != nil {
		return nil, fmt.Errorf("walking vault %s: %w", root, err)
	}

	return files, nil
}
