package search

import (
	"os"
	"path/filepath"
)

// collectTargets expands inputs into the ordered list of files to scan.
//
// A directory contributes every file reachable by full descent when
// recursive is set, in filepath.Walk's natural order, and contributes
// nothing otherwise. Regular files pass through unchanged. Paths that do
// not exist also pass through, so the open step reports the failure
// instead of the path silently disappearing.
func collectTargets(inputs []string, recursive bool) []string {
	var files []string

	for _, input := range inputs {
		info, err := os.Stat(input)
		if err == nil && info.IsDir() {
			if recursive {
				_ = filepath.Walk(input, func(path string, fi os.FileInfo, walkErr error) error {
					if walkErr != nil {
						// Unreadable entries are skipped, not fatal.
						return nil
					}
					if !fi.IsDir() {
						files = append(files, path)
					}
					return nil
				})
			}
			continue
		}
		files = append(files, input)
	}

	return files
}
