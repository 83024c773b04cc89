// Package discovery resolves data file arguments, expanding doublestar glob
// patterns against the filesystem.
package discovery

import (
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strings"

	"github.com/bmatcuk/doublestar/v4"
)

// dataExtensions are the file extensions recognized as health data files.
var dataExtensions = []string{".yaml", ".yml"}

// IsDataFile reports whether path has a recognized data file extension.
func IsDataFile(path string) bool {
	ext := strings.ToLower(filepath.Ext(path))
	for _, e := range dataExtensions {
		if ext == e {
			return true
		}
	}
	return false
}

// Resolve expands each argument into concrete data file paths. Plain file
// paths pass through after an existence check; arguments containing glob
// meta characters are matched with doublestar relative to the current
// directory. Directories are walked for data files one level of globbing
// deep (dir/**/*.yaml). The result is sorted and de-duplicated.
func Resolve(args []string) ([]string, error) {
	seen := make(map[string]bool)
	var files []string

	add := func(path string) {
		if !seen[path] {
			seen[path] = true
			files = append(files, path)
		}
	}

	for _, arg := range args {
		switch {
		case isGlob(arg):
			matches, err := doublestar.FilepathGlob(arg)
			if err != nil {
				return nil, fmt.Errorf("invalid pattern %q: %w", arg, err)
			}
			for _, m := range matches {
				if IsDataFile(m) {
					add(m)
				}
			}
		default:
			info, err := os.Stat(arg)
			if err != nil {
				return nil, fmt.Errorf("cannot access %q: %w", arg, err)
			}
			if info.IsDir() {
				matches, err := doublestar.FilepathGlob(filepath.Join(arg, "**", "*.y*ml"))
				if err != nil {
					return nil, fmt.Errorf("scanning %q: %w", arg, err)
				}
				for _, m := range matches {
					if IsDataFile(m) {
						add(m)
					}
				}
			} else {
				add(arg)
			}
		}
	}

	sort.Strings(files)
	return files, nil
}

// isGlob reports whether the argument contains glob meta characters.
func isGlob(arg string) bool {
	return strings.ContainsAny(arg, "*?[{")
}
