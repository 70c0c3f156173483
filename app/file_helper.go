package app

import (
	"os"
	"path/filepath"

	"github.com/Allancgx/warnings-ng-plugin/internal/constants"
	ignore "github.com/sabhiram/go-gitignore"
)

// FileHelper provides report file discovery utilities
type FileHelper struct{}

// NewFileHelper creates a new FileHelper
func NewFileHelper() *FileHelper {
	return &FileHelper{}
}

// CollectReportFiles collects report files from paths. Exclude patterns
// use gitignore syntax and are matched against paths relative to the
// searched directory.
func (h *FileHelper) CollectReportFiles(paths []string, recursive bool, includePatterns, excludePatterns []string) ([]string, error) {
	matcher := ignore.CompileIgnoreLines(excludePatterns...)

	var files []string
	for _, path := range paths {
		info, err := os.Stat(path)
		if err != nil {
			return nil, err
		}

		if !info.IsDir() {
			if h.isReportFile(path, includePatterns) && !matcher.MatchesPath(path) {
				files = append(files, path)
			}
			continue
		}

		// Directory handling
		if recursive {
			err = filepath.Walk(path, func(filePath string, info os.FileInfo, err error) error {
				if err != nil {
					return err
				}

				rel, relErr := filepath.Rel(path, filePath)
				if relErr != nil {
					rel = filePath
				}

				// Skip excluded directories early
				if info.IsDir() {
					if rel != "." && matcher.MatchesPath(rel) {
						return filepath.SkipDir
					}
					return nil
				}

				if h.isReportFile(filePath, includePatterns) && !matcher.MatchesPath(rel) {
					files = append(files, filePath)
				}

				return nil
			})
		} else {
			entries, readErr := os.ReadDir(path)
			if readErr != nil {
				return nil, readErr
			}

			for _, entry := range entries {
				if entry.IsDir() {
					continue
				}
				filePath := filepath.Join(path, entry.Name())
				if h.isReportFile(filePath, includePatterns) && !matcher.MatchesPath(entry.Name()) {
					files = append(files, filePath)
				}
			}
		}

		if err != nil {
			return nil, err
		}
	}

	return files, nil
}

// FileExists checks if a file exists
func (h *FileHelper) FileExists(path string) (bool, error) {
	info, err := os.Stat(path)
	if err != nil {
		if os.IsNotExist(err) {
			return false, nil
		}
		return false, err
	}
	return !info.IsDir(), nil
}

// isReportFile checks the extension and the include patterns
func (h *FileHelper) isReportFile(path string, includePatterns []string) bool {
	if !constants.IsReportExtension(filepath.Ext(path)) {
		return false
	}

	if len(includePatterns) == 0 {
		return true
	}

	base := filepath.Base(path)
	for _, pattern := range includePatterns {
		if matched, _ := filepath.Match(pattern, base); matched {
			return true
		}
	}
	return false
}

// ResolveReportPaths resolves report paths, returning existing files
// directly or collecting report files from directories
func ResolveReportPaths(
	fileHelper *FileHelper,
	paths []string,
	recursive bool,
	includePatterns []string,
	excludePatterns []string,
) ([]string, error) {
	// Check if all paths are already files
	allFiles := true
	for _, path := range paths {
		exists, err := fileHelper.FileExists(path)
		if err != nil || !exists {
			allFiles = false
			break
		}
	}

	// Explicitly named files are evaluated as-is, without pattern filtering
	if allFiles {
		return paths, nil
	}

	return fileHelper.CollectReportFiles(paths, recursive, includePatterns, excludePatterns)
}
