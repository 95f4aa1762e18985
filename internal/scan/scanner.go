package scan

import (
	"os"
	"path/filepath"
	"strings"

	"github.com/samber/lo"
)

type FileInfo struct {
	Path  string
	Mtime int64
	Size  int64
}

// ScanRoots walks every root and returns the files whose extension is in
// exts (case-insensitive). Missing roots are skipped.
func ScanRoots(roots []string, exts []string) ([]FileInfo, error) {
	wanted := lo.Map(exts, func(e string, _ int) string {
		return strings.ToLower(e)
	})

	var files []FileInfo
	for _, root := range lo.Uniq(roots) {
		if root == "" {
			continue
		}
		rf, err := scanRoot(root, wanted)
		if err != nil && !os.IsNotExist(err) {
			return nil, err
		}
		files = append(files, rf...)
	}
	return files, nil
}

func scanRoot(root string, exts []string) ([]FileInfo, error) {
	if _, err := os.Stat(root); err != nil {
		return nil, err
	}

	var files []FileInfo
	err := filepath.Walk(root, func(path string, info os.FileInfo, err error) error {
		if err != nil {
			return nil // skip unreadable dirs
		}
		if info.IsDir() {
			if path != root && strings.HasPrefix(info.Name(), ".") {
				return filepath.SkipDir
			}
			return nil
		}
		if !info.Mode().IsRegular() {
			return nil
		}
		if !lo.Contains(exts, strings.ToLower(filepath.Ext(path))) {
			return nil
		}
		files = append(files, FileInfo{
			Path:  path,
			Mtime: info.ModTime().Unix(),
			Size:  info.Size(),
		})
		return nil
	})
	return files, err
}
