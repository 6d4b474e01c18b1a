package transfer

import (
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
)

// walkRoot enumerates the files to transfer and their paths relative to the
// upload root.
//
// A regular file maps to a single entry whose relative path is its own base
// name, so it lands directly under the destination's remote base path. A
// directory maps to every regular file beneath it, with the directory's own
// base name preserved as the first relative component: uploading "photos/"
// produces "photos/a.jpg", not "a.jpg". Symlinks and directory entries are
// not transferred as payloads.
func walkRoot(root string) ([]Task, error) {
	info, err := os.Stat(root)
	if err != nil {
		return nil, fmt.Errorf("%w: %s", ErrLocalPath, root)
	}

	if !info.IsDir() {
		return []Task{{LocalPath: root, RelPath: info.Name()}}, nil
	}

	base := filepath.Base(filepath.Clean(root))
	var tasks []Task
	err = filepath.WalkDir(root, func(p string, d fs.DirEntry, walkErr error) error {
		if walkErr != nil {
			return walkErr
		}
		if !d.Type().IsRegular() {
			return nil
		}
		rel, relErr := filepath.Rel(root, p)
		if relErr != nil {
			return relErr
		}
		tasks = append(tasks, Task{
			LocalPath: p,
			RelPath:   filepath.ToSlash(filepath.Join(base, rel)),
		})
		return nil
	})
	if err != nil {
		return nil, fmt.Errorf("walking %s: %w", root, err)
	}

	return tasks, nil
}

// CountFiles reports how many files an upload of root would transfer, using
// the same enumeration rules as the transfer itself.
func CountFiles(root string) (int, error) {
	tasks, err := walkRoot(root)
	if err != nil {
		return 0, err
	}
	return len(tasks), nil
}
