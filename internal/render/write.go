package render

import (
	"bufio"
	"io"
	"log/slog"
	"os"
	"path/filepath"
)

// writeAtomic renders into a temporary file next to path and renames it over
// path only once drawing and flushing succeeded. An existing file at path is
// replaced; a failed render leaves path untouched.
func writeAtomic(path string, draw func(io.Writer) error) (err error) {
	tmp, err := os.CreateTemp(filepath.Dir(path), "."+filepath.Base(path)+".tmp-*")
	if err != nil {
		return &RenderError{Path: path, Op: "create", Err: err}
	}
	tmpName := tmp.Name()
	defer func() {
		if err != nil {
			tmp.Close()
			os.Remove(tmpName)
		}
	}()

	bw := bufio.NewWriter(tmp)
	if err := draw(bw); err != nil {
		return &RenderError{Path: path, Op: "draw", Err: err}
	}
	if err := bw.Flush(); err != nil {
		return &RenderError{Path: path, Op: "write", Err: err}
	}
	if err := tmp.Close(); err != nil {
		return &RenderError{Path: path, Op: "write", Err: err}
	}
	// CreateTemp uses 0600; artifacts are ordinary files.
	if err := os.Chmod(tmpName, 0o644); err != nil {
		return &RenderError{Path: path, Op: "write", Err: err}
	}
	if err := os.Rename(tmpName, path); err != nil {
		return &RenderError{Path: path, Op: "rename", Err: err}
	}

	slog.Debug("wrote artifact", "path", path)
	return nil
}
