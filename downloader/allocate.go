package downloader

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/airbusgeo/goes-archiver/common"
	"github.com/airbusgeo/goes-archiver/window"
)

// ErrDirectory is an error setting up the destination directory. It is
// always raised before any network activity.
type ErrDirectory struct {
	Path   string
	Reason string
	Err    error
}

func (e ErrDirectory) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("directory %s: %s: %v", e.Path, e.Reason, e.Err)
	}
	return fmt.Sprintf("directory %s: %s", e.Path, e.Reason)
}

func (e ErrDirectory) Unwrap() error { return e.Err }

// DirName returns the deterministic output directory name of a window,
// e.g. images_20241130T080000_to_20241130T082000_stride_10m. The name depends
// only on the window, never on wall-clock time.
func DirName(w window.ResolvedWindow) string {
	return fmt.Sprintf("images_%s_to_%s_stride_%dm",
		common.FormatCompact(w.Start), common.FormatCompact(w.End), w.StrideMinutes())
}

// AllocateDir creates the per-run destination directory under root and
// returns its path. Each run gets a fresh namespace: an existing directory
// for the same window is an error, never silently merged into.
func AllocateDir(root string, w window.ResolvedWindow) (string, error) {
	if _, err := os.Stat(root); err != nil {
		if os.IsNotExist(err) {
			return "", ErrDirectory{Path: root, Reason: "root directory does not exist"}
		}
		return "", ErrDirectory{Path: root, Reason: "stat root", Err: err}
	}

	dir := filepath.Join(root, DirName(w))
	if _, err := os.Stat(dir); err == nil {
		return "", ErrDirectory{Path: dir, Reason: "already exists"}
	} else if !os.IsNotExist(err) {
		return "", ErrDirectory{Path: dir, Reason: "stat", Err: err}
	}

	if err := os.Mkdir(dir, 0766); err != nil {
		return "", ErrDirectory{Path: dir, Reason: "create failed", Err: err}
	}
	return dir, nil
}
