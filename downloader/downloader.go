// Package downloader retrieves the snapshots of a resolved time window and
// persists them under the per-run destination directory.
package downloader

import (
	"context"
	"fmt"
	"io"
	"net/http"
	"os"
	"path/filepath"

	"github.com/airbusgeo/goes-archiver/common"
	"github.com/airbusgeo/goes-archiver/interface/provider"
	"github.com/airbusgeo/goes-archiver/service"
	"github.com/google/uuid"
)

// FetchFunc retrieves the content at url. A non-2xx response is an error.
type FetchFunc func(ctx context.Context, url string) ([]byte, error)

// WriteFunc persists data at path.
type WriteFunc func(path string, data []byte) error

// HTTPFetch returns a FetchFunc backed by client. Each call is a single
// attempt; transient transport failures are marked temporary so the report
// can tell a retryable 503 from a frame the CDN never published.
func HTTPFetch(client *http.Client) FetchFunc {
	return func(ctx context.Context, url string) ([]byte, error) {
		req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
		if err != nil {
			return nil, fmt.Errorf("NewRequest: %w", err)
		}
		resp, err := client.Do(req)
		if err != nil {
			return nil, service.MakeTemporary(err)
		}
		defer resp.Body.Close()
		if resp.StatusCode < 200 || resp.StatusCode >= 300 {
			err := fmt.Errorf("HTTP %s", resp.Status)
			switch resp.StatusCode {
			case 408, 429, 500, 501, 502, 503, 504:
				return nil, service.MakeTemporary(err)
			default:
				return nil, err
			}
		}
		body, err := io.ReadAll(resp.Body)
		if err != nil {
			return nil, service.MakeTemporary(fmt.Errorf("read body: %w", err))
		}
		return body, nil
	}
}

// AtomicWrite writes data to a uniquely named temporary file in the target
// directory and renames it into place, so a failed write never leaves a
// partial snapshot under the final name.
func AtomicWrite(path string, data []byte) error {
	tmp := fmt.Sprintf("%s.%s.tmp", path, uuid.New().String())
	if err := os.WriteFile(tmp, data, 0666); err != nil {
		return err
	}
	if err := os.Rename(tmp, path); err != nil {
		os.Remove(tmp)
		return err
	}
	return nil
}

// FetchSnapshot retrieves one snapshot and persists it as
// <task.Dir>/<timestamp>.jpg. All failures end up in the returned outcome,
// never in a shared error: one missing frame must not disturb its siblings.
func FetchSnapshot(ctx context.Context, task common.FetchTask, p provider.SnapshotProvider, fetch FetchFunc, write WriteFunc) common.FetchOutcome {
	url, err := p.SnapshotURL(task.Timestamp)
	if err != nil {
		return common.FetchOutcome{Timestamp: task.Timestamp, Err: fmt.Errorf("url construction failed: %w", err)}
	}

	data, err := fetch(ctx, url)
	if err != nil {
		return common.FetchOutcome{Timestamp: task.Timestamp, Err: fmt.Errorf("fetch failed [%s]: %w", url, err)}
	}

	path := filepath.Join(task.Dir, common.FormatCompact(task.Timestamp)+".jpg")
	if err := write(path, data); err != nil {
		return common.FetchOutcome{Timestamp: task.Timestamp, Err: fmt.Errorf("write failed [%s]: %w", path, err)}
	}
	return common.FetchOutcome{Timestamp: task.Timestamp, Path: path}
}
