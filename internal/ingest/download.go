package ingest

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/klauspost/pgzip"
)

// Download fetches source and writes it to dest. The file is written to a
// temporary name in the same directory and renamed into place, so readers
// never see a partial file. A dest ending in .gz is gzip compressed.
func Download(ctx context.Context, f *Fetcher, source, dest string) (int64, error) {
	fetched, err := f.Fetch(ctx, source)
	if err != nil {
		return 0, err
	}
	body, err := decompress(fetched.Body)
	if err != nil {
		return 0, err
	}

	dir := filepath.Dir(dest)
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return 0, fmt.Errorf("create %s: %w", dir, err)
	}
	tmp, err := os.CreateTemp(dir, "."+filepath.Base(dest)+".*")
	if err != nil {
		return 0, fmt.Errorf("create temp file: %w", err)
	}
	defer os.Remove(tmp.Name())

	if strings.HasSuffix(dest, ".gz") {
		zw := pgzip.NewWriter(tmp)
		if _, err := zw.Write(body); err != nil {
			tmp.Close()
			return 0, fmt.Errorf("compress: %w", err)
		}
		if err := zw.Close(); err != nil {
			tmp.Close()
			return 0, fmt.Errorf("compress: %w", err)
		}
	} else if _, err := tmp.Write(body); err != nil {
		tmp.Close()
		return 0, fmt.Errorf("write %s: %w", tmp.Name(), err)
	}
	if err := tmp.Close(); err != nil {
		return 0, fmt.Errorf("close %s: %w", tmp.Name(), err)
	}

	if err := os.Rename(tmp.Name(), dest); err != nil {
		return 0, fmt.Errorf("rename to %s: %w", dest, err)
	}
	return int64(len(body)), nil
}
