package report

import (
	"context"
	"fmt"
	"os"
	"path/filepath"

	"otc-compare/core/reconcile"
	"otc-compare/core/storage"
)

// StemLayout timestamps report file names as HH-MM-SS_DD-MM-YYYY.
const StemLayout = "15-04-05_02-01-2006"

const (
	contentTypeXLSX = "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet"
	contentTypeHTML = "text/html; charset=utf-8"
)

// Files are the paths of one written report.
type Files struct {
	XLSX string `json:"xlsx"`
	HTML string `json:"html"`
}

// Write renders the records to <dir>/<prefix>_<timestamp>.{xlsx,html}.
func Write(cfg Config, records []reconcile.Comparison, meta Meta) (Files, error) {
	dir := cfg.Dir
	if dir == "" {
		dir = "."
	}
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return Files{}, fmt.Errorf("failed to create report dir: %w", err)
	}

	stem := filepath.Join(dir, cfg.Prefix+"_"+meta.Generated.Format(StemLayout))
	files := Files{XLSX: stem + ".xlsx", HTML: stem + ".html"}

	if err := WriteXLSX(files.XLSX, records); err != nil {
		return Files{}, err
	}
	if err := WriteHTML(files.HTML, records, meta); err != nil {
		return Files{}, err
	}
	return files, nil
}

// Upload publishes both files to the configured bucket and returns the object keys.
func Upload(ctx context.Context, client storage.Client, cfg storage.Config, files Files) ([]string, error) {
	if err := storage.EnsureBucket(ctx, client, cfg.Bucket, cfg.Region); err != nil {
		return nil, err
	}

	keys := make([]string, 0, 2)
	for _, f := range []struct{ path, contentType string }{
		{files.XLSX, contentTypeXLSX},
		{files.HTML, contentTypeHTML},
	} {
		key, err := storage.UploadFile(ctx, client, cfg.Bucket, cfg.Prefix, f.path, f.contentType)
		if err != nil {
			return keys, err
		}
		keys = append(keys, key)
	}
	return keys, nil
}
