package fetcher

import (
	"archive/zip"
	"io"
	"path"
	"strings"

	"github.com/rotisserie/eris"
)

// openZIPEntry streams the export out of a ZIP archive without extracting
// it to disk. When the archive holds several files the single *.osm entry
// is used; anything else is ambiguous.
func openZIPEntry(zipPath string) (io.ReadCloser, error) {
	r, err := zip.OpenReader(zipPath)
	if err != nil {
		return nil, eris.Wrap(err, "zip: open archive")
	}

	// Filter to only files (skip directories)
	var files, osmFiles []*zip.File
	for _, f := range r.File {
		if f.FileInfo().IsDir() {
			continue
		}
		files = append(files, f)
		if strings.EqualFold(path.Ext(f.Name), ".osm") {
			osmFiles = append(osmFiles, f)
		}
	}

	var entry *zip.File
	switch {
	case len(files) == 1:
		entry = files[0]
	case len(osmFiles) == 1:
		entry = osmFiles[0]
	default:
		_ = r.Close()
		return nil, eris.Errorf("zip: expected exactly 1 .osm file, got %d files (%d .osm)", len(files), len(osmFiles))
	}

	rc, err := entry.Open()
	if err != nil {
		_ = r.Close()
		return nil, eris.Wrapf(err, "zip: open entry %s", entry.Name)
	}
	return &stackedCloser{Reader: rc, closers: []io.Closer{rc, r}}, nil
}
