package fetcher

import (
	"bufio"
	"compress/bzip2"
	"compress/gzip"
	"context"
	"io"
	"net/url"
	"os"
	"strings"

	"github.com/rotisserie/eris"
	"go.uber.org/zap"
)

// Opener resolves an input argument to a readable export stream.
type Opener struct {
	// Remote is used for http:// and https:// sources. Nil disables them.
	Remote Downloader
}

// Open returns a stream for src, which may be "-" for standard input, a
// local path, or an http(s) URL. Sources ending in .gz or .bz2 are
// decompressed on the fly; local .zip archives are read in place.
func (o *Opener) Open(ctx context.Context, src string) (io.ReadCloser, error) {
	if isRemote(src) {
		if o.Remote == nil {
			return nil, eris.Errorf("fetcher: remote sources are disabled: %s", src)
		}
		u, err := url.Parse(src)
		if err != nil {
			return nil, eris.Wrapf(err, "fetcher: parse url %s", src)
		}
		zap.L().Info("downloading export", zap.String("url", src))
		body, err := o.Remote.Download(ctx, src)
		if err != nil {
			return nil, eris.Wrapf(err, "fetcher: download %s", src)
		}
		return decompress(u.Path, body)
	}
	return OpenFile(src)
}

// OpenFile opens a local export for streaming.
func OpenFile(path string) (io.ReadCloser, error) {
	if path == "-" {
		return io.NopCloser(bufio.NewReader(os.Stdin)), nil
	}
	if strings.HasSuffix(path, ".zip") {
		return openZIPEntry(path)
	}

	f, err := os.Open(path)
	if err != nil {
		return nil, eris.Wrapf(err, "fetcher: open %s", path)
	}
	return decompress(path, f)
}

func isRemote(src string) bool {
	return strings.HasPrefix(src, "http://") || strings.HasPrefix(src, "https://")
}

// decompress wraps rc according to the extension of name.
func decompress(name string, rc io.ReadCloser) (io.ReadCloser, error) {
	switch {
	case strings.HasSuffix(name, ".gz"):
		gz, err := gzip.NewReader(rc)
		if err != nil {
			_ = rc.Close()
			return nil, eris.Wrapf(err, "fetcher: gzip header %s", name)
		}
		return &stackedCloser{Reader: gz, closers: []io.Closer{gz, rc}}, nil
	case strings.HasSuffix(name, ".bz2"):
		return &stackedCloser{Reader: bzip2.NewReader(bufio.NewReader(rc)), closers: []io.Closer{rc}}, nil
	default:
		return rc, nil
	}
}

// stackedCloser closes a decompressor and the stream beneath it.
type stackedCloser struct {
	io.Reader
	closers []io.Closer
}

func (s *stackedCloser) Close() error {
	var first error
	for _, c := range s.closers {
		if err := c.Close(); err != nil && first == nil {
			first = err
		}
	}
	return first
}
