package loader

import (
	"context"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/klauspost/compress/gzip"
	"github.com/klauspost/compress/zstd"
	"github.com/pierrec/lz4/v4"
	"golang.org/x/sync/errgroup"

	"github.com/skywatch/neodb/codec"
	"github.com/skywatch/neodb/model"
)

type options struct {
	codec  codec.Codec
	logger Logger
}

// Option configures loader behavior.
type Option func(*options)

// WithCodec configures the codec used to decode JSON source files.
// If nil is passed, codec.Default is used.
func WithCodec(c codec.Codec) Option {
	return func(o *options) {
		if c == nil {
			c = codec.Default
		}
		o.codec = c
	}
}

// Logger receives warnings about skipped rows. It is satisfied by
// *slog.Logger and by neodb.Logger.
type Logger interface {
	Warn(msg string, args ...any)
}

// WithLogger configures a logger for skipped-row warnings.
// Pass nil to disable logging.
func WithLogger(l Logger) Option {
	return func(o *options) {
		o.logger = l
	}
}

func applyOptions(optFns []Option) options {
	o := options{
		codec: codec.Default,
	}
	for _, fn := range optFns {
		if fn != nil {
			fn(&o)
		}
	}
	return o
}

func (o options) warn(msg string, args ...any) {
	if o.logger != nil {
		o.logger.Warn(msg, args...)
	}
}

// Load reads both source files in parallel and returns the two collections,
// ready to be handed to neodb.New.
func Load(ctx context.Context, neoPath, cadPath string, optFns ...Option) ([]*model.NearEarthObject, []*model.CloseApproach, error) {
	var (
		neos       []*model.NearEarthObject
		approaches []*model.CloseApproach
	)

	g, _ := errgroup.WithContext(ctx)
	g.Go(func() error {
		var err error
		neos, err = LoadNEOs(neoPath, optFns...)
		return err
	})
	g.Go(func() error {
		var err error
		approaches, err = LoadApproaches(cadPath, optFns...)
		return err
	})
	if err := g.Wait(); err != nil {
		return nil, nil, err
	}

	return neos, approaches, nil
}

// openReader opens path for reading, transparently decompressing .gz, .zst
// and .lz4 files by extension.
func openReader(path string) (io.ReadCloser, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}

	switch strings.ToLower(filepath.Ext(path)) {
	case ".gz":
		zr, err := gzip.NewReader(f)
		if err != nil {
			_ = f.Close()
			return nil, fmt.Errorf("loader: open gzip %s: %w", path, err)
		}
		return &chainedCloser{Reader: zr, closers: []io.Closer{zr, f}}, nil

	case ".zst":
		zr, err := zstd.NewReader(f)
		if err != nil {
			_ = f.Close()
			return nil, fmt.Errorf("loader: open zstd %s: %w", path, err)
		}
		return &chainedCloser{Reader: zr, closers: []io.Closer{zr.IOReadCloser(), f}}, nil

	case ".lz4":
		return &chainedCloser{Reader: lz4.NewReader(f), closers: []io.Closer{f}}, nil

	default:
		return f, nil
	}
}

// chainedCloser is a reader whose Close closes the decompressor before the
// underlying file.
type chainedCloser struct {
	io.Reader
	closers []io.Closer
}

func (c *chainedCloser) Close() error {
	var firstErr error
	for _, cl := range c.closers {
		if err := cl.Close(); err != nil && firstErr == nil {
			firstErr = err
		}
	}
	return firstErr
}
