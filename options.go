package finfo

import "log/slog"

// DefaultMaxBlockSize is the default limit on a block's declared length.
const DefaultMaxBlockSize = 64 << 20

// Option configures decoding.
//
// Example:
//
//	format, err := finfo.DecodeFile(ctx, "image.png", fn,
//	    finfo.WithLogger(logger),
//	    finfo.WithMaxBlockSize(1<<20),
//	)
type Option func(*decodeOptions)

// decodeOptions holds configuration for one decode.
type decodeOptions struct {
	logger       *slog.Logger
	maxBlockSize int64
}

// defaultOptions returns the default configuration.
func defaultOptions() *decodeOptions {
	return &decodeOptions{
		logger:       slog.New(slog.DiscardHandler),
		maxBlockSize: DefaultMaxBlockSize,
	}
}

// WithLogger sets the logger that receives a debug entry for every block
// header. By default nothing is logged.
func WithLogger(l *slog.Logger) Option {
	return func(o *decodeOptions) {
		if l != nil {
			o.logger = l
		}
	}
}

// WithMaxBlockSize limits the declared payload length of any block.
//
// A block declaring more fails with ErrMalformedField before its payload
// is allocated, which protects against corrupt length fields. Default is
// DefaultMaxBlockSize; n <= 0 removes the limit.
func WithMaxBlockSize(n int64) Option {
	return func(o *decodeOptions) {
		o.maxBlockSize = n
	}
}
