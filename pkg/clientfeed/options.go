// Package clientfeed converts tabular client rows into normalized client
// records ready for bulk ingestion.
package clientfeed

import (
	"runtime"

	"go.uber.org/zap"
)

// Options configures a conversion run.
type Options struct {
	// Sheet selects the worksheet to read. Empty means the first sheet.
	Sheet string
	// Workers is the number of mapping goroutines. 1 maps sequentially;
	// 0 means one per CPU. Output order always matches input order.
	Workers int
	// Logger receives run progress. Nil disables logging.
	Logger *zap.Logger
}

// DefaultOptions returns sequential, first-sheet conversion options.
func DefaultOptions() Options {
	return Options{Workers: 1}
}

func (o Options) workerCount() int {
	if o.Workers <= 0 {
		return runtime.NumCPU()
	}
	return o.Workers
}

func (o Options) logger() *zap.Logger {
	if o.Logger == nil {
		return zap.NewNop()
	}
	return o.Logger
}
