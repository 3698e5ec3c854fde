package clientfeed

import (
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"clientfeed/pkg/clientfeed/mapper"
	"clientfeed/pkg/clientfeed/models"
	"clientfeed/pkg/clientfeed/source"
)

// Stats summarizes one conversion run.
type Stats struct {
	// RunID identifies the run in logs.
	RunID string
	// Sheet is the worksheet that was read.
	Sheet string
	// RowsRead is the number of data rows supplied by the row source.
	RowsRead int
	// RecordsOut is the number of records that survived sparse filtering.
	RecordsOut int
	// SparseSkipped is the number of rows dropped as blank or header-like.
	SparseSkipped int
	// Duration is the wall-clock time of the run.
	Duration time.Duration
}

// Convert reads client rows from an xlsx file and maps them to output
// records, preserving input row order. Sparse rows are counted and
// dropped. The only errors are row-source failures; individual rows
// never fail.
func Convert(path string, opts Options) ([]*models.Record, Stats, error) {
	stats := Stats{RunID: uuid.NewString()}
	log := opts.logger().With(zap.String("runID", stats.RunID), zap.String("input", path))

	start := time.Now()
	table, err := source.ReadWorkbook(path, opts.Sheet)
	if err != nil {
		return nil, stats, &ConvertError{Stage: "source", Path: path, Err: err}
	}
	stats.Sheet = table.Sheet

	log.Info("read workbook",
		zap.String("sheet", table.Sheet),
		zap.Int("rows", len(table.Rows)))

	records := ConvertRows(table.Rows, &stats, opts)
	stats.Duration = time.Since(start)

	log.Info("conversion complete",
		zap.Int("rowsRead", stats.RowsRead),
		zap.Int("recordsOut", stats.RecordsOut),
		zap.Int("sparseSkipped", stats.SparseSkipped),
		zap.Duration("duration", stats.Duration))

	return records, stats, nil
}

// ConvertRows maps an in-memory row batch, filling in the row counters
// of stats. Mapping fans out across opts.Workers goroutines when asked
// to; output order always matches input order.
func ConvertRows(rows []models.Row, stats *Stats, opts Options) []*models.Record {
	stats.RowsRead = len(rows)

	candidates := mapRows(rows, opts.workerCount())

	records := make([]*models.Record, 0, len(candidates))
	for _, rec := range candidates {
		if mapper.IsSparse(rec) {
			stats.SparseSkipped++
			continue
		}
		records = append(records, rec)
	}
	stats.RecordsOut = len(records)

	return records
}
