package clientfeed

import (
	"sync"

	"clientfeed/pkg/clientfeed/mapper"
	"clientfeed/pkg/clientfeed/models"
)

// mapRows maps every row to its candidate record. Rows are independent,
// so mapping fans out across a fixed pool of goroutines; each worker
// writes to a distinct slot of the output slice, which re-establishes
// input order without any sorting step.
func mapRows(rows []models.Row, workers int) []*models.Record {
	out := make([]*models.Record, len(rows))

	if workers <= 1 || len(rows) < 2 {
		for i, row := range rows {
			out[i] = mapper.Map(row)
		}
		return out
	}

	if workers > len(rows) {
		workers = len(rows)
	}

	jobs := make(chan int)
	var wg sync.WaitGroup
	for w := 0; w < workers; w++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for i := range jobs {
				out[i] = mapper.Map(rows[i])
			}
		}()
	}

	for i := range rows {
		jobs <- i
	}
	close(jobs)
	wg.Wait()

	return out
}
