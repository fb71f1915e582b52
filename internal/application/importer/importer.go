package importer

import (
	"context"
	"fmt"
	"io"

	"github.com/rs/zerolog/log"
)

const defaultBatchSize = 500

// Importer reads an export and writes it to a Sink in batches.
type Importer struct {
	Sink      Sink
	BatchSize int
}

// Result summarizes one import run.
type Result struct {
	Rows     int
	Inserted int
	Issues   []RowIssue
	Unmapped []string
}

// Run parses r and inserts every project. Inserted counts rows accepted before
// any failing batch.
func (im *Importer) Run(ctx context.Context, r io.Reader) (Result, error) {
	parsed, err := ReadProjects(r)
	if err != nil {
		return Result{}, fmt.Errorf("read csv: %w", err)
	}
	res := Result{Rows: len(parsed.Projects), Issues: parsed.Issues, Unmapped: parsed.Unmapped}
	for _, issue := range parsed.Issues {
		log.Warn().Int("line", issue.Line).Str("column", issue.Column).Str("value", issue.Value).Msg("unparseable cell stored as NULL")
	}
	if len(parsed.Unmapped) > 0 {
		log.Info().Strs("labels", parsed.Unmapped).Msg("unmapped columns kept in extra")
	}
	log.Info().Int("rows", res.Rows).Msg("Found projects to insert")

	size := im.BatchSize
	if size <= 0 {
		size = defaultBatchSize
	}
	for start := 0; start < len(parsed.Projects); start += size {
		end := start + size
		if end > len(parsed.Projects) {
			end = len(parsed.Projects)
		}
		n, err := im.Sink.InsertProjects(ctx, parsed.Projects[start:end])
		res.Inserted += n
		if err != nil {
			return res, fmt.Errorf("insert rows %d-%d: %w", start+1, end, err)
		}
		log.Debug().Int("inserted", res.Inserted).Int("rows", res.Rows).Msg("batch inserted")
	}
	return res, nil
}
