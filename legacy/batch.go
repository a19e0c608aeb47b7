package legacy

import "fmt"

// ChunkSize is the number of converted rows handed to the flush callback
// at a time, bounding the statement size of the enclosing migration
// transaction.
const ChunkSize = 100

// Row is one stored parameter value row under migration.
type Row struct {
	ID    int64
	Value []byte
	Type  string
}

// ApplyBatch converts rows through the adapter registered for version and
// hands the converted rows to flush in chunks of at most ChunkSize.
//
// The first conversion or flush failure halts the batch immediately and is
// returned annotated with the offending row's identifier; rows after the
// failure are not converted and no further flush is attempted. Callers run
// ApplyBatch inside one upgrade transaction so a halted batch rolls back
// as a whole.
func ApplyBatch(version int, rows []Row, flush func(chunk []Row) error) error {
	chunk := make([]Row, 0, min(ChunkSize, len(rows)))

	for _, row := range rows {
		data, tag, err := Convert(version, row.Value, row.Type)
		if err != nil {
			return fmt.Errorf("row %d: %w", row.ID, err)
		}

		chunk = append(chunk, Row{ID: row.ID, Value: data, Type: tag})
		if len(chunk) == ChunkSize {
			if err := flush(chunk); err != nil {
				return err
			}
			chunk = chunk[:0]
		}
	}

	if len(chunk) > 0 {
		return flush(chunk)
	}

	return nil
}
