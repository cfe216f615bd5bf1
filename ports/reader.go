package ports

import (
	"io"

	"disasterscope/domain/table"
)

// DatasetReader parses one uploaded file into a table. Failure is fatal to
// the run: no downstream stage sees a partially parsed table.
type DatasetReader interface {
	Load(filename string, src io.Reader) (table.Table, error)
}
