package profile

import (
	"fmt"
	"io"

	"github.com/gocarina/gocsv"
)

// WriteCSV writes reports as CSV with a header row.
func WriteCSV(w io.Writer, reports []Report) error {
	if err := gocsv.Marshal(reports, w); err != nil {
		return fmt.Errorf("writing reports: %w", err)
	}
	return nil
}
