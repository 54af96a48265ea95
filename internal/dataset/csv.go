package dataset

import (
	"encoding/csv"
	"fmt"
	"io"
	"os"

	"windarrows/internal/arrow"
	"windarrows/internal/geo"
)

// CSVLoader loads arrow records from a CSV file with a header row
type CSVLoader struct {
	csvPath string
	columns Columns
}

// NewCSVLoader creates a new CSV loader
func NewCSVLoader(csvPath string, columns Columns) *CSVLoader {
	return &CSVLoader{
		csvPath: csvPath,
		columns: columns,
	}
}

// Load opens the file and reads every record
func (l *CSVLoader) Load() ([]arrow.Data, error) {
	file, err := os.Open(l.csvPath)
	if err != nil {
		return nil, fmt.Errorf("failed to open arrows CSV: %w", err)
	}
	defer file.Close()

	return ReadCSV(file, l.columns)
}

// ReadCSV reads arrow records. Rows with missing or malformed values are
// kept; the arrow validator decides how they are drawn.
func ReadCSV(r io.Reader, columns Columns) ([]arrow.Data, error) {
	reader := csv.NewReader(r)
	reader.FieldsPerRecord = -1
	reader.TrimLeadingSpace = true

	header, err := reader.Read()
	if err != nil {
		return nil, fmt.Errorf("failed to read CSV header: %w", err)
	}

	colIndices := make(map[string]int)
	for i, col := range header {
		colIndices[normalizeName(col)] = i
	}

	required := []string{columns.Lat, columns.Lon, columns.Bearing, columns.Distance}
	for _, col := range required {
		if _, ok := colIndices[normalizeName(col)]; !ok {
			return nil, fmt.Errorf("missing required column: %s", col)
		}
	}

	cell := func(record []string, name string) string {
		i, ok := colIndices[normalizeName(name)]
		if !ok || i >= len(record) {
			return ""
		}
		return record[i]
	}

	var records []arrow.Data
	for row := 1; ; row++ {
		record, err := reader.Read()
		if err == io.EOF {
			break
		}
		if err != nil {
			return nil, fmt.Errorf("row %d: %w", row, err)
		}

		id := cell(record, columns.ID)
		if id == "" {
			id = fmt.Sprintf("%d", row)
		}

		d := arrow.Data{
			ID:       id,
			Bearing:  parseNumber(cell(record, columns.Bearing)),
			Distance: parseNumber(cell(record, columns.Distance)),
			ColorKey: parseValue(cell(record, columns.Value)),
			Label:    cell(record, columns.Label),
		}

		lat := parseNumber(cell(record, columns.Lat))
		lon := parseNumber(cell(record, columns.Lon))
		if origin := (geo.LatLon{Lat: lat, Lon: lon}); origin.IsFinite() && lat >= -90 && lat <= 90 {
			d.Origin = &origin
		}

		records = append(records, d)
	}

	return records, nil
}
