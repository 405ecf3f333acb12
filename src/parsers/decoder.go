package parsers

import (
	"bytes"
	"encoding/csv"
	"fmt"
	"strings"

	"github.com/username/finpulse/src/logger"
	"github.com/xuri/excelize/v2"
)

// RawTable is the generic rectangular table produced by the decoder. It is
// ephemeral and only exists between decoding and row coercion.
type RawTable struct {
	Headers []string
	Rows    [][]string
}

const (
	formatCSV         = "csv"
	formatSpreadsheet = "spreadsheet"
)

// tableDecoder pairs a format tag with its decode function. Decode tries the
// decoders in priority order; adding a format is a data change here, not a
// new control-flow branch.
type tableDecoder struct {
	format string
	decode func([]byte) (*RawTable, error)
}

// decodeOrder puts the format hinted by the filename first. Filenames lie
// (wrong extension) often enough that the other format is always tried as a
// fallback.
func decodeOrder(filename string) []tableDecoder {
	csvDecoder := tableDecoder{formatCSV, decodeCSV}
	excelDecoder := tableDecoder{formatSpreadsheet, decodeExcel}

	lower := strings.ToLower(filename)
	if strings.HasSuffix(lower, ".xlsx") || strings.HasSuffix(lower, ".xls") {
		return []tableDecoder{excelDecoder, csvDecoder}
	}
	return []tableDecoder{csvDecoder, excelDecoder}
}

// Decode turns raw file bytes into a RawTable, trying each candidate format
// in priority order. The first decoder to succeed wins; if all fail the file
// is unparsable.
func Decode(data []byte, filename string) (*RawTable, error) {
	for _, dec := range decodeOrder(filename) {
		table, err := dec.decode(data)
		if err != nil {
			if logger.L != nil {
				logger.L.Debug("Decode attempt failed", "format", dec.format, "filename", filename, "error", err)
			}
			continue
		}
		return table, nil
	}
	return nil, ErrUnparsableFile
}

func decodeCSV(data []byte) (*RawTable, error) {
	// A NUL byte never appears in valid CSV text. Rejecting here lets
	// binary spreadsheet content fall through to the spreadsheet decoder.
	if bytes.IndexByte(data, 0) >= 0 {
		return nil, fmt.Errorf("content contains binary data")
	}
	data = bytes.TrimPrefix(data, []byte("\xef\xbb\xbf")) // UTF-8 BOM

	reader := csv.NewReader(bytes.NewReader(data))
	reader.FieldsPerRecord = -1

	records, err := reader.ReadAll()
	if err != nil {
		return nil, fmt.Errorf("failed to read CSV records: %w", err)
	}
	if len(records) == 0 {
		return nil, fmt.Errorf("CSV content is empty")
	}
	return &RawTable{Headers: records[0], Rows: records[1:]}, nil
}

func decodeExcel(data []byte) (*RawTable, error) {
	f, err := excelize.OpenReader(bytes.NewReader(data))
	if err != nil {
		return nil, fmt.Errorf("failed to open spreadsheet: %w", err)
	}
	defer f.Close()

	sheets := f.GetSheetList()
	if len(sheets) == 0 {
		return nil, fmt.Errorf("spreadsheet has no sheets")
	}

	rows, err := f.GetRows(sheets[0])
	if err != nil {
		return nil, fmt.Errorf("failed to read sheet %q: %w", sheets[0], err)
	}
	if len(rows) == 0 {
		return nil, fmt.Errorf("sheet %q is empty", sheets[0])
	}
	return &RawTable{Headers: rows[0], Rows: rows[1:]}, nil
}
