package adapters

import (
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"reflect"
	"strconv"
	"strings"

	"dockyard/internal/core/logger"
	"dockyard/internal/core/metrics"
	"dockyard/internal/features/reconciliation/domain"

	"github.com/go-viper/mapstructure/v2"
	"go.uber.org/zap"
)

// ErrNoHeader is returned for an input without a header row.
var ErrNoHeader = errors.New("csv input has no header row")

var headerReplacer = strings.NewReplacer(" ", "_", "-", "_")

func normalizeHeader(h string) string {
	h = strings.TrimPrefix(h, "\ufeff")
	return headerReplacer.Replace(strings.ToLower(strings.TrimSpace(h)))
}

// readRows maps every record onto the header row. Blank cells are left out
// so optional fields decode as nil. Records the tokenizer rejects are logged
// and skipped.
func readRows(r io.Reader, source string) ([]map[string]any, error) {
	cr := csv.NewReader(r)
	cr.FieldsPerRecord = -1
	cr.TrimLeadingSpace = true
	cr.LazyQuotes = true

	header, err := cr.Read()
	if errors.Is(err, io.EOF) {
		return nil, ErrNoHeader
	}
	if err != nil {
		return nil, fmt.Errorf("failed to read header: %w", err)
	}
	for i := range header {
		header[i] = normalizeHeader(header[i])
	}

	var rows []map[string]any
	for {
		record, err := cr.Read()
		if errors.Is(err, io.EOF) {
			return rows, nil
		}
		var perr *csv.ParseError
		if errors.As(err, &perr) {
			logger.Named("csv").Warn("Skipping unreadable record",
				zap.String("source", source),
				zap.Int("line", perr.StartLine),
				zap.Error(err),
			)
			metrics.ReconciliationDropped.WithLabelValues("malformed").Inc()
			continue
		}
		if err != nil {
			return rows, fmt.Errorf("failed to read record: %w", err)
		}

		row := make(map[string]any, len(header))
		for i, cell := range record {
			if i >= len(header) {
				break
			}
			if cell = strings.TrimSpace(cell); cell != "" {
				row[header[i]] = cell
			}
		}
		rows = append(rows, row)
	}
}

// decimalHook parses numeric cells as base 10. Weak decoding alone would
// read "010" as octal.
func decimalHook(from, to reflect.Type, data any) (any, error) {
	s, ok := data.(string)
	if !ok || from.Kind() != reflect.String {
		return data, nil
	}
	switch to.Kind() {
	case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64:
		n, err := strconv.ParseInt(s, 10, to.Bits())
		if err != nil {
			return nil, fmt.Errorf("cannot parse %q as integer: %w", s, err)
		}
		return n, nil
	case reflect.Float32, reflect.Float64:
		f, err := strconv.ParseFloat(s, to.Bits())
		if err != nil {
			return nil, fmt.Errorf("cannot parse %q as number: %w", s, err)
		}
		return f, nil
	}
	return data, nil
}

func decodeRow[T any](row map[string]any) (T, error) {
	var out T
	dec, err := mapstructure.NewDecoder(&mapstructure.DecoderConfig{
		TagName:          "csv",
		WeaklyTypedInput: true,
		DecodeHook:       mapstructure.DecodeHookFuncType(decimalHook),
		Result:           &out,
	})
	if err != nil {
		return out, err
	}
	err = dec.Decode(row)
	return out, err
}

// read decodes every row of r into T. Rows that fail to decode are logged and
// skipped; only an unreadable document is an error.
func read[T any](r io.Reader, source string) ([]T, error) {
	rows, err := readRows(r, source)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", source, err)
	}

	log := logger.Named("csv")
	out := make([]T, 0, len(rows))
	for i, row := range rows {
		v, err := decodeRow[T](row)
		if err != nil {
			log.Warn("Skipping malformed row",
				zap.String("source", source),
				zap.Int("row", i+2),
				zap.Error(err),
			)
			metrics.ReconciliationDropped.WithLabelValues("malformed").Inc()
			continue
		}
		out = append(out, v)
	}
	return out, nil
}

// ReadGmap reads a GMAP allocation export.
func ReadGmap(r io.Reader) ([]domain.GmapItem, error) {
	return read[domain.GmapItem](r, "gmap")
}

// ReadScale reads a scale-system on-hand export.
func ReadScale(r io.Reader) ([]domain.ScaleItem, error) {
	return read[domain.ScaleItem](r, "scale")
}

// ReadItemDetails reads a pack/pallet details export.
func ReadItemDetails(r io.Reader) ([]domain.ItemDetails, error) {
	return read[domain.ItemDetails](r, "item details")
}

// ReadItemMaster reads the warehouse item master.
func ReadItemMaster(r io.Reader) ([]domain.ItemMaster, error) {
	return read[domain.ItemMaster](r, "item master")
}

// ReadItems reads the items spreadsheet.
func ReadItems(r io.Reader) ([]domain.Item, error) {
	return read[domain.Item](r, "items")
}

// CSVSource reads the reconciliation inputs as CSV documents.
type CSVSource struct{}

func (CSVSource) ReadGmap(r io.Reader) ([]domain.GmapItem, error)   { return ReadGmap(r) }
func (CSVSource) ReadScale(r io.Reader) ([]domain.ScaleItem, error) { return ReadScale(r) }
func (CSVSource) ReadItemDetails(r io.Reader) ([]domain.ItemDetails, error) {
	return ReadItemDetails(r)
}
func (CSVSource) ReadItemMaster(r io.Reader) ([]domain.ItemMaster, error) {
	return ReadItemMaster(r)
}
func (CSVSource) ReadItems(r io.Reader) ([]domain.Item, error) { return ReadItems(r) }
