package intake

import (
	"bytes"
	"encoding/csv"
	"encoding/json"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/rotisserie/eris"
	"github.com/tealeg/xlsx/v2"
	"go.uber.org/zap"
	"golang.org/x/text/encoding/htmlindex"
	"gopkg.in/yaml.v3"

	"github.com/sells-group/leadrank/internal/model"
)

// LoadOptions configures how lead files are read.
type LoadOptions struct {
	// CSVEncoding names the charset of CSV input (e.g. "windows-1252").
	// Empty means UTF-8.
	CSVEncoding string
	// SheetName selects an XLSX sheet. Empty means the first sheet.
	SheetName string
}

// Load reads raw lead records from a .json, .yaml/.yml, .csv or .xlsx file.
func Load(path string, opts LoadOptions) ([]model.RawLead, error) {
	ext := strings.ToLower(filepath.Ext(path))

	if ext == ".xlsx" {
		return loadXLSX(path, opts.SheetName)
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return nil, eris.Wrapf(err, "intake: read %s", path)
	}

	switch ext {
	case ".json":
		return DecodeJSON(bytes.NewReader(data))
	case ".yaml", ".yml":
		return decodeYAML(data)
	case ".csv":
		return decodeCSV(bytes.NewReader(data), opts.CSVEncoding)
	default:
		return nil, eris.Errorf("intake: unsupported file type %q", ext)
	}
}

// LoadAll is Load with failures reported to the log instead of the
// caller. It returns an empty slice when the file cannot be read or
// parsed.
func LoadAll(path string, opts LoadOptions) []model.RawLead {
	leads, err := Load(path, opts)
	if err != nil {
		zap.L().Error("intake: failed to load leads",
			zap.String("path", path),
			zap.Error(err),
		)
		return []model.RawLead{}
	}
	return leads
}

// DecodeJSON parses a JSON array of lead objects.
func DecodeJSON(r io.Reader) ([]model.RawLead, error) {
	var leads []model.RawLead
	if err := json.NewDecoder(r).Decode(&leads); err != nil {
		return nil, eris.Wrap(err, "intake: decode json")
	}
	if leads == nil {
		leads = []model.RawLead{}
	}
	return leads, nil
}

func decodeYAML(data []byte) ([]model.RawLead, error) {
	var docs []map[string]any
	if err := yaml.Unmarshal(data, &docs); err != nil {
		return nil, eris.Wrap(err, "intake: decode yaml")
	}
	leads := make([]model.RawLead, len(docs))
	for i, d := range docs {
		leads[i] = model.RawLead(d)
	}
	return leads, nil
}

func decodeCSV(r io.Reader, charset string) ([]model.RawLead, error) {
	if charset != "" {
		enc, err := htmlindex.Get(charset)
		if err != nil {
			return nil, eris.Wrapf(err, "intake: unsupported charset %q", charset)
		}
		r = enc.NewDecoder().Reader(r)
	}

	reader := csv.NewReader(r)
	reader.FieldsPerRecord = -1 // allow ragged rows
	reader.TrimLeadingSpace = true

	rows, err := reader.ReadAll()
	if err != nil {
		return nil, eris.Wrap(err, "intake: read csv")
	}
	return rowsToLeads(rows), nil
}

func loadXLSX(path, sheetName string) ([]model.RawLead, error) {
	f, err := xlsx.OpenFile(path)
	if err != nil {
		return nil, eris.Wrapf(err, "intake: open xlsx %s", path)
	}

	var sheet *xlsx.Sheet
	if sheetName != "" {
		s, ok := f.Sheet[sheetName]
		if !ok {
			return nil, eris.Errorf("intake: sheet %q not found", sheetName)
		}
		sheet = s
	} else {
		if len(f.Sheets) == 0 {
			return nil, eris.New("intake: workbook has no sheets")
		}
		sheet = f.Sheets[0]
	}

	rows := make([][]string, 0, len(sheet.Rows))
	for _, row := range sheet.Rows {
		cells := make([]string, len(row.Cells))
		for j, cell := range row.Cells {
			cells[j] = cell.String()
		}
		rows = append(rows, cells)
	}
	return rowsToLeads(rows), nil
}

// rowsToLeads treats the first row as raw field names. Empty cells are
// left out so the field takes its default.
func rowsToLeads(rows [][]string) []model.RawLead {
	leads := []model.RawLead{}
	if len(rows) == 0 {
		return leads
	}

	header := make([]string, len(rows[0]))
	for i, h := range rows[0] {
		header[i] = strings.ToLower(strings.TrimSpace(strings.TrimPrefix(h, "\ufeff")))
	}

	for _, row := range rows[1:] {
		raw := model.RawLead{}
		for i, cell := range row {
			if i >= len(header) || header[i] == "" {
				continue
			}
			if v := strings.TrimSpace(cell); v != "" {
				raw[header[i]] = v
			}
		}
		if len(raw) == 0 {
			continue
		}
		leads = append(leads, raw)
	}
	return leads
}
