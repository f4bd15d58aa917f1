package importer

import (
	"fmt"
	"log"

	"github.com/IsmailJamji/it-management-suite-sub001/internal/mapper"
)

// sampleSize is how many cleaned rows result payloads carry.
const sampleSize = 5

// AssetWriter is the persistence collaborator. One call per accepted
// row; the coordinator never retries.
type AssetWriter interface {
	CreateAsset(kind mapper.AssetKind, row mapper.CleanedRow) error
}

// PreviewResult is the outcome of a dry-run import: full mapping list,
// cleaned sample, no persistence.
type PreviewResult struct {
	Success        bool                   `json:"success"`
	Message        string                 `json:"message"`
	ColumnMappings []mapper.ColumnMapping `json:"columnMappings"`
	SampleData     []mapper.CleanedRow    `json:"sampleData"`
	TotalRows      int                    `json:"totalRows"`
}

// ImportResult is the outcome of a committed import.
type ImportResult struct {
	Success       bool                `json:"success"`
	Message       string              `json:"message"`
	CreatedAssets int                 `json:"createdAssets"`
	Errors        []string            `json:"errors"`
	MappedColumns map[string]string   `json:"mappedColumns"`
	SampleData    []mapper.CleanedRow `json:"sampleData"`
}

// Coordinator glues header mapping, row cleaning and persistence into
// the preview and commit operations. It holds no per-import state;
// each call analyzes its input from scratch.
type Coordinator struct {
	writer     AssetWriter
	thresholds mapper.Thresholds
}

// NewCoordinator creates a coordinator writing through the given
// collaborator.
func NewCoordinator(writer AssetWriter, thresholds mapper.Thresholds) *Coordinator {
	return &Coordinator{writer: writer, thresholds: thresholds}
}

// Preview maps and cleans without persisting.
func (c *Coordinator) Preview(headers []string, rows []mapper.RawRow, kind mapper.AssetKind) (result PreviewResult) {
	defer func() {
		if r := recover(); r != nil {
			log.Printf("preview panicked: %v", r)
			result = PreviewResult{Message: fmt.Sprintf("import analysis failed: %v", r)}
		}
	}()

	if len(rows) == 0 {
		return PreviewResult{Message: "no data rows found"}
	}

	mappings, cleaned := c.run(headers, rows, kind)

	return PreviewResult{
		Success:        true,
		Message:        fmt.Sprintf("%d of %d rows ready to import", len(cleaned), len(rows)),
		ColumnMappings: mappings,
		SampleData:     sampleOf(cleaned),
		TotalRows:      len(cleaned),
	}
}

// Commit maps, cleans and persists. Rows are written one at a time so
// a failure is attributable to its row; individual write failures are
// logged and counted but do not abort the batch.
func (c *Coordinator) Commit(headers []string, rows []mapper.RawRow, kind mapper.AssetKind) (result ImportResult) {
	defer func() {
		if r := recover(); r != nil {
			log.Printf("import panicked: %v", r)
			result = ImportResult{Message: fmt.Sprintf("import failed: %v", r)}
		}
	}()

	if len(rows) == 0 {
		return ImportResult{Message: "no data rows found"}
	}

	mappings, cleaned := c.run(headers, rows, kind)

	created := 0
	var errs []string
	for i, row := range cleaned {
		if err := c.writer.CreateAsset(kind, row); err != nil {
			log.Printf("failed to store row %d: %v", i+1, err)
			errs = append(errs, fmt.Sprintf("row %d: %v", i+1, err))
			continue
		}
		created++
	}

	return ImportResult{
		Success:       true,
		Message:       fmt.Sprintf("imported %d of %d rows", created, len(cleaned)),
		CreatedAssets: created,
		Errors:        errs,
		MappedColumns: mappingReport(mappings),
		SampleData:    sampleOf(cleaned),
	}
}

// run executes the shared mapping + cleaning pipeline.
func (c *Coordinator) run(headers []string, rows []mapper.RawRow, kind mapper.AssetKind) ([]mapper.ColumnMapping, []mapper.CleanedRow) {
	hm := mapper.NewHeaderMapper(kind, c.thresholds)
	mappings := hm.MapHeaders(headers, rows[0])

	cleaner := mapper.NewCleaner(kind, c.thresholds)
	cleaner.Profile = mapper.BuildProfile(rows, headers)
	cleaned := cleaner.CleanRows(rows, headers, mappings)

	return mappings, cleaned
}

// mappingReport renders the human-readable per-column summary.
func mappingReport(mappings []mapper.ColumnMapping) map[string]string {
	report := make(map[string]string, len(mappings))
	for _, m := range mappings {
		report[m.OriginalName] = fmt.Sprintf("%s (%d%%)", m.MappedField, int(m.Confidence*100))
	}
	return report
}

func sampleOf(rows []mapper.CleanedRow) []mapper.CleanedRow {
	if len(rows) > sampleSize {
		return rows[:sampleSize]
	}
	return rows
}
