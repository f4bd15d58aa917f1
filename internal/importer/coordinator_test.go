package importer

import (
	"fmt"
	"strings"
	"testing"

	"github.com/IsmailJamji/it-management-suite-sub001/internal/mapper"
)

// fakeWriter records created assets and can fail on one call.
type fakeWriter struct {
	created []mapper.CleanedRow
	failOn  int // 1-based call index, 0 = never fail
	calls   int
}

func (w *fakeWriter) CreateAsset(kind mapper.AssetKind, row mapper.CleanedRow) error {
	w.calls++
	if w.failOn != 0 && w.calls == w.failOn {
		return fmt.Errorf("disk full")
	}
	w.created = append(w.created, row)
	return nil
}

func inventoryRows(n int) ([]string, []mapper.RawRow) {
	headers := []string{"Type", "Marque", "N° Série", "Nb"}
	rows := make([]mapper.RawRow, 0, n)
	for i := 0; i < n; i++ {
		rows = append(rows, mapper.RawRow{
			"Type":     "Laptop",
			"Marque":   "Dell",
			"N° Série": fmt.Sprintf("SN-10000000%d", i),
			"Nb":       "1",
		})
	}
	return headers, rows
}

func TestCommit_EndToEnd(t *testing.T) {
	t.Parallel()

	w := &fakeWriter{}
	c := NewCoordinator(w, mapper.DefaultThresholds())

	headers, rows := inventoryRows(1)
	result := c.Commit(headers, rows, mapper.KindIT)

	if !result.Success {
		t.Fatalf("commit failed: %s", result.Message)
	}
	if result.CreatedAssets != 1 || len(w.created) != 1 {
		t.Fatalf("created want=1 got=%d (writer saw %d)", result.CreatedAssets, len(w.created))
	}

	row := w.created[0]
	if row["device_type"] != "Laptop" || row["brand"] != "Dell" || row["serial_number"] != "SN-100000000" {
		t.Fatalf("unexpected stored row: %+v", row)
	}

	if got := result.MappedColumns["Type"]; got != "device_type (100%)" {
		t.Fatalf("Type report want=%q got=%q", "device_type (100%)", got)
	}
	if got := result.MappedColumns["Marque"]; got != "brand (90%)" {
		t.Fatalf("Marque report want=%q got=%q", "brand (90%)", got)
	}
}

func TestCommit_ExcludedColumnAbsentFromReport(t *testing.T) {
	t.Parallel()

	w := &fakeWriter{}
	c := NewCoordinator(w, mapper.DefaultThresholds())

	headers, rows := inventoryRows(1)
	result := c.Commit(headers, rows, mapper.KindIT)

	if _, ok := result.MappedColumns["Nb"]; ok {
		t.Fatalf("row-count column leaked into the report: %+v", result.MappedColumns)
	}
}

func TestCommit_ZeroRows(t *testing.T) {
	t.Parallel()

	w := &fakeWriter{}
	c := NewCoordinator(w, mapper.DefaultThresholds())

	result := c.Commit([]string{"Type"}, nil, mapper.KindIT)
	if result.Success || result.CreatedAssets != 0 {
		t.Fatalf("empty import want failure with zero assets, got %+v", result)
	}
	if result.Message == "" {
		t.Fatal("empty import must explain itself")
	}
}

func TestCommit_WriteFailureDoesNotAbortBatch(t *testing.T) {
	t.Parallel()

	w := &fakeWriter{failOn: 2}
	c := NewCoordinator(w, mapper.DefaultThresholds())

	headers, rows := inventoryRows(3)
	result := c.Commit(headers, rows, mapper.KindIT)

	if !result.Success {
		t.Fatalf("commit failed: %s", result.Message)
	}
	if result.CreatedAssets != 2 {
		t.Fatalf("created want=2 got=%d", result.CreatedAssets)
	}
	if len(result.Errors) != 1 || !strings.HasPrefix(result.Errors[0], "row 2:") {
		t.Fatalf("errors want one entry for row 2, got %v", result.Errors)
	}
}

func TestPreview_DoesNotPersist(t *testing.T) {
	t.Parallel()

	w := &fakeWriter{}
	c := NewCoordinator(w, mapper.DefaultThresholds())

	headers, rows := inventoryRows(7)
	result := c.Preview(headers, rows, mapper.KindIT)

	if !result.Success {
		t.Fatalf("preview failed: %s", result.Message)
	}
	if w.calls != 0 {
		t.Fatalf("preview must not write, writer saw %d calls", w.calls)
	}
	if result.TotalRows != 7 {
		t.Fatalf("total rows want=7 got=%d", result.TotalRows)
	}
	if len(result.SampleData) != 5 {
		t.Fatalf("sample want=5 rows got=%d", len(result.SampleData))
	}
	if len(result.ColumnMappings) == 0 {
		t.Fatal("preview must report column mappings")
	}
}
