package store

import (
	"path/filepath"
	"testing"

	"github.com/IsmailJamji/it-management-suite-sub001/internal/mapper"
)

func testStore(t *testing.T) *Store {
	t.Helper()

	s, err := New(filepath.Join(t.TempDir(), "assets.db"))
	if err != nil {
		t.Fatalf("open store: %v", err)
	}
	t.Cleanup(func() { s.Close() })
	return s
}

func TestCreateAndListITAssets(t *testing.T) {
	t.Parallel()

	s := testStore(t)

	row := mapper.CleanedRow{
		"device_type":   "Laptop",
		"brand":         "Dell",
		"model":         "Latitude 5520",
		"serial_number": "SN-123456789",
		"owner_name":    "Jean Dupont",
		"department":    "IT",
		"zone":          "Office",
		"status":        "active",
		"ram_gb":        16.0,
		"date":          "2024-03-15",
	}
	if err := s.CreateAsset(mapper.KindIT, row); err != nil {
		t.Fatalf("create asset: %v", err)
	}

	assets, err := s.ListITAssets(10)
	if err != nil {
		t.Fatalf("list assets: %v", err)
	}
	if len(assets) != 1 {
		t.Fatalf("want 1 asset got %d", len(assets))
	}

	a := assets[0]
	if a.SerialNumber != "SN-123456789" || a.Brand != "Dell" || a.DeviceType != "Laptop" {
		t.Fatalf("unexpected asset: %+v", a)
	}
	if a.RAMGB == nil || *a.RAMGB != 16.0 {
		t.Fatalf("ram want=16 got=%v", a.RAMGB)
	}
	if a.DiskGB != nil {
		t.Fatalf("absent disk must store as NULL, got %v", *a.DiskGB)
	}

	n, err := s.CountAssets(mapper.KindIT)
	if err != nil || n != 1 {
		t.Fatalf("count want=1 got=%d err=%v", n, err)
	}
}

func TestCreateAndListTelecomAssets(t *testing.T) {
	t.Parallel()

	s := testStore(t)

	row := mapper.CleanedRow{
		"provider":          "Orange",
		"sim_number":        "0612345678",
		"sim_owner":         "Jean Dupont",
		"subscription_type": "Monthly",
		"data_plan":         "20 Go",
		"department":        "IT",
		"zone":              "Office",
		"status":            "active",
		"date":              "2024-03-15",
	}
	if err := s.CreateAsset(mapper.KindTelecom, row); err != nil {
		t.Fatalf("create asset: %v", err)
	}

	assets, err := s.ListTelecomAssets(10)
	if err != nil {
		t.Fatalf("list assets: %v", err)
	}
	if len(assets) != 1 || assets[0].SimNumber != "0612345678" || assets[0].Provider != "Orange" {
		t.Fatalf("unexpected assets: %+v", assets)
	}

	n, err := s.CountAssets(mapper.KindTelecom)
	if err != nil || n != 1 {
		t.Fatalf("count want=1 got=%d err=%v", n, err)
	}
}

func TestImportLogLifecycle(t *testing.T) {
	t.Parallel()

	s := testStore(t)

	id, err := s.CreateImportLog("run-42", "inventory.xlsx", mapper.KindIT)
	if err != nil {
		t.Fatalf("create import log: %v", err)
	}

	if err := s.FinalizeImportLog(id, 10, 8, 2, "done", "imported 8 of 10 rows"); err != nil {
		t.Fatalf("finalize import log: %v", err)
	}

	logs, err := s.ListImportLogs(10)
	if err != nil {
		t.Fatalf("list import logs: %v", err)
	}
	if len(logs) != 1 {
		t.Fatalf("want 1 log got %d", len(logs))
	}

	l := logs[0]
	if l.RunID != "run-42" || l.Filename != "inventory.xlsx" || l.AssetKind != "it" {
		t.Fatalf("unexpected log: %+v", l)
	}
	if l.TotalRows != 10 || l.CreatedAssets != 8 || l.ErrorRows != 2 || l.Status != "done" {
		t.Fatalf("unexpected outcome fields: %+v", l)
	}
}
