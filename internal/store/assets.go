package store

import (
	"fmt"

	"github.com/IsmailJamji/it-management-suite-sub001/internal/mapper"
)

// ITAsset is one stored IT equipment record.
type ITAsset struct {
	ID           int64    `json:"id"`
	DeviceType   string   `json:"deviceType"`
	Brand        string   `json:"brand"`
	Model        string   `json:"model"`
	SerialNumber string   `json:"serialNumber"`
	OwnerName    string   `json:"ownerName"`
	Department   string   `json:"department"`
	Zone         string   `json:"zone"`
	Status       string   `json:"status"`
	RAMGB        *float64 `json:"ramGb"`
	DiskGB       *float64 `json:"diskGb"`
	Date         string   `json:"date"`
}

// TelecomAsset is one stored SIM / subscription record.
type TelecomAsset struct {
	ID               int64  `json:"id"`
	Provider         string `json:"provider"`
	SimNumber        string `json:"simNumber"`
	SimOwner         string `json:"simOwner"`
	SubscriptionType string `json:"subscriptionType"`
	DataPlan         string `json:"dataPlan"`
	Department       string `json:"department"`
	Zone             string `json:"zone"`
	Status           string `json:"status"`
	Date             string `json:"date"`
}

// CreateAsset inserts one cleaned row into the table for its kind.
// Implements importer.AssetWriter.
func (s *Store) CreateAsset(kind mapper.AssetKind, row mapper.CleanedRow) error {
	if kind == mapper.KindTelecom {
		return s.createTelecomAsset(row)
	}
	return s.createITAsset(row)
}

func (s *Store) createITAsset(row mapper.CleanedRow) error {
	_, err := s.db.Exec(`
		INSERT INTO it_assets (device_type, brand, model, serial_number,
			owner_name, department, zone, status, ram_gb, disk_gb, date)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?)
	`,
		text(row, "device_type"), text(row, "brand"), text(row, "model"),
		text(row, "serial_number"), text(row, "owner_name"),
		text(row, "department"), text(row, "zone"), text(row, "status"),
		number(row, "ram_gb"), number(row, "disk_gb"), text(row, "date"))
	if err != nil {
		return fmt.Errorf("failed to insert IT asset: %w", err)
	}
	return nil
}

func (s *Store) createTelecomAsset(row mapper.CleanedRow) error {
	_, err := s.db.Exec(`
		INSERT INTO telecom_assets (provider, sim_number, sim_owner,
			subscription_type, data_plan, department, zone, status, date)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?)
	`,
		text(row, "provider"), text(row, "sim_number"), text(row, "sim_owner"),
		text(row, "subscription_type"), text(row, "data_plan"),
		text(row, "department"), text(row, "zone"), text(row, "status"),
		text(row, "date"))
	if err != nil {
		return fmt.Errorf("failed to insert telecom asset: %w", err)
	}
	return nil
}

// ListITAssets returns IT assets, newest first.
func (s *Store) ListITAssets(limit int) ([]ITAsset, error) {
	rows, err := s.db.Query(`
		SELECT id, device_type, brand, model, serial_number, owner_name,
			department, zone, status, ram_gb, disk_gb, date
		FROM it_assets ORDER BY id DESC LIMIT ?
	`, limit)
	if err != nil {
		return nil, fmt.Errorf("failed to list IT assets: %w", err)
	}
	defer rows.Close()

	var assets []ITAsset
	for rows.Next() {
		var a ITAsset
		if err := rows.Scan(&a.ID, &a.DeviceType, &a.Brand, &a.Model,
			&a.SerialNumber, &a.OwnerName, &a.Department, &a.Zone,
			&a.Status, &a.RAMGB, &a.DiskGB, &a.Date); err != nil {
			return nil, fmt.Errorf("failed to scan IT asset: %w", err)
		}
		assets = append(assets, a)
	}
	return assets, rows.Err()
}

// ListTelecomAssets returns telecom assets, newest first.
func (s *Store) ListTelecomAssets(limit int) ([]TelecomAsset, error) {
	rows, err := s.db.Query(`
		SELECT id, provider, sim_number, sim_owner, subscription_type,
			data_plan, department, zone, status, date
		FROM telecom_assets ORDER BY id DESC LIMIT ?
	`, limit)
	if err != nil {
		return nil, fmt.Errorf("failed to list telecom assets: %w", err)
	}
	defer rows.Close()

	var assets []TelecomAsset
	for rows.Next() {
		var a TelecomAsset
		if err := rows.Scan(&a.ID, &a.Provider, &a.SimNumber, &a.SimOwner,
			&a.SubscriptionType, &a.DataPlan, &a.Department, &a.Zone,
			&a.Status, &a.Date); err != nil {
			return nil, fmt.Errorf("failed to scan telecom asset: %w", err)
		}
		assets = append(assets, a)
	}
	return assets, rows.Err()
}

// CountAssets returns how many assets of a kind are stored.
func (s *Store) CountAssets(kind mapper.AssetKind) (int, error) {
	table := "it_assets"
	if kind == mapper.KindTelecom {
		table = "telecom_assets"
	}
	var n int
	if err := s.db.QueryRow("SELECT COUNT(*) FROM " + table).Scan(&n); err != nil {
		return 0, fmt.Errorf("failed to count %s: %w", table, err)
	}
	return n, nil
}

// text extracts a string field; absent or non-string values become "".
func text(row mapper.CleanedRow, key string) string {
	if v, ok := row[key].(string); ok {
		return v
	}
	return ""
}

// number extracts a numeric field; absent values become NULL.
func number(row mapper.CleanedRow, key string) *float64 {
	if v, ok := row[key].(float64); ok {
		return &v
	}
	return nil
}
