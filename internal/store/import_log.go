package store

import (
	"fmt"

	"github.com/IsmailJamji/it-management-suite-sub001/internal/mapper"
)

// ImportLog records one committed import run.
type ImportLog struct {
	ID            int64  `json:"id"`
	RunID         string `json:"runId"`
	Filename      string `json:"filename"`
	AssetKind     string `json:"assetKind"`
	TotalRows     int    `json:"totalRows"`
	CreatedAssets int    `json:"createdAssets"`
	ErrorRows     int    `json:"errorRows"`
	Status        string `json:"status"`
	Message       string `json:"message"`
	CreatedAt     string `json:"createdAt"`
}

// CreateImportLog opens an import log row and returns its id.
func (s *Store) CreateImportLog(runID, filename string, kind mapper.AssetKind) (int64, error) {
	res, err := s.db.Exec(`
		INSERT INTO import_logs (run_id, filename, asset_kind, status)
		VALUES (?, ?, ?, 'processing')
	`, runID, filename, string(kind))
	if err != nil {
		return 0, fmt.Errorf("failed to create import log: %w", err)
	}
	id, err := res.LastInsertId()
	if err != nil {
		return 0, fmt.Errorf("failed to get import log id: %w", err)
	}
	return id, nil
}

// FinalizeImportLog records the outcome of a finished run.
func (s *Store) FinalizeImportLog(id int64, totalRows, createdAssets, errorRows int, status, message string) error {
	_, err := s.db.Exec(`
		UPDATE import_logs SET
			total_rows = ?,
			created_assets = ?,
			error_rows = ?,
			status = ?,
			message = ?,
			completed_at = CURRENT_TIMESTAMP
		WHERE id = ?
	`, totalRows, createdAssets, errorRows, status, message, id)
	if err != nil {
		return fmt.Errorf("failed to update import log: %w", err)
	}
	return nil
}

// ListImportLogs returns the most recent import runs.
func (s *Store) ListImportLogs(limit int) ([]ImportLog, error) {
	rows, err := s.db.Query(`
		SELECT id, run_id, filename, asset_kind, total_rows,
			created_assets, error_rows, status, COALESCE(message, ''),
			created_at
		FROM import_logs ORDER BY id DESC LIMIT ?
	`, limit)
	if err != nil {
		return nil, fmt.Errorf("failed to list import logs: %w", err)
	}
	defer rows.Close()

	var logs []ImportLog
	for rows.Next() {
		var l ImportLog
		if err := rows.Scan(&l.ID, &l.RunID, &l.Filename, &l.AssetKind,
			&l.TotalRows, &l.CreatedAssets, &l.ErrorRows, &l.Status,
			&l.Message, &l.CreatedAt); err != nil {
			return nil, fmt.Errorf("failed to scan import log: %w", err)
		}
		logs = append(logs, l)
	}
	return logs, rows.Err()
}
