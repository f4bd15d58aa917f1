package api

import (
	"fmt"
	"net/http"
	"os"
	"path/filepath"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"github.com/IsmailJamji/it-management-suite-sub001/internal/importer"
	"github.com/IsmailJamji/it-management-suite-sub001/internal/mapper"
)

// PreviewImport analyzes an uploaded workbook without persisting.
// POST /api/import/preview (multipart: file, kind)
func (h *Handler) PreviewImport(c *gin.Context) {
	headers, rows, kind, _, ok := h.readUpload(c)
	if !ok {
		return
	}

	coordinator := importer.NewCoordinator(h.store, h.thresholds)
	result := coordinator.Preview(headers, rows, kind)
	c.JSON(http.StatusOK, result)
}

// CommitImport analyzes an uploaded workbook and stores the accepted
// rows, recording the run in the import log.
// POST /api/import (multipart: file, kind)
func (h *Handler) CommitImport(c *gin.Context) {
	headers, rows, kind, filename, ok := h.readUpload(c)
	if !ok {
		return
	}

	runID := uuid.NewString()
	logID, err := h.store.CreateImportLog(runID, filename, kind)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	coordinator := importer.NewCoordinator(h.store, h.thresholds)
	result := coordinator.Commit(headers, rows, kind)

	status := "done"
	if !result.Success {
		status = "failed"
	}
	if err := h.store.FinalizeImportLog(logID, len(rows), result.CreatedAssets,
		len(result.Errors), status, result.Message); err != nil {
		result.Errors = append(result.Errors, fmt.Sprintf("import log: %v", err))
	}

	c.JSON(http.StatusOK, result)
}

// ListImports returns recent import runs.
// GET /api/imports
func (h *Handler) ListImports(c *gin.Context) {
	logs, err := h.store.ListImportLogs(50)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, gin.H{"imports": logs})
}

// readUpload saves the uploaded workbook to a temp file and reads its
// first sheet. The temp file is removed before returning.
func (h *Handler) readUpload(c *gin.Context) (headers []string, rows []mapper.RawRow, kind mapper.AssetKind, filename string, ok bool) {
	file, err := c.FormFile("file")
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "no file uploaded"})
		return nil, nil, "", "", false
	}

	kind = mapper.AssetKind(c.DefaultPostForm("kind", string(mapper.KindIT)))
	if !kind.Valid() {
		c.JSON(http.StatusBadRequest, gin.H{"error": fmt.Sprintf("unknown asset kind %q", kind)})
		return nil, nil, "", "", false
	}

	tempPath := filepath.Join(os.TempDir(), fmt.Sprintf("itms_import_%s_%s", uuid.NewString(), file.Filename))
	if err := c.SaveUploadedFile(file, tempPath); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to save uploaded file"})
		return nil, nil, "", "", false
	}
	defer os.Remove(tempPath)

	headers, rows, err = importer.ReadWorkbook(tempPath, c.PostForm("sheet"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return nil, nil, "", "", false
	}

	return headers, rows, kind, file.Filename, true
}
