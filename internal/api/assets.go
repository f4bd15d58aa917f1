package api

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/IsmailJamji/it-management-suite-sub001/internal/mapper"
)

const listLimit = 500

// ListAssets returns stored assets of one kind.
// GET /api/assets?kind=it|telecom
func (h *Handler) ListAssets(c *gin.Context) {
	kind := mapper.AssetKind(c.DefaultQuery("kind", string(mapper.KindIT)))
	if !kind.Valid() {
		c.JSON(http.StatusBadRequest, gin.H{"error": "unknown asset kind"})
		return
	}

	if kind == mapper.KindTelecom {
		assets, err := h.store.ListTelecomAssets(listLimit)
		if err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
			return
		}
		c.JSON(http.StatusOK, gin.H{"assets": assets})
		return
	}

	assets, err := h.store.ListITAssets(listLimit)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, gin.H{"assets": assets})
}

// GetStatus reports version and per-kind asset counts.
// GET /api/status
func (h *Handler) GetStatus(c *gin.Context) {
	itCount, err := h.store.CountAssets(mapper.KindIT)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	telecomCount, err := h.store.CountAssets(mapper.KindTelecom)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"version":       Version,
		"itAssets":      itCount,
		"telecomAssets": telecomCount,
	})
}
