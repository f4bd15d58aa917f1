package api

import (
	"github.com/gin-gonic/gin"

	"github.com/IsmailJamji/it-management-suite-sub001/internal/mapper"
	"github.com/IsmailJamji/it-management-suite-sub001/internal/store"
)

// Version is reported by the status endpoint.
const Version = "1.0.0"

// Handler wires the HTTP API to the store and the import pipeline.
type Handler struct {
	store      *store.Store
	thresholds mapper.Thresholds
}

// NewHandler creates the API handler.
func NewHandler(store *store.Store, thresholds mapper.Thresholds) *Handler {
	return &Handler{
		store:      store,
		thresholds: thresholds,
	}
}

// RegisterRoutes registers all API routes on the group.
func (h *Handler) RegisterRoutes(router *gin.RouterGroup) {
	router.GET("/status", h.GetStatus)

	router.POST("/import/preview", h.PreviewImport)
	router.POST("/import", h.CommitImport)
	router.GET("/imports", h.ListImports)

	router.GET("/assets", h.ListAssets)
}
