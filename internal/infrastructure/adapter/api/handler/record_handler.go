package handler

import (
	"fmt"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/amirhossein-jamali/dbcoord/internal/domain/entity"
	domainerr "github.com/amirhossein-jamali/dbcoord/internal/domain/error"
	coreport "github.com/amirhossein-jamali/dbcoord/internal/domain/port/core"
	"github.com/amirhossein-jamali/dbcoord/internal/domain/port/usecase"
	"github.com/amirhossein-jamali/dbcoord/internal/infrastructure/adapter/api/dto"
)

// RecordHandler handles record-related HTTP requests
type RecordHandler struct {
	records usecase.RecordUseCase
	logger  coreport.Logger
}

// NewRecordHandler creates a new record handler instance
func NewRecordHandler(records usecase.RecordUseCase, logger coreport.Logger) *RecordHandler {
	return &RecordHandler{
		records: records,
		logger:  logger,
	}
}

// Create handles the POST /records endpoint
func (h *RecordHandler) Create(c *gin.Context) {
	var req dto.CreateRecordRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		_ = c.Error(invalidRequest(err))
		return
	}

	record, err := h.records.Create(c.Request.Context(), usecase.CreateRecordInput{
		ID:    req.ID,
		Title: req.Title,
		Body:  req.Body,
	}, nil)
	if err != nil {
		_ = c.Error(err)
		return
	}

	c.JSON(http.StatusCreated, toRecordResponse(record))
}

// CreateBatch handles the POST /records/batch endpoint. Either every record
// is created or none is.
func (h *RecordHandler) CreateBatch(c *gin.Context) {
	var req dto.BatchCreateRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		_ = c.Error(invalidRequest(err))
		return
	}

	in := make([]usecase.CreateRecordInput, 0, len(req.Records))
	for _, r := range req.Records {
		in = append(in, usecase.CreateRecordInput{ID: r.ID, Title: r.Title, Body: r.Body})
	}

	records, err := h.records.CreateMany(c.Request.Context(), in)
	if err != nil {
		_ = c.Error(err)
		return
	}

	resp := dto.BatchCreateResponse{Records: make([]dto.RecordResponse, 0, len(records))}
	for _, r := range records {
		resp.Records = append(resp.Records, toRecordResponse(r))
	}
	c.JSON(http.StatusCreated, resp)
}

// Get handles the GET /records/:id endpoint
func (h *RecordHandler) Get(c *gin.Context) {
	record, err := h.records.Get(c.Request.Context(), c.Param("id"))
	if err != nil {
		_ = c.Error(err)
		return
	}

	c.JSON(http.StatusOK, toRecordResponse(record))
}

// Update handles the PUT /records/:id endpoint
func (h *RecordHandler) Update(c *gin.Context) {
	var req dto.UpdateRecordRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		_ = c.Error(invalidRequest(err))
		return
	}

	record, err := h.records.Update(c.Request.Context(), usecase.UpdateRecordInput{
		ID:    c.Param("id"),
		Title: req.Title,
		Body:  req.Body,
	}, nil)
	if err != nil {
		_ = c.Error(err)
		return
	}

	c.JSON(http.StatusOK, toRecordResponse(record))
}

// Delete handles the DELETE /records/:id endpoint
func (h *RecordHandler) Delete(c *gin.Context) {
	if err := h.records.Delete(c.Request.Context(), c.Param("id"), nil); err != nil {
		_ = c.Error(err)
		return
	}

	c.Status(http.StatusNoContent)
}

// Versions handles the GET /records/:id/versions endpoint
func (h *RecordHandler) Versions(c *gin.Context) {
	id := c.Param("id")

	versions, err := h.records.Versions(c.Request.Context(), id)
	if err != nil {
		_ = c.Error(err)
		return
	}
	if len(versions) == 0 {
		_ = c.Error(domainerr.NewRecordError(id, "list versions of", domainerr.ErrRecordNotFound))
		return
	}

	resp := dto.RecordVersionsResponse{
		RecordID: id,
		Versions: make([]dto.RecordVersionResponse, 0, len(versions)),
	}
	for _, v := range versions {
		resp.Versions = append(resp.Versions, dto.RecordVersionResponse{
			Version:       v.Version,
			Operation:     string(v.Operation),
			Snapshot:      v.Snapshot,
			TransactionID: v.TransactionID,
			RemoteAddr:    v.RemoteAddr,
			IssuedAt:      v.IssuedAt,
		})
	}
	c.JSON(http.StatusOK, resp)
}

func invalidRequest(err error) error {
	return fmt.Errorf("%w: %s", domainerr.ErrInvalidRecord, err.Error())
}

func toRecordResponse(r *entity.Record) dto.RecordResponse {
	return dto.RecordResponse{
		ID:        r.ID,
		Title:     r.Title,
		Body:      r.Body,
		Revision:  r.Revision,
		CreatedAt: r.CreatedAt,
		UpdatedAt: r.UpdatedAt,
	}
}
