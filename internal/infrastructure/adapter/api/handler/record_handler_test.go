package handler

import (
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/amirhossein-jamali/dbcoord/internal/domain/entity"
	domainerr "github.com/amirhossein-jamali/dbcoord/internal/domain/error"
	"github.com/amirhossein-jamali/dbcoord/internal/domain/port/usecase"
	"github.com/amirhossein-jamali/dbcoord/internal/domain/uow"
	"github.com/amirhossein-jamali/dbcoord/internal/infrastructure/adapter/api/dto"
	"github.com/amirhossein-jamali/dbcoord/internal/infrastructure/adapter/api/middleware"
	"github.com/amirhossein-jamali/dbcoord/internal/infrastructure/adapter/logger"
	usecasemocks "github.com/amirhossein-jamali/dbcoord/mocks/port/usecase"
)

var noUnitOfWork = (*uow.UnitOfWork)(nil)

func newRecordRouter(t *testing.T) (*gin.Engine, *usecasemocks.MockRecordUseCase) {
	t.Helper()
	gin.SetMode(gin.TestMode)

	records := usecasemocks.NewMockRecordUseCase(t)
	h := NewRecordHandler(records, logger.NewNopLogger())

	router := gin.New()
	router.Use(middleware.ErrorHandler(logger.NewNopLogger()))
	router.POST("/records", h.Create)
	router.POST("/records/batch", h.CreateBatch)
	router.GET("/records/:id", h.Get)
	router.PUT("/records/:id", h.Update)
	router.DELETE("/records/:id", h.Delete)
	router.GET("/records/:id/versions", h.Versions)
	return router, records
}

func serve(router *gin.Engine, method, path, body string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(method, path, strings.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)
	return w
}

func sampleRecord(id string, revision int) *entity.Record {
	now := time.Date(2024, 7, 1, 9, 0, 0, 0, time.UTC)
	return &entity.Record{ID: id, Title: "title", Body: "body", Revision: revision, CreatedAt: now, UpdatedAt: now}
}

func decodeError(t *testing.T, w *httptest.ResponseRecorder) dto.ErrorResponse {
	t.Helper()
	var resp dto.ErrorResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	return resp
}

func TestRecordHandler_Create(t *testing.T) {
	t.Run("Created", func(t *testing.T) {
		router, records := newRecordRouter(t)
		records.EXPECT().
			Create(mock.Anything, usecase.CreateRecordInput{ID: "r1", Title: "title", Body: "body"}, noUnitOfWork).
			Return(sampleRecord("r1", 1), nil).Once()

		w := serve(router, http.MethodPost, "/records", `{"id":"r1","title":"title","body":"body"}`)

		require.Equal(t, http.StatusCreated, w.Code)
		var resp dto.RecordResponse
		require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
		assert.Equal(t, "r1", resp.ID)
		assert.Equal(t, 1, resp.Revision)
	})

	t.Run("Missing title", func(t *testing.T) {
		router, _ := newRecordRouter(t)

		w := serve(router, http.MethodPost, "/records", `{"body":"body"}`)

		assert.Equal(t, http.StatusBadRequest, w.Code)
		assert.Equal(t, domainerr.CodeInvalidRecord, decodeError(t, w).Code)
	})

	t.Run("Duplicate", func(t *testing.T) {
		router, records := newRecordRouter(t)
		records.EXPECT().Create(mock.Anything, mock.Anything, noUnitOfWork).
			Return(nil, domainerr.NewRecordError("r1", "create", domainerr.ErrDuplicateRecord)).Once()

		w := serve(router, http.MethodPost, "/records", `{"id":"r1","title":"title"}`)

		assert.Equal(t, http.StatusConflict, w.Code)
		assert.Equal(t, domainerr.CodeDuplicateRecord, decodeError(t, w).Code)
	})

	t.Run("Database down hides the cause", func(t *testing.T) {
		router, records := newRecordRouter(t)
		records.EXPECT().Create(mock.Anything, mock.Anything, noUnitOfWork).
			Return(nil, errors.Join(domainerr.ErrDatabaseConnection, errors.New("dial tcp 10.0.0.1:5432"))).Once()

		w := serve(router, http.MethodPost, "/records", `{"title":"title"}`)

		assert.Equal(t, http.StatusServiceUnavailable, w.Code)
		resp := decodeError(t, w)
		assert.Equal(t, domainerr.CodeDatabaseConnection, resp.Code)
		assert.NotContains(t, resp.Message, "10.0.0.1")
	})
}

func TestRecordHandler_CreateBatch(t *testing.T) {
	t.Run("Created", func(t *testing.T) {
		router, records := newRecordRouter(t)
		records.EXPECT().CreateMany(mock.Anything, []usecase.CreateRecordInput{
			{Title: "a"}, {Title: "b"},
		}).Return([]*entity.Record{sampleRecord("1", 1), sampleRecord("2", 1)}, nil).Once()

		w := serve(router, http.MethodPost, "/records/batch", `{"records":[{"title":"a"},{"title":"b"}]}`)

		require.Equal(t, http.StatusCreated, w.Code)
		var resp dto.BatchCreateResponse
		require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
		assert.Len(t, resp.Records, 2)
	})

	t.Run("Empty batch", func(t *testing.T) {
		router, _ := newRecordRouter(t)

		w := serve(router, http.MethodPost, "/records/batch", `{"records":[]}`)

		assert.Equal(t, http.StatusBadRequest, w.Code)
	})

	t.Run("Invalid item rejects the whole batch", func(t *testing.T) {
		router, _ := newRecordRouter(t)

		w := serve(router, http.MethodPost, "/records/batch", `{"records":[{"title":"a"},{"body":"no title"}]}`)

		assert.Equal(t, http.StatusBadRequest, w.Code)
	})
}

func TestRecordHandler_ReadUpdateDelete(t *testing.T) {
	t.Run("Get", func(t *testing.T) {
		router, records := newRecordRouter(t)
		records.EXPECT().Get(mock.Anything, "r1").Return(sampleRecord("r1", 3), nil).Once()

		w := serve(router, http.MethodGet, "/records/r1", "")

		require.Equal(t, http.StatusOK, w.Code)
		assert.Contains(t, w.Body.String(), `"revision":3`)
	})

	t.Run("Get missing", func(t *testing.T) {
		router, records := newRecordRouter(t)
		records.EXPECT().Get(mock.Anything, "nope").Return(nil, domainerr.ErrRecordNotFound).Once()

		w := serve(router, http.MethodGet, "/records/nope", "")

		assert.Equal(t, http.StatusNotFound, w.Code)
		assert.Equal(t, domainerr.CodeRecordNotFound, decodeError(t, w).Code)
	})

	t.Run("Update", func(t *testing.T) {
		router, records := newRecordRouter(t)
		records.EXPECT().
			Update(mock.Anything, usecase.UpdateRecordInput{ID: "r1", Title: "new", Body: ""}, noUnitOfWork).
			Return(sampleRecord("r1", 2), nil).Once()

		w := serve(router, http.MethodPut, "/records/r1", `{"title":"new"}`)

		assert.Equal(t, http.StatusOK, w.Code)
	})

	t.Run("Delete", func(t *testing.T) {
		router, records := newRecordRouter(t)
		records.EXPECT().Delete(mock.Anything, "r1", noUnitOfWork).Return(nil).Once()

		w := serve(router, http.MethodDelete, "/records/r1", "")

		assert.Equal(t, http.StatusNoContent, w.Code)
	})

	t.Run("Failed hook is a server error", func(t *testing.T) {
		router, records := newRecordRouter(t)
		records.EXPECT().Delete(mock.Anything, "r1", noUnitOfWork).
			Return(domainerr.NewHookError("commit", "index_delete", "u-1", errors.New("redis down"))).Once()

		w := serve(router, http.MethodDelete, "/records/r1", "")

		assert.Equal(t, http.StatusInternalServerError, w.Code)
		assert.Equal(t, "Internal Server Error", decodeError(t, w).Message)
	})
}

func TestRecordHandler_Versions(t *testing.T) {
	t.Run("History", func(t *testing.T) {
		router, records := newRecordRouter(t)
		records.EXPECT().Versions(mock.Anything, "r1").Return([]*entity.RecordVersion{
			{RecordID: "r1", Version: 1, Operation: entity.VersionInsert, Snapshot: map[string]any{"title": "a"}, TransactionID: 7},
			{RecordID: "r1", Version: 2, Operation: entity.VersionDelete, Snapshot: map[string]any{"title": "a"}, TransactionID: 8},
		}, nil).Once()

		w := serve(router, http.MethodGet, "/records/r1/versions", "")

		require.Equal(t, http.StatusOK, w.Code)
		var resp dto.RecordVersionsResponse
		require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
		require.Len(t, resp.Versions, 2)
		assert.Equal(t, "delete", resp.Versions[1].Operation)
		assert.Equal(t, int64(7), resp.Versions[0].TransactionID)
	})

	t.Run("Unknown record", func(t *testing.T) {
		router, records := newRecordRouter(t)
		records.EXPECT().Versions(mock.Anything, "nope").Return(nil, nil).Once()

		w := serve(router, http.MethodGet, "/records/nope/versions", "")

		assert.Equal(t, http.StatusNotFound, w.Code)
	})
}
