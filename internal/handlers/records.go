package handlers

import (
	"context"
	"net/http"

	"github.com/google/uuid"
	"github.com/sbilibin2017/espresso-tracker/internal/models"
)

//go:generate mockgen -source=records.go -destination=records_mock.go -package=handlers

const recordNotFound = "Record not found"

// RecordManager defines the record operations used by the handlers.
type RecordManager interface {
	Create(ctx context.Context, userID uuid.UUID, in models.RecordInput) (*models.EspressoRecord, error)
	List(ctx context.Context, userID uuid.UUID, filter models.RecordFilter) ([]models.EspressoRecord, error)
	Get(ctx context.Context, userID, id uuid.UUID) (*models.EspressoRecord, error)
	Update(ctx context.Context, userID, id uuid.UUID, patch models.RecordPatch) (*models.EspressoRecord, error)
	Delete(ctx context.Context, userID, id uuid.UUID) error
}

// NewCreateRecordHandler returns an HTTP handler recording a brewing session.
// Machine and grinder fall back to the user's defaults.
// @Summary Create record
// @Tags records
// @Accept json
// @Produce json
// @Param record body models.RecordInput true "Record"
// @Success 201 {object} models.EspressoRecord
// @Failure 400 {object} handlers.ErrorResponse "Invalid request / machine or grinder missing"
// @Failure 404 {object} handlers.ErrorResponse "Bean not found"
// @Router /api/records [post]
// @Security BearerAuth
func NewCreateRecordHandler(svc RecordManager) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		user, ok := actingUser(w, r)
		if !ok {
			return
		}

		var in models.RecordInput
		if err := decodeJSON(r, &in); err != nil {
			writeError(w, http.StatusBadRequest, "invalid request body")
			return
		}

		rec, err := svc.Create(r.Context(), user.ID, in)
		if err != nil {
			writeServiceError(w, err, beanNotFound)
			return
		}

		writeJSON(w, http.StatusCreated, rec)
	}
}

// NewListRecordsHandler returns an HTTP handler searching the user's records.
// @Summary List records
// @Description Newest first. Text filters are case-insensitive substring matches.
// @Tags records
// @Produce json
// @Param bean_id query string false "Bean ID"
// @Param machine query string false "Machine contains"
// @Param grinder query string false "Grinder contains"
// @Param bean_variety query string false "Bean variety contains"
// @Param bean_roaster query string false "Bean roaster contains"
// @Success 200 {array} models.EspressoRecord
// @Failure 400 {object} handlers.ErrorResponse "Invalid bean_id"
// @Router /api/records [get]
// @Security BearerAuth
func NewListRecordsHandler(svc RecordManager) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		user, ok := actingUser(w, r)
		if !ok {
			return
		}

		q := r.URL.Query()
		filter := models.RecordFilter{
			Machine:     q.Get("machine"),
			Grinder:     q.Get("grinder"),
			BeanVariety: q.Get("bean_variety"),
			BeanRoaster: q.Get("bean_roaster"),
		}
		if raw := q.Get("bean_id"); raw != "" {
			beanID, err := uuid.Parse(raw)
			if err != nil {
				writeError(w, http.StatusBadRequest, "invalid bean_id")
				return
			}
			filter.BeanID = &beanID
		}

		records, err := svc.List(r.Context(), user.ID, filter)
		if err != nil {
			writeServiceError(w, err, recordNotFound)
			return
		}

		writeJSON(w, http.StatusOK, records)
	}
}

// NewGetRecordHandler returns an HTTP handler fetching one record.
// @Summary Get record
// @Tags records
// @Produce json
// @Param id path string true "Record ID"
// @Success 200 {object} models.EspressoRecord
// @Failure 404 {object} handlers.ErrorResponse "Record not found"
// @Router /api/records/{id} [get]
// @Security BearerAuth
func NewGetRecordHandler(svc RecordManager) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		user, ok := actingUser(w, r)
		if !ok {
			return
		}
		id, ok := pathID(w, r, recordNotFound)
		if !ok {
			return
		}

		rec, err := svc.Get(r.Context(), user.ID, id)
		if err != nil {
			writeServiceError(w, err, recordNotFound)
			return
		}

		writeJSON(w, http.StatusOK, rec)
	}
}

// NewUpdateRecordHandler returns an HTTP handler applying a partial update.
// @Summary Update record
// @Tags records
// @Accept json
// @Produce json
// @Param id path string true "Record ID"
// @Param record body models.RecordInput true "Fields to change (bean_id is ignored)"
// @Success 200 {object} models.EspressoRecord
// @Failure 400 {object} handlers.ErrorResponse "Invalid request"
// @Failure 404 {object} handlers.ErrorResponse "Record not found"
// @Router /api/records/{id} [put]
// @Security BearerAuth
func NewUpdateRecordHandler(svc RecordManager) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		user, ok := actingUser(w, r)
		if !ok {
			return
		}
		id, ok := pathID(w, r, recordNotFound)
		if !ok {
			return
		}

		var patch models.RecordPatch
		if err := decodeJSON(r, &patch); err != nil {
			writeError(w, http.StatusBadRequest, "invalid request body")
			return
		}

		rec, err := svc.Update(r.Context(), user.ID, id, patch)
		if err != nil {
			writeServiceError(w, err, recordNotFound)
			return
		}

		writeJSON(w, http.StatusOK, rec)
	}
}

// NewDeleteRecordHandler returns an HTTP handler deleting a record.
// @Summary Delete record
// @Tags records
// @Produce json
// @Param id path string true "Record ID"
// @Success 200 {object} handlers.MessageResponse
// @Failure 404 {object} handlers.ErrorResponse "Record not found"
// @Router /api/records/{id} [delete]
// @Security BearerAuth
func NewDeleteRecordHandler(svc RecordManager) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		user, ok := actingUser(w, r)
		if !ok {
			return
		}
		id, ok := pathID(w, r, recordNotFound)
		if !ok {
			return
		}

		if err := svc.Delete(r.Context(), user.ID, id); err != nil {
			writeServiceError(w, err, recordNotFound)
			return
		}

		writeJSON(w, http.StatusOK, MessageResponse{Message: "Record deleted successfully"})
	}
}
