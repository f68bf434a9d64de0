package handlers

import (
	"context"
	"net/http"

	"github.com/google/uuid"
	"github.com/sbilibin2017/espresso-tracker/internal/models"
)

//go:generate mockgen -source=beans.go -destination=beans_mock.go -package=handlers

const beanNotFound = "Bean not found"

// BeanManager defines the bean operations used by the handlers.
type BeanManager interface {
	Create(ctx context.Context, userID uuid.UUID, in models.BeanInput) (*models.Bean, error)
	List(ctx context.Context, userID uuid.UUID) ([]models.Bean, error)
	Get(ctx context.Context, userID, id uuid.UUID) (*models.Bean, error)
	Update(ctx context.Context, userID, id uuid.UUID, patch models.BeanPatch) (*models.Bean, error)
	Delete(ctx context.Context, userID, id uuid.UUID) error
}

// NewCreateBeanHandler returns an HTTP handler that adds a bean.
// @Summary Create bean
// @Tags beans
// @Accept json
// @Produce json
// @Param bean body models.BeanInput true "Bean"
// @Success 201 {object} models.Bean
// @Failure 400 {object} handlers.ErrorResponse "Invalid request"
// @Failure 401 {object} handlers.ErrorResponse "Not authenticated"
// @Router /api/beans [post]
// @Security BearerAuth
func NewCreateBeanHandler(svc BeanManager) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		user, ok := actingUser(w, r)
		if !ok {
			return
		}

		var in models.BeanInput
		if err := decodeJSON(r, &in); err != nil {
			writeError(w, http.StatusBadRequest, "invalid request body")
			return
		}

		bean, err := svc.Create(r.Context(), user.ID, in)
		if err != nil {
			writeServiceError(w, err, beanNotFound)
			return
		}

		writeJSON(w, http.StatusCreated, bean)
	}
}

// NewListBeansHandler returns an HTTP handler listing the user's beans.
// @Summary List beans
// @Tags beans
// @Produce json
// @Success 200 {array} models.Bean
// @Failure 401 {object} handlers.ErrorResponse "Not authenticated"
// @Router /api/beans [get]
// @Security BearerAuth
func NewListBeansHandler(svc BeanManager) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		user, ok := actingUser(w, r)
		if !ok {
			return
		}

		beans, err := svc.List(r.Context(), user.ID)
		if err != nil {
			writeServiceError(w, err, beanNotFound)
			return
		}

		writeJSON(w, http.StatusOK, beans)
	}
}

// NewGetBeanHandler returns an HTTP handler fetching one bean.
// @Summary Get bean
// @Tags beans
// @Produce json
// @Param id path string true "Bean ID"
// @Success 200 {object} models.Bean
// @Failure 404 {object} handlers.ErrorResponse "Bean not found"
// @Router /api/beans/{id} [get]
// @Security BearerAuth
func NewGetBeanHandler(svc BeanManager) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		user, ok := actingUser(w, r)
		if !ok {
			return
		}
		id, ok := pathID(w, r, beanNotFound)
		if !ok {
			return
		}

		bean, err := svc.Get(r.Context(), user.ID, id)
		if err != nil {
			writeServiceError(w, err, beanNotFound)
			return
		}

		writeJSON(w, http.StatusOK, bean)
	}
}

// NewUpdateBeanHandler returns an HTTP handler applying a partial update.
// Fields absent from the body are left unchanged; null clears a field.
// @Summary Update bean
// @Tags beans
// @Accept json
// @Produce json
// @Param id path string true "Bean ID"
// @Param bean body models.BeanInput true "Fields to change"
// @Success 200 {object} models.Bean
// @Failure 400 {object} handlers.ErrorResponse "Invalid request"
// @Failure 404 {object} handlers.ErrorResponse "Bean not found"
// @Router /api/beans/{id} [put]
// @Security BearerAuth
func NewUpdateBeanHandler(svc BeanManager) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		user, ok := actingUser(w, r)
		if !ok {
			return
		}
		id, ok := pathID(w, r, beanNotFound)
		if !ok {
			return
		}

		var patch models.BeanPatch
		if err := decodeJSON(r, &patch); err != nil {
			writeError(w, http.StatusBadRequest, "invalid request body")
			return
		}

		bean, err := svc.Update(r.Context(), user.ID, id, patch)
		if err != nil {
			writeServiceError(w, err, beanNotFound)
			return
		}

		writeJSON(w, http.StatusOK, bean)
	}
}

// NewDeleteBeanHandler returns an HTTP handler deleting a bean and its records.
// @Summary Delete bean
// @Tags beans
// @Produce json
// @Param id path string true "Bean ID"
// @Success 200 {object} handlers.MessageResponse
// @Failure 404 {object} handlers.ErrorResponse "Bean not found"
// @Router /api/beans/{id} [delete]
// @Security BearerAuth
func NewDeleteBeanHandler(svc BeanManager) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		user, ok := actingUser(w, r)
		if !ok {
			return
		}
		id, ok := pathID(w, r, beanNotFound)
		if !ok {
			return
		}

		if err := svc.Delete(r.Context(), user.ID, id); err != nil {
			writeServiceError(w, err, beanNotFound)
			return
		}

		writeJSON(w, http.StatusOK, MessageResponse{Message: "Bean deleted successfully"})
	}
}
