package handler

import (
	"errors"
	"net/http"

	"github.com/matheusvbd/crudapi/internal/domain/entity"
	errs "github.com/matheusvbd/crudapi/internal/domain/error"
	coreport "github.com/matheusvbd/crudapi/internal/domain/port/core"
	"github.com/matheusvbd/crudapi/internal/domain/port/persistence"
	"github.com/matheusvbd/crudapi/internal/infrastructure/adapter/api/dto"
	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

// Controller is a generic CRUD handler bound to an entity type E and its
// transfer representation D. It delegates persistence to a Service, converts
// between the two representations through a Mapper, and wraps every mutating
// operation in a unit-of-work transaction obtained from the factory.
type Controller[E entity.Identifiable, D entity.Identifiable] struct {
	resource string
	service  persistence.Service[E]
	mapper   persistence.Mapper[E, D]
	uowf     persistence.UnitOfWorkFactory
	logger   coreport.Logger
}

// NewController creates a CRUD controller for one resource
func NewController[E entity.Identifiable, D entity.Identifiable](
	resource string,
	service persistence.Service[E],
	mapper persistence.Mapper[E, D],
	uowf persistence.UnitOfWorkFactory,
	logger coreport.Logger,
) *Controller[E, D] {
	return &Controller[E, D]{
		resource: resource,
		service:  service,
		mapper:   mapper,
		uowf:     uowf,
		logger:   logger,
	}
}

// List handles GET /{resource}
func (h *Controller[E, D]) List(c *gin.Context) {
	ctx := c.Request.Context()

	items, err := h.service.GetAll(ctx)
	if err != nil {
		h.fail(c, http.StatusInternalServerError, err)
		return
	}
	if len(items) == 0 {
		c.JSON(http.StatusNotFound, dto.ErrorResponse{
			Code:    errs.CodeNotFound,
			Message: dto.MsgNoItemsFound,
		})
		return
	}

	transfers, err := h.mapper.ToTransferList(items)
	if err != nil || len(transfers) == 0 {
		c.JSON(http.StatusNotFound, dto.ErrorResponse{
			Code:    errs.CodeMappingFailed,
			Message: dto.MsgMappingFailed,
		})
		return
	}

	c.JSON(http.StatusOK, transfers)
}

// Get handles GET /{resource}/{id}
func (h *Controller[E, D]) Get(c *gin.Context) {
	id, ok := h.parseID(c)
	if !ok {
		return
	}
	ctx := c.Request.Context()

	item, err := h.service.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, errs.ErrNotFound) {
			c.JSON(http.StatusNotFound, dto.ErrorResponse{
				Code:    errs.CodeNotFound,
				Message: dto.MsgItemNotFound,
			})
			return
		}
		h.fail(c, http.StatusInternalServerError, err)
		return
	}

	transfer, err := h.mapper.ToTransfer(item)
	if err != nil {
		c.JSON(http.StatusNotFound, dto.ErrorResponse{
			Code:    errs.CodeMappingFailed,
			Message: dto.MsgMappingFailed,
		})
		return
	}

	c.JSON(http.StatusOK, transfer)
}

// Update handles PUT /{resource}/{id}
func (h *Controller[E, D]) Update(c *gin.Context) {
	id, ok := h.parseID(c)
	if !ok {
		return
	}

	var payload D
	if err := c.ShouldBindJSON(&payload); err != nil {
		h.fail(c, http.StatusBadRequest, errs.ErrInvalidRequest)
		return
	}
	if payload.GetID() != id {
		h.fail(c, http.StatusBadRequest, errs.ErrIDMismatch)
		return
	}

	ctx := c.Request.Context()
	uow := h.uowf.NewUnitOfWork()
	txCtx, tx, err := uow.Begin(ctx)
	if err != nil {
		h.fail(c, http.StatusInternalServerError, err)
		return
	}

	e, err := h.mapper.ToEntity(payload)
	if err != nil {
		uow.Rollback(ctx)
		h.fail(c, http.StatusUnprocessableEntity, errs.ErrMappingFailed)
		return
	}

	if err := h.service.Update(txCtx, id, e); err != nil {
		uow.Rollback(ctx)

		if errors.Is(err, errs.ErrConcurrencyConflict) {
			// The row may simply be gone; only a live row makes this a
			// genuine conflict.
			exists, exErr := h.service.Exists(ctx, id)
			if exErr == nil && !exists {
				c.JSON(http.StatusNotFound, dto.ErrorResponse{
					Code:    errs.CodeNotFound,
					Message: dto.MsgItemNotFound,
				})
				return
			}
			h.fail(c, http.StatusInternalServerError, err)
			return
		}

		h.fail(c, http.StatusInternalServerError, err)
		return
	}

	if err := uow.Commit(ctx, tx); err != nil {
		h.fail(c, http.StatusInternalServerError, err)
		return
	}

	h.logger.Info("Resource updated", map[string]any{
		"resource": h.resource,
		"id":       id,
	})
	c.Status(http.StatusOK)
}

// Add handles POST /{resource}
func (h *Controller[E, D]) Add(c *gin.Context) {
	var payload D
	if err := c.ShouldBindJSON(&payload); err != nil {
		h.fail(c, http.StatusBadRequest, errs.ErrInvalidRequest)
		return
	}

	ctx := c.Request.Context()
	uow := h.uowf.NewUnitOfWork()
	txCtx, tx, err := uow.Begin(ctx)
	if err != nil {
		h.fail(c, http.StatusInternalServerError, err)
		return
	}

	exists, err := h.service.Exists(txCtx, payload.GetID())
	if err != nil {
		uow.Rollback(ctx)
		h.fail(c, http.StatusInternalServerError, err)
		return
	}
	if exists {
		uow.Rollback(ctx)
		// 401 on identifier collision is inherited behavior the API's
		// consumers depend on.
		h.fail(c, http.StatusUnauthorized, errs.ErrDuplicateID)
		return
	}

	e, err := h.mapper.ToEntity(payload)
	if err != nil {
		uow.Rollback(ctx)
		h.fail(c, http.StatusUnprocessableEntity, errs.ErrMappingFailed)
		return
	}

	if err := h.service.Add(txCtx, e); err != nil {
		uow.Rollback(ctx)
		if errors.Is(err, errs.ErrDuplicateID) {
			h.fail(c, http.StatusUnauthorized, err)
			return
		}
		h.fail(c, http.StatusInternalServerError, err)
		return
	}

	if err := uow.Commit(ctx, tx); err != nil {
		h.fail(c, http.StatusInternalServerError, err)
		return
	}

	h.logger.Info("Resource created", map[string]any{
		"resource": h.resource,
		"id":       payload.GetID(),
	})
	c.JSON(http.StatusOK, payload)
}

// Remove handles DELETE /{resource}/{id}
func (h *Controller[E, D]) Remove(c *gin.Context) {
	id, ok := h.parseID(c)
	if !ok {
		return
	}

	ctx := c.Request.Context()
	uow := h.uowf.NewUnitOfWork()
	txCtx, tx, err := uow.Begin(ctx)
	if err != nil {
		h.fail(c, http.StatusInternalServerError, err)
		return
	}

	item, err := h.service.GetByID(txCtx, id)
	if err != nil {
		uow.Rollback(ctx)
		if errors.Is(err, errs.ErrNotFound) {
			c.JSON(http.StatusNotFound, dto.ErrorResponse{
				Code:    errs.CodeNotFound,
				Message: dto.MsgItemNotFound,
			})
			return
		}
		h.fail(c, http.StatusInternalServerError, err)
		return
	}

	if err := h.service.Delete(txCtx, item); err != nil {
		uow.Rollback(ctx)
		h.fail(c, http.StatusInternalServerError, err)
		return
	}

	if err := uow.Commit(ctx, tx); err != nil {
		h.fail(c, http.StatusInternalServerError, err)
		return
	}

	// A committed delete that left the row behind is a failed delete
	exists, err := h.service.Exists(ctx, id)
	if err != nil {
		h.fail(c, http.StatusInternalServerError, err)
		return
	}
	if exists {
		h.fail(c, http.StatusBadRequest, errs.ErrDeleteIneffective)
		return
	}

	h.logger.Info("Resource removed", map[string]any{
		"resource": h.resource,
		"id":       id,
	})
	c.Status(http.StatusOK)
}

// parseID extracts and validates the path identifier, rejecting malformed
// and zero UUIDs before any service call
func (h *Controller[E, D]) parseID(c *gin.Context) (uuid.UUID, bool) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil || id == uuid.Nil {
		h.fail(c, http.StatusBadRequest, errs.ErrInvalidID)
		return uuid.Nil, false
	}
	return id, true
}

func (h *Controller[E, D]) fail(c *gin.Context, status int, err error) {
	if status >= http.StatusInternalServerError {
		h.logger.Error("Request failed", map[string]any{
			"resource": h.resource,
			"path":     c.Request.URL.Path,
			"method":   c.Request.Method,
			"error":    err.Error(),
		})
	}
	c.JSON(status, dto.ErrorResponse{
		Code:    errs.ErrorCode(err),
		Message: err.Error(),
	})
}
