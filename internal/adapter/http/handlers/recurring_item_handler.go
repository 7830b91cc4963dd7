package handlers

import (
	"context"
	"errors"
	"net/http"

	request "recurring_finance/internal/adapter/http/dto/request"
	response "recurring_finance/internal/adapter/http/dto/response"
	"recurring_finance/internal/adapter/http/middleware"
	"recurring_finance/internal/domain/calendar"
	"recurring_finance/internal/domain/entities"
	"recurring_finance/internal/usecase"
	"recurring_finance/pkg"

	"github.com/gin-gonic/gin"
)

var (
	errInvalidRecurringItemPayload = pkg.NewDomainErrorSimple("INVALID_REQUEST", "Invalid recurring item payload", http.StatusBadRequest)
	errInvalidDateParam            = pkg.NewDomainErrorSimple("INVALID_REQUEST", "invalid date: expected YYYY-MM-DD", http.StatusBadRequest)
)

// RecurringItemHandler exposes the recurring item lifecycle and the due
// queries of one owner space.
type RecurringItemHandler struct {
	usecase usecase.IRecurringItemUseCase
}

func NewRecurringItemHandler(uc usecase.IRecurringItemUseCase) *RecurringItemHandler {
	return &RecurringItemHandler{usecase: uc}
}

// CreateRecurringItem godoc
// @Summary      Create a recurring item
// @Tags         recurring-items
// @Accept       json
// @Produce      json
// @Security     Bearer
// @Param        space_id  path      string                                     true  "Owner space"
// @Param        payload   body      request.CreateRecurringItemRequest         true  "Recurring item"
// @Success      201       {object}  response.RecurringItemResponse
// @Failure      400       {object}  pkg.HTTPError
// @Router       /spaces/{space_id}/recurring-items [post]
func (h *RecurringItemHandler) CreateRecurringItem(c *gin.Context) {
	var payload request.CreateRecurringItemRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		c.JSON(errInvalidRecurringItemPayload.HTTPStatus, errInvalidRecurringItemPayload.ToHTTPError())
		return
	}

	item, err := h.usecase.Create(c.Request.Context(), scopeOf(c), payload.ToInput())
	if err != nil {
		appErr := mapRecurringItemError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	c.JSON(http.StatusCreated, response.FromRecurringItem(item))
}

// ListRecurringItems godoc
// @Summary      List the recurring items of a space
// @Tags         recurring-items
// @Produce      json
// @Security     Bearer
// @Param        space_id  path      string  true  "Owner space"
// @Success      200       {array}   response.RecurringItemResponse
// @Router       /spaces/{space_id}/recurring-items [get]
func (h *RecurringItemHandler) ListRecurringItems(c *gin.Context) {
	items, err := h.usecase.List(c.Request.Context(), scopeOf(c))
	if err != nil {
		appErr := mapRecurringItemError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	c.JSON(http.StatusOK, response.FromRecurringItems(items))
}

// GetRecurringItem godoc
// @Summary      Get a recurring item
// @Tags         recurring-items
// @Produce      json
// @Security     Bearer
// @Param        space_id  path      string  true  "Owner space"
// @Param        id        path      string  true  "Recurring item id"
// @Success      200       {object}  response.RecurringItemResponse
// @Failure      404       {object}  pkg.HTTPError
// @Router       /spaces/{space_id}/recurring-items/{id} [get]
func (h *RecurringItemHandler) GetRecurringItem(c *gin.Context) {
	h.respondWithItem(c, http.StatusOK, h.usecase.GetByID)
}

// UpdateRecurringItem godoc
// @Summary      Partially update a recurring item
// @Description  Schedule fields are stored as given; use reschedule to recompute the next execution date.
// @Tags         recurring-items
// @Accept       json
// @Produce      json
// @Security     Bearer
// @Param        space_id  path      string                              true  "Owner space"
// @Param        id        path      string                              true  "Recurring item id"
// @Param        payload   body      request.UpdateRecurringItemRequest  true  "Fields to change"
// @Success      200       {object}  response.RecurringItemResponse
// @Failure      400       {object}  pkg.HTTPError
// @Failure      404       {object}  pkg.HTTPError
// @Failure      409       {object}  pkg.HTTPError
// @Router       /spaces/{space_id}/recurring-items/{id} [patch]
func (h *RecurringItemHandler) UpdateRecurringItem(c *gin.Context) {
	var payload request.UpdateRecurringItemRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		c.JSON(errInvalidRecurringItemPayload.HTTPStatus, errInvalidRecurringItemPayload.ToHTTPError())
		return
	}

	item, err := h.usecase.Update(c.Request.Context(), scopeOf(c), c.Param("id"), payload.ToInput())
	if err != nil {
		appErr := mapRecurringItemError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	c.JSON(http.StatusOK, response.FromRecurringItem(item))
}

// DeleteRecurringItem godoc
// @Summary      Delete a recurring item
// @Tags         recurring-items
// @Security     Bearer
// @Param        space_id  path  string  true  "Owner space"
// @Param        id        path  string  true  "Recurring item id"
// @Success      204
// @Failure      404       {object}  pkg.HTTPError
// @Router       /spaces/{space_id}/recurring-items/{id} [delete]
func (h *RecurringItemHandler) DeleteRecurringItem(c *gin.Context) {
	if err := h.usecase.Delete(c.Request.Context(), scopeOf(c), c.Param("id")); err != nil {
		appErr := mapRecurringItemError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	c.Status(http.StatusNoContent)
}

// MarkExecuted godoc
// @Summary      Record an execution of a recurring item
// @Description  The body is optional; without execution_date the execution is recorded on today's date.
// @Tags         recurring-items
// @Accept       json
// @Produce      json
// @Security     Bearer
// @Param        space_id  path      string                       true   "Owner space"
// @Param        id        path      string                       true   "Recurring item id"
// @Param        payload   body      request.MarkExecutedRequest  false  "Execution date"
// @Success      200       {object}  response.RecurringItemResponse
// @Failure      409       {object}  pkg.HTTPError
// @Router       /spaces/{space_id}/recurring-items/{id}/execute [post]
func (h *RecurringItemHandler) MarkExecuted(c *gin.Context) {
	var payload request.MarkExecutedRequest
	if c.Request.ContentLength != 0 {
		if err := c.ShouldBindJSON(&payload); err != nil {
			c.JSON(errInvalidRecurringItemPayload.HTTPStatus, errInvalidRecurringItemPayload.ToHTTPError())
			return
		}
	}

	item, err := h.usecase.MarkExecuted(c.Request.Context(), scopeOf(c), c.Param("id"), payload.ExecutionDate)
	if err != nil {
		appErr := mapRecurringItemError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	c.JSON(http.StatusOK, response.FromRecurringItem(item))
}

// PauseRecurringItem godoc
// @Summary      Pause a recurring item
// @Tags         recurring-items
// @Produce      json
// @Security     Bearer
// @Param        space_id  path      string  true  "Owner space"
// @Param        id        path      string  true  "Recurring item id"
// @Success      200       {object}  response.RecurringItemResponse
// @Failure      404       {object}  pkg.HTTPError
// @Failure      409       {object}  pkg.HTTPError
// @Router       /spaces/{space_id}/recurring-items/{id}/pause [post]
func (h *RecurringItemHandler) PauseRecurringItem(c *gin.Context) {
	h.respondWithItem(c, http.StatusOK, h.usecase.Pause)
}

// ResumeRecurringItem godoc
// @Summary      Resume a paused recurring item
// @Tags         recurring-items
// @Produce      json
// @Security     Bearer
// @Param        space_id  path      string  true  "Owner space"
// @Param        id        path      string  true  "Recurring item id"
// @Success      200       {object}  response.RecurringItemResponse
// @Failure      404       {object}  pkg.HTTPError
// @Failure      409       {object}  pkg.HTTPError
// @Router       /spaces/{space_id}/recurring-items/{id}/resume [post]
func (h *RecurringItemHandler) ResumeRecurringItem(c *gin.Context) {
	h.respondWithItem(c, http.StatusOK, h.usecase.Resume)
}

// RescheduleRecurringItem godoc
// @Summary      Recompute the next execution date
// @Description  Recomputes the next execution date from the start date and today.
// @Tags         recurring-items
// @Produce      json
// @Security     Bearer
// @Param        space_id  path      string  true  "Owner space"
// @Param        id        path      string  true  "Recurring item id"
// @Success      200       {object}  response.RecurringItemResponse
// @Failure      404       {object}  pkg.HTTPError
// @Failure      409       {object}  pkg.HTTPError
// @Router       /spaces/{space_id}/recurring-items/{id}/reschedule [post]
func (h *RecurringItemHandler) RescheduleRecurringItem(c *gin.Context) {
	h.respondWithItem(c, http.StatusOK, h.usecase.Reschedule)
}

// DueRecurringItems godoc
// @Summary      List items due on a reference date
// @Tags         recurring-items
// @Produce      json
// @Security     Bearer
// @Param        space_id  path      string  true   "Owner space"
// @Param        date      query     string  false  "Reference date (YYYY-MM-DD), defaults to today"
// @Success      200       {array}   response.RecurringItemResponse
// @Failure      400       {object}  pkg.HTTPError
// @Router       /spaces/{space_id}/recurring-items/due [get]
func (h *RecurringItemHandler) DueRecurringItems(c *gin.Context) {
	ref, ok := referenceDateParam(c)
	if !ok {
		return
	}

	items, err := h.usecase.Due(c.Request.Context(), scopeOf(c), ref)
	if err != nil {
		appErr := mapRecurringItemError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	c.JSON(http.StatusOK, response.FromRecurringItems(items))
}

// Summary godoc
// @Summary      Monthly-equivalent totals of the active items
// @Tags         recurring-items
// @Produce      json
// @Security     Bearer
// @Param        space_id  path      string  true  "Owner space"
// @Success      200       {object}  response.SummaryResponse
// @Router       /spaces/{space_id}/recurring-items/summary [get]
func (h *RecurringItemHandler) Summary(c *gin.Context) {
	summary, err := h.usecase.Summary(c.Request.Context(), scopeOf(c))
	if err != nil {
		appErr := mapRecurringItemError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	c.JSON(http.StatusOK, response.FromSummary(summary))
}

// RunDue godoc
// @Summary      Execute every item due on a reference date
// @Description  Publishes one ledger event per due item and advances it. Per-item failures are reported, not returned as errors.
// @Tags         recurring-items
// @Produce      json
// @Security     Bearer
// @Param        space_id  path      string  true   "Owner space"
// @Param        date      query     string  false  "Reference date (YYYY-MM-DD), defaults to today"
// @Success      200       {object}  response.ExecutionReportResponse
// @Router       /spaces/{space_id}/recurring-items/run-due [post]
func (h *RecurringItemHandler) RunDue(c *gin.Context) {
	ref, ok := referenceDateParam(c)
	if !ok {
		return
	}

	report, err := h.usecase.ExecuteDue(c.Request.Context(), scopeOf(c), ref)
	if err != nil {
		appErr := mapRecurringItemError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	c.JSON(http.StatusOK, response.FromExecutionReport(report))
}

func (h *RecurringItemHandler) respondWithItem(
	c *gin.Context,
	status int,
	action func(ctx context.Context, scope entities.Scope, id string) (entities.RecurringItem, error),
) {
	item, err := action(c.Request.Context(), scopeOf(c), c.Param("id"))
	if err != nil {
		appErr := mapRecurringItemError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	c.JSON(status, response.FromRecurringItem(item))
}

func scopeOf(c *gin.Context) entities.Scope {
	return entities.Scope{
		OwnerSpaceID: c.Param(middleware.SpaceIDParam),
		ActorID:      middleware.ActorID(c),
	}
}

// referenceDateParam reads ?date=. A nil date means today.
func referenceDateParam(c *gin.Context) (*calendar.Date, bool) {
	raw := c.Query("date")
	if raw == "" {
		return nil, true
	}
	d, err := calendar.Parse(raw)
	if err != nil {
		c.JSON(errInvalidDateParam.HTTPStatus, errInvalidDateParam.ToHTTPError())
		return nil, false
	}
	return &d, true
}

func mapRecurringItemError(err error) *pkg.AppError {
	var validationErr *usecase.ValidationError
	switch {
	case errors.As(err, &validationErr):
		return pkg.NewDomainError("INVALID_REQUEST", validationErr.Error(), err, http.StatusBadRequest)
	case errors.Is(err, usecase.ErrInvalidOwnerSpaceID), errors.Is(err, usecase.ErrInvalidRecurringItemID):
		return pkg.NewDomainError("INVALID_REQUEST", "Invalid request", err, http.StatusBadRequest)
	case errors.Is(err, usecase.ErrRecurringItemNotFound):
		return pkg.NewDomainErrorSimple("RECURRING_ITEM_NOT_FOUND", "Recurring item not found", http.StatusNotFound)
	case errors.Is(err, usecase.ErrInvalidTransition):
		return pkg.NewDomainError("INVALID_TRANSITION", err.Error(), err, http.StatusConflict)
	case errors.Is(err, usecase.ErrConcurrentModification):
		return pkg.NewDomainError("CONCURRENT_MODIFICATION", "Recurring item was modified concurrently, retry the request", err, http.StatusConflict)
	default:
		return pkg.NewDomainError("INTERNAL_ERROR", "An internal error occurred", err, http.StatusInternalServerError)
	}
}
