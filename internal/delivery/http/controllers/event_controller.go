package controllers

import (
	"errors"
	"log/slog"
	"net/http"
	"regexp"
	"time"

	"notikums/internal/delivery/http/helpers"
	"notikums/internal/domain"
)

// identifierRegex matches a public identifier: 8 characters from the token
// alphabet. Anything else cannot name a resource and reads as not found.
var identifierRegex = regexp.MustCompile(`^[A-Z0-9]{8}$`)

type EventController struct {
	Logger  *slog.Logger
	Service domain.EventService
}

func NewEventController(logger *slog.Logger, svc domain.EventService) *EventController {
	return &EventController{
		Logger:  logger,
		Service: svc,
	}
}

// CreateEventRequest is the request body for POST /event.
type CreateEventRequest struct {
	Title       string  `json:"title"`
	Time        string  `json:"time"`
	Location    string  `json:"location"`
	CreatorName *string `json:"creator_name"`
	Description *string `json:"description"`
	Image       *string `json:"image"`

	parsedTime time.Time
}

// Validate implements helpers.Validator.
func (r *CreateEventRequest) Validate() []string {
	var errs []string
	if r.Title == "" {
		errs = append(errs, "title is required")
	} else if len(r.Title) > maxTitleLen {
		errs = append(errs, "title must be at most 128 characters")
	}
	if r.Location == "" {
		errs = append(errs, "location is required")
	} else if len(r.Location) > maxLocationLen {
		errs = append(errs, "location must be at most 64 characters")
	}
	if r.Time == "" {
		errs = append(errs, "time is required")
	} else if t, err := parseEventTime(r.Time); err != nil {
		errs = append(errs, err.Error())
	} else {
		r.parsedTime = t
	}
	if r.CreatorName != nil && len(*r.CreatorName) > maxCreatorNameLen {
		errs = append(errs, "creator_name must be at most 64 characters")
	}
	if r.Description != nil && len(*r.Description) > maxDescriptionLen {
		errs = append(errs, "description must be at most 256 characters")
	}
	if r.Image != nil && len(*r.Image) > maxImageLen {
		errs = append(errs, "image must be at most 256 characters")
	}
	return errs
}

// UpdateEventRequest is the request body for PUT /event/{id}. Every field
// is optional; absent fields keep their stored values.
type UpdateEventRequest struct {
	Title       *string `json:"title"`
	Time        *string `json:"time"`
	Location    *string `json:"location"`
	CreatorName *string `json:"creator_name"`
	Description *string `json:"description"`
	Image       *string `json:"image"`

	parsedTime *time.Time
}

// Validate implements helpers.Validator.
func (r *UpdateEventRequest) Validate() []string {
	var errs []string
	if r.Title != nil {
		if *r.Title == "" {
			errs = append(errs, "title must not be empty")
		} else if len(*r.Title) > maxTitleLen {
			errs = append(errs, "title must be at most 128 characters")
		}
	}
	if r.Location != nil {
		if *r.Location == "" {
			errs = append(errs, "location must not be empty")
		} else if len(*r.Location) > maxLocationLen {
			errs = append(errs, "location must be at most 64 characters")
		}
	}
	if r.Time != nil {
		if t, err := parseEventTime(*r.Time); err != nil {
			errs = append(errs, err.Error())
		} else {
			r.parsedTime = &t
		}
	}
	if r.CreatorName != nil && len(*r.CreatorName) > maxCreatorNameLen {
		errs = append(errs, "creator_name must be at most 64 characters")
	}
	if r.Description != nil && len(*r.Description) > maxDescriptionLen {
		errs = append(errs, "description must be at most 256 characters")
	}
	if r.Image != nil && len(*r.Image) > maxImageLen {
		errs = append(errs, "image must be at most 256 characters")
	}
	return errs
}

func (r *UpdateEventRequest) toUpdate() domain.EventUpdate {
	return domain.EventUpdate{
		Title:       r.Title,
		Location:    r.Location,
		Time:        r.parsedTime,
		CreatorName: r.CreatorName,
		Description: r.Description,
		Image:       r.Image,
	}
}

// List godoc
// @Summary List all events
// @Description Returns every event with its public fields. No pagination, no credential required.
// @Tags event
// @Produce json
// @Success 200 {array} controllers.EventResponse
// @Failure 500 {object} helpers.ErrorResponse "error.code: internal_error"
// @Router /event [get]
func (c *EventController) List(w http.ResponseWriter, r *http.Request) {
	events, err := c.Service.ListEvents(r.Context())
	if err != nil {
		c.Logger.ErrorContext(r.Context(), "request failed", "path", r.URL.Path, "method", r.Method, "err", err)
		helpers.WriteJSONError(w, http.StatusInternalServerError, helpers.ErrCodeInternalError, err.Error())
		return
	}

	out := make([]EventResponse, 0, len(events))
	for _, e := range events {
		out = append(out, newEventResponse(e))
	}
	helpers.WriteJSON(w, http.StatusOK, out)
}

// Create godoc
// @Summary Create an event
// @Description Creates an event and returns it including the freshly issued creator_token. The token is disclosed only here; store it, it cannot be recovered.
// @Tags event
// @Accept json
// @Produce json
// @Param body body controllers.CreateEventRequest true "Event fields; title, time and location are required"
// @Success 201 {object} controllers.EventCreatedResponse
// @Failure 415 {object} helpers.ErrorResponse "error.code: unsupported_media_type"
// @Failure 500 {object} helpers.ErrorResponse "error.code: internal_error"
// @Router /event [post]
func (c *EventController) Create(w http.ResponseWriter, r *http.Request) {
	var req CreateEventRequest
	if !helpers.DecodeAndValidate(w, r, &req) {
		return
	}

	event := domain.NewEvent(req.Title, req.Location, req.parsedTime)
	event.CreatorName = req.CreatorName
	event.Description = req.Description
	event.Image = req.Image

	if err := c.Service.CreateEvent(r.Context(), event); err != nil {
		if errors.Is(err, domain.ErrInvalidInput) {
			helpers.WriteJSONError(w, http.StatusBadRequest, helpers.ErrCodeBadRequest, err.Error())
			return
		}
		c.Logger.ErrorContext(r.Context(), "request failed", "path", r.URL.Path, "method", r.Method, "err", err)
		helpers.WriteJSONError(w, http.StatusInternalServerError, helpers.ErrCodeInternalError, err.Error())
		return
	}

	helpers.WriteJSON(w, http.StatusCreated, newEventCreatedResponse(event))
}

// Get godoc
// @Summary Get a single event
// @Tags event
// @Produce json
// @Param id path string true "Event identifier (8 characters)"
// @Success 200 {object} controllers.EventResponse
// @Failure 404 {object} helpers.ErrorResponse "error.code: not_found"
// @Failure 500 {object} helpers.ErrorResponse "error.code: internal_error"
// @Router /event/{id} [get]
func (c *EventController) Get(w http.ResponseWriter, r *http.Request) {
	event, ok := c.lookupEvent(w, r)
	if !ok {
		return
	}
	helpers.WriteJSON(w, http.StatusOK, newEventResponse(event))
}

// Update godoc
// @Summary Update an event
// @Description Applies a partial update: only fields present in the body change. Requires the creator credential in the Authorization header ("Basic <creator_token>").
// @Tags event
// @Accept json
// @Produce json
// @Security BasicToken
// @Param id path string true "Event identifier (8 characters)"
// @Param body body controllers.UpdateEventRequest true "Fields to change; all optional"
// @Success 200 {object} controllers.EventResponse
// @Failure 401 {object} helpers.ErrorResponse "error.code: unauthorized"
// @Failure 404 {object} helpers.ErrorResponse "error.code: not_found"
// @Failure 415 {object} helpers.ErrorResponse "error.code: unsupported_media_type"
// @Failure 500 {object} helpers.ErrorResponse "error.code: internal_error"
// @Router /event/{id} [put]
func (c *EventController) Update(w http.ResponseWriter, r *http.Request) {
	var req UpdateEventRequest
	if !helpers.DecodeAndValidate(w, r, &req) {
		return
	}

	id := r.PathValue("id")
	if !identifierRegex.MatchString(id) {
		helpers.WriteJSONError(w, http.StatusNotFound, helpers.ErrCodeNotFound, "event not found")
		return
	}

	event, err := c.Service.UpdateEvent(r.Context(), id, r.Header.Get("Authorization"), req.toUpdate())
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			helpers.WriteJSONError(w, http.StatusNotFound, helpers.ErrCodeNotFound, "event not found")
			return
		}
		if errors.Is(err, domain.ErrUnauthorized) {
			helpers.WriteJSONError(w, http.StatusUnauthorized, helpers.ErrCodeUnauthorized, "invalid or missing credential")
			return
		}
		if errors.Is(err, domain.ErrInvalidInput) {
			helpers.WriteJSONError(w, http.StatusBadRequest, helpers.ErrCodeBadRequest, err.Error())
			return
		}
		c.Logger.ErrorContext(r.Context(), "request failed", "path", r.URL.Path, "method", r.Method, "err", err)
		helpers.WriteJSONError(w, http.StatusInternalServerError, helpers.ErrCodeInternalError, err.Error())
		return
	}

	helpers.WriteJSON(w, http.StatusOK, newEventResponse(event))
}

// Delete godoc
// @Summary Delete an event
// @Description Deletes the event and every attendee registered to it. Requires the creator credential.
// @Tags event
// @Security BasicToken
// @Param id path string true "Event identifier (8 characters)"
// @Success 204 "No Content"
// @Failure 401 {object} helpers.ErrorResponse "error.code: unauthorized"
// @Failure 404 {object} helpers.ErrorResponse "error.code: not_found"
// @Failure 500 {object} helpers.ErrorResponse "error.code: internal_error"
// @Router /event/{id} [delete]
func (c *EventController) Delete(w http.ResponseWriter, r *http.Request) {
	id := r.PathValue("id")
	if !identifierRegex.MatchString(id) {
		helpers.WriteJSONError(w, http.StatusNotFound, helpers.ErrCodeNotFound, "event not found")
		return
	}

	err := c.Service.DeleteEvent(r.Context(), id, r.Header.Get("Authorization"))
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			helpers.WriteJSONError(w, http.StatusNotFound, helpers.ErrCodeNotFound, "event not found")
			return
		}
		if errors.Is(err, domain.ErrUnauthorized) {
			helpers.WriteJSONError(w, http.StatusUnauthorized, helpers.ErrCodeUnauthorized, "invalid or missing credential")
			return
		}
		c.Logger.ErrorContext(r.Context(), "request failed", "path", r.URL.Path, "method", r.Method, "err", err)
		helpers.WriteJSONError(w, http.StatusInternalServerError, helpers.ErrCodeInternalError, err.Error())
		return
	}

	w.WriteHeader(http.StatusNoContent)
}

// Single-field projections of an event, for the convenience endpoints.
type (
	// swagger:model EventTimeResponse
	EventTimeResponse struct {
		Time string `json:"time"`
	}
	// swagger:model EventLocationResponse
	EventLocationResponse struct {
		Location string `json:"location"`
	}
	// swagger:model EventDescriptionResponse
	EventDescriptionResponse struct {
		Description *string `json:"description"`
	}
	// swagger:model EventImageResponse
	EventImageResponse struct {
		Image *string `json:"image"`
	}
)

// GetTime godoc
// @Summary Get an event's time
// @Tags event
// @Produce json
// @Param id path string true "Event identifier (8 characters)"
// @Success 200 {object} controllers.EventTimeResponse
// @Failure 404 {object} helpers.ErrorResponse "error.code: not_found"
// @Router /event/{id}/time [get]
func (c *EventController) GetTime(w http.ResponseWriter, r *http.Request) {
	event, ok := c.lookupEvent(w, r)
	if !ok {
		return
	}
	helpers.WriteJSON(w, http.StatusOK, EventTimeResponse{Time: formatEventTime(event.Time)})
}

// GetLocation godoc
// @Summary Get an event's location
// @Tags event
// @Produce json
// @Param id path string true "Event identifier (8 characters)"
// @Success 200 {object} controllers.EventLocationResponse
// @Failure 404 {object} helpers.ErrorResponse "error.code: not_found"
// @Router /event/{id}/location [get]
func (c *EventController) GetLocation(w http.ResponseWriter, r *http.Request) {
	event, ok := c.lookupEvent(w, r)
	if !ok {
		return
	}
	helpers.WriteJSON(w, http.StatusOK, EventLocationResponse{Location: event.Location})
}

// GetDescription godoc
// @Summary Get an event's description
// @Tags event
// @Produce json
// @Param id path string true "Event identifier (8 characters)"
// @Success 200 {object} controllers.EventDescriptionResponse
// @Failure 404 {object} helpers.ErrorResponse "error.code: not_found"
// @Router /event/{id}/description [get]
func (c *EventController) GetDescription(w http.ResponseWriter, r *http.Request) {
	event, ok := c.lookupEvent(w, r)
	if !ok {
		return
	}
	helpers.WriteJSON(w, http.StatusOK, EventDescriptionResponse{Description: event.Description})
}

// GetImage godoc
// @Summary Get an event's image URL
// @Tags event
// @Produce json
// @Param id path string true "Event identifier (8 characters)"
// @Success 200 {object} controllers.EventImageResponse
// @Failure 404 {object} helpers.ErrorResponse "error.code: not_found"
// @Router /event/{id}/image [get]
func (c *EventController) GetImage(w http.ResponseWriter, r *http.Request) {
	event, ok := c.lookupEvent(w, r)
	if !ok {
		return
	}
	helpers.WriteJSON(w, http.StatusOK, EventImageResponse{Image: event.Image})
}

// lookupEvent resolves the event named by the path for unauthenticated
// reads, writing the error response itself when the lookup fails.
func (c *EventController) lookupEvent(w http.ResponseWriter, r *http.Request) (*domain.Event, bool) {
	id := r.PathValue("id")
	if !identifierRegex.MatchString(id) {
		helpers.WriteJSONError(w, http.StatusNotFound, helpers.ErrCodeNotFound, "event not found")
		return nil, false
	}
	event, err := c.Service.GetEvent(r.Context(), id)
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			helpers.WriteJSONError(w, http.StatusNotFound, helpers.ErrCodeNotFound, "event not found")
			return nil, false
		}
		c.Logger.ErrorContext(r.Context(), "request failed", "path", r.URL.Path, "method", r.Method, "err", err)
		helpers.WriteJSONError(w, http.StatusInternalServerError, helpers.ErrCodeInternalError, err.Error())
		return nil, false
	}
	return event, true
}
