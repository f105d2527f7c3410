package controllers

import (
	"errors"
	"log/slog"
	"net/http"

	"notikums/internal/delivery/http/helpers"
	"notikums/internal/domain"
)

type AttendeeController struct {
	Logger  *slog.Logger
	Service domain.AttendeeService
}

func NewAttendeeController(logger *slog.Logger, svc domain.AttendeeService) *AttendeeController {
	return &AttendeeController{
		Logger:  logger,
		Service: svc,
	}
}

// RegisterAttendeeRequest is the request body for POST /event/{id}/attendees.
type RegisterAttendeeRequest struct {
	UserName  string  `json:"user_name"`
	FirstName *string `json:"first_name"`
	LastName  *string `json:"last_name"`
	Email     *string `json:"email"`
	Phone     *string `json:"phone"`
}

// Validate implements helpers.Validator.
func (r *RegisterAttendeeRequest) Validate() []string {
	var errs []string
	if r.UserName == "" {
		errs = append(errs, "user_name is required")
	} else if len(r.UserName) > maxUserNameLen {
		errs = append(errs, "user_name must be at most 64 characters")
	}
	errs = append(errs, validateAttendeeOptionals(r.FirstName, r.LastName, r.Email, r.Phone)...)
	return errs
}

// UpdateAttendeeRequest is the request body for PUT /event/{id}/attendees/{aid}.
// Every field is optional; absent fields keep their stored values.
type UpdateAttendeeRequest struct {
	UserName  *string `json:"user_name"`
	FirstName *string `json:"first_name"`
	LastName  *string `json:"last_name"`
	Email     *string `json:"email"`
	Phone     *string `json:"phone"`
}

// Validate implements helpers.Validator.
func (r *UpdateAttendeeRequest) Validate() []string {
	var errs []string
	if r.UserName != nil {
		if *r.UserName == "" {
			errs = append(errs, "user_name must not be empty")
		} else if len(*r.UserName) > maxUserNameLen {
			errs = append(errs, "user_name must be at most 64 characters")
		}
	}
	errs = append(errs, validateAttendeeOptionals(r.FirstName, r.LastName, r.Email, r.Phone)...)
	return errs
}

func (r *UpdateAttendeeRequest) toUpdate() domain.AttendeeUpdate {
	return domain.AttendeeUpdate{
		UserName:  r.UserName,
		FirstName: r.FirstName,
		LastName:  r.LastName,
		Email:     r.Email,
		Phone:     r.Phone,
	}
}

func validateAttendeeOptionals(firstName, lastName, email, phone *string) []string {
	var errs []string
	if firstName != nil && len(*firstName) > maxNameLen {
		errs = append(errs, "first_name must be at most 64 characters")
	}
	if lastName != nil && len(*lastName) > maxNameLen {
		errs = append(errs, "last_name must be at most 64 characters")
	}
	if email != nil && len(*email) > maxEmailLen {
		errs = append(errs, "email must be at most 64 characters")
	}
	if phone != nil && len(*phone) > maxPhoneLen {
		errs = append(errs, "phone must be at most 16 characters")
	}
	return errs
}

// List godoc
// @Summary List an event's attendees
// @Description Returns the attendee list, visible only to the event creator. User tokens are never included.
// @Tags attendee
// @Produce json
// @Security BasicToken
// @Param id path string true "Event identifier (8 characters)"
// @Success 200 {array} controllers.AttendeeResponse
// @Failure 401 {object} helpers.ErrorResponse "error.code: unauthorized"
// @Failure 404 {object} helpers.ErrorResponse "error.code: not_found"
// @Failure 500 {object} helpers.ErrorResponse "error.code: internal_error"
// @Router /event/{id}/attendees [get]
func (c *AttendeeController) List(w http.ResponseWriter, r *http.Request) {
	id := r.PathValue("id")
	if !identifierRegex.MatchString(id) {
		helpers.WriteJSONError(w, http.StatusNotFound, helpers.ErrCodeNotFound, "event not found")
		return
	}

	attendees, err := c.Service.ListAttendees(r.Context(), id, r.Header.Get("Authorization"))
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

	out := make([]AttendeeResponse, 0, len(attendees))
	for _, a := range attendees {
		out = append(out, newAttendeeResponse(a))
	}
	helpers.WriteJSON(w, http.StatusOK, out)
}

// Register godoc
// @Summary Register an attendee
// @Description Registers a new attendee for the event; no credential is required to join. Returns the attendee including the freshly issued user_token, disclosed only here.
// @Tags attendee
// @Accept json
// @Produce json
// @Param id path string true "Event identifier (8 characters)"
// @Param body body controllers.RegisterAttendeeRequest true "Attendee fields; user_name is required and must be unique within the event"
// @Success 201 {object} controllers.AttendeeCreatedResponse
// @Failure 404 {object} helpers.ErrorResponse "error.code: not_found"
// @Failure 409 {object} helpers.ErrorResponse "error.code: conflict"
// @Failure 415 {object} helpers.ErrorResponse "error.code: unsupported_media_type"
// @Failure 500 {object} helpers.ErrorResponse "error.code: internal_error"
// @Router /event/{id}/attendees [post]
func (c *AttendeeController) Register(w http.ResponseWriter, r *http.Request) {
	var req RegisterAttendeeRequest
	if !helpers.DecodeAndValidate(w, r, &req) {
		return
	}

	id := r.PathValue("id")
	if !identifierRegex.MatchString(id) {
		helpers.WriteJSONError(w, http.StatusNotFound, helpers.ErrCodeNotFound, "event not found")
		return
	}

	attendee := domain.NewAttendee(id, req.UserName)
	attendee.FirstName = req.FirstName
	attendee.LastName = req.LastName
	attendee.Email = req.Email
	attendee.Phone = req.Phone

	if err := c.Service.RegisterAttendee(r.Context(), attendee); err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			helpers.WriteJSONError(w, http.StatusNotFound, helpers.ErrCodeNotFound, "event not found")
			return
		}
		if errors.Is(err, domain.ErrDuplicateUserName) {
			helpers.WriteJSONError(w, http.StatusConflict, helpers.ErrCodeConflict, "user_name already taken for this event")
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

	helpers.WriteJSON(w, http.StatusCreated, newAttendeeCreatedResponse(attendee))
}

// Get godoc
// @Summary Get a single attendee
// @Description Readable by the event creator or by the attendee themselves ("Basic <creator_token>" or "Basic <user_token>").
// @Tags attendee
// @Produce json
// @Security BasicToken
// @Param id path string true "Event identifier (8 characters)"
// @Param aid path string true "Attendee identifier (8 characters)"
// @Success 200 {object} controllers.AttendeeResponse
// @Failure 401 {object} helpers.ErrorResponse "error.code: unauthorized"
// @Failure 404 {object} helpers.ErrorResponse "error.code: not_found"
// @Failure 500 {object} helpers.ErrorResponse "error.code: internal_error"
// @Router /event/{id}/attendees/{aid} [get]
func (c *AttendeeController) Get(w http.ResponseWriter, r *http.Request) {
	id, aid, ok := attendeePathValues(w, r)
	if !ok {
		return
	}

	attendee, err := c.Service.GetAttendee(r.Context(), id, aid, r.Header.Get("Authorization"))
	if err != nil {
		c.writeAttendeeError(w, r, err)
		return
	}
	helpers.WriteJSON(w, http.StatusOK, newAttendeeResponse(attendee))
}

// Update godoc
// @Summary Update an attendee
// @Description Applies a partial update: only fields present in the body change. Authorized for the event creator or the attendee themselves. A changed user_name must remain unique within the event.
// @Tags attendee
// @Accept json
// @Produce json
// @Security BasicToken
// @Param id path string true "Event identifier (8 characters)"
// @Param aid path string true "Attendee identifier (8 characters)"
// @Param body body controllers.UpdateAttendeeRequest true "Fields to change; all optional"
// @Success 200 {object} controllers.AttendeeResponse
// @Failure 401 {object} helpers.ErrorResponse "error.code: unauthorized"
// @Failure 404 {object} helpers.ErrorResponse "error.code: not_found"
// @Failure 409 {object} helpers.ErrorResponse "error.code: conflict"
// @Failure 415 {object} helpers.ErrorResponse "error.code: unsupported_media_type"
// @Failure 500 {object} helpers.ErrorResponse "error.code: internal_error"
// @Router /event/{id}/attendees/{aid} [put]
func (c *AttendeeController) Update(w http.ResponseWriter, r *http.Request) {
	var req UpdateAttendeeRequest
	if !helpers.DecodeAndValidate(w, r, &req) {
		return
	}

	id, aid, ok := attendeePathValues(w, r)
	if !ok {
		return
	}

	attendee, err := c.Service.UpdateAttendee(r.Context(), id, aid, r.Header.Get("Authorization"), req.toUpdate())
	if err != nil {
		c.writeAttendeeError(w, r, err)
		return
	}
	helpers.WriteJSON(w, http.StatusOK, newAttendeeResponse(attendee))
}

// Delete godoc
// @Summary Delete an attendee
// @Description Removes the attendee's participation record. Authorized for the event creator or the attendee themselves.
// @Tags attendee
// @Security BasicToken
// @Param id path string true "Event identifier (8 characters)"
// @Param aid path string true "Attendee identifier (8 characters)"
// @Success 204 "No Content"
// @Failure 401 {object} helpers.ErrorResponse "error.code: unauthorized"
// @Failure 404 {object} helpers.ErrorResponse "error.code: not_found"
// @Failure 500 {object} helpers.ErrorResponse "error.code: internal_error"
// @Router /event/{id}/attendees/{aid} [delete]
func (c *AttendeeController) Delete(w http.ResponseWriter, r *http.Request) {
	id, aid, ok := attendeePathValues(w, r)
	if !ok {
		return
	}

	err := c.Service.DeleteAttendee(r.Context(), id, aid, r.Header.Get("Authorization"))
	if err != nil {
		c.writeAttendeeError(w, r, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

// attendeePathValues extracts and checks both identifiers, writing a 404
// when either cannot name a resource.
func attendeePathValues(w http.ResponseWriter, r *http.Request) (eventID, attendeeID string, ok bool) {
	eventID = r.PathValue("id")
	if !identifierRegex.MatchString(eventID) {
		helpers.WriteJSONError(w, http.StatusNotFound, helpers.ErrCodeNotFound, "event not found")
		return "", "", false
	}
	attendeeID = r.PathValue("aid")
	if !identifierRegex.MatchString(attendeeID) {
		helpers.WriteJSONError(w, http.StatusNotFound, helpers.ErrCodeNotFound, "attendee not found")
		return "", "", false
	}
	return eventID, attendeeID, true
}

func (c *AttendeeController) writeAttendeeError(w http.ResponseWriter, r *http.Request, err error) {
	if errors.Is(err, domain.ErrNotFound) {
		helpers.WriteJSONError(w, http.StatusNotFound, helpers.ErrCodeNotFound, "attendee not found")
		return
	}
	if errors.Is(err, domain.ErrUnauthorized) {
		helpers.WriteJSONError(w, http.StatusUnauthorized, helpers.ErrCodeUnauthorized, "invalid or missing credential")
		return
	}
	if errors.Is(err, domain.ErrDuplicateUserName) {
		helpers.WriteJSONError(w, http.StatusConflict, helpers.ErrCodeConflict, "user_name already taken for this event")
		return
	}
	if errors.Is(err, domain.ErrInvalidInput) {
		helpers.WriteJSONError(w, http.StatusBadRequest, helpers.ErrCodeBadRequest, err.Error())
		return
	}
	c.Logger.ErrorContext(r.Context(), "request failed", "path", r.URL.Path, "method", r.Method, "err", err)
	helpers.WriteJSONError(w, http.StatusInternalServerError, helpers.ErrCodeInternalError, err.Error())
}
