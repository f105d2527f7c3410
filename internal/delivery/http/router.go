package http

import (
	"net/http"

	httpSwagger "github.com/swaggo/http-swagger"

	"notikums/internal/delivery/http/controllers"
	"notikums/internal/delivery/http/helpers"
)

// NewRouter initializes the HTTP router with all application routes
func NewRouter(eventController *controllers.EventController, attendeeController *controllers.AttendeeController) *http.ServeMux {
	mux := http.NewServeMux()

	// Landing page
	mux.HandleFunc("GET /{$}", index)

	// Events
	mux.HandleFunc("GET /event", eventController.List)
	mux.HandleFunc("POST /event", eventController.Create)
	mux.HandleFunc("GET /event/{id}", eventController.Get)
	mux.HandleFunc("PUT /event/{id}", eventController.Update)
	mux.HandleFunc("DELETE /event/{id}", eventController.Delete)

	// Event sub-field projections
	mux.HandleFunc("GET /event/{id}/time", eventController.GetTime)
	mux.HandleFunc("GET /event/{id}/location", eventController.GetLocation)
	mux.HandleFunc("GET /event/{id}/description", eventController.GetDescription)
	mux.HandleFunc("GET /event/{id}/image", eventController.GetImage)

	// Attendees
	mux.HandleFunc("GET /event/{id}/attendees", attendeeController.List)
	mux.HandleFunc("POST /event/{id}/attendees", attendeeController.Register)
	mux.HandleFunc("GET /event/{id}/attendees/{aid}", attendeeController.Get)
	mux.HandleFunc("PUT /event/{id}/attendees/{aid}", attendeeController.Update)
	mux.HandleFunc("DELETE /event/{id}/attendees/{aid}", attendeeController.Delete)

	// Swagger
	mux.Handle("/swagger/", httpSwagger.WrapHandler)

	return mux
}

// indexResponse is the body of the landing endpoint.
type indexResponse struct {
	Service string `json:"service"`
	Status  string `json:"status"`
}

func index(w http.ResponseWriter, r *http.Request) {
	helpers.WriteJSON(w, http.StatusOK, indexResponse{Service: "notikums", Status: "ok"})
}
