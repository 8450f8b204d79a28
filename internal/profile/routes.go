package profile

import (
	"github.com/gorilla/mux"
)

func RegisterRoutes(router *mux.Router, handler *Handler, authenticate mux.MiddlewareFunc) {
	api := router.PathPrefix("/api/v1/users").Subrouter()
	api.Use(authenticate)

	api.HandleFunc("/me", handler.GetMe).Methods("GET")
	api.HandleFunc("/me", handler.UpdateMe).Methods("PUT")
	api.HandleFunc("/me/cosmic", handler.GetCosmicProfile).Methods("GET")
}
