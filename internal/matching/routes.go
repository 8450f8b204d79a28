package matching

import (
	"github.com/gorilla/mux"
)

func RegisterRoutes(router *mux.Router, handler *Handler, authenticate mux.MiddlewareFunc) {
	api := router.PathPrefix("/api/v1/matches").Subrouter()

	// Admin trigger (secret-guarded, no user auth)
	api.HandleFunc("/generate", handler.GenerateMatches).Methods("POST")

	// Authenticated read path
	me := api.NewRoute().Subrouter()
	me.Use(authenticate)
	me.HandleFunc("/me", handler.GetMyMatch).Methods("GET")
}
