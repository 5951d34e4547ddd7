package routes

import (
	"github.com/gorilla/mux"

	"github.com/draftforge/draftforge-server/http_server/controllers"
	"github.com/draftforge/draftforge-server/service"
)

func GrantRoute(router *mux.Router, s service.Service) {
	router.HandleFunc("/api/grant/message", controllers.GrantMessage(s)).Methods("GET")
	router.HandleFunc("/health", controllers.Health()).Methods("GET")
}
