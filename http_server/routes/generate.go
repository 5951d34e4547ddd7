package routes

import (
	"github.com/gorilla/mux"

	"github.com/draftforge/draftforge-server/http_server/controllers"
	"github.com/draftforge/draftforge-server/service"
)

func GenerateRoute(router *mux.Router, s service.Service) {
	router.HandleFunc("/api/generate", controllers.Generate(s)).Methods("POST")
	router.HandleFunc("/api/polish", controllers.Polish(s)).Methods("POST")
}
