package http_server

import (
	"fmt"
	"net/http"

	gorillaHandlers "github.com/gorilla/handlers"
	"github.com/gorilla/mux"

	"github.com/draftforge/draftforge-server/config"
	contractHandlers "github.com/draftforge/draftforge-server/contracts/handlers"
	"github.com/draftforge/draftforge-server/http_server/routes"
	"github.com/draftforge/draftforge-server/service"
)

func HandleRequests(s service.Service, gateway *contractHandlers.ChainGateway) error {
	router := mux.NewRouter().StrictSlash(true)
	routes.GenerateRoute(router, s)
	routes.PaymentRoute(router, s, gateway)
	routes.GrantRoute(router, s)

	cors := gorillaHandlers.CORS(
		gorillaHandlers.AllowedOrigins(config.CORSOrigins()),
		gorillaHandlers.AllowedMethods([]string{"GET", "POST", "OPTIONS"}),
		gorillaHandlers.AllowedHeaders([]string{"Content-Type", "Authorization"}),
	)

	port := config.Get("HTTP_SERVER_PORT", "8080")
	s.Log.Infow("server listening", "port", port)
	return http.ListenAndServe(fmt.Sprintf(":%v", port), cors(router))
}
