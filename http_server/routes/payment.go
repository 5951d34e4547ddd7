package routes

import (
	"github.com/gorilla/mux"

	"github.com/draftforge/draftforge-server/http_server/controllers"
	"github.com/draftforge/draftforge-server/service"
)

func PaymentRoute(router *mux.Router, s service.Service, gateway controllers.PaymentGateway) {
	router.HandleFunc("/api/payment", controllers.Payment(s, gateway, &s)).Methods("POST")
	router.HandleFunc("/api/execute-payment", controllers.ExecutePayment(s, gateway, &s)).Methods("POST")
	router.HandleFunc("/api/faucet", controllers.Faucet(s, gateway)).Methods("POST")
}
