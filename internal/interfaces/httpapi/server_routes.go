package httpapi

import "net/http"

func registerSystemRoutes(mux *http.ServeMux, handler *Handler) {
	mux.HandleFunc("GET /healthz", handler.Healthz)
}

func registerCatalogRoutes(mux *http.ServeMux, handler *Handler) {
	mux.HandleFunc("GET /accounts", handler.ListAccounts)
	mux.HandleFunc("POST /accounts", handler.CreateAccount)
	mux.HandleFunc("GET /accounts/{accountID}", handler.GetAccount)
	mux.HandleFunc("PUT /accounts/{accountID}", handler.UpdateAccount)
	mux.HandleFunc("PATCH /accounts/{accountID}", handler.UpdateAccount)
	mux.HandleFunc("DELETE /accounts/{accountID}", handler.DeleteAccount)
}

func registerContactRoutes(mux *http.ServeMux, handler *Handler) {
	mux.HandleFunc("GET /whatsapp-link", handler.GetContactLink)
	mux.HandleFunc("POST /whatsapp-link", handler.SetContactLink)
}

func registerAdminRoutes(mux *http.ServeMux, handler *Handler) {
	mux.HandleFunc("GET /verify-admin/{token}", handler.VerifyAdminToken)
}
