package http

import (
	"net/http"

	"github.com/gorilla/mux"

	"gympoint-backend/internal/domain"
	"gympoint-backend/internal/security"
	"gympoint-backend/internal/service"
)

// Services bundles everything the HTTP surface depends on.
type Services struct {
	Auth          service.AuthService
	Customers     service.CustomerService
	Catalog       service.CatalogService
	Rentals       service.RentalService
	Inscriptions  service.InscriptionService
	Receipts      service.ReceiptService
	Notifications service.NotificationService
}

// NewRouter wires every endpoint under /api/v1. Everything except login and
// the health check requires a valid staff token; catalog writes and customer
// deactivation additionally require the ADMIN role.
func NewRouter(svcs Services, tokenManager security.TokenManager) http.Handler {
	authHandler := NewAuthHandler(svcs.Auth)
	customerHandler := NewCustomerHandler(svcs.Customers)
	catalogHandler := NewCatalogHandler(svcs.Catalog)
	rentalHandler := NewRentalHandler(svcs.Rentals)
	inscriptionHandler := NewInscriptionHandler(svcs.Inscriptions)
	receiptHandler := NewReceiptHandler(svcs.Receipts)
	notificationHandler := NewNotificationHandler(svcs.Notifications)

	root := mux.NewRouter()
	root.Use(LoggingMiddleware)

	root.HandleFunc("/healthz", func(w http.ResponseWriter, r *http.Request) {
		writeJSON(w, http.StatusOK, map[string]string{"status": "ok"})
	}).Methods(http.MethodGet)

	api := root.PathPrefix("/api/v1").Subrouter()
	api.HandleFunc("/auth/login", authHandler.Login).Methods(http.MethodPost)

	protected := api.NewRoute().Subrouter()
	protected.Use(AuthMiddleware(tokenManager))

	admin := func(h http.HandlerFunc) http.HandlerFunc {
		return RequireRole(h, domain.RoleAdmin)
	}

	// Customers
	protected.HandleFunc("/customers", customerHandler.Create).Methods(http.MethodPost)
	protected.HandleFunc("/customers", customerHandler.List).Methods(http.MethodGet)
	protected.HandleFunc("/customers/by-document/{nationalId}", customerHandler.GetByNationalID).Methods(http.MethodGet)
	protected.HandleFunc("/customers/{id:[0-9]+}", customerHandler.Get).Methods(http.MethodGet)
	protected.HandleFunc("/customers/{id:[0-9]+}", customerHandler.Update).Methods(http.MethodPut)
	protected.HandleFunc("/customers/{id:[0-9]+}", admin(customerHandler.Deactivate)).Methods(http.MethodDelete)
	protected.HandleFunc("/customers/{id:[0-9]+}/receipts", receiptHandler.ListByCustomer).Methods(http.MethodGet)

	// Catalog
	protected.HandleFunc("/equipment", admin(catalogHandler.AddEquipment)).Methods(http.MethodPost)
	protected.HandleFunc("/equipment", catalogHandler.ListEquipment).Methods(http.MethodGet)
	protected.HandleFunc("/equipment/{id:[0-9]+}", catalogHandler.GetEquipment).Methods(http.MethodGet)
	protected.HandleFunc("/equipment/{id:[0-9]+}", admin(catalogHandler.UpdateEquipment)).Methods(http.MethodPut)
	protected.HandleFunc("/plans", catalogHandler.ListPlans).Methods(http.MethodGet)
	protected.HandleFunc("/plans/{id:[0-9]+}", catalogHandler.GetPlan).Methods(http.MethodGet)
	protected.HandleFunc("/instructors", catalogHandler.ListInstructors).Methods(http.MethodGet)
	protected.HandleFunc("/instructors/{id:[0-9]+}/slots", catalogHandler.ListSlots).Methods(http.MethodGet)

	// Rentals
	protected.HandleFunc("/rentals/quote", rentalHandler.Quote).Methods(http.MethodPost)
	protected.HandleFunc("/rentals", rentalHandler.Create).Methods(http.MethodPost)
	protected.HandleFunc("/rentals", rentalHandler.List).Methods(http.MethodGet)
	protected.HandleFunc("/rentals/{id:[0-9]+}", rentalHandler.Get).Methods(http.MethodGet)
	protected.HandleFunc("/rentals/{id:[0-9]+}/cancel", rentalHandler.Cancel).Methods(http.MethodPost)
	protected.HandleFunc("/rentals/{id:[0-9]+}/return", rentalHandler.RegisterReturn).Methods(http.MethodPost)

	// Inscriptions
	protected.HandleFunc("/inscriptions/steps", inscriptionHandler.Steps).Methods(http.MethodGet)
	protected.HandleFunc("/inscriptions", inscriptionHandler.Create).Methods(http.MethodPost)
	protected.HandleFunc("/inscriptions", inscriptionHandler.List).Methods(http.MethodGet)
	protected.HandleFunc("/inscriptions/{id:[0-9]+}", inscriptionHandler.Get).Methods(http.MethodGet)
	protected.HandleFunc("/inscriptions/{id:[0-9]+}/cancel", inscriptionHandler.Cancel).Methods(http.MethodPost)
	protected.HandleFunc("/inscriptions/{id:[0-9]+}/suspend", inscriptionHandler.Suspend).Methods(http.MethodPost)
	protected.HandleFunc("/inscriptions/{id:[0-9]+}/resume", inscriptionHandler.Resume).Methods(http.MethodPost)

	// Notifications
	protected.HandleFunc("/notifications", notificationHandler.List).Methods(http.MethodGet)
	protected.HandleFunc("/notifications/{id:[0-9]+}/read", notificationHandler.MarkAsRead).Methods(http.MethodPost)

	return root
}
