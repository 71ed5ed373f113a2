package http

import (
	"net/http"

	"github.com/gorilla/mux"

	"timing-rental-backend/internal/domain"
	"timing-rental-backend/internal/security"
	"timing-rental-backend/internal/service"
)

// Services bundles everything the router needs.
type Services struct {
	Auth         service.AuthService
	Users        service.UserService
	Clients      service.ClientService
	Devices      service.DeviceService
	Products     service.ProductService
	ProductUnits service.ProductUnitService
	ChipTypes    service.ChipTypeService
	Rentals      service.RentalService
}

// NewRouter builds the full route table. Everything except /health and
// /auth/login requires a bearer token; /users additionally requires ADMIN.
func NewRouter(svcs Services, tokens security.TokenManager) *mux.Router {
	r := mux.NewRouter()
	r.Use(RequestIDMiddleware, LoggingMiddleware)

	r.HandleFunc("/health", healthCheck).Methods("GET")

	auth := &authHandler{authSvc: svcs.Auth}
	r.HandleFunc("/auth/login", auth.login).Methods("POST")

	protected := r.PathPrefix("/").Subrouter()
	protected.Use(AuthMiddleware(tokens))

	protected.HandleFunc("/auth/profile", auth.profile).Methods("GET")
	protected.HandleFunc("/auth/password", auth.changePassword).Methods("PATCH")

	users := protected.PathPrefix("/users").Subrouter()
	users.Use(AdminOnlyMiddleware)
	uh := &userHandler{userSvc: svcs.Users}
	users.HandleFunc("", uh.create).Methods("POST")
	users.HandleFunc("", uh.list).Methods("GET")
	users.HandleFunc("/{id}", uh.get).Methods("GET")
	users.HandleFunc("/{id}", uh.update).Methods("PATCH")
	users.HandleFunc("/{id}", uh.deactivate).Methods("DELETE")
	users.HandleFunc("/{id}/password", uh.setPassword).Methods("PATCH")

	ch := &clientHandler{clientSvc: svcs.Clients}
	clients := protected.PathPrefix("/clients").Subrouter()
	clients.HandleFunc("", ch.create).Methods("POST")
	clients.HandleFunc("", ch.list).Methods("GET")
	clients.HandleFunc("/sportmaniacs/{code}", ch.getBySportmaniacsCode).Methods("GET")
	clients.HandleFunc("/{id}", ch.get).Methods("GET")
	clients.HandleFunc("/{id}", ch.update).Methods("PATCH")
	clients.HandleFunc("/{id}", ch.deactivate).Methods("DELETE")
	clients.HandleFunc("/{id}/reactivate", ch.reactivate).Methods("PATCH")

	dh := &deviceHandler{deviceSvc: svcs.Devices}
	devices := protected.PathPrefix("/devices").Subrouter()
	devices.HandleFunc("", dh.create).Methods("POST")
	devices.HandleFunc("", dh.list).Methods("GET")
	devices.HandleFunc("/reader/{serial}", dh.getBySerial(func(r *http.Request, serial string) (*domain.Device, error) {
		return svcs.Devices.GetByReaderSerial(r.Context(), serial)
	})).Methods("GET")
	devices.HandleFunc("/cpu/{serial}", dh.getBySerial(func(r *http.Request, serial string) (*domain.Device, error) {
		return svcs.Devices.GetByCPUSerial(r.Context(), serial)
	})).Methods("GET")
	devices.HandleFunc("/battery/{serial}", dh.getBySerial(func(r *http.Request, serial string) (*domain.Device, error) {
		return svcs.Devices.GetByBatterySerial(r.Context(), serial)
	})).Methods("GET")
	devices.HandleFunc("/{id}", dh.get).Methods("GET")
	devices.HandleFunc("/{id}", dh.update).Methods("PATCH")
	devices.HandleFunc("/{id}", dh.retire).Methods("DELETE")
	devices.HandleFunc("/{id}/manufactoring-status", dh.setManufactoringStatus).Methods("PATCH")
	devices.HandleFunc("/{id}/operational-status", dh.setOperationalStatus).Methods("PATCH")
	devices.HandleFunc("/{id}/owner", dh.assignOwner).Methods("PATCH")

	ph := &productHandler{productSvc: svcs.Products}
	products := protected.PathPrefix("/products").Subrouter()
	products.HandleFunc("", ph.create).Methods("POST")
	products.HandleFunc("", ph.list).Methods("GET")
	products.HandleFunc("/{id}", ph.get).Methods("GET")
	products.HandleFunc("/{id}", ph.update).Methods("PATCH")
	products.HandleFunc("/{id}", ph.deactivate).Methods("DELETE")
	products.HandleFunc("/{id}/reactivate", ph.reactivate).Methods("PATCH")
	products.HandleFunc("/{id}/add-stock", ph.quantityOp(func(r *http.Request, id int64, qty int) (*domain.Product, error) {
		return svcs.Products.AddStock(r.Context(), id, qty)
	})).Methods("PATCH")
	products.HandleFunc("/{id}/retire", ph.quantityOp(func(r *http.Request, id int64, qty int) (*domain.Product, error) {
		return svcs.Products.Retire(r.Context(), id, qty)
	})).Methods("PATCH")
	products.HandleFunc("/{id}/send-to-repair", ph.quantityOp(func(r *http.Request, id int64, qty int) (*domain.Product, error) {
		return svcs.Products.SendToRepair(r.Context(), id, qty)
	})).Methods("PATCH")
	products.HandleFunc("/{id}/mark-repaired", ph.quantityOp(func(r *http.Request, id int64, qty int) (*domain.Product, error) {
		return svcs.Products.MarkRepaired(r.Context(), id, qty)
	})).Methods("PATCH")

	puh := &productUnitHandler{unitSvc: svcs.ProductUnits}
	units := protected.PathPrefix("/product-units").Subrouter()
	units.HandleFunc("", puh.create).Methods("POST")
	units.HandleFunc("", puh.list).Methods("GET")
	units.HandleFunc("/serial/{serial}", puh.getBySerial).Methods("GET")
	units.HandleFunc("/{id}", puh.get).Methods("GET")
	units.HandleFunc("/{id}", puh.update).Methods("PATCH")
	units.HandleFunc("/{id}", puh.deactivate).Methods("DELETE")
	units.HandleFunc("/{id}/status", puh.setStatus).Methods("PATCH")
	units.HandleFunc("/{id}/reactivate", puh.reactivate).Methods("PATCH")

	cth := &chipTypeHandler{chipTypeSvc: svcs.ChipTypes}
	chipTypes := protected.PathPrefix("/chip-types").Subrouter()
	chipTypes.HandleFunc("", cth.create).Methods("POST")
	chipTypes.HandleFunc("", cth.list).Methods("GET")
	chipTypes.HandleFunc("/{id}", cth.get).Methods("GET")
	chipTypes.HandleFunc("/{id}", cth.update).Methods("PATCH")
	chipTypes.HandleFunc("/{id}", cth.delete).Methods("DELETE")
	chipTypes.HandleFunc("/{id}/sequence", cth.uploadSequence).Methods("PUT")
	chipTypes.HandleFunc("/{id}/sequence", cth.sequence).Methods("GET")

	rh := &rentalHandler{rentalSvc: svcs.Rentals}
	rentals := protected.PathPrefix("/rentals").Subrouter()
	rentals.HandleFunc("", rh.create).Methods("POST")
	rentals.HandleFunc("", rh.list).Methods("GET")
	rentals.HandleFunc("/{id}", rh.get).Methods("GET")
	rentals.HandleFunc("/{id}", rh.update).Methods("PATCH")
	rentals.HandleFunc("/{id}/return", rh.returnRental).Methods("POST")
	rentals.HandleFunc("/{id}/cancel", rh.cancel).Methods("POST")
	rentals.HandleFunc("/{id}/chip-sequence", rh.chipSequence).Methods("GET")
	rentals.HandleFunc("/{id}/chip-file/{chipTypeId}", rh.chipFile).Methods("GET")

	return r
}

func healthCheck(w http.ResponseWriter, r *http.Request) {
	respondJSON(w, http.StatusOK, map[string]string{"status": "ok"})
}
