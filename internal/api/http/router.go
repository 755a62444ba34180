package http

import (
	"net/http"

	"github.com/gorilla/mux"

	"desqworx-backend/internal/security"
)

// Handlers groups everything the router needs.
type Handlers struct {
	Auth       *AuthHandler
	Company    *CompanyHandler
	Credit     *CreditHandler
	Employee   *EmployeeHandler
	Attendance *AttendanceHandler
	Booking    *BookingHandler
	Dashboard  *DashboardHandler
	Visitor    *VisitorHandler
}

// NewRouter wires all routes. Everything under /api/v1 except login and
// health requires a valid access token.
func NewRouter(h Handlers, tokenManager security.TokenManager) *mux.Router {
	router := mux.NewRouter()

	router.HandleFunc("/healthz", func(w http.ResponseWriter, r *http.Request) {
		respondData(w, http.StatusOK, map[string]string{"status": "ok"})
	}).Methods("GET")

	api := router.PathPrefix("/api/v1").Subrouter()
	api.HandleFunc("/auth/login", h.Auth.Login).Methods("POST")

	protected := api.NewRoute().Subrouter()
	protected.Use(AuthMiddleware(tokenManager))

	// Companies
	protected.HandleFunc("/companies", h.Company.Create).Methods("POST")
	protected.HandleFunc("/companies", h.Company.List).Methods("GET")
	protected.HandleFunc("/companies/{id}", h.Company.Get).Methods("GET")
	protected.HandleFunc("/companies/{id}", h.Company.Update).Methods("PUT")
	protected.HandleFunc("/companies/{id}", h.Company.Delete).Methods("DELETE")

	// Credits
	protected.HandleFunc("/companies/{id}/credits", h.Credit.Balance).Methods("GET")
	protected.HandleFunc("/companies/{id}/credits", h.Credit.Set).Methods("PUT")
	protected.HandleFunc("/companies/{id}/credits/add", h.Credit.Add).Methods("POST")
	protected.HandleFunc("/companies/{id}/credits/deduct", h.Credit.Deduct).Methods("POST")
	protected.HandleFunc("/companies/{id}/credits/history", h.Credit.History).Methods("GET")

	// Employees
	protected.HandleFunc("/employees", h.Employee.Create).Methods("POST")
	protected.HandleFunc("/employees/{id}", h.Employee.Get).Methods("GET")
	protected.HandleFunc("/employees/{id}/status", h.Employee.SetStatus).Methods("PUT")
	protected.HandleFunc("/companies/{id}/employees", h.Employee.ListByCompany).Methods("GET")

	// Attendance
	protected.HandleFunc("/attendance/mark", h.Attendance.Mark).Methods("POST")
	protected.HandleFunc("/employees/{id}/attendance", h.Attendance.History).Methods("GET")
	protected.HandleFunc("/attendance/{id}/changes", h.Attendance.Changes).Methods("GET")

	// Seat bookings
	protected.HandleFunc("/bookings", h.Booking.Create).Methods("POST")
	protected.HandleFunc("/bookings/{id}/cancel", h.Booking.Cancel).Methods("POST")
	protected.HandleFunc("/companies/{id}/bookings", h.Booking.ListByCompany).Methods("GET")
	protected.HandleFunc("/users/{id}/bookings", h.Booking.ListByUser).Methods("GET")

	// Dashboard
	protected.HandleFunc("/dashboard/system", h.Dashboard.SystemRollup).Methods("GET")
	protected.HandleFunc("/dashboard/companies/{id}", h.Dashboard.CompanyRollup).Methods("GET")

	// Visitors
	protected.HandleFunc("/visitors", h.Visitor.Create).Methods("POST")
	protected.HandleFunc("/visitors", h.Visitor.List).Methods("GET")
	protected.HandleFunc("/visitors/{id}", h.Visitor.Get).Methods("GET")
	protected.HandleFunc("/visitors/{id}", h.Visitor.Update).Methods("PUT")
	protected.HandleFunc("/visitors/{id}", h.Visitor.Delete).Methods("DELETE")

	// Profile (self-service)
	protected.HandleFunc("/profile", h.Auth.Profile).Methods("GET")
	protected.HandleFunc("/profile", h.Auth.UpdateProfile).Methods("PUT")
	protected.HandleFunc("/profile/password", h.Auth.ChangePassword).Methods("PUT")

	return router
}
