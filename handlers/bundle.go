// File: handlers/bundle.go
package handlers

// HandlerBundle groups all endpoint handlers into one struct for route
// registration.
type HandlerBundle struct {
	Appointments *AppointmentHandler
	Auth         *AuthHandler
	Users        *UserHandler
	Stylists     *StylistHandler
	Salons       *SalonHandler
	Services     *ServiceHandler
	Storage      *StorageHandler
}
