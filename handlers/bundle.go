package handlers

// HandlerBundle aggregates the handler groups the route registrar wires up.
type HandlerBundle struct {
	Booking  *BookingHandler
	Payment  *PaymentHandler
	Activity *ActivityHandler
	Admin    *AdminHandler
}
