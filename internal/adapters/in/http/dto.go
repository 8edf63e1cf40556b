package http

// Error is the JSON body returned for every failed request.
type Error struct {
	Code    int    `json:"code"`
	Message string `json:"message"`
}

// CreateOrderRequest is the body of POST /api/v1/orders.
// Amounts are in minor currency units. Each schedule entry spawns one
// delivery for the given date and slot.
type CreateOrderRequest struct {
	Items    []OrderItemRequest     `json:"items"`
	Schedule []ScheduleEntryRequest `json:"schedule"`
}

// OrderItemRequest is one order line at checkout.
type OrderItemRequest struct {
	ProductID string `json:"product_id"`
	Name      string `json:"name"`
	Quantity  int    `json:"quantity"`
	UnitPrice int64  `json:"unit_price"`
}

// ScheduleEntryRequest names one fulfillment occurrence. Date is "YYYY-MM-DD".
type ScheduleEntryRequest struct {
	Date string `json:"date"`
	Slot string `json:"slot"`
}

// CreateOrderResponse returns the identifier of the created order.
type CreateOrderResponse struct {
	ID string `json:"id"`
}

// CreateDriverRequest is the body of POST /api/v1/drivers.
type CreateDriverRequest struct {
	Name     string `json:"name"`
	Phone    string `json:"phone"`
	Vehicle  string `json:"vehicle"`
	Capacity int    `json:"capacity"`
}

// CreateDriverResponse returns the identifier of the created driver.
type CreateDriverResponse struct {
	ID string `json:"id"`
}

// CreateZoneRequest is the body of POST /api/v1/zones.
type CreateZoneRequest struct {
	Name string `json:"name"`
}

// CreateZoneResponse returns the identifier of the created zone.
type CreateZoneResponse struct {
	ID string `json:"id"`
}

// CreateRouteRequest is the body of POST /api/v1/routes.
// EstimatedTime is in minutes; MaxDeliveries is the per-date ceiling of
// active deliveries the route accepts.
type CreateRouteRequest struct {
	ZoneID        string `json:"zone_id"`
	Name          string `json:"name"`
	EstimatedTime int    `json:"estimated_time"`
	MaxDeliveries int    `json:"max_deliveries"`
}

// CreateRouteResponse returns the identifier of the created route.
type CreateRouteResponse struct {
	ID string `json:"id"`
}

// AssignDriverRequest is the body of POST /api/v1/deliveries/:id/assign.
// RouteID is optional; when empty the delivery keeps its current route.
type AssignDriverRequest struct {
	DriverID string `json:"driver_id"`
	RouteID  string `json:"route_id,omitempty"`
}

// AdvanceDeliveryRequest is the body of POST /api/v1/deliveries/:id/status.
type AdvanceDeliveryRequest struct {
	Status string `json:"status"`
	Notes  string `json:"notes,omitempty"`
}

// DeliveryResponse is one active delivery in GET /api/v1/deliveries/active.
type DeliveryResponse struct {
	ID       string  `json:"id"`
	OrderID  string  `json:"order_id"`
	DriverID *string `json:"driver_id,omitempty"`
	Date     string  `json:"date"`
	Slot     string  `json:"slot"`
	Status   string  `json:"status"`
}

// DriverResponse is one available driver in GET /api/v1/drivers/available.
type DriverResponse struct {
	ID       string `json:"id"`
	Name     string `json:"name"`
	Phone    string `json:"phone"`
	Vehicle  string `json:"vehicle"`
	Capacity int    `json:"capacity"`
}
