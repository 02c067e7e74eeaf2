package entity

import "time"

// OrderStatus is one stage of the import pipeline. Admins may set any
// stage at any time; progression is not enforced.
type OrderStatus string

const (
	StatusConfirmed       OrderStatus = "confirmed"
	StatusPaymentReceived OrderStatus = "payment_received"
	StatusSourcing        OrderStatus = "sourcing"
	StatusPortChina       OrderStatus = "port_china"
	StatusOceanFreight    OrderStatus = "ocean_freight"
	StatusTemaPort        OrderStatus = "tema_port"
	StatusCustoms         OrderStatus = "customs"
	StatusReady           OrderStatus = "ready"
	StatusDelivered       OrderStatus = "delivered"
)

// OrderStatuses lists the pipeline stages in fulfillment order.
var OrderStatuses = []OrderStatus{
	StatusConfirmed,
	StatusPaymentReceived,
	StatusSourcing,
	StatusPortChina,
	StatusOceanFreight,
	StatusTemaPort,
	StatusCustoms,
	StatusReady,
	StatusDelivered,
}

var statusLabels = map[OrderStatus]string{
	StatusConfirmed:       "Order Confirmed",
	StatusPaymentReceived: "Payment Received",
	StatusSourcing:        "Sourcing in China",
	StatusPortChina:       "Port Clearance (China)",
	StatusOceanFreight:    "Ocean Freight",
	StatusTemaPort:        "Arrival at Tema Port",
	StatusCustoms:         "Ghana Customs & Duties",
	StatusReady:           "Ready for Collection",
	StatusDelivered:       "Delivered",
}

func (s OrderStatus) IsValid() bool {
	_, ok := statusLabels[s]
	return ok
}

// Label returns the customer-facing name of the stage.
func (s OrderStatus) Label() string {
	return statusLabels[s]
}

// Index returns the position of the stage in the pipeline, or -1.
func (s OrderStatus) Index() int {
	for i, st := range OrderStatuses {
		if st == s {
			return i
		}
	}
	return -1
}

type TrackingStep struct {
	Step   string `json:"step" firestore:"step"`
	Done   bool   `json:"done" firestore:"done"`
	Active bool   `json:"active" firestore:"active"`
	Date   string `json:"date" firestore:"date"`
}

// Order ID doubles as the public tracking code (e.g. "ACG-2024-001"),
// so it is caller-supplied rather than store-generated.
type Order struct {
	ID        string         `json:"id" firestore:"-"`
	Customer  string         `json:"customer" firestore:"customer"`
	Email     string         `json:"email" firestore:"email"`
	Phone     string         `json:"phone" firestore:"phone"`
	Item      string         `json:"item" firestore:"item"`
	Type      string         `json:"type" firestore:"type"`
	Amount    float64        `json:"amount" firestore:"amount"`
	Status    OrderStatus    `json:"status" firestore:"status"`
	Date      string         `json:"date" firestore:"date"`
	Tracking  []TrackingStep `json:"tracking" firestore:"tracking"`
	CreatedAt time.Time      `json:"createdAt,omitempty" firestore:"createdAt"`
}

// DeriveTracking rebuilds the tracking timeline from the order's status.
// Stages before the current one are done, the current one is active, and
// dates already recorded for a stage are kept.
func (o *Order) DeriveTracking() {
	cur := o.Status.Index()
	if cur < 0 {
		return
	}

	prev := make(map[string]string, len(o.Tracking))
	for _, step := range o.Tracking {
		prev[step.Step] = step.Date
	}

	steps := make([]TrackingStep, len(OrderStatuses))
	for i, st := range OrderStatuses {
		steps[i] = TrackingStep{
			Step:   st.Label(),
			Done:   i < cur,
			Active: i == cur,
			Date:   prev[st.Label()],
		}
	}
	o.Tracking = steps
}
