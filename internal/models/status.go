package models

// Status is the active flag shared by suppliers and customers.
type Status string

const (
	StatusActive   Status = "active"
	StatusInactive Status = "inactive"
)

func (s Status) Valid() bool {
	return s == StatusActive || s == StatusInactive
}

type PurchaseStatus string

const (
	PurchasePending    PurchaseStatus = "pending"
	PurchaseOrdered    PurchaseStatus = "ordered"
	PurchaseProcessing PurchaseStatus = "processing"
	PurchaseCompleted  PurchaseStatus = "completed"
	PurchaseCancelled  PurchaseStatus = "cancelled"
)

func (s PurchaseStatus) Valid() bool {
	switch s {
	case PurchasePending, PurchaseOrdered, PurchaseProcessing, PurchaseCompleted, PurchaseCancelled:
		return true
	}
	return false
}

type OrderStatus string

const (
	OrderPending    OrderStatus = "pending"
	OrderProcessing OrderStatus = "processing"
	OrderShipped    OrderStatus = "shipped"
	OrderCompleted  OrderStatus = "completed"
	OrderDelivered  OrderStatus = "delivered"
	OrderCancelled  OrderStatus = "cancelled"
)

func (s OrderStatus) Valid() bool {
	switch s {
	case OrderPending, OrderProcessing, OrderShipped, OrderCompleted, OrderDelivered, OrderCancelled:
		return true
	}
	return false
}
