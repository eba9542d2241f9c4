package models

// LineItem is one purchased catalog entry within a transaction.
type LineItem struct {
	ProductID string  `json:"product_id"`
	Price     float64 `json:"price"`
	Quantity  int     `json:"quantity"`
	Canceled  bool    `json:"canceled,omitempty"`
}

func (li *LineItem) Subtotal() float64 {
	return li.Price * float64(li.Quantity)
}

// Refund is an optional sub-record attached to a transaction.
// RefundAmount is derived from the pre-cancellation total.
type Refund struct {
	TransactionID string  `json:"transaction_id"`
	RefundAmount  float64 `json:"refund_amount"`
	RefundMethod  string  `json:"refund_method"`
	Timestamp     string  `json:"timestamp"`
}

// Transaction is the wire record published to the ingestion stream.
// CancelItem, when set, points at the canceled entry of Items.
type Transaction struct {
	StoreID       string      `json:"store_id"`
	City          string      `json:"city"`
	TransactionID string      `json:"transaction_id"`
	Timestamp     string      `json:"timestamp"`
	Items         []*LineItem `json:"items"`
	TotalAmount   float64     `json:"total_amount"`
	PaymentMethod string      `json:"payment_method"`
	Refund        *Refund     `json:"refund"`
	CancelItem    *LineItem   `json:"cancel_item"`
}
