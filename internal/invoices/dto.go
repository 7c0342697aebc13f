package invoices

import "time"

type InvoiceItemInput struct {
	Description string  `json:"description" validate:"required,max=300"`
	Quantity    float64 `json:"quantity" validate:"required,gt=0"`
	UnitPrice   float64 `json:"unitPrice" validate:"gte=0"`
}

type CreateInvoiceRequest struct {
	CustomerID  int64              `json:"customerId" validate:"required,gt=0"`
	WorkOrderID *int64             `json:"workOrderId,omitempty" validate:"omitempty,gt=0"`
	Status      string             `json:"status" validate:"omitempty,oneof=Concept Verzonden Betaald 'Te laat'"`
	Date        *time.Time         `json:"date,omitempty"`
	DueDate     *time.Time         `json:"dueDate,omitempty"`
	Amount      float64            `json:"amount" validate:"gte=0"`
	Items       []InvoiceItemInput `json:"items" validate:"dive"`
	Notes       string             `json:"notes"`
}

// UpdateInvoiceRequest carries a partial update. InvoiceNumber is accepted
// but never applied.
type UpdateInvoiceRequest struct {
	InvoiceNumber *string            `json:"invoiceNumber,omitempty"`
	CustomerID    *int64             `json:"customerId,omitempty" validate:"omitempty,gt=0"`
	WorkOrderID   *int64             `json:"workOrderId,omitempty" validate:"omitempty,gt=0"`
	Status        *string            `json:"status,omitempty" validate:"omitempty,oneof=Concept Verzonden Betaald 'Te laat'"`
	Date          *time.Time         `json:"date,omitempty"`
	DueDate       *time.Time         `json:"dueDate,omitempty"`
	Amount        *float64           `json:"amount,omitempty" validate:"omitempty,gte=0"`
	Items         []InvoiceItemInput `json:"items,omitempty" validate:"omitempty,dive"`
	Notes         *string            `json:"notes,omitempty"`
}
