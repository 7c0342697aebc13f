package customers

type CreateCustomerRequest struct {
	Name       string `json:"name" validate:"required,max=200"`
	Email      string `json:"email" validate:"omitempty,email"`
	Phone      string `json:"phone" validate:"omitempty,max=50"`
	Address    string `json:"address" validate:"omitempty,max=200"`
	PostalCode string `json:"postalCode" validate:"omitempty,max=20"`
	City       string `json:"city" validate:"omitempty,max=100"`
	Status     string `json:"status" validate:"omitempty,oneof=Actief Inactief"`
	Notes      string `json:"notes"`
}

// UpdateCustomerRequest carries a partial update. CustomerNumber is accepted
// so clients can echo the full record back, but it is never applied.
type UpdateCustomerRequest struct {
	CustomerNumber *string `json:"customerNumber,omitempty"`
	Name           *string `json:"name,omitempty" validate:"omitempty,max=200"`
	Email          *string `json:"email,omitempty" validate:"omitempty,email"`
	Phone          *string `json:"phone,omitempty" validate:"omitempty,max=50"`
	Address        *string `json:"address,omitempty" validate:"omitempty,max=200"`
	PostalCode     *string `json:"postalCode,omitempty" validate:"omitempty,max=20"`
	City           *string `json:"city,omitempty" validate:"omitempty,max=100"`
	Status         *string `json:"status,omitempty" validate:"omitempty,oneof=Actief Inactief"`
	Notes          *string `json:"notes,omitempty"`
}
