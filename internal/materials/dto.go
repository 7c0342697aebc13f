package materials

type CreateMaterialRequest struct {
	Name        string  `json:"name" validate:"required,max=200"`
	Description string  `json:"description"`
	Unit        string  `json:"unit" validate:"omitempty,max=20"`
	UnitPrice   float64 `json:"unitPrice" validate:"gte=0"`
	Stock       int     `json:"stock" validate:"gte=0"`
	MinStock    *int    `json:"minStock,omitempty" validate:"omitempty,gte=0"`
	Supplier    string  `json:"supplier" validate:"omitempty,max=200"`
	Category    string  `json:"category" validate:"omitempty,max=100"`
}

// UpdateMaterialRequest carries a partial update. ArticleNumber is accepted
// but never applied; the code is immutable.
type UpdateMaterialRequest struct {
	ArticleNumber *string  `json:"articleNumber,omitempty"`
	Name          *string  `json:"name,omitempty" validate:"omitempty,max=200"`
	Description   *string  `json:"description,omitempty"`
	Unit          *string  `json:"unit,omitempty" validate:"omitempty,max=20"`
	UnitPrice     *float64 `json:"unitPrice,omitempty" validate:"omitempty,gte=0"`
	Stock         *int     `json:"stock,omitempty" validate:"omitempty,gte=0"`
	MinStock      *int     `json:"minStock,omitempty" validate:"omitempty,gte=0"`
	Supplier      *string  `json:"supplier,omitempty" validate:"omitempty,max=200"`
	Category      *string  `json:"category,omitempty" validate:"omitempty,max=100"`
}

// AdjustStockRequest moves stock up (delivery) or down (usage on a job).
// A zero delta is accepted and leaves the record untouched.
type AdjustStockRequest struct {
	Delta int `json:"delta"`
}
