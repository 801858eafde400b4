package payload

type CreateProductRequest struct {
	Name        string  `json:"name"        validate:"required,min=1,max=100"`
	Description string  `json:"description" validate:"omitempty,max=500"`
	Price       float64 `json:"price"       validate:"required,gt=0"`
	InStock     int     `json:"in_stock"    validate:"min=0"`
	Category    string  `json:"category"    validate:"omitempty,max=50"`
}

type UpdateProductRequest struct {
	Name        *string  `json:"name"        validate:"omitempty,min=1,max=100"`
	Description *string  `json:"description" validate:"omitempty,max=500"`
	Price       *float64 `json:"price"       validate:"omitempty,gt=0"`
	InStock     *int     `json:"in_stock"    validate:"omitempty,min=0"`
	Category    *string  `json:"category"    validate:"omitempty,max=50"`
}

type ProductResponse struct {
	ID          string  `json:"id"`
	Name        string  `json:"name"`
	Description string  `json:"description,omitempty"`
	Price       float64 `json:"price"`
	InStock     int     `json:"in_stock"`
	Category    string  `json:"category,omitempty"`
}
