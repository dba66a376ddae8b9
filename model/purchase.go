package model

// PurchaseEntity represents the purchase table entity
type PurchaseEntity struct {
	ID           uint64 `db:"id" json:"id"`
	CustomerName string `db:"customer_name" json:"name"`
	Email        string `db:"email" json:"email"`
	Phone        string `db:"phone" json:"phone"`
	PostalCode   string `db:"postal_code" json:"cep"`
	HouseNumber  string `db:"house_number" json:"house_no"`
	ProductID    int64  `db:"product_id" json:"product_id"`
	Quantity     int    `db:"quantity" json:"quantity"`
}

// PurchaseRequest carries the raw purchase form fields. ProductID and
// Quantity stay text until the application layer parses them.
type PurchaseRequest struct {
	CustomerName string `json:"name" validate:"required"`
	Email        string `json:"email" validate:"required"`
	Phone        string `json:"phone" validate:"required"`
	PostalCode   string `json:"cep" validate:"required"`
	HouseNumber  string `json:"house_no" validate:"required"`
	ProductID    string `json:"product_id" validate:"required"`
	Quantity     string `json:"quantity" validate:"required"`
}

type PurchaseResponse struct {
	PurchaseID uint64 `json:"purchase_id"`
}
