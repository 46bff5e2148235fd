package model

type Customer struct {
	DTO
	Phone       string  `gorm:"uniqueIndex;not null" json:"phone"`
	Name        string  `json:"name"`
	Street      string  `json:"street"`
	HouseNumber string  `json:"houseNumber"`
	Postcode    string  `json:"postcode"`
	Locality    string  `json:"locality"`
	Email       *string `gorm:"uniqueIndex" json:"email"`
	Password    string  `json:"-"`
	Note        string  `json:"note"`

	OrderCount int     `gorm:"not null;default:0" json:"orderCount"`
	TotalSpent float64 `gorm:"not null;default:0" json:"totalSpent"`

	IsActive bool `gorm:"default:true" json:"isActive"`
}

type Customers []Customer

// CustomerInput is used by the till to create or edit a customer record.
type CustomerInput struct {
	Phone       string  `validate:"required,min=6,max=20" json:"phone"`
	Name        string  `validate:"required,max=100" json:"name"`
	Street      string  `validate:"max=120" json:"street"`
	HouseNumber string  `validate:"max=20" json:"houseNumber"`
	Postcode    string  `validate:"max=10" json:"postcode"`
	Locality    string  `validate:"max=80" json:"locality"`
	Email       *string `validate:"omitempty,email" json:"email"`
	Note        string  `validate:"max=500" json:"note"`
}

type RegisterCustomerInput struct {
	Name        string `validate:"required" json:"name"`
	Email       string `validate:"required,email" json:"email"`
	Phone       string `validate:"required,min=6,max=20" json:"phone"`
	Password    string `validate:"required,min=6" json:"password"`
	Street      string `json:"street"`
	HouseNumber string `json:"houseNumber"`
	Postcode    string `json:"postcode"`
	Locality    string `json:"locality"`
}

type FilterCustomer struct {
	Pagination
	SearchKey string `json:"searchKey" query:"searchKey"`
	Phone     string `json:"phone" query:"phone"`
	Locality  string `json:"locality" query:"locality"`
	Active    *bool  `json:"active" query:"active"`
}

type CustomerLoginInput struct {
	Email    string `validate:"required,email" json:"email"`
	Password string `validate:"required" json:"password"`
}
