package model

type Account struct {
	DTO
	Username     string `gorm:"uniqueIndex;not null" json:"username"`
	Password     string `gorm:"not null" json:"-"`
	RefreshToken string `json:"-"`
	Active       bool   `gorm:"not null;default:true" json:"active"`
	Role         string `json:"role"`
}

type Accounts []Account

type CreateAccountInput struct {
	Username string `validate:"required,min=3,max=50" json:"username"`
	Password string `validate:"required,min=6,max=50" json:"password"`
	Role     string `validate:"required" json:"role"` // ADMIN MANAGER STAFF
}

type FilterAccount struct {
	Pagination
	SearchKey string  `json:"searchKey" query:"searchKey"`
	Active    *bool   `json:"active" query:"active"`
	Role      *string `json:"role" query:"role"`
}

type LoginInput struct {
	Username string `validate:"required" json:"username"`
	Password string `validate:"required" json:"password"`
}

type ActiveAccountInput struct {
	Active bool `json:"active"`
}
