package model

type Category struct {
	DTO
	Name      string    `gorm:"uniqueIndex;not null" json:"name"`
	Slug      string    `gorm:"uniqueIndex" json:"slug"`
	SortOrder int       `gorm:"not null;default:0" json:"sortOrder"`
	Kind      string    `gorm:"size:20;not null;default:other" json:"kind"`
	Products  []Product `gorm:"foreignKey:CategoryID" json:"products,omitempty"`
}

type Product struct {
	DTO
	CategoryID    uint      `gorm:"index;not null" json:"categoryId"`
	Category      *Category `gorm:"constraint:OnUpdate:CASCADE,OnDelete:CASCADE" json:"category,omitempty"`
	Code          string    `gorm:"size:10" json:"code"`
	Name          string    `gorm:"not null" json:"name"`
	Description   string    `json:"description"`
	Price         float64   `json:"price"`
	Active        bool      `gorm:"not null;default:true" json:"active"`
	ImageUrl      *string   `json:"imageUrl"`
	ImagePublicId *string   `json:"-"`
}

type MenuExtra struct {
	DTO
	Type   string  `gorm:"size:20;index;not null" json:"type"`
	Name   string  `gorm:"not null" json:"name"`
	Price  float64 `json:"price"`
	Active bool    `gorm:"not null;default:true" json:"active"`
}

type CategoryInput struct {
	Name      string `validate:"required,max=80" json:"name"`
	SortOrder int    `validate:"min=0" json:"sortOrder"`
	Kind      string `validate:"required" json:"kind"`
}

type ProductInput struct {
	CategoryID  uint    `validate:"required" json:"categoryId"`
	Code        string  `validate:"max=10" json:"code"`
	Name        string  `validate:"required,max=120" json:"name"`
	Description string  `validate:"max=500" json:"description"`
	Price       float64 `validate:"min=0" json:"price"`
	Active      *bool   `json:"active"`
}

type MenuExtraInput struct {
	Type   string  `validate:"required" json:"type"`
	Name   string  `validate:"required,max=80" json:"name"`
	Price  float64 `validate:"min=0" json:"price"`
	Active *bool   `json:"active"`
}

type FilterProduct struct {
	Pagination
	CategoryID *uint  `json:"categoryId" query:"categoryId"`
	SearchKey  string `json:"searchKey" query:"searchKey"`
	Active     *bool  `json:"active" query:"active"`
}
