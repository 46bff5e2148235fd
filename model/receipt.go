package model

// ReceiptCounter holds the last bon sequence handed out for one day of one year.
type ReceiptCounter struct {
	Year       int `gorm:"primaryKey;autoIncrement:false" json:"year"`
	DayOfYear  int `gorm:"primaryKey;autoIncrement:false" json:"dayOfYear"`
	LastNumber int `gorm:"not null;default:0" json:"lastNumber"`
}
