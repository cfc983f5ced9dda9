package models

// Customer is a person who may file complaints.
type Customer struct {
	ID          uint    `gorm:"primaryKey" json:"id"`
	Name        string  `gorm:"size:100;not null" json:"name"`
	Email       string  `gorm:"size:100;not null;unique" json:"email"`
	PhoneNumber *string `gorm:"size:15" json:"phone_number"`
}

// TableName keeps the singular table name used by the schema script.
func (Customer) TableName() string {
	return "customer"
}
