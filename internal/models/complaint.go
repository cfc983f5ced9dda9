package models

import "time"

// Complaint statuses with behaviour attached. Any other string is stored as-is.
const (
	ComplaintStatusOpen     = "Open"
	ComplaintStatusResolved = "Resolved"
)

// IssueTypes are the suggestions offered by the complaint form.
var IssueTypes = []string{
	"No Connection",
	"Disconnected After Some Time",
	"Low Speed",
	"Unable to Connect",
}

// Complaint is an issue report filed by a customer.
type Complaint struct {
	ID          uint       `gorm:"primaryKey" json:"id"`
	CustomerID  uint       `gorm:"not null" json:"customer_id"`
	Customer    *Customer  `gorm:"foreignKey:CustomerID" json:"-"`
	IssueType   string     `gorm:"size:100;not null" json:"issue_type"`
	Description *string    `gorm:"type:text" json:"description"`
	Status      string     `gorm:"size:50;default:Open" json:"status"`
	CreatedAt   time.Time  `json:"created_at"`
	ResolvedAt  *time.Time `json:"resolved_at"`
}

// TableName keeps the singular table name used by the schema script.
func (Complaint) TableName() string {
	return "complaint"
}

// IsResolved reports whether the complaint currently carries the resolved status.
func (c *Complaint) IsResolved() bool {
	return c.Status == ComplaintStatusResolved
}

// ComplaintView is a complaint joined with the name of the customer who filed it.
type ComplaintView struct {
	ID           uint       `json:"id"`
	CustomerName string     `json:"customer_name"`
	IssueType    string     `json:"issue_type"`
	Status       string     `json:"status"`
	CreatedAt    time.Time  `json:"created_at"`
	ResolvedAt   *time.Time `json:"resolved_at"`
}
