package gorm

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// Tithe is a dated contribution attributed to a member.
type Tithe struct {
	ID        string    `gorm:"column:id;primaryKey;type:uuid"`
	MemberID  string    `gorm:"column:member_id;type:uuid"`
	Amount    float64   `gorm:"column:amount"`
	Date      string    `gorm:"column:date"`
	CreatedAt time.Time `gorm:"column:created_at;autoCreateTime"`

	Member *Member `gorm:"foreignKey:MemberID"`
}

func (Tithe) TableName() string { return "tithes" }

func (t *Tithe) BeforeCreate(tx *gorm.DB) error {
	if t.ID == "" {
		t.ID = uuid.NewString()
	}
	return nil
}

// Offering is an anonymous collection entry per service.
type Offering struct {
	ID          string    `gorm:"column:id;primaryKey;type:uuid"`
	Amount      float64   `gorm:"column:amount"`
	Date        string    `gorm:"column:date"`
	ServiceType *string   `gorm:"column:service_type"`
	CreatedAt   time.Time `gorm:"column:created_at;autoCreateTime"`
}

func (Offering) TableName() string { return "offerings" }

func (o *Offering) BeforeCreate(tx *gorm.DB) error {
	if o.ID == "" {
		o.ID = uuid.NewString()
	}
	return nil
}

// BookstoreSale records a sale from the church bookstore.
type BookstoreSale struct {
	ID        string    `gorm:"column:id;primaryKey;type:uuid"`
	Item      string    `gorm:"column:item"`
	Quantity  int       `gorm:"column:quantity"`
	Amount    float64   `gorm:"column:amount"`
	Date      string    `gorm:"column:date"`
	CreatedAt time.Time `gorm:"column:created_at;autoCreateTime"`
}

func (BookstoreSale) TableName() string { return "bookstore_sales" }

func (b *BookstoreSale) BeforeCreate(tx *gorm.DB) error {
	if b.ID == "" {
		b.ID = uuid.NewString()
	}
	return nil
}

// Loan is borrowed money repaid through generated expense installments.
type Loan struct {
	ID           string    `gorm:"column:id;primaryKey;type:uuid"`
	Description  string    `gorm:"column:description"`
	TotalAmount  float64   `gorm:"column:total_amount"`
	Installments int       `gorm:"column:installments"`
	StartDate    string    `gorm:"column:start_date"`
	CreatedAt    time.Time `gorm:"column:created_at;autoCreateTime"`

	Expenses []Expense `gorm:"foreignKey:LoanID"`
}

func (Loan) TableName() string { return "loans" }

func (l *Loan) BeforeCreate(tx *gorm.DB) error {
	if l.ID == "" {
		l.ID = uuid.NewString()
	}
	return nil
}

// Expense is an outgoing payment. Rows with a non-nil LoanID are loan
// installments and reject direct edits.
type Expense struct {
	ID          string    `gorm:"column:id;primaryKey;type:uuid"`
	Description string    `gorm:"column:description"`
	Category    string    `gorm:"column:category"`
	Amount      float64   `gorm:"column:amount"`
	DueDate     string    `gorm:"column:due_date"`
	Paid        bool      `gorm:"column:paid;default:false"`
	LoanID      *string   `gorm:"column:loan_id;type:uuid"`
	CreatedAt   time.Time `gorm:"column:created_at;autoCreateTime"`
	UpdatedAt   time.Time `gorm:"column:updated_at;autoUpdateTime"`
}

func (Expense) TableName() string { return "expenses" }

func (e *Expense) BeforeCreate(tx *gorm.DB) error {
	if e.ID == "" {
		e.ID = uuid.NewString()
	}
	return nil
}
