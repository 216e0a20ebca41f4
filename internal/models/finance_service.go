package models

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/datatypes"
)

const (
	FinanceCategoryLoan     = "loan"
	FinanceCategoryDocument = "document"
)

// FinanceCategory groups finance products (loan products vs. document
// services).
type FinanceCategory struct {
	ID          uuid.UUID `gorm:"type:uuid;primaryKey" json:"id"`
	Name        string    `gorm:"not null;size:255" json:"name"`
	Type        string    `gorm:"not null;size:20" json:"type"`
	Description string    `gorm:"type:text" json:"description"`
	CreatedAt   time.Time `json:"created_at"`
}

// FinanceService is a finance catalog offering. Loan terms are optional
// since document-type products carry none.
type FinanceService struct {
	ID                uuid.UUID                   `gorm:"type:uuid;primaryKey" json:"id"`
	CategoryID        uuid.UUID                   `gorm:"type:uuid;not null;index" json:"category_id"`
	Name              string                      `gorm:"not null;size:255" json:"name"`
	Description       string                      `gorm:"type:text" json:"description"`
	MinAmount         *float64                    `json:"min_amount,omitempty"`
	MaxAmount         *float64                    `json:"max_amount,omitempty"`
	InterestRate      *float64                    `json:"interest_rate,omitempty"`
	ProcessingFee     *float64                    `json:"processing_fee,omitempty"`
	Duration          *string                     `gorm:"size:100" json:"duration,omitempty"`
	Requirements      datatypes.JSONSlice[string] `json:"requirements"`
	DocumentsRequired datatypes.JSONSlice[string] `json:"documents_required"`
	CreatedAt         time.Time                   `json:"created_at"`
	UpdatedAt         time.Time                   `json:"updated_at"`
	Category          FinanceCategory             `gorm:"foreignKey:CategoryID" json:"category,omitempty"`
}
