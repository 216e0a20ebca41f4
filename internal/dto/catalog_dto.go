package dto

import (
	"time"

	"github.com/google/uuid"
)

type CourseRequest struct {
	Name      string    `json:"name" validate:"required,max=255"`
	Fees      float64   `json:"fees" validate:"gte=0"`
	Type      string    `json:"type" validate:"required,oneof=Domestic Abroad"`
	Mode      string    `json:"mode" validate:"required,oneof=Online Offline"`
	StartDate time.Time `json:"start_date"`
}

type GuidanceServiceRequest struct {
	Name        string  `json:"name" validate:"required,max=255"`
	Description string  `json:"description"`
	Category    string  `json:"category" validate:"required,oneof=career_counselling college_admission"`
	Location    *string `json:"location"`
	Fee         float64 `json:"fee" validate:"gte=0"`
	MinStudents *int    `json:"min_students"`
}

type FinanceCategoryRequest struct {
	Name        string `json:"name" validate:"required,max=255"`
	Type        string `json:"type" validate:"required,oneof=loan document"`
	Description string `json:"description"`
}

type FinanceServiceRequest struct {
	CategoryID        uuid.UUID `json:"category_id" validate:"required"`
	Name              string    `json:"name" validate:"required,max=255"`
	Description       string    `json:"description"`
	MinAmount         *float64  `json:"min_amount"`
	MaxAmount         *float64  `json:"max_amount"`
	InterestRate      *float64  `json:"interest_rate"`
	ProcessingFee     *float64  `json:"processing_fee"`
	Duration          *string   `json:"duration"`
	Requirements      []string  `json:"requirements"`
	DocumentsRequired []string  `json:"documents_required"`
}

type FAQRequest struct {
	Question string `json:"question" validate:"required"`
	Answer   string `json:"answer" validate:"required"`
	Section  string `json:"section" validate:"required,oneof=home educare eduguide finance support"`
	Order    int    `json:"order" validate:"gte=0"`
}
