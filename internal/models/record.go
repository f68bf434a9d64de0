package models

import (
	"time"

	"github.com/google/uuid"
)

// EspressoRecord is a single brewing session.
type EspressoRecord struct {
	ID             uuid.UUID `json:"id" db:"id"`
	UserID         uuid.UUID `json:"user_id" db:"user_id"`
	BeanID         uuid.UUID `json:"bean_id" db:"bean_id"`
	Machine        string    `json:"machine" db:"machine"`
	Grinder        string    `json:"grinder" db:"grinder"`
	GrindSize      *string   `json:"grind_size" db:"grind_size"`
	Dose           *float64  `json:"dose" db:"dose"`                       // grams
	ExtractionTime *float64  `json:"extraction_time" db:"extraction_time"` // seconds
	YieldAmount    *float64  `json:"yield_amount" db:"yield_amount"`       // grams
	Rating         *int      `json:"rating" db:"rating"`
	Sourness       *int      `json:"sourness" db:"sourness"`
	Bitterness     *int      `json:"bitterness" db:"bitterness"`
	Sweetness      *int      `json:"sweetness" db:"sweetness"`
	Notes          *string   `json:"notes" db:"notes"`
	CreatedAt      time.Time `json:"created_at" db:"created_at"`
}

// RecordInput carries the fields of a new record. Machine and Grinder may be
// omitted when the user has defaults configured.
type RecordInput struct {
	BeanID         uuid.UUID `json:"bean_id"`
	Machine        *string   `json:"machine"`
	Grinder        *string   `json:"grinder"`
	GrindSize      *string   `json:"grind_size"`
	Dose           *float64  `json:"dose"`
	ExtractionTime *float64  `json:"extraction_time"`
	YieldAmount    *float64  `json:"yield_amount"`
	Rating         *int      `json:"rating"`
	Sourness       *int      `json:"sourness"`
	Bitterness     *int      `json:"bitterness"`
	Sweetness      *int      `json:"sweetness"`
	Notes          *string   `json:"notes"`
}

// RecordPatch is a partial update of an EspressoRecord. The bean is fixed at creation.
type RecordPatch struct {
	Machine        Optional[string]  `json:"machine"`
	Grinder        Optional[string]  `json:"grinder"`
	GrindSize      Optional[string]  `json:"grind_size"`
	Dose           Optional[float64] `json:"dose"`
	ExtractionTime Optional[float64] `json:"extraction_time"`
	YieldAmount    Optional[float64] `json:"yield_amount"`
	Rating         Optional[int]     `json:"rating"`
	Sourness       Optional[int]     `json:"sourness"`
	Bitterness     Optional[int]     `json:"bitterness"`
	Sweetness      Optional[int]     `json:"sweetness"`
	Notes          Optional[string]  `json:"notes"`
}

// RecordFilter narrows a record listing. Zero values mean "no filter"; the
// text filters are case-insensitive substring matches.
type RecordFilter struct {
	BeanID      *uuid.UUID
	Machine     string
	Grinder     string
	BeanVariety string
	BeanRoaster string
}
