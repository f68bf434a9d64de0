package models

import (
	"time"

	"github.com/google/uuid"
)

// Bean is a batch of coffee beans owned by a user.
type Bean struct {
	ID         uuid.UUID `json:"id" db:"id"`
	UserID     uuid.UUID `json:"user_id" db:"user_id"`
	Variety    string    `json:"variety" db:"variety"`
	Seller     *string   `json:"seller" db:"seller"`
	Roaster    *string   `json:"roaster" db:"roaster"`
	RoastLevel *string   `json:"roast_level" db:"roast_level"`
	CreatedAt  time.Time `json:"created_at" db:"created_at"`
}

// BeanInput carries the fields of a new bean.
type BeanInput struct {
	Variety    string  `json:"variety"`
	Seller     *string `json:"seller"`
	Roaster    *string `json:"roaster"`
	RoastLevel *string `json:"roast_level"`
}

// BeanPatch is a partial update of a Bean.
type BeanPatch struct {
	Variety    Optional[string] `json:"variety"`
	Seller     Optional[string] `json:"seller"`
	Roaster    Optional[string] `json:"roaster"`
	RoastLevel Optional[string] `json:"roast_level"`
}
