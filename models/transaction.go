package models

import (
	"bytes"
	"encoding/json"
	"time"
)

type TransactionType string

const (
	TypeIncome  TransactionType = "income"
	TypeExpense TransactionType = "expense"
)

type Transaction struct {
	ID          uint            `gorm:"primaryKey" json:"id"`
	UserID      uint            `gorm:"not null;index" json:"user_id"`
	Amount      float64         `gorm:"not null" json:"amount"`
	Type        TransactionType `gorm:"not null" json:"type"`
	Description string          `json:"description"`
	Date        time.Time       `gorm:"not null;index" json:"date"`
	CategoryID  *uint           `gorm:"index" json:"category_id"`
	Category    *Category       `gorm:"constraint:OnDelete:SET NULL" json:"-"`
	CreatedAt   time.Time       `json:"created_at"`
	UpdatedAt   time.Time       `json:"updated_at"`
}

// TransactionInput is used for creating transactions. Date is
// optional and defaults to now; CategoryID is optional.
type TransactionInput struct {
	Amount      float64 `json:"amount" form:"amount"`
	Type        string  `json:"type" form:"type"`
	Description string  `json:"description" form:"description"`
	Date        string  `json:"date" form:"date"`
	CategoryID  *uint   `json:"category_id" form:"category_id"`
}

// OptionalID distinguishes "field not supplied" from "explicitly set
// to null" in a JSON patch. Set reports whether the key appeared at
// all; Valid reports whether it carried a non-null value.
type OptionalID struct {
	Set   bool
	Valid bool
	Value uint
}

func (o *OptionalID) UnmarshalJSON(data []byte) error {
	o.Set = true
	if bytes.Equal(data, []byte("null")) {
		return nil
	}
	if err := json.Unmarshal(data, &o.Value); err != nil {
		return err
	}
	o.Valid = true
	return nil
}

// TransactionPatch is a partial update. Nil pointers mean "leave
// untouched"; CategoryID uses the tri-state OptionalID so a patch can
// clear the category without a sentinel value.
type TransactionPatch struct {
	Amount      *float64   `json:"amount"`
	Type        *string    `json:"type"`
	Description *string    `json:"description"`
	Date        *string    `json:"date"`
	CategoryID  OptionalID `json:"category_id"`
}

// TransactionRow is a transaction joined with its category's name and
// color, as listed for an owner.
type TransactionRow struct {
	ID            uint            `json:"id"`
	Amount        float64         `json:"amount"`
	Type          TransactionType `json:"type"`
	Description   string          `json:"description"`
	Date          time.Time       `json:"date"`
	CategoryID    *uint           `json:"category_id"`
	CategoryName  *string         `json:"category_name"`
	CategoryColor *string         `json:"category_color"`
}
