package domain

import "time"

// PaymentKind identifies the instrument type of a payment method.
type PaymentKind string

const (
	PaymentCard   PaymentKind = "card"
	PaymentPayPal PaymentKind = "paypal"
)

// PaymentMethod is a stored instrument owned by one identity.
// At most one active method per owner has IsDefault set.
type PaymentMethod struct {
	ID         string      `json:"id" bson:"_id"`
	OwnerID    string      `json:"-" bson:"owner_id"`
	Kind       PaymentKind `json:"kind" bson:"kind"`
	Brand      string      `json:"brand,omitempty" bson:"brand,omitempty"`
	Last4      string      `json:"last4,omitempty" bson:"last4,omitempty"`
	HolderName string      `json:"holder_name" bson:"holder_name"`
	ExpMonth   int         `json:"exp_month,omitempty" bson:"exp_month,omitempty"`
	ExpYear    int         `json:"exp_year,omitempty" bson:"exp_year,omitempty"`
	IsDefault  bool        `json:"is_default" bson:"is_default"`
	IsActive   bool        `json:"is_active" bson:"is_active"`
	CreatedAt  time.Time   `json:"created_at" bson:"created_at"`
}
