package domain

import "time"

// Favorite is a salon bookmarked by a client.
type Favorite struct {
	ID        string    `json:"id" bson:"_id"`
	OwnerID   string    `json:"-" bson:"owner_id"`
	SalonID   string    `json:"salon_id" bson:"salon_id"`
	SalonName string    `json:"salon_name" bson:"salon_name"`
	Address   string    `json:"address,omitempty" bson:"address,omitempty"`
	Rating    float64   `json:"rating,omitempty" bson:"rating,omitempty"`
	ImageURL  string    `json:"image_url,omitempty" bson:"image_url,omitempty"`
	AddedAt   time.Time `json:"added_at" bson:"added_at"`
}
