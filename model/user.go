package model

import "time"

// User holds per-user bookkeeping owned by this service. Credentials and
// sessions live with the identity provider, not here.
type User struct {
	UserID        string    `bson:"_id" json:"user_id"`
	Name          string    `bson:"name,omitempty" json:"name,omitempty"`
	LastResetDate time.Time `bson:"last_reset_date,omitempty" json:"last_reset_date,omitempty"`
	CreatedAt     time.Time `bson:"created_at" json:"created_at"`
	UpdatedAt     time.Time `bson:"updated_at" json:"updated_at"`
}
