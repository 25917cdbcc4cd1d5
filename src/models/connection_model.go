package models

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// Connection is a connection request between two users. Records are never
// deleted; terminal statuses double as an audit trail.
type Connection struct {
	Id        primitive.ObjectID `json:"_id" bson:"_id,omitempty"`
	Sender    primitive.ObjectID `json:"sender" bson:"sender"`
	Recipient primitive.ObjectID `json:"recipient" bson:"recipient"`
	Status    ConnectionStatus   `json:"status" bson:"status"`
	PairKey   string             `json:"-" bson:"pairKey"`
	// Applied is set once both connection-set writes of an acceptance are durable.
	Applied bool `json:"-" bson:"applied"`
	// Severed is set when the pair disconnects after this acceptance.
	Severed bool `json:"-" bson:"severed"`
	// Announced is set once the sender has been told of the acceptance.
	Announced bool      `json:"-" bson:"announced"`
	CreatedAt time.Time `bson:"createdAt" json:"createdAt"`
	UpdatedAt time.Time `bson:"updatedAt" json:"updatedAt"`
}

type ConnectionStatus string

const (
	ConnectionStatusPending  ConnectionStatus = "pending"
	ConnectionStatusAccepted ConnectionStatus = "accepted"
	ConnectionStatusRejected ConnectionStatus = "rejected"
)

// IsTerminal reports whether no further transition is allowed from s.
func (s ConnectionStatus) IsTerminal() bool {
	return s == ConnectionStatusAccepted || s == ConnectionStatusRejected
}

// PairKey identifies the unordered pair {a, b}.
func PairKey(a, b primitive.ObjectID) string {
	ah, bh := a.Hex(), b.Hex()
	if ah > bh {
		ah, bh = bh, ah
	}
	return ah + ":" + bh
}

// ConnectionRequestDto is a pending request with its sender populated.
type ConnectionRequestDto struct {
	ID        primitive.ObjectID `json:"_id"`
	Sender    ConnectedUserDto   `json:"sender"`
	Recipient primitive.ObjectID `json:"recipient"`
	Status    ConnectionStatus   `json:"status"`
	CreatedAt time.Time          `json:"createdAt"`
	UpdatedAt time.Time          `json:"updatedAt"`
}

// ConnectedUserDto is a user summary together with its connection set. It is
// the sender shown on a pending request and the entries of a connection list.
type ConnectedUserDto struct {
	UserDto     `bson:",inline"`
	Connections []primitive.ObjectID `json:"connections" bson:"connections"`
}

// ConnectedSummary returns the user's summary with its connection set.
func (u *User) ConnectedSummary() ConnectedUserDto {
	conns := u.Connections
	if conns == nil {
		conns = []primitive.ObjectID{}
	}
	return ConnectedUserDto{UserDto: u.Summary(), Connections: conns}
}
