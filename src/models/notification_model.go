package models

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

type Notification struct {
	Id          primitive.ObjectID `json:"_id" bson:"_id,omitempty"`
	Recipient   primitive.ObjectID `json:"recipient" bson:"recipient"`
	Type        NotificationType   `json:"type" bson:"type"`
	RelatedUser primitive.ObjectID `json:"relatedUser,omitempty" bson:"related_user,omitempty"`
	RelatedPost primitive.ObjectID `json:"relatedPost,omitempty" bson:"related_post,omitempty"`
	Read        bool               `json:"read" bson:"read"`
	CreatedAt   time.Time          `bson:"createdAt" json:"createdAt"`
	UpdatedAt   time.Time          `bson:"updatedAt" json:"updatedAt"`
}

type NotificationType string

const (
	NotificationTypeLike               NotificationType = "like"
	NotificationTypeComment            NotificationType = "comment"
	NotificationTypeConnectionAccepted NotificationType = "connectionAccepted"
)

// NotificationDto is a notification with its related user and post populated.
type NotificationDto struct {
	ID          primitive.ObjectID `json:"_id"`
	Recipient   primitive.ObjectID `json:"recipient"`
	Type        NotificationType   `json:"type"`
	Read        bool               `json:"read"`
	CreatedAt   time.Time          `json:"createdAt"`
	UpdatedAt   time.Time          `json:"updatedAt"`
	RelatedUser *UserDto           `json:"relatedUser,omitempty"`
	RelatedPost *PostPreview       `json:"relatedPost,omitempty"`
}
