package models

import (
	"time"

	"keliva/schedule"
)

// Trip is the travel itinerary sold to a client.
type Trip struct {
	TripID      string                  `json:"tripid" bson:"tripid"`
	Title       string                  `json:"title" bson:"title"`
	Description string                  `json:"description,omitempty" bson:"description,omitempty"`
	ClientID    string                  `json:"clientid,omitempty" bson:"clientid,omitempty"`
	AgentID     string                  `json:"agentid,omitempty" bson:"agentid,omitempty"`
	StartDate   string                  `json:"start_date,omitempty" bson:"start_date,omitempty"`
	EndDate     string                  `json:"end_date,omitempty" bson:"end_date,omitempty"`
	Status      string                  `json:"status" bson:"status"` // Draft/Confirmed
	Published   bool                    `json:"published" bson:"published"`
	CoverImage  string                  `json:"coverImage,omitempty" bson:"cover_image,omitempty"`
	Days        []schedule.ItineraryDay `json:"days" bson:"days"`
	Deleted     bool                    `json:"-" bson:"deleted,omitempty"`
	CreatedAt   time.Time               `json:"createdAt" bson:"created_at"`
	UpdatedAt   time.Time               `json:"updatedAt" bson:"updated_at"`
}
