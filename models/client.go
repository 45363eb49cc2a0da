package models

import "time"

type Client struct {
	ClientID  string    `json:"clientid" bson:"clientid"`
	Name      string    `json:"name" bson:"name"`
	Surname   string    `json:"surname" bson:"surname"`
	Email     string    `json:"email,omitempty" bson:"email,omitempty"`
	Phone     string    `json:"phone,omitempty" bson:"phone,omitempty"`
	BirthDate string    `json:"birthDate,omitempty" bson:"birth_date,omitempty"`
	Notes     string    `json:"notes,omitempty" bson:"notes,omitempty"`
	AgentID   string    `json:"agentid,omitempty" bson:"agentid,omitempty"`
	Deleted   bool      `json:"-" bson:"deleted,omitempty"`
	CreatedAt time.Time `json:"createdAt" bson:"created_at"`
	UpdatedAt time.Time `json:"updatedAt" bson:"updated_at"`
}

type Agent struct {
	AgentID   string    `json:"agentid" bson:"agentid"`
	UserID    string    `json:"userid,omitempty" bson:"userid,omitempty"`
	Name      string    `json:"name" bson:"name"`
	Surname   string    `json:"surname" bson:"surname"`
	Email     string    `json:"email" bson:"email"`
	Phone     string    `json:"phone,omitempty" bson:"phone,omitempty"`
	Deleted   bool      `json:"-" bson:"deleted,omitempty"`
	CreatedAt time.Time `json:"createdAt" bson:"created_at"`
	UpdatedAt time.Time `json:"updatedAt" bson:"updated_at"`
}

// Company is a service provider referenced from trip events
// (airlines, hotels, cruise operators).
type Company struct {
	CompanyID string    `json:"companyid" bson:"companyid"`
	Name      string    `json:"name" bson:"name"`
	Kind      string    `json:"kind,omitempty" bson:"kind,omitempty"` // airline, hotel, cruise, other
	Website   string    `json:"website,omitempty" bson:"website,omitempty"`
	Phone     string    `json:"phone,omitempty" bson:"phone,omitempty"`
	Deleted   bool      `json:"-" bson:"deleted,omitempty"`
	CreatedAt time.Time `json:"createdAt" bson:"created_at"`
	UpdatedAt time.Time `json:"updatedAt" bson:"updated_at"`
}
