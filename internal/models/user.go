package models

import "time"

const (
	UserTypeDoctor = "doctor"
	UserTypeNormal = "normal"
)

type User struct {
	ID        string    `gorm:"type:varchar(36);primaryKey" bson:"_id" json:"id"`
	Name      string    `gorm:"not null" bson:"name" json:"name"`
	Email     string    `gorm:"uniqueIndex;not null" bson:"email" json:"email"`
	Password  string    `gorm:"not null" bson:"password" json:"-"` // bcrypt hash, never serialized
	UserType  string    `gorm:"not null;index" bson:"userType" json:"userType"`
	Latitude  *float64  `bson:"latitude,omitempty" json:"latitude"`
	Longitude *float64  `bson:"longitude,omitempty" json:"longitude"`
	CreatedAt time.Time `bson:"createdAt" json:"createdAt"`
	UpdatedAt time.Time `bson:"updatedAt" json:"updatedAt"`

	// Only doctors carry a profile.
	Profile *Profile `gorm:"foreignKey:UserID;constraint:OnDelete:CASCADE" bson:"profile,omitempty" json:"profile"`
}

func (u *User) IsDoctor() bool { return u.UserType == UserTypeDoctor }

// Location is a point picked on the client's map.
type Location struct {
	Latitude  float64 `json:"latitude"`
	Longitude float64 `json:"longitude"`
}
