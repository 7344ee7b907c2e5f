package models

import "time"

// Profile extends a doctor with the details shown in the directory.
// UserID is the primary key, so a user has at most one profile row.
type Profile struct {
	UserID         string    `gorm:"type:varchar(36);primaryKey" bson:"-" json:"userId"`
	Specialization string    `bson:"specialization" json:"specialization"`
	Address        string    `bson:"address" json:"address"`
	WorkingHours   string    `bson:"workingHours" json:"workingHours"`
	Phone          string    `bson:"phone" json:"phone"`
	CreatedAt      time.Time `bson:"createdAt" json:"createdAt"`
	UpdatedAt      time.Time `bson:"updatedAt" json:"updatedAt"`
}

// ProfileFields are the user-editable parts of a Profile.
type ProfileFields struct {
	Specialization string
	Address        string
	WorkingHours   string
	Phone          string
}

func (f ProfileFields) Apply(p *Profile) {
	p.Specialization = f.Specialization
	p.Address = f.Address
	p.WorkingHours = f.WorkingHours
	p.Phone = f.Phone
}
