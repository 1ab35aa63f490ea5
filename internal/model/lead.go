package model

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type LeadStatus string

const (
	LeadStatusNew       LeadStatus = "new"
	LeadStatusContacted LeadStatus = "contacted"
	LeadStatusQualified LeadStatus = "qualified"
	LeadStatusClosed    LeadStatus = "closed"
)

func (s LeadStatus) Valid() bool {
	switch s {
	case LeadStatusNew, LeadStatusContacted, LeadStatusQualified, LeadStatusClosed:
		return true
	}
	return false
}

// Lead is a CRM contact entered by the broker. InterestedProperty is a
// free-text label, deliberately not a foreign key into properties.
type Lead struct {
	ID                 string     `json:"id" gorm:"type:uuid;primaryKey"`
	Name               string     `json:"name" gorm:"not null"`
	Phone              string     `json:"phone" gorm:"not null"`
	Email              *string    `json:"email"`
	Source             string     `json:"source" gorm:"not null"`
	InterestedProperty *string    `json:"interested_property"`
	Notes              *string    `json:"notes" gorm:"type:text"`
	Status             LeadStatus `json:"status" gorm:"not null;default:'new'"`
	CreatedAt          time.Time  `json:"created_at"`
	UpdatedAt          time.Time  `json:"updated_at"`
}

func (l *Lead) BeforeCreate(tx *gorm.DB) error {
	if l.ID == "" {
		l.ID = uuid.NewString()
	}
	return nil
}
