package model

import (
	"time"

	"github.com/google/uuid"
	"github.com/gosimple/slug"
	"gorm.io/datatypes"
	"gorm.io/gorm"
)

// Property Status
type PropertyStatus string

const (
	PropertyStatusActive   PropertyStatus = "active"
	PropertyStatusReserved PropertyStatus = "reserved"
	PropertyStatusSold     PropertyStatus = "sold"
)

// PublicStatuses are the only statuses the storefront is allowed to show.
func PublicStatuses() []PropertyStatus {
	return []PropertyStatus{PropertyStatusActive, PropertyStatusReserved, PropertyStatusSold}
}

func (s PropertyStatus) Valid() bool {
	switch s {
	case PropertyStatusActive, PropertyStatusReserved, PropertyStatusSold:
		return true
	}
	return false
}

// PropertySpecs is the structured spec block stored as JSON. Older rows may
// not have one, hence the nullable field on Property.
type PropertySpecs struct {
	Beds    int     `json:"beds"`
	Baths   int     `json:"baths"`
	Size    float64 `json:"size"`
	Parking int     `json:"parking"`
}

type Property struct {
	ID           string                               `json:"id" gorm:"type:uuid;primaryKey"`
	Title        string                               `json:"title" gorm:"not null"`
	Slug         string                               `json:"slug" gorm:"index;not null"`
	PropertyType string                               `json:"property_type" gorm:"not null"`
	Description  string                               `json:"description" gorm:"type:text"`
	Price        float64                              `json:"price" gorm:"not null"`
	City         string                               `json:"city" gorm:"not null"`
	Neighborhood string                               `json:"neighborhood" gorm:"not null"`
	Status       PropertyStatus                       `json:"status" gorm:"not null;default:'active'"`
	Images       datatypes.JSONSlice[string]          `json:"images"`
	Specs        *datatypes.JSONType[PropertySpecs]   `json:"specs"`
	CreatedAt    time.Time                            `json:"created_at"`
	UpdatedAt    time.Time                            `json:"updated_at"`
}

// BeforeCreate assigns the identity and a URL-friendly slug.
func (p *Property) BeforeCreate(tx *gorm.DB) error {
	if p.ID == "" {
		p.ID = uuid.NewString()
	}

	if p.Slug == "" {
		s := slug.Make(p.Title)

		var count int64
		tx.Model(&Property{}).Where("slug = ?", s).Count(&count)
		if count > 0 {
			s = s + "-" + time.Now().Format("20060102")
		}

		p.Slug = s
	}
	return nil
}
