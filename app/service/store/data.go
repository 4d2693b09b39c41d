package store

import (
	"time"

	"gorm.io/datatypes"
)

// CandidateRecord is one persisted screening result. PhoneNumber, Email and
// CurrentLocation hold ciphertext, everything else is plaintext.
type CandidateRecord struct {
	ID                 uint      `gorm:"primaryKey"`
	CreatedAt          time.Time `gorm:"not null"`
	Name               string    `gorm:"not null"`
	PhoneNumber        string    `gorm:"not null"`
	Email              string    `gorm:"not null"`
	CurrentLocation    string    `gorm:"not null"`
	ExperienceYears    int       `gorm:"not null"`
	DesiredPositions   string    `gorm:"not null"`
	TechStack          string    `gorm:"not null"`
	TechnicalResponses datatypes.JSON
}

func (CandidateRecord) TableName() string {
	return "candidates"
}
