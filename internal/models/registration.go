package models

import (
	"time"

	"gorm.io/gorm"
)

type Registration struct {
	gorm.Model

	FullName            string `gorm:"not null"`
	Email               string `gorm:"uniqueIndex;not null"`
	SimID               string `gorm:"column:sim_id;uniqueIndex;not null"`
	CourseAndUniversity string `gorm:"not null"`

	HasTeam       bool
	IsTeamLead    *bool
	TeamLeadEmail *string
	TeamName      *string `gorm:"uniqueIndex"`

	IsVegetarian   bool
	TelegramHandle string

	RegisteredAt time.Time `gorm:"not null;index"`
}
