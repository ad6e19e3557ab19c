package models

import (
	"time"

	"gorm.io/gorm"
)

type ProjectSubmission struct {
	gorm.Model

	ProjectTitle     string `gorm:"not null"`
	TeamName         string `gorm:"uniqueIndex;not null"`
	TeamMembers      string `gorm:"type:text;not null"`
	ProblemStatement string `gorm:"not null"`
	DemoVideoURL     string `gorm:"not null"`
	RepoURL          string `gorm:"not null"`
	PresentationURL  string `gorm:"not null"`

	SubmittedAt time.Time `gorm:"not null;index"`
}
