package db_models

import "github.com/google/uuid"

type Camp struct {
	BaseModel
	Name     string     `gorm:"uniqueIndex;not null" json:"name"`
	LeaderID *uuid.UUID `gorm:"index" json:"leader_id"`
}
