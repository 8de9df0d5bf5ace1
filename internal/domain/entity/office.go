package entity

import "time"

// Office represents a medical office that referrals attach to.
// Offices are admin curated; duplicate names are allowed.
type Office struct {
	ID        int       `gorm:"primaryKey;autoIncrement" json:"id"`
	Name      string    `gorm:"type:text;not null" json:"name"`
	CreatedAt time.Time `gorm:"autoCreateTime" json:"created_at"`
	UpdatedAt time.Time `gorm:"autoUpdateTime" json:"updated_at"`
}

func (Office) TableName() string {
	return "offices"
}
