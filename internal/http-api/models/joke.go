package models

import "time"

type Joke struct {
	ID        int64     `json:"id" gorm:"primaryKey;autoIncrement"`
	Setup     string    `json:"setup" gorm:"not null"`
	Punchline string    `json:"punchline" gorm:"not null"`
	UserID    string    `json:"user_id" gorm:"type:uuid;not null;index"` // author, fixed at creation
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`

	// Associations
	User    User     `json:"user,omitempty" gorm:"foreignKey:UserID;constraint:OnDelete:CASCADE;"`
	Ratings []Rating `json:"ratings,omitempty" gorm:"foreignKey:JokeID"`
}

func (Joke) TableName() string {
	return "jokes"
}
