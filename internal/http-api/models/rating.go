package models

import "time"

type Rating struct {
	ID     int64  `json:"id" gorm:"primaryKey;autoIncrement"`
	UserID string `json:"user_id" gorm:"type:uuid;not null;uniqueIndex:idx_ratings_user_joke"`
	JokeID int64  `json:"joke_id" gorm:"not null;uniqueIndex:idx_ratings_user_joke;index"`
	// The unique index on (user_id, joke_id) is what keeps concurrent
	// first-time ratings from ever producing two rows for the same pair.
	Value     int       `json:"value" gorm:"not null;check:value >= 1 AND value <= 4"`
	CreatedAt time.Time `json:"created_at" gorm:"autoCreateTime"`
	UpdatedAt time.Time `json:"updated_at" gorm:"autoUpdateTime"`

	// Associations
	User User `json:"user,omitempty" gorm:"foreignKey:UserID;constraint:OnDelete:CASCADE;"`
	Joke Joke `json:"joke,omitempty" gorm:"foreignKey:JokeID;constraint:OnDelete:CASCADE;"`
}

func (Rating) TableName() string {
	return "ratings"
}
