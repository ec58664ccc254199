package models

import "time"

type NewsArticle struct {
	ID          uint64    `gorm:"primaryKey;autoIncrement" json:"id"`
	ExternalID  *string   `gorm:"type:varchar(100);uniqueIndex" json:"external_id,omitempty"`
	Source      string    `gorm:"type:varchar(60);index;not null" json:"source"`
	Title       string    `gorm:"type:text;not null" json:"title"`
	URL         string    `gorm:"type:text;uniqueIndex;not null" json:"url"`
	Content     string    `gorm:"type:text" json:"content"`
	Summary     *string   `gorm:"type:text" json:"summary,omitempty"`
	PublishedAt time.Time `gorm:"index;not null" json:"published_at"`
	CreatedAt   time.Time `gorm:"autoCreateTime" json:"created_at"`
	UpdatedAt   time.Time `gorm:"autoUpdateTime" json:"updated_at"`

	Teams   []Team   `gorm:"many2many:article_teams" json:"teams,omitempty"`
	Players []Player `gorm:"many2many:article_players" json:"players,omitempty"`
}

func (NewsArticle) TableName() string {
	return "news_articles"
}
