// Package domain defines the persistence models for topics, users, articles
// and comments. These types are mapped with GORM and form the core data layer
// of the news API; the relational store is the only source of truth.
package domain

import "time"

// Topic is a subject articles are filed under. Topics are referenced by
// Article.Topic and are never updated once created.
//
// Fields:
//   - Slug: unique primary key (e.g. "coding").
//   - Description: short human-readable description (required).
//   - ImgURL: optional illustration.
type Topic struct {
	Slug        string `json:"slug"        gorm:"type:varchar(40);primaryKey"`
	Description string `json:"description" gorm:"type:varchar(100);not null"`
	ImgURL      string `json:"img_url"     gorm:"column:img_url;type:varchar(1000)"`
}

// TableName returns the database table name for Topic.
func (Topic) TableName() string { return "topics" }

// User is an author of articles and comments. Users are created by seeding
// only.
type User struct {
	Username  string `json:"username"   gorm:"type:varchar(30);primaryKey"`
	Name      string `json:"name"       gorm:"type:varchar(80)"`
	AvatarURL string `json:"avatar_url" gorm:"column:avatar_url;type:varchar(1000)"`
}

// TableName returns the database table name for User.
func (User) TableName() string { return "users" }

// Article is a piece of content written by a User under a Topic.
//
// Fields:
//   - ArticleID: auto-assigned integer primary key.
//   - Topic: FK to topics.slug.
//   - Author: FK to users.username.
//   - CreatedAt: defaults to creation time.
//   - Votes: additive counter, may go negative.
//   - ArticleImgURL: defaults to a placeholder when omitted on create.
//
// Deleting an article cascades to its comments.
type Article struct {
	ArticleID     int       `json:"article_id"      gorm:"column:article_id;primaryKey;autoIncrement"`
	Title         string    `json:"title"           gorm:"type:varchar(100);not null"`
	Topic         string    `json:"topic"           gorm:"type:varchar(40);not null;index"`
	Author        string    `json:"author"          gorm:"type:varchar(30);not null;index"`
	Body          string    `json:"body"            gorm:"type:text;not null"`
	CreatedAt     time.Time `json:"created_at"      gorm:"index"`
	Votes         int       `json:"votes"           gorm:"not null;default:0"`
	ArticleImgURL string    `json:"article_img_url" gorm:"column:article_img_url;type:varchar(1000)"`

	TopicRef  Topic     `json:"-" gorm:"foreignKey:Topic;references:Slug"`
	AuthorRef User      `json:"-" gorm:"foreignKey:Author;references:Username"`
	Comments  []Comment `json:"-" gorm:"foreignKey:ArticleID;references:ArticleID;constraint:OnUpdate:CASCADE,OnDelete:CASCADE"`
}

// TableName returns the database table name for Article.
func (Article) TableName() string { return "articles" }

// ArticleWithCount is a full article (body included) together with its live
// comment count. It is the shape of single-article responses.
type ArticleWithCount struct {
	Article
	CommentCount int64 `json:"comment_count"`
}

// ArticleSummary is one row of the article listing. It never carries the
// body; CommentCount is computed per request and never persisted.
type ArticleSummary struct {
	ArticleID     int       `json:"article_id"`
	Title         string    `json:"title"`
	Topic         string    `json:"topic"`
	Author        string    `json:"author"`
	CreatedAt     time.Time `json:"created_at"`
	Votes         int       `json:"votes"`
	ArticleImgURL string    `json:"article_img_url"`
	CommentCount  int64     `json:"comment_count"`
}

// Comment is a reply to an article. Comments are removed together with their
// parent article.
type Comment struct {
	CommentID int       `json:"comment_id" gorm:"column:comment_id;primaryKey;autoIncrement"`
	ArticleID int       `json:"article_id" gorm:"column:article_id;not null;index:idx_article_comments,priority:1"`
	Body      string    `json:"body"       gorm:"type:text;not null"`
	Votes     int       `json:"votes"      gorm:"not null;default:0"`
	Author    string    `json:"author"     gorm:"type:varchar(30);not null;index"`
	CreatedAt time.Time `json:"created_at" gorm:"index:idx_article_comments,priority:2"`

	AuthorRef User `json:"-" gorm:"foreignKey:Author;references:Username"`
}

// TableName returns the database table name for Comment.
func (Comment) TableName() string { return "comments" }
