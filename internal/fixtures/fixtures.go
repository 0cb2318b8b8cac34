// Package fixtures embeds the seed datasets used to populate the store for
// tests and local development.
package fixtures

import (
	"embed"
	"encoding/json"
	"fmt"
	"time"
)

// Dataset names accepted by Load.
const (
	Test        = "test"
	Development = "development"
)

//go:embed data/*.json
var files embed.FS

// Topic is a seed topic.
type Topic struct {
	Slug        string `json:"slug"`
	Description string `json:"description"`
	ImgURL      string `json:"img_url"`
}

// User is a seed user.
type User struct {
	Username  string `json:"username"`
	Name      string `json:"name"`
	AvatarURL string `json:"avatar_url"`
}

// Article is a seed article.
type Article struct {
	Title         string    `json:"title"`
	Topic         string    `json:"topic"`
	Author        string    `json:"author"`
	Body          string    `json:"body"`
	CreatedAt     time.Time `json:"created_at"`
	Votes         int       `json:"votes"`
	ArticleImgURL string    `json:"article_img_url"`
}

// Comment is a seed comment. Article is the 1-based position of the parent
// in Dataset.Articles, resolved to a real id at insert time.
type Comment struct {
	Article   int       `json:"article"`
	Body      string    `json:"body"`
	Votes     int       `json:"votes"`
	Author    string    `json:"author"`
	CreatedAt time.Time `json:"created_at"`
}

// Dataset is a complete set of rows to seed.
type Dataset struct {
	Topics   []Topic   `json:"topics"`
	Users    []User    `json:"users"`
	Articles []Article `json:"articles"`
	Comments []Comment `json:"comments"`
}

// Load decodes the named embedded dataset.
func Load(name string) (*Dataset, error) {
	raw, err := files.ReadFile("data/" + name + ".json")
	if err != nil {
		return nil, fmt.Errorf("unknown dataset %q", name)
	}
	var ds Dataset
	if err := json.Unmarshal(raw, &ds); err != nil {
		return nil, fmt.Errorf("decode dataset %q: %w", name, err)
	}
	for i, c := range ds.Comments {
		if c.Article < 1 || c.Article > len(ds.Articles) {
			return nil, fmt.Errorf("dataset %q: comment %d references article %d", name, i, c.Article)
		}
	}
	return &ds, nil
}

// MustLoad is Load that panics, for tests and embedded data known to be valid.
func MustLoad(name string) *Dataset {
	ds, err := Load(name)
	if err != nil {
		panic(err)
	}
	return ds
}
