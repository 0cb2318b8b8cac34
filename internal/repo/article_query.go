package repo

import (
	"errors"
	"strings"
)

// Listing defaults.
const (
	DefaultSortBy = "created_at"
	DefaultOrder  = "desc"
)

var (
	// ErrInvalidSortColumn is returned for a sort_by outside the allow-list.
	ErrInvalidSortColumn = errors.New("invalid sort column")
	// ErrInvalidOrder is returned for an order other than asc/desc.
	ErrInvalidOrder = errors.New("invalid order direction")
)

// sortColumns is the allow-list of sort_by values and the SQL expression each
// one orders by. It is the only source of identifiers interpolated into the
// listing query; column names cannot be bound as parameters.
var sortColumns = map[string]string{
	"article_id":    "articles.article_id",
	"title":         "articles.title",
	"topic":         "articles.topic",
	"author":        "articles.author",
	"created_at":    "articles.created_at",
	"votes":         "articles.votes",
	"comment_count": "comment_count",
}

// directions maps a lower-cased order value to its SQL keyword.
var directions = map[string]string{
	"asc":  "ASC",
	"desc": "DESC",
}

// ArticleListQuery is a validated article listing request. The zero value is
// not valid; build one with NewArticleListQuery.
type ArticleListQuery struct {
	sortExpr  string
	direction string
	topic     string
}

// NewArticleListQuery validates sortBy and order against the allow-lists and
// returns a query ready to be rendered. Empty values take the defaults
// (created_at, desc). sort_by is checked before order, so an unknown column
// is reported even when the order is also invalid. topic is kept verbatim and
// only ever bound as a parameter.
func NewArticleListQuery(sortBy, order, topic string) (ArticleListQuery, error) {
	if sortBy == "" {
		sortBy = DefaultSortBy
	}
	expr, ok := sortColumns[sortBy]
	if !ok {
		return ArticleListQuery{}, ErrInvalidSortColumn
	}

	if order == "" {
		order = DefaultOrder
	}
	dir, ok := directions[strings.ToLower(order)]
	if !ok {
		return ArticleListQuery{}, ErrInvalidOrder
	}

	return ArticleListQuery{sortExpr: expr, direction: dir, topic: topic}, nil
}

// Topic returns the topic filter, or "" when none was requested.
func (q ArticleListQuery) Topic() string { return q.topic }

// SQL renders the listing statement and its bound arguments. Placeholders use
// GORM's "?" form and are rewritten per dialect by the driver.
func (q ArticleListQuery) SQL() (string, []any) {
	var b strings.Builder
	var args []any

	b.WriteString(`SELECT articles.article_id, articles.title, articles.topic, articles.author,
	articles.created_at, articles.votes, articles.article_img_url,
	COUNT(comments.comment_id) AS comment_count
FROM articles
LEFT JOIN comments ON comments.article_id = articles.article_id`)

	if q.topic != "" {
		b.WriteString("\nWHERE articles.topic = ?")
		args = append(args, q.topic)
	}

	b.WriteString("\nGROUP BY articles.article_id")
	b.WriteString("\nORDER BY ")
	b.WriteString(q.sortExpr)
	b.WriteString(" ")
	b.WriteString(q.direction)

	return b.String(), args
}
