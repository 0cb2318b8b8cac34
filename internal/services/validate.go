package services

import (
	"bytes"
	"encoding/json"
	"math"
	"regexp"
	"strconv"
	"strings"

	"golang.org/x/text/unicode/norm"
)

var (
	digitsRe      = regexp.MustCompile(`^[0-9]+$`)
	signedDigitRe = regexp.MustCompile(`^[+-]?[0-9]+$`)
)

// ParseArticleID validates a path article id. Any string of decimal digits
// is well-formed. Zero and values beyond the id column range parse to 0,
// which no row carries, so lookups report the article as not found.
func ParseArticleID(raw string) (int, error) { return parseID(raw, ErrInvalidArticleID) }

// ParseCommentID validates a path comment id like ParseArticleID.
func ParseCommentID(raw string) (int, error) { return parseID(raw, ErrInvalidCommentID) }

func parseID(raw string, invalid error) (int, error) {
	if !digitsRe.MatchString(raw) {
		return 0, invalid
	}
	n, err := strconv.ParseInt(raw, 10, 32)
	if err != nil {
		return 0, nil
	}
	return int(n), nil
}

// ParseIncVotes interprets the raw inc_votes member of a vote payload.
// Absent or null yields ErrMissingIncVotes. A JSON integer, or a string
// holding an optionally signed decimal integer, is accepted; anything else
// (floats, booleans, objects, out of range values) yields ErrInvalidIncVotes.
// Zero and negative deltas are valid.
func ParseIncVotes(raw json.RawMessage) (int, error) {
	raw = bytes.TrimSpace(raw)
	if len(raw) == 0 || bytes.Equal(raw, []byte("null")) {
		return 0, ErrMissingIncVotes
	}

	dec := json.NewDecoder(bytes.NewReader(raw))
	dec.UseNumber()
	var v any
	if err := dec.Decode(&v); err != nil {
		return 0, ErrInvalidIncVotes
	}

	var s string
	switch t := v.(type) {
	case json.Number:
		s = t.String()
	case string:
		s = strings.TrimSpace(t)
	default:
		return 0, ErrInvalidIncVotes
	}
	if !signedDigitRe.MatchString(s) {
		return 0, ErrInvalidIncVotes
	}
	n, err := strconv.ParseInt(s, 10, 64)
	if err != nil || n < math.MinInt32 || n > math.MaxInt32 {
		return 0, ErrInvalidIncVotes
	}
	return int(n), nil
}

// NewCommentInput is the payload for creating a comment.
type NewCommentInput struct {
	Username string `json:"username"`
	Body     string `json:"body"`
}

// Normalize canonicalizes Username for lookup. Body is kept as submitted.
func (in *NewCommentInput) Normalize() {
	in.Username = cleanKey(in.Username)
}

// Validate reports ErrMissingFields unless both fields hold non-blank text.
func (in NewCommentInput) Validate() error {
	if blank(in.Username) || blank(in.Body) {
		return ErrMissingFields
	}
	return nil
}

// NewArticleInput is the payload for creating an article. ArticleImgURL is
// optional.
type NewArticleInput struct {
	Author        string `json:"author"`
	Title         string `json:"title"`
	Body          string `json:"body"`
	Topic         string `json:"topic"`
	ArticleImgURL string `json:"article_img_url"`
}

// Normalize canonicalizes the Author and Topic references. Title and Body
// are kept as submitted.
func (in *NewArticleInput) Normalize() {
	in.Author = cleanKey(in.Author)
	in.Topic = cleanKey(in.Topic)
	in.ArticleImgURL = strings.TrimSpace(in.ArticleImgURL)
}

// Validate reports ErrMissingRequiredFields unless author, title, body and
// topic all hold non-blank text.
func (in NewArticleInput) Validate() error {
	if blank(in.Author) || blank(in.Title) || blank(in.Body) || blank(in.Topic) {
		return ErrMissingRequiredFields
	}
	return nil
}

// NewTopicInput is the payload for creating a topic.
type NewTopicInput struct {
	Slug        string `json:"slug"`
	Description string `json:"description"`
	ImgURL      string `json:"img_url"`
}

// Validate reports ErrMissingRequiredFields unless slug and description hold
// non-blank text.
func (in NewTopicInput) Validate() error {
	if blank(in.Slug) || blank(in.Description) {
		return ErrMissingRequiredFields
	}
	return nil
}

// cleanKey trims and NFC-normalizes a value used to look up an existing row.
func cleanKey(s string) string {
	return norm.NFC.String(strings.TrimSpace(s))
}

func blank(s string) bool { return strings.TrimSpace(s) == "" }
