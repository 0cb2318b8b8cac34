// Command newsapi serves the news REST API and manages its database.
//
// @title       News API
// @version     1.0
// @description REST API over topics, articles, users and comments.
// @BasePath    /api
package main

import "github.com/tbourn/go-news-backend/cmd/newsapi/commands"

func main() {
	commands.Execute()
}
