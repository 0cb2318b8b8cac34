package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/tbourn/go-news-backend/internal/services"
)

// ListTopics godoc
// @ID          listTopics
// @Summary     List topics
// @Tags        Topics
// @Produce     json
// @Success     200  {object}  handlers.TopicsResponse
// @Failure     500  {object}  handlers.ErrorResponse  "Internal Server Error"
// @Router      /topics [get]
func (h *Handlers) ListTopics(c *gin.Context) {
	topics, err := h.topics.List(c.Request.Context())
	if err != nil {
		mapError(c, err)
		return
	}
	ok(c, http.StatusOK, TopicsResponse{Topics: topics})
}

// CreateTopic godoc
// @ID          createTopic
// @Summary     Create a topic
// @Tags        Topics
// @Accept      json
// @Produce     json
// @Param       body  body      services.NewTopicInput  true  "Topic payload"
// @Success     201   {object}  handlers.TopicResponse
// @Failure     400   {object}  handlers.ErrorResponse  "Missing required fields"
// @Failure     409   {object}  handlers.ErrorResponse  "Conflict: Topic already exists"
// @Router      /topics [post]
func (h *Handlers) CreateTopic(c *gin.Context) {
	var in services.NewTopicInput
	if err := bindJSON(c, &in); err != nil {
		mapError(c, err)
		return
	}
	t, err := h.topics.Create(c.Request.Context(), in)
	if err != nil {
		mapError(c, err)
		return
	}
	ok(c, http.StatusCreated, TopicResponse{Topic: t})
}
