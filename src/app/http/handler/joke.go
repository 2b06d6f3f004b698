package handler

import (
	"strconv"

	"github.com/gin-gonic/gin"

	"jokeapi/src/app/http/dto"
	"jokeapi/src/app/http/response"
	"jokeapi/src/app/middleware"
	"jokeapi/src/core/usecase"
)

// JokeHandler handles the /jokes endpoints.
type JokeHandler struct {
	jokeService *usecase.JokeService
}

// NewJokeHandler creates a new JokeHandler.
func NewJokeHandler(jokeService *usecase.JokeService) *JokeHandler {
	return &JokeHandler{jokeService: jokeService}
}

// Create stores a new joke.
// POST /jokes
func (h *JokeHandler) Create(c *gin.Context) {
	var req dto.CreateJokeRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.Error(err)
		response.InvalidPayload(c, middleware.GetRequestID(c))
		return
	}

	joke, err := h.jokeService.Create(c.Request.Context(), req.ToInput())
	if err != nil {
		// Attach error for middleware logging
		c.Error(err)
		response.FromDomainError(c, err, middleware.GetRequestID(c))
		return
	}
	response.Created(c, dto.JokeFromDomain(joke))
}

// List returns every joke.
// GET /jokes
func (h *JokeHandler) List(c *gin.Context) {
	jokes, err := h.jokeService.List(c.Request.Context())
	if err != nil {
		c.Error(err)
		response.FromDomainError(c, err, middleware.GetRequestID(c))
		return
	}
	response.OK(c, dto.JokesFromDomain(jokes))
}

// Random returns one joke picked by offset.
// GET /jokes/random
func (h *JokeHandler) Random(c *gin.Context) {
	joke, err := h.jokeService.Random(c.Request.Context())
	if err != nil {
		c.Error(err)
		response.FromDomainError(c, err, middleware.GetRequestID(c))
		return
	}
	response.OK(c, dto.JokeFromDomain(joke))
}

// Get returns one joke.
// GET /jokes/:id
func (h *JokeHandler) Get(c *gin.Context) {
	id, ok := parseJokeID(c)
	if !ok {
		return
	}
	joke, err := h.jokeService.Get(c.Request.Context(), id)
	if err != nil {
		c.Error(err)
		response.FromDomainError(c, err, middleware.GetRequestID(c))
		return
	}
	response.OK(c, dto.JokeFromDomain(joke))
}

// Delete removes one joke.
// DELETE /jokes/:id
func (h *JokeHandler) Delete(c *gin.Context) {
	id, ok := parseJokeID(c)
	if !ok {
		return
	}
	msg, err := h.jokeService.Delete(c.Request.Context(), id)
	if err != nil {
		c.Error(err)
		response.FromDomainError(c, err, middleware.GetRequestID(c))
		return
	}
	response.OK(c, response.Message{Message: msg})
}

// parseJokeID answers 404 for ids that cannot name a row.
func parseJokeID(c *gin.Context) (int64, bool) {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil || id <= 0 {
		response.JokeNotFound(c, middleware.GetRequestID(c))
		return 0, false
	}
	return id, true
}
