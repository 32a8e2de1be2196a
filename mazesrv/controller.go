// Package mazesrv exposes the solver and the route verifier over HTTP.
package mazesrv

import (
	"errors"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	log "github.com/sirupsen/logrus"

	"github.com/katalvlaran/keymaze/astar"
	"github.com/katalvlaran/keymaze/maze"
	"github.com/katalvlaran/keymaze/solver"
	"github.com/katalvlaran/keymaze/trace"
)

// Config holds the settings shared by every request.
type Config struct {
	Logger        log.FieldLogger // Defaults to the logrus standard logger
	MaxExpansions int             // Per-phase expansion cap, 0 for unlimited
	Trace         bool            // Log every search expansion of every request
	MultiKey      bool            // Accept several keys even when a request does not ask to
	MaxBodyBytes  int64           // Request body cap, DefaultMaxBodyBytes when 0
}

// DefaultMaxBodyBytes caps request bodies when Config.MaxBodyBytes is unset.
const DefaultMaxBodyBytes = 1 << 20

// Controller handles maze solving and verification requests.
type Controller struct {
	logger        log.FieldLogger
	maxExpansions int
	trace         bool
	multiKey      bool
	maxBodyBytes  int64
}

// NewController initializes a Controller.
func NewController(cfg Config) *Controller {
	logger := cfg.Logger
	if logger == nil {
		logger = log.StandardLogger()
	}
	maxBody := cfg.MaxBodyBytes
	if maxBody <= 0 {
		maxBody = DefaultMaxBodyBytes
	}
	return &Controller{
		logger:        logger,
		maxBodyBytes:  maxBody,
		maxExpansions: cfg.MaxExpansions,
		trace:         cfg.Trace,
		multiKey:      cfg.MultiKey,
	}
}

// Register registers the maze routes on route.
func (c *Controller) Register(route *gin.RouterGroup) {
	route.POST("/solve", c.solve)
	route.POST("/verify", c.verify)
}

// NewRouter builds an engine serving c under baseURL + "/v1".
func NewRouter(c *Controller, baseURL string) *gin.Engine {
	router := gin.New()
	router.Use(gin.Recovery(), c.accessLog(), c.limitBody())

	api := router.Group(baseURL)
	{
		v1 := api.Group("/v1")
		c.Register(v1)
	}

	return router
}

// solve handles route search requests.
func (c *Controller) solve(ctx *gin.Context) {
	var request SolveRequest
	if !bindJSON(ctx, &request) {
		return
	}

	m, err := maze.New(request.Rows, c.options(request.MultiKey))
	if err != nil {
		ctx.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	runID := uuid.New()
	logger := c.logger.WithField("run_id", runID.String())

	opts := []astar.Option{astar.WithMaxExpansions(c.maxExpansions)}
	if c.trace {
		opts = append(opts, trace.Options(logger)...)
	}

	route, err := solver.Solve(m, opts...)
	switch {
	case errors.Is(err, astar.ErrExpansionLimit):
		logger.WithError(err).Warn("solve aborted")
		ctx.JSON(http.StatusUnprocessableEntity, gin.H{"error": err.Error(), "run_id": runID})
		return
	case err != nil:
		logger.WithError(err).Error("solve failed")
		ctx.JSON(http.StatusInternalServerError, gin.H{"error": "error while solving maze"})
		return
	}

	valid, _ := solver.Check(m, route)
	logger.WithFields(log.Fields{
		"found":    route.Found,
		"cost":     route.Cost,
		"expanded": route.Expanded,
	}).Info("solved")

	response := &SolveResponse{
		RunID:    runID,
		Found:    route.Found,
		Moves:    maze.FormatMoves(route.Moves),
		Cost:     route.Cost,
		Valid:    valid,
		Expanded: route.Expanded,
	}
	ctx.JSON(http.StatusOK, response)
}

// verify handles move sequence replay requests.
func (c *Controller) verify(ctx *gin.Context) {
	var request VerifyRequest
	if !bindJSON(ctx, &request) {
		return
	}

	m, err := maze.New(request.Rows, c.options(request.MultiKey))
	if err != nil {
		ctx.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	moves, err := maze.ParseMoves(request.Moves)
	if err != nil {
		ctx.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	valid, cost := m.Verify(moves)
	ctx.JSON(http.StatusOK, &VerifyResponse{Valid: valid, Cost: cost})
}

// bindJSON decodes the body into obj, answering 413 for an oversized body
// and 400 for anything else that fails to bind.
func bindJSON(ctx *gin.Context, obj any) bool {
	err := ctx.ShouldBindJSON(obj)
	if err == nil {
		return true
	}
	var tooLarge *http.MaxBytesError
	if errors.As(err, &tooLarge) {
		ctx.JSON(http.StatusRequestEntityTooLarge, gin.H{"error": err.Error()})
		return false
	}
	ctx.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
	return false
}

func (c *Controller) options(multiKey bool) maze.Options {
	opts := maze.DefaultOptions()
	opts.MultiKey = c.multiKey || multiKey
	return opts
}

// accessLog logs one line per request through the controller's logger.
func (c *Controller) accessLog() gin.HandlerFunc {
	return func(ctx *gin.Context) {
		start := time.Now()
		ctx.Next()
		c.logger.WithFields(log.Fields{
			"method":  ctx.Request.Method,
			"path":    ctx.Request.URL.Path,
			"status":  ctx.Writer.Status(),
			"latency": time.Since(start).String(),
		}).Debug("request")
	}
}

// limitBody rejects declared oversized bodies up front and caps the rest
// while they are read.
func (c *Controller) limitBody() gin.HandlerFunc {
	return func(ctx *gin.Context) {
		if ctx.Request.ContentLength > c.maxBodyBytes {
			ctx.AbortWithStatusJSON(http.StatusRequestEntityTooLarge,
				gin.H{"error": "request body too large"})
			return
		}
		ctx.Request.Body = http.MaxBytesReader(ctx.Writer, ctx.Request.Body, c.maxBodyBytes)
		ctx.Next()
	}
}
