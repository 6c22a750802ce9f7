package http

import (
	"log"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"sudoku-engine/internal/core"
	"sudoku-engine/internal/engine"
	"sudoku-engine/internal/textgrid"
	"sudoku-engine/pkg/config"
	"sudoku-engine/pkg/constants"
)

var cfg *config.Config

// RegisterRoutes wires the engine's solve entry points onto r.
func RegisterRoutes(r *gin.Engine, c *config.Config) {
	cfg = c

	r.GET("/health", healthHandler)

	api := r.Group("/api")
	{
		api.POST("/solve", solveHandler)
		api.GET("/solve/:grid/steps", solveStepsHandler)
		api.POST("/session/start", sessionStartHandler)
		api.POST("/session/solve", sessionSolveHandler)
	}
}

func healthHandler(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{
		"status":  "ok",
		"version": constants.APIVersion,
	})
}

// SolveRequest is the body for POST /api/solve.
type SolveRequest struct {
	Grid        string `json:"grid" binding:"required"`
	StrategySet string `json:"strategy_set"`
}

func solveHandler(c *gin.Context) {
	var req SolveRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	strategySet := req.StrategySet
	if strategySet == "" {
		strategySet = cfg.StrategySet
	}

	result, _, status, err := solveGrid(req.Grid, strategySet)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	c.JSON(status, result)
}

func solveStepsHandler(c *gin.Context) {
	grid := c.Param("grid")
	strategySet := c.DefaultQuery("strategy_set", cfg.StrategySet)

	result, trace, status, err := solveGrid(grid, strategySet)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	steps := make([]string, 0, len(trace))
	for _, d := range trace {
		steps = append(steps, engine.Explain(d))
	}

	c.JSON(status, gin.H{
		"grid":   result["grid"],
		"solved": result["solved"],
		"steps":  steps,
	})
}

// solveGrid parses, solves and reports a grid, shared by both solve
// endpoints. The http status is 200 for a solved or best-effort partial
// result and 422 for a contradiction, distinguishing a well-formed but
// unsolvable puzzle from a malformed request (400, returned as an error).
func solveGrid(line, strategySet string) (gin.H, []engine.Deduction, int, error) {
	grid, err := textgrid.Parse(line)
	if err != nil {
		return nil, nil, 0, err
	}

	ids, err := engine.StrategyListForSet(strategySet)
	if err != nil {
		return nil, nil, 0, err
	}

	solver := engine.FromSudoku(grid)
	solved, trace, solveErr := solver.Solve(ids)

	rendered := make([]gin.H, 0, len(trace))
	for _, d := range trace {
		rendered = append(rendered, gin.H{
			"kind":   d.Kind.String(),
			"detail": engine.Explain(d),
		})
	}

	resp := gin.H{
		"grid":   textgrid.Format(solved),
		"solved": solveErr == nil,
		"trace":  rendered,
		"grade":  engine.Grade(trace),
	}

	switch solveErr {
	case nil:
		return resp, trace, http.StatusOK, nil
	case engine.ErrUnresolved:
		resp["status"] = "unresolved"
		return resp, trace, http.StatusOK, nil
	case core.Unsolvable:
		resp["status"] = "unsolvable"
		return resp, trace, http.StatusUnprocessableEntity, nil
	default:
		return nil, nil, 0, solveErr
	}
}

// SessionStartRequest is the body for POST /api/session/start.
type SessionStartRequest struct {
	Seed        string `json:"seed" binding:"required"`
	StrategySet string `json:"strategy_set" binding:"required"`
	DeviceID    string `json:"device_id" binding:"required"`
}

func sessionStartHandler(c *gin.Context) {
	var req SessionStartRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	if _, ok := constants.StrategySets[req.StrategySet]; !ok {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid_strategy_set"})
		return
	}

	now := time.Now()
	session := SessionToken{
		DeviceID:    req.DeviceID,
		Seed:        req.Seed,
		StrategySet: req.StrategySet,
		StartedAt:   now,
		ExpiresAt:   now.Add(constants.SessionTokenExpiry),
	}

	token, err := createToken(cfg.SessionSecret, session)
	if err != nil {
		log.Printf("ERROR [sessionStart]: failed to create token: %v", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to create token"})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"token":      token,
		"seed":       req.Seed,
		"started_at": now.Format(time.RFC3339),
	})
}

// SessionSolveRequest is the body for POST /api/session/solve: a grid solved
// under the strategy set a prior /api/session/start call scoped the token to,
// rather than whatever the caller passes.
type SessionSolveRequest struct {
	Token string `json:"token" binding:"required"`
	Grid  string `json:"grid" binding:"required"`
}

// sessionSolveHandler solves under a token's scope rather than a
// caller-chosen strategy set, the session-gated counterpart to solveHandler.
// The token is checked before anything else runs, and its StrategySet is
// authoritative over anything in the request body.
func sessionSolveHandler(c *gin.Context) {
	var req SessionSolveRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	session, err := verifyToken(cfg.SessionSecret, req.Token)
	if err != nil {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "invalid token: " + err.Error()})
		return
	}

	result, _, status, err := solveGrid(req.Grid, session.StrategySet)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	result["seed"] = session.Seed
	c.JSON(status, result)
}
