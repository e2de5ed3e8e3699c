// In file: cmd/reasoner/handler.go
package main

import (
	"encoding/json"
	"log"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/dileep-u-k/tool-reasoner/internal/api"
	"github.com/dileep-u-k/tool-reasoner/internal/cache"
	"github.com/dileep-u-k/tool-reasoner/internal/llm"
	"github.com/dileep-u-k/tool-reasoner/internal/reason"
	"github.com/dileep-u-k/tool-reasoner/internal/tools"
)

// ReasonerHandler wires one HTTP request to one reasoning session.
type ReasonerHandler struct {
	clients     map[string]llm.LLMClient
	registry    *tools.Registry
	answerCache *cache.AnswerCache
	modelStats  *cache.ModelStats
	config      *AppConfig
}

func NewReasonerHandler(clients map[string]llm.LLMClient, registry *tools.Registry, answerCache *cache.AnswerCache, modelStats *cache.ModelStats, config *AppConfig) *ReasonerHandler {
	return &ReasonerHandler{
		clients:     clients,
		registry:    registry,
		answerCache: answerCache,
		modelStats:  modelStats,
		config:      config,
	}
}

// HandleReason answers POST /api/v1/reason: run a full reasoning session
// for the query and return the final answer with its tool breakdown.
func (h *ReasonerHandler) HandleReason(c *gin.Context) {
	startTime := time.Now()
	var req api.ReasonRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request: " + err.Error()})
		return
	}

	log.Printf("--- New Query ('%.60s') ---", req.Query)

	if h.answerCache != nil {
		if cachedVal, found := h.answerCache.Check(c.Request.Context(), req.Query); found {
			var cachedResp api.ReasonResponse
			if json.Unmarshal([]byte(cachedVal), &cachedResp) == nil {
				log.Println("✅ Cache HIT")
				cachedResp.LatencyMS = time.Since(startTime).Milliseconds()
				cachedResp.CacheStatus = "HIT"
				c.JSON(http.StatusOK, cachedResp)
				return
			}
		}
		log.Println("⚠️ Cache MISS")
	}

	modelID := h.config.Session.DefaultModel
	if req.Model != "" {
		modelID = req.Model
	}
	client, ok := h.clients[modelID]
	if !ok {
		c.JSON(http.StatusBadRequest, gin.H{"error": "model '" + modelID + "' is not enabled"})
		return
	}

	session := reason.NewSession(client, h.registry, reason.Config{
		Model:         modelID,
		MaxToolRounds: h.config.Session.MaxToolRounds,
		MaxTokens:     h.config.Session.MaxTokens,
		Temperature:   h.config.Session.Temperature,
	})

	outcome, err := session.Run(c.Request.Context(), req.Query)
	latency := time.Since(startTime)
	if err != nil {
		if h.modelStats != nil {
			h.modelStats.RecordFailure(c.Request.Context(), modelID)
		}
		c.JSON(http.StatusBadGateway, gin.H{"error": err.Error()})
		return
	}

	if h.modelStats != nil {
		h.modelStats.RecordSuccess(c.Request.Context(), modelID, latency, outcome.Usage.TotalTokens)
	}

	finalResponse := api.ReasonResponse{
		Answer:      outcome.Answer,
		ModelUsed:   modelID,
		Rounds:      outcome.Rounds,
		ToolsUsed:   outcome.ToolsUsed,
		Usage:       outcome.Usage,
		LatencyMS:   latency.Milliseconds(),
		CacheStatus: "MISS",
	}

	if h.answerCache != nil {
		if respBytes, err := json.Marshal(finalResponse); err != nil {
			log.Printf("WARNING: Failed to marshal response for caching: %v", err)
		} else {
			h.answerCache.Set(c.Request.Context(), req.Query, string(respBytes))
			log.Println("✅ Answer CACHED")
		}
	}

	c.JSON(http.StatusOK, finalResponse)
}

// HandleListTools answers GET /api/v1/tools with the catalog the model
// sees, in registration order.
func (h *ReasonerHandler) HandleListTools(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"tools": h.registry.Catalog()})
}
