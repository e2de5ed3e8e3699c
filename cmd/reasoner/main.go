// In file: cmd/reasoner/main.go
package main

import (
	"context"
	"errors"
	"fmt"
	"log"
	"net/http"
	"os"
	"os/signal"
	"strings"
	"syscall"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/redis/go-redis/v9"

	"github.com/dileep-u-k/tool-reasoner/internal/cache"
	"github.com/dileep-u-k/tool-reasoner/internal/llm"
	"github.com/dileep-u-k/tool-reasoner/internal/tools"
)

// main is the entry point for the reasoning service. It is the composition
// root: it loads configuration, initializes the model clients and the tool
// registry, injects dependencies, and starts the server.
func main() {
	log.SetFlags(log.LstdFlags | log.Lshortfile)
	buildInfo := GetBuildInfo()
	log.Printf("🚀 Starting Tool Reasoner | Version: %s | Commit: %s", buildInfo.Version, buildInfo.GitCommit)

	// 1. LOAD CONFIGURATION
	cfg, err := LoadConfig()
	if err != nil {
		log.Fatalf("❌ FATAL: Configuration Error: %v", err)
	}
	log.Println("✅ Configuration loaded.")

	// 2. INITIALIZE SERVICES
	// Redis is optional; without it the service runs with caching and
	// model stats disabled.
	var answerCache *cache.AnswerCache
	var modelStats *cache.ModelStats
	if cfg.RedisAddr != "" {
		rdb := redis.NewClient(&redis.Options{Addr: cfg.RedisAddr})
		if _, err := rdb.Ping(context.Background()).Result(); err != nil {
			log.Fatalf("❌ FATAL: Could not connect to Redis at %s: %v", cfg.RedisAddr, err)
		}
		ttl := time.Duration(cfg.Session.AnswerCacheTTLHours) * time.Hour
		if ttl <= 0 {
			ttl = 24 * time.Hour
		}
		answerCache = cache.NewAnswerCache(rdb, ttl)
		modelStats = cache.NewModelStats(rdb)
		log.Println("✅ Redis connected; answer cache and model stats enabled.")
	} else {
		log.Println("⚠️ REDIS_ADDR not set; answer cache and model stats disabled.")
	}

	llmClients, err := initializeLLMClients(cfg)
	if err != nil {
		log.Fatalf("❌ FATAL: %v", err)
	}

	registry, err := initializeRegistry()
	if err != nil {
		log.Fatalf("❌ FATAL: %v", err)
	}

	handler := NewReasonerHandler(llmClients, registry, answerCache, modelStats, cfg)
	log.Println("✅ All services initialized.")

	// 3. SETUP AND RUN THE WEB SERVER
	gin.SetMode(os.Getenv("GIN_MODE"))
	engine := gin.Default()
	v1 := engine.Group("/api/v1")
	{
		v1.POST("/reason", handler.HandleReason)
		v1.GET("/tools", handler.HandleListTools)
	}

	srv := &http.Server{Addr: fmt.Sprintf(":%s", os.Getenv("PORT")), Handler: engine}
	runServerWithGracefulShutdown(srv)
}

// initializeLLMClients creates a client per enabled model based on its
// provider prefix.
func initializeLLMClients(cfg *AppConfig) (map[string]llm.LLMClient, error) {
	clients := make(map[string]llm.LLMClient)
	var err error
	for modelID, apiKey := range cfg.APIKeys {
		var client llm.LLMClient
		switch {
		case strings.HasPrefix(modelID, "gpt"):
			client, err = llm.NewOpenAIClient(apiKey)
		case strings.HasPrefix(modelID, "claude"):
			client, err = llm.NewAnthropicClient(apiKey)
		case strings.HasPrefix(modelID, "gemini"):
			client, err = llm.NewGeminiClient(apiKey, modelID)
		case strings.HasPrefix(modelID, "mistral"):
			client, err = llm.NewMistralClient(apiKey)
		default:
			log.Printf("WARNING: Unknown model provider for %s, skipping.", modelID)
			continue
		}
		if err != nil {
			return nil, fmt.Errorf("failed to create client for %s: %w", modelID, err)
		}
		clients[modelID] = client
	}
	if len(clients) == 0 {
		return nil, errors.New("no usable model clients could be created")
	}
	log.Printf("✅ %d LLM clients initialized.", len(clients))
	return clients, nil
}

// initializeRegistry builds the write-once tool registry. A duplicate tool
// name here is a programming error and aborts startup.
func initializeRegistry() (*tools.Registry, error) {
	registry := tools.NewRegistry()
	if err := tools.RegisterMathTools(registry); err != nil {
		return nil, fmt.Errorf("failed to register math tools: %w", err)
	}
	if err := tools.RegisterStringTools(registry); err != nil {
		return nil, fmt.Errorf("failed to register string tools: %w", err)
	}
	log.Printf("✅ Tool registry initialized with %d tools.", registry.Count())
	return registry, nil
}

// runServerWithGracefulShutdown handles the server lifecycle.
func runServerWithGracefulShutdown(srv *http.Server) {
	go func() {
		log.Printf("👂 Reasoner is listening on http://localhost%s", srv.Addr)
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			log.Fatalf("❌ Listen error: %s\n", err)
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	log.Println("🛑 Shutting down server...")
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	if err := srv.Shutdown(ctx); err != nil {
		log.Fatal("❌ Server shutdown failed:", err)
	}

	log.Println("👋 Server exited gracefully.")
}
