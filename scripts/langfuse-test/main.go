// Script to test Langfuse connectivity by emitting a test span over OTLP.
// Usage: go run scripts/langfuse-test/main.go
package main

import (
	"context"
	"encoding/json"
	"fmt"
	"log"
	"time"

	"github.com/hanyul/sleepwise/internal/config"
	"github.com/hanyul/sleepwise/internal/telemetry"
	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/trace"
)

func main() {
	cfg := config.Load()

	fmt.Println("=== Langfuse Connection Test ===")
	fmt.Printf("Base URL:    %s\n", cfg.LangfuseBaseURL)
	fmt.Printf("Public Key:  %s\n", maskKey(cfg.LangfusePublicKey))
	fmt.Printf("Secret Key:  %s\n", maskKey(cfg.LangfuseSecretKey))
	fmt.Printf("Environment: %s\n", cfg.LangfuseEnv)
	fmt.Println()

	if cfg.LangfuseBaseURL == "" || cfg.LangfusePublicKey == "" || cfg.LangfuseSecretKey == "" {
		log.Fatal("Langfuse is not configured. Check your env vars.")
	}

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	shutdown, err := telemetry.InitTracer(ctx, cfg, "sleepwise-langfuse-test")
	if err != nil {
		log.Fatalf("Failed to init tracer: %v", err)
	}

	input, _ := json.Marshal(map[string]any{
		"message": "Hello from langfuse-test script",
		"time":    time.Now().Format(time.RFC3339),
	})
	output, _ := json.Marshal(map[string]any{"status": "success"})

	tracer := otel.Tracer("sleepwise-api/langfuse-test")
	_, span := tracer.Start(ctx, "langfuse-test",
		trace.WithAttributes(
			attribute.String("user.id", "test-user-123"),
			attribute.String("langfuse.observation.input", string(input)),
			attribute.String("langfuse.observation.output", string(output)),
		),
	)
	traceID := span.SpanContext().TraceID().String()
	span.End()

	if err := shutdown(ctx); err != nil {
		log.Fatalf("Failed to flush spans: %v", err)
	}

	fmt.Println("Test span exported successfully!")
	fmt.Printf("  Trace ID: %s\n", traceID)
	fmt.Printf("  View at:  %s/trace/%s\n", cfg.LangfuseBaseURL, traceID)
}

func maskKey(key string) string {
	if len(key) < 8 {
		if key == "" {
			return "(empty)"
		}
		return "***"
	}
	return key[:8] + "..."
}
