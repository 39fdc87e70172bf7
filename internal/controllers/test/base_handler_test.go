package controllers_test

import (
	"context"
	"testing"
	"time"

	"github.com/bionicotaku/lingo-services-greeter/internal/controllers"

	"github.com/go-kratos/kratos/v2/metadata"
)

func TestBaseHandlerExtractMetadata(t *testing.T) {
	md := metadata.New(map[string][]string{
		"x-md-global-user-id":  {"user-123"},
		"x-md-idempotency-key": {"req-456"},
	})
	ctx := metadata.NewServerContext(context.Background(), md)

	handler := controllers.NewBaseHandler(controllers.HandlerTimeouts{})
	meta := handler.ExtractMetadata(ctx)

	if meta.UserID != "user-123" {
		t.Fatalf("expected user id to be user-123, got %q", meta.UserID)
	}
	if meta.IdempotencyKey != "req-456" {
		t.Fatalf("expected idempotency key req-456, got %q", meta.IdempotencyKey)
	}

	newCtx := controllers.InjectHandlerMetadata(ctx, meta)
	stored, ok := controllers.HandlerMetadataFromContext(newCtx)
	if !ok {
		t.Fatalf("expected metadata in context")
	}
	if stored != meta {
		t.Fatalf("stored metadata mismatch: %+v vs %+v", stored, meta)
	}
}

func TestBaseHandlerExtractMetadataMissing(t *testing.T) {
	handler := controllers.NewBaseHandler(controllers.HandlerTimeouts{})
	meta := handler.ExtractMetadata(context.Background())
	if !meta.IsZero() {
		t.Fatalf("expected zero metadata, got %+v", meta)
	}
	if _, ok := controllers.HandlerMetadataFromContext(controllers.InjectHandlerMetadata(context.Background(), meta)); ok {
		t.Fatal("zero metadata must not be injected")
	}
}

func TestBaseHandlerWithTimeout(t *testing.T) {
	handler := controllers.NewBaseHandler(controllers.HandlerTimeouts{Command: 200 * time.Millisecond})
	ctx, cancel := handler.WithTimeout(context.Background(), controllers.HandlerTypeCommand)
	defer cancel()

	deadline, ok := ctx.Deadline()
	if !ok {
		t.Fatalf("expected deadline to be set")
	}
	remaining := time.Until(deadline)
	if remaining < 150*time.Millisecond || remaining > 250*time.Millisecond {
		t.Fatalf("expected timeout near 200ms, got %v", remaining)
	}
}

func TestBaseHandlerTimeoutFallbacks(t *testing.T) {
	handler := controllers.NewBaseHandler(controllers.HandlerTimeouts{})
	ctx, cancel := handler.WithTimeout(context.Background(), controllers.HandlerTypeQuery)
	defer cancel()

	deadline, ok := ctx.Deadline()
	if !ok {
		t.Fatalf("expected fallback deadline to be set")
	}
	if time.Until(deadline) > 6*time.Second {
		t.Fatalf("fallback deadline too far: %v", time.Until(deadline))
	}
}
