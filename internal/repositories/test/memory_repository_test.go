package repositories_test

import (
	"context"
	"io"
	"testing"
	"time"

	"github.com/bionicotaku/lingo-services-greeter/internal/models/po"
	"github.com/bionicotaku/lingo-services-greeter/internal/repositories"

	kerrors "github.com/go-kratos/kratos/v2/errors"
	"github.com/go-kratos/kratos/v2/log"
	"github.com/google/uuid"
)

func newMemoryRepo() *repositories.MemoryGreetingRepository {
	return repositories.NewMemoryGreetingRepository(log.NewStdLogger(io.Discard))
}

func seedGreeting(t *testing.T, repo *repositories.MemoryGreetingRepository, suffix string, createdAt time.Time) *po.Greeting {
	t.Helper()
	record := &po.Greeting{
		GreetingID: uuid.New(),
		Suffix:     suffix,
		Message:    "Hello World! " + suffix,
		CreatedAt:  createdAt,
	}
	if _, err := repo.Save(context.Background(), record); err != nil {
		t.Fatalf("seed greeting: %v", err)
	}
	return record
}

func TestMemoryRepository_SaveAndFind(t *testing.T) {
	repo := newMemoryRepo()
	now := time.Now().UTC()
	record := seedGreeting(t, repo, "A test string", now)

	got, err := repo.FindByID(context.Background(), record.GreetingID)
	if err != nil {
		t.Fatalf("FindByID failed: %v", err)
	}
	if got.Message != "Hello World! A test string" {
		t.Fatalf("unexpected message: %q", got.Message)
	}

	// 返回的是副本，修改不应影响存储内容。
	got.Message = "mutated"
	again, err := repo.FindByID(context.Background(), record.GreetingID)
	if err != nil {
		t.Fatalf("FindByID failed: %v", err)
	}
	if again.Message != "Hello World! A test string" {
		t.Fatal("expected stored record to be isolated from caller mutation")
	}
}

func TestMemoryRepository_FindMissing(t *testing.T) {
	repo := newMemoryRepo()
	_, err := repo.FindByID(context.Background(), uuid.New())
	if !kerrors.IsNotFound(err) {
		t.Fatalf("expected not-found error, got %v", err)
	}
}

func TestMemoryRepository_ListOrderingAndLimit(t *testing.T) {
	repo := newMemoryRepo()
	base := time.Now().UTC()
	seedGreeting(t, repo, "first", base.Add(-2*time.Hour))
	seedGreeting(t, repo, "second", base.Add(-time.Hour))
	newest := seedGreeting(t, repo, "third", base)

	records, err := repo.ListAll(context.Background(), 2)
	if err != nil {
		t.Fatalf("ListAll failed: %v", err)
	}
	if len(records) != 2 {
		t.Fatalf("expected 2 records, got %d", len(records))
	}
	if records[0].GreetingID != newest.GreetingID {
		t.Fatal("expected newest record first")
	}
	if records[1].Suffix != "second" {
		t.Fatalf("unexpected second record: %s", records[1].Suffix)
	}
}

func TestMemoryRepository_ListBySuffix(t *testing.T) {
	repo := newMemoryRepo()
	now := time.Now().UTC()
	seedGreeting(t, repo, "CROSS", now.Add(-time.Minute))
	seedGreeting(t, repo, "CROSS", now)
	seedGreeting(t, repo, "other", now)

	records, err := repo.ListBySuffix(context.Background(), "CROSS", 10)
	if err != nil {
		t.Fatalf("ListBySuffix failed: %v", err)
	}
	if len(records) != 2 {
		t.Fatalf("expected 2 records, got %d", len(records))
	}
	for _, record := range records {
		if record.Suffix != "CROSS" {
			t.Fatalf("unexpected suffix: %s", record.Suffix)
		}
	}
}

func TestMemoryRepository_DeleteOlderThan(t *testing.T) {
	repo := newMemoryRepo()
	base := time.Now().UTC()
	oldest := seedGreeting(t, repo, "oldest", base.Add(-3*time.Hour))
	seedGreeting(t, repo, "older", base.Add(-2*time.Hour))
	fresh := seedGreeting(t, repo, "fresh", base)

	// limit 为 1 时只删最旧的一条。
	deleted, err := repo.DeleteOlderThan(context.Background(), base.Add(-time.Hour), 1)
	if err != nil {
		t.Fatalf("DeleteOlderThan failed: %v", err)
	}
	if deleted != 1 {
		t.Fatalf("expected 1 deleted, got %d", deleted)
	}
	if _, err := repo.FindByID(context.Background(), oldest.GreetingID); !kerrors.IsNotFound(err) {
		t.Fatal("expected oldest record to be deleted first")
	}

	deleted, err = repo.DeleteOlderThan(context.Background(), base.Add(-time.Hour), 100)
	if err != nil {
		t.Fatalf("DeleteOlderThan failed: %v", err)
	}
	if deleted != 1 {
		t.Fatalf("expected 1 more deleted, got %d", deleted)
	}
	if repo.Len() != 1 {
		t.Fatalf("expected 1 record left, got %d", repo.Len())
	}
	if _, err := repo.FindByID(context.Background(), fresh.GreetingID); err != nil {
		t.Fatalf("expected fresh record to survive: %v", err)
	}
}
