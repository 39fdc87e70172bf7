package services_test

import (
	"context"
	"fmt"
	"io"
	"testing"
	"time"

	"github.com/bionicotaku/lingo-services-greeter/internal/infrastructure/configloader"
	"github.com/bionicotaku/lingo-services-greeter/internal/infrastructure/telemetry"
	"github.com/bionicotaku/lingo-services-greeter/internal/models/po"
	"github.com/bionicotaku/lingo-services-greeter/internal/services"

	kerrors "github.com/go-kratos/kratos/v2/errors"
	"github.com/go-kratos/kratos/v2/log"
	"github.com/google/uuid"
	sdkmetric "go.opentelemetry.io/otel/sdk/metric"
	"go.opentelemetry.io/otel/sdk/metric/metricdata"
)

type greetingRepoStub struct {
	saved     []*po.Greeting
	findErr   error
	saveErr   error
	listErr   error
	record    *po.Greeting
	listed    []*po.Greeting
	lastLimit int
	deleted   int64
	deleteErr error
}

func (s *greetingRepoStub) Save(_ context.Context, record *po.Greeting) (*po.Greeting, error) {
	if s.saveErr != nil {
		return nil, s.saveErr
	}
	s.saved = append(s.saved, record)
	return record, nil
}

func (s *greetingRepoStub) FindByID(_ context.Context, _ uuid.UUID) (*po.Greeting, error) {
	if s.findErr != nil {
		return nil, s.findErr
	}
	return s.record, nil
}

func (s *greetingRepoStub) ListBySuffix(_ context.Context, _ string, limit int) ([]*po.Greeting, error) {
	s.lastLimit = limit
	return s.listed, s.listErr
}

func (s *greetingRepoStub) ListAll(_ context.Context, limit int) ([]*po.Greeting, error) {
	s.lastLimit = limit
	return s.listed, s.listErr
}

func (s *greetingRepoStub) DeleteOlderThan(_ context.Context, _ time.Time, _ int) (int64, error) {
	return s.deleted, s.deleteErr
}

func newUsecase(repo services.GreetingRepo, maxBytes int) *services.GreetingUsecase {
	logger := log.NewStdLogger(io.Discard)
	return services.NewGreetingUsecase(repo, configloader.GreetingConfig{MaxMessageBytes: maxBytes}, nil, logger)
}

func TestGreetingUsecase_CreateGreeting(t *testing.T) {
	repo := &greetingRepoStub{}
	uc := newUsecase(repo, 0)

	reply, err := uc.CreateGreeting(context.Background(), "A test string")
	if err != nil {
		t.Fatalf("CreateGreeting failed: %v", err)
	}
	if reply.Message != "Hello World! A test string" {
		t.Fatalf("unexpected message: %q", reply.Message)
	}
	if reply.Suffix != "A test string" {
		t.Fatalf("unexpected suffix: %q", reply.Suffix)
	}
	if reply.ID == uuid.Nil {
		t.Fatal("expected non-nil greeting id")
	}
	if len(repo.saved) != 1 {
		t.Fatalf("expected 1 saved record, got %d", len(repo.saved))
	}
	if repo.saved[0].CreatedAt.Location() != time.UTC {
		t.Fatal("expected UTC created_at")
	}
}

func TestGreetingUsecase_CreateGreetingRecordsMetric(t *testing.T) {
	reader := sdkmetric.NewManualReader()
	mp := sdkmetric.NewMeterProvider(sdkmetric.WithReader(reader))
	defer func() { _ = mp.Shutdown(context.Background()) }()

	counter, err := mp.Meter("test").Int64Counter("greetings_created_total")
	if err != nil {
		t.Fatalf("create counter: %v", err)
	}
	metrics := &telemetry.GreetingMetrics{Created: counter}

	repo := &greetingRepoStub{}
	uc := services.NewGreetingUsecase(repo, configloader.GreetingConfig{}, metrics, log.NewStdLogger(io.Discard))

	if _, err := uc.CreateGreeting(context.Background(), "x"); err != nil {
		t.Fatalf("CreateGreeting failed: %v", err)
	}
	if _, err := uc.CreateGreeting(context.Background(), "y"); err != nil {
		t.Fatalf("CreateGreeting failed: %v", err)
	}

	var rm metricdata.ResourceMetrics
	if err := reader.Collect(context.Background(), &rm); err != nil {
		t.Fatalf("collect metrics: %v", err)
	}
	var total int64
	for _, scope := range rm.ScopeMetrics {
		for _, m := range scope.Metrics {
			if m.Name != "greetings_created_total" {
				continue
			}
			sum, ok := m.Data.(metricdata.Sum[int64])
			if !ok {
				t.Fatalf("unexpected data type %T", m.Data)
			}
			for _, dp := range sum.DataPoints {
				total += dp.Value
			}
		}
	}
	if total != 2 {
		t.Fatalf("expected 2 created greetings recorded, got %d", total)
	}
}

func TestGreetingUsecase_CreateGreetingBufferLimit(t *testing.T) {
	repo := &greetingRepoStub{}
	// 上限低于 "Hello World! " + 后缀 + NUL 所需的字节数。
	uc := newUsecase(repo, 10)

	_, err := uc.CreateGreeting(context.Background(), "CROSS")
	if err == nil {
		t.Fatal("expected buffer limit error")
	}
	e := kerrors.FromError(err)
	if e.Code != 429 {
		t.Fatalf("expected http 429, got %d (%s)", e.Code, e.Reason)
	}
	if e.Reason != "GREETING_BUFFER_LIMIT" {
		t.Fatalf("unexpected reason: %s", e.Reason)
	}
	if len(repo.saved) != 0 {
		t.Fatal("expected no record saved on buffer limit")
	}
}

func TestGreetingUsecase_CreateGreetingSaveFailure(t *testing.T) {
	repo := &greetingRepoStub{saveErr: fmt.Errorf("connection refused")}
	uc := newUsecase(repo, 0)

	_, err := uc.CreateGreeting(context.Background(), "x")
	if err == nil {
		t.Fatal("expected save error")
	}
	e := kerrors.FromError(err)
	if e.Code != 500 {
		t.Fatalf("expected http 500, got %d", e.Code)
	}
}

func TestGreetingUsecase_GetGreetingNotFound(t *testing.T) {
	repo := &greetingRepoStub{findErr: services.ErrGreetingNotFound}
	uc := newUsecase(repo, 0)

	_, err := uc.GetGreeting(context.Background(), uuid.New())
	if !kerrors.IsNotFound(err) {
		t.Fatalf("expected not-found error, got %v", err)
	}
}

func TestGreetingUsecase_GetGreeting(t *testing.T) {
	record := &po.Greeting{
		GreetingID: uuid.New(),
		Suffix:     "CROSS",
		Message:    "Hello World! CROSS",
		CreatedAt:  time.Now().UTC(),
	}
	repo := &greetingRepoStub{record: record}
	uc := newUsecase(repo, 0)

	reply, err := uc.GetGreeting(context.Background(), record.GreetingID)
	if err != nil {
		t.Fatalf("GetGreeting failed: %v", err)
	}
	if reply.ID != record.GreetingID || reply.Message != "Hello World! CROSS" {
		t.Fatalf("unexpected reply: %+v", reply)
	}
}

func TestGreetingUsecase_ListGreetingsClampsLimit(t *testing.T) {
	repo := &greetingRepoStub{}
	uc := newUsecase(repo, 0)

	if _, err := uc.ListGreetings(context.Background(), services.ListGreetingsInput{}); err != nil {
		t.Fatalf("ListGreetings failed: %v", err)
	}
	if repo.lastLimit != 50 {
		t.Fatalf("expected default limit 50, got %d", repo.lastLimit)
	}

	if _, err := uc.ListGreetings(context.Background(), services.ListGreetingsInput{Limit: 10000}); err != nil {
		t.Fatalf("ListGreetings failed: %v", err)
	}
	if repo.lastLimit != 500 {
		t.Fatalf("expected capped limit 500, got %d", repo.lastLimit)
	}
}

func TestGreetingUsecase_ListGreetingsBySuffix(t *testing.T) {
	suffix := "A test string"
	repo := &greetingRepoStub{listed: []*po.Greeting{
		{GreetingID: uuid.New(), Suffix: suffix, Message: "Hello World! A test string", CreatedAt: time.Now().UTC()},
	}}
	uc := newUsecase(repo, 0)

	replies, err := uc.ListGreetings(context.Background(), services.ListGreetingsInput{Suffix: &suffix, Limit: 5})
	if err != nil {
		t.Fatalf("ListGreetings failed: %v", err)
	}
	if len(replies) != 1 {
		t.Fatalf("expected 1 reply, got %d", len(replies))
	}
	if repo.lastLimit != 5 {
		t.Fatalf("expected limit 5, got %d", repo.lastLimit)
	}
}

func TestGreetingUsecase_PruneGreetings(t *testing.T) {
	repo := &greetingRepoStub{deleted: 7}
	uc := newUsecase(repo, 0)

	deleted, err := uc.PruneGreetings(context.Background(), time.Now().Add(-time.Hour), 100)
	if err != nil {
		t.Fatalf("PruneGreetings failed: %v", err)
	}
	if deleted != 7 {
		t.Fatalf("expected 7 deleted, got %d", deleted)
	}

	repo.deleteErr = fmt.Errorf("boom")
	if _, err := uc.PruneGreetings(context.Background(), time.Now(), 100); err == nil {
		t.Fatal("expected prune error")
	}
}
