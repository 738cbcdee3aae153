package lambda

import (
	"context"
	"sync"
	"testing"

	"terraform-day4-lambda/internal/models"

	"github.com/sirupsen/logrus"
	"github.com/sirupsen/logrus/hooks/test"
)

func TestInvoker_Invoke(t *testing.T) {
	logger, hook := test.NewNullLogger()
	logger.SetLevel(logrus.DebugLevel)

	var seen []models.Event
	inv := NewInvoker(func(_ context.Context, event models.Event) (models.Response, error) {
		seen = append(seen, event)
		return models.Response{StatusCode: 200, Body: `{}`}, nil
	}, logger)

	for i := 0; i < 3; i++ {
		resp, err := inv.Invoke(context.Background(), models.Event{"n": i})
		if err != nil || resp.StatusCode != 200 {
			t.Fatalf("Invoke %d: resp=%+v err=%v", i, resp, err)
		}
	}

	if inv.Invocations() != 3 || len(seen) != 3 {
		t.Errorf("Expected 3 invocations, got %d (handler saw %d)", inv.Invocations(), len(seen))
	}

	entries := hook.AllEntries()
	if len(entries) != 3 {
		t.Fatalf("Expected 3 debug records, got %d", len(entries))
	}
	if entries[0].Data["cold_start"] != true {
		t.Error("First invocation should be a cold start")
	}
	if entries[1].Data["cold_start"] != false || entries[1].Data["invocation"] != 2 {
		t.Errorf("Unexpected second record fields: %v", entries[1].Data)
	}
}

func TestInvoker_ConcurrentInvocations(t *testing.T) {
	logger, _ := test.NewNullLogger()
	inv := NewInvoker(func(context.Context, models.Event) (models.Response, error) {
		return models.Response{StatusCode: 200, Body: `{}`}, nil
	}, logger)

	var wg sync.WaitGroup
	for i := 0; i < 50; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			_, _ = inv.Invoke(context.Background(), models.Event{})
		}()
	}
	wg.Wait()

	if inv.Invocations() != 50 {
		t.Errorf("Expected 50 invocations, got %d", inv.Invocations())
	}
}
