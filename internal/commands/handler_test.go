package commands_test

import (
	"context"
	"errors"
	"testing"
	"time"

	goerrors "github.com/goliatone/go-errors"

	"github.com/goliatone/go-sitebuilder/internal/commands"
)

type testMessage struct {
	invalid bool
}

func (testMessage) Type() string { return "test.message" }

func (m testMessage) Validate() error {
	if m.invalid {
		return errors.New("message rejected")
	}
	return nil
}

func TestHandlerExecutesFunction(t *testing.T) {
	called := false
	handler := commands.NewHandler(func(ctx context.Context, msg testMessage) error {
		called = true
		return nil
	})
	if err := handler.Execute(context.Background(), testMessage{}); err != nil {
		t.Fatalf("execute: %v", err)
	}
	if !called {
		t.Fatal("handler function was not invoked")
	}
}

func TestHandlerRejectsInvalidMessage(t *testing.T) {
	handler := commands.NewHandler(func(ctx context.Context, msg testMessage) error {
		t.Fatal("execution must not run for invalid messages")
		return nil
	})

	err := handler.Execute(context.Background(), testMessage{invalid: true})
	if err == nil {
		t.Fatal("expected a validation error")
	}
	if !goerrors.IsCategory(err, goerrors.CategoryValidation) {
		t.Fatalf("expected validation category, got %v", err)
	}
}

func TestHandlerWrapsExecutionFailure(t *testing.T) {
	boom := errors.New("boom")
	handler := commands.NewHandler(func(ctx context.Context, msg testMessage) error {
		return boom
	})

	err := handler.Execute(context.Background(), testMessage{})
	if !errors.Is(err, boom) {
		t.Fatalf("cause should survive wrapping: %v", err)
	}
	if !goerrors.IsCategory(err, goerrors.CategoryCommand) {
		t.Fatalf("expected command category, got %v", err)
	}
}

func TestHandlerHonorsCanceledContext(t *testing.T) {
	handler := commands.NewHandler(func(ctx context.Context, msg testMessage) error {
		t.Fatal("execution must not run under a canceled context")
		return nil
	})

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	err := handler.Execute(ctx, testMessage{})
	if !errors.Is(err, context.Canceled) {
		t.Fatalf("expected context.Canceled, got %v", err)
	}
}

func TestHandlerAppliesTimeout(t *testing.T) {
	handler := commands.NewHandler(func(ctx context.Context, msg testMessage) error {
		select {
		case <-ctx.Done():
			return ctx.Err()
		case <-time.After(time.Second):
			return nil
		}
	}, commands.WithTimeout[testMessage](5*time.Millisecond))

	err := handler.Execute(context.Background(), testMessage{})
	if !errors.Is(err, context.DeadlineExceeded) {
		t.Fatalf("expected deadline exceeded, got %v", err)
	}
}

func TestHandlerEmitsTelemetry(t *testing.T) {
	var seen []commands.TelemetryInfo
	telemetry := func(ctx context.Context, msg testMessage, info commands.TelemetryInfo) {
		seen = append(seen, info)
	}

	ok := commands.NewHandler(func(ctx context.Context, msg testMessage) error {
		return nil
	}, commands.WithTelemetry(telemetry), commands.WithOperation[testMessage]("tests.run"))
	if err := ok.Execute(context.Background(), testMessage{}); err != nil {
		t.Fatalf("execute: %v", err)
	}

	failing := commands.NewHandler(func(ctx context.Context, msg testMessage) error {
		return errors.New("boom")
	}, commands.WithTelemetry(telemetry))
	if err := failing.Execute(context.Background(), testMessage{}); err == nil {
		t.Fatal("expected execution failure")
	}

	if len(seen) != 2 {
		t.Fatalf("telemetry should fire once per execution, got %d", len(seen))
	}
	if seen[0].Status != commands.TelemetryStatusSuccess || seen[0].Operation != "tests.run" {
		t.Fatalf("unexpected success telemetry: %#v", seen[0])
	}
	if seen[1].Status != commands.TelemetryStatusFailed || seen[1].Error == nil {
		t.Fatalf("unexpected failure telemetry: %#v", seen[1])
	}
	if seen[0].Command != "test.message" {
		t.Fatalf("telemetry should carry the message type, got %q", seen[0].Command)
	}
}

func TestHandlerNilContextGetsBackground(t *testing.T) {
	handler := commands.NewHandler(func(ctx context.Context, msg testMessage) error {
		if ctx == nil {
			t.Fatal("handler should receive a non-nil context")
		}
		return nil
	})
	//nolint:staticcheck // exercising the nil-context guard on purpose
	if err := handler.Execute(nil, testMessage{}); err != nil {
		t.Fatalf("execute: %v", err)
	}
}
