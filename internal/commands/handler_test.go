package commands

import (
	"context"
	"errors"
	"testing"
	"time"

	goerrors "github.com/goliatone/go-errors"
)

type testMessage struct {
	Value   string
	invalid bool
}

func (testMessage) Type() string { return "wppost.test.message" }

func (m testMessage) Validate() error {
	if m.invalid {
		return errors.New("value is required")
	}
	return nil
}

func TestHandlerExecutesFunction(t *testing.T) {
	var got string
	handler := NewHandler(func(ctx context.Context, msg testMessage) error {
		got = msg.Value
		return nil
	})

	if err := handler.Execute(context.Background(), testMessage{Value: "payload"}); err != nil {
		t.Fatalf("Execute returned error: %v", err)
	}
	if got != "payload" {
		t.Fatalf("expected handler invoked with message, got %q", got)
	}
}

func TestHandlerRejectsInvalidMessage(t *testing.T) {
	var invoked bool
	handler := NewHandler(func(ctx context.Context, msg testMessage) error {
		invoked = true
		return nil
	})

	err := handler.Execute(context.Background(), testMessage{invalid: true})
	if err == nil {
		t.Fatal("expected validation error")
	}
	if invoked {
		t.Fatal("expected handler function skipped")
	}
	if !goerrors.IsWrapped(err) {
		t.Fatalf("expected wrapped error, got %T", err)
	}
}

func TestHandlerWrapsExecutionError(t *testing.T) {
	boom := errors.New("downstream failure")
	handler := NewHandler(func(ctx context.Context, msg testMessage) error {
		return boom
	})

	err := handler.Execute(context.Background(), testMessage{})
	if err == nil {
		t.Fatal("expected execution error")
	}
	if !errors.Is(err, boom) {
		t.Fatalf("expected original error preserved, got %v", err)
	}
}

func TestHandlerKeepsAlreadyWrappedErrors(t *testing.T) {
	wrapped := goerrors.Wrap(errors.New("remote said no"), goerrors.CategoryExternal, "publish entry").
		WithTextCode("WORDPRESS_PUBLISH_FAILED")
	handler := NewHandler(func(ctx context.Context, msg testMessage) error {
		return wrapped
	})

	err := handler.Execute(context.Background(), testMessage{})
	if !errors.Is(err, wrapped) {
		t.Fatalf("expected wrapped error passed through, got %v", err)
	}
}

func TestHandlerHonoursCancelledContext(t *testing.T) {
	var invoked bool
	handler := NewHandler(func(ctx context.Context, msg testMessage) error {
		invoked = true
		return nil
	})

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	if err := handler.Execute(ctx, testMessage{}); err == nil {
		t.Fatal("expected context error")
	}
	if invoked {
		t.Fatal("expected handler function skipped after cancellation")
	}
}

func TestHandlerAcceptsNilContext(t *testing.T) {
	handler := NewHandler(func(ctx context.Context, msg testMessage) error {
		if ctx == nil {
			t.Fatal("expected non-nil context")
		}
		return nil
	})

	var nilCtx context.Context
	if err := handler.Execute(nilCtx, testMessage{}); err != nil {
		t.Fatalf("Execute returned error: %v", err)
	}
}

func TestHandlerRunsUnboundedByDefault(t *testing.T) {
	handler := NewHandler(func(ctx context.Context, msg testMessage) error {
		if _, ok := ctx.Deadline(); ok {
			t.Fatal("expected no deadline by default")
		}
		return nil
	})

	if err := handler.Execute(context.Background(), testMessage{}); err != nil {
		t.Fatalf("Execute returned error: %v", err)
	}
}

func TestHandlerAppliesConfiguredTimeout(t *testing.T) {
	handler := NewHandler(func(ctx context.Context, msg testMessage) error {
		if _, ok := ctx.Deadline(); !ok {
			t.Fatal("expected deadline when timeout configured")
		}
		return nil
	}, WithTimeout[testMessage](time.Minute))

	if err := handler.Execute(context.Background(), testMessage{}); err != nil {
		t.Fatalf("Execute returned error: %v", err)
	}
}

func TestNewHandlerPanicsWithoutFunction(t *testing.T) {
	defer func() {
		if recover() == nil {
			t.Fatal("expected panic for nil handler function")
		}
	}()
	NewHandler[testMessage](nil)
}
