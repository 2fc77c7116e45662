package commands

import (
	"context"
	"time"

	"github.com/goliatone/go-campaigns/internal/logging"
	"github.com/goliatone/go-campaigns/pkg/interfaces"
	command "github.com/goliatone/go-command"
)

const defaultHandlerTimeout = 30 * time.Second

// Handler adapts a service call into a go-command Commander, layering message
// validation, a bounded execution context, structured logging, and error
// categorisation around the wrapped function.
type Handler[T command.Message] struct {
	fn        command.CommandFunc[T]
	logger    interfaces.Logger
	timeout   time.Duration
	operation string
}

// HandlerOption configures a Handler instance.
type HandlerOption[T command.Message] func(*Handler[T])

// WithTimeout overrides the default execution timeout. Zero or negative
// disables the deadline entirely.
func WithTimeout[T command.Message](timeout time.Duration) HandlerOption[T] {
	return func(h *Handler[T]) {
		if timeout <= 0 {
			timeout = 0
		}
		h.timeout = timeout
	}
}

// WithLogger injects the logger used during execution.
func WithLogger[T command.Message](logger interfaces.Logger) HandlerOption[T] {
	return func(h *Handler[T]) {
		if logger == nil {
			logger = logging.NoOp()
		}
		h.logger = logger
	}
}

// WithOperation sets an operation name emitted with every log entry.
func WithOperation[T command.Message](operation string) HandlerOption[T] {
	return func(h *Handler[T]) {
		h.operation = operation
	}
}

// NewHandler wraps fn. Panics when fn is nil since a handler without a target
// is a programming error, not a runtime condition.
func NewHandler[T command.Message](fn command.CommandFunc[T], opts ...HandlerOption[T]) *Handler[T] {
	if fn == nil {
		panic("commands: handler function cannot be nil")
	}
	h := &Handler[T]{
		fn:      fn,
		logger:  logging.NoOp(),
		timeout: defaultHandlerTimeout,
	}
	for _, opt := range opts {
		opt(h)
	}
	return h
}

// Execute satisfies command.Commander[T].
func (h *Handler[T]) Execute(ctx context.Context, msg T) error {
	if err := command.ValidateMessage(msg); err != nil {
		return wrapValidationError(err)
	}

	if ctx == nil {
		ctx = context.Background()
	}
	if h.timeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, h.timeout)
		defer cancel()
	}

	if err := ctx.Err(); err != nil {
		return wrapContextError(err)
	}

	fields := map[string]any{"command": command.GetMessageType(msg)}
	if h.operation != "" {
		fields["operation"] = h.operation
	}
	ctx = logging.ContextWithFields(ctx, fields)
	logger := logging.WithFields(h.logger, fields)

	logger.Debug("command.execute.start")
	if err := h.fn(ctx, msg); err != nil {
		logger.Error("command.execute.failed", "error", err)
		return wrapExecuteError(err)
	}
	if err := ctx.Err(); err != nil {
		logger.Error("command.execute.context_error", "error", err)
		return wrapContextError(err)
	}

	logger.Info("command.execute.success")
	return nil
}
