package errors

import (
	"bytes"
	stderrors "errors"
	"io/fs"
	"log/slog"
	"strings"
	"testing"
	"time"
)

func TestMotionErrorString(t *testing.T) {
	err := &MotionError{
		Op:   "config.Parse",
		Kind: KindParsing,
		Err:  stderrors.New("bad yaml"),
	}
	got := err.Error()
	want := "config.Parse [parsing]: bad yaml"
	if got != want {
		t.Errorf("Error() = %q, want %q", got, want)
	}
}

func TestMotionErrorWithPath(t *testing.T) {
	err := &MotionError{
		Op:   "config.Load",
		Kind: KindConfig,
		Path: "motion.yaml",
		Err:  fs.ErrPermission,
	}
	if !strings.Contains(err.Error(), "path=motion.yaml") {
		t.Errorf("error string %q should contain path", err.Error())
	}
	if !stderrors.Is(err, fs.ErrPermission) {
		t.Error("expected errors.Is to see the wrapped cause")
	}
}

func TestNewSetsTimestamp(t *testing.T) {
	err := New("trace.Export", KindExport, stderrors.New("closed pipe"))
	if err.Timestamp.IsZero() {
		t.Error("expected Timestamp to be set")
	}
	var target *MotionError
	if !stderrors.As(error(err), &target) || target.Kind != KindExport {
		t.Errorf("errors.As failed or wrong kind: %+v", target)
	}
}

func TestErrorKindString(t *testing.T) {
	tests := []struct {
		kind ErrorKind
		want string
	}{
		{KindUnknown, "unknown"},
		{KindConfig, "config"},
		{KindParsing, "parsing"},
		{KindExport, "export"},
		{KindPanic, "panic"},
		{ErrorKind(99), "unknown"},
	}
	for _, tt := range tests {
		if got := tt.kind.String(); got != tt.want {
			t.Errorf("ErrorKind(%d).String() = %q, want %q", tt.kind, got, tt.want)
		}
	}
}

func TestPanicErrorString(t *testing.T) {
	err := &PanicError{Value: "boom"}
	if got := err.Error(); got != "panic: boom" {
		t.Errorf("Error() = %q", got)
	}
	err.Op = "animation.StepTickers"
	if got := err.Error(); got != "panic in animation.StepTickers: boom" {
		t.Errorf("Error() = %q", got)
	}
}

func TestReport(t *testing.T) {
	var captured *MotionError
	prev := SetHandler(&testHandler{
		onError: func(err *MotionError) { captured = err },
	})
	defer SetHandler(prev)

	Report(&MotionError{Op: "test.op", Kind: KindConfig, Err: stderrors.New("x")})

	if captured == nil {
		t.Fatal("expected error to be captured")
	}
	if captured.Op != "test.op" {
		t.Errorf("Op = %q, want %q", captured.Op, "test.op")
	}
	if captured.Timestamp.IsZero() {
		t.Error("expected Timestamp to be set")
	}
}

func TestReportPanic(t *testing.T) {
	var captured *PanicError
	prev := SetHandler(&testHandler{
		onPanic: func(err *PanicError) { captured = err },
	})
	defer SetHandler(prev)

	ReportPanic(&PanicError{Value: "test panic value", Timestamp: time.Now()})

	if captured == nil {
		t.Fatal("expected panic to be captured")
	}
	if captured.Value != "test panic value" {
		t.Errorf("Value = %v, want %q", captured.Value, "test panic value")
	}
}

func TestRecover(t *testing.T) {
	var captured *PanicError
	prev := SetHandler(&testHandler{
		onPanic: func(err *PanicError) { captured = err },
	})
	defer SetHandler(prev)

	func() {
		defer Recover("test.recover")
		panic("intentional test panic")
	}()

	if captured == nil {
		t.Fatal("expected panic to be recovered and captured")
	}
	if captured.Op != "test.recover" {
		t.Errorf("Op = %q, want %q", captured.Op, "test.recover")
	}
	if captured.StackTrace == "" {
		t.Error("expected a stack trace")
	}
}

func TestCaptureStack(t *testing.T) {
	stack := CaptureStack()
	if !strings.Contains(stack, "testing") && !strings.Contains(stack, "runtime") {
		t.Errorf("stack trace should contain testing or runtime frames, got: %s", stack)
	}
}

func TestSetHandlerNil(t *testing.T) {
	prev := SetHandler(nil)
	defer SetHandler(prev)
	if _, ok := DefaultHandler.(*LogHandler); !ok {
		t.Errorf("SetHandler(nil) should set LogHandler, got %T", DefaultHandler)
	}
}

func TestLogHandlerWritesStructuredRecords(t *testing.T) {
	var buf bytes.Buffer
	h := &LogHandler{
		Logger:  slog.New(slog.NewTextHandler(&buf, nil)),
		Verbose: true,
	}

	h.HandleError(&MotionError{
		Op:         "trace.Export",
		Kind:       KindExport,
		Err:        stderrors.New("short write"),
		StackTrace: "main.main",
	})
	h.HandlePanic(&PanicError{Op: "animation.StepTickers", Value: "listener"})
	h.HandleError(nil)

	out := buf.String()
	for _, want := range []string{"op=trace.Export", "kind=export", `err="short write"`, "stack=main.main", "value=listener"} {
		if !strings.Contains(out, want) {
			t.Errorf("log output missing %q:\n%s", want, out)
		}
	}
}

type testHandler struct {
	onError func(*MotionError)
	onPanic func(*PanicError)
}

func (h *testHandler) HandleError(err *MotionError) {
	if h.onError != nil {
		h.onError(err)
	}
}

func (h *testHandler) HandlePanic(err *PanicError) {
	if h.onPanic != nil {
		h.onPanic(err)
	}
}
