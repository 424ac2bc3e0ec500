package diagfmt

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"strings"
	"sync"
	"testing"

	"konf/internal/diag"
	"konf/internal/source"
)

func buildDiag(t *testing.T, kind diag.Kind, locs []source.Location, args ...string) diag.Diagnostic {
	t.Helper()
	d, err := diag.Build(kind, locs, args...)
	if err != nil {
		t.Fatalf("Build(%v) failed: %v", kind, err)
	}
	return d
}

func TestWriteLayout(t *testing.T) {
	tests := []struct {
		name     string
		kind     diag.Kind
		locs     []source.Location
		args     []string
		expected string
	}{
		{
			name: "deprecation warning with template",
			kind: diag.Deprecated,
			locs: []source.Location{{Path: "main.k", Line: 10}},
			args: []string{"name", "since version 1.16, use firstName and lastName instead"},
			expected: "main.k:10\n" +
				"\n" +
				"warning: name was deprecated since version 1.16, use firstName and lastName instead\n",
		},
		{
			name: "evaluation error with direct message",
			kind: diag.EvaluationError,
			locs: []source.Location{{Path: "main.k", Line: 9}},
			args: []string{"attribute 'type' of WithComponent is required and can't be None or Undefined"},
			expected: "main.k:9\n" +
				"\n" +
				"error: attribute 'type' of WithComponent is required and can't be None or Undefined\n",
		},
		{
			name: "two locations keep attachment order",
			kind: diag.UniqueKeyError,
			locs: []source.Location{
				{Path: "schemas.k", Line: 5},
				{Path: "main.k", Line: 12, Col: 3},
			},
			args: []string{"appConfig"},
			expected: "schemas.k:5\n" +
				"main.k:12:3\n" +
				"\n" +
				"error: Unique key error name 'appConfig'\n",
		},
		{
			name: "column is rendered when present",
			kind: diag.TypeError,
			locs: []source.Location{{Path: "main.k", Line: 2, Col: 1}},
			args: []string{"expect int, got str(s)"},
			expected: "main.k:2:1\n" +
				"\n" +
				"error: expect int, got str(s)\n",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			d := buildDiag(t, tt.kind, tt.locs, tt.args...)
			var buf bytes.Buffer
			if err := Write(&buf, d); err != nil {
				t.Fatalf("Write failed: %v", err)
			}
			if got := buf.String(); got != tt.expected {
				t.Fatalf("rendered output:\n%q\nwant:\n%q", got, tt.expected)
			}
		})
	}
}

func TestWriteIdempotent(t *testing.T) {
	d := buildDiag(t, diag.EvaluationError,
		[]source.Location{{Path: "main.k", Line: 9}},
		"attribute 'type' of WithComponent is required and can't be None or Undefined")

	var first, second bytes.Buffer
	if err := Write(&first, d); err != nil {
		t.Fatalf("first Write failed: %v", err)
	}
	if err := Write(&second, d); err != nil {
		t.Fatalf("second Write failed: %v", err)
	}
	if !bytes.Equal(first.Bytes(), second.Bytes()) {
		t.Fatalf("rendering is not idempotent:\n%q\nvs\n%q", first.String(), second.String())
	}
}

type failingSink struct{ err error }

func (s failingSink) Write([]byte) (int, error) { return 0, s.err }

func TestWriteSinkError(t *testing.T) {
	cause := errors.New("pipe closed")
	d := buildDiag(t, diag.CompileError, []source.Location{{Path: "main.k", Line: 1}}, "boom")

	err := Write(failingSink{err: cause}, d)
	var sinkErr *SinkWriteError
	if !errors.As(err, &sinkErr) {
		t.Fatalf("error = %v, want SinkWriteError", err)
	}
	if !errors.Is(err, cause) {
		t.Fatal("SinkWriteError does not wrap the sink's error")
	}
}

func TestRenderContextCanceled(t *testing.T) {
	var buf bytes.Buffer
	r := NewRenderer(&buf, Options{})
	d := buildDiag(t, diag.CompileError, []source.Location{{Path: "main.k", Line: 1}}, "boom")

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	err := r.RenderContext(ctx, d)
	var sinkErr *SinkWriteError
	if !errors.As(err, &sinkErr) {
		t.Fatalf("error = %v, want SinkWriteError", err)
	}
	if !errors.Is(err, context.Canceled) {
		t.Fatalf("error does not wrap context.Canceled: %v", err)
	}
	if buf.Len() != 0 {
		t.Fatalf("canceled render touched the sink: %q", buf.String())
	}
}

func TestRendererSerializesConcurrentWrites(t *testing.T) {
	const workers = 8

	var buf bytes.Buffer
	r := NewRenderer(&buf, Options{})

	var wg sync.WaitGroup
	for i := 0; i < workers; i++ {
		i := i
		wg.Add(1)
		go func() {
			defer wg.Done()
			d := diag.MustBuild(diag.CompileError,
				[]source.Location{{Path: fmt.Sprintf("file%d.k", i), Line: uint32(i + 1)}},
				fmt.Sprintf("message %d", i))
			if err := r.Render(d); err != nil {
				t.Errorf("Render failed: %v", err)
			}
		}()
	}
	wg.Wait()

	// Order is unspecified, but every block must appear whole.
	got := buf.String()
	for i := 0; i < workers; i++ {
		block := fmt.Sprintf("file%d.k:%d\n\nerror: message %d\n", i, i+1, i)
		if !strings.Contains(got, block) {
			t.Fatalf("output is missing or interleaves block %d:\n%q", i, got)
		}
	}
}
