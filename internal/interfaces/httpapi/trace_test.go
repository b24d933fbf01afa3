package httpapi

import (
	"context"
	"testing"

	"go.opentelemetry.io/otel/trace"
)

func TestShouldCreateHTTPAPISpan(t *testing.T) {
	cases := []struct {
		name string
		want bool
	}{
		{"httpapi.Handler.GetStats", true},
		{"httpapi.Handler.Healthz", true},
		{"httpapi.writeJSON", false},
		{"httpapi.CORS", false},
		{"", false},
	}
	for _, tc := range cases {
		if got := shouldCreateHTTPAPISpan(tc.name); got != tc.want {
			t.Fatalf("shouldCreateHTTPAPISpan(%q): got=%v want=%v", tc.name, got, tc.want)
		}
	}
}

func TestStartSpan_NoParent(t *testing.T) {
	ctx, span := startSpan(context.Background(), "httpapi.Handler.GetStats")
	if span.SpanContext().IsValid() {
		t.Fatalf("expected a noop span without a parent")
	}
	if trace.SpanFromContext(ctx).SpanContext().IsValid() {
		t.Fatalf("context must not gain a span")
	}
}
