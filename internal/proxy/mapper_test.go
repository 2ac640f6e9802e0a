package proxy_test

import (
	"context"
	"log/slog"
	"path/filepath"
	"sync"
	"testing"

	"prevgen/internal/proxy"
)

// recordingHandler captures log records so tests can assert on warnings.
type recordingHandler struct {
	mu      sync.Mutex
	records []slog.Record
}

func (h *recordingHandler) Enabled(context.Context, slog.Level) bool { return true }

func (h *recordingHandler) Handle(_ context.Context, record slog.Record) error {
	h.mu.Lock()
	defer h.mu.Unlock()
	h.records = append(h.records, record)
	return nil
}

func (h *recordingHandler) WithAttrs([]slog.Attr) slog.Handler { return h }
func (h *recordingHandler) WithGroup(string) slog.Handler      { return h }

func (h *recordingHandler) warnings() int {
	h.mu.Lock()
	defer h.mu.Unlock()
	count := 0
	for _, record := range h.records {
		if record.Level == slog.LevelWarn {
			count++
		}
	}
	return count
}

func TestMapPath(t *testing.T) {
	tests := []struct {
		name      string
		source    string
		container string
		rule      proxy.PathMappingRule
		want      string
	}{
		{
			name:      "full relocation with trim and append",
			source:    "/Volumes/RAW/Projects/2024/BMW/Footage/A-Cam/A001.mov",
			container: "mp4",
			rule: proxy.PathMappingRule{
				MarkerFolder: "Projects",
				NewBase:      "/Volumes/Proxies",
				RemoveLevels: 1,
				AppendFolder: "proxies",
			},
			want: "/Volumes/Proxies/Projects/2024/BMW/Footage/proxies/A001.mp4",
		},
		{
			name:      "marker as final directory segment",
			source:    "/Volumes/RAW/Projects/clip.mov",
			container: "mp4",
			rule: proxy.PathMappingRule{
				MarkerFolder: "Projects",
				NewBase:      "/mnt/proxies",
			},
			want: "/mnt/proxies/Projects/clip.mp4",
		},
		{
			name:      "append only",
			source:    "/media/shoot/day1/clip.mov",
			container: "mov",
			rule:      proxy.PathMappingRule{AppendFolder: "proxies"},
			want:      "/media/shoot/day1/proxies/clip.mov",
		},
		{
			name:      "no-op rule maps into source directory with suffix",
			source:    "/media/shoot/day1/clip.mov",
			container: "mp4",
			rule:      proxy.PathMappingRule{},
			want:      "/media/shoot/day1/clip_proxy.mp4",
		},
		{
			name:      "substitution landing back in source directory gains suffix",
			source:    "/Volumes/RAW/Footage/clip.mov",
			container: "mp4",
			rule: proxy.PathMappingRule{
				MarkerFolder: "RAW",
				NewBase:      "/Volumes",
			},
			want: "/Volumes/RAW/Footage/clip_proxy.mp4",
		},
		{
			name:      "trim clamps at filesystem root",
			source:    "/a/clip.mov",
			container: "mp4",
			rule:      proxy.PathMappingRule{RemoveLevels: 10, AppendFolder: "proxies"},
			want:      "/proxies/clip.mp4",
		},
		{
			name:      "extension always follows the container",
			source:    "/media/clip.braw",
			container: "mxf",
			rule:      proxy.PathMappingRule{AppendFolder: "out"},
			want:      "/media/out/clip.mxf",
		},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			got := proxy.MapPath(tc.source, tc.container, tc.rule, nil)
			if got != filepath.FromSlash(tc.want) {
				t.Fatalf("MapPath = %q, want %q", got, tc.want)
			}
			// Deterministic: a second application yields the same result.
			if again := proxy.MapPath(tc.source, tc.container, tc.rule, nil); again != got {
				t.Fatalf("MapPath not deterministic: %q then %q", got, again)
			}
		})
	}
}

func TestMapPathMissingMarkerWarnsAndContinues(t *testing.T) {
	handler := &recordingHandler{}
	logger := slog.New(handler)

	rule := proxy.PathMappingRule{
		MarkerFolder: "Projects",
		NewBase:      "/mnt/proxies",
		RemoveLevels: 1,
		AppendFolder: "proxies",
	}
	got := proxy.MapPath("/media/shoot/day1/clip.mov", "mp4", rule, logger)

	unmapped := rule
	unmapped.MarkerFolder = ""
	unmapped.NewBase = ""
	want := proxy.MapPath("/media/shoot/day1/clip.mov", "mp4", unmapped, nil)

	if got != want {
		t.Fatalf("missing marker should behave like substitution disabled: got %q, want %q", got, want)
	}
	if handler.warnings() != 1 {
		t.Fatalf("expected exactly one warning, got %d", handler.warnings())
	}
}
