package backend_test

import (
	"context"
	"errors"
	"reflect"
	"runtime"
	"strings"
	"testing"

	"go.trai.ch/fbgen/internal/adapters/backend"
	"go.trai.ch/fbgen/internal/core/domain"
	"go.trai.ch/zerr"
)

type recordLogger struct {
	infos []string
	warns []string
}

func (l *recordLogger) Info(msg string) { l.infos = append(l.infos, msg) }
func (l *recordLogger) Warn(msg string) { l.warns = append(l.warns, msg) }
func (l *recordLogger) Error(error)     {}

func TestBuildArgs(t *testing.T) {
	cases := []struct {
		name     string
		settings domain.Settings
		want     []string
	}{
		{
			name:     "defaults",
			settings: domain.Settings{},
			want:     []string{"-config", "fbgen.bff", "-summary", "all"},
		},
		{
			name:     "distribution",
			settings: domain.Settings{DistributionEnabled: true},
			want:     []string{"-config", "fbgen.bff", "-dist", "-summary", "all"},
		},
		{
			name:     "cache readwrite",
			settings: domain.Settings{CacheMode: domain.CacheReadWrite},
			want:     []string{"-config", "fbgen.bff", "-cache", "-summary", "all"},
		},
		{
			name:     "cache read",
			settings: domain.Settings{CacheMode: domain.CacheRead},
			want:     []string{"-config", "fbgen.bff", "-cacheread", "-summary", "all"},
		},
		{
			name:     "cache write",
			settings: domain.Settings{CacheMode: domain.CacheWrite},
			want:     []string{"-config", "fbgen.bff", "-cachewrite", "-summary", "all"},
		},
		{
			name:     "everything",
			settings: domain.Settings{DistributionEnabled: true, CacheMode: domain.CacheReadWrite},
			want:     []string{"-config", "fbgen.bff", "-dist", "-cache", "-summary", "all"},
		},
	}

	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			got := backend.BuildArgs("fbgen.bff", &c.settings)
			if !reflect.DeepEqual(got, c.want) {
				t.Errorf("expected %v, got %v", c.want, got)
			}
		})
	}
}

func TestRun_StreamsOutput(t *testing.T) {
	if runtime.GOOS == "windows" {
		t.Skip("relies on echo")
	}
	log := &recordLogger{}
	r := backend.NewRunner(log)

	// echo prints its arguments and succeeds, standing in for the backend.
	settings := &domain.Settings{BackendPath: "echo"}
	if err := r.Run(context.Background(), "fbgen.bff", settings); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	joined := strings.Join(log.infos, "\n")
	if !strings.Contains(joined, "-config fbgen.bff") {
		t.Errorf("expected echoed arguments in the log, got %q", joined)
	}
}

func TestRun_FailureReportsExitCode(t *testing.T) {
	if runtime.GOOS == "windows" {
		t.Skip("relies on false")
	}
	r := backend.NewRunner(&recordLogger{})

	settings := &domain.Settings{BackendPath: "false"}
	err := r.Run(context.Background(), "fbgen.bff", settings)
	if err == nil {
		t.Fatal("expected error for failing backend, got nil")
	}
	if !errors.Is(err, domain.ErrBackendFailed) {
		t.Fatalf("expected ErrBackendFailed, got %v", err)
	}

	zErr, ok := err.(*zerr.Error)
	if !ok {
		t.Fatalf("expected *zerr.Error, got %T", err)
	}
	meta := zErr.Metadata()
	if code, ok := meta["exit_code"].(int); !ok || code != 1 {
		t.Errorf("expected exit_code=1, got %v", meta["exit_code"])
	}
}

func TestRun_MissingBackend(t *testing.T) {
	r := backend.NewRunner(&recordLogger{})

	settings := &domain.Settings{BackendPath: "definitely-not-a-real-backend"}
	err := r.Run(context.Background(), "fbgen.bff", settings)
	if err == nil {
		t.Fatal("expected error for missing backend, got nil")
	}
	if !strings.Contains(err.Error(), "failed to start backend") {
		t.Errorf("unexpected error: %v", err)
	}
}
