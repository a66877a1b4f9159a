package php

import (
	"context"
	"errors"
	"os"
	"path/filepath"
	"runtime"
	"testing"
	"time"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/hay-kot/factprobe/internal/core/fact"
	"github.com/hay-kot/factprobe/pkg/executil"
)

const phpPath = "/usr/bin/php"

func newProbe(e executil.Executor) *ExtensionDirProbe {
	return NewExtensionDirProbe(e, Options{Timeout: time.Second}, zerolog.Nop())
}

func TestExtensionDirProbe_NotOnPath(t *testing.T) {
	e := &executil.RecordingExecutor{}

	got := newProbe(e).Resolve(context.Background())

	assert.False(t, got.IsPresent())
	assert.Empty(t, e.Calls(), "no subprocess may be spawned when php is missing")
}

func TestExtensionDirProbe_Resolves(t *testing.T) {
	e := &executil.RecordingExecutor{
		Paths:   map[string]string{"php": phpPath},
		Outputs: map[string][]byte{phpPath: []byte("extension_dir => /usr/lib/php/extensions\n")},
	}

	got := newProbe(e).Resolve(context.Background())

	assert.Equal(t, fact.Some("/usr/lib/php/extensions"), got)

	calls := e.Calls()
	require.Len(t, calls, 1)
	assert.Equal(t, phpPath, calls[0].Cmd)
	assert.Equal(t, []string{"-r", "ini_set('date.timezone','UTC'); phpinfo();"}, calls[0].Args)
}

func TestExtensionDirProbe_AbsentOutcomes(t *testing.T) {
	tests := []struct {
		name string
		out  []byte
		err  error
	}{
		{name: "no matching line", out: []byte("PHP Version => 8.2.7\nfile_uploads => On => On\n")},
		{name: "empty output", out: nil},
		{name: "whitespace output", out: []byte("\n  \n")},
		{
			name: "non-zero exit with partial output",
			out:  []byte("extension_dir => /usr/lib/php/extensions\n"),
			err:  errors.New("exec php: exit status 255"),
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			e := &executil.RecordingExecutor{
				Paths:   map[string]string{"php": phpPath},
				Outputs: map[string][]byte{phpPath: tt.out},
				Errors:  map[string]error{phpPath: tt.err},
			}

			got := newProbe(e).Resolve(context.Background())

			assert.False(t, got.IsPresent())
			assert.Len(t, e.Calls(), 1)
		})
	}
}

func TestExtensionDirProbe_CustomOptions(t *testing.T) {
	e := &executil.RecordingExecutor{
		Paths:   map[string]string{"php8.2": "/opt/php/bin/php8.2"},
		Outputs: map[string][]byte{"/opt/php/bin/php8.2": []byte("extension_dir => /opt/php/ext => /opt/php/ext\n")},
	}

	p := NewExtensionDirProbe(e, Options{Binary: "php8.2", Timezone: "Europe/Berlin"}, zerolog.Nop())
	got := p.Resolve(context.Background())

	assert.Equal(t, fact.Some("/opt/php/ext"), got)
	require.Len(t, e.Calls(), 1)
	assert.Equal(t, "ini_set('date.timezone','Europe/Berlin'); phpinfo();", e.Calls()[0].Args[1])
}

func TestExtensionDirProbe_Idempotent(t *testing.T) {
	e := &executil.RecordingExecutor{
		Paths:   map[string]string{"php": phpPath},
		Outputs: map[string][]byte{phpPath: []byte("extension_dir => /usr/lib/php/20220829 => /usr/lib/php/20220829\n")},
	}
	p := newProbe(e)

	first := p.Resolve(context.Background())
	second := p.Resolve(context.Background())

	assert.Equal(t, first, second)
	assert.Len(t, e.Calls(), 2)
}

// writeFakePHP installs a shell script named php in a fresh directory and
// puts that directory first on PATH.
func writeFakePHP(t *testing.T, body string) string {
	t.Helper()
	if runtime.GOOS == "windows" {
		t.Skip("fake interpreter is a shell script")
	}

	dir := t.TempDir()
	script := "#!/bin/sh\n" +
		"if [ \"$1\" != \"-r\" ]; then exit 64; fi\n" +
		"case \"$2\" in *\"ini_set('date.timezone','UTC')\"*\"phpinfo();\"*) ;; *) exit 65 ;; esac\n" +
		body
	require.NoError(t, os.WriteFile(filepath.Join(dir, "php"), []byte(script), 0o755))

	t.Setenv("PATH", dir+string(os.PathListSeparator)+os.Getenv("PATH"))
	return dir
}

func TestExtensionDirProbe_RealExecutor(t *testing.T) {
	tests := []struct {
		name string
		body string
		want fact.Value
	}{
		{
			name: "example scenario",
			body: "echo 'PHP Version => 8.2.7'\necho 'extension_dir => /usr/lib/php/20220829 => /usr/lib/php/20220829'\n",
			want: fact.Some("/usr/lib/php/20220829"),
		},
		{
			name: "stderr warnings ignored",
			body: "echo 'PHP Warning: something' >&2\necho 'extension_dir => /usr/lib/php/extensions'\n",
			want: fact.Some("/usr/lib/php/extensions"),
		},
		{
			name: "missing line",
			body: "echo 'PHP Version => 8.2.7'\n",
			want: fact.Absent(),
		},
		{
			name: "non-zero exit",
			body: "echo 'extension_dir => /usr/lib/php/extensions'\nexit 1\n",
			want: fact.Absent(),
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			writeFakePHP(t, tt.body)
			p := newProbe(&executil.RealExecutor{})

			assert.Equal(t, tt.want, p.Resolve(context.Background()))
			assert.Equal(t, tt.want, p.Resolve(context.Background()), "second call must agree")
		})
	}
}

func TestExtensionDirProbe_RealExecutor_NoPHP(t *testing.T) {
	t.Setenv("PATH", t.TempDir())

	got := newProbe(&executil.RealExecutor{}).Resolve(context.Background())
	assert.False(t, got.IsPresent())
}

func TestExtensionDirProbe_Timeout(t *testing.T) {
	writeFakePHP(t, "exec sleep 5\n")

	p := NewExtensionDirProbe(&executil.RealExecutor{}, Options{Timeout: 100 * time.Millisecond}, zerolog.Nop())

	start := time.Now()
	got := p.Resolve(context.Background())

	assert.False(t, got.IsPresent())
	assert.Less(t, time.Since(start), 4*time.Second)
}
