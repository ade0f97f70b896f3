package commands_test

import (
	"bytes"
	"context"
	"errors"
	"io"
	"path/filepath"
	"testing"

	"github.com/pkgseg/pkgseg/cmd/pkgseg/commands"
	"github.com/pkgseg/pkgseg/internal/app"
	"github.com/pkgseg/pkgseg/internal/build"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type mockApp struct {
	generateFunc func(ctx context.Context, names []string, opts app.Options) error
	watchFunc    func(ctx context.Context, names []string, opts app.Options) error
	listFunc     func(w io.Writer, opts app.Options) error
}

func (m *mockApp) Generate(ctx context.Context, names []string, opts app.Options) error {
	if m.generateFunc != nil {
		return m.generateFunc(ctx, names, opts)
	}
	return nil
}

func (m *mockApp) Watch(ctx context.Context, names []string, opts app.Options) error {
	if m.watchFunc != nil {
		return m.watchFunc(ctx, names, opts)
	}
	return nil
}

func (m *mockApp) List(w io.Writer, opts app.Options) error {
	if m.listFunc != nil {
		return m.listFunc(w, opts)
	}
	return nil
}

func TestCommands_Generate(t *testing.T) {
	t.Run("wires flags correctly", func(t *testing.T) {
		var capturedOpts app.Options
		var capturedNames []string
		called := false

		mock := &mockApp{
			generateFunc: func(_ context.Context, names []string, opts app.Options) error {
				capturedOpts = opts
				capturedNames = names
				called = true
				return nil
			},
		}

		cli := commands.New(mock)
		cli.SetArgs([]string{"generate", "app", "--dir", "envs/demo", "--config", "custom.toml"})

		err := cli.Execute(context.Background())
		require.NoError(t, err)
		assert.True(t, called)
		assert.Equal(t, "envs/demo", capturedOpts.Dir)
		assert.Equal(t, "custom.toml", capturedOpts.ConfigPath)
		assert.Equal(t, []string{"app"}, capturedNames)
	})

	t.Run("defaults config path to the environment directory", func(t *testing.T) {
		var capturedOpts app.Options
		mock := &mockApp{
			generateFunc: func(_ context.Context, _ []string, opts app.Options) error {
				capturedOpts = opts
				return nil
			},
		}

		cli := commands.New(mock)
		cli.SetArgs([]string{"generate", "--dir", "envs/demo"})

		err := cli.Execute(context.Background())
		require.NoError(t, err)
		assert.Equal(t, filepath.Join("envs/demo", "PkgSegments.toml"), capturedOpts.ConfigPath)
	})

	t.Run("no arguments selects every segment", func(t *testing.T) {
		var capturedNames []string
		mock := &mockApp{
			generateFunc: func(_ context.Context, names []string, _ app.Options) error {
				capturedNames = names
				return nil
			},
		}

		cli := commands.New(mock)
		cli.SetArgs([]string{"generate"})

		err := cli.Execute(context.Background())
		require.NoError(t, err)
		assert.Empty(t, capturedNames)
	})

	t.Run("watch flag routes to watch mode", func(t *testing.T) {
		watched := false
		mock := &mockApp{
			generateFunc: func(_ context.Context, _ []string, _ app.Options) error {
				panic("should not be called")
			},
			watchFunc: func(_ context.Context, _ []string, _ app.Options) error {
				watched = true
				return nil
			},
		}

		cli := commands.New(mock)
		cli.SetArgs([]string{"generate", "--watch"})

		err := cli.Execute(context.Background())
		require.NoError(t, err)
		assert.True(t, watched)
	})

	t.Run("returns error on generation failure", func(t *testing.T) {
		mock := &mockApp{
			generateFunc: func(_ context.Context, _ []string, _ app.Options) error {
				return errors.New("simulated error")
			},
		}

		cli := commands.New(mock)
		cli.SetArgs([]string{"generate"})
		// Silence output to avoid polluting test logs
		cli.SetOutput(new(bytes.Buffer), new(bytes.Buffer))

		err := cli.Execute(context.Background())
		require.Error(t, err)
		assert.Contains(t, err.Error(), "simulated error")
	})
}

func TestCommands_List(t *testing.T) {
	mock := &mockApp{
		listFunc: func(w io.Writer, _ app.Options) error {
			_, err := io.WriteString(w, "SEGMENT\n")
			return err
		},
	}

	cli := commands.New(mock)
	buf := new(bytes.Buffer)
	cli.SetOutput(buf, buf)
	cli.SetArgs([]string{"list"})

	err := cli.Execute(context.Background())
	require.NoError(t, err)
	assert.Contains(t, buf.String(), "SEGMENT")
}

func TestCommands_Version(t *testing.T) {
	mock := &mockApp{}
	cli := commands.New(mock)

	buf := new(bytes.Buffer)
	cli.SetOutput(buf, buf)
	cli.SetArgs([]string{"version"})

	err := cli.Execute(context.Background())
	require.NoError(t, err)

	assert.Contains(t, buf.String(), build.Version)
}
