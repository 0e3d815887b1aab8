package commands

import (
	"context"
	"fmt"
	"os/signal"
	"path/filepath"
	"syscall"
	"time"

	"github.com/fsnotify/fsnotify"
	"github.com/leapstack-labs/minic/pkg/compiler"
	"github.com/spf13/cobra"
)

// watchDebounce coalesces the burst of events editors emit on save.
const watchDebounce = 100 * time.Millisecond

// NewWatchCommand creates the watch command.
func NewWatchCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "watch <file>",
		Short: "Recompile a file whenever it changes",
		Long: `Compile the file, then watch it and recompile after every change
until interrupted (Ctrl+C).`,
		Args: cobra.ExactArgs(1),
		RunE: runWatch,
	}
}

func runWatch(cmd *cobra.Command, args []string) error {
	cc := NewCommandContext(cmd)

	ctx, stop := signal.NotifyContext(cmd.Context(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	cc.Renderer.Success(fmt.Sprintf("Watching %s (Ctrl+C to stop)", args[0]))
	return watchAndCompile(ctx, args[0], cc.Compiler, func(res *compiler.Result) {
		cc.Renderer.Println(cc.Renderer.Muted(fmt.Sprintf("; %s @ %s", res.Name, time.Now().Format(time.TimeOnly))))
		for _, line := range res.Lines {
			cc.Renderer.Println(line)
		}
		if res.Err != nil {
			cc.Renderer.Error(res.Err.Error())
		}
	})
}

// watchAndCompile compiles path once and again after each change to it,
// handing every result to onResult. It returns when ctx is done.
//
// The parent directory is watched rather than the file, so saves that
// replace the file through a rename are still seen.
func watchAndCompile(ctx context.Context, path string, c *compiler.Compiler, onResult func(*compiler.Result)) error {
	abs, err := filepath.Abs(path)
	if err != nil {
		return fmt.Errorf("failed to resolve %s: %w", path, err)
	}

	watcher, err := fsnotify.NewWatcher()
	if err != nil {
		return fmt.Errorf("failed to create watcher: %w", err)
	}
	defer func() { _ = watcher.Close() }()

	if err := watcher.Add(filepath.Dir(abs)); err != nil {
		return fmt.Errorf("failed to watch %s: %w", path, err)
	}

	onResult(c.CompileFile(path))

	var debounce <-chan time.Time
	for {
		select {
		case <-ctx.Done():
			return nil
		case event, ok := <-watcher.Events:
			if !ok {
				return nil
			}
			if filepath.Clean(event.Name) != abs {
				continue
			}
			if event.Op&(fsnotify.Write|fsnotify.Create) == 0 {
				continue
			}
			debounce = time.After(watchDebounce)
		case <-debounce:
			debounce = nil
			onResult(c.CompileFile(path))
		case err, ok := <-watcher.Errors:
			if !ok {
				return nil
			}
			return fmt.Errorf("watch error: %w", err)
		}
	}
}
