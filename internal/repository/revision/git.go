package revision

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"os/exec"
	"strings"
	"time"

	"github.com/oshokin/chainkit-mutate/internal/logger"
)

const (
	// DefaultBinary is the revision-control tool that is invoked.
	DefaultBinary = "git"

	// DefaultTimeout bounds a single lookup.
	DefaultTimeout = 10 * time.Second
)

var (
	// ErrToolNotFound means the binary could not be spawned.
	ErrToolNotFound = errors.New("revision tool not found")
	// ErrCommandFailed means the tool exited with a non-zero status.
	ErrCommandFailed = errors.New("revision lookup failed")
	// ErrEmptyRevision means the tool succeeded but printed nothing.
	ErrEmptyRevision = errors.New("revision lookup returned no output")
)

// Resolver returns the current revision identifier.
type Resolver interface {
	Resolve(ctx context.Context) (string, error)
}

// GitResolver runs `git rev-parse HEAD`.
type GitResolver struct {
	// binary is the executable name or path.
	binary string
	// dir is the working directory of the child process; empty means inherit.
	dir string
	// timeout bounds the child process lifetime.
	timeout time.Duration
	// env is appended to the inherited environment.
	env []string
}

// Option configures a GitResolver.
type Option func(*GitResolver)

// WithBinary overrides the executable.
func WithBinary(binary string) Option {
	return func(r *GitResolver) {
		if binary != "" {
			r.binary = binary
		}
	}
}

// WithDir runs the lookup inside dir.
func WithDir(dir string) Option {
	return func(r *GitResolver) {
		r.dir = dir
	}
}

// WithTimeout sets the lookup timeout. Non-positive values are ignored.
func WithTimeout(timeout time.Duration) Option {
	return func(r *GitResolver) {
		if timeout > 0 {
			r.timeout = timeout
		}
	}
}

// WithEnv appends KEY=VALUE pairs to the child environment.
func WithEnv(env ...string) Option {
	return func(r *GitResolver) {
		r.env = append(r.env, env...)
	}
}

// NewGitResolver creates a resolver with defaults applied before opts.
func NewGitResolver(opts ...Option) *GitResolver {
	r := &GitResolver{
		binary:  DefaultBinary,
		timeout: DefaultTimeout,
	}

	for _, opt := range opts {
		opt(r)
	}

	return r
}

// Resolve returns the trimmed full commit hash of HEAD.
func (r *GitResolver) Resolve(ctx context.Context) (string, error) {
	cmdCtx, cancel := context.WithTimeout(ctx, r.timeout)
	defer cancel()

	cmd := exec.CommandContext(cmdCtx, r.binary, "rev-parse", "HEAD")
	cmd.Dir = r.dir

	if len(r.env) > 0 {
		cmd.Env = append(os.Environ(), r.env...)
	}

	var stderr bytes.Buffer

	cmd.Stderr = &stderr

	logger.DebugKV(ctx, "Resolving revision", "command", strings.Join(cmd.Args, " "), "dir", r.dir)

	output, err := cmd.Output()
	if err != nil {
		if ctxErr := ctx.Err(); ctxErr != nil {
			return "", fmt.Errorf("resolve revision: %w", ctxErr)
		}

		return "", r.classify(cmdCtx, err, stderr.String())
	}

	revision := strings.TrimSpace(string(output))
	if revision == "" {
		return "", ErrEmptyRevision
	}

	return revision, nil
}

// classify maps exec errors to the package sentinels. A cancelled parent
// context is reported by Resolve before classify runs, so a context error
// here is the lookup timeout.
func (r *GitResolver) classify(ctx context.Context, err error, stderr string) error {
	if ctxErr := ctx.Err(); ctxErr != nil {
		return fmt.Errorf("%w: %s timed out after %s: %w", ErrCommandFailed, r.binary, r.timeout, ctxErr)
	}

	if errors.Is(err, exec.ErrNotFound) || errors.Is(err, fs.ErrNotExist) {
		return fmt.Errorf("%w: %s: %w", ErrToolNotFound, r.binary, err)
	}

	var exitErr *exec.ExitError
	if errors.As(err, &exitErr) {
		if msg := strings.TrimSpace(stderr); msg != "" {
			return fmt.Errorf("%w: exit status %d: %s", ErrCommandFailed, exitErr.ExitCode(), msg)
		}

		return fmt.Errorf("%w: exit status %d", ErrCommandFailed, exitErr.ExitCode())
	}

	return fmt.Errorf("run %s: %w", r.binary, err)
}
