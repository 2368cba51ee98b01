package mutator

import (
	"context"
	"fmt"
	"io"
	"os"

	"github.com/oshokin/chainkit-mutate/internal/config"
	"github.com/oshokin/chainkit-mutate/internal/domain/rewrite"
	"github.com/oshokin/chainkit-mutate/internal/logger"
	"github.com/oshokin/chainkit-mutate/internal/repository/revision"
	"github.com/oshokin/chainkit-mutate/internal/repository/source"
	"github.com/oshokin/chainkit-mutate/internal/version"
)

// Options contains inputs for the mutator entry point.
type Options struct {
	// ConfigPath is an optional YAML settings file; empty uses defaults.
	ConfigPath string
	// Strict forces failure on an unclosed region regardless of the file setting.
	Strict bool
	// DryRun prints the result to Output instead of rewriting the target.
	DryRun bool
	// Output receives dry-run results; nil means os.Stdout.
	Output io.Writer
}

// mutator holds the collaborators of a single run.
type mutator struct {
	// cfg is the validated configuration.
	cfg *config.Config
	// resolver provides the revision stamped into the header.
	resolver revision.Resolver
	// repo reads and writes the target file.
	repo source.Repository
	// dryRun diverts the result to out.
	dryRun bool
	// out receives dry-run results.
	out io.Writer
}

// Run loads settings and rewrites the target file once.
func Run(ctx context.Context, opts *Options) error {
	ctx = logger.WithName(ctx, "chainkit-mutate")

	cfg, err := config.Load(opts.ConfigPath)
	if err != nil {
		return fmt.Errorf("load settings: %w", err)
	}

	if opts.Strict {
		cfg.Strict = true
	}

	out := opts.Output
	if out == nil {
		out = os.Stdout
	}

	repo := source.NewFileRepository(cfg.Target)
	ctx = logger.WithKV(ctx, "path", repo.Path())

	logger.DebugKV(ctx, "Starting rewrite", "tool_version", version.Short())

	m := &mutator{
		cfg: cfg,
		resolver: revision.NewGitResolver(
			revision.WithDir(cfg.RepoDir),
			revision.WithTimeout(cfg.GitTimeout),
		),
		repo:   repo,
		dryRun: opts.DryRun,
		out:    out,
	}

	if err = m.Run(ctx); err != nil {
		return err
	}

	logger.Info(ctx, "Rewrite completed successfully")

	return nil
}

// Run resolves the revision, filters the file and stores the result.
func (m *mutator) Run(ctx context.Context) error {
	rev, err := m.resolveVersion(ctx)
	if err != nil {
		return err
	}

	lines, err := m.repo.Load(ctx)
	if err != nil {
		return err
	}

	res := rewrite.Filter(lines, m.cfg.Markers(), m.cfg.Mode())
	if res.Unclosed() {
		if m.cfg.Strict {
			return fmt.Errorf("%w: opened at line %d", rewrite.ErrUnclosedRegion, res.OpenedAt)
		}

		logger.WarnKV(ctx, fmt.Sprintf("Marker region opened at line %d is never closed", res.OpenedAt),
			"mode", m.cfg.Mode())
	}

	output := rewrite.Apply(rewrite.Header(m.cfg.LintDirective, rev), res.Lines)

	logger.DebugKV(ctx, "Filtered source",
		"input_lines", len(lines), "dropped", res.Dropped, "regions", res.Regions)

	if m.dryRun {
		if _, err = io.WriteString(m.out, rewrite.Join(output)); err != nil {
			return fmt.Errorf("write dry-run output: %w", err)
		}

		return nil
	}

	if err = ctx.Err(); err != nil {
		return fmt.Errorf("rewrite interrupted: %w", err)
	}

	if err = m.repo.Save(ctx, output); err != nil {
		return err
	}

	logger.InfoKV(ctx, "Rewrote source file", "version", rev, "lines", len(output))

	return nil
}

// resolveVersion applies the configured policy to a failed revision lookup.
func (m *mutator) resolveVersion(ctx context.Context) (string, error) {
	rev, err := m.resolver.Resolve(ctx)
	if err == nil {
		return rev, nil
	}

	// An interrupted run must not fall back to the placeholder.
	if ctxErr := ctx.Err(); ctxErr != nil {
		return "", fmt.Errorf("resolve version: %w: %w", ctxErr, err)
	}

	if m.cfg.VersionPolicy == config.PolicyAbort {
		return "", fmt.Errorf("resolve version: %w", err)
	}

	logger.WarnKV(ctx, "Could not resolve revision, using placeholder",
		"error", err, "placeholder", m.cfg.VersionPlaceholder)

	return m.cfg.VersionPlaceholder, nil
}
