// Package app implements the application layer for metapin.
package app

import (
	"bytes"
	"context"
	"io"
	"os"

	"go.trai.ch/metapin/internal/core/domain"
	"go.trai.ch/metapin/internal/core/ports"
	"go.trai.ch/metapin/internal/engine/rewriter"
	"go.trai.ch/zerr"
)

// App represents the main application logic.
type App struct {
	configLoader ports.ConfigLoader
	reader       ports.ControlReader
	writer       ports.ControlWriter
	resolvers    ports.ResolverFactory
	snapshots    ports.SnapshotStore
	logger       ports.Logger
	stdout       io.Writer
}

// New creates a new App instance.
func New(
	loader ports.ConfigLoader,
	reader ports.ControlReader,
	writer ports.ControlWriter,
	resolvers ports.ResolverFactory,
	snapshots ports.SnapshotStore,
	logger ports.Logger,
) *App {
	return &App{
		configLoader: loader,
		reader:       reader,
		writer:       writer,
		resolvers:    resolvers,
		snapshots:    snapshots,
		logger:       logger,
		stdout:       os.Stdout,
	}
}

// WithOutput sets the writer receiving the generated paragraph.
func (a *App) WithOutput(w io.Writer) *App {
	a.stdout = w
	return a
}

// snapshotSource is implemented by resolvers that replay a pin snapshot.
type snapshotSource interface {
	Snapshot() *domain.Snapshot
}

// RunOptions holds the command line overrides for a run. Empty fields keep the configured value.
type RunOptions struct {
	ConfigPath    string
	ControlPath   string
	SourcePackage string
	TargetPackage string
	Policy        string
	Resolver      string
	ListsDir      string
	SnapshotPath  string
	Architecture  string

	// WriteSnapshot, when set, stores the resolved pins at this path.
	WriteSnapshot string
}

// Run generates the pinned meta-package paragraph and prints it, preceded by two blank lines.
func (a *App) Run(ctx context.Context, opts RunOptions) error {
	// 1. Load the configuration
	cfg, err := a.configLoader.Load(opts.ConfigPath)
	if err != nil {
		return zerr.Wrap(err, "failed to load configuration")
	}
	applyOverrides(cfg, opts)
	if err := cfg.Validate(); err != nil {
		return err
	}
	policy, err := domain.PolicyByName(cfg.Policy)
	if err != nil {
		return err
	}

	// 2. Read the control file
	doc, err := a.reader.Read(cfg.ControlPath)
	if err != nil {
		return zerr.Wrap(err, "failed to read control file")
	}

	// 3. Resolve and rewrite
	resolver, err := a.resolvers.New(ctx, cfg)
	if err != nil {
		return zerr.Wrap(err, "failed to create version resolver")
	}
	a.logger.Info("resolving candidate versions with " + cfg.Resolver + " (" + policy.Name + " policy)")

	replay, isReplay := resolver.(snapshotSource)
	if isReplay {
		a.warnSnapshotMismatch(cfg, policy, replay.Snapshot())
	}

	result, err := rewriter.New(resolver, a.logger).Rewrite(ctx, doc, rewriter.Request{
		Source:       cfg.SourcePackage,
		Target:       cfg.TargetPackage,
		Architecture: cfg.Architecture,
		Policy:       policy,
	})
	if err != nil {
		return zerr.Wrap(err, "failed to pin dependencies")
	}

	if isReplay && replay.Snapshot().Fingerprint != result.Fingerprint {
		a.logger.Warn("snapshot " + cfg.SnapshotPath + " was taken from different dependencies")
	}

	// 4. Record the pins
	if opts.WriteSnapshot != "" {
		snap := domain.NewSnapshot(policy, cfg.Architecture, result.Fingerprint, result.Pins)
		if err := a.snapshots.Save(opts.WriteSnapshot, snap); err != nil {
			return zerr.Wrap(err, "failed to write pin snapshot")
		}
		a.logger.Info("wrote pin snapshot " + opts.WriteSnapshot)
	}

	// 5. Emit the paragraph only once it is complete
	var buf bytes.Buffer
	buf.WriteString("\n\n")
	if err := a.writer.Write(&buf, result.Paragraph); err != nil {
		return err
	}
	if _, err := buf.WriteTo(a.stdout); err != nil {
		return zerr.Wrap(err, "failed to write output")
	}

	return nil
}

// warnSnapshotMismatch reports a snapshot whose keys were produced under another policy or architecture.
func (a *App) warnSnapshotMismatch(cfg *domain.Config, policy domain.Policy, snap *domain.Snapshot) {
	if snap.Policy != "" && snap.Policy != policy.Name {
		a.logger.Warn("snapshot " + cfg.SnapshotPath + " was taken with the " + snap.Policy +
			" policy, running with " + policy.Name)
	}
	if snap.Architecture != cfg.Architecture {
		a.logger.Warn("snapshot " + cfg.SnapshotPath + " was taken for " + archLabel(snap.Architecture) +
			", running for " + archLabel(cfg.Architecture))
	}
}

func archLabel(arch string) string {
	if arch == "" {
		return "no architecture"
	}
	return "architecture " + arch
}

func applyOverrides(cfg *domain.Config, opts RunOptions) {
	set := func(dst *string, v string) {
		if v != "" {
			*dst = v
		}
	}
	set(&cfg.ControlPath, opts.ControlPath)
	set(&cfg.SourcePackage, opts.SourcePackage)
	set(&cfg.TargetPackage, opts.TargetPackage)
	set(&cfg.Policy, opts.Policy)
	set(&cfg.Resolver, opts.Resolver)
	set(&cfg.ListsDir, opts.ListsDir)
	set(&cfg.SnapshotPath, opts.SnapshotPath)
	set(&cfg.Architecture, opts.Architecture)
}
