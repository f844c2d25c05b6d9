// Package rewriter turns a "latest" meta-package paragraph into a pinned one.
package rewriter

import (
	"context"
	"runtime"
	"strings"

	"go.trai.ch/metapin/internal/core/domain"
	"go.trai.ch/metapin/internal/core/ports"
	"go.trai.ch/zerr"
	"golang.org/x/sync/errgroup"
)

// Request describes one rewrite.
type Request struct {
	// Source is the Package value of the paragraph to read.
	Source string

	// Target is the Package value of the produced paragraph.
	Target string

	// Architecture qualifies lookups under policies that support it. Empty means unqualified.
	Architecture string

	// Policy decides lookup keys, relation operator and Depends formatting.
	Policy domain.Policy
}

// Rewriter resolves dependency versions and builds the pinned paragraph.
type Rewriter struct {
	resolver ports.VersionResolver
	logger   ports.Logger
	limit    int
}

// New creates a Rewriter querying resolver with up to runtime.NumCPU() concurrent lookups.
func New(resolver ports.VersionResolver, logger ports.Logger) *Rewriter {
	return &Rewriter{
		resolver: resolver,
		logger:   logger,
		limit:    runtime.NumCPU(),
	}
}

// Rewrite selects the source paragraph in doc and returns the pinned paragraph.
// Nothing is returned unless every dependency resolves.
func (r *Rewriter) Rewrite(ctx context.Context, doc domain.Document, req Request) (*domain.Rewrite, error) {
	source, err := doc.Find(domain.FieldPackage, req.Source)
	if err != nil {
		return nil, err
	}

	depends, ok := source.Get(domain.FieldDepends)
	if !ok {
		err := zerr.Wrap(domain.ErrMissingField, "source paragraph has no Depends field")
		err = zerr.With(err, "package", req.Source)
		return nil, zerr.With(err, "field", domain.FieldDepends)
	}

	if req.Architecture != "" && !req.Policy.QualifyArch {
		r.logger.Warn("architecture " + req.Architecture + " is ignored by the " + req.Policy.Name + " policy")
	}

	entries := domain.ParseEntries(depends)
	pins, err := r.resolveAll(ctx, entries, req)
	if err != nil {
		return nil, err
	}

	rendered := make([]string, len(pins))
	for i, pin := range pins {
		rendered[i] = pin.Render(req.Policy.Operator)
	}

	out := source.Clone()
	out.Set(domain.FieldPackage, req.Target)
	out.Set(domain.FieldDepends, strings.Join(rendered, req.Policy.Separator))

	return &domain.Rewrite{
		Paragraph:   out,
		Pins:        pins,
		Fingerprint: domain.Fingerprint(entries),
	}, nil
}

// resolveAll resolves package entries concurrently; pins keep the order of entries.
func (r *Rewriter) resolveAll(ctx context.Context, entries []domain.Entry, req Request) ([]domain.Pin, error) {
	pins := make([]domain.Pin, len(entries))

	g, groupCtx := errgroup.WithContext(ctx)
	g.SetLimit(r.limit)

	for i, entry := range entries {
		if entry.Placeholder {
			pins[i] = domain.Pin{Entry: entry}
			continue
		}
		g.Go(func() error {
			pin, err := r.resolve(groupCtx, entry, req)
			if err != nil {
				return err
			}
			pins[i] = pin
			return nil
		})
	}

	if err := g.Wait(); err != nil {
		return nil, err
	}
	return pins, nil
}

func (r *Rewriter) resolve(ctx context.Context, entry domain.Entry, req Request) (domain.Pin, error) {
	keys := req.Policy.LookupKeys(entry, req.Architecture)
	for i, key := range keys {
		v, found, err := r.resolver.Candidate(ctx, key)
		if err != nil {
			return domain.Pin{}, zerr.With(zerr.Wrap(err, "failed to look up candidate version"), "key", key)
		}
		if !found {
			continue
		}
		if i > 0 {
			r.logger.Warn(keys[0] + " not found, using " + key)
		}
		r.logger.Info("pinned " + entry.Name + " to " + v)
		return domain.Pin{Entry: entry, Key: key, Version: v}, nil
	}

	err := zerr.Wrap(domain.ErrVersionNotFound, "dependency has no candidate version")
	err = zerr.With(err, "package", entry.Name)
	return domain.Pin{}, zerr.With(err, "keys", strings.Join(keys, ", "))
}
