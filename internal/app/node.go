package app

import (
	"context"

	"github.com/grindlemire/graft"
	"go.trai.ch/metapin/internal/adapters/apt"      //nolint:depguard // Wired in app layer
	"go.trai.ch/metapin/internal/adapters/config"   //nolint:depguard // Wired in app layer
	"go.trai.ch/metapin/internal/adapters/control"  //nolint:depguard // Wired in app layer
	"go.trai.ch/metapin/internal/adapters/logger"   //nolint:depguard // Wired in app layer
	"go.trai.ch/metapin/internal/adapters/snapshot" //nolint:depguard // Wired in app layer
	"go.trai.ch/metapin/internal/core/ports"
)

const (
	// AppNodeID is the unique identifier for the main App Graft node.
	AppNodeID graft.ID = "app.main"
	// ComponentsNodeID is the unique identifier for the App components Graft node.
	ComponentsNodeID graft.ID = "app.components"
)

// Components groups the objects main needs.
type Components struct {
	App    *App
	Logger ports.Logger
}

func init() {
	graft.Register(graft.Node[*App]{
		ID:        AppNodeID,
		Cacheable: true,
		DependsOn: []graft.ID{
			config.NodeID,
			control.ReaderNodeID,
			control.WriterNodeID,
			apt.ProviderNodeID,
			snapshot.NodeID,
			logger.NodeID,
		},
		Run: runAppNode,
	})

	graft.Register(graft.Node[*Components]{
		ID:        ComponentsNodeID,
		Cacheable: true,
		DependsOn: []graft.ID{
			AppNodeID,
			logger.NodeID,
		},
		Run: func(ctx context.Context) (*Components, error) {
			a, err := graft.Dep[*App](ctx)
			if err != nil {
				return nil, err
			}

			log, err := graft.Dep[ports.Logger](ctx)
			if err != nil {
				return nil, err
			}

			return &Components{App: a, Logger: log}, nil
		},
	})
}

func runAppNode(ctx context.Context) (*App, error) {
	loader, err := graft.Dep[ports.ConfigLoader](ctx)
	if err != nil {
		return nil, err
	}

	reader, err := graft.Dep[ports.ControlReader](ctx)
	if err != nil {
		return nil, err
	}

	writer, err := graft.Dep[ports.ControlWriter](ctx)
	if err != nil {
		return nil, err
	}

	resolvers, err := graft.Dep[ports.ResolverFactory](ctx)
	if err != nil {
		return nil, err
	}

	snapshots, err := graft.Dep[ports.SnapshotStore](ctx)
	if err != nil {
		return nil, err
	}

	log, err := graft.Dep[ports.Logger](ctx)
	if err != nil {
		return nil, err
	}

	return New(loader, reader, writer, resolvers, snapshots, log), nil
}
