package control

import (
	"context"

	"github.com/grindlemire/graft"
	"go.trai.ch/metapin/internal/core/ports"
)

const (
	ReaderNodeID graft.ID = "adapter.control.reader"
	WriterNodeID graft.ID = "adapter.control.writer"
)

func init() {
	graft.Register(graft.Node[ports.ControlReader]{
		ID:        ReaderNodeID,
		Cacheable: true,
		Run: func(_ context.Context) (ports.ControlReader, error) {
			return NewReader(), nil
		},
	})

	graft.Register(graft.Node[ports.ControlWriter]{
		ID:        WriterNodeID,
		Cacheable: true,
		Run: func(_ context.Context) (ports.ControlWriter, error) {
			return NewWriter(), nil
		},
	})
}
