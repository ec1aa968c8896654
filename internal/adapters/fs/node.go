package fs

import (
	"context"

	"github.com/grindlemire/graft"
	"go.trai.ch/encore/internal/core/ports"
)

const (
	// ReaderNodeID is the unique identifier for the build output reader Graft node.
	ReaderNodeID graft.ID = "adapter.fs.reader"
	// FingerprinterNodeID is the unique identifier for the fingerprinter Graft node.
	FingerprinterNodeID graft.ID = "adapter.fs.fingerprinter"
)

func init() {
	graft.Register(graft.Node[ports.BuildOutputReader]{
		ID:        ReaderNodeID,
		Cacheable: true,
		Run: func(_ context.Context) (ports.BuildOutputReader, error) {
			return NewReader(), nil
		},
	})

	graft.Register(graft.Node[ports.Fingerprinter]{
		ID:        FingerprinterNodeID,
		Cacheable: true,
		DependsOn: []graft.ID{ReaderNodeID},
		Run: func(ctx context.Context) (ports.Fingerprinter, error) {
			reader, err := graft.Dep[ports.BuildOutputReader](ctx)
			if err != nil {
				return nil, err
			}
			return NewFingerprinter(reader), nil
		},
	})
}
