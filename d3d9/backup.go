package d3d9

import (
	"fmt"

	"github.com/gogpu/shim"
)

// backupState saves the device state a helper operation overwrites and puts
// it back afterwards. A state block covers the pipeline states; render
// targets, the depth-stencil surface and the viewport are saved by hand.
type backupState struct {
	device Device9
	block  StateBlock9
}

func (b *backupState) init() error {
	sb, err := b.device.CreateStateBlock(SBTAll)
	if err != nil {
		return fmt.Errorf("%w: backup: %w", ErrStateBlock, err)
	}
	b.block = sb
	return nil
}

func (b *backupState) release() {
	if b.block != nil {
		b.block.Release()
		b.block = nil
	}
}

// capture saves the current state including the first targets render
// target slots. Slot 0 is always saved. The returned function restores it
// and must be called exactly once, typically deferred.
func (b *backupState) capture(targets uint32) (restore func(), err error) {
	targets = max(targets, 1)
	if b.block == nil {
		return nil, ErrStateBlock
	}
	if err := b.block.Capture(); err != nil {
		return nil, fmt.Errorf("%w: capture: %w", ErrStateBlock, err)
	}

	rts := make([]Surface9, targets)
	for i := range rts {
		if s, err := b.device.RenderTarget(uint32(i)); err == nil {
			rts[i] = s
		}
	}
	var ds Surface9
	if s, err := b.device.DepthStencilSurface(); err == nil {
		ds = s
	}
	vp := b.device.Viewport()

	return func() {
		if err := b.block.Apply(); err != nil {
			shim.Logger().Debug("d3d9: restore state block", "err", err)
		}
		for i, s := range rts {
			if s == nil && i == 0 {
				continue
			}
			if err := b.device.SetRenderTarget(uint32(i), s); err != nil {
				shim.Logger().Debug("d3d9: restore render target", "slot", i, "err", err)
			}
			if s != nil {
				s.Release()
			}
		}
		if err := b.device.SetDepthStencilSurface(ds); err != nil {
			shim.Logger().Debug("d3d9: restore depth-stencil surface", "err", err)
		}
		if ds != nil {
			ds.Release()
		}
		// Binding render targets resets the viewport, so it goes last.
		if err := b.device.SetViewport(vp); err != nil {
			shim.Logger().Debug("d3d9: restore viewport", "err", err)
		}
	}, nil
}
