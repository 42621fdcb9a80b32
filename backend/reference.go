package backend

import (
	"github.com/gogpu/shim"
	"github.com/gogpu/shim/d3d10"
	d3d10ref "github.com/gogpu/shim/d3d10/ref"
	"github.com/gogpu/shim/d3d9"
	d3d9ref "github.com/gogpu/shim/d3d9/ref"
)

// Backend name constants.
const (
	// NameD3D9 is the name of the backend for the older API generation.
	NameD3D9 = "d3d9"
	// NameD3D10 is the name of the backend for the newer API generation.
	NameD3D10 = "d3d10"
)

// Default back buffer size of reference d3d9 devices.
const (
	DefaultWidth  = 640
	DefaultHeight = 480
)

// init registers the reference backends on package import.
func init() {
	Register(NameD3D9, func() Backend { return NewD3D9Reference(DefaultWidth, DefaultHeight) })
	Register(NameD3D10, func() Backend { return NewD3D10Reference() })
}

// D3D9Reference opens d3d9 devices on the software reference device.
type D3D9Reference struct {
	pp   d3d9.PresentParameters
	opts []d3d9ref.Option
}

// NewD3D9Reference creates a backend whose devices present a windowed back
// buffer of the given size.
func NewD3D9Reference(width, height uint32, opts ...d3d9ref.Option) *D3D9Reference {
	return &D3D9Reference{
		pp:   d3d9ref.DefaultPresentParameters(width, height),
		opts: opts,
	}
}

// Name returns NameD3D9.
func (b *D3D9Reference) Name() string { return NameD3D9 }

// API returns shim.APID3D9.
func (b *D3D9Reference) API() shim.API { return shim.APID3D9 }

// Open creates a reference device and wraps it.
func (b *D3D9Reference) Open(opts ...shim.Option) (shim.Device, error) {
	native, err := d3d9ref.NewDevice(b.pp, b.opts...)
	if err != nil {
		return nil, err
	}
	dev, err := d3d9.NewDevice(native, opts...)
	if err != nil {
		return nil, err
	}
	return dev, nil
}

// D3D10Reference opens d3d10 devices on the software reference device.
type D3D10Reference struct {
	opts []d3d10ref.Option
}

// NewD3D10Reference creates a backend whose devices are configured by opts.
func NewD3D10Reference(opts ...d3d10ref.Option) *D3D10Reference {
	return &D3D10Reference{opts: opts}
}

// Name returns NameD3D10.
func (b *D3D10Reference) Name() string { return NameD3D10 }

// API returns shim.APID3D10.
func (b *D3D10Reference) API() shim.API { return shim.APID3D10 }

// Open creates a reference device and wraps it.
func (b *D3D10Reference) Open(opts ...shim.Option) (shim.Device, error) {
	native, err := d3d10ref.NewDevice(b.opts...)
	if err != nil {
		return nil, err
	}
	return d3d10.NewDevice(native, opts...), nil
}
