package d3d10

import (
	"fmt"

	"github.com/gogpu/shim"
)

// CreateResource creates a native resource for desc after letting observers
// rewrite it. On native failure it returns the null handle and an error
// wrapping shim.ErrCreationFailed.
//
// A square 2D texture array whose layer count is a multiple of six and that
// can be sampled is created cube-compatible, so that cube and cube array
// views of it can be made.
func (d *Device) CreateResource(typ shim.ResourceType, desc shim.ResourceDesc) (shim.ResourceHandle, error) {
	d.observers.CreateResource(d, typ, &desc)

	res, err := d.createResource(typ, desc)
	if err != nil {
		shim.Logger().Warn("d3d10: create resource failed", "type", typ, "desc", desc, "err", err)
		return shim.NullHandle, fmt.Errorf("d3d10: create %s: %w: %w", typ, shim.ErrCreationFailed, err)
	}
	h := uint64(res.Ptr())
	d.resources.Register(h, res)
	shim.Logger().Debug("d3d10: resource created", "type", res.Type(), "handle", fmt.Sprintf("%#x", h))
	return shim.ResourceHandle(h), nil
}

func (d *Device) createResource(typ shim.ResourceType, desc shim.ResourceDesc) (Resource, error) {
	switch typ {
	case shim.ResourceTypeBuffer:
		var internal BufferDesc
		ToBufferDesc(desc, &internal)
		return d.native.CreateBuffer(&internal)

	case shim.ResourceTypeTexture1D:
		var internal Texture1DDesc
		ToTexture1DDesc(desc, &internal)
		return d.native.CreateTexture1D(&internal)

	case shim.ResourceTypeTexture2D:
		var internal Texture2DDesc
		ToTexture2DDesc(desc, &internal)
		if cubeCompatible(desc) {
			internal.MiscFlags |= MiscTextureCube
		}
		return d.native.CreateTexture2D(&internal)

	case shim.ResourceTypeTexture3D:
		var internal Texture3DDesc
		ToTexture3DDesc(desc, &internal)
		return d.native.CreateTexture3D(&internal)

	case shim.ResourceTypeSurface:
		return nil, fmt.Errorf("%w: standalone surfaces", shim.ErrUnsupported)

	default:
		panic("d3d10: cannot create resource of type " + typ.String())
	}
}

func cubeCompatible(desc shim.ResourceDesc) bool {
	return desc.Width == desc.Height && desc.Samples == 1 &&
		desc.DepthOrLayers > 0 && desc.DepthOrLayers%shim.LayersPerCube == 0 &&
		desc.Usage.Any(shim.UsageShaderResource)
}

// CreateResourceView creates a distinct native view of res.
func (d *Device) CreateResourceView(res shim.ResourceHandle, typ shim.ViewType, desc shim.ResourceViewDesc) (shim.ResourceViewHandle, error) {
	obj := d.lookup(res)

	v, err := d.createView(obj, typ, desc)
	if err != nil {
		shim.Logger().Warn("d3d10: create view failed", "type", typ, "resource", res, "err", err)
		return shim.NullHandle, fmt.Errorf("d3d10: create %s view: %w: %w", typ, shim.ErrCreationFailed, err)
	}
	h := uint64(v.Ptr())
	d.views.Register(h, v)
	return shim.ResourceViewHandle(h), nil
}

func (d *Device) createView(obj Resource, typ shim.ViewType, desc shim.ResourceViewDesc) (View, error) {
	switch typ {
	case shim.ViewTypeDepthStencil:
		var internal DepthStencilViewDesc
		ToDepthStencilViewDesc(desc, &internal)
		return d.native.CreateDepthStencilView(obj, &internal)

	case shim.ViewTypeRenderTarget:
		var internal RenderTargetViewDesc
		ToRenderTargetViewDesc(desc, &internal)
		return d.native.CreateRenderTargetView(obj, &internal)

	case shim.ViewTypeShaderResource:
		var internal ShaderResourceViewDesc1
		ToShaderResourceViewDesc1(desc, &internal)
		return d.native.CreateShaderResourceView1(obj, &internal)

	case shim.ViewTypeUnorderedAccess:
		return nil, fmt.Errorf("%w: unordered access view", shim.ErrUnsupported)

	default:
		panic("d3d10: cannot create view of type " + typ.String())
	}
}

// DestroyResource releases the reference returned by CreateResource. Views
// keep their resource alive, so the handle stays valid until the last of
// them is destroyed too.
func (d *Device) DestroyResource(h shim.ResourceHandle) {
	if d.lookup(h).Release() == 0 {
		d.resources.Unregister(uint64(h))
	}
}

// DestroyResourceView releases the reference returned by
// CreateResourceView.
func (d *Device) DestroyResourceView(h shim.ResourceViewHandle) {
	v := d.lookupView(h)
	res := v.Resource()
	d.views.Unregister(uint64(h))
	v.Release()
	if res.Release() == 0 {
		d.resources.Unregister(uint64(res.Ptr()))
	}
}

// ResourceFromView returns the resource viewed by view.
func (d *Device) ResourceFromView(view shim.ResourceViewHandle) shim.ResourceHandle {
	res := d.lookupView(view).Resource()
	defer res.Release()
	return shim.ResourceHandle(res.Ptr())
}

// ResourceDesc describes the resource h.
func (d *Device) ResourceDesc(h shim.ResourceHandle) shim.ResourceDesc {
	switch obj := d.lookup(h); obj.Type() {
	case DimensionBuffer:
		return FromBufferDesc(obj.(Buffer).Desc())
	case DimensionTexture1D:
		return FromTexture1DDesc(obj.(Texture1D).Desc())
	case DimensionTexture2D:
		return FromTexture2DDesc(obj.(Texture2D).Desc())
	case DimensionTexture3D:
		return FromTexture3DDesc(obj.(Texture3D).Desc())
	default:
		panic("d3d10: cannot describe resource of dimension " + obj.Type().String())
	}
}

// ViewDesc describes the view h.
func (d *Device) ViewDesc(h shim.ResourceViewHandle) (shim.ViewType, shim.ResourceViewDesc) {
	switch v := d.lookupView(h).(type) {
	case DepthStencilView:
		return shim.ViewTypeDepthStencil, FromDepthStencilViewDesc(v.Desc())
	case RenderTargetView:
		return shim.ViewTypeRenderTarget, FromRenderTargetViewDesc(v.Desc())
	case ShaderResourceView1:
		return shim.ViewTypeShaderResource, FromShaderResourceViewDesc1(v.Desc1())
	default:
		panic(fmt.Sprintf("d3d10: unknown view kind %T", v))
	}
}
