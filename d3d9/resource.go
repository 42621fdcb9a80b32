package d3d9

import (
	"fmt"

	"github.com/gogpu/shim"
)

// CreateResource creates a native resource for desc after letting observers
// rewrite it. On native failure it returns the null handle and an error
// wrapping shim.ErrCreationFailed; nothing is registered in that case.
//
// Buffers become index or vertex buffers depending on usage. A 2D texture
// with six layers becomes a cube texture. Surfaces become render targets or
// depth-stencil surfaces and may be multisampled.
func (d *Device) CreateResource(typ shim.ResourceType, desc shim.ResourceDesc) (shim.ResourceHandle, error) {
	d.observers.CreateResource(d, typ, &desc)

	res, err := d.createResource(typ, desc)
	if err != nil {
		shim.Logger().Warn("d3d9: create resource failed", "type", typ, "desc", desc, "err", err)
		return shim.NullHandle, fmt.Errorf("d3d9: create %s: %w: %w", typ, shim.ErrCreationFailed, err)
	}
	h := d.register(res)
	shim.Logger().Debug("d3d9: resource created", "type", res.Type(), "handle", fmt.Sprintf("%#x", h))
	return shim.ResourceHandle(h), nil
}

func (d *Device) createResource(typ shim.ResourceType, desc shim.ResourceDesc) (Resource9, error) {
	switch typ {
	case shim.ResourceTypeBuffer:
		if desc.Usage&(shim.UsageIndexBuffer|shim.UsageVertexBuffer) == shim.UsageIndexBuffer {
			var internal IndexBufferDesc
			ToIndexBufferDesc(desc, &internal)
			return d.native.CreateIndexBuffer(internal.Size, internal.Usage, FmtIndex16, PoolDefault)
		}
		var internal VertexBufferDesc
		ToVertexBufferDesc(desc, &internal)
		return d.native.CreateVertexBuffer(internal.Size, internal.Usage, 0, PoolDefault)

	case shim.ResourceTypeTexture1D, shim.ResourceTypeTexture2D:
		if desc.Samples != 1 {
			return nil, fmt.Errorf("%w: multisampled texture", shim.ErrUnsupported)
		}
		cube := typ == shim.ResourceTypeTexture2D && desc.DepthOrLayers == shim.LayersPerCube && desc.Width == desc.Height
		if desc.DepthOrLayers != 1 && !cube {
			return nil, fmt.Errorf("%w: texture array with %d layers", shim.ErrUnsupported, desc.DepthOrLayers)
		}
		var (
			internal SurfaceDesc
			levels   uint32
		)
		ToSurfaceDesc(desc, &internal, &levels)
		if cube {
			return d.native.CreateCubeTexture(internal.Width, levels, internal.Usage, internal.Format, PoolDefault)
		}
		return d.native.CreateTexture(internal.Width, internal.Height, levels, internal.Usage, internal.Format, PoolDefault)

	case shim.ResourceTypeTexture3D:
		if desc.Samples != 1 {
			return nil, fmt.Errorf("%w: multisampled volume", shim.ErrUnsupported)
		}
		var (
			internal VolumeDesc
			levels   uint32
		)
		ToVolumeDesc(desc, &internal, &levels)
		return d.native.CreateVolumeTexture(internal.Width, internal.Height, internal.Depth, levels, internal.Usage, internal.Format, PoolDefault)

	case shim.ResourceTypeSurface:
		var internal SurfaceDesc
		ToSurfaceDesc(desc, &internal, nil)
		switch {
		case internal.Usage&UsageDepthStencil != 0:
			return d.native.CreateDepthStencilSurface(internal.Width, internal.Height, internal.Format, internal.MultiSampleType, 0, false)
		case internal.Usage&UsageRenderTarget != 0:
			return d.native.CreateRenderTarget(internal.Width, internal.Height, internal.Format, internal.MultiSampleType, 0, false)
		default:
			return nil, fmt.Errorf("%w: surface without render target or depth-stencil usage", shim.ErrUnsupported)
		}

	default:
		panic("d3d9: cannot create resource of type " + typ.String())
	}
}

// CreateResourceView returns a view of res. Views of this generation are
// existing native objects with an extra reference, see the package
// documentation.
func (d *Device) CreateResourceView(res shim.ResourceHandle, typ shim.ViewType, desc shim.ResourceViewDesc) (shim.ResourceViewHandle, error) {
	obj := d.lookup(uint64(res))
	if desc.Format != 0 {
		if f := d.ResourceDesc(res).Format; desc.Format != f {
			panic(fmt.Sprintf("d3d9: view format %d differs from resource format %d", desc.Format, f))
		}
	}

	h, err := d.createView(uint64(res), obj, typ, desc)
	if err != nil {
		shim.Logger().Warn("d3d9: create view failed", "type", typ, "resource", res, "err", err)
		return shim.NullHandle, fmt.Errorf("d3d9: create %s view: %w: %w", typ, shim.ErrCreationFailed, err)
	}
	return shim.ResourceViewHandle(h), nil
}

func (d *Device) createView(h uint64, obj Resource9, typ shim.ViewType, desc shim.ResourceViewDesc) (uint64, error) {
	attachment := typ == shim.ViewTypeDepthStencil || typ == shim.ViewTypeRenderTarget
	if typ == shim.ViewTypeUnorderedAccess {
		return 0, fmt.Errorf("%w: unordered access view", shim.ErrUnsupported)
	}

	switch obj.Type() {
	case RTypeSurface:
		checkPlanarView(desc)
		if !attachment {
			break
		}
		if desc.FirstLevel != 0 || desc.Levels != 1 {
			return 0, fmt.Errorf("%w: surface has a single level", shim.ErrUnsupported)
		}
		obj.AddRef()
		return h, nil

	case RTypeTexture:
		checkPlanarView(desc)
		tex := obj.(Texture9)
		if attachment {
			if desc.Levels != 1 {
				return 0, fmt.Errorf("%w: attachment views cover one level", shim.ErrUnsupported)
			}
			s, err := tex.SurfaceLevel(desc.FirstLevel)
			if err != nil {
				return 0, err
			}
			return d.registerChild(h, s), nil
		}
		if typ == shim.ViewTypeShaderResource && desc.FirstLevel == 0 {
			obj.AddRef()
			return h, nil
		}

	case RTypeCubeTexture:
		cube := obj.(CubeTexture9)
		if attachment {
			switch desc.Dimension {
			case shim.ViewDimensionUnknown, shim.ViewDimensionTexture2D, shim.ViewDimensionTexture2DArray:
			default:
				panic("d3d9: cube face views must be 2D, got " + desc.Dimension.String())
			}
			if desc.Levels != 1 || desc.Layers != 1 {
				return 0, fmt.Errorf("%w: attachment views cover one face of one level", shim.ErrUnsupported)
			}
			if desc.FirstLayer >= shim.LayersPerCube {
				return 0, fmt.Errorf("%w: cube face %d", shim.ErrUnsupported, desc.FirstLayer)
			}
			s, err := cube.CubeMapSurface(CubemapFace(desc.FirstLayer), desc.FirstLevel)
			if err != nil {
				return 0, err
			}
			return d.registerChild(h, s), nil
		}
		if typ == shim.ViewTypeShaderResource && desc.FirstLevel == 0 && desc.FirstLayer == 0 {
			if desc.Dimension != shim.ViewDimensionTextureCube && desc.Dimension != shim.ViewDimensionUnknown {
				panic("d3d9: cube texture shader resource view must have cube dimension, got " + desc.Dimension.String())
			}
			obj.AddRef()
			return h, nil
		}

	case RTypeVolumeTexture:
		if typ == shim.ViewTypeShaderResource && desc.FirstLevel == 0 {
			if desc.Dimension != shim.ViewDimensionTexture3D && desc.Dimension != shim.ViewDimensionUnknown {
				panic("d3d9: volume texture shader resource view must have 3D dimension, got " + desc.Dimension.String())
			}
			obj.AddRef()
			return h, nil
		}
	}
	return 0, fmt.Errorf("%w: %s view of %s", shim.ErrUnsupported, typ, obj.Type())
}

// checkPlanarView panics unless desc addresses a single 2D image layer.
func checkPlanarView(desc shim.ResourceViewDesc) {
	switch desc.Dimension {
	case shim.ViewDimensionUnknown, shim.ViewDimensionTexture2D, shim.ViewDimensionTexture2DMultisample:
	default:
		panic("d3d9: surface views must be 2D, got " + desc.Dimension.String())
	}
	if desc.FirstLayer != 0 || (desc.Layers != 1 && desc.Layers != shim.AllLayers) {
		panic(fmt.Sprintf("d3d9: surface views cover layer 0 only, got %d+%d", desc.FirstLayer, desc.Layers))
	}
}

// DestroyResource releases the reference returned by CreateResource.
func (d *Device) DestroyResource(h shim.ResourceHandle) {
	d.release(uint64(h))
}

// DestroyResourceView releases the reference returned by CreateResourceView.
func (d *Device) DestroyResourceView(h shim.ResourceViewHandle) {
	d.release(uint64(h))
}

// ResourceFromView returns the texture owning a level or face view, or the
// view itself when it is a standalone surface or a whole-resource view.
func (d *Device) ResourceFromView(view shim.ResourceViewHandle) shim.ResourceHandle {
	obj := d.lookup(uint64(view))
	if s, ok := obj.(Surface9); ok {
		if c, err := s.Container(); err == nil {
			h := c.Ptr()
			c.Release()
			return shim.ResourceHandle(h)
		}
	}
	return shim.ResourceHandle(view)
}

// ResourceDesc describes the resource h.
func (d *Device) ResourceDesc(h shim.ResourceHandle) shim.ResourceDesc {
	switch obj := d.lookup(uint64(h)).(type) {
	case Surface9:
		return FromSurfaceDesc(obj.Desc(), 1, d.caps)
	case Texture9:
		desc := topLevelDesc(obj.LevelDesc)
		desc.Type = RTypeTexture
		return FromSurfaceDesc(desc, obj.LevelCount(), d.caps)
	case CubeTexture9:
		desc := topLevelDesc(obj.LevelDesc)
		desc.Type = RTypeCubeTexture
		return FromSurfaceDesc(desc, obj.LevelCount(), d.caps)
	case VolumeTexture9:
		desc, err := obj.LevelDesc(0)
		if err != nil {
			panic("d3d9: volume texture level desc: " + err.Error())
		}
		desc.Type = RTypeVolumeTexture
		return FromVolumeDesc(desc, obj.LevelCount())
	case VertexBuffer9:
		return FromVertexBufferDesc(obj.Desc())
	case IndexBuffer9:
		return FromIndexBufferDesc(obj.Desc())
	default:
		panic("d3d9: cannot describe resource of type " + obj.Type().String())
	}
}

func topLevelDesc(levelDesc func(uint32) (SurfaceDesc, error)) SurfaceDesc {
	desc, err := levelDesc(0)
	if err != nil {
		panic("d3d9: texture level desc: " + err.Error())
	}
	return desc
}
