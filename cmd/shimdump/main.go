// Command shimdump opens a device on a native backend, creates a few
// sample resources and views, and prints their descriptors as the native
// generation sees them and as WebGPU descriptors.
package main

import (
	"flag"
	"fmt"
	"io"
	"log"
	"log/slog"
	"os"
	"text/tabwriter"

	"github.com/gogpu/gputypes"

	"github.com/gogpu/shim"
	"github.com/gogpu/shim/backend"
	"github.com/gogpu/shim/webgpu"
)

func main() {
	var (
		configPath = flag.String("config", "", "TOML configuration file")
		name       = flag.String("backend", "", "backend name (overrides the configuration)")
		logLevel   = flag.String("log-level", "", "log level (overrides the configuration)")
		list       = flag.Bool("list", false, "list registered backends and exit")
	)
	flag.Parse()

	if *list {
		for _, n := range backend.Available() {
			fmt.Println(n)
		}
		return
	}

	cfg := shim.DefaultConfig()
	if *configPath != "" {
		var err error
		if cfg, err = shim.LoadConfig(*configPath); err != nil {
			log.Fatalf("Failed to load config: %v", err)
		}
	}
	if *name != "" {
		cfg.Backend = *name
	}
	if *logLevel != "" {
		cfg.LogLevel = *logLevel
	}
	shim.SetLogger(slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{
		Level: shim.ParseLevel(cfg.LogLevel),
	})))

	if err := run(os.Stdout, cfg); err != nil {
		log.Fatal(err)
	}
}

// sample is a resource created by the dump, with the views made of it.
type sample struct {
	name  string
	typ   shim.ResourceType
	desc  shim.ResourceDesc
	views []sampleView
}

type sampleView struct {
	typ  shim.ViewType
	desc shim.ResourceViewDesc
}

// samples builds the sample set with native formats taken from formats.
func samples(formats *webgpu.FormatTable) []sample {
	color, _ := formats.FromWebGPU(gputypes.TextureFormatRGBA8Unorm)
	depth, _ := formats.FromWebGPU(gputypes.TextureFormatDepth24PlusStencil8)
	bc, _ := formats.FromWebGPU(gputypes.TextureFormatBC3RGBAUnorm)

	return []sample{
		{
			name: "color",
			typ:  shim.ResourceTypeTexture2D,
			desc: shim.NewTexture2DDesc(256, 256, 9, color, shim.UsageShaderResource|shim.UsageRenderTarget),
			views: []sampleView{
				{shim.ViewTypeShaderResource, shim.NewTexture2DViewDesc(color, 0, shim.AllLevels)},
				{shim.ViewTypeRenderTarget, shim.NewTexture2DViewDesc(color, 2, 1)},
			},
		},
		{
			name: "depth",
			typ:  shim.ResourceTypeTexture2D,
			desc: shim.NewTexture2DDesc(256, 256, 1, depth, shim.UsageDepthStencil),
			views: []sampleView{
				{shim.ViewTypeDepthStencil, shim.NewTexture2DViewDesc(depth, 0, 1)},
			},
		},
		{
			name: "cube",
			typ:  shim.ResourceTypeTexture2D,
			desc: shim.ResourceDesc{
				Width: 64, Height: 64, DepthOrLayers: shim.LayersPerCube,
				Levels: 1, Format: bc, Samples: 1, Usage: shim.UsageShaderResource,
			},
			views: []sampleView{
				{shim.ViewTypeShaderResource, shim.ResourceViewDesc{
					Dimension: shim.ViewDimensionTextureCube, Format: bc,
					Levels: shim.AllLevels, Layers: shim.LayersPerCube,
				}},
			},
		},
		{
			name: "vertices",
			typ:  shim.ResourceTypeBuffer,
			desc: shim.NewBufferDesc(4096, shim.UsageVertexBuffer),
		},
	}
}

// run opens a device as cfg describes and writes the dump to w.
func run(w io.Writer, cfg shim.Config) error {
	dev, err := backend.OpenConfig(cfg)
	if err != nil {
		return err
	}
	defer dev.Close()

	codec, err := webgpu.NewCodec(dev.API())
	if err != nil {
		return err
	}

	caps := dev.Capabilities()
	fmt.Fprintf(w, "api: %s\n", dev.API())
	fmt.Fprintf(w, "render targets: %d, instancing: %t, cube arrays: %t\n\n",
		caps.MaxRenderTargets, caps.SupportsInstancing, caps.SupportsCubeArrays)

	tw := tabwriter.NewWriter(w, 0, 4, 2, ' ', 0)
	fmt.Fprintln(tw, "NAME\tKIND\tNATIVE\tWEBGPU")
	for _, s := range samples(codec.Formats()) {
		dumpSample(tw, dev, codec, s)
	}
	return tw.Flush()
}

func dumpSample(w io.Writer, dev shim.Device, codec *webgpu.Codec, s sample) {
	if s.typ != shim.ResourceTypeBuffer && !dev.CheckFormatSupport(s.desc.Format, s.desc.Usage) {
		fmt.Fprintf(w, "%s\t%s\tformat %d unsupported\t-\n", s.name, s.typ, s.desc.Format)
		return
	}
	h, err := dev.CreateResource(s.typ, s.desc)
	if err != nil {
		fmt.Fprintf(w, "%s\t%s\t%v\t-\n", s.name, s.typ, err)
		return
	}
	defer dev.DestroyResource(h)

	desc := dev.ResourceDesc(h)
	fmt.Fprintf(w, "%s\t%s\t%s\t%s\n", s.name, s.typ, desc, resourceString(codec, s.typ, desc))

	for _, v := range s.views {
		vh, err := dev.CreateResourceView(h, v.typ, v.desc)
		if err != nil {
			fmt.Fprintf(w, "\t%s view\t%v\t-\n", v.typ, err)
			continue
		}
		fmt.Fprintf(w, "\t%s view\t%s\t%s\n", v.typ, viewString(v.desc), viewWebGPUString(codec, v.desc))
		dev.DestroyResourceView(vh)
	}
}

func resourceString(codec *webgpu.Codec, typ shim.ResourceType, desc shim.ResourceDesc) string {
	if typ == shim.ResourceTypeBuffer {
		b := webgpu.ToBufferDescriptor(desc)
		return fmt.Sprintf("size=%d usage=%#x", b.Size, uint32(b.Usage))
	}
	t, err := codec.ToTextureDescriptor(typ, desc)
	if err != nil {
		return err.Error()
	}
	return fmt.Sprintf("%s %dx%dx%d mips=%d samples=%d usage=%#x",
		t.Format, t.Size.Width, t.Size.Height, t.Size.DepthOrArrayLayers,
		t.MipLevelCount, t.SampleCount, uint32(t.Usage))
}

func viewString(d shim.ResourceViewDesc) string {
	return fmt.Sprintf("%s format=%d levels=%s layers=%s",
		d.Dimension, d.Format, rangeString(d.FirstLevel, d.Levels), rangeString(d.FirstLayer, d.Layers))
}

func viewWebGPUString(codec *webgpu.Codec, d shim.ResourceViewDesc) string {
	v, err := codec.ToTextureViewDescriptor(d)
	if err != nil {
		return err.Error()
	}
	return fmt.Sprintf("%s %s mips=%s layers=%s",
		v.Dimension, v.Format, rangeString(v.BaseMipLevel, v.MipLevelCount), rangeString(v.BaseArrayLayer, v.ArrayLayerCount))
}

func rangeString(first, n uint32) string {
	if n == shim.AllLevels || n == 0 {
		return fmt.Sprintf("%d..", first)
	}
	return fmt.Sprintf("%d+%d", first, n)
}
