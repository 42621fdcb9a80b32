package shim

// Observer receives device lifecycle notifications.
//
// Notifications are delivered synchronously on the device thread at fixed
// points of the device lifecycle. CreateResource receives a mutable
// descriptor: changes made by the observer are honored by the native
// creation call that follows.
type Observer interface {
	InitDevice(dev Device)
	InitCommandQueue(dev Device)
	DestroyCommandQueue(dev Device)
	DestroyDevice(dev Device)
	CreateResource(dev Device, typ ResourceType, desc *ResourceDesc)
	SetRenderTargetsAndDepthStencil(dev Device, rtvs []ResourceViewHandle, dsv ResourceViewHandle)
}

// NopObserver implements Observer with no-op methods.
// Embed it to implement only the notifications of interest.
type NopObserver struct{}

func (NopObserver) InitDevice(Device)                                  {}
func (NopObserver) InitCommandQueue(Device)                            {}
func (NopObserver) DestroyCommandQueue(Device)                         {}
func (NopObserver) DestroyDevice(Device)                               {}
func (NopObserver) CreateResource(Device, ResourceType, *ResourceDesc) {}

func (NopObserver) SetRenderTargetsAndDepthStencil(Device, []ResourceViewHandle, ResourceViewHandle) {
}

// Observers fans notifications out to every element in order.
type Observers []Observer

func (o Observers) InitDevice(dev Device) {
	for _, ob := range o {
		ob.InitDevice(dev)
	}
}

func (o Observers) InitCommandQueue(dev Device) {
	for _, ob := range o {
		ob.InitCommandQueue(dev)
	}
}

func (o Observers) DestroyCommandQueue(dev Device) {
	for _, ob := range o {
		ob.DestroyCommandQueue(dev)
	}
}

func (o Observers) DestroyDevice(dev Device) {
	for _, ob := range o {
		ob.DestroyDevice(dev)
	}
}

func (o Observers) CreateResource(dev Device, typ ResourceType, desc *ResourceDesc) {
	for _, ob := range o {
		ob.CreateResource(dev, typ, desc)
	}
}

func (o Observers) SetRenderTargetsAndDepthStencil(dev Device, rtvs []ResourceViewHandle, dsv ResourceViewHandle) {
	for _, ob := range o {
		ob.SetRenderTargetsAndDepthStencil(dev, rtvs, dsv)
	}
}
