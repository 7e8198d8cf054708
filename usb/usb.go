package usb

import (
	"context"
	"fmt"

	"github.com/google/gousb"

	"github.com/moffa90/go-ivcam/hwio"
)

// Context is a libusb session implementing hwio.Context.
type Context struct {
	ctx *gousb.Context
}

// NewContext opens a libusb session. Close it when done.
func NewContext() *Context {
	return &Context{ctx: gousb.NewContext()}
}

// OpenDeviceWithVIDPID opens the first device matching vid and pid.
// It returns nil, nil when no device matches.
func (c *Context) OpenDeviceWithVIDPID(vid, pid uint16) (hwio.Device, error) {
	dev, err := c.ctx.OpenDeviceWithVIDPID(gousb.ID(vid), gousb.ID(pid))
	if err != nil {
		return nil, err
	}
	if dev == nil {
		return nil, nil
	}

	if err := dev.SetAutoDetach(true); err != nil {
		dev.Close()
		return nil, fmt.Errorf("failed to enable kernel driver auto-detach: %w", err)
	}

	return &Device{dev: dev}, nil
}

// Close ends the libusb session.
func (c *Context) Close() error {
	return c.ctx.Close()
}

// Device is an opened USB device implementing hwio.Device.
type Device struct {
	dev *gousb.Device
}

// ClaimInterface claims interface num of the active configuration and returns
// its bulk endpoints as a transport.
func (d *Device) ClaimInterface(num int) (hwio.Transport, error) {
	cfgNum, err := d.dev.ActiveConfigNum()
	if err != nil {
		return nil, fmt.Errorf("failed to get active config: %w", err)
	}

	cfg, err := d.dev.Config(cfgNum)
	if err != nil {
		return nil, fmt.Errorf("failed to get config %d: %w", cfgNum, err)
	}

	intf, err := cfg.Interface(num, 0)
	if err != nil {
		cfg.Close()
		return nil, fmt.Errorf("failed to claim interface %d: %w", num, err)
	}

	return &Transport{cfg: cfg, intf: intf}, nil
}

// Close closes the device.
func (d *Device) Close() error {
	return d.dev.Close()
}

// Transport carries bulk transfers on a claimed interface.
type Transport struct {
	cfg  *gousb.Config
	intf *gousb.Interface
}

// BulkTransfer writes data to an OUT endpoint or reads into data from an IN
// endpoint, depending on the direction bit of endpoint.
func (t *Transport) BulkTransfer(ctx context.Context, endpoint uint8, data []byte) (int, error) {
	num := int(endpoint & 0x0F)

	if endpoint&0x80 == 0 {
		ep, err := t.intf.OutEndpoint(num)
		if err != nil {
			return 0, fmt.Errorf("failed to open out endpoint %d: %w", num, err)
		}
		return ep.WriteContext(ctx, data)
	}

	ep, err := t.intf.InEndpoint(num)
	if err != nil {
		return 0, fmt.Errorf("failed to open in endpoint %d: %w", num, err)
	}
	return ep.ReadContext(ctx, data)
}

// Release releases the interface and its configuration.
func (t *Transport) Release() error {
	t.intf.Close()
	return t.cfg.Close()
}

var (
	_ hwio.Context   = (*Context)(nil)
	_ hwio.Device    = (*Device)(nil)
	_ hwio.Transport = (*Transport)(nil)
)
