// Package usb implements the hwio device interfaces on top of libusb via gousb.
//
// # Usage
//
//	usbctx := usb.NewContext()
//	defer usbctx.Close()
//
//	hw, err := hwio.New(ctx, usbctx)
//
// Kernel drivers bound to the claimed interface are detached automatically
// and reattached when the interface is released.
package usb
