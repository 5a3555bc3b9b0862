package scanner

import (
	"context"
	"errors"
)

// ErrNoDevice is returned when no capture device is attached.
var ErrNoDevice = errors.New("no scan device attached")

// Disabled is a Scanner for deployments without a capture device.
// Barcode entry then happens on the client side only.
type Disabled struct{}

func (Disabled) Start(context.Context) error        { return ErrNoDevice }
func (Disabled) Read(context.Context) (string, error) { return "", ErrNoDevice }
func (Disabled) Stop() error                        { return nil }
