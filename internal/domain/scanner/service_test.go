package scanner

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeScanner struct {
	code     string
	startErr error
	readErr  error

	started int
	stopped int
}

func (f *fakeScanner) Start(ctx context.Context) error {
	if f.startErr != nil {
		return f.startErr
	}
	f.started++
	return nil
}

func (f *fakeScanner) Read(ctx context.Context) (string, error) {
	if f.readErr != nil {
		return "", f.readErr
	}
	return f.code, nil
}

func (f *fakeScanner) Stop() error {
	f.stopped++
	return nil
}

func TestScanOnce(t *testing.T) {
	dev := &fakeScanner{code: "4870001001234"}
	svc := NewService(dev, nil)

	code, err := svc.ScanOnce(context.Background())
	require.NoError(t, err)
	assert.Equal(t, "4870001001234", code)
	assert.Equal(t, 1, dev.started)
	assert.Equal(t, 1, dev.stopped, "session must be released after a successful read")
}

func TestScanOnce_StopsOnReadError(t *testing.T) {
	dev := &fakeScanner{readErr: errors.New("decode failed")}
	svc := NewService(dev, nil)

	_, err := svc.ScanOnce(context.Background())
	require.Error(t, err)
	assert.Equal(t, 1, dev.stopped, "session must be released on read errors")
}

func TestScanOnce_StopsOnEmptyBarcode(t *testing.T) {
	dev := &fakeScanner{code: "   "}
	svc := NewService(dev, nil)

	_, err := svc.ScanOnce(context.Background())
	require.Error(t, err)
	assert.Equal(t, 1, dev.stopped)
}

func TestScanOnce_StartFailureLeavesNoSession(t *testing.T) {
	dev := &fakeScanner{startErr: errors.New("camera busy")}
	svc := NewService(dev, nil)

	_, err := svc.ScanOnce(context.Background())
	require.Error(t, err)
	assert.Equal(t, 0, dev.started)
	assert.Equal(t, 0, dev.stopped, "no session to release when start fails")
}
