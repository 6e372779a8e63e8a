// Package desktop talks to the X11 server for overlay mode: root window
// geometry, root resize events and the global pointer.
package desktop

import (
	"context"
	"sync"

	"seasonfx/internal/utils"

	"github.com/jezek/xgb"
	"github.com/jezek/xgb/xproto"
	"github.com/pkg/errors"
)

// Display is a connection to the X server and its default root window.
type Display struct {
	conn  *xgb.Conn
	root  xproto.Window
	close sync.Once
}

// Pointer is the global pointer state in root coordinates.
type Pointer struct {
	X, Y    int
	Primary bool
}

func Open() (*Display, error) {
	conn, err := xgb.NewConn()
	if err != nil {
		return nil, errors.Wrap(err, "connect to X server")
	}

	setup := xproto.Setup(conn)
	root := setup.DefaultScreen(conn).Root
	return &Display{conn: conn, root: root}, nil
}

// RootSize returns the root window size in pixels.
func (d *Display) RootSize() (int, int, error) {
	geom, err := xproto.GetGeometry(d.conn, xproto.Drawable(d.root)).Reply()
	if err != nil {
		return 0, 0, errors.Wrap(err, "root geometry")
	}
	return int(geom.Width), int(geom.Height), nil
}

// Pointer queries the pointer position and whether the primary button is
// held.
func (d *Display) Pointer() (Pointer, error) {
	reply, err := xproto.QueryPointer(d.conn, d.root).Reply()
	if err != nil {
		return Pointer{}, errors.Wrap(err, "query pointer")
	}
	return Pointer{
		X:       int(reply.RootX),
		Y:       int(reply.RootY),
		Primary: reply.Mask&xproto.KeyButMaskButton1 != 0,
	}, nil
}

// WatchRoot calls notify with the new root size each time the root window is
// reconfigured, until ctx is done or the connection closes. notify runs on
// the watcher goroutine.
func (d *Display) WatchRoot(ctx context.Context, notify func(w, h int)) error {
	err := xproto.ChangeWindowAttributesChecked(d.conn, d.root,
		xproto.CwEventMask, []uint32{xproto.EventMaskStructureNotify}).Check()
	if err != nil {
		return errors.Wrap(err, "select root events")
	}

	go func() {
		<-ctx.Done()
		d.Close()
	}()

	for {
		ev, xerr := d.conn.WaitForEvent()
		if ev == nil && xerr == nil {
			utils.Debug("X11 watcher stopped")
			return ctx.Err()
		}
		if xerr != nil {
			utils.Warn("X11 error: %v", xerr)
			continue
		}
		if cfg, ok := ev.(xproto.ConfigureNotifyEvent); ok && cfg.Window == d.root {
			notify(int(cfg.Width), int(cfg.Height))
		}
	}
}

// Close ends the connection. WatchRoot returns after Close.
func (d *Display) Close() {
	d.close.Do(d.conn.Close)
}
