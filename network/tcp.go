package network

import (
	"errors"
	"net"
	"sync"

	"github.com/ratel-online/core/log"
	"github.com/ratel-online/core/protocol"
	"github.com/ratel-online/core/util/async"
)

type Tcp struct {
	sync.Mutex

	addr     string
	hub      *Hub
	listener net.Listener
}

func NewTcpServer(addr string, hub *Hub) *Tcp {
	return &Tcp{addr: addr, hub: hub}
}

func (t *Tcp) Serve() error {
	listener, err := net.Listen("tcp", t.addr)
	if err != nil {
		log.Error(err)
		return err
	}
	t.Lock()
	t.listener = listener
	t.Unlock()
	log.Infof("Tcp server listening on %s\n", t.addr)
	for {
		conn, err := listener.Accept()
		if errors.Is(err, net.ErrClosed) {
			return nil
		}
		if err != nil {
			log.Infof("listener.Accept err %v\n", err)
			continue
		}
		async.Async(func() {
			err := t.hub.handle(protocol.NewTcpReadWriteCloser(conn))
			if err != nil {
				log.Error(err)
			}
		})
	}
}

func (t *Tcp) Close() error {
	t.Lock()
	defer t.Unlock()
	if t.listener == nil {
		return nil
	}
	return t.listener.Close()
}
