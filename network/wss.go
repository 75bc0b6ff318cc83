package network

import (
	"errors"
	"net/http"

	"github.com/gorilla/websocket"
	"github.com/ratel-online/core/log"
	"github.com/ratel-online/core/protocol"
)

type Websocket struct {
	addr   string
	hub    *Hub
	server *http.Server
}

var upgrader = websocket.Upgrader{
	ReadBufferSize:  1024,
	WriteBufferSize: 1024,
	CheckOrigin: func(r *http.Request) bool {
		return true
	},
}

func NewWebsocketServer(addr string, hub *Hub) *Websocket {
	w := &Websocket{addr: addr, hub: hub}
	mux := http.NewServeMux()
	mux.HandleFunc("/ws", w.serveWs)
	w.server = &http.Server{Addr: addr, Handler: mux}
	return w
}

func (w *Websocket) Serve() error {
	log.Infof("Websocket server listening on %s\n", w.addr)
	err := w.server.ListenAndServe()
	if errors.Is(err, http.ErrServerClosed) {
		return nil
	}
	return err
}

func (w *Websocket) Close() error {
	return w.server.Close()
}

func (w *Websocket) serveWs(rw http.ResponseWriter, r *http.Request) {
	conn, err := upgrader.Upgrade(rw, r, nil)
	if err != nil {
		log.Error(err)
		return
	}
	if err := w.hub.handle(protocol.NewWebsocketReadWriteCloser(conn)); err != nil {
		log.Error(err)
	}
}
