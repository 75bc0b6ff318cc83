package network

import (
	"sync"

	"github.com/ratel-online/core/protocol"
	"github.com/ratel-online/uno/consts"
)

// PacketWriter is the sending half of a connection.
type PacketWriter interface {
	Write(packet protocol.Packet) error
}

type Client struct {
	ID     int64
	Name   string
	RoomID int64

	lock sync.Mutex
	conn PacketWriter
}

func NewClient(id int64, name string, conn PacketWriter) *Client {
	return &Client{ID: id, Name: name, conn: conn}
}

// WriteString may be called from any goroutine; writes are serialized.
func (c *Client) WriteString(data string) error {
	c.lock.Lock()
	defer c.lock.Unlock()
	return c.conn.Write(protocol.Packet{
		Body: []byte(data),
	})
}

func (c *Client) WriteError(err error) error {
	if err == consts.ErrorsExist {
		return err
	}
	return c.WriteString(err.Error() + "\n")
}
