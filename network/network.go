package network

import (
	"time"

	"github.com/ratel-online/core/log"
	"github.com/ratel-online/core/model"
	"github.com/ratel-online/core/network"
	"github.com/ratel-online/core/protocol"
	"github.com/ratel-online/core/util/async"
	"github.com/ratel-online/uno/consts"
	"github.com/ratel-online/uno/render"
)

// Network is interface of all kinds of network.
type Network interface {
	Serve() error
	Close() error
}

func (h *Hub) handle(rwc protocol.ReadWriteCloser) error {
	c := network.Wrapper(rwc)
	defer func() {
		err := c.Close()
		if err != nil {
			log.Error(err)
		}
	}()
	log.Info("new player connected! ")
	authInfo, err := loginAuth(c)
	if err == nil && authInfo.ID <= 0 {
		err = consts.ErrorsAuthFail
	}
	if err != nil {
		_ = c.Write(protocol.ErrorPacket(err))
		return err
	}
	client := NewClient(authInfo.ID, authInfo.Name, c)
	if err = h.Connect(client); err != nil {
		_ = c.Write(protocol.ErrorPacket(err))
		return err
	}
	defer h.Disconnect(client)
	log.Infof("player auth accessed, %d:%s\n", authInfo.ID, authInfo.Name)

	_ = client.WriteString(render.Message.Welcome() + helpText)
	_ = client.WriteString(consts.IsStart)
	for {
		packet, err := c.Read()
		if err != nil {
			return err
		}
		if quit := h.Handle(client, packet.String()); quit {
			_ = client.WriteString(consts.IsStop)
			return nil
		}
	}
}

func loginAuth(c *network.Conn) (*model.AuthInfo, error) {
	authChan := make(chan *model.AuthInfo, 1)
	async.Async(func() {
		packet, err := c.Read()
		if err != nil {
			log.Error(err)
			return
		}
		authInfo := &model.AuthInfo{}
		err = packet.Unmarshal(authInfo)
		if err != nil {
			log.Error(err)
			return
		}
		authChan <- authInfo
	})
	select {
	case authInfo := <-authChan:
		return authInfo, nil
	case <-time.After(consts.AuthTimeout):
		return nil, consts.ErrorsAuthFail
	}
}
