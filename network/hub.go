package network

import (
	"fmt"
	"sync"

	"github.com/awesome-cap/hashmap"
	"github.com/ratel-online/core/log"
	"github.com/ratel-online/uno/consts"
	"github.com/ratel-online/uno/session"
)

// Hub tracks connected players and the rooms they sit in, and delivers session messages to them.
type Hub struct {
	sync.Mutex

	clients  *hashmap.HashMap
	members  map[int64]map[int64]bool
	sessions *session.Manager
}

func NewHub(sessions *session.Manager) *Hub {
	return &Hub{
		clients:  hashmap.New(),
		members:  map[int64]map[int64]bool{},
		sessions: sessions,
	}
}

// Connect registers an authenticated client. A player id can only be online once.
func (h *Hub) Connect(c *Client) error {
	h.Lock()
	defer h.Unlock()
	if h.getClient(c.ID) != nil {
		return consts.ErrorsAuthFail
	}
	h.clients.Set(c.ID, c)
	return nil
}

// Disconnect forgets the client. A host who leaves takes their session down with them.
func (h *Hub) Disconnect(c *Client) {
	if c.RoomID != 0 {
		if s, err := h.sessions.Get(c.RoomID); err == nil && s.Host().ID == c.ID {
			_ = s.Abort(fmt.Sprintf("%s lost connection", c.Name))
		}
		h.leave(c)
	}
	h.Lock()
	defer h.Unlock()
	if h.getClient(c.ID) == c {
		h.clients.Del(c.ID)
	}
	log.Infof("player %s[%d] disconnected\n", c.Name, c.ID)
}

func (h *Hub) getClient(playerID int64) *Client {
	if v, ok := h.clients.Get(playerID); ok {
		return v.(*Client)
	}
	return nil
}

func (h *Hub) enter(c *Client, roomID int64) {
	if c.RoomID == roomID {
		return
	}
	h.leave(c)
	h.Lock()
	defer h.Unlock()
	if h.members[roomID] == nil {
		h.members[roomID] = map[int64]bool{}
	}
	h.members[roomID][c.ID] = true
	c.RoomID = roomID
}

func (h *Hub) leave(c *Client) {
	h.Lock()
	defer h.Unlock()
	if members := h.members[c.RoomID]; members != nil {
		delete(members, c.ID)
		if len(members) == 0 {
			delete(h.members, c.RoomID)
		}
	}
	c.RoomID = 0
}

func (h *Hub) roomMembers(roomID int64) []int64 {
	h.Lock()
	defer h.Unlock()
	ids := make([]int64, 0, len(h.members[roomID]))
	for id := range h.members[roomID] {
		ids = append(ids, id)
	}
	return ids
}

func (h *Hub) Broadcast(roomID int64, msg string, exclude ...int64) {
	excludeSet := map[int64]bool{}
	for _, exc := range exclude {
		excludeSet[exc] = true
	}
	for _, playerID := range h.roomMembers(roomID) {
		if client := h.getClient(playerID); client != nil && !excludeSet[playerID] {
			_ = client.WriteString(">> " + msg)
		}
	}
}

func (h *Hub) Send(playerID int64, msg string) {
	if client := h.getClient(playerID); client != nil {
		_ = client.WriteString(msg)
	}
}
