package session

import (
	"sort"
	"sync"

	"github.com/awesome-cap/hashmap"
	"github.com/ratel-online/uno/consts"
	"github.com/ratel-online/uno/uno/event"
)

// Manager is the room to session registry. Sessions of different rooms share nothing.
type Manager struct {
	sync.Mutex

	timeouts Timeouts
	sessions *hashmap.HashMap
}

func NewManager(timeouts Timeouts) *Manager {
	return &Manager{
		timeouts: timeouts,
		sessions: hashmap.New(),
	}
}

// Create opens a lobby for roomID with host already joined. Listeners receive every event of
// the new session, starting with SessionCreated.
func (m *Manager) Create(roomID int64, host event.Player, settings Settings, listeners ...interface{}) (*Session, error) {
	m.Lock()
	defer m.Unlock()
	if existing := m.get(roomID); existing != nil && !existing.Closed() {
		return nil, consts.ErrorsSessionAlreadyExists
	}
	s, err := newSession(roomID, host, settings, m.timeouts, listeners)
	if err != nil {
		return nil, err
	}
	s.onClose = m.release
	m.sessions.Set(roomID, s)
	s.start()
	return s, nil
}

func (m *Manager) Get(roomID int64) (*Session, error) {
	s := m.get(roomID)
	if s == nil || s.Closed() {
		return nil, consts.ErrorsSessionNotFound
	}
	return s, nil
}

func (m *Manager) get(roomID int64) *Session {
	if v, ok := m.sessions.Get(roomID); ok {
		return v.(*Session)
	}
	return nil
}

// Sessions lists the live sessions ordered by room.
func (m *Manager) Sessions() []*Session {
	list := make([]*Session, 0)
	m.sessions.Foreach(func(e *hashmap.Entry) {
		if s := e.Value().(*Session); !s.Closed() {
			list = append(list, s)
		}
	})
	sort.Slice(list, func(i, j int) bool {
		return list[i].RoomID < list[j].RoomID
	})
	return list
}

// Close cancels every live session and waits for them to stop.
func (m *Manager) Close() {
	for _, s := range m.Sessions() {
		_ = s.Abort("server shutting down")
		<-s.Done()
	}
}

func (m *Manager) release(s *Session) {
	m.Lock()
	defer m.Unlock()
	if m.get(s.RoomID) == s {
		m.sessions.Del(s.RoomID)
	}
}
