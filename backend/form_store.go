package backend

import (
	"sync"

	"github.com/google/uuid"
	"github.com/jackc/cardform/cardform"
)

const defaultMaxSessions = 1000

// formSession is one mounted form. Its mutex serializes input events so the
// controller sees them one at a time.
type formSession struct {
	mutex      sync.Mutex
	controller *cardform.Controller
	alert      string
}

func newFormSession() *formSession {
	session := &formSession{}
	session.controller = cardform.NewController(nil, session)
	return session
}

// Alert records the message for the browser to display.
func (s *formSession) Alert(message string) {
	s.alert = message
}

func (s *formSession) takeAlert() string {
	message := s.alert
	s.alert = ""
	return message
}

// formStore holds the live form sessions in memory. When full, creating a
// session evicts the least recently used one.
type formStore struct {
	mutex    sync.Mutex
	sessions map[uuid.UUID]*formSession
	// order runs from least to most recently used.
	order       []uuid.UUID
	maxSessions int
}

func newFormStore(maxSessions int) *formStore {
	if maxSessions <= 0 {
		maxSessions = defaultMaxSessions
	}
	return &formStore{
		sessions:    make(map[uuid.UUID]*formSession),
		maxSessions: maxSessions,
	}
}

func (s *formStore) create() (uuid.UUID, *formSession) {
	id := uuid.New()
	session := newFormSession()

	s.mutex.Lock()
	defer s.mutex.Unlock()

	for len(s.order) >= s.maxSessions {
		delete(s.sessions, s.order[0])
		s.order = s.order[1:]
	}

	s.sessions[id] = session
	s.order = append(s.order, id)

	return id, session
}

func (s *formStore) get(id uuid.UUID) (*formSession, bool) {
	s.mutex.Lock()
	defer s.mutex.Unlock()

	session, ok := s.sessions[id]
	if ok {
		s.removeFromOrder(id)
		s.order = append(s.order, id)
	}
	return session, ok
}

func (s *formStore) delete(id uuid.UUID) bool {
	s.mutex.Lock()
	defer s.mutex.Unlock()

	if _, ok := s.sessions[id]; !ok {
		return false
	}

	delete(s.sessions, id)
	s.removeFromOrder(id)

	return true
}

func (s *formStore) removeFromOrder(id uuid.UUID) {
	for i, oid := range s.order {
		if oid == id {
			s.order = append(s.order[:i], s.order[i+1:]...)
			return
		}
	}
}

func (s *formStore) len() int {
	s.mutex.Lock()
	defer s.mutex.Unlock()
	return len(s.sessions)
}
