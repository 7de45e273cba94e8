package inmemory

// idSet is an ordered set of story IDs.
type idSet struct {
	ids     []string
	members map[string]struct{}
}

func newIDSet() *idSet {
	return &idSet{members: make(map[string]struct{})}
}

func (s *idSet) contains(id string) bool {
	_, ok := s.members[id]
	return ok
}

func (s *idSet) len() int {
	return len(s.ids)
}

// pushFront inserts id at the head, an already present id keeps its position.
func (s *idSet) pushFront(id string) {
	s.insertAt(id, 0)
}

// pushBack appends id, an already present id keeps its position.
func (s *idSet) pushBack(id string) {
	s.insertAt(id, len(s.ids))
}

// insertAt inserts id at position pos clamped to the set bounds.
func (s *idSet) insertAt(id string, pos int) {
	if s.contains(id) {
		return
	}
	if pos < 0 {
		pos = 0
	}
	if pos > len(s.ids) {
		pos = len(s.ids)
	}
	s.ids = append(s.ids, "")
	copy(s.ids[pos+1:], s.ids[pos:])
	s.ids[pos] = id
	s.members[id] = struct{}{}
}

// remove deletes id and returns its former position or -1.
func (s *idSet) remove(id string) int {
	if !s.contains(id) {
		return -1
	}
	pos := s.position(id)
	s.ids = append(s.ids[:pos], s.ids[pos+1:]...)
	delete(s.members, id)
	return pos
}

func (s *idSet) position(id string) int {
	if !s.contains(id) {
		return -1
	}
	for i, v := range s.ids {
		if v == id {
			return i
		}
	}
	return -1
}
