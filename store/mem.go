package store

// Mem is a volatile in-RAM store. It backs tests and hardware that has no
// persistent medium; values last until reset.
type Mem struct {
	vals map[uint16]uint8
}

// NewMem returns an empty in-memory store.
func NewMem() *Mem {
	return &Mem{vals: make(map[uint16]uint8)}
}

func (m *Mem) Exists(id uint16) bool {
	_, ok := m.vals[id]
	return ok
}

func (m *Mem) GetBool(id uint16, def bool) bool {
	v, ok := m.vals[id]
	if !ok {
		return def
	}
	return v != 0
}

func (m *Mem) GetInt(id uint16, def uint8) uint8 {
	v, ok := m.vals[id]
	if !ok {
		return def
	}
	return v
}

func (m *Mem) PutBool(id uint16, v bool) {
	var b uint8
	if v {
		b = 1
	}
	m.vals[id] = b
}

func (m *Mem) PutInt(id uint16, v uint8) {
	m.vals[id] = v
}

func (m *Mem) Remove(id uint16) {
	delete(m.vals, id)
}

// Len reports how many ids are stored.
func (m *Mem) Len() int { return len(m.vals) }
