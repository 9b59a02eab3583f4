package message

// Message is one entry of a message file
type Message struct {
	Hash uint32 // Identifier of the message
	Unk  uint32 // Unknown value, preserved verbatim
	Text string // Message content
}

// Store holds messages keyed by hash, in insertion order
type Store struct {
	messages []Message
	index    map[uint32]int // hash -> position in messages
}

// NewStore creates an empty store
func NewStore() *Store {
	return &Store{
		index: make(map[uint32]int),
	}
}

// Insert adds a message at the end of the store. If the hash is already
// present, its value and text are replaced in place and its position is kept.
func (s *Store) Insert(hash, unk uint32, text string) {
	if position, exists := s.index[hash]; exists {
		s.messages[position].Unk = unk
		s.messages[position].Text = text
		return
	}

	s.index[hash] = len(s.messages)
	s.messages = append(s.messages, Message{Hash: hash, Unk: unk, Text: text})
}

// Get returns the message with the given hash
func (s *Store) Get(hash uint32) (Message, bool) {
	position, exists := s.index[hash]
	if !exists {
		return Message{}, false
	}
	return s.messages[position], true
}

// Messages returns a copy of all messages in store order
func (s *Store) Messages() []Message {
	messages := make([]Message, len(s.messages))
	copy(messages, s.messages)
	return messages
}

// Len returns the number of messages
func (s *Store) Len() int {
	return len(s.messages)
}
