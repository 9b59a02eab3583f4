// Package catalog converts message stores to and from an editable YAML
// document. Control characters are written as [NAME] keywords.
package catalog

import (
	"fmt"
	"io"

	"gopkg.in/yaml.v3"

	"github.com/ssargent/pmdmessage/pkg/keyword"
	"github.com/ssargent/pmdmessage/pkg/message"
)

// Hash is a message hash, written in hexadecimal
type Hash uint32

// MarshalYAML renders the hash as a hexadecimal integer
func (h Hash) MarshalYAML() (interface{}, error) {
	return &yaml.Node{
		Kind:  yaml.ScalarNode,
		Tag:   "!!int",
		Value: fmt.Sprintf("0x%08X", uint32(h)),
	}, nil
}

// Entry is one editable message
type Entry struct {
	Hash Hash   `yaml:"hash"`
	Unk  uint32 `yaml:"unk"`
	Text string `yaml:"text"`
}

// Catalog is the editable form of a message store
type Catalog struct {
	Messages []Entry `yaml:"messages"`
}

// FromStore builds a catalog from store, decoding control characters with kw
func FromStore(store *message.Store, kw *keyword.Keywords) *Catalog {
	messages := store.Messages()
	c := &Catalog{Messages: make([]Entry, 0, len(messages))}
	for _, msg := range messages {
		c.Messages = append(c.Messages, Entry{
			Hash: Hash(msg.Hash),
			Unk:  msg.Unk,
			Text: kw.Decode(msg.Text),
		})
	}
	return c
}

// ToStore encodes the keywords of every entry and builds a store. Entries
// sharing a hash follow message.Store.Insert: the later one wins and keeps
// the earlier position.
func (c *Catalog) ToStore(kw *keyword.Keywords) (*message.Store, error) {
	store := message.NewStore()
	for i, entry := range c.Messages {
		raw, err := kw.Encode(entry.Text)
		if err != nil {
			return nil, fmt.Errorf("message %d (hash 0x%08X): %w", i, uint32(entry.Hash), err)
		}
		store.Insert(uint32(entry.Hash), entry.Unk, raw)
	}
	return store, nil
}

// Read parses a YAML catalog
func Read(r io.Reader) (*Catalog, error) {
	var c Catalog
	if err := yaml.NewDecoder(r).Decode(&c); err != nil {
		if err == io.EOF {
			return &c, nil
		}
		return nil, fmt.Errorf("failed to parse catalog: %w", err)
	}
	return &c, nil
}

// Write renders the catalog as YAML
func (c *Catalog) Write(w io.Writer) error {
	enc := yaml.NewEncoder(w)
	enc.SetIndent(2)
	if err := enc.Encode(c); err != nil {
		return fmt.Errorf("failed to write catalog: %w", err)
	}
	return enc.Close()
}
