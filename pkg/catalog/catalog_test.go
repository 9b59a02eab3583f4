package catalog

import (
	"bytes"
	"errors"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ssargent/pmdmessage/pkg/keyword"
	"github.com/ssargent/pmdmessage/pkg/message"
)

func testStore() *message.Store {
	store := message.NewStore()
	store.Insert(0x2F6A1B03, 0, "\uC10AHello\uC10F [world] \\ path")
	store.Insert(0x0000BEEF, 7, "\uD100 and \uD200")
	store.Insert(0x00000001, 0xFFFFFFFF, "")
	return store
}

func TestFromStore(t *testing.T) {
	c := FromStore(testStore(), keyword.NewDefault())

	assert.Equal(t, []Entry{
		{Hash: 0x2F6A1B03, Unk: 0, Text: `[RED]Hello[COLOREND] \[world] \\ path`},
		{Hash: 0x0000BEEF, Unk: 7, Text: "[PLAYERNAME] and [PARTNERNAME]"},
		{Hash: 0x00000001, Unk: 0xFFFFFFFF, Text: ""},
	}, c.Messages)
}

func TestRoundTrip(t *testing.T) {
	kw := keyword.NewDefault()
	store := testStore()

	var buf bytes.Buffer
	require.NoError(t, FromStore(store, kw).Write(&buf))

	c, err := Read(&buf)
	require.NoError(t, err)

	loaded, err := c.ToStore(kw)
	require.NoError(t, err)
	assert.Equal(t, store.Messages(), loaded.Messages())
}

func TestWrite_HexHashes(t *testing.T) {
	c := &Catalog{Messages: []Entry{{Hash: 0xBEEF, Unk: 3, Text: "hi"}}}

	var buf bytes.Buffer
	require.NoError(t, c.Write(&buf))

	assert.Equal(t, "messages:\n  - hash: 0x0000BEEF\n    unk: 3\n    text: hi\n", buf.String())
}

func TestRead(t *testing.T) {
	t.Run("decimal and hex hashes", func(t *testing.T) {
		doc := `
messages:
  - hash: 0x10
    unk: 1
    text: "[RED]a"
  - hash: 32
    text: b
`
		c, err := Read(strings.NewReader(doc))
		require.NoError(t, err)
		assert.Equal(t, []Entry{
			{Hash: 0x10, Unk: 1, Text: "[RED]a"},
			{Hash: 32, Unk: 0, Text: "b"},
		}, c.Messages)
	})

	t.Run("empty document", func(t *testing.T) {
		c, err := Read(strings.NewReader(""))
		require.NoError(t, err)
		assert.Empty(t, c.Messages)
	})

	t.Run("invalid yaml", func(t *testing.T) {
		_, err := Read(strings.NewReader("messages: [unclosed"))
		assert.Error(t, err)
	})

	t.Run("hash out of range", func(t *testing.T) {
		_, err := Read(strings.NewReader("messages:\n  - hash: 0x100000000\n"))
		assert.Error(t, err)
	})
}

func TestToStore_KeywordError(t *testing.T) {
	c := &Catalog{Messages: []Entry{
		{Hash: 1, Text: "fine"},
		{Hash: 2, Text: "[NOT_A_KEYWORD]"},
	}}

	_, err := c.ToStore(keyword.NewDefault())
	require.Error(t, err)
	assert.ErrorIs(t, err, keyword.ErrUnknownEscape)
	assert.Contains(t, err.Error(), "0x00000002")

	var encErr *keyword.EncodeError
	require.True(t, errors.As(err, &encErr))
	assert.Equal(t, "NOT_A_KEYWORD", encErr.Name)
}

func TestToStore_DuplicateHash(t *testing.T) {
	c := &Catalog{Messages: []Entry{
		{Hash: 1, Unk: 1, Text: "a"},
		{Hash: 2, Unk: 2, Text: "b"},
		{Hash: 1, Unk: 3, Text: "c"},
	}}

	store, err := c.ToStore(keyword.New())
	require.NoError(t, err)
	assert.Equal(t, []message.Message{
		{Hash: 1, Unk: 3, Text: "c"},
		{Hash: 2, Unk: 2, Text: "b"},
	}, store.Messages())
}
