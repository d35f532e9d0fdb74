package flatmap

import "fmt"

// Cursor is an open write position returned by BeginWrite. It is consumed
// by exactly one Commit or Abort on the table that issued it.
type Cursor struct {
	t       *Table
	index   int
	gen     uint64
	claimed bool
}

// Index returns the slot the cursor points at.
func (c *Cursor) Index() int {
	return c.index
}

// Claimed reports whether BeginWrite claimed a vacant slot for a new key,
// as opposed to reopening the slot of an existing one.
func (c *Cursor) Claimed() bool {
	return c.claimed
}

func (t *Table) open(index int, claimed bool) *Cursor {
	t.gen++
	t.cur = &Cursor{t: t, index: index, gen: t.gen, claimed: claimed}
	return t.cur
}

// close validates c against the open cursor and closes it.
func (t *Table) close(c *Cursor) {
	switch {
	case c == nil:
		panic("flatmap: nil cursor")
	case c.t != t:
		panic("flatmap: cursor belongs to another table")
	case t.cur != c:
		panic(fmt.Sprintf("flatmap: stale cursor (generation %d, current %d)", c.gen, t.gen))
	}
	t.cur = nil
}
