package accounts

import (
	"sort"

	"github.com/cratchit-dev/cratchit/internal/model"
)

// Chart owns the top-level accounts of a chart of accounts and answers
// lookups over every account reachable from them.
//
// The ID index is rebuilt on each query; nothing is cached between calls.
type Chart struct {
	topLevel []model.Account
}

// NewChart creates an empty chart.
func NewChart() *Chart {
	return &Chart{}
}

// AddTopLevelAccount appends a copy of acct as a new root.
func (c *Chart) AddTopLevelAccount(acct model.Account) {
	c.topLevel = append(c.topLevel, acct.Clone())
}

// TopLevelAccounts returns copies of the roots in insertion order.
func (c *Chart) TopLevelAccounts() []model.Account {
	out := make([]model.Account, len(c.topLevel))
	for i, a := range c.topLevel {
		out[i] = a.Clone()
	}
	return out
}

// Count returns the number of distinct account IDs in the chart.
func (c *Chart) Count() int {
	return len(c.index())
}

// Get returns a copy of the account with the given ID.
func (c *Chart) Get(id string) (model.Account, bool) {
	a, ok := c.index()[id]
	if !ok {
		return model.Account{}, false
	}
	return a.Clone(), true
}

// Exists reports whether an account ID exists.
func (c *Chart) Exists(id string) bool {
	_, ok := c.index()[id]
	return ok
}

// IDs returns every account ID in unspecified order.
func (c *Chart) IDs() []string {
	idx := c.index()
	ids := make([]string, 0, len(idx))
	for id := range idx {
		ids = append(ids, id)
	}
	return ids
}

// SortedIDs returns IDs sorted lexically.
func (c *Chart) SortedIDs() []string {
	ids := c.IDs()
	sort.Strings(ids)
	return ids
}

// ByType returns all accounts of the given type, sorted by ID.
func (c *Chart) ByType(accountType model.AccountType) []model.Account {
	var result []model.Account
	idx := c.index()
	for _, id := range c.SortedIDs() {
		if a := idx[id]; a.Type() == accountType {
			result = append(result, a.Clone())
		}
	}
	return result
}

// Walk visits every account in pre-order (each account before its
// sub-accounts), roots in chart order. Depth is 0 for roots.
// Walking stops at the first error returned by fn.
func (c *Chart) Walk(fn func(acct model.Account, depth int) error) error {
	for _, root := range c.topLevel {
		if err := walk(root, 0, fn); err != nil {
			return err
		}
	}
	return nil
}

func walk(acct model.Account, depth int, fn func(model.Account, int) error) error {
	if err := fn(acct, depth); err != nil {
		return err
	}
	for _, child := range acct.Children() {
		if err := walk(child, depth+1, fn); err != nil {
			return err
		}
	}
	return nil
}

// index maps each ID to its account. Each root is inserted before its
// descendants, so on a collision the later insertion wins: a descendant
// shadows its own root, a later root shadows an earlier one.
func (c *Chart) index() map[string]model.Account {
	idx := make(map[string]model.Account)
	for _, root := range c.topLevel {
		idx[root.ID()] = root
		for _, sub := range root.Descendants() {
			idx[sub.ID()] = sub
		}
	}
	return idx
}
