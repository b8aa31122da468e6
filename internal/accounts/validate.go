package accounts

import (
	"go.uber.org/multierr"

	"github.com/cratchit-dev/cratchit/internal/model"
)

// Validate reports every account ID that appears more than once in the
// chart. Lookups silently resolve such collisions, so callers that need
// unique IDs must check explicitly. The returned error combines one
// *DuplicateIDError per duplicated ID, in order of first appearance.
func (c *Chart) Validate() error {
	counts := make(map[string]int)
	var order []string
	_ = c.Walk(func(acct model.Account, _ int) error {
		if counts[acct.ID()] == 0 {
			order = append(order, acct.ID())
		}
		counts[acct.ID()]++
		return nil
	})

	var err error
	for _, id := range order {
		if n := counts[id]; n > 1 {
			err = multierr.Append(err, &DuplicateIDError{ID: id, Count: n})
		}
	}
	return err
}
