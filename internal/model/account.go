package model

// Account is a node in the chart-of-accounts tree. Each account owns its
// sub-accounts; there are no parent pointers.
type Account struct {
	id          string
	name        string
	description string
	accountType AccountType
	currency    Currency
	placeholder bool
	subAccounts []Account
}

// NewAccount creates an account with no sub-accounts. Arguments are not
// validated; empty strings and duplicate IDs are accepted.
func NewAccount(id, name, description string, accountType AccountType, currency Currency, placeholder bool) Account {
	return Account{
		id:          id,
		name:        name,
		description: description,
		accountType: accountType,
		currency:    currency,
		placeholder: placeholder,
	}
}

// ID returns the account identifier.
func (a Account) ID() string { return a.id }

// Name returns the display name.
func (a Account) Name() string { return a.name }

// Description returns the long description.
func (a Account) Description() string { return a.description }

// Type returns the account classification.
func (a Account) Type() AccountType { return a.accountType }

// Currency returns the account denomination.
func (a Account) Currency() Currency { return a.currency }

// Placeholder reports whether the account only groups sub-accounts and must
// not receive transactions directly.
func (a Account) Placeholder() bool { return a.placeholder }

// AddChild appends a copy of child to the end of the sub-account list.
func (a *Account) AddChild(child Account) {
	a.subAccounts = append(a.subAccounts, child.Clone())
}

// Children returns copies of the direct sub-accounts in insertion order.
func (a Account) Children() []Account {
	if len(a.subAccounts) == 0 {
		return nil
	}
	out := make([]Account, len(a.subAccounts))
	for i, c := range a.subAccounts {
		out[i] = c.Clone()
	}
	return out
}

// Descendants returns every strict descendant of the account. Siblings are
// visited left to right and each child comes after its own descendants:
// for root -> [a -> [a1], b] the result is [a1, a, b].
func (a Account) Descendants() []Account {
	var out []Account
	for _, c := range a.subAccounts {
		out = append(out, c.Descendants()...)
		out = append(out, c.Clone())
	}
	return out
}

// Clone returns a deep copy of the account and its subtree.
func (a Account) Clone() Account {
	c := a
	c.subAccounts = a.Children()
	return c
}
