package model

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func ids(accts []Account) []string {
	out := make([]string, len(accts))
	for i, a := range accts {
		out[i] = a.ID()
	}
	return out
}

func TestNewAccount(t *testing.T) {
	acct := NewAccount("01", "Accounts Receivable", "Accounts Receivable", AccountTypeAsset, CurrencyUSDollar, true)

	assert.Equal(t, "01", acct.ID())
	assert.Equal(t, "Accounts Receivable", acct.Name())
	assert.Equal(t, "Accounts Receivable", acct.Description())
	assert.Equal(t, AccountTypeAsset, acct.Type())
	assert.Equal(t, CurrencyUSDollar, acct.Currency())
	assert.True(t, acct.Placeholder())
	assert.Empty(t, acct.Children())
}

func TestNewAccount_NoValidation(t *testing.T) {
	acct := NewAccount("", "", "", AccountTypeOther, CurrencyUnknown, false)
	assert.Equal(t, "", acct.ID())
	assert.False(t, acct.Placeholder())
}

func TestAddChild_PreservesOrder(t *testing.T) {
	parent := NewAccount("01", "Assets", "", AccountTypeAsset, CurrencyUSDollar, true)
	parent.AddChild(NewAccount("01-01", "Checking", "", AccountTypeAsset, CurrencyUSDollar, false))
	parent.AddChild(NewAccount("01-02", "Savings", "", AccountTypeAsset, CurrencyUSDollar, false))

	assert.Equal(t, []string{"01-01", "01-02"}, ids(parent.Children()))
}

func TestAddChild_CopiesChild(t *testing.T) {
	parent := NewAccount("01", "Assets", "", AccountTypeAsset, CurrencyUSDollar, true)
	child := NewAccount("01-01", "Checking", "", AccountTypeAsset, CurrencyUSDollar, false)
	parent.AddChild(child)

	// Later changes to the caller's value are not visible through the parent.
	child.AddChild(NewAccount("01-0101", "Sub", "", AccountTypeAsset, CurrencyUSDollar, false))

	require.Len(t, parent.Children(), 1)
	assert.Empty(t, parent.Children()[0].Children())
}

func TestDescendants(t *testing.T) {
	leaf := NewAccount("leaf", "Leaf", "", AccountTypeAsset, CurrencyUSDollar, false)

	t.Run("no children", func(t *testing.T) {
		assert.Empty(t, leaf.Descendants())
	})

	t.Run("single child", func(t *testing.T) {
		root := NewAccount("root", "Root", "", AccountTypeAsset, CurrencyUSDollar, true)
		root.AddChild(leaf)
		assert.Equal(t, []string{"leaf"}, ids(root.Descendants()))
	})

	t.Run("children after their descendants", func(t *testing.T) {
		a := NewAccount("a", "A", "", AccountTypeAsset, CurrencyUSDollar, true)
		a.AddChild(NewAccount("a1", "A1", "", AccountTypeAsset, CurrencyUSDollar, false))
		a.AddChild(NewAccount("a2", "A2", "", AccountTypeAsset, CurrencyUSDollar, false))
		b := NewAccount("b", "B", "", AccountTypeAsset, CurrencyUSDollar, true)
		b.AddChild(NewAccount("b1", "B1", "", AccountTypeAsset, CurrencyUSDollar, false))

		root := NewAccount("root", "Root", "", AccountTypeAsset, CurrencyUSDollar, true)
		root.AddChild(a)
		root.AddChild(b)

		assert.Equal(t, []string{"a1", "a2", "a", "b1", "b"}, ids(root.Descendants()))
	})
}

func TestClone_IsIndependent(t *testing.T) {
	root := NewAccount("root", "Root", "", AccountTypeAsset, CurrencyUSDollar, true)
	root.AddChild(NewAccount("a", "A", "", AccountTypeAsset, CurrencyUSDollar, false))

	c := root.Clone()
	root.AddChild(NewAccount("b", "B", "", AccountTypeAsset, CurrencyUSDollar, false))

	assert.Equal(t, []string{"a"}, ids(c.Children()))
	assert.Equal(t, []string{"a", "b"}, ids(root.Children()))
}
