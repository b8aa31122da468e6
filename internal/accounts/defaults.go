package accounts

import "github.com/cratchit-dev/cratchit/internal/model"

// DefaultChart returns a starter chart of accounts with one placeholder
// root per account type.
func DefaultChart() *Chart {
	usd := model.CurrencyUSDollar
	node := func(id, name, desc string, t model.AccountType, placeholder bool, children ...model.Account) model.Account {
		a := model.NewAccount(id, name, desc, t, usd, placeholder)
		for _, c := range children {
			a.AddChild(c)
		}
		return a
	}

	chart := NewChart()
	chart.AddTopLevelAccount(node("01", "Assets", "Assets", model.AccountTypeAsset, true,
		node("01-01", "Business Checking", "Primary checking account", model.AccountTypeAsset, false),
		node("01-02", "Business Savings", "Savings account", model.AccountTypeAsset, false),
		node("01-03", "Accounts Receivable", "Accounts Receivable", model.AccountTypeAsset, true),
	))
	chart.AddTopLevelAccount(node("02", "Liabilities", "Liabilities", model.AccountTypeLiability, true,
		node("02-01", "Credit Card", "Business credit card", model.AccountTypeLiability, false),
	))
	chart.AddTopLevelAccount(node("03", "Equity", "Equity", model.AccountTypeEquity, true,
		node("03-01", "Owner's Equity", "Owner's equity", model.AccountTypeEquity, false),
	))
	chart.AddTopLevelAccount(node("04", "Income", "Income", model.AccountTypeIncome, true,
		node("04-01", "Service Revenue", "Service revenue", model.AccountTypeIncome, false),
		node("04-02", "Product Revenue", "Product revenue", model.AccountTypeIncome, false),
	))
	chart.AddTopLevelAccount(node("05", "Expenses", "Expenses", model.AccountTypeExpense, true,
		node("05-01", "Advertising & Marketing", "Advertising costs", model.AccountTypeExpense, false),
		node("05-02", "Software & SaaS", "Software subscriptions", model.AccountTypeExpense, false),
		node("05-03", "Office Supplies", "Office supplies and expenses", model.AccountTypeExpense, false),
		node("05-04", "Professional Services", "Legal, accounting, consulting", model.AccountTypeExpense, false),
	))
	return chart
}
