package model

import "strings"

// AccountType classifies accounts in the chart of accounts.
// Values match the integers used by chart documents.
type AccountType int

const (
	AccountTypeAsset     AccountType = 1
	AccountTypeEquity    AccountType = 2
	AccountTypeExpense   AccountType = 3
	AccountTypeIncome    AccountType = 4
	AccountTypeLiability AccountType = 5
	AccountTypeOther     AccountType = 6
)

// AccountTypes lists every account type in numeric order.
var AccountTypes = []AccountType{
	AccountTypeAsset,
	AccountTypeEquity,
	AccountTypeExpense,
	AccountTypeIncome,
	AccountTypeLiability,
	AccountTypeOther,
}

// ParseAccountType maps a name to an AccountType, ignoring case.
// Unrecognized names map to AccountTypeOther.
func ParseAccountType(s string) AccountType {
	switch strings.ToLower(s) {
	case "asset":
		return AccountTypeAsset
	case "equity":
		return AccountTypeEquity
	case "expense":
		return AccountTypeExpense
	case "income":
		return AccountTypeIncome
	case "liability":
		return AccountTypeLiability
	default:
		return AccountTypeOther
	}
}

// AccountTypeFromInt maps a document integer to an AccountType.
// Out-of-range values map to AccountTypeOther.
func AccountTypeFromInt(n int) AccountType {
	t := AccountType(n)
	if t < AccountTypeAsset || t > AccountTypeOther {
		return AccountTypeOther
	}
	return t
}

func (t AccountType) String() string {
	switch t {
	case AccountTypeAsset:
		return "asset"
	case AccountTypeEquity:
		return "equity"
	case AccountTypeExpense:
		return "expense"
	case AccountTypeIncome:
		return "income"
	case AccountTypeLiability:
		return "liability"
	}
	return "other"
}
