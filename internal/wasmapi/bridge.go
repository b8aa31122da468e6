// Package wasmapi is the JavaScript-facing surface of the chart of accounts,
// expressed in plain Go values so it can be tested without a JS runtime.
// cmd/cratchit-wasm converts these values to and from syscall/js.
//
// Accounts and charts created from JavaScript are held by a Bridge and
// referred to by Handle. Passing an account to add_child or
// add_top_level_account copies it, as in the Go API.
package wasmapi

import (
	"errors"
	"fmt"
	"math"
	"strings"

	"github.com/cratchit-dev/cratchit/internal/accounts"
	"github.com/cratchit-dev/cratchit/internal/model"
)

// ErrBadArgument is returned when a JS call passes a missing or mistyped
// argument.
var ErrBadArgument = errors.New("bad argument")

// ErrReleased is returned when a handle has been freed or never existed.
var ErrReleased = errors.New("object was freed")

// Handle identifies an account or chart held by a Bridge.
type Handle int

// Method is one JS-callable function. Arguments arrive as Go values:
// strings, float64 numbers, bools, Handles for bridge objects, []any for
// arrays and nil for anything else.
type Method func(args []any) (any, error)

// Object is exposed to JS as an object carrying its handle and methods.
type Object struct {
	Handle  Handle
	Methods map[string]Method
}

// Bridge owns the accounts and charts created from JS.
type Bridge struct {
	next     Handle
	accounts map[Handle]*model.Account
	charts   map[Handle]*accounts.Chart
}

// New returns an empty Bridge.
func New() *Bridge {
	return &Bridge{
		accounts: make(map[Handle]*model.Account),
		charts:   make(map[Handle]*accounts.Chart),
	}
}

// Globals returns the members of the global "cratchit" object.
func (b *Bridge) Globals() map[string]any {
	return map[string]any{
		"AccountType":   AccountTypes(),
		"Currency":      Currencies(),
		"Account":       map[string]any{"new": Method(b.newAccount)},
		"AccountsChart": map[string]any{"new": Method(b.newChart)},
		"loadChart":     Method(b.loadChart),
	}
}

// AccountTypes is the JS enum table for account types.
func AccountTypes() map[string]any {
	out := make(map[string]any, len(model.AccountTypes))
	for _, t := range model.AccountTypes {
		name := t.String()
		out[strings.ToUpper(name[:1])+name[1:]] = int(t)
	}
	return out
}

// Currencies is the JS enum table for currencies.
func Currencies() map[string]any {
	return map[string]any{
		"Unknown":  int(model.CurrencyUnknown),
		"USDollar": int(model.CurrencyUSDollar),
	}
}

// Len reports how many objects the bridge still holds.
func (b *Bridge) Len() int {
	return len(b.accounts) + len(b.charts)
}

func (b *Bridge) holdAccount(acct model.Account) *Object {
	b.next++
	h := b.next
	b.accounts[h] = &acct
	return b.accountObject(h)
}

func (b *Bridge) holdChart(chart *accounts.Chart) *Object {
	b.next++
	h := b.next
	b.charts[h] = chart
	return b.chartObject(h)
}

func (b *Bridge) account(h Handle) (*model.Account, error) {
	acct, ok := b.accounts[h]
	if !ok {
		return nil, fmt.Errorf("account %d: %w", h, ErrReleased)
	}
	return acct, nil
}

func (b *Bridge) chart(h Handle) (*accounts.Chart, error) {
	chart, ok := b.charts[h]
	if !ok {
		return nil, fmt.Errorf("chart %d: %w", h, ErrReleased)
	}
	return chart, nil
}

// newAccount implements Account.new(id, name, description, type, currency,
// placeholder[, subaccounts]).
func (b *Bridge) newAccount(args []any) (any, error) {
	id, err := stringArg(args, 0, "id")
	if err != nil {
		return nil, err
	}
	name, err := stringArg(args, 1, "name")
	if err != nil {
		return nil, err
	}
	desc, err := stringArg(args, 2, "description")
	if err != nil {
		return nil, err
	}
	accountType, err := intArg(args, 3, "account type")
	if err != nil {
		return nil, err
	}
	currency, err := intArg(args, 4, "currency")
	if err != nil {
		return nil, err
	}
	placeholder, err := boolArg(args, 5, "placeholder")
	if err != nil {
		return nil, err
	}

	acct := model.NewAccount(id, name, desc,
		model.AccountTypeFromInt(accountType), model.CurrencyFromInt(currency), placeholder)

	if len(args) > 6 && args[6] != nil {
		subs, ok := args[6].([]any)
		if !ok {
			return nil, fmt.Errorf("subaccounts: %w", ErrBadArgument)
		}
		for i := range subs {
			child, err := b.accountArg(subs, i, "subaccount")
			if err != nil {
				return nil, err
			}
			acct.AddChild(*child)
		}
	}
	return b.holdAccount(acct), nil
}

func (b *Bridge) newChart(args []any) (any, error) {
	return b.holdChart(accounts.NewChart()), nil
}

func (b *Bridge) loadChart(args []any) (any, error) {
	text, err := stringArg(args, 0, "chart JSON")
	if err != nil {
		return nil, err
	}
	chart, err := accounts.DecodeJSON(strings.NewReader(text))
	if err != nil {
		return nil, err
	}
	return b.holdChart(chart), nil
}

func (b *Bridge) accountObject(h Handle) *Object {
	getter := func(fn func(acct *model.Account) any) Method {
		return func([]any) (any, error) {
			acct, err := b.account(h)
			if err != nil {
				return nil, err
			}
			return fn(acct), nil
		}
	}

	return &Object{
		Handle: h,
		Methods: map[string]Method{
			"get_id":           getter(func(a *model.Account) any { return a.ID() }),
			"get_name":         getter(func(a *model.Account) any { return a.Name() }),
			"get_description":  getter(func(a *model.Account) any { return a.Description() }),
			"get_account_type": getter(func(a *model.Account) any { return int(a.Type()) }),
			"get_currency":     getter(func(a *model.Account) any { return int(a.Currency()) }),
			"is_placeholder":   getter(func(a *model.Account) any { return a.Placeholder() }),
			"to_document":      getter(func(a *model.Account) any { return DocumentValue(accounts.ToDocument(*a)) }),
			"get_sub_accounts": getter(func(a *model.Account) any {
				children := a.Children()
				out := make([]any, len(children))
				for i, child := range children {
					out[i] = b.holdAccount(child)
				}
				return out
			}),
			"add_child": func(args []any) (any, error) {
				acct, err := b.account(h)
				if err != nil {
					return nil, err
				}
				child, err := b.accountArg(args, 0, "child")
				if err != nil {
					return nil, err
				}
				acct.AddChild(*child)
				return nil, nil
			},
			"free": func([]any) (any, error) {
				delete(b.accounts, h)
				return nil, nil
			},
		},
	}
}

func (b *Bridge) chartObject(h Handle) *Object {
	return &Object{
		Handle: h,
		Methods: map[string]Method{
			"count": func([]any) (any, error) {
				chart, err := b.chart(h)
				if err != nil {
					return nil, err
				}
				return chart.Count(), nil
			},
			"ids": func([]any) (any, error) {
				chart, err := b.chart(h)
				if err != nil {
					return nil, err
				}
				ids := chart.SortedIDs()
				out := make([]any, len(ids))
				for i, id := range ids {
					out[i] = id
				}
				return out, nil
			},
			"get": func(args []any) (any, error) {
				chart, err := b.chart(h)
				if err != nil {
					return nil, err
				}
				id, err := stringArg(args, 0, "account id")
				if err != nil {
					return nil, err
				}
				acct, ok := chart.Get(id)
				if !ok {
					return nil, nil
				}
				return b.holdAccount(acct), nil
			},
			"add_top_level_account": func(args []any) (any, error) {
				chart, err := b.chart(h)
				if err != nil {
					return nil, err
				}
				acct, err := b.accountArg(args, 0, "account")
				if err != nil {
					return nil, err
				}
				chart.AddTopLevelAccount(*acct)
				return nil, nil
			},
			"to_document": func([]any) (any, error) {
				chart, err := b.chart(h)
				if err != nil {
					return nil, err
				}
				doc := accounts.ChartDocument(chart)
				out := make([]any, len(doc.Accounts))
				for i, a := range doc.Accounts {
					out[i] = DocumentValue(a)
				}
				return map[string]any{"accounts": out}, nil
			},
			"free": func([]any) (any, error) {
				delete(b.charts, h)
				return nil, nil
			},
		},
	}
}

// DocumentValue converts an encoded account to nested maps and slices.
func DocumentValue(doc accounts.AccountDoc) map[string]any {
	subs := make([]any, len(doc.Subaccounts))
	for i, s := range doc.Subaccounts {
		subs[i] = DocumentValue(s)
	}
	return map[string]any{
		"id":          doc.ID,
		"name":        doc.Name,
		"description": doc.Description,
		"type":        doc.Type,
		"currency":    doc.Currency,
		"placeholder": doc.Placeholder,
		"subaccounts": subs,
	}
}

func (b *Bridge) accountArg(args []any, i int, name string) (*model.Account, error) {
	if i >= len(args) {
		return nil, fmt.Errorf("%s: missing: %w", name, ErrBadArgument)
	}
	h, ok := args[i].(Handle)
	if !ok {
		return nil, fmt.Errorf("%s: want an Account: %w", name, ErrBadArgument)
	}
	return b.account(h)
}

func stringArg(args []any, i int, name string) (string, error) {
	if i >= len(args) {
		return "", fmt.Errorf("%s: missing: %w", name, ErrBadArgument)
	}
	s, ok := args[i].(string)
	if !ok {
		return "", fmt.Errorf("%s: want a string: %w", name, ErrBadArgument)
	}
	return s, nil
}

func intArg(args []any, i int, name string) (int, error) {
	if i >= len(args) {
		return 0, fmt.Errorf("%s: missing: %w", name, ErrBadArgument)
	}
	f, ok := args[i].(float64)
	if !ok || f != math.Trunc(f) || math.Abs(f) > math.MaxInt32 {
		return 0, fmt.Errorf("%s: want an integer: %w", name, ErrBadArgument)
	}
	return int(f), nil
}

func boolArg(args []any, i int, name string) (bool, error) {
	if i >= len(args) {
		return false, fmt.Errorf("%s: missing: %w", name, ErrBadArgument)
	}
	v, ok := args[i].(bool)
	if !ok {
		return false, fmt.Errorf("%s: want a boolean: %w", name, ErrBadArgument)
	}
	return v, nil
}
