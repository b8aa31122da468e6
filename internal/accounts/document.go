package accounts

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"math"

	"gopkg.in/yaml.v3"

	"github.com/cratchit-dev/cratchit/internal/model"
)

// Document field names.
const (
	fieldAccounts    = "accounts"
	fieldName        = "name"
	fieldID          = "id"
	fieldDescription = "description"
	fieldType        = "type"
	fieldCurrency    = "currency"
	fieldPlaceholder = "placeholder"
	fieldSubaccounts = "subaccounts"
)

// ErrTrailingData is returned when input continues after the chart document.
var ErrTrailingData = errors.New("unexpected data after chart document")

// DecodeJSON reads a chart document in JSON form. The input must hold
// exactly one JSON value.
func DecodeJSON(r io.Reader) (*Chart, error) {
	dec := json.NewDecoder(r)
	var doc map[string]any
	if err := dec.Decode(&doc); err != nil {
		return nil, fmt.Errorf("parsing chart JSON: %w", err)
	}
	if _, err := dec.Token(); !errors.Is(err, io.EOF) {
		return nil, fmt.Errorf("parsing chart JSON: %w", ErrTrailingData)
	}
	return FromDocument(doc)
}

// DecodeYAML reads a chart document in YAML form.
func DecodeYAML(r io.Reader) (*Chart, error) {
	var doc map[string]any
	if err := yaml.NewDecoder(r).Decode(&doc); err != nil {
		if errors.Is(err, io.EOF) {
			return NewChart(), nil
		}
		return nil, fmt.Errorf("parsing chart YAML: %w", err)
	}
	return FromDocument(doc)
}

// FromDocument builds a chart from a decoded document. Each element of the
// "accounts" sequence becomes a top-level account, in document order.
// A document without an "accounts" sequence yields an empty chart.
func FromDocument(doc map[string]any) (*Chart, error) {
	chart := NewChart()
	for i, raw := range fields(doc).list(fieldAccounts) {
		acct, err := accountFromNode(raw, fmt.Sprintf("%s[%d]", fieldAccounts, i))
		if err != nil {
			return nil, err
		}
		chart.AddTopLevelAccount(acct)
	}
	return chart, nil
}

// AccountFromDocument builds one account and its sub-accounts from a decoded
// account node.
func AccountFromDocument(node map[string]any) (model.Account, error) {
	return accountFromNode(node, "account")
}

func accountFromNode(raw any, path string) (model.Account, error) {
	node, ok := asFields(raw)
	if !ok {
		return model.Account{}, &FieldError{Path: path, Err: ErrWrongType}
	}

	name, err := node.str(path, fieldName)
	if err != nil {
		return model.Account{}, err
	}
	id, err := node.str(path, fieldID)
	if err != nil {
		return model.Account{}, err
	}
	desc, err := node.str(path, fieldDescription)
	if err != nil {
		return model.Account{}, err
	}
	currency, err := node.str(path, fieldCurrency)
	if err != nil {
		return model.Account{}, err
	}

	acct := model.NewAccount(id, name, desc, node.accountType(), model.ParseCurrency(currency), node.boolOr(fieldPlaceholder, false))
	for i, sub := range node.list(fieldSubaccounts) {
		child, err := accountFromNode(sub, fmt.Sprintf("%s.%s[%d]", path, fieldSubaccounts, i))
		if err != nil {
			return model.Account{}, err
		}
		acct.AddChild(child)
	}
	return acct, nil
}

// fields gives typed access to a decoded document node.
type fields map[string]any

func asFields(v any) (fields, bool) {
	switch m := v.(type) {
	case map[string]any:
		return fields(m), true
	case fields:
		return m, true
	}
	return nil, false
}

func (f fields) str(path, key string) (string, error) {
	v, ok := f[key]
	if !ok || v == nil {
		return "", &FieldError{Path: path, Field: key, Err: ErrMissingField}
	}
	s, ok := v.(string)
	if !ok {
		return "", &FieldError{Path: path, Field: key, Err: ErrWrongType}
	}
	return s, nil
}

func (f fields) boolOr(key string, def bool) bool {
	if b, ok := f[key].(bool); ok {
		return b
	}
	return def
}

// list returns the sequence under key. A missing or non-sequence value
// reads as empty.
func (f fields) list(key string) []any {
	l, _ := f[key].([]any)
	return l
}

// accountType resolves the "type" field. Names go through
// model.ParseAccountType, integers through model.AccountTypeFromInt.
// A missing or unusable value defaults to asset.
func (f fields) accountType() model.AccountType {
	switch v := f[fieldType].(type) {
	case string:
		return model.ParseAccountType(v)
	case int:
		return model.AccountTypeFromInt(v)
	case int64:
		return model.AccountTypeFromInt(int(v))
	case uint64:
		if v <= math.MaxInt32 {
			return model.AccountTypeFromInt(int(v))
		}
		return model.AccountTypeOther
	case float64:
		if v == math.Trunc(v) && math.Abs(v) <= math.MaxInt32 {
			return model.AccountTypeFromInt(int(v))
		}
		return model.AccountTypeOther
	}
	return model.AccountTypeAsset
}

// AccountDoc is the encoded form of an account.
type AccountDoc struct {
	Name        string       `json:"name" yaml:"name"`
	ID          string       `json:"id" yaml:"id"`
	Description string       `json:"description" yaml:"description"`
	Type        string       `json:"type" yaml:"type"`
	Currency    string       `json:"currency" yaml:"currency"`
	Placeholder bool         `json:"placeholder" yaml:"placeholder"`
	Subaccounts []AccountDoc `json:"subaccounts" yaml:"subaccounts"`
}

// ChartDoc is the encoded form of a chart.
type ChartDoc struct {
	Accounts []AccountDoc `json:"accounts" yaml:"accounts"`
}

// currencyCode is the document form of a currency. Unknown currencies are
// written as an empty code so they decode back to unknown.
func currencyCode(c model.Currency) string {
	if c == model.CurrencyUSDollar {
		return c.String()
	}
	return ""
}

// ToDocument converts an account and its subtree to its encoded form.
func ToDocument(acct model.Account) AccountDoc {
	doc := AccountDoc{
		Name:        acct.Name(),
		ID:          acct.ID(),
		Description: acct.Description(),
		Type:        acct.Type().String(),
		Currency:    currencyCode(acct.Currency()),
		Placeholder: acct.Placeholder(),
		Subaccounts: []AccountDoc{},
	}
	for _, child := range acct.Children() {
		doc.Subaccounts = append(doc.Subaccounts, ToDocument(child))
	}
	return doc
}

// ChartDocument converts a chart to its encoded form.
func ChartDocument(chart *Chart) ChartDoc {
	doc := ChartDoc{Accounts: []AccountDoc{}}
	for _, root := range chart.TopLevelAccounts() {
		doc.Accounts = append(doc.Accounts, ToDocument(root))
	}
	return doc
}

// EncodeJSON writes the chart as an indented JSON document.
func EncodeJSON(w io.Writer, chart *Chart) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	if err := enc.Encode(ChartDocument(chart)); err != nil {
		return fmt.Errorf("encoding chart JSON: %w", err)
	}
	return nil
}

// EncodeYAML writes the chart as a YAML document.
func EncodeYAML(w io.Writer, chart *Chart) error {
	enc := yaml.NewEncoder(w)
	enc.SetIndent(2)
	if err := enc.Encode(ChartDocument(chart)); err != nil {
		return fmt.Errorf("encoding chart YAML: %w", err)
	}
	return enc.Close()
}
