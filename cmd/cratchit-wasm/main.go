//go:build js && wasm

// Command cratchit-wasm exposes the chart of accounts to JavaScript as the
// global "cratchit" object:
//
//	const acct = cratchit.Account.new("01-01", "Checking", "Main account",
//	    cratchit.AccountType.Asset, cratchit.Currency.USDollar, false, []);
//	const chart = cratchit.AccountsChart.new();
//	chart.add_top_level_account(acct);
//	chart.count(); chart.ids(); chart.get("01-01").get_name();
//
//	const loaded = cratchit.loadChart(jsonText);
//
// Failed calls return {error: message}.
package main

import (
	"syscall/js"

	"github.com/cratchit-dev/cratchit/internal/wasmapi"
)

const handleKey = "__handle"

func main() {
	bridge := wasmapi.New()
	js.Global().Set("cratchit", toJS(bridge.Globals()))
	select {}
}

// toJS converts bridge results to JS values.
func toJS(v any) any {
	switch v := v.(type) {
	case wasmapi.Method:
		return js.FuncOf(func(_ js.Value, args []js.Value) any {
			goArgs := make([]any, len(args))
			for i, a := range args {
				goArgs[i] = fromJS(a)
			}
			out, err := v(goArgs)
			if err != nil {
				return map[string]any{"error": err.Error()}
			}
			return toJS(out)
		})
	case *wasmapi.Object:
		obj := map[string]any{handleKey: int(v.Handle)}
		for name, m := range v.Methods {
			obj[name] = toJS(m)
		}
		return obj
	case map[string]any:
		out := make(map[string]any, len(v))
		for k, e := range v {
			out[k] = toJS(e)
		}
		return out
	case []any:
		out := make([]any, len(v))
		for i, e := range v {
			out[i] = toJS(e)
		}
		return out
	case nil:
		return js.Null()
	}
	return v
}

// fromJS converts call arguments to the Go values wasmapi expects.
func fromJS(v js.Value) any {
	switch v.Type() {
	case js.TypeString:
		return v.String()
	case js.TypeNumber:
		return v.Float()
	case js.TypeBoolean:
		return v.Bool()
	case js.TypeObject:
		if js.Global().Get("Array").Call("isArray", v).Bool() {
			out := make([]any, v.Length())
			for i := range out {
				out[i] = fromJS(v.Index(i))
			}
			return out
		}
		if h := v.Get(handleKey); h.Type() == js.TypeNumber {
			return wasmapi.Handle(h.Int())
		}
	}
	return nil
}
