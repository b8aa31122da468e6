package accounts

import (
	"bytes"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/cratchit-dev/cratchit/internal/model"
)

const csvHead = "account_id,account_name,description,account_type,currency,placeholder,parent_id\n"

func TestWriteCSV_ParentsFirst(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, WriteCSV(&buf, threeLevelChart()))

	lines := strings.Split(strings.TrimSpace(buf.String()), "\n")
	require.Len(t, lines, 4)
	assert.Equal(t, strings.TrimSpace(csvHead), lines[0])
	assert.Equal(t, "01,Assets,Assets,asset,USD,true,", lines[1])
	assert.Equal(t, "01-01,Accounts Receivable,Accounts Receivable,asset,USD,true,01", lines[2])
	assert.Equal(t, "01-0101,Lakeville North High School,A/R for Lakeville North High School Hockey,asset,USD,false,01-01", lines[3])
}

func TestReadCSV_ChildBeforeParent(t *testing.T) {
	in := csvHead +
		"01-01,Checking,,asset,USD,false,01\n" +
		"01,Assets,,asset,USD,true,\n" +
		"01-02,Savings,,asset,USD,,01\n"

	chart, err := ReadCSV(strings.NewReader(in))
	require.NoError(t, err)
	assert.Equal(t, 3, chart.Count())

	roots := chart.TopLevelAccounts()
	require.Len(t, roots, 1)
	children := roots[0].Children()
	require.Len(t, children, 2)
	assert.Equal(t, "01-01", children[0].ID())
	assert.Equal(t, "01-02", children[1].ID())
	assert.False(t, children[1].Placeholder())
}

func TestReadCSV_Empty(t *testing.T) {
	chart, err := ReadCSV(strings.NewReader(""))
	require.NoError(t, err)
	assert.Equal(t, 0, chart.Count())

	chart, err = ReadCSV(strings.NewReader(csvHead))
	require.NoError(t, err)
	assert.Equal(t, 0, chart.Count())
}

func TestReadCSV_Errors(t *testing.T) {
	tests := map[string]string{
		"unknown parent":  csvHead + "01-01,Checking,,asset,USD,false,01\n",
		"parent cycle":    csvHead + "a,A,,asset,USD,false,b\nb,B,,asset,USD,false,a\n",
		"self parent":     csvHead + "a,A,,asset,USD,false,a\n",
		"bad placeholder": csvHead + "a,A,,asset,USD,maybe,\n",
		"wrong columns":   csvHead + "a,A,asset\n",
	}
	for name, in := range tests {
		t.Run(name, func(t *testing.T) {
			_, err := ReadCSV(strings.NewReader(in))
			assert.Error(t, err)
		})
	}
}

func TestCSV_AllAccountTypes(t *testing.T) {
	for _, at := range model.AccountTypes {
		chart := NewChart()
		chart.AddTopLevelAccount(model.NewAccount("1000", "Test", "", at, model.CurrencyUnknown, false))

		var buf bytes.Buffer
		require.NoError(t, WriteCSV(&buf, chart))

		got, err := ReadCSV(&buf)
		require.NoError(t, err)
		a, ok := got.Get("1000")
		require.True(t, ok)
		assert.Equal(t, at, a.Type(), "account type %q should survive round-trip", at)
		assert.Equal(t, model.CurrencyUnknown, a.Currency())
	}
}
