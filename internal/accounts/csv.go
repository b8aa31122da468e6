package accounts

import (
	"encoding/csv"
	"fmt"
	"io"
	"strconv"

	"github.com/cratchit-dev/cratchit/internal/model"
)

const (
	numFields      = 7
	colID          = 0
	colName        = 1
	colDesc        = 2
	colType        = 3
	colCurrency    = 4
	colPlaceholder = 5
	colParent      = 6
)

var csvHeader = []string{"account_id", "account_name", "description", "account_type", "currency", "placeholder", "parent_id"}

// row is one flattened account with a reference to its parent.
type row struct {
	acct     model.Account
	parentID string // "" = top-level
}

// ReadCSV reads a flat chart-of-accounts CSV and rebuilds the tree from
// parent_id references. Sibling order follows row order. A parent_id must
// name an account in the file; if several rows share that ID, the last one
// is the parent.
func ReadCSV(r io.Reader) (*Chart, error) {
	cr := csv.NewReader(r)
	cr.FieldsPerRecord = numFields

	records, err := cr.ReadAll()
	if err != nil {
		return nil, fmt.Errorf("reading accounts CSV: %w", err)
	}

	if len(records) == 0 {
		return NewChart(), nil
	}

	rows := make([]row, 0, len(records)-1)
	for i, rec := range records[1:] {
		rw, err := unmarshalRow(rec)
		if err != nil {
			return nil, fmt.Errorf("row %d: %w", i+2, err)
		}
		rows = append(rows, rw)
	}
	return assemble(rows)
}

func assemble(rows []row) (*Chart, error) {
	byID := make(map[string]int, len(rows))
	for i, rw := range rows {
		byID[rw.acct.ID()] = i
	}

	children := make(map[int][]int)
	var roots []int
	for i, rw := range rows {
		if rw.parentID == "" {
			roots = append(roots, i)
			continue
		}
		p, ok := byID[rw.parentID]
		if !ok {
			return nil, fmt.Errorf("row %d: unknown parent_id %q", i+2, rw.parentID)
		}
		children[p] = append(children[p], i)
	}

	built := 0
	var build func(i int) model.Account
	build = func(i int) model.Account {
		built++
		acct := rows[i].acct
		for _, c := range children[i] {
			acct.AddChild(build(c))
		}
		return acct
	}

	chart := NewChart()
	for _, i := range roots {
		chart.AddTopLevelAccount(build(i))
	}
	if built != len(rows) {
		return nil, fmt.Errorf("%d rows are not reachable from a top-level account (parent_id cycle)", len(rows)-built)
	}
	return chart, nil
}

// WriteCSV writes the chart as a flat CSV, parents before their children.
func WriteCSV(w io.Writer, chart *Chart) error {
	cw := csv.NewWriter(w)

	if err := cw.Write(csvHeader); err != nil {
		return fmt.Errorf("writing header: %w", err)
	}

	var parents []string
	n := 0
	err := chart.Walk(func(acct model.Account, depth int) error {
		parents = append(parents[:depth], acct.ID())
		parentID := ""
		if depth > 0 {
			parentID = parents[depth-1]
		}
		n++
		if err := cw.Write(marshalRow(acct, parentID)); err != nil {
			return fmt.Errorf("writing row %d: %w", n+1, err)
		}
		return nil
	})
	if err != nil {
		return err
	}
	cw.Flush()
	return cw.Error()
}

func marshalRow(acct model.Account, parentID string) []string {
	rec := make([]string, numFields)
	rec[colID] = acct.ID()
	rec[colName] = acct.Name()
	rec[colDesc] = acct.Description()
	rec[colType] = acct.Type().String()
	rec[colCurrency] = currencyCode(acct.Currency())
	rec[colPlaceholder] = strconv.FormatBool(acct.Placeholder())
	rec[colParent] = parentID
	return rec
}

func unmarshalRow(record []string) (row, error) {
	if len(record) != numFields {
		return row{}, fmt.Errorf("expected %d fields, got %d", numFields, len(record))
	}

	var placeholder bool
	if record[colPlaceholder] != "" {
		var err error
		placeholder, err = strconv.ParseBool(record[colPlaceholder])
		if err != nil {
			return row{}, fmt.Errorf("parsing placeholder %q: %w", record[colPlaceholder], err)
		}
	}

	acct := model.NewAccount(
		record[colID],
		record[colName],
		record[colDesc],
		model.ParseAccountType(record[colType]),
		model.ParseCurrency(record[colCurrency]),
		placeholder,
	)
	return row{acct: acct, parentID: record[colParent]}, nil
}
