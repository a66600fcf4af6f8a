// Package statements builds the financial statements, trial balance and
// ledgers from a list of journal entries. Every builder is a pure function
// of its inputs.
package statements

import (
	"sort"

	"github.com/shopspring/decimal"
)

// Line is one named amount on a statement.
type Line struct {
	Name   string
	Amount decimal.Decimal
}

// Group is a titled block of lines with their sum.
type Group struct {
	Name  string
	Lines []Line
	Total decimal.Decimal
}

// Empty reports whether the group has no lines.
func (g Group) Empty() bool {
	return len(g.Lines) == 0
}

// lineSet sums amounts per line name, remembering first-seen order.
type lineSet struct {
	order   []string
	amounts map[string]decimal.Decimal
}

func (ls *lineSet) add(name string, amount decimal.Decimal) {
	if ls.amounts == nil {
		ls.amounts = make(map[string]decimal.Decimal)
	}
	if _, ok := ls.amounts[name]; !ok {
		ls.order = append(ls.order, name)
	}
	ls.amounts[name] = ls.amounts[name].Add(amount)
}

// grouper accumulates amounts per group and line name.
type grouper map[string]*lineSet

func (g grouper) add(group, name string, amount decimal.Decimal) {
	lines, ok := g[group]
	if !ok {
		lines = &lineSet{}
		g[group] = lines
	}
	lines.add(name, amount)
}

// group returns the named group. Lines keep the order in which their
// accounts first appear in the entries.
func (g grouper) group(name string) Group {
	grp := Group{Name: name}
	lines := g[name]
	if lines == nil {
		return grp
	}
	for _, n := range lines.order {
		amt := lines.amounts[n]
		grp.Lines = append(grp.Lines, Line{Name: n, Amount: amt})
		grp.Total = grp.Total.Add(amt)
	}
	return grp
}

// names returns the group names not listed in skip, sorted.
func (g grouper) names(skip ...string) []string {
	excluded := make(map[string]bool, len(skip))
	for _, s := range skip {
		excluded[s] = true
	}
	var out []string
	for name := range g {
		if !excluded[name] {
			out = append(out, name)
		}
	}
	sort.Strings(out)
	return out
}

var one = decimal.NewFromInt(1)
