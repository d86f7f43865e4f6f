package ledger

import (
	"sort"
	"time"

	"github.com/shopspring/decimal"
)

// Snapshot is the persisted form of a ledger: entity metadata, the chart of
// accounts nested category → group → account, and the posting history.
type Snapshot struct {
	Entity  *Entity                                           `json:"entity,omitempty"`
	Chart   map[Category]map[Group]map[string]SnapshotAccount `json:"chart"`
	Entries []SnapshotEntry                                   `json:"entries"`
}

// SnapshotAccount is the persisted account record.
type SnapshotAccount struct {
	Kind    Kind            `json:"kind"`
	Balance decimal.Decimal `json:"balance"`
}

// SnapshotEntry is the persisted posting record.
type SnapshotEntry struct {
	ID          int64           `json:"id"`
	Date        time.Time       `json:"date"`
	Description string          `json:"description"`
	Debit       string          `json:"debit"`
	Credit      string          `json:"credit"`
	Amount      decimal.Decimal `json:"amount"`
}

// Snapshot captures the ledger's full state for persistence.
func (l *Ledger) Snapshot() Snapshot {
	s := Snapshot{
		Entity:  l.Entity(),
		Chart:   make(map[Category]map[Group]map[string]SnapshotAccount),
		Entries: make([]SnapshotEntry, 0, len(l.entries)),
	}

	for _, a := range l.accounts {
		byGroup, ok := s.Chart[a.Category]
		if !ok {
			byGroup = make(map[Group]map[string]SnapshotAccount)
			s.Chart[a.Category] = byGroup
		}

		byName, ok := byGroup[a.Group]
		if !ok {
			byName = make(map[string]SnapshotAccount)
			byGroup[a.Group] = byName
		}

		byName[a.Name] = SnapshotAccount{Kind: a.Kind, Balance: a.Balance}
	}

	for _, e := range l.entries {
		s.Entries = append(s.Entries, SnapshotEntry(e))
	}

	return s
}

// categoryOrder fixes the reporting order of chart sections.
var categoryOrder = map[Category]int{
	CategoryAsset:     0,
	CategoryLiability: 1,
	CategoryEquity:    2,
	CategoryRevenue:   3,
	CategoryExpense:   4,
}

var groupOrder = map[Group]int{
	GroupCurrent:    0,
	GroupNonCurrent: 1,
	GroupNone:       2,
}

// FromSnapshot rebuilds a ledger from persisted state. The nested chart map
// carries no ordering, so accounts are arranged deterministically: by
// category, then group, then name.
func FromSnapshot(s Snapshot) *Ledger {
	var chart []Account

	for category, byGroup := range s.Chart {
		for group, byName := range byGroup {
			for name, acc := range byName {
				chart = append(chart, Account{
					Name:     name,
					Category: category,
					Group:    group,
					Kind:     acc.Kind,
					Balance:  acc.Balance,
				})
			}
		}
	}

	sort.Slice(chart, func(i, j int) bool {
		a, b := chart[i], chart[j]
		if a.Category != b.Category {
			return categoryOrder[a.Category] < categoryOrder[b.Category]
		}

		if a.Group != b.Group {
			return groupOrder[a.Group] < groupOrder[b.Group]
		}

		return a.Name < b.Name
	})

	l := NewWithChart(chart)

	if s.Entity != nil {
		l.SetEntity(s.Entity.Name, s.Entity.TaxID, s.Entity.Period)
	}

	l.entries = make([]Entry, 0, len(s.Entries))
	for _, e := range s.Entries {
		l.entries = append(l.entries, Entry(e))
	}

	return l
}
