package ledger

import (
	"sort"
	"time"

	"github.com/saiyeshwin/housebook-backend/internal/models"
	"github.com/shopspring/decimal"
)

// Line is one entry with the running balance after it was applied.
type Line struct {
	models.Entry
	ClosingBalance decimal.Decimal `json:"closing_balance"`
}

// ComputeView orders entries chronologically (date ascending, createdAt
// ascending, arrival order on a full tie), walks them accumulating the signed
// running total into each line's ClosingBalance, then reverses so the most
// recent entry comes first. The first line's ClosingBalance is the current
// balance. Nothing here is cached; callers pass the full entry set per read.
func ComputeView(entries []models.Entry) []Line {
	sorted := make([]models.Entry, len(entries))
	copy(sorted, entries)
	sortChronological(sorted)

	lines := make([]Line, len(sorted))
	total := decimal.Zero
	for i, e := range sorted {
		total = total.Add(e.Signed())
		lines[i] = Line{Entry: e, ClosingBalance: total}
	}

	for i, j := 0, len(lines)-1; i < j; i, j = i+1, j-1 {
		lines[i], lines[j] = lines[j], lines[i]
	}
	return lines
}

// CurrentBalance reads the running total off a computed view. Empty view
// means a zero balance.
func CurrentBalance(view []Line) decimal.Decimal {
	if len(view) == 0 {
		return decimal.Zero
	}
	return view[0].ClosingBalance
}

func sortChronological(entries []models.Entry) {
	// ISO dates compare correctly as strings. Stable keeps arrival order for
	// entries sharing both date and createdAt.
	sort.SliceStable(entries, func(i, j int) bool {
		if entries[i].Date != entries[j].Date {
			return entries[i].Date < entries[j].Date
		}
		return entries[i].CreatedAt.Before(entries[j].CreatedAt)
	})
}

type RecencyState string

const (
	// RecencyNone: no transactions yet.
	RecencyNone RecencyState = "none"
	// RecencyJustNow: the newest entry is less than a whole hour old.
	RecencyJustNow RecencyState = "just_now"
	// RecencyHoursAgo: the newest entry is Hours whole hours old.
	RecencyHoursAgo RecencyState = "hours_ago"
)

// Recency describes how long ago the most recent entry was created, floored
// to whole hours. Hours is meaningful only in the hours_ago state.
type Recency struct {
	State RecencyState `json:"state"`
	Hours int          `json:"hours,omitempty"`
}

// RecencySince computes the time-since-last-transaction value from a computed
// view, against the supplied wall clock.
func RecencySince(view []Line, now time.Time) Recency {
	if len(view) == 0 {
		return Recency{State: RecencyNone}
	}
	h := int(now.Sub(view[0].CreatedAt).Hours())
	if h <= 0 {
		return Recency{State: RecencyJustNow}
	}
	return Recency{State: RecencyHoursAgo, Hours: h}
}
