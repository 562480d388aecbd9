package store

import (
	"context"

	"cloud.google.com/go/firestore"

	"smartsalary/backend/models"
)

// GetMonth loads the record for one "YYYY-MM" key. ErrNotFound when the user
// has not submitted that month.
func (c *Client) GetMonth(ctx context.Context, uid int64, month string) (*models.MonthRecord, error) {
	snap, err := c.userDoc(uid).Collection("months").Doc(month).Get(ctx)
	if err != nil {
		if notFound(err) {
			return nil, ErrNotFound
		}
		return nil, err
	}
	var rec models.MonthRecord
	if err := snap.DataTo(&rec); err != nil {
		return nil, err
	}
	return &rec, nil
}

// SetMonth writes fields into the month document with merge semantics, so a
// re-submitted form overwrites the plan without clobbering expense tracking.
func (c *Client) SetMonth(ctx context.Context, uid int64, month string, fields map[string]any) error {
	_, err := c.userDoc(uid).Collection("months").Doc(month).Set(ctx, stamped(fields), firestore.MergeAll)
	return err
}

// stamped copies a write map and adds the server-side updatedAt stamp.
func stamped(fields map[string]any) map[string]any {
	out := make(map[string]any, len(fields)+1)
	for k, v := range fields {
		out[k] = v
	}
	out["updatedAt"] = firestore.ServerTimestamp
	return out
}

// WatchMonth returns a live snapshot iterator for one month document. The
// caller owns the iterator and must Stop it.
func (c *Client) WatchMonth(ctx context.Context, uid int64, month string) *firestore.DocumentSnapshotIterator {
	return c.userDoc(uid).Collection("months").Doc(month).Snapshots(ctx)
}

// AddMonthExpense bumps the running expense total, updates the live score and
// optionally appends an impulse reference, creating the document on first use.
func (c *Client) AddMonthExpense(ctx context.Context, uid int64, month string, amount float64, score int, impulseRef string) error {
	doc := c.userDoc(uid).Collection("months").Doc(month)
	updates := []firestore.Update{
		{Path: "expenseTotal", Value: firestore.Increment(amount)},
		{Path: "score", Value: score},
		{Path: "updatedAt", Value: firestore.ServerTimestamp},
	}
	if impulseRef != "" {
		updates = append(updates, firestore.Update{Path: "impulseHistory", Value: firestore.ArrayUnion(impulseRef)})
	}
	_, err := doc.Update(ctx, updates)
	if err != nil && notFound(err) {
		fields := map[string]any{"month": month, "expenseTotal": amount, "score": score}
		if impulseRef != "" {
			fields["impulseHistory"] = []string{impulseRef}
		}
		_, err = doc.Set(ctx, stamped(fields), firestore.MergeAll)
	}
	return err
}
