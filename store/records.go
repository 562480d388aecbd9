package store

import (
	"context"

	"cloud.google.com/go/firestore"
	"google.golang.org/api/iterator"

	"smartsalary/backend/models"
)

// AddTransaction appends a new financial record and returns its generated id.
// Records are immutable once written; there is no update or delete path.
func (c *Client) AddTransaction(ctx context.Context, uid int64, tx models.Transaction) (string, error) {
	doc := c.userDoc(uid).Collection("financial_records").NewDoc()
	if _, err := doc.Create(ctx, tx); err != nil {
		return "", err
	}
	return doc.ID, nil
}

// ListTransactions returns the user's ledger, newest first. month filters to
// one "YYYY-MM" key when non-empty.
func (c *Client) ListTransactions(ctx context.Context, uid int64, month string) ([]models.Transaction, error) {
	q := c.userDoc(uid).Collection("financial_records").Query
	if month != "" {
		q = q.Where("month", "==", month)
	}
	iter := q.OrderBy("createdAt", firestore.Desc).Documents(ctx)
	defer iter.Stop()

	txs := []models.Transaction{}
	for {
		snap, err := iter.Next()
		if err == iterator.Done {
			break
		}
		if err != nil {
			return nil, err
		}
		var tx models.Transaction
		if err := snap.DataTo(&tx); err != nil {
			return nil, err
		}
		tx.ID = snap.Ref.ID
		txs = append(txs, tx)
	}
	return txs, nil
}
