// Package store wraps the Firestore document layout:
//
//	users/{uid}
//	users/{uid}/months/{YYYY-MM}
//	users/{uid}/financial_records/{autoId}
//	users/{uid}/roadmaps/{YYYY-MM}
//	users/{uid}/career/profile
//
// uid is the decimal form of the account id issued at registration.
package store

import (
	"context"
	"errors"
	"strconv"

	"cloud.google.com/go/firestore"
	"google.golang.org/api/option"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"
)

// ErrNotFound marks an absent document. Callers treat it as the defined empty
// state, not a failure.
var ErrNotFound = errors.New("document not found")

type Client struct {
	fs *firestore.Client
}

func NewClient(ctx context.Context, projectID, credentialsFile string) (*Client, error) {
	opts := []option.ClientOption{}
	if credentialsFile != "" {
		opts = append(opts, option.WithCredentialsFile(credentialsFile))
	}
	fs, err := firestore.NewClient(ctx, projectID, opts...)
	if err != nil {
		return nil, err
	}
	return &Client{fs: fs}, nil
}

func (c *Client) Close() error {
	return c.fs.Close()
}

func (c *Client) userDoc(uid int64) *firestore.DocumentRef {
	return c.fs.Collection("users").Doc(strconv.FormatInt(uid, 10))
}

func notFound(err error) bool {
	return status.Code(err) == codes.NotFound
}
