package store

import (
	"context"

	"smartsalary/backend/models"
)

func (c *Client) GetCareerProfile(ctx context.Context, uid int64) (*models.CareerProfile, error) {
	snap, err := c.userDoc(uid).Collection("career").Doc("profile").Get(ctx)
	if err != nil {
		if notFound(err) {
			return nil, ErrNotFound
		}
		return nil, err
	}
	var p models.CareerProfile
	if err := snap.DataTo(&p); err != nil {
		return nil, err
	}
	return &p, nil
}

func (c *Client) SetCareerProfile(ctx context.Context, uid int64, p models.CareerProfile) error {
	_, err := c.userDoc(uid).Collection("career").Doc("profile").Set(ctx, p)
	return err
}
