package store

import (
	"context"

	"cloud.google.com/go/firestore"

	"smartsalary/backend/models"
)

func (c *Client) GetRoadmap(ctx context.Context, uid int64, month string) (*models.Roadmap, error) {
	snap, err := c.userDoc(uid).Collection("roadmaps").Doc(month).Get(ctx)
	if err != nil {
		if notFound(err) {
			return nil, ErrNotFound
		}
		return nil, err
	}
	var r models.Roadmap
	if err := snap.DataTo(&r); err != nil {
		return nil, err
	}
	return &r, nil
}

// SetRoadmap replaces the month's roadmap wholesale, as regeneration does.
func (c *Client) SetRoadmap(ctx context.Context, uid int64, month string, r models.Roadmap) error {
	_, err := c.userDoc(uid).Collection("roadmaps").Doc(month).Set(ctx, r)
	return err
}

// ReplaceRoadmapWeeks overwrites the weekly_roadmap array in one update. A
// toggle is read-modify-write against this whole array rather than a blind
// field patch; concurrent toggles from two sessions can still clobber each
// other, which is an accepted limitation.
func (c *Client) ReplaceRoadmapWeeks(ctx context.Context, uid int64, month string, weeks []models.Week) error {
	_, err := c.userDoc(uid).Collection("roadmaps").Doc(month).Update(ctx, []firestore.Update{
		{Path: "weekly_roadmap", Value: weeks},
	})
	if err != nil && notFound(err) {
		return ErrNotFound
	}
	return err
}
