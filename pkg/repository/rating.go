package repository

import (
	"context"
	"errors"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"ramsvik.no/Olsmak/pkg/model"
)

var ErrRatingNotFound = errors.New("rating not found")

// RatingRepository is the scoring surface consumed by the HTTP handlers.
type RatingRepository interface {
	UpsertRating(ctx context.Context, rating model.Rating) (*model.Rating, error)
	GetRating(ctx context.Context, tastingID uint, beerNo int, userID string) (*model.Rating, error)
	GetRatingsForUser(ctx context.Context, tastingID uint, userID string) ([]*model.Rating, error)
	GetRatingsForTasting(ctx context.Context, tastingID uint) ([]*model.Rating, error)
}

// UpsertRating saves a participant's score for one beer. A resubmission for
// the same (tasting, beer, user) key replaces the previous row entirely.
func (r *Repository) UpsertRating(ctx context.Context, rating model.Rating) (*model.Rating, error) {
	result := r.DB.WithContext(ctx).Clauses(clause.OnConflict{
		Columns:   []clause.Column{{Name: "tasting_id"}, {Name: "beer_no"}, {Name: "user_id"}},
		UpdateAll: true,
	}).Create(&rating)

	if result.Error != nil {
		return nil, result.Error
	}

	return &rating, nil
}

func (r *Repository) GetRating(ctx context.Context, tastingID uint, beerNo int, userID string) (*model.Rating, error) {
	var rating model.Rating

	result := r.DB.WithContext(ctx).
		Where("tasting_id = ? AND beer_no = ? AND user_id = ?", tastingID, beerNo, userID).
		First(&rating)
	if result.Error != nil {
		if errors.Is(result.Error, gorm.ErrRecordNotFound) {
			return nil, ErrRatingNotFound
		}

		return nil, result.Error
	}

	return &rating, nil
}

// GetRatingsForUser returns a participant's history, most recent beer first.
func (r *Repository) GetRatingsForUser(ctx context.Context, tastingID uint, userID string) ([]*model.Rating, error) {
	var ratings []*model.Rating

	result := r.DB.WithContext(ctx).
		Where("tasting_id = ? AND user_id = ?", tastingID, userID).
		Order("beer_no desc").
		Find(&ratings)
	if result.Error != nil {
		return nil, result.Error
	}

	return ratings, nil
}

func (r *Repository) GetRatingsForTasting(ctx context.Context, tastingID uint) ([]*model.Rating, error) {
	var ratings []*model.Rating

	result := r.DB.WithContext(ctx).
		Where("tasting_id = ?", tastingID).
		Find(&ratings)
	if result.Error != nil {
		return nil, result.Error
	}

	return ratings, nil
}
