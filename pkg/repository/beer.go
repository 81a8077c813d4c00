package repository

import (
	"context"
	"errors"
	"fmt"
	"math/rand"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"ramsvik.no/Olsmak/pkg/model"
)

var (
	ErrBeerNotFound = errors.New("beer not found")
	ErrInvalidSlot  = errors.New("invalid beer slot")
)

// BeerRepository is the roster surface consumed by the HTTP handlers.
type BeerRepository interface {
	AddBeerToPool(ctx context.Context, tastingID uint, name string) (*model.Beer, error)
	AssignBeer(ctx context.Context, tastingID uint, name string, beerNo int) error
	UnassignBeer(ctx context.Context, beerID uint) (*model.Beer, error)
	DeleteBeer(ctx context.Context, beerID uint) error
	GetBeerByID(ctx context.Context, beerID uint) (*model.Beer, error)
	GetBeersForTasting(ctx context.Context, tastingID uint) ([]*model.Beer, error)
	GetAssignedBeers(ctx context.Context, tastingID uint) ([]*model.Beer, error)
	GetAssignedBeerNames(ctx context.Context, tastingID uint) (map[int]string, error)
}

func poolPlaceholder() int {
	return model.PoolPlaceholderBase + rand.Intn(model.PoolPlaceholderRange) //nolint:gosec // we don't need crypto security here
}

// AddBeerToPool creates an unassigned roster entry. The placeholder number
// only keeps the beer clear of the [1,499] slot domain.
func (r *Repository) AddBeerToPool(ctx context.Context, tastingID uint, name string) (*model.Beer, error) {
	beer := model.Beer{
		TastingID: tastingID,
		Name:      name,
		BeerNo:    poolPlaceholder(),
	}

	if result := r.DB.WithContext(ctx).Create(&beer); result.Error != nil {
		return nil, result.Error
	}

	return &beer, nil
}

// AssignBeer places a named beer into a numbered slot. The slot upsert and
// the pool cleanup run in one transaction so a crash cannot leave both a
// placed beer and its pool placeholder behind. The cleanup is idempotent
// either way: deleting zero matching rows is a no-op.
func (r *Repository) AssignBeer(ctx context.Context, tastingID uint, name string, beerNo int) error {
	if beerNo < 1 || beerNo > model.MaxAssignedBeerNo {
		return fmt.Errorf("%w: %d", ErrInvalidSlot, beerNo)
	}

	return r.DB.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		beer := model.Beer{
			TastingID: tastingID,
			Name:      name,
			BeerNo:    beerNo,
		}

		result := tx.Clauses(clause.OnConflict{
			Columns:   []clause.Column{{Name: "tasting_id"}, {Name: "beer_no"}},
			UpdateAll: true,
		}).Create(&beer)
		if result.Error != nil {
			return result.Error
		}

		result = tx.Unscoped().
			Where("tasting_id = ? AND name = ? AND beer_no > ?", tastingID, name, model.MaxAssignedBeerNo).
			Delete(&model.Beer{})

		return result.Error
	})
}

// UnassignBeer sends a placed beer back to the pool under a fresh
// placeholder number.
func (r *Repository) UnassignBeer(ctx context.Context, beerID uint) (*model.Beer, error) {
	beer, err := r.GetBeerByID(ctx, beerID)
	if err != nil {
		return nil, err
	}

	placeholder := poolPlaceholder()

	result := r.DB.WithContext(ctx).Model(beer).Update("beer_no", placeholder)
	if result.Error != nil {
		return nil, result.Error
	}

	beer.BeerNo = placeholder

	return beer, nil
}

// DeleteBeer removes a roster entry for good, assigned or pooled. The hard
// delete keeps soft-deleted rows from squatting on the (tasting_id, beer_no)
// unique index.
func (r *Repository) DeleteBeer(ctx context.Context, beerID uint) error {
	result := r.DB.WithContext(ctx).Unscoped().Delete(&model.Beer{}, beerID)

	return result.Error
}

func (r *Repository) GetBeerByID(ctx context.Context, beerID uint) (*model.Beer, error) {
	var beer model.Beer

	result := r.DB.WithContext(ctx).First(&beer, beerID)
	if result.Error != nil {
		if errors.Is(result.Error, gorm.ErrRecordNotFound) {
			return nil, ErrBeerNotFound
		}

		return nil, result.Error
	}

	return &beer, nil
}

func (r *Repository) GetBeersForTasting(ctx context.Context, tastingID uint) ([]*model.Beer, error) {
	var beers []*model.Beer

	result := r.DB.WithContext(ctx).
		Where("tasting_id = ?", tastingID).
		Order("beer_no").
		Find(&beers)
	if result.Error != nil {
		return nil, result.Error
	}

	return beers, nil
}

func (r *Repository) GetAssignedBeers(ctx context.Context, tastingID uint) ([]*model.Beer, error) {
	var beers []*model.Beer

	result := r.DB.WithContext(ctx).
		Where("tasting_id = ? AND beer_no <= ?", tastingID, model.MaxAssignedBeerNo).
		Order("beer_no").
		Find(&beers)
	if result.Error != nil {
		return nil, result.Error
	}

	return beers, nil
}

// GetAssignedBeerNames returns the answer key as slot -> name. Callers are
// responsible for checking the tasting's revealed flag before showing names
// to participants.
func (r *Repository) GetAssignedBeerNames(ctx context.Context, tastingID uint) (map[int]string, error) {
	beers, err := r.GetAssignedBeers(ctx, tastingID)
	if err != nil {
		return nil, err
	}

	names := make(map[int]string, len(beers))

	for _, beer := range beers {
		names[beer.BeerNo] = beer.Name
	}

	return names, nil
}
