package repository

import (
	"context"
	"errors"
	"fmt"
	"math/rand"
	"strings"

	"go.uber.org/zap"
	"gorm.io/gorm"

	"ramsvik.no/Olsmak/pkg/model"
)

var (
	ErrTastingNotFound = errors.New("tasting not found")
	ErrCodeExhausted   = errors.New("could not generate a unique join code")
)

// TastingRepository is the session-state surface consumed by the HTTP
// handlers.
type TastingRepository interface {
	CreateTasting(ctx context.Context, title string, totalBeers int, owner model.User) (*model.Tasting, error)
	GetTastingByID(ctx context.Context, tastingID uint) (*model.Tasting, error)
	GetTastingsForUser(ctx context.Context, owner model.User) ([]*model.Tasting, error)
	ResolveJoinCode(ctx context.Context, code string) (*model.Tasting, error)
	AdvanceBeer(ctx context.Context, tastingID uint, delta int) (*model.Tasting, error)
	Reveal(ctx context.Context, tastingID uint) (*model.Tasting, error)
}

// joinCodeAlphabet skips 0/O/1/I to keep codes readable when shouted across a
// table.
const joinCodeAlphabet = "ABCDEFGHJKLMNPQRSTUVWXYZ23456789"

const joinCodeAttempts = 5

func (r *Repository) CreateTasting(ctx context.Context, title string, totalBeers int, owner model.User) (*model.Tasting, error) {
	var lastErr error

	for attempt := 0; attempt < joinCodeAttempts; attempt++ {
		tasting := model.Tasting{
			Title:         title,
			JoinCode:      generateJoinCode(),
			TotalBeers:    totalBeers,
			CurrentBeerNo: 1,
			Revealed:      false,
			CreatedByID:   owner.ID,
		}

		result := r.DB.WithContext(ctx).Create(&tasting)
		if result.Error == nil {
			return &tasting, nil
		}

		lastErr = result.Error

		if !errors.Is(result.Error, gorm.ErrDuplicatedKey) {
			return nil, result.Error
		}

		r.Logger.Warn("join code collision, retrying", zap.String("code", tasting.JoinCode))
	}

	return nil, fmt.Errorf("%w: %v", ErrCodeExhausted, lastErr)
}

func generateJoinCode() string {
	code := make([]byte, model.JoinCodeLength)

	for index := range code {
		code[index] = joinCodeAlphabet[rand.Intn(len(joinCodeAlphabet))] //nolint:gosec // we don't need crypto security here
	}

	return string(code)
}

func (r *Repository) GetTastingByID(ctx context.Context, tastingID uint) (*model.Tasting, error) {
	var tasting model.Tasting

	result := r.DB.WithContext(ctx).First(&tasting, tastingID)
	if result.Error != nil {
		if errors.Is(result.Error, gorm.ErrRecordNotFound) {
			return nil, ErrTastingNotFound
		}

		return nil, result.Error
	}

	return &tasting, nil
}

func (r *Repository) GetTastingsForUser(ctx context.Context, owner model.User) ([]*model.Tasting, error) {
	var tastings []*model.Tasting

	result := r.DB.WithContext(ctx).
		Where("created_by_id = ?", owner.ID).
		Order("created_at desc").
		Find(&tastings)
	if result.Error != nil {
		r.Logger.Error("error getting tastings for user", zap.Uint("user_id", owner.ID), zap.Error(result.Error))

		return nil, result.Error
	}

	return tastings, nil
}

// ResolveJoinCode maps a 4-character join code to its tasting. Matching is
// case-insensitive so "ab12" and "AB12" land on the same session.
func (r *Repository) ResolveJoinCode(ctx context.Context, code string) (*model.Tasting, error) {
	var tasting model.Tasting

	result := r.DB.WithContext(ctx).
		Where("upper(join_code) = ?", strings.ToUpper(code)).
		First(&tasting)
	if result.Error != nil {
		if errors.Is(result.Error, gorm.ErrRecordNotFound) {
			return nil, ErrTastingNotFound
		}

		return nil, result.Error
	}

	return &tasting, nil
}

// AdvanceBeer moves the active slot by delta, clamped to [1, total_beers].
// Concurrent organizers race last-write-wins; the storage row update is the
// only synchronization point.
func (r *Repository) AdvanceBeer(ctx context.Context, tastingID uint, delta int) (*model.Tasting, error) {
	tasting, err := r.GetTastingByID(ctx, tastingID)
	if err != nil {
		return nil, err
	}

	next := model.ClampBeerNo(tasting.CurrentBeerNo, delta, tasting.TotalBeers)

	result := r.DB.WithContext(ctx).Model(tasting).Update("current_beer_no", next)
	if result.Error != nil {
		return nil, result.Error
	}

	tasting.CurrentBeerNo = next

	return tasting, nil
}

// Reveal flips the answer-key flag. There is no way back through this API.
func (r *Repository) Reveal(ctx context.Context, tastingID uint) (*model.Tasting, error) {
	tasting, err := r.GetTastingByID(ctx, tastingID)
	if err != nil {
		return nil, err
	}

	result := r.DB.WithContext(ctx).Model(tasting).Update("revealed", true)
	if result.Error != nil {
		return nil, result.Error
	}

	tasting.Revealed = true

	return tasting, nil
}
