package repository

import (
	"errors"
	"fmt"

	"github.com/AndreyLitvishchenko/filmorate/internal/errs"
	reviewPkg "github.com/AndreyLitvishchenko/filmorate/internal/review"
	"github.com/AndreyLitvishchenko/filmorate/internal/utils"
	"github.com/AndreyLitvishchenko/filmorate/pkg/logger"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// usefulSelect computes the useful score as like reactions minus dislike
// reactions for each review in the result set
const usefulSelect = "reviews.*, COALESCE(SUM(CASE WHEN review_reactions.is_like THEN 1 ELSE -1 END), 0) AS useful"

// gormReviewRepository implements the review.Repository interface
type gormReviewRepository struct {
	db     *gorm.DB
	logger *logger.Logger
}

// NewGORMReviewRepository creates a new GORM-based review repository
func NewGORMReviewRepository(db *gorm.DB, log *logger.Logger) reviewPkg.Repository {
	return &gormReviewRepository{
		db:     db,
		logger: log.WithComponent("gorm-review-repository"),
	}
}

func (r *gormReviewRepository) Create(review *reviewPkg.Review) error {
	if err := r.db.Create(review).Error; err != nil {
		r.logger.Error("Failed to create review: " + err.Error())
		return fmt.Errorf("failed to create review: %w", err)
	}
	return nil
}

// Update changes only the review text and verdict, authorship is immutable
func (r *gormReviewRepository) Update(review *reviewPkg.Review) error {
	err := r.db.Model(&reviewPkg.Review{ReviewID: review.ReviewID}).
		Select("content", "is_positive").
		Updates(map[string]any{
			"content":     review.Content,
			"is_positive": review.IsPositive,
		}).Error
	if err != nil {
		r.logger.Error("Failed to update review " + utils.IntToString(review.ReviewID) + ": " + err.Error())
		return fmt.Errorf("failed to update review: %w", err)
	}
	return nil
}

func (r *gormReviewRepository) Delete(id int) error {
	err := r.db.Transaction(func(tx *gorm.DB) error {
		if err := tx.Where("review_id = ?", id).Delete(&reviewPkg.Reaction{}).Error; err != nil {
			return err
		}
		return tx.Delete(&reviewPkg.Review{}, id).Error
	})
	if err != nil {
		r.logger.Error("Failed to delete review " + utils.IntToString(id) + ": " + err.Error())
		return fmt.Errorf("failed to delete review: %w", err)
	}
	return nil
}

func (r *gormReviewRepository) FindByID(id int) (*reviewPkg.Review, error) {
	var review reviewPkg.Review

	err := r.db.Model(&reviewPkg.Review{}).
		Select(usefulSelect).
		Joins("LEFT JOIN review_reactions ON review_reactions.review_id = reviews.review_id").
		Where("reviews.review_id = ?", id).
		Group("reviews.review_id").
		First(&review).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, errs.NotFound("review", id)
		}

		r.logger.Error("Database error finding review by ID " + utils.IntToString(id) + ": " + err.Error())
		return nil, fmt.Errorf("database error: %w", err)
	}

	return &review, nil
}

func (r *gormReviewRepository) FindByFilmID(filmID, count int) ([]*reviewPkg.Review, error) {
	var reviews []*reviewPkg.Review

	query := r.db.Model(&reviewPkg.Review{}).
		Select(usefulSelect).
		Joins("LEFT JOIN review_reactions ON review_reactions.review_id = reviews.review_id").
		Group("reviews.review_id").
		Order("useful DESC, reviews.review_id ASC").
		Limit(count)
	if filmID > 0 {
		query = query.Where("reviews.film_id = ?", filmID)
	}

	if err := query.Find(&reviews).Error; err != nil {
		r.logger.Error("Database error listing reviews: " + err.Error())
		return nil, fmt.Errorf("database error: %w", err)
	}

	return reviews, nil
}

// AddReaction records a like or dislike reaction, overwriting the user's
// previous reaction to the same review
func (r *gormReviewRepository) AddReaction(reviewID, userID int, isLike bool) error {
	reaction := &reviewPkg.Reaction{ReviewID: reviewID, UserID: userID, IsLike: isLike}

	err := r.db.Clauses(clause.OnConflict{
		Columns:   []clause.Column{{Name: "review_id"}, {Name: "user_id"}},
		DoUpdates: clause.AssignmentColumns([]string{"is_like"}),
	}).Create(reaction).Error
	if err != nil {
		r.logger.Error("Failed to add reaction to review " + utils.IntToString(reviewID) + ": " + err.Error())
		return fmt.Errorf("failed to add reaction: %w", err)
	}
	return nil
}

func (r *gormReviewRepository) RemoveReaction(reviewID, userID int) error {
	err := r.db.Where("review_id = ? AND user_id = ?", reviewID, userID).Delete(&reviewPkg.Reaction{}).Error
	if err != nil {
		r.logger.Error("Failed to remove reaction from review " + utils.IntToString(reviewID) + ": " + err.Error())
		return fmt.Errorf("failed to remove reaction: %w", err)
	}
	return nil
}
