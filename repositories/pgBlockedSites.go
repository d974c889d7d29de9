package repositories

import (
	"distracto-server/db"
	"distracto-server/entities"

	"gorm.io/gorm"
)

type blockedSitePgRepository struct {
	db db.Database
}

func NewBlockedSitePgRepository(database db.Database) BlockedSiteRepository {
	return &blockedSitePgRepository{db: database}
}

func (r *blockedSitePgRepository) Create(site *entities.BlockedSite) error {
	return r.db.GetDB().Create(site).Error
}

func (r *blockedSitePgRepository) GetByUserID(userID string) ([]entities.BlockedSite, error) {
	sites := []entities.BlockedSite{}
	err := r.db.GetDB().Where("user_id = ?", userID).Order("created_at DESC").Find(&sites).Error
	return sites, err
}

func (r *blockedSitePgRepository) GetOwned(id, userID string) (*entities.BlockedSite, error) {
	var site entities.BlockedSite
	err := r.db.GetDB().Where("id = ? AND user_id = ?", id, userID).First(&site).Error
	if err != nil {
		return nil, err
	}
	return &site, nil
}

func (r *blockedSitePgRepository) Update(site *entities.BlockedSite) error {
	return r.db.GetDB().Save(site).Error
}

func (r *blockedSitePgRepository) DeleteOwned(id, userID string) error {
	result := r.db.GetDB().Where("id = ? AND user_id = ?", id, userID).Delete(&entities.BlockedSite{})
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}
	return nil
}
