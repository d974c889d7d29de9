package usecases

import (
	"errors"
	"strings"

	"distracto-server/entities"
	"distracto-server/repositories"

	"gorm.io/gorm"
)

// BlockedSiteUpdate carries the fields a PUT actually supplied; nil fields
// keep the stored value. A body that never mentions isActive must not flip
// the block off.
type BlockedSiteUpdate struct {
	URL           *string `json:"url"`
	IsActive      *bool   `json:"isActive"`
	BlockType     *string `json:"blockType"`
	ScheduleStart *string `json:"scheduleStart"`
	ScheduleEnd   *string `json:"scheduleEnd"`
	BlockedCount  *int    `json:"blockedCount"`
}

type BlockerUseCase struct {
	Repo repositories.BlockedSiteRepository
}

func NewBlockerUseCase(repo repositories.BlockedSiteRepository) *BlockerUseCase {
	return &BlockerUseCase{Repo: repo}
}

func (uc *BlockerUseCase) List(userID string) ([]entities.BlockedSite, error) {
	return uc.Repo.GetByUserID(userID)
}

func (uc *BlockerUseCase) Create(userID string, site *entities.BlockedSite) error {
	site.URL = strings.TrimSpace(site.URL)
	if site.URL == "" {
		return errors.New("url is required")
	}
	if site.BlockType != "" && site.BlockType != entities.BlockTypeAlways && site.BlockType != entities.BlockTypeScheduled {
		return errors.New("block type must be always or scheduled")
	}
	site.ID = ""
	site.UserID = userID
	site.IsActive = true
	return uc.Repo.Create(site)
}

func (uc *BlockerUseCase) Update(userID, id string, update BlockedSiteUpdate) (*entities.BlockedSite, error) {
	existing, err := uc.Repo.GetOwned(id, userID)
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, err
	}

	if update.URL != nil {
		url := strings.TrimSpace(*update.URL)
		if url == "" {
			return nil, errors.New("url is required")
		}
		existing.URL = url
	}
	if update.BlockType != nil {
		if *update.BlockType != entities.BlockTypeAlways && *update.BlockType != entities.BlockTypeScheduled {
			return nil, errors.New("block type must be always or scheduled")
		}
		existing.BlockType = *update.BlockType
	}
	if update.IsActive != nil {
		existing.IsActive = *update.IsActive
	}
	if update.ScheduleStart != nil {
		existing.ScheduleStart = *update.ScheduleStart
	}
	if update.ScheduleEnd != nil {
		existing.ScheduleEnd = *update.ScheduleEnd
	}
	if update.BlockedCount != nil {
		existing.BlockedCount = *update.BlockedCount
	}

	if err := uc.Repo.Update(existing); err != nil {
		return nil, err
	}
	return existing, nil
}

func (uc *BlockerUseCase) Delete(userID, id string) error {
	err := uc.Repo.DeleteOwned(id, userID)
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return ErrNotFound
	}
	return err
}
