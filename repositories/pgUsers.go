package repositories

import (
	"strings"

	"distracto-server/db"
	"distracto-server/entities"

	"gorm.io/datatypes"
	"gorm.io/gorm"
)

type userPgRepository struct {
	db db.Database
}

func NewUserPgRepository(database db.Database) UserRepository {
	return &userPgRepository{db: database}
}

func (r *userPgRepository) Create(user *entities.User) error {
	return r.db.GetDB().Create(user).Error
}

func (r *userPgRepository) GetByID(id string) (*entities.User, error) {
	var user entities.User
	err := r.db.GetDB().Where("id = ?", id).First(&user).Error
	if err != nil {
		return nil, err
	}
	return &user, nil
}

func (r *userPgRepository) GetByEmail(email string) (*entities.User, error) {
	var user entities.User
	err := r.db.GetDB().Where("email = ?", strings.ToLower(email)).First(&user).Error
	if err != nil {
		return nil, err
	}
	return &user, nil
}

func (r *userPgRepository) GetByIDs(ids []string) ([]entities.User, error) {
	users := []entities.User{}
	if len(ids) == 0 {
		return users, nil
	}
	err := r.db.GetDB().Where("id IN ?", ids).Find(&users).Error
	return users, err
}

func (r *userPgRepository) CountByEmail(email string) (int64, error) {
	var count int64
	err := r.db.GetDB().Model(&entities.User{}).
		Where("email = ?", strings.ToLower(email)).Count(&count).Error
	return count, err
}

func (r *userPgRepository) Search(q, excludeID string, distractoOnly bool, limit int) ([]entities.User, error) {
	users := []entities.User{}
	pattern := "%" + strings.ToLower(q) + "%"

	query := r.db.GetDB().Where("id <> ?", excludeID)
	if distractoOnly {
		query = query.Where("LOWER(distracto_id) LIKE ?", pattern)
	} else {
		query = query.Where("LOWER(display_name) LIKE ? OR LOWER(distracto_id) LIKE ?", pattern, pattern)
	}

	err := query.Limit(limit).Find(&users).Error
	return users, err
}

func (r *userPgRepository) Update(user *entities.User) error {
	return r.db.GetDB().Save(user).Error
}

func (r *userPgRepository) Follow(followerID, targetID string) error {
	return r.db.GetDB().Transaction(func(tx *gorm.DB) error {
		follower, target, err := loadPair(tx, followerID, targetID)
		if err != nil {
			return err
		}
		follower.Following = addToSet(follower.Following, targetID)
		target.Followers = addToSet(target.Followers, followerID)
		if err := tx.Save(follower).Error; err != nil {
			return err
		}
		return tx.Save(target).Error
	})
}

func (r *userPgRepository) Unfollow(followerID, targetID string) error {
	return r.db.GetDB().Transaction(func(tx *gorm.DB) error {
		follower, target, err := loadPair(tx, followerID, targetID)
		if err != nil {
			return err
		}
		follower.Following = removeFromSet(follower.Following, targetID)
		target.Followers = removeFromSet(target.Followers, followerID)
		if err := tx.Save(follower).Error; err != nil {
			return err
		}
		return tx.Save(target).Error
	})
}

func loadPair(tx *gorm.DB, aID, bID string) (*entities.User, *entities.User, error) {
	var a, b entities.User
	if err := tx.Where("id = ?", aID).First(&a).Error; err != nil {
		return nil, nil, err
	}
	if err := tx.Where("id = ?", bID).First(&b).Error; err != nil {
		return nil, nil, err
	}
	return &a, &b, nil
}

func addToSet(set datatypes.JSONSlice[string], id string) datatypes.JSONSlice[string] {
	for _, v := range set {
		if v == id {
			return set
		}
	}
	return append(set, id)
}

func removeFromSet(set datatypes.JSONSlice[string], id string) datatypes.JSONSlice[string] {
	out := datatypes.JSONSlice[string]{}
	for _, v := range set {
		if v != id {
			out = append(out, v)
		}
	}
	return out
}
