package usecases

import (
	"errors"
	"strings"

	"distracto-server/entities"
	"distracto-server/repositories"

	"gorm.io/gorm"
)

const searchResultCap = 20

// Profile is a user plus the joined follower/following documents.
type Profile struct {
	entities.User
	FollowerUsers  []entities.User `json:"followerUsers"`
	FollowingUsers []entities.User `json:"followingUsers"`
}

// ProfileUpdate carries the fields a user may change about themselves.
type ProfileUpdate struct {
	DisplayName *string               `json:"displayName"`
	PhotoURL    *string               `json:"photoURL"`
	Preferences *entities.Preferences `json:"preferences"`
}

type UsersUseCase struct {
	Repo repositories.UserRepository
}

func NewUsersUseCase(repo repositories.UserRepository) *UsersUseCase {
	return &UsersUseCase{Repo: repo}
}

func (uc *UsersUseCase) Get(userID string) (*entities.User, error) {
	user, err := uc.Repo.GetByID(userID)
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, ErrNotFound
	}
	return user, err
}

// Profile joins the follower/following id sets into user documents.
func (uc *UsersUseCase) Profile(userID string) (*Profile, error) {
	user, err := uc.Get(userID)
	if err != nil {
		return nil, err
	}
	followers, err := uc.Repo.GetByIDs(user.Followers)
	if err != nil {
		return nil, err
	}
	following, err := uc.Repo.GetByIDs(user.Following)
	if err != nil {
		return nil, err
	}
	return &Profile{User: *user, FollowerUsers: followers, FollowingUsers: following}, nil
}

func (uc *UsersUseCase) UpdateProfile(userID string, update ProfileUpdate) (*entities.User, error) {
	user, err := uc.Get(userID)
	if err != nil {
		return nil, err
	}

	if update.DisplayName != nil {
		name := strings.TrimSpace(*update.DisplayName)
		if len(name) < 2 {
			return nil, errors.New("display name must be at least 2 characters")
		}
		user.DisplayName = name
	}
	if update.PhotoURL != nil {
		user.PhotoURL = *update.PhotoURL
	}
	if update.Preferences != nil {
		prefs := *update.Preferences
		if prefs.DistractoID != nil {
			id := strings.TrimSpace(*prefs.DistractoID)
			if len(id) < 3 {
				return nil, errors.New("distracto id must be at least 3 characters")
			}
			prefs.DistractoID = &id
		}
		user.Preferences = prefs
	}

	if err := uc.Repo.Update(user); err != nil {
		return nil, err
	}
	return user, nil
}

// Search returns case-insensitive substring matches on display name and/or
// distracto id, excluding the requester. Queries shorter than 2 characters
// short-circuit to an empty result without touching the store.
func (uc *UsersUseCase) Search(q, searchType, requesterID string) ([]entities.User, error) {
	q = strings.TrimSpace(q)
	if len(q) < 2 {
		return []entities.User{}, nil
	}
	distractoOnly := searchType == "distractoId"
	return uc.Repo.Search(q, requesterID, distractoOnly, searchResultCap)
}

func (uc *UsersUseCase) Follow(followerID, targetID string) error {
	if followerID == targetID {
		return ErrSelfFollow
	}
	if _, err := uc.Get(targetID); err != nil {
		return err
	}
	return uc.Repo.Follow(followerID, targetID)
}

func (uc *UsersUseCase) Unfollow(followerID, targetID string) error {
	if followerID == targetID {
		return ErrSelfFollow
	}
	err := uc.Repo.Unfollow(followerID, targetID)
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return ErrNotFound
	}
	return err
}
