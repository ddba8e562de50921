package service

import (
	"errors"
	"regexp"
	"strings"

	"foodgram-go/internal/api/dto"
	"foodgram-go/internal/model"
	"foodgram-go/internal/repository"
	"foodgram-go/pkg/utils"

	"gorm.io/gorm"
)

var usernamePattern = regexp.MustCompile(`^[\w.@+-]+$`)

type UserService struct {
	userRepo *repository.UserRepository
	subRepo  *repository.SubscriptionRepository
}

func NewUserService(userRepo *repository.UserRepository, subRepo *repository.SubscriptionRepository) *UserService {
	return &UserService{userRepo: userRepo, subRepo: subRepo}
}

// Register 注册新用户
func (s *UserService) Register(req *dto.UserCreateRequest) (*dto.UserInfo, error) {
	if !usernamePattern.MatchString(req.Username) || strings.EqualFold(req.Username, "me") {
		return nil, ErrInvalidUsername
	}

	exists, err := s.userRepo.ExistsByEmail(req.Email)
	if err != nil {
		return nil, err
	}
	if exists {
		return nil, ErrEmailExists
	}

	exists, err = s.userRepo.ExistsByUsername(req.Username)
	if err != nil {
		return nil, err
	}
	if exists {
		return nil, ErrUsernameExists
	}

	hashedPassword, err := utils.HashPassword(req.Password)
	if err != nil {
		return nil, err
	}

	user := &model.User{
		Email:     req.Email,
		Username:  req.Username,
		FirstName: req.FirstName,
		LastName:  req.LastName,
		Password:  hashedPassword,
	}
	if err := s.userRepo.Create(user); err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return nil, ErrUsernameExists
		}
		return nil, err
	}

	info := toUserInfo(user, false)
	return &info, nil
}

// List 用户列表（分页）
func (s *UserService) List(viewerID int64, page, pageSize int) (*dto.PaginatedData, error) {
	users, total, err := s.userRepo.List((page-1)*pageSize, pageSize)
	if err != nil {
		return nil, err
	}

	ids := make([]int64, 0, len(users))
	for _, u := range users {
		ids = append(ids, u.ID)
	}
	subscribed, err := s.subRepo.BatchCheck(viewerID, ids)
	if err != nil {
		return nil, err
	}

	items := make([]dto.UserInfo, 0, len(users))
	for i := range users {
		items = append(items, toUserInfo(&users[i], subscribed[users[i].ID]))
	}
	return dto.NewPaginatedData(items, total, page, pageSize), nil
}

// Get 获取用户信息
func (s *UserService) Get(viewerID, userID int64) (*dto.UserInfo, error) {
	user, err := s.userRepo.GetByID(userID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrUserNotFound
		}
		return nil, err
	}

	subscribed := false
	if viewerID != 0 && viewerID != userID {
		if subscribed, err = s.subRepo.Exists(viewerID, userID); err != nil {
			return nil, err
		}
	}

	info := toUserInfo(user, subscribed)
	return &info, nil
}

// SetPassword 校验当前密码后修改密码
func (s *UserService) SetPassword(userID int64, req *dto.SetPasswordRequest) error {
	user, err := s.userRepo.GetByID(userID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return ErrUserNotFound
		}
		return err
	}

	if !utils.VerifyPassword(req.CurrentPassword, user.Password) {
		return ErrWrongPassword
	}

	hashedPassword, err := utils.HashPassword(req.NewPassword)
	if err != nil {
		return err
	}
	return s.userRepo.UpdatePassword(userID, hashedPassword)
}

func toUserInfo(u *model.User, subscribed bool) dto.UserInfo {
	return dto.UserInfo{
		Email:        u.Email,
		ID:           u.ID,
		Username:     u.Username,
		FirstName:    u.FirstName,
		LastName:     u.LastName,
		IsSubscribed: subscribed,
	}
}
