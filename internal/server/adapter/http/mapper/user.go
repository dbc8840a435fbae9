package mapper

import (
	"github.com/masrafi-000/mytaskmanager/internal/server/adapter/http/dto"
	"github.com/masrafi-000/mytaskmanager/internal/server/core/domain"
)

func ToUserItem(user domain.User) dto.UserItem {
	return dto.UserItem{
		ID:    user.ID,
		Name:  user.Name,
		Email: user.Email,
	}
}
