package controller

import (
	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"gorm.io/gorm"

	"schoolku_backend/internals/constants"
	"schoolku_backend/internals/features/users/user/dto"
	"schoolku_backend/internals/features/users/user/model"
	helper "schoolku_backend/internals/helpers"
)

type UserController struct {
	DB *gorm.DB
}

func NewUserController(db *gorm.DB) *UserController {
	return &UserController{DB: db}
}

// GET /api/users?role=&page=&per_page=
func (uc *UserController) GetUsers(c *fiber.Ctx) error {
	paging := helper.ResolvePaging(c, 25, 200)

	q := uc.DB.Model(&model.UserModel{})
	if role := c.Query("role"); role != "" {
		if !constants.IsValidRole(role) {
			return helper.JsonError(c, fiber.StatusBadRequest, "Unknown role filter")
		}
		q = q.Where("role = ?", role)
	}

	var total int64
	if err := q.Count(&total).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Failed to count users")
	}

	var users []model.UserModel
	if err := q.Order("created_at DESC").
		Limit(paging.Limit).Offset(paging.Offset).
		Find(&users).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Failed to fetch users")
	}

	return helper.JsonOK(c, "Users fetched", fiber.Map{
		"users":      dto.FromUserModels(users),
		"pagination": helper.BuildPagination(total, len(users), paging),
	})
}

// DELETE /api/users/:id
func (uc *UserController) DeleteUser(c *fiber.Ctx) error {
	id, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Invalid user ID")
	}

	res := uc.DB.Delete(&model.UserModel{}, "id = ?", id)
	if res.Error != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Failed to delete user")
	}
	if res.RowsAffected == 0 {
		return helper.JsonError(c, fiber.StatusNotFound, "User not found")
	}

	return helper.JsonOK(c, "User deleted", fiber.Map{"id": id})
}
