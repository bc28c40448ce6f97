package service

import (
	"errors"
	"log"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	"schoolku_backend/internals/configs"
	authDto "schoolku_backend/internals/features/users/auth/dto"
	authHelper "schoolku_backend/internals/features/users/auth/helper"
	userDto "schoolku_backend/internals/features/users/user/dto"
	userModel "schoolku_backend/internals/features/users/user/model"
	helpers "schoolku_backend/internals/helpers"
)

var validate = validator.New()

// Single message for unknown username AND wrong password, so a caller cannot
// probe which accounts exist.
const loginFailedMessage = "Invalid username or password"

/* ==========================
   REGISTER
========================== */

func Register(db *gorm.DB, c *fiber.Ctx) error {
	var input authDto.RegisterRequest
	if err := c.BodyParser(&input); err != nil {
		return helpers.JsonError(c, fiber.StatusBadRequest, "Invalid request body")
	}
	if err := validate.Struct(input); err != nil {
		return helpers.ValidationError(c, err)
	}

	passwordHash, err := authHelper.HashPassword(input.Password)
	if err != nil {
		return helpers.JsonError(c, fiber.StatusInternalServerError, "Password hashing failed")
	}

	user := userModel.UserModel{
		UserName: input.UserName,
		Email:    input.Email,
		Password: passwordHash,
		FullName: input.FullName,
		Role:     input.Role,
	}

	if err := db.Create(&user).Error; err != nil {
		if helpers.IsUniqueViolation(err) {
			return helpers.JsonError(c, fiber.StatusConflict, "Username or email already registered")
		}
		log.Printf("[register] create user failed: %v", err)
		return helpers.JsonError(c, fiber.StatusInternalServerError, "Failed to create user")
	}

	return helpers.Success(c, fiber.StatusCreated, "Registration successful", userDto.FromUserModel(user))
}

/* ==========================
   LOGIN
========================== */

func Login(db *gorm.DB, c *fiber.Ctx) error {
	var input authDto.LoginRequest
	if err := c.BodyParser(&input); err != nil {
		return helpers.JsonError(c, fiber.StatusBadRequest, "Invalid request body")
	}
	if err := validate.Struct(input); err != nil {
		return helpers.ValidationError(c, err)
	}

	var user userModel.UserModel
	err := db.Where("user_name = ? OR email = ?", input.UserName, input.UserName).
		First(&user).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return helpers.JsonError(c, fiber.StatusUnauthorized, loginFailedMessage)
		}
		return helpers.JsonError(c, fiber.StatusInternalServerError, "DB error")
	}

	if err := authHelper.CheckPassword(user.Password, input.Password); err != nil {
		return helpers.JsonError(c, fiber.StatusUnauthorized, loginFailedMessage)
	}

	if !user.IsActive {
		return helpers.JsonError(c, fiber.StatusForbidden, "Account is deactivated")
	}

	token, err := CreateToken(user, configs.JWTSecret, time.Now().UTC())
	if err != nil {
		log.Printf("[login] token sign failed: %v", err)
		return helpers.JsonError(c, fiber.StatusInternalServerError, "Failed to issue token")
	}

	return helpers.JsonOK(c, "Login successful", fiber.Map{
		"token": token,
		"user":  userDto.FromUserModel(user),
	})
}
