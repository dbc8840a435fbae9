package handlers

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"github.com/masrafi-000/mytaskmanager/internal/server/adapter/http/dto"
	"github.com/masrafi-000/mytaskmanager/internal/server/adapter/http/mapper"
	"github.com/masrafi-000/mytaskmanager/internal/server/adapter/http/middleware"
	"github.com/masrafi-000/mytaskmanager/internal/server/core/domain"
	"github.com/masrafi-000/mytaskmanager/internal/server/core/ports"
	"github.com/masrafi-000/mytaskmanager/pkg/apierrors"
)

type AuthHandler struct {
	authService ports.AuthService
}

func NewAuthHandler(authService ports.AuthService) *AuthHandler {
	return &AuthHandler{authService: authService}
}

func (h *AuthHandler) SignUp(c *gin.Context) {
	lang := middleware.GetLang(c)

	var req dto.SignUpRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(
			http.StatusBadRequest,
			apierrors.CreateError(http.StatusBadRequest, apierrors.MsgInvalidPayload, lang),
		)
		return
	}

	user, token, err := h.authService.SignUp(c.Request.Context(), domain.SignUpInput{
		Name:           req.Name,
		Email:          req.Email,
		Password:       req.Password,
		RepeatPassword: req.RepeatPassword,
	})
	if err != nil {
		switch {
		case errors.Is(err, domain.ErrPasswordMismatch):
			c.JSON(
				http.StatusBadRequest,
				apierrors.CreateError(http.StatusBadRequest, apierrors.MsgPasswordMismatch, lang),
			)
		case errors.Is(err, domain.ErrEmailTaken):
			c.JSON(
				http.StatusConflict,
				apierrors.CreateError(http.StatusConflict, apierrors.MsgEmailTaken, lang),
			)
		default:
			zap.L().Error("failed to sign up", zap.Error(err))
			c.JSON(
				http.StatusInternalServerError,
				apierrors.CreateError(http.StatusInternalServerError, apierrors.MsgFailSignUp, lang),
			)
		}
		return
	}

	c.JSON(http.StatusCreated, dto.AuthResponse{
		User:    mapper.ToUserItem(user),
		Token:   token,
		Message: "Account created",
	})
}

func (h *AuthHandler) Login(c *gin.Context) {
	lang := middleware.GetLang(c)

	var req dto.LoginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(
			http.StatusBadRequest,
			apierrors.CreateError(http.StatusBadRequest, apierrors.MsgInvalidPayload, lang),
		)
		return
	}

	user, token, err := h.authService.Login(c.Request.Context(), req.Email, req.Password)
	if err != nil {
		if errors.Is(err, domain.ErrInvalidCredentials) {
			c.JSON(
				http.StatusUnauthorized,
				apierrors.CreateError(http.StatusUnauthorized, apierrors.MsgInvalidCredentials, lang),
			)
			return
		}

		zap.L().Error("failed to log in", zap.Error(err))
		c.JSON(
			http.StatusInternalServerError,
			apierrors.CreateError(http.StatusInternalServerError, apierrors.MsgFailLogin, lang),
		)
		return
	}

	c.JSON(http.StatusOK, dto.AuthResponse{
		User:  mapper.ToUserItem(user),
		Token: token,
	})
}
