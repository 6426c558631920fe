package handlers

import (
	"log/slog"
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/aliasparty/backend/internal/application/constant"
	"github.com/aliasparty/backend/internal/infra/appctx"
	"github.com/aliasparty/backend/internal/infra/ports/http/dto"
	"github.com/aliasparty/backend/internal/usecase"
)

type AuthHandler struct {
	userUsecase usecase.UserUsecase
}

func NewAuthHandler(userUsecase usecase.UserUsecase) *AuthHandler {
	return &AuthHandler{userUsecase: userUsecase}
}

func (h *AuthHandler) Register(c echo.Context) error {
	var req dto.RegisterRequest
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, map[string]string{"error": "invalid request"})
	}

	if req.Username == "" || req.Password == "" {
		return c.JSON(http.StatusBadRequest, map[string]string{"error": "username and password are required"})
	}

	user, err := h.userUsecase.Register(c.Request().Context(), req.Username, req.Password)
	if err != nil {
		slog.Error("register user", slog.Any(constant.Error, err))

		return jsonError(c, err)
	}

	return c.JSON(http.StatusCreated, dto.NewUserResponseFromModel(user))
}

func (h *AuthHandler) Login(c echo.Context) error {
	var req dto.LoginRequest
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, map[string]string{"error": "invalid request"})
	}

	token, err := h.userUsecase.Login(c.Request().Context(), req.Username, req.Password)
	if err != nil {
		slog.Error("login", slog.String(constant.UserName, req.Username), slog.Any(constant.Error, err))

		return jsonError(c, err)
	}

	return c.JSON(http.StatusOK, dto.LoginResponse{Token: token})
}

func (h *AuthHandler) GetMe(c echo.Context) error {
	userID, ok := appctx.UserID(c.Request().Context())
	if !ok {
		return c.JSON(http.StatusUnauthorized, map[string]string{"error": "invalid user"})
	}

	user, err := h.userUsecase.GetByID(c.Request().Context(), userID)
	if err != nil {
		return jsonError(c, err)
	}

	return c.JSON(http.StatusOK, dto.NewUserResponseFromModel(user))
}
