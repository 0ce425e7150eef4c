package http

import (
	"errors"
	"net/http"
	"strconv"
	"strings"

	"github.com/almousleck/glasslink/internal/auth"
	"github.com/almousleck/glasslink/internal/config"
	"github.com/almousleck/glasslink/internal/ctrl"
	"github.com/almousleck/glasslink/internal/dto"
	"github.com/almousleck/glasslink/internal/hdl"
	mid "github.com/almousleck/glasslink/internal/hdl/http/middleware"
	"github.com/almousleck/glasslink/internal/hdl/http/utils"
	"go.uber.org/zap"
)

func (h *Handler) RegisterAuthRoutes() {
	h.Router.Post("/auth/register", h.register)
	h.Router.Post("/auth/login", h.login)
	h.Router.Post("/auth/verify-otp", h.verifyOtp)
	h.Router.Post("/auth/resend-otp", h.resendOtp)
	h.Router.Post("/auth/forgot-password", h.forgotPassword)
	h.Router.Post("/auth/reset-password", h.resetPassword)
	h.Router.Post("/auth/refresh-token", h.refresh)
	h.Router.With(mid.Auth(h.au, h.ctrl)).Post("/auth/logout", h.logout)
	h.Router.With(mid.Auth(h.au, h.ctrl)).Post("/admin/unlock", h.unlock)
}

// authErrResponse maps controller failures shared by several auth endpoints.
func authErrResponse(w http.ResponseWriter, err error) {
	var locked *ctrl.AccountLockedError
	var limited *ctrl.OtpRateLimitedError

	switch {
	case errors.As(err, &locked):
		utils.ErrResponse(w, http.StatusLocked, err)
	case errors.As(err, &limited):
		w.Header().Set("Retry-After", strconv.Itoa(int(limited.RetryAfter.Seconds())))
		utils.ErrResponse(w, http.StatusTooManyRequests, err)
	case errors.Is(err, auth.ErrInvalidCredentials),
		errors.Is(err, ctrl.ErrRefreshTokenInvalid),
		errors.Is(err, ctrl.ErrRefreshTokenExpired):
		utils.ErrResponse(w, http.StatusUnauthorized, err)
	case errors.Is(err, ctrl.ErrPhoneNotVerified), errors.Is(err, ctrl.ErrForbidden):
		utils.ErrResponse(w, http.StatusForbidden, err)
	case errors.Is(err, ctrl.ErrOtpInvalid), errors.Is(err, ctrl.ErrOtpExpired):
		utils.ErrResponse(w, http.StatusBadRequest, err)
	case errors.Is(err, ctrl.ErrAlreadyExists):
		utils.ErrResponse(w, http.StatusConflict, err)
	case errors.Is(err, ctrl.ErrNotFound):
		utils.ErrResponse(w, http.StatusNotFound, err)
	default:
		utils.ErrResponse(w, http.StatusInternalServerError, hdl.ErrInternal)
	}
}

func (h *Handler) register(w http.ResponseWriter, r *http.Request) {
	req := &dto.RegisterRequest{}
	if ok := utils.ParseAndValidate(w, r, req); !ok {
		return
	}

	res, err := h.ctrl.Register(r.Context(), req)
	if err != nil {
		authErrResponse(w, err)
		return
	}

	utils.SuccessResponse(w, http.StatusCreated, res)
}

func (h *Handler) login(w http.ResponseWriter, r *http.Request) {
	req := &dto.LoginRequest{}
	if ok := utils.ParseAndValidate(w, r, req); !ok {
		return
	}

	res, err := h.ctrl.Login(r.Context(), req)
	if err != nil {
		authErrResponse(w, err)
		return
	}

	utils.SuccessResponse(w, http.StatusOK, res)
}

func (h *Handler) verifyOtp(w http.ResponseWriter, r *http.Request) {
	req := &dto.OtpVerifyRequest{}
	if ok := utils.ParseAndValidate(w, r, req); !ok {
		return
	}

	if err := h.ctrl.VerifyOtp(r.Context(), req); err != nil {
		authErrResponse(w, err)
		return
	}

	utils.StatusResponse(w, http.StatusOK)
}

func (h *Handler) resendOtp(w http.ResponseWriter, r *http.Request) {
	req := &dto.OtpRequest{}
	if ok := utils.ParseAndValidate(w, r, req); !ok {
		return
	}

	res, err := h.ctrl.ResendOtp(r.Context(), req.Phone)
	if err != nil {
		authErrResponse(w, err)
		return
	}

	utils.SuccessResponse(w, http.StatusOK, res)
}

func (h *Handler) forgotPassword(w http.ResponseWriter, r *http.Request) {
	req := &dto.OtpRequest{}
	if ok := utils.ParseAndValidate(w, r, req); !ok {
		return
	}

	res, err := h.ctrl.ForgotPassword(r.Context(), req.Phone)
	if err != nil {
		authErrResponse(w, err)
		return
	}

	utils.SuccessResponse(w, http.StatusOK, res)
}

func (h *Handler) resetPassword(w http.ResponseWriter, r *http.Request) {
	req := &dto.ResetPasswordRequest{}
	if ok := utils.ParseAndValidate(w, r, req); !ok {
		return
	}

	if err := h.ctrl.ResetPassword(r.Context(), req); err != nil {
		authErrResponse(w, err)
		return
	}

	utils.StatusResponse(w, http.StatusOK)
}

func (h *Handler) refresh(w http.ResponseWriter, r *http.Request) {
	req := &dto.RefreshRequest{}
	if ok := utils.ParseAndValidate(w, r, req); !ok {
		return
	}

	res, err := h.ctrl.Refresh(r.Context(), req.Refresh)
	if err != nil {
		authErrResponse(w, err)
		return
	}

	utils.SuccessResponse(w, http.StatusOK, res)
}

func (h *Handler) logout(w http.ResponseWriter, r *http.Request) {
	req := &dto.LogoutRequest{}
	if ok := utils.ParseAndValidate(w, r, req); !ok {
		return
	}

	access := strings.TrimPrefix(r.Header.Get("Authorization"), "Bearer ")
	if err := h.ctrl.Logout(r.Context(), access, req.Refresh); err != nil {
		authErrResponse(w, err)
		return
	}

	utils.StatusResponse(w, http.StatusOK)
}

func (h *Handler) unlock(w http.ResponseWriter, r *http.Request) {
	username, ok := r.Context().Value(config.UidKey).(string)
	if !ok {
		zap.L().Error(
			hdl.ErrFailedToGetUser.Error(),
			zap.Any("uid", r.Context().Value(config.UidKey)),
		)
		utils.ErrResponse(w, http.StatusInternalServerError, hdl.ErrInternal)
		return
	}

	req := &dto.UnlockRequest{}
	if ok = utils.ParseAndValidate(w, r, req); !ok {
		return
	}

	if err := h.ctrl.UnlockAccount(r.Context(), username, req.Identifier); err != nil {
		authErrResponse(w, err)
		return
	}

	utils.StatusResponse(w, http.StatusOK)
}
