package http

import (
	"errors"
	"net/http"

	"github.com/almousleck/glasslink/internal/config"
	"github.com/almousleck/glasslink/internal/ctrl"
	"github.com/almousleck/glasslink/internal/dto"
	"github.com/almousleck/glasslink/internal/hdl"
	mid "github.com/almousleck/glasslink/internal/hdl/http/middleware"
	"github.com/almousleck/glasslink/internal/hdl/http/utils"
	chi "github.com/go-chi/chi/v5"
	"go.uber.org/zap"
)

func (h *Handler) RegisterDeviceRoutes() {
	authed := h.Router.With(mid.Auth(h.au, h.ctrl))
	authed.Post("/devices/pair", h.pairDevice)
	authed.Get("/devices", h.listDevices)
	authed.Delete("/devices/{serial}", h.unpairDevice)

	// Device-originated calls carry no user token, the glasses identify
	// themselves by serial number.
	h.Router.Post("/devices/heartbeat", h.heartbeat)
	h.Router.Post("/devices/{serial}/connect", h.connectDevice)
	h.Router.Post("/devices/{serial}/disconnect", h.disconnectDevice)
	h.Router.Put("/devices/{serial}/firmware", h.updateFirmware)
}

func deviceErrResponse(w http.ResponseWriter, err error) {
	switch {
	case errors.Is(err, ctrl.ErrDeviceAlreadyPaired):
		utils.ErrResponse(w, http.StatusConflict, err)
	case errors.Is(err, ctrl.ErrUnauthorizedDeviceAccess):
		utils.ErrResponse(w, http.StatusForbidden, err)
	case errors.Is(err, ctrl.ErrDeviceNotFound), errors.Is(err, ctrl.ErrNotFound):
		utils.ErrResponse(w, http.StatusNotFound, err)
	default:
		utils.ErrResponse(w, http.StatusInternalServerError, hdl.ErrInternal)
	}
}

func usernameFromCtx(w http.ResponseWriter, r *http.Request) (string, bool) {
	username, ok := r.Context().Value(config.UidKey).(string)
	if !ok {
		zap.L().Error(
			hdl.ErrFailedToGetUser.Error(),
			zap.Any("uid", r.Context().Value(config.UidKey)),
		)
		utils.ErrResponse(w, http.StatusInternalServerError, hdl.ErrInternal)
		return "", false
	}

	return username, true
}

func (h *Handler) pairDevice(w http.ResponseWriter, r *http.Request) {
	username, ok := usernameFromCtx(w, r)
	if !ok {
		return
	}

	req := &dto.PairDeviceRequest{}
	if ok = utils.ParseAndValidate(w, r, req); !ok {
		return
	}

	res, err := h.ctrl.PairDevice(r.Context(), username, req)
	if err != nil {
		deviceErrResponse(w, err)
		return
	}

	utils.SuccessResponse(w, http.StatusCreated, res)
}

func (h *Handler) listDevices(w http.ResponseWriter, r *http.Request) {
	username, ok := usernameFromCtx(w, r)
	if !ok {
		return
	}

	page, size := utils.ParsePaginationValues(r)
	res, err := h.ctrl.ListDevices(r.Context(), username, page, size, utils.ParseFiltersByURL(r))
	if err != nil {
		deviceErrResponse(w, err)
		return
	}

	utils.SuccessResponse(w, http.StatusOK, res)
}

func (h *Handler) heartbeat(w http.ResponseWriter, r *http.Request) {
	req := &dto.HeartbeatRequest{}
	if ok := utils.ParseAndValidate(w, r, req); !ok {
		return
	}

	if err := h.ctrl.Heartbeat(r.Context(), req); err != nil {
		deviceErrResponse(w, err)
		return
	}

	utils.StatusResponse(w, http.StatusOK)
}

func (h *Handler) connectDevice(w http.ResponseWriter, r *http.Request) {
	serial := chi.URLParam(r, "serial")
	if serial == "" {
		utils.ErrResponse(w, http.StatusBadRequest, hdl.ErrToRetrievePathArg)
		return
	}

	if err := h.ctrl.MarkDeviceOnline(r.Context(), serial); err != nil {
		deviceErrResponse(w, err)
		return
	}

	utils.StatusResponse(w, http.StatusOK)
}

func (h *Handler) disconnectDevice(w http.ResponseWriter, r *http.Request) {
	serial := chi.URLParam(r, "serial")
	if serial == "" {
		utils.ErrResponse(w, http.StatusBadRequest, hdl.ErrToRetrievePathArg)
		return
	}

	if err := h.ctrl.MarkDeviceOffline(r.Context(), serial); err != nil {
		deviceErrResponse(w, err)
		return
	}

	utils.StatusResponse(w, http.StatusOK)
}

func (h *Handler) updateFirmware(w http.ResponseWriter, r *http.Request) {
	serial := chi.URLParam(r, "serial")
	if serial == "" {
		utils.ErrResponse(w, http.StatusBadRequest, hdl.ErrToRetrievePathArg)
		return
	}

	req := &dto.FirmwareRequest{}
	if ok := utils.ParseAndValidate(w, r, req); !ok {
		return
	}

	if err := h.ctrl.UpdateFirmware(r.Context(), serial, req.Version); err != nil {
		deviceErrResponse(w, err)
		return
	}

	utils.StatusResponse(w, http.StatusOK)
}

func (h *Handler) unpairDevice(w http.ResponseWriter, r *http.Request) {
	username, ok := usernameFromCtx(w, r)
	if !ok {
		return
	}

	serial := chi.URLParam(r, "serial")
	if serial == "" {
		utils.ErrResponse(w, http.StatusBadRequest, hdl.ErrToRetrievePathArg)
		return
	}

	if err := h.ctrl.UnpairDevice(r.Context(), serial, username); err != nil {
		deviceErrResponse(w, err)
		return
	}

	utils.StatusResponse(w, http.StatusNoContent)
}
