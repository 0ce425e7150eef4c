package http

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/almousleck/glasslink/internal/config"
	"github.com/almousleck/glasslink/internal/ctrl"
	"github.com/almousleck/glasslink/internal/dto"
	"github.com/almousleck/glasslink/tests/mocks"
	chi "github.com/go-chi/chi/v5"
	"github.com/stretchr/testify/assert"
	"go.uber.org/mock/gomock"
)

func withUser(req *http.Request, username string) *http.Request {
	return req.WithContext(context.WithValue(req.Context(), config.UidKey, username))
}

func withSerial(req *http.Request, serial string) *http.Request {
	rctx := chi.NewRouteContext()
	rctx.URLParams.Add("serial", serial)
	return req.WithContext(context.WithValue(req.Context(), chi.RouteCtxKey, rctx))
}

func TestHandler_PairDevice(t *testing.T) {
	mock := gomock.NewController(t)
	defer mock.Finish()

	mctrl := mocks.NewMockAppCtrl(mock)
	mauth := mocks.NewMockTokenPort(mock)
	h := New(mauth, mctrl)

	body := &dto.PairDeviceRequest{Serial: "GLX-0001", Name: "My Glasses"}

	t.Run(
		"Success", func(t *testing.T) {
			mctrl.EXPECT().
				PairDevice(gomock.Any(), "talek", gomock.Any()).
				Return(&dto.DeviceResponse{Serial: "GLX-0001"}, nil)

			req := withUser(httptest.NewRequest(http.MethodPost, "/devices/pair", marshalBody(t, body)), "talek")
			rec := httptest.NewRecorder()
			h.pairDevice(rec, req)

			assert.Equal(t, http.StatusCreated, rec.Code)
		},
	)

	t.Run(
		"AlreadyPaired", func(t *testing.T) {
			mctrl.EXPECT().
				PairDevice(gomock.Any(), "talek", gomock.Any()).
				Return(nil, ctrl.ErrDeviceAlreadyPaired)

			req := withUser(httptest.NewRequest(http.MethodPost, "/devices/pair", marshalBody(t, body)), "talek")
			rec := httptest.NewRecorder()
			h.pairDevice(rec, req)

			assert.Equal(t, http.StatusConflict, rec.Code)
		},
	)
}

func TestHandler_ListDevices(t *testing.T) {
	mock := gomock.NewController(t)
	defer mock.Finish()

	mctrl := mocks.NewMockAppCtrl(mock)
	mauth := mocks.NewMockTokenPort(mock)
	h := New(mauth, mctrl)

	mctrl.EXPECT().
		ListDevices(gomock.Any(), "talek", 2, 10, map[string]any{"status": "ONLINE"}).
		Return(&dto.PaginatedDeviceResponse{CurrentPage: 2}, nil)

	req := withUser(httptest.NewRequest(http.MethodGet, "/devices?page=2&size=10&status=ONLINE", nil), "talek")
	rec := httptest.NewRecorder()
	h.listDevices(rec, req)

	assert.Equal(t, http.StatusOK, rec.Code)
}

func TestHandler_Heartbeat(t *testing.T) {
	mock := gomock.NewController(t)
	defer mock.Finish()

	mctrl := mocks.NewMockAppCtrl(mock)
	mauth := mocks.NewMockTokenPort(mock)
	h := New(mauth, mctrl)

	battery := 80
	body := &dto.HeartbeatRequest{Serial: "GLX-0001", BatteryLevel: &battery}

	t.Run(
		"Success", func(t *testing.T) {
			mctrl.EXPECT().
				Heartbeat(gomock.Any(), gomock.Any()).
				Return(nil)

			req := httptest.NewRequest(http.MethodPost, "/devices/heartbeat", marshalBody(t, body))
			rec := httptest.NewRecorder()
			h.heartbeat(rec, req)

			assert.Equal(t, http.StatusOK, rec.Code)
		},
	)

	t.Run(
		"UnknownDevice", func(t *testing.T) {
			mctrl.EXPECT().
				Heartbeat(gomock.Any(), gomock.Any()).
				Return(ctrl.ErrDeviceNotFound)

			req := httptest.NewRequest(http.MethodPost, "/devices/heartbeat", marshalBody(t, body))
			rec := httptest.NewRecorder()
			h.heartbeat(rec, req)

			assert.Equal(t, http.StatusNotFound, rec.Code)
		},
	)
}

func TestHandler_ConnectDisconnect(t *testing.T) {
	mock := gomock.NewController(t)
	defer mock.Finish()

	mctrl := mocks.NewMockAppCtrl(mock)
	mauth := mocks.NewMockTokenPort(mock)
	h := New(mauth, mctrl)

	t.Run(
		"Connect", func(t *testing.T) {
			mctrl.EXPECT().
				MarkDeviceOnline(gomock.Any(), "GLX-0001").
				Return(nil)

			req := withSerial(httptest.NewRequest(http.MethodPost, "/devices/GLX-0001/connect", nil), "GLX-0001")
			rec := httptest.NewRecorder()
			h.connectDevice(rec, req)

			assert.Equal(t, http.StatusOK, rec.Code)
		},
	)

	t.Run(
		"Disconnect", func(t *testing.T) {
			mctrl.EXPECT().
				MarkDeviceOffline(gomock.Any(), "GLX-0001").
				Return(nil)

			req := withSerial(httptest.NewRequest(http.MethodPost, "/devices/GLX-0001/disconnect", nil), "GLX-0001")
			rec := httptest.NewRecorder()
			h.disconnectDevice(rec, req)

			assert.Equal(t, http.StatusOK, rec.Code)
		},
	)

	t.Run(
		"MissingSerial", func(t *testing.T) {
			req := withSerial(httptest.NewRequest(http.MethodPost, "/devices//connect", nil), "")
			rec := httptest.NewRecorder()
			h.connectDevice(rec, req)

			assert.Equal(t, http.StatusBadRequest, rec.Code)
		},
	)
}

func TestHandler_UpdateFirmware(t *testing.T) {
	mock := gomock.NewController(t)
	defer mock.Finish()

	mctrl := mocks.NewMockAppCtrl(mock)
	mauth := mocks.NewMockTokenPort(mock)
	h := New(mauth, mctrl)

	body := &dto.FirmwareRequest{Version: "1.2.0"}

	mctrl.EXPECT().
		UpdateFirmware(gomock.Any(), "GLX-0001", "1.2.0").
		Return(nil)

	req := withSerial(
		httptest.NewRequest(http.MethodPut, "/devices/GLX-0001/firmware", marshalBody(t, body)),
		"GLX-0001",
	)
	rec := httptest.NewRecorder()
	h.updateFirmware(rec, req)

	assert.Equal(t, http.StatusOK, rec.Code)
}

func TestHandler_UnpairDevice(t *testing.T) {
	mock := gomock.NewController(t)
	defer mock.Finish()

	mctrl := mocks.NewMockAppCtrl(mock)
	mauth := mocks.NewMockTokenPort(mock)
	h := New(mauth, mctrl)

	t.Run(
		"Success", func(t *testing.T) {
			mctrl.EXPECT().
				UnpairDevice(gomock.Any(), "GLX-0001", "talek").
				Return(nil)

			req := withSerial(
				withUser(httptest.NewRequest(http.MethodDelete, "/devices/GLX-0001", nil), "talek"),
				"GLX-0001",
			)
			rec := httptest.NewRecorder()
			h.unpairDevice(rec, req)

			assert.Equal(t, http.StatusNoContent, rec.Code)
		},
	)

	t.Run(
		"NotTheOwner", func(t *testing.T) {
			mctrl.EXPECT().
				UnpairDevice(gomock.Any(), "GLX-0001", "talek").
				Return(ctrl.ErrUnauthorizedDeviceAccess)

			req := withSerial(
				withUser(httptest.NewRequest(http.MethodDelete, "/devices/GLX-0001", nil), "talek"),
				"GLX-0001",
			)
			rec := httptest.NewRecorder()
			h.unpairDevice(rec, req)

			assert.Equal(t, http.StatusForbidden, rec.Code)
		},
	)
}
