package handler_test

import (
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"pizzeria_kassa/constants"
	"pizzeria_kassa/helper"
	"pizzeria_kassa/model"
	"testing"

	"github.com/gofiber/fiber/v2"
)

func (s *testServer) refresh(t *testing.T, refreshToken string) *http.Response {
	t.Helper()
	req := httptest.NewRequest("POST", "/api/v1/auth/refresh-token", nil)
	if refreshToken != "" {
		req.AddCookie(&http.Cookie{Name: "refresh_token", Value: refreshToken})
	}
	resp, err := s.app.Test(req, -1)
	if err != nil {
		t.Fatalf("refresh: %v", err)
	}
	return resp
}

func responseCookie(t *testing.T, resp *http.Response, name string) string {
	t.Helper()
	for _, c := range resp.Cookies() {
		if c.Name == name {
			return c.Value
		}
	}
	t.Fatalf("response sets no %s cookie", name)
	return ""
}

func TestLoginRefreshAndLogout(t *testing.T) {
	s := newTestServer(t)

	hash, err := helper.HashPassword("geheim123")
	if err != nil {
		t.Fatalf("hash: %v", err)
	}
	if err := s.db.Create(&model.Account{Username: "kassa1", Password: hash, Role: constants.ROLE_STAFF, Active: true}).Error; err != nil {
		t.Fatalf("create account: %v", err)
	}

	resp, _ := s.do(t, "POST", "/api/v1/auth/login", "", fiber.Map{"username": "kassa1", "password": "fout"})
	if resp.StatusCode != fiber.StatusUnauthorized {
		t.Fatalf("wrong password gave %d, want 401", resp.StatusCode)
	}
	resp, _ = s.do(t, "POST", "/api/v1/auth/login", "", fiber.Map{"username": "onbekend", "password": "geheim123"})
	if resp.StatusCode != fiber.StatusUnauthorized {
		t.Fatalf("unknown user gave %d, want 401", resp.StatusCode)
	}

	resp, data := s.do(t, "POST", "/api/v1/auth/login", "", fiber.Map{"username": "kassa1", "password": "geheim123"})
	if resp.StatusCode != fiber.StatusOK {
		t.Fatalf("login gave %d: %s", resp.StatusCode, data)
	}
	var login struct {
		AccessToken string `json:"accessToken"`
	}
	if err := json.Unmarshal(data, &login); err != nil || login.AccessToken == "" {
		t.Fatalf("login body %s: %v", data, err)
	}
	first := responseCookie(t, resp, "refresh_token")

	resp = s.refresh(t, first)
	if resp.StatusCode != fiber.StatusOK {
		t.Fatalf("refresh gave %d", resp.StatusCode)
	}
	second := responseCookie(t, resp, "refresh_token")
	if second == first {
		t.Fatal("refresh returned the same refresh token")
	}

	if resp := s.refresh(t, first); resp.StatusCode != fiber.StatusUnauthorized {
		t.Fatalf("replayed refresh token gave %d, want 401", resp.StatusCode)
	}
	if resp := s.refresh(t, ""); resp.StatusCode != fiber.StatusUnauthorized {
		t.Fatalf("missing refresh token gave %d, want 401", resp.StatusCode)
	}
	if resp := s.refresh(t, "not-a-jwt"); resp.StatusCode != fiber.StatusUnauthorized {
		t.Fatalf("garbage refresh token gave %d, want 401", resp.StatusCode)
	}

	resp = s.refresh(t, second)
	if resp.StatusCode != fiber.StatusOK {
		t.Fatalf("refresh with rotated token gave %d", resp.StatusCode)
	}
	third := responseCookie(t, resp, "refresh_token")

	resp, data = s.doWithToken(t, "POST", "/api/v1/auth/logout", login.AccessToken, nil)
	if resp.StatusCode != fiber.StatusOK {
		t.Fatalf("logout gave %d: %s", resp.StatusCode, data)
	}
	if resp := s.refresh(t, third); resp.StatusCode != fiber.StatusUnauthorized {
		t.Fatalf("refresh after logout gave %d, want 401", resp.StatusCode)
	}
}

func TestAccountActivation(t *testing.T) {
	s := newTestServer(t)
	staffID := s.accounts[constants.ROLE_STAFF]
	if err := s.db.Model(&model.Account{}).Where("id = ?", staffID).Update("refresh_token", "stored-token").Error; err != nil {
		t.Fatalf("store refresh token: %v", err)
	}
	path := func(id uint) string { return fmt.Sprintf("/api/v1/account/%d/active", id) }

	resp, data := s.do(t, "PATCH", path(s.accounts[constants.ROLE_ADMIN]), constants.ROLE_ADMIN, fiber.Map{"active": false})
	if resp.StatusCode != fiber.StatusBadRequest {
		t.Fatalf("disabling yourself gave %d: %s", resp.StatusCode, data)
	}
	resp, _ = s.do(t, "PATCH", path(staffID), constants.ROLE_MANAGER, fiber.Map{"active": false})
	if resp.StatusCode != fiber.StatusForbidden {
		t.Fatalf("manager disabling staff gave %d, want 403", resp.StatusCode)
	}
	resp, _ = s.do(t, "PATCH", path(9999), constants.ROLE_ADMIN, fiber.Map{"active": false})
	if resp.StatusCode != fiber.StatusNotFound {
		t.Fatalf("unknown account gave %d, want 404", resp.StatusCode)
	}

	resp, data = s.do(t, "PATCH", path(staffID), constants.ROLE_ADMIN, fiber.Map{"active": false})
	if resp.StatusCode != fiber.StatusOK {
		t.Fatalf("disable staff gave %d: %s", resp.StatusCode, data)
	}
	var staff model.Account
	if err := s.db.First(&staff, staffID).Error; err != nil {
		t.Fatalf("load staff: %v", err)
	}
	if staff.Active || staff.RefreshToken != "" {
		t.Fatalf("disabled staff = active %v, refresh token %q", staff.Active, staff.RefreshToken)
	}
	resp, _ = s.do(t, "GET", "/api/v1/order", constants.ROLE_STAFF, nil)
	if resp.StatusCode != fiber.StatusForbidden {
		t.Fatalf("disabled staff listing orders gave %d, want 403", resp.StatusCode)
	}

	resp, data = s.do(t, "PATCH", path(staffID), constants.ROLE_ADMIN, fiber.Map{"active": true})
	if resp.StatusCode != fiber.StatusOK {
		t.Fatalf("enable staff gave %d: %s", resp.StatusCode, data)
	}
	resp, _ = s.do(t, "GET", "/api/v1/order", constants.ROLE_STAFF, nil)
	if resp.StatusCode != fiber.StatusOK {
		t.Fatalf("re-enabled staff listing orders gave %d, want 200", resp.StatusCode)
	}
}

func TestRoleGuards(t *testing.T) {
	s := newTestServer(t)

	tests := []struct {
		name   string
		method string
		path   string
		role   string
		body   any
		want   int
	}{
		{"staff lists accounts", "GET", "/api/v1/account", constants.ROLE_STAFF, nil, fiber.StatusForbidden},
		{"manager lists accounts", "GET", "/api/v1/account", constants.ROLE_MANAGER, nil, fiber.StatusForbidden},
		{"admin lists accounts", "GET", "/api/v1/account", constants.ROLE_ADMIN, nil, fiber.StatusOK},
		{"manager creates account", "POST", "/api/v1/account", constants.ROLE_MANAGER,
			fiber.Map{"username": "nieuw", "password": "geheim123", "role": constants.ROLE_STAFF}, fiber.StatusForbidden},
		{"admin creates account", "POST", "/api/v1/account", constants.ROLE_ADMIN,
			fiber.Map{"username": "nieuw", "password": "geheim123", "role": constants.ROLE_STAFF}, fiber.StatusCreated},
		{"admin creates unknown role", "POST", "/api/v1/account", constants.ROLE_ADMIN,
			fiber.Map{"username": "ander", "password": "geheim123", "role": "OWNER"}, fiber.StatusBadRequest},
		{"staff reads report", "GET", "/api/v1/report/daily", constants.ROLE_STAFF, nil, fiber.StatusForbidden},
		{"staff reads dashboard", "GET", "/api/v1/statistic", constants.ROLE_STAFF, nil, fiber.StatusForbidden},
		{"staff deletes orders", "DELETE", "/api/v1/order", constants.ROLE_STAFF, fiber.Map{"ids": []uint{1}}, fiber.StatusForbidden},
		{"staff reads own account", "GET", "/api/v1/account/me", constants.ROLE_STAFF, nil, fiber.StatusOK},
		{"no token", "GET", "/api/v1/account/me", "", nil, fiber.StatusUnauthorized},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			resp, data := s.do(t, tt.method, tt.path, tt.role, tt.body)
			if resp.StatusCode != tt.want {
				t.Fatalf("status = %d, want %d: %s", resp.StatusCode, tt.want, data)
			}
		})
	}

	resp, _ := s.doWithToken(t, "GET", "/api/v1/account/me", "forged.token.value", nil)
	if resp.StatusCode != fiber.StatusUnauthorized {
		t.Fatalf("forged token gave %d, want 401", resp.StatusCode)
	}
}
