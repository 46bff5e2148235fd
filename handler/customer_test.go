package handler_test

import (
	"encoding/json"
	"pizzeria_kassa/constants"
	"testing"

	"github.com/gofiber/fiber/v2"
)

func TestWebCustomerFlow(t *testing.T) {
	s := newTestServer(t)

	// a customer first known from a phone order at the till
	resp, data := s.do(t, "POST", "/api/v1/customer", constants.ROLE_STAFF, fiber.Map{"phone": "0470 55 66 77", "name": "Mieke"})
	if resp.StatusCode != fiber.StatusCreated {
		t.Fatalf("create customer gave %d: %s", resp.StatusCode, data)
	}
	resp, _ = s.do(t, "POST", "/api/v1/customer", constants.ROLE_STAFF, fiber.Map{"phone": "0470.55.66.77", "name": "Other"})
	if resp.StatusCode != fiber.StatusConflict {
		t.Fatalf("duplicate phone gave %d, want 409", resp.StatusCode)
	}

	resp, data = s.do(t, "POST", "/api/v1/klant/register", "", fiber.Map{
		"name": "Mieke", "email": "Mieke@Example.com", "phone": "0470556677", "password": "geheim123",
	})
	if resp.StatusCode != fiber.StatusCreated {
		t.Fatalf("register gave %d: %s", resp.StatusCode, data)
	}
	var count int64
	s.db.Table("customers").Count(&count)
	if count != 1 {
		t.Fatalf("register created a second customer, %d rows", count)
	}

	resp, data = s.do(t, "POST", "/api/v1/klant/login", "", fiber.Map{"email": "mieke@example.com", "password": "geheim123"})
	if resp.StatusCode != fiber.StatusOK {
		t.Fatalf("login gave %d: %s", resp.StatusCode, data)
	}
	var login struct {
		Data struct {
			AccessToken string `json:"accessToken"`
		} `json:"data"`
	}
	if err := json.Unmarshal(data, &login); err != nil || login.Data.AccessToken == "" {
		t.Fatalf("login response %s: %v", data, err)
	}
	token := login.Data.AccessToken

	if resp, data := s.doWithToken(t, "GET", "/api/v1/klant/me", token, nil); resp.StatusCode != fiber.StatusOK {
		t.Fatalf("me gave %d: %s", resp.StatusCode, data)
	}
	order := fiber.Map{"lines": []fiber.Map{{"productId": s.pizza.ID, "quantity": 1}}}
	if resp, data := s.doWithToken(t, "POST", "/api/v1/online/order", token, order); resp.StatusCode != fiber.StatusCreated {
		t.Fatalf("logged-in online order gave %d: %s", resp.StatusCode, data)
	}
	if resp, data := s.doWithToken(t, "GET", "/api/v1/klant/orders", token, nil); resp.StatusCode != fiber.StatusOK {
		t.Fatalf("my orders gave %d: %s", resp.StatusCode, data)
	}

	var orders int64
	s.db.Table("orders").Where("customer_id IS NOT NULL").Count(&orders)
	if orders != 1 {
		t.Fatalf("online order not linked to the customer")
	}

	resp, _ = s.do(t, "GET", "/api/v1/klant/me", "", nil)
	if resp.StatusCode != fiber.StatusUnauthorized {
		t.Fatalf("guest me gave %d, want 401", resp.StatusCode)
	}
	// staff tokens carry no customer
	resp, _ = s.do(t, "GET", "/api/v1/klant/orders", constants.ROLE_STAFF, nil)
	if resp.StatusCode != fiber.StatusUnauthorized {
		t.Fatalf("staff token on klant orders gave %d, want 401", resp.StatusCode)
	}
}
