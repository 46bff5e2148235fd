package helper

import (
	"errors"
	"fmt"
	"log"
	"net/mail"
	"pizzeria_kassa/config"
	"pizzeria_kassa/constants"
	"pizzeria_kassa/database"
	"pizzeria_kassa/model"
	"pizzeria_kassa/utils"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"
)

func JwtSecret() []byte {
	return []byte(config.Config("JWT_SECRET"))
}

func HashPassword(password string) (string, error) {
	bytes, err := bcrypt.GenerateFromPassword([]byte(password), 10)
	return string(bytes), err
}
func CheckPasswordHash(password, hash string) bool {
	err := bcrypt.CompareHashAndPassword([]byte(hash), []byte(password))
	return err == nil
}

func GetUserByUsername(u string) (*model.Account, error) {
	db := database.DB
	var account model.Account
	if err := db.Where(&model.Account{Username: u}).First(&account).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &account, nil
}
func GetCustomerByEmail(e string) (*model.Customer, error) {
	db := database.DB
	var customer model.Customer
	if err := db.Where("email = ?", e).First(&customer).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &customer, nil
}
func Valid(email string) bool {
	_, err := mail.ParseAddress(email)
	return err == nil
}

func GenerateAccessToken(tokenClaim model.TokenClaim) (string, error) {
	token := jwt.New(jwt.SigningMethodHS256)

	claims := token.Claims.(jwt.MapClaims)
	claims["username"] = tokenClaim.Username
	claims["customerId"] = tokenClaim.CustomerId
	claims["accountId"] = tokenClaim.AccountId
	claims["role"] = tokenClaim.Role
	claims["exp"] = time.Now().Add(time.Minute * 60).Unix()

	t, err := token.SignedString(JwtSecret())
	return t, err
}

func GenerateRefreshToken(tokenClaim model.TokenClaim) (string, error) {
	token := jwt.New(jwt.SigningMethodHS256)

	claims := token.Claims.(jwt.MapClaims)
	claims["username"] = tokenClaim.Username
	claims["customerId"] = tokenClaim.CustomerId
	claims["accountId"] = tokenClaim.AccountId
	claims["exp"] = time.Now().Add(time.Hour * 24 * 7).Unix()
	// unique per issue, a rotated token never equals the one it replaces
	claims["jti"] = uuid.NewString()

	t, err := token.SignedString(JwtSecret())
	return t, err
}

func ParseToken(tokenString string) (*jwt.Token, error) {
	token, err := jwt.Parse(tokenString, func(token *jwt.Token) (interface{}, error) {
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("unexpected signing method: %v", token.Header["alg"])
		}
		return JwtSecret(), nil
	})

	return token, err
}

func claimUint(claims jwt.MapClaims, key string) uint {
	if v, ok := claims[key].(float64); ok && v > 0 {
		return uint(v)
	}
	return 0
}

// GetInfoAccountFromToken loads the staff account behind the request token and
// reports its role as (isAdmin, isManager, isStaff). The role always comes
// from the database, not from the token. On failure an error response has
// already been written and the claim's AccountId is 0.
func GetInfoAccountFromToken(c *fiber.Ctx) (model.TokenClaim, bool, bool, bool) {
	token, ok := c.Locals("user").(*jwt.Token)
	if !ok || token == nil {
		utils.ErrorResponse(c, fiber.StatusUnauthorized, constants.LOGIN_REQUIRED, errors.New("no token"))
		return model.TokenClaim{}, false, false, false
	}
	tokenClaim, _ := token.Claims.(jwt.MapClaims)
	accountId := claimUint(tokenClaim, "accountId")
	if accountId == 0 {
		utils.ErrorResponse(c, fiber.StatusUnauthorized, constants.LOGIN_REQUIRED, errors.New("token has no account"))
		return model.TokenClaim{}, false, false, false
	}

	var account model.Account
	db := database.DB
	if err := db.First(&account, accountId).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			log.Printf("Account not found: id=%d", accountId)
			utils.ErrorResponse(c, fiber.StatusUnauthorized, "Account does not exist", err)
		} else {
			log.Printf("Database query error for account: id=%d, error=%v", accountId, err)
			utils.ErrorResponse(c, fiber.StatusInternalServerError, constants.ERROR_INTERNAL_ERROR, err)
		}
		return model.TokenClaim{}, false, false, false
	}
	if !account.Active {
		utils.ErrorResponse(c, fiber.StatusForbidden, constants.ACCOUNT_NOT_ACTIVE, errors.New("account disabled"))
		return model.TokenClaim{}, false, false, false
	}

	accountInfo := model.TokenClaim{
		AccountId: account.ID,
		Username:  account.Username,
		Role:      account.Role,
	}
	return accountInfo,
		account.Role == constants.ROLE_ADMIN,
		account.Role == constants.ROLE_MANAGER,
		account.Role == constants.ROLE_STAFF
}

// GetInfoCustomerFromToken resolves the web customer of an optional token.
// Guests get a zero claim.
func GetInfoCustomerFromToken(c *fiber.Ctx) (model.TokenClaim, model.Customer) {
	var emptyCustomer model.Customer
	var guestClaim = model.TokenClaim{}

	userToken, ok := c.Locals("user").(*jwt.Token)
	if !ok || userToken == nil {
		return guestClaim, emptyCustomer
	}
	claims, ok := userToken.Claims.(jwt.MapClaims)
	if !ok {
		return guestClaim, emptyCustomer
	}

	customerId := claimUint(claims, "customerId")
	if customerId == 0 {
		return guestClaim, emptyCustomer
	}
	username, _ := claims["username"].(string)

	var customer model.Customer
	db := database.DB
	if err := db.First(&customer, customerId).Error; err != nil {
		log.Printf("Customer not found (id=%d): %v", customerId, err)
		return guestClaim, emptyCustomer
	}
	if !customer.IsActive {
		return guestClaim, emptyCustomer
	}

	return model.TokenClaim{CustomerId: customerId, Username: username}, customer
}
