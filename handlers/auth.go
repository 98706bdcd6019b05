package handlers

import (
	"context"
	"encoding/json"
	"net/http"
	"strings"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/jyokubov/portfolio/middleware"
	"github.com/jyokubov/portfolio/models"
	"golang.org/x/crypto/bcrypt"
)

// Session tokens expire after 7 days; there is no refresh mechanism.
const tokenMaxAge = 7 * 24 * time.Hour

// AdminStore is the slice of the store the auth handler needs.
type AdminStore interface {
	AdminByEmail(ctx context.Context, email string) (*models.Admin, error)
}

type AuthHandler struct {
	DB        AdminStore
	JWTSecret string
	// Secure marks the session cookie HTTPS-only (production).
	Secure bool
}

type LoginRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

// Login verifies credentials and sets the session cookie. Unknown email and
// wrong password return byte-identical responses so account existence never
// leaks. There is no rate limiting on this endpoint.
func (h *AuthHandler) Login(w http.ResponseWriter, r *http.Request) {
	var req LoginRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		respondError(w, http.StatusBadRequest, "Invalid JSON body")
		return
	}
	if req.Email == "" || req.Password == "" {
		respondError(w, http.StatusBadRequest, "Email and password are required")
		return
	}

	admin, err := h.DB.AdminByEmail(r.Context(), req.Email)
	if err != nil {
		respondError(w, http.StatusInternalServerError, "Internal server error")
		return
	}
	if admin == nil {
		respondError(w, http.StatusUnauthorized, "Invalid credentials")
		return
	}
	if err := bcrypt.CompareHashAndPassword([]byte(admin.Password), []byte(req.Password)); err != nil {
		respondError(w, http.StatusUnauthorized, "Invalid credentials")
		return
	}

	token, err := h.createToken(admin.ID.Hex(), admin.Email)
	if err != nil {
		respondError(w, http.StatusInternalServerError, "Internal server error")
		return
	}
	http.SetCookie(w, h.sessionCookie(token, int(tokenMaxAge.Seconds())))
	respondJSON(w, http.StatusOK, map[string]interface{}{
		"success": true,
		"admin":   map[string]string{"name": admin.Name, "email": admin.Email},
	})
}

// Logout deletes the session cookie. Idempotent: logging out twice succeeds
// both times.
func (h *AuthHandler) Logout(w http.ResponseWriter, r *http.Request) {
	http.SetCookie(w, h.sessionCookie("", -1))
	respondJSON(w, http.StatusOK, map[string]bool{"success": true})
}

// Me reports the current session, used by the admin panel to check validity.
func (h *AuthHandler) Me(w http.ResponseWriter, r *http.Request) {
	claims, ok := middleware.ClaimsFromRequest(r, h.JWTSecret)
	if !ok {
		respondError(w, http.StatusUnauthorized, "Not authenticated")
		return
	}
	respondJSON(w, http.StatusOK, map[string]interface{}{
		"admin": map[string]string{"adminId": claims.AdminID, "email": claims.Email},
	})
}

func (h *AuthHandler) createToken(adminID, email string) (string, error) {
	claims := &middleware.Claims{
		AdminID: adminID,
		Email:   strings.ToLower(email),
		RegisteredClaims: jwt.RegisteredClaims{
			ExpiresAt: jwt.NewNumericDate(time.Now().Add(tokenMaxAge)),
			IssuedAt:  jwt.NewNumericDate(time.Now()),
		},
	}
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString([]byte(h.JWTSecret))
}

func (h *AuthHandler) sessionCookie(value string, maxAge int) *http.Cookie {
	return &http.Cookie{
		Name:     middleware.TokenCookieName,
		Value:    value,
		Path:     "/",
		MaxAge:   maxAge,
		HttpOnly: true,
		Secure:   h.Secure,
		SameSite: http.SameSiteLaxMode,
	}
}
