package handlers

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/studyhub-dev/studyhub/internal/repositories"
	"github.com/studyhub-dev/studyhub/internal/utils"
	"golang.org/x/crypto/bcrypt"
)

// POST /login
// Login godoc
// @Summary Verify user credentials
// @Description Stateless credential check. The failure response is identical for an unknown email and a wrong password.
// @Tags Auth
// @Accept json
// @Produce json
// @Success 200 {object} utils.Payload
// @Failure 401 {object} utils.Payload
// @Router /login [post]
func (h *Handler) Login(w http.ResponseWriter, r *http.Request) {
	var input struct {
		Email    string `json:"email"`
		Password string `json:"password"`
	}

	dec := json.NewDecoder(r.Body)
	dec.DisallowUnknownFields()
	if err := dec.Decode(&input); err != nil {
		utils.JSONResponse(w, http.StatusBadRequest, utils.Payload{
			Success: false,
			Message: "Invalid input",
		})
		return
	}

	user, err := h.users.FindByEmail(r.Context(), input.Email)
	if err != nil && !errors.Is(err, repositories.ErrNotFound) {
		utils.JSONResponse(w, http.StatusInternalServerError, utils.Payload{
			Success: false,
			Message: "Server error",
		})
		return
	}

	// Generic error for security: unknown email and wrong password must be
	// indistinguishable to the caller.
	if err != nil || bcrypt.CompareHashAndPassword([]byte(user.Password), []byte(input.Password)) != nil {
		utils.JSONResponse(w, http.StatusUnauthorized, utils.Payload{
			Success: false,
			Message: "Invalid email or password",
		})
		return
	}

	utils.JSONResponse(w, http.StatusOK, utils.Payload{
		Success: true,
		Message: "Login successful!",
	})
}
