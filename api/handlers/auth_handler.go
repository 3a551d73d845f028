package handlers

import (
	"database/sql"
	"encoding/json"
	"errors"
	"log"
	"net/http"

	"golang.org/x/crypto/bcrypt"

	"github.com/deepthansh-m/WhisperNet/api/auth"
	"github.com/deepthansh-m/WhisperNet/api/dtos"
	"github.com/deepthansh-m/WhisperNet/api/repositories"
)

// POST /auth/register
func PostRegisterHandler(userRepo repositories.UserRepository) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var req dtos.RegisterRequest

		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			http.Error(w, "invalid request body", http.StatusBadRequest)
			return
		}
		if req.Username == "" || req.Email == "" || req.Password == "" {
			http.Error(w, "username, email and password are required", http.StatusBadRequest)
			return
		}

		hash, err := bcrypt.GenerateFromPassword([]byte(req.Password), bcrypt.DefaultCost)
		if err != nil {
			http.Error(w, "unable to hash password", http.StatusInternalServerError)
			return
		}

		id, err := userRepo.CreateUser(req.Username, req.Email, string(hash))
		if err != nil {
			log.Println(err)
			http.Error(w, "unable to create user", http.StatusBadRequest)
			return
		}

		resp := dtos.RegisterResponse{UserID: id}

		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusCreated)
		json.NewEncoder(w).Encode(resp)
	}
}

// POST /auth/login
func PostLoginHandler(userRepo repositories.UserRepository) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var req dtos.LoginRequest

		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			http.Error(w, "invalid request body", http.StatusBadRequest)
			return
		}

		id, hash, err := userRepo.GetPasswordHashByEmail(req.Email)
		if err != nil {
			if errors.Is(err, sql.ErrNoRows) {
				http.Error(w, "invalid credentials", http.StatusUnauthorized)
			} else {
				log.Println(err)
				http.Error(w, "internal server error", http.StatusInternalServerError)
			}
			return
		}

		if err = bcrypt.CompareHashAndPassword([]byte(hash), []byte(req.Password)); err != nil {
			http.Error(w, "invalid credentials", http.StatusUnauthorized)
			return
		}

		token, err := auth.GenerateJWT(id)
		if err != nil {
			log.Println(err)
			http.Error(w, "JWT failure", http.StatusInternalServerError)
			return
		}

		resp := dtos.LoginResponse{Token: token}

		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusOK)
		json.NewEncoder(w).Encode(resp)
	}
}
