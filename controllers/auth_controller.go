package controllers

import (
	"context"
	"crypto/sha256"
	"encoding/hex"
	"errors"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"

	"smartsalary/backend/config"
	"smartsalary/backend/database"
	"smartsalary/backend/models"
	"smartsalary/backend/utils"
)

var errEmailTaken = errors.New("email already registered")

// userDB is the slice of the pgx pool the auth handlers need.
type userDB interface {
	QueryRow(ctx context.Context, sql string, args ...any) pgx.Row
}

func hash(pw string) string {
	h := sha256.Sum256([]byte(pw))
	return hex.EncodeToString(h[:])
}

// createUser inserts a new account. A duplicate email is errEmailTaken; the
// existing row is never touched.
func createUser(ctx context.Context, db userDB, name, email, passwordHash string) (int64, error) {
	var id int64
	err := db.QueryRow(ctx, `INSERT INTO users(name,email,password_hash) VALUES($1,$2,$3) RETURNING id`,
		name, email, passwordHash).Scan(&id)
	if err != nil {
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) && pgErr.Code == "23505" {
			return 0, errEmailTaken
		}
		return 0, err
	}
	return id, nil
}

func Register(cfg config.Config) gin.HandlerFunc {
	return func(c *gin.Context) {
		var req models.RegisterRequest
		if err := c.ShouldBindJSON(&req); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "invalid body"})
			return
		}
		if req.Password != req.Confirm {
			c.JSON(http.StatusBadRequest, gin.H{"error": "password mismatch"})
			return
		}
		ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		id, err := createUser(ctx, database.Pool, req.Name, req.Email, hash(req.Password))
		if errors.Is(err, errEmailTaken) {
			c.JSON(http.StatusConflict, gin.H{"error": "email already registered"})
			return
		}
		if err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "db error"})
			return
		}
		token, _ := utils.GenerateJWT(cfg.JWTSecret, id, 24*time.Hour)
		c.JSON(http.StatusOK, gin.H{"token": token})
	}
}

func Login(cfg config.Config) gin.HandlerFunc {
	return func(c *gin.Context) {
		var req models.LoginRequest
		if err := c.ShouldBindJSON(&req); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "invalid body"})
			return
		}
		ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		var id int64
		var pw string
		err := database.Pool.QueryRow(ctx, `SELECT id, password_hash FROM users WHERE email=$1`, req.Email).Scan(&id, &pw)
		if err != nil || pw != hash(req.Password) {
			c.JSON(http.StatusUnauthorized, gin.H{"error": "invalid credentials"})
			return
		}
		token, _ := utils.GenerateJWT(cfg.JWTSecret, id, 24*time.Hour)
		c.JSON(http.StatusOK, gin.H{"token": token})
	}
}
