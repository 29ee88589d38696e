package controllers

import (
	"net/http"

	"github.com/promoshopcl/promoshop-backend/api/responses"
	"github.com/promoshopcl/promoshop-backend/pkg/config"
)

func HealthLive(cfg *config.Config) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("X-PromoShop-Env", cfg.App.Env)
		responses.WriteSuccess(w, map[string]string{"status": "live"})
	}
}
