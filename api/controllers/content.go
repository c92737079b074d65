package controllers

import (
	"net/http"

	"github.com/chucksbakes/chucks-bakes-backend/api/responses"
	"github.com/chucksbakes/chucks-bakes-backend/internal/content"
)

func ContentHomepage(svc content.Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		responses.WriteSuccess(w, svc.Homepage(r.Context()))
	}
}

func ContentOrderPage(svc content.Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		responses.WriteSuccess(w, svc.OrderPage(r.Context()))
	}
}
