package server

import (
	"net/http"

	"github.com/go-chi/chi/v5"

	"namevalue/pkg/httpx/reply"
)

func (s Server) RegisterRoutes(r chi.Router) {
	r.Route("/", func(r chi.Router) {
		// страница
		r.Get("/", handler(s.getIndex))
		r.Post("/", handler(s.postIndex))
		r.Get("/card.png", handler(s.getCardPNG))

		r.Route("/v1", func(r chi.Router) {
			r.Get("/grades", handler(s.getV1Grades))

			r.Route("/valuation", func(r chi.Router) {
				r.Get("/", handler(s.getV1Valuation))
				r.Post("/", handler(s.postV1Valuation))
				r.Get("/countup", handler(s.getV1ValuationCountUp))
				r.Get("/card", handler(s.getV1ValuationCard))
			})
		})
	})
}

func handler(f func(http.ResponseWriter, *http.Request) error) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if err := f(w, r); err != nil {
			reply.Error(r.Context(), w, err)
		}
	}
}
