package handler

import "github.com/go-chi/chi/v5"

// Routes registers every endpoint on a fresh chi router.
// The `{id:[0-9]+}` patterns reject non-numeric IDs at the routing layer
// with a 404, so handlers never see an unparseable ID.
func (s *Server) Routes() chi.Router {
	r := chi.NewRouter()

	r.Get("/", s.Root)
	r.Get("/health", s.Health)
	r.Get("/dashboard/stats", s.DashboardStats)

	r.Route("/passengers", func(r chi.Router) {
		r.Get("/", s.ListPassengers)
		r.Post("/", s.CreatePassenger)
		r.Put("/{id:[0-9]+}", s.UpdatePassenger)
		r.Delete("/{id:[0-9]+}", s.DeletePassenger)
	})

	r.Route("/cards", func(r chi.Router) {
		r.Get("/", s.ListCards)
		r.Post("/", s.CreateCard)
		r.Put("/{id:[0-9]+}", s.UpdateCard)
		r.Delete("/{id:[0-9]+}", s.DeleteCard)
	})

	r.Route("/card-types", func(r chi.Router) {
		r.Get("/", s.ListCardTypes)
		r.Post("/", s.CreateCardType)
		r.Put("/{id:[0-9]+}", s.UpdateCardType)
		r.Delete("/{id:[0-9]+}", s.DeleteCardType)
	})

	r.Route("/stations", func(r chi.Router) {
		r.Get("/", s.ListStations)
		r.Post("/", s.CreateStation)
		r.Put("/{id:[0-9]+}", s.UpdateStation)
		r.Delete("/{id:[0-9]+}", s.DeleteStation)
	})

	r.Route("/fare-rules", func(r chi.Router) {
		r.Get("/", s.ListFareRules)
		r.Post("/", s.CreateFareRule)
		r.Put("/{id:[0-9]+}", s.UpdateFareRule)
		r.Delete("/{id:[0-9]+}", s.DeleteFareRule)
	})

	r.Route("/trips", func(r chi.Router) {
		r.Get("/", s.ListTrips)
		r.Post("/", s.CreateTrip)
	})

	r.Get("/transactions", s.ListTransactions)

	return r
}
