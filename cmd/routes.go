package main

import (
	"net/http"

	"github.com/bmizerany/pat"
	"github.com/justinas/alice"
)

func (app *application) JWTMiddlewareWithRole(requiredRole string) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return app.JWTMiddleware(next, requiredRole)
	}
}

func (app *application) routes() http.Handler {
	standardMiddleware := alice.New(app.recoverPanic, app.logRequest, secureHeaders, makeResponseJSON)
	authMiddleware := standardMiddleware.Append(app.JWTMiddlewareWithRole("user"))
	adminAuthMiddleware := standardMiddleware.Append(app.JWTMiddlewareWithRole("admin"))

	mux := pat.New()

	// Accounts
	mux.Post("/user/sign_up", standardMiddleware.ThenFunc(app.userHandler.SignUp))
	mux.Post("/user/sign_in", standardMiddleware.ThenFunc(app.userHandler.SignIn))
	mux.Get("/user", adminAuthMiddleware.ThenFunc(app.userHandler.GetUsers))
	mux.Get("/user/:id", adminAuthMiddleware.ThenFunc(app.userHandler.GetUserByID))
	mux.Put("/user/:id/role", adminAuthMiddleware.ThenFunc(app.userHandler.UpdateUserRole))
	mux.Del("/user/:id", adminAuthMiddleware.ThenFunc(app.userHandler.DeleteUser))

	// Events
	mux.Post("/event", adminAuthMiddleware.ThenFunc(app.eventHandler.CreateEvent))
	mux.Get("/event", standardMiddleware.ThenFunc(app.eventHandler.GetEvents))
	mux.Get("/event/:id", standardMiddleware.ThenFunc(app.eventHandler.GetEventByID))
	mux.Put("/event/:id", adminAuthMiddleware.ThenFunc(app.eventHandler.UpdateEvent))
	mux.Del("/event/:id", adminAuthMiddleware.ThenFunc(app.eventHandler.DeleteEvent))

	// Event categories
	mux.Post("/category", adminAuthMiddleware.ThenFunc(app.categoryHandler.CreateCategory))
	mux.Get("/category", standardMiddleware.ThenFunc(app.categoryHandler.GetAllCategories))
	mux.Get("/category/:id", standardMiddleware.ThenFunc(app.categoryHandler.GetCategoryByID))
	mux.Put("/category/:id", adminAuthMiddleware.ThenFunc(app.categoryHandler.UpdateCategory))
	mux.Del("/category/:id", adminAuthMiddleware.ThenFunc(app.categoryHandler.DeleteCategory))

	// Concerts
	mux.Post("/concert", adminAuthMiddleware.ThenFunc(app.concertHandler.CreateConcert))
	mux.Get("/concert", standardMiddleware.ThenFunc(app.concertHandler.GetConcerts))
	mux.Get("/concert/:id", standardMiddleware.ThenFunc(app.concertHandler.GetConcertByID))
	mux.Put("/concert/:id", adminAuthMiddleware.ThenFunc(app.concertHandler.UpdateConcert))
	mux.Del("/concert/:id", adminAuthMiddleware.ThenFunc(app.concertHandler.DeleteConcert))

	// Artists
	mux.Post("/artist", adminAuthMiddleware.ThenFunc(app.artistHandler.CreateArtist))
	mux.Get("/artist", standardMiddleware.ThenFunc(app.artistHandler.GetArtists))
	mux.Get("/artist/:id", standardMiddleware.ThenFunc(app.artistHandler.GetArtistByID))
	mux.Put("/artist/:id", adminAuthMiddleware.ThenFunc(app.artistHandler.UpdateArtist))
	mux.Del("/artist/:id", adminAuthMiddleware.ThenFunc(app.artistHandler.DeleteArtist))

	// Sponsors
	mux.Post("/sponsor", adminAuthMiddleware.ThenFunc(app.sponsorHandler.CreateSponsor))
	mux.Get("/sponsor", standardMiddleware.ThenFunc(app.sponsorHandler.GetSponsors))
	mux.Put("/sponsor/:id", adminAuthMiddleware.ThenFunc(app.sponsorHandler.UpdateSponsor))
	mux.Del("/sponsor/:id", adminAuthMiddleware.ThenFunc(app.sponsorHandler.DeleteSponsor))

	// Merch
	mux.Post("/product", adminAuthMiddleware.ThenFunc(app.productHandler.CreateProduct))
	mux.Get("/product", standardMiddleware.ThenFunc(app.productHandler.GetProducts))
	mux.Get("/product/:id", standardMiddleware.ThenFunc(app.productHandler.GetProductByID))
	mux.Put("/product/:id", adminAuthMiddleware.ThenFunc(app.productHandler.UpdateProduct))
	mux.Del("/product/:id", adminAuthMiddleware.ThenFunc(app.productHandler.DeleteProduct))

	// Accommodation
	mux.Post("/accommodation", adminAuthMiddleware.ThenFunc(app.accommodationHandler.CreateAccommodation))
	mux.Get("/accommodation", standardMiddleware.ThenFunc(app.accommodationHandler.GetAccommodations))
	mux.Get("/accommodation/:id", standardMiddleware.ThenFunc(app.accommodationHandler.GetAccommodationByID))
	mux.Put("/accommodation/:id", adminAuthMiddleware.ThenFunc(app.accommodationHandler.UpdateAccommodation))
	mux.Del("/accommodation/:id", adminAuthMiddleware.ThenFunc(app.accommodationHandler.DeleteAccommodation))

	// Registrations
	mux.Post("/registration", authMiddleware.ThenFunc(app.registrationHandler.CreateRegistration))
	mux.Get("/registration", adminAuthMiddleware.ThenFunc(app.registrationHandler.GetRegistrations))
	mux.Get("/registration/event/:event_id", adminAuthMiddleware.ThenFunc(app.registrationHandler.GetRegistrationsByEvent))
	mux.Get("/registration/user/:user_id", authMiddleware.ThenFunc(app.registrationHandler.GetRegistrationsByUser))
	mux.Put("/registration/:id/status", adminAuthMiddleware.ThenFunc(app.registrationHandler.UpdateRegistrationStatus))
	mux.Del("/registration/:id", adminAuthMiddleware.ThenFunc(app.registrationHandler.DeleteRegistration))

	// Payments. The checkout widget drives these from the storefront,
	// so they stay open like the catalog.
	mux.Post("/payment/order", standardMiddleware.ThenFunc(app.paymentHandler.CreateOrder))
	mux.Post("/payment/verify", standardMiddleware.ThenFunc(app.paymentHandler.VerifyPayment))

	// Orders (back office)
	mux.Get("/order", adminAuthMiddleware.ThenFunc(app.orderHandler.GetOrders))
	mux.Get("/order/:id", adminAuthMiddleware.ThenFunc(app.orderHandler.GetOrderByID))

	// Media uploads
	mux.Post("/admin/upload/:folder", adminAuthMiddleware.ThenFunc(app.uploadHandler.UploadImage))

	return standardMiddleware.Then(mux)
}
