package handlers

import "github.com/go-chi/chi/v5"

// Router assembles the API route tree. Sign-in is the only route outside
// the session gate.
func Router() chi.Router {
	r := chi.NewRouter()
	r.Post("/login", Login)

	r.Group(func(r chi.Router) {
		r.Use(RequireSession)

		r.Post("/logout", Logout)

		// Accounts
		r.Get("/accounts", ListAccounts)
		r.Post("/accounts/open", OpenAccount)
		r.Get("/accounts/{id}", GetAccount)
		r.Get("/accounts/{id}/transactions", GetAccountTransactions)
		r.Get("/products", ListProducts)

		// Cards and loans
		r.Get("/cards", ListCards)
		r.Post("/cards/{id}/lock", ToggleCardLock)
		r.Get("/loans", ListLoans)

		// Transactions
		r.Get("/transactions", ListTransactions)
		r.Get("/transactions/{id}", GetTransaction)

		// Transfers and limits
		r.Post("/transfers/preview", PreviewTransfer)
		r.Post("/transfers", CreateTransfer)
		r.Get("/limits", GetLimits)
		r.Put("/limits", UpdateLimits)

		// Recurring payments
		r.Get("/recurring", ListRecurring)
		r.Delete("/recurring/{id}", CancelRecurring)

		// Deposits
		r.Post("/deposits", CreateDeposit)

		// Dashboard and advice
		r.Get("/dashboard", GetDashboard)
		r.Post("/advice", GetAdvice)
	})
	return r
}
