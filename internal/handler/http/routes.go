package http

import (
	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

const apiPrefix = "/api/v1"

func (h *Handler) Init() *chi.Mux {
	router := chi.NewRouter()
	router.Use(middleware.Recoverer)
	router.Use(h.withTraceID)
	router.Use(h.withLogging)
	router.Use(h.withMetrics)

	// promhttp negotiates its own compression
	router.Handle("/metrics", promhttp.HandlerFor(h.gatherer, promhttp.HandlerOpts{}))

	router.Group(func(r chi.Router) {
		r.Use(withGZip)
		r.Get("/version", h.getServerVersion)

		r.Route(apiPrefix, func(r chi.Router) {
			// routes without authorization
			r.Post("/token/", h.login)
			r.Post("/token/refresh/", h.refresh)
			r.Post("/logout/", h.logout)

			r.Group(func(r chi.Router) {
				r.Use(h.auth)

				r.Get("/productos/productos/", h.listProducts)
				r.Post("/productos/productos/", h.createProduct)
				r.Get("/productos/productos/{id}/", h.getProduct)
				r.Delete("/productos/productos/{id}/", h.deleteProduct)
				r.Get("/productos/categorias/", h.listCategories)
				r.Get("/productos/marcas/", h.listBrands)
				r.Patch("/productos/marcas/{id}/", h.renameBrand)
				r.Get("/productos/equipos/", h.listEquipment)
				r.Patch("/productos/equipos/{id}/", h.patchEquipment)

				r.Get("/proveedores/", h.listSuppliers)
				r.Post("/proveedores/", h.createSupplier)
				r.Get("/clientes/", h.listClients)
				r.Post("/clientes/", h.createClient)
				r.Get("/clientes/{id}/", h.getClient)
				r.Get("/usuarios/", h.listUsers)

				r.Get("/movimientos/", h.listMovements)
				r.Get("/movimientos/entradas/", h.listEntries)
				r.Post("/movimientos/entradas/", h.createEntry)
				r.Get("/movimientos/entradas/{id}/", h.getEntry)
				r.Get("/movimientos/salidas/", h.listExits)
				r.Post("/movimientos/salidas/", h.createExit)
				r.Get("/movimientos/salidas/{id}/", h.getExit)

				r.Get("/dashboard/", h.dashboard)
				r.Get("/sistema/variables/", h.listSystemVariables)
				r.Patch("/sistema/variables/{id}/", h.updateSystemVariable)
			})
		})
	})

	router.NotFound(notFound)
	router.MethodNotAllowed(methodNotAllowed)

	return router
}
