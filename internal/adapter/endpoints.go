package adapter

import "fmt"

// Paths of the inventory API, relative to the base URL.
const (
	endpointLogin   = "token/"
	endpointRefresh = "token/refresh/"
	endpointLogout  = "logout/"

	endpointProducts   = "productos/productos/"
	endpointCategories = "productos/categorias/"
	endpointBrands     = "productos/marcas/"
	endpointEquipment  = "productos/equipos/"
	endpointSuppliers  = "proveedores/"
	endpointClients    = "clientes/"
	endpointUsers      = "usuarios/"
	endpointMovements  = "movimientos/"
	endpointEntries    = "movimientos/entradas/"
	endpointExits      = "movimientos/salidas/"
	endpointDashboard  = "dashboard/"
	endpointSysvars    = "sistema/variables/"
)

func detail(collection string, id int64) string {
	return fmt.Sprintf("%s%d/", collection, id)
}
