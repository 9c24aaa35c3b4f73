// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package client

func (a *App) buildCommands() map[string]command {
	return map[string]command{
		"login": {
			usage: "login [-u username] [-p password]",
			help:  "sign in and save the session",
			run:   a.cmdLogin,
		},
		"logout": {
			usage: "logout",
			help:  "end the session on the server and locally",
			run:   a.cmdLogout,
		},
		"whoami": {
			usage:     "whoami",
			help:      "show the signed in user",
			protected: true,
			run:       a.cmdWhoami,
		},
		"version": {
			usage: "version",
			help:  "print build information",
			run:   a.cmdVersion,
		},
		"dashboard": {
			usage:     "dashboard",
			help:      "show counters, charts and low stock",
			protected: true,
			run:       a.cmdDashboard,
		},
		"products": {
			usage:     "products [-sku code]",
			help:      "list products",
			protected: true,
			run:       a.cmdProducts,
		},
		"product": {
			usage:     "product [-copy] <id>",
			help:      "show a product, -copy puts its SKU on the clipboard",
			protected: true,
			run:       a.cmdProduct,
		},
		"add-product": {
			usage:     "add-product -sku code -description text -category id -equipment id [-code code] [-supplier id] [-min n] [-unit name] [-status activo]",
			help:      "create a catalog product",
			protected: true,
			run:       a.cmdAddProduct,
		},
		"rm-product": {
			usage:     "rm-product <id>",
			help:      "delete a catalog product",
			protected: true,
			run:       a.cmdDeleteProduct,
		},
		"rename-brand": {
			usage:     "rename-brand <id> <name>",
			help:      "change the name of a brand",
			protected: true,
			run:       a.cmdRenameBrand,
		},
		"rm-equipment": {
			usage:     "rm-equipment <id>",
			help:      "deactivate equipment so it no longer shows in the catalogs",
			protected: true,
			run:       a.cmdDeactivateEquipment,
		},
		"clients": {
			usage:     "clients",
			help:      "list clients",
			protected: true,
			run:       a.cmdClients,
		},
		"client": {
			usage:     "client <id>",
			help:      "show a client",
			protected: true,
			run:       a.cmdClient,
		},
		"add-client": {
			usage:     "add-client -name name [-phone n] [-email addr] [-address text] [-rfc id] [-special] [-discounts text] [-inactive]",
			help:      "create a client",
			protected: true,
			run:       a.cmdAddClient,
		},
		"suppliers": {
			usage:     "suppliers",
			help:      "list suppliers",
			protected: true,
			run:       a.cmdSuppliers,
		},
		"add-supplier": {
			usage:     "add-supplier -name name [-contact name] [-phone n] [-email addr] [-address text] [-inactive]",
			help:      "create a supplier",
			protected: true,
			run:       a.cmdAddSupplier,
		},
		"catalogs": {
			usage:     "catalogs",
			help:      "show all lookup lists",
			protected: true,
			run:       a.cmdCatalogs,
		},
		"movements": {
			usage:     "movements [-entradas=false] [-salidas=false] [-q text]",
			help:      "list entries and exits, newest first",
			protected: true,
			run:       a.cmdMovements,
		},
		"entry": {
			usage:     "entry <id>",
			help:      "show a stock entry",
			protected: true,
			run:       a.cmdEntry,
		},
		"exit": {
			usage:     "exit <id>",
			help:      "show a stock exit",
			protected: true,
			run:       a.cmdExit,
		},
		"add-entry": {
			usage:     "add-entry -invoice number [-type compra] [-comment text] -item SKU=QTY [-item ...]",
			help:      "register a stock entry from scanned codes",
			protected: true,
			run:       a.cmdAddEntry,
		},
		"add-exit": {
			usage:     "add-exit -client name [-type project] [-technician name] [-comment text] -item SKU=QTY [-item ...]",
			help:      "register a stock exit from scanned codes",
			protected: true,
			run:       a.cmdAddExit,
		},
		"sysvars": {
			usage:     "sysvars",
			help:      "list system variables",
			protected: true,
			run:       a.cmdSystemVariables,
		},
		"sysvar-set": {
			usage:     "sysvar-set <id> <value>",
			help:      "change the value of a system variable",
			protected: true,
			run:       a.cmdSetSystemVariable,
		},
	}
}
