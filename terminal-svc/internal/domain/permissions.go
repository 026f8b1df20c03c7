package domain

import "sort"

type Role string

const (
	RoleAdmin   Role = "admin"
	RoleWaiter  Role = "pelayan"
	RoleCashier Role = "kasir"
	RoleGuest   Role = "tamu"
)

// Normalize maps anything unknown (including the empty role) to guest.
func (r Role) Normalize() Role {
	switch r {
	case RoleAdmin, RoleWaiter, RoleCashier:
		return r
	}
	return RoleGuest
}

type Capability string

const (
	CapViewTables   Capability = "tables:view"
	CapManageTables Capability = "tables:manage"
	CapViewFoods    Capability = "foods:view"
	CapManageFoods  Capability = "foods:manage"
	CapViewOrders   Capability = "orders:view"
	CapCreateOrder  Capability = "orders:create"
	CapAddItems     Capability = "orders:add_items"
	CapRemoveItems  Capability = "orders:remove_items"
	CapCloseOrder   Capability = "orders:close"
	CapPrintReceipt Capability = "orders:print_receipt"
)

type Capabilities map[Capability]bool

func (c Capabilities) Has(want Capability) bool {
	return c[want]
}

func (c Capabilities) List() []string {
	out := make([]string, 0, len(c))
	for name, ok := range c {
		if ok {
			out = append(out, string(name))
		}
	}
	sort.Strings(out)
	return out
}

// PermissionsFor is the UX-level gate; the backend enforces again.
func PermissionsFor(role Role) Capabilities {
	switch role.Normalize() {
	case RoleAdmin:
		return caps(CapViewTables, CapManageTables, CapViewFoods, CapManageFoods,
			CapViewOrders, CapCreateOrder, CapAddItems, CapRemoveItems,
			CapCloseOrder, CapPrintReceipt)
	case RoleWaiter:
		return caps(CapViewTables, CapManageTables, CapViewFoods, CapManageFoods,
			CapViewOrders, CapCreateOrder, CapAddItems, CapRemoveItems)
	case RoleCashier:
		return caps(CapViewTables, CapViewOrders, CapCloseOrder, CapPrintReceipt)
	default:
		return caps(CapViewTables, CapViewFoods)
	}
}

// Screens lists the navigation entries a role may see.
func Screens(role Role) []string {
	var screens []string
	for _, s := range []struct {
		path  string
		roles []Role
	}{
		{"/table", []Role{RoleAdmin, RoleWaiter, RoleCashier, RoleGuest}},
		{"/foods", []Role{RoleAdmin, RoleWaiter, RoleGuest}},
		{"/orders", []Role{RoleAdmin, RoleWaiter, RoleCashier}},
	} {
		for _, r := range s.roles {
			if r == role.Normalize() {
				screens = append(screens, s.path)
				break
			}
		}
	}
	return screens
}

func caps(list ...Capability) Capabilities {
	out := make(Capabilities, len(list))
	for _, c := range list {
		out[c] = true
	}
	return out
}
