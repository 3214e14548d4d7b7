package entity

// Snapshot is a full data backup: one array per collection. Import replaces
// all collections wholesale, there is no merge.
type Snapshot struct {
	Customers            []*Customer            `json:"customers"`
	Products             []*Product             `json:"products"`
	Lots                 []*Lot                 `json:"inventoryLots"`
	Shipments            []*Shipment            `json:"shipments"`
	Payments             []*Payment             `json:"payments"`
	Suppliers            []*Supplier            `json:"suppliers"`
	SupplierPayments     []*SupplierPayment     `json:"supplierPayments"`
	SupplierPrices       []*SupplierPrice       `json:"supplierPriceLists"`
	ProductionCosts      []*ProductionCost      `json:"productionCosts"`
	RawMaterialShipments []*RawMaterialShipment `json:"rawMaterialShipments"`
	YarnShipments        []*YarnShipment        `json:"yarnShipments"`
	YarnTypes            []*YarnType            `json:"yarnTypes"`
	Settings             map[string]string      `json:"settings"`
}
