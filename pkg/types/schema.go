package types

// ColumnKind classifies a worksheet column so missing values can be
// back-filled with a type-appropriate default at load time.
type ColumnKind int

const (
	ColumnText ColumnKind = iota
	ColumnNumeric
	ColumnDate
	ColumnStatus
)

// DefaultValue returns the back-fill value for the kind: "0" for numeric
// columns, Pending for status columns, empty string otherwise.
func (k ColumnKind) DefaultValue() string {
	switch k {
	case ColumnNumeric:
		return "0"
	case ColumnStatus:
		return StatusPending
	default:
		return ""
	}
}

// Column is one declared worksheet column.
type Column struct {
	Name string
	Kind ColumnKind
}

// Schema declares the known columns of one module's worksheet. The backing
// worksheet may carry extra columns (they are kept verbatim); columns listed
// here are guaranteed present after load, so reporting code never checks.
type Schema struct {
	Module    string
	Worksheet string
	Columns   []Column
}

// ColumnNames returns the declared column names in order.
func (s Schema) ColumnNames() []string {
	names := make([]string, len(s.Columns))
	for i, c := range s.Columns {
		names[i] = c.Name
	}
	return names
}

// KindOf returns the declared kind of the named column, or ColumnText when
// the column is not declared.
func (s Schema) KindOf(name string) ColumnKind {
	for _, c := range s.Columns {
		if c.Name == name {
			return c.Kind
		}
	}
	return ColumnText
}

// Module names. Each module is backed by one worksheet of the shared
// spreadsheet and gated by the session's accessible-module list.
const (
	ModuleProduction = "Production"
	ModulePacking    = "Packing"
	ModuleStore      = "Store"
	ModuleEcommerce  = "Ecommerce"
	ModuleOrder      = "Order"
)

// Shared column names.
const (
	ColDate      = "Date"
	ColItem      = "Item"
	ColParty     = "Party"
	ColChannel   = "Channel"
	ColType      = "Type"
	ColQty       = "Qty"
	ColFulfilled = "Fulfilled Qty"
	ColStatus    = "Status"
	ColRemarks   = "Remarks"

	ColOrderQty    = "Order Qty"
	ColDispatchQty = "Dispatch Qty"
	ColReturnQty   = "Return Qty"
)

// taskBoardColumns is the shared shape of the Production and Packing boards.
var taskBoardColumns = []Column{
	{Name: ColDate, Kind: ColumnDate},
	{Name: ColItem, Kind: ColumnText},
	{Name: ColQty, Kind: ColumnNumeric},
	{Name: ColFulfilled, Kind: ColumnNumeric},
	{Name: ColStatus, Kind: ColumnStatus},
	{Name: ColRemarks, Kind: ColumnText},
}

// Schemas maps module name to its worksheet schema.
var Schemas = map[string]Schema{
	ModuleProduction: {
		Module:    ModuleProduction,
		Worksheet: "Production",
		Columns:   taskBoardColumns,
	},
	ModulePacking: {
		Module:    ModulePacking,
		Worksheet: "Packing",
		Columns:   taskBoardColumns,
	},
	ModuleStore: {
		Module:    ModuleStore,
		Worksheet: "Store",
		Columns: []Column{
			{Name: ColDate, Kind: ColumnDate},
			{Name: ColItem, Kind: ColumnText},
			{Name: ColType, Kind: ColumnText},
			{Name: ColQty, Kind: ColumnNumeric},
			{Name: ColParty, Kind: ColumnText},
			{Name: ColRemarks, Kind: ColumnText},
		},
	},
	ModuleEcommerce: {
		Module:    ModuleEcommerce,
		Worksheet: "Ecommerce",
		Columns: []Column{
			{Name: ColDate, Kind: ColumnDate},
			{Name: ColChannel, Kind: ColumnText},
			{Name: ColOrderQty, Kind: ColumnNumeric},
			{Name: ColDispatchQty, Kind: ColumnNumeric},
			{Name: ColReturnQty, Kind: ColumnNumeric},
		},
	},
	ModuleOrder: {
		Module:    ModuleOrder,
		Worksheet: "Order",
		Columns: []Column{
			{Name: ColDate, Kind: ColumnDate},
			{Name: ColParty, Kind: ColumnText},
			{Name: ColItem, Kind: ColumnText},
			{Name: ColType, Kind: ColumnText},
			{Name: ColQty, Kind: ColumnNumeric},
			{Name: ColStatus, Kind: ColumnStatus},
		},
	},
}

// ModuleNames lists the modules in display order.
var ModuleNames = []string{
	ModuleProduction,
	ModulePacking,
	ModuleStore,
	ModuleEcommerce,
	ModuleOrder,
}

// SchemaFor returns the schema for the named module.
// Returns ErrUnknownModule for unrecognized names.
func SchemaFor(module string) (Schema, error) {
	s, ok := Schemas[module]
	if !ok {
		return Schema{}, ErrUnknownModule
	}
	return s, nil
}
