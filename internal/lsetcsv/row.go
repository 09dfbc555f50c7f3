package lsetcsv

import "time"

// Row is one collection item as Lsetwatch exports it. Field order mirrors the
// canonical column order of the export format. Rows are plain value objects:
// Reader builds a fresh one per input line and Writer never retains or
// mutates the rows it is given.
//
// Optionality follows the Lsetwatch application, quirks included: pointer
// fields distinguish an absent column from a value, while the remaining
// fields decode an absent column to a fixed default (0 for marker and the
// defaulted enums, 1 for the item counts). That asymmetry is observed
// Lsetwatch behavior and is preserved deliberately.
type Row struct {
	Number            string          `json:"number"`
	Version           string          `json:"version"`
	Marker            int             `json:"marker"`
	Color             *string         `json:"color,omitempty"`
	Template          Template        `json:"template"`
	MyGroup           *string         `json:"mygroup,omitempty"`
	State             *SetStatus      `json:"state,omitempty"`
	PurchaseCondition *Condition      `json:"purc_condition,omitempty"`
	PurchasePlatform  *string         `json:"purc_platform,omitempty"`
	PurchasePerson    *string         `json:"purc_person,omitempty"`
	PurchaseDate      *time.Time      `json:"purc_date,omitempty"`
	PurchaseNumber    *string         `json:"purc_number,omitempty"`
	PurchasePrice     *float64        `json:"purc_price,omitempty"`
	PurchaseShipping  *float64        `json:"purc_shipc,omitempty"`
	PurchaseCosts     *float64        `json:"purc_costs,omitempty"`
	PurchaseItems     int             `json:"purc_items"`
	SellCondition     *Condition      `json:"sell_condition,omitempty"`
	SellPlatform      *string         `json:"sell_platform,omitempty"`
	SellPerson        *string         `json:"sell_person,omitempty"`
	SellDate          *time.Time      `json:"sell_date,omitempty"`
	SellNumber        *string         `json:"sell_number,omitempty"`
	SellPrice         *float64        `json:"sell_price,omitempty"`
	SellShipping      *float64        `json:"sell_shipc,omitempty"`
	SellCosts         *float64        `json:"sell_costs,omitempty"`
	SellItems         int             `json:"sell_items"`
	VIPPointsEarned   *float64        `json:"vip_points_get,omitempty"`
	VIPPointsRedeemed *float64        `json:"vip_points_sub,omitempty"`
	Cashback          *float64        `json:"cashback,omitempty"`
	CashbackType      *CashbackType   `json:"cashback_type,omitempty"`
	Location          *string         `json:"location,omitempty"`
	Addition          *string         `json:"addition,omitempty"`
	Completeness      InventoryStatus `json:"completeness"`
	AlternPieces      *int            `json:"altern_pieces,omitempty"`
	Packaging         AccessoryStatus `json:"packaging"`
	Instructions      AccessoryStatus `json:"instructions"`
	SalesValue        *float64        `json:"sales_value,omitempty"`
	ToSell            *bool           `json:"to_sell,omitempty"`
	Notes             *string         `json:"notes,omitempty"`
	MyTags            []string        `json:"mytags,omitempty"`
	Documents         []string        `json:"documents,omitempty"`
	ReminderDate      *time.Time      `json:"reminder_date,omitempty"`
	LastEdit          time.Time       `json:"last_edit"`
}

// NewRow returns a row with the three required fields set and every
// defaulted field at its schema default.
func NewRow(number, version string, lastEdit time.Time) Row {
	row := defaultRow()
	row.Number = number
	row.Version = version
	row.LastEdit = lastEdit.UTC()
	return row
}

// defaultRow carries the decode-time defaults for columns that are absent
// from the input. Zero values cover everything except the item counts.
func defaultRow() Row {
	return Row{PurchaseItems: 1, SellItems: 1}
}
