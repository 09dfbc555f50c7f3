package lsetcsv

import "fmt"

// The enumerated columns carry closed sets of integer codes fixed by the
// Lsetwatch application (documented at lebostein.de/lsetwatch/faq_de.html).
// Decoding validates against the closed set; an out-of-range code is a
// CoercionError, never silently coerced.

// Template selects the entry template a set was created from (codes 0-5).
type Template int

const (
	TemplateFreeConfiguration Template = iota
	TemplateSealed
	TemplateWishlist
	TemplateSold
	TemplateGifted
	TemplateLost
)

var templateNames = [...]string{
	"free configuration",
	"sealed",
	"wishlist",
	"sold",
	"gifted",
	"lost",
}

func (t Template) Valid() bool { return t >= 0 && int(t) < len(templateNames) }

func (t Template) String() string {
	if !t.Valid() {
		return fmt.Sprintf("template(%d)", int(t))
	}
	return templateNames[t]
}

// SetStatus describes the current state of a set (codes 0-12).
type SetStatus int

const (
	StatusUnspecified SetStatus = iota
	StatusSealed
	StatusOpened
	StatusUnderConstruction
	StatusAssembled
	StatusPartsAsSet
	StatusPartsMixed
	StatusPartsForSale
	StatusArchived
	StatusLoaned
	StatusSold
	StatusGifted
	StatusLost
)

var setStatusNames = [...]string{
	"unspecified",
	"sealed",
	"opened",
	"under construction",
	"assembled",
	"parts, as set",
	"parts, mixed",
	"parts, for sale",
	"archived",
	"loaned",
	"sold",
	"gifted",
	"lost",
}

func (s SetStatus) Valid() bool { return s >= 0 && int(s) < len(setStatusNames) }

func (s SetStatus) String() string {
	if !s.Valid() {
		return fmt.Sprintf("status(%d)", int(s))
	}
	return setStatusNames[s]
}

// Condition describes the condition of a set at purchase or sale time
// (codes 0-5). Lsetwatch shares one code set between the two columns.
type Condition int

const (
	ConditionUnspecified Condition = iota
	ConditionSealed
	ConditionNewComplete
	ConditionNewIncomplete
	ConditionUsedComplete
	ConditionUsedIncomplete
)

var conditionNames = [...]string{
	"unspecified",
	"sealed",
	"new, complete",
	"new, incomplete",
	"used, complete",
	"used, incomplete",
}

func (c Condition) Valid() bool { return c >= 0 && int(c) < len(conditionNames) }

func (c Condition) String() string {
	if !c.Valid() {
		return fmt.Sprintf("condition(%d)", int(c))
	}
	return conditionNames[c]
}

// InventoryStatus describes how complete the set inventory is (codes 0-4).
type InventoryStatus int

const (
	InventoryUnspecified InventoryStatus = iota
	InventoryComplete
	InventoryIncomplete
	InventoryWithoutMinifigs
	InventoryMinifigsOnly
)

var inventoryNames = [...]string{
	"unspecified",
	"complete",
	"incomplete",
	"without minifigs",
	"minifigs only",
}

func (s InventoryStatus) Valid() bool { return s >= 0 && int(s) < len(inventoryNames) }

func (s InventoryStatus) String() string {
	if !s.Valid() {
		return fmt.Sprintf("inventory(%d)", int(s))
	}
	return inventoryNames[s]
}

// AccessoryStatus describes the state of packaging or instructions
// (codes 0-5).
type AccessoryStatus int

const (
	AccessoryNotPresent AccessoryStatus = iota
	AccessoryPresentMint
	AccessoryPresentNormal
	AccessoryPresentLightDamage
	AccessoryPresentDamaged
	AccessoryIncomplete
)

var accessoryNames = [...]string{
	"not present",
	"present, mint",
	"present, normal wear",
	"present, lightly damaged",
	"present, damaged",
	"incomplete",
}

func (s AccessoryStatus) Valid() bool { return s >= 0 && int(s) < len(accessoryNames) }

func (s AccessoryStatus) String() string {
	if !s.Valid() {
		return fmt.Sprintf("accessory(%d)", int(s))
	}
	return accessoryNames[s]
}

// CashbackType says how the cashback column is denominated (codes 0-2).
type CashbackType int

const (
	CashbackPercent CashbackType = iota
	CashbackCurrency
	CashbackPaybackPoints
)

var cashbackNames = [...]string{
	"percent of purchase price",
	"currency amount",
	"payback points",
}

func (t CashbackType) Valid() bool { return t >= 0 && int(t) < len(cashbackNames) }

func (t CashbackType) String() string {
	if !t.Valid() {
		return fmt.Sprintf("cashback(%d)", int(t))
	}
	return cashbackNames[t]
}
