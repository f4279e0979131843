package types

type AssetType = string

var (
	AssetWallet           AssetType = "wallet"
	AssetEnergyKwh        AssetType = "energy_kwh"
	AssetMiningThs        AssetType = "mining_ths"
	AssetStorageCapacity  AssetType = "storage_capacity"
	AssetCarbonCredits    AssetType = "carbon_credits"
	AssetProductionRights AssetType = "production_rights"
	AssetLoyaltyPoints    AssetType = "loyalty_points"
)

// AssetInfo describes the unit semantics of one balance type.
type AssetInfo struct {
	Unit            string
	Precision       int32
	AllowNegative   bool
	DefaultCurrency string
}

// AssetRegistry is the static table of the seven balance types. Wallet is the
// only type allowed to go negative (credit extension).
var AssetRegistry = map[AssetType]AssetInfo{
	AssetWallet:           {Unit: "", Precision: 2, AllowNegative: true, DefaultCurrency: "eur"},
	AssetEnergyKwh:        {Unit: "kWh", Precision: 3, AllowNegative: false, DefaultCurrency: "kwh"},
	AssetMiningThs:        {Unit: "TH/s", Precision: 3, AllowNegative: false, DefaultCurrency: "ths"},
	AssetStorageCapacity:  {Unit: "kWh", Precision: 3, AllowNegative: false, DefaultCurrency: "kwh"},
	AssetCarbonCredits:    {Unit: "CO2t", Precision: 2, AllowNegative: false, DefaultCurrency: "co2"},
	AssetProductionRights: {Unit: "kWh", Precision: 3, AllowNegative: false, DefaultCurrency: "kwh"},
	AssetLoyaltyPoints:    {Unit: "pts", Precision: 0, AllowNegative: false, DefaultCurrency: "pts"},
}

func ValidAssetType(t AssetType) bool {
	_, found := AssetRegistry[t]

	return found
}

type TransactionKind = string

var (
	KindIncome      TransactionKind = "income"
	KindExpense     TransactionKind = "expense"
	KindTransferIn  TransactionKind = "transfer_in"
	KindTransferOut TransactionKind = "transfer_out"
	KindAdjustment  TransactionKind = "adjustment"
)

type TransactionStatus = string

var (
	StatusPending   TransactionStatus = "pending"
	StatusCompleted TransactionStatus = "completed"
	StatusFailed    TransactionStatus = "failed"
	StatusCancelled TransactionStatus = "cancelled"
)

type PayloadAction = string

var (
	ActionProcess PayloadAction = "process"
	ActionCancel  PayloadAction = "cancel"
)

// LedgerPayloadMessage is the daemon-side payload for deferred transactions.
type LedgerPayloadMessage struct {
	Action        PayloadAction `json:"action"`
	TransactionID uint64        `json:"transaction_id"`
}

type OrderBy = string

var (
	OrderByAsc  OrderBy = "asc"
	OrderByDesc OrderBy = "desc"
)
