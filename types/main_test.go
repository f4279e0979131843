package types

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestAssetRegistry(t *testing.T) {
	assert.Len(t, AssetRegistry, 7)

	for asset_type, info := range AssetRegistry {
		if asset_type == AssetWallet {
			assert.True(t, info.AllowNegative)
		} else {
			assert.False(t, info.AllowNegative, asset_type)
		}
	}

	assert.Equal(t, int32(2), AssetRegistry[AssetWallet].Precision)
	assert.Equal(t, int32(3), AssetRegistry[AssetEnergyKwh].Precision)
	assert.Equal(t, int32(3), AssetRegistry[AssetMiningThs].Precision)
	assert.Equal(t, int32(2), AssetRegistry[AssetCarbonCredits].Precision)
	assert.Equal(t, int32(0), AssetRegistry[AssetLoyaltyPoints].Precision)
}

func TestValidAssetType(t *testing.T) {
	assert.True(t, ValidAssetType(AssetWallet))
	assert.True(t, ValidAssetType(AssetProductionRights))
	assert.False(t, ValidAssetType("gold_bars"))
	assert.False(t, ValidAssetType(""))
}
