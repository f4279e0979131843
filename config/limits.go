package config

import (
	"io/ioutil"
	"os"

	"github.com/shopspring/decimal"
	"gopkg.in/yaml.v2"
)

var Limits LimitsChart

// LimitsChart maps an asset type to the default spending limits applied to
// newly created accounts. A missing entry or a zero value means unlimited.
type LimitsChart map[string]AssetLimits

type AssetLimits struct {
	Daily   decimal.Decimal `yaml:"daily"`
	Monthly decimal.Decimal `yaml:"monthly"`
}

func LoadLimits() error {
	path := App.LimitsFile

	if _, err := os.Stat(path); os.IsNotExist(err) {
		Limits = LimitsChart{}
		return nil
	}

	raw, err := ioutil.ReadFile(path)
	if err != nil {
		return err
	}

	chart := LimitsChart{}
	if err := yaml.Unmarshal(raw, &chart); err != nil {
		return err
	}

	Limits = chart

	return nil
}
