// internal/defs/loader.go
package defs

import (
	"fmt"

	"github.com/spf13/viper"
)

// LoadEnemyDefinitions reads an enemy definitions file (any format viper
// understands, chosen by extension) holding an "enemies" list.
func LoadEnemyDefinitions(path string) (Library, error) {
	v := viper.New()
	v.SetConfigFile(path)
	if err := v.ReadInConfig(); err != nil {
		return nil, fmt.Errorf("failed to read enemy definitions file: %w", err)
	}

	var enemyDefs []EnemyDefinition
	if err := v.UnmarshalKey("enemies", &enemyDefs); err != nil {
		return nil, fmt.Errorf("failed to unmarshal enemy definitions: %w", err)
	}

	return NewLibrary(enemyDefs)
}

// NewLibrary validates defs and indexes them by ID.
func NewLibrary(enemyDefs []EnemyDefinition) (Library, error) {
	lib := make(Library, len(enemyDefs))
	for _, def := range enemyDefs {
		if err := def.Validate(); err != nil {
			return nil, err
		}
		if _, dup := lib[def.ID]; dup {
			return nil, fmt.Errorf("duplicate enemy definition %q", def.ID)
		}
		lib[def.ID] = def
	}
	return lib, nil
}
