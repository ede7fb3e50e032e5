package seed

import (
	"encoding/json"

	"gorm.io/datatypes"
)

func mustJSONStrings(values ...string) datatypes.JSON {
	data, err := json.Marshal(values)
	if err != nil {
		return datatypes.JSON([]byte("[]"))
	}
	return datatypes.JSON(data)
}
