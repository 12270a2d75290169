package output

import "encoding/json"

// JSON renders any payload as indented JSON.
func JSON(payload any) (string, error) {
	data, err := json.MarshalIndent(payload, "", "  ")
	if err != nil {
		return "", err
	}
	return string(data), nil
}
